package writers

import (
	"fmt"
	"io"
	"sort"

	"asmkit/internal/assembly"
	"asmkit/internal/pretty"
)

// Options shared by the layout writers.
type Options struct {
	Header bool           // tsv header row
	Pretty pretty.Options // text tiling
}

// LayoutFormat drains in and writes every layout to out.
type LayoutFormat func(out io.Writer, in <-chan assembly.Layout, opt Options) error

var layoutWriters = map[string]LayoutFormat{}

// RegisterLayout adds a format (idempotent, last wins).
func RegisterLayout(format string, fn LayoutFormat) { layoutWriters[format] = fn }

// LayoutFormats lists the registered formats.
func LayoutFormats() []string {
	out := make([]string, 0, len(layoutWriters))
	for f := range layoutWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// StartLayoutWriter spins up a writer goroutine. Close the returned channel
// and read the error channel once to finish.
func StartLayoutWriter(out io.Writer, format string, opt Options, bufSize int) (chan<- assembly.Layout, <-chan error) {
	fn, ok := layoutWriters[format]
	if !ok {
		fn = func(io.Writer, <-chan assembly.Layout, Options) error {
			return fmt.Errorf("unknown layout format %q (no writer registered)", format)
		}
	}
	if bufSize <= 0 {
		bufSize = 16
	}
	in := make(chan assembly.Layout, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := fn(out, in, opt)
		for range in {
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()
	return in, errCh
}
