package output

import (
	"fmt"
	"io"

	"asmkit/internal/assembly"
)

// FormatReadRowTSV returns one tsv row (no trailing newline).
func FormatReadRowTSV(l assembly.Layout, p assembly.PlacedRead) string {
	s := 0
	if p.RepeatSurrogate {
		s = 1
	}
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d",
		l.Kind(), l.ID(), p.ID, strand(p),
		p.Offset, p.End(),
		p.Clear.Begin, p.Clear.End, p.FullLength, s,
	)
}

// StreamTSV writes the rows of every layout received on in.
func StreamTSV(w io.Writer, in <-chan assembly.Layout, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for l := range in {
		for _, p := range l.Reads() {
			if _, err := fmt.Fprintln(w, FormatReadRowTSV(l, p)); err != nil {
				return err
			}
		}
	}
	return nil
}
