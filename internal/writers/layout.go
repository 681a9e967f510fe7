package writers

import (
	"io"

	"asmkit/internal/assembly"
	"asmkit/internal/output"
	"asmkit/internal/pretty"
)

func init() {
	RegisterLayout("text", func(w io.Writer, in <-chan assembly.Layout, opt Options) error {
		return output.StreamText(w, in, func(l assembly.Layout) string {
			return pretty.RenderLayout(l, opt.Pretty)
		})
	})
	RegisterLayout("tsv", func(w io.Writer, in <-chan assembly.Layout, opt Options) error {
		return output.StreamTSV(w, in, opt.Header)
	})
	RegisterLayout("fasta", func(w io.Writer, in <-chan assembly.Layout, _ Options) error {
		return output.StreamFASTA(w, in)
	})
	RegisterLayout("json", func(w io.Writer, in <-chan assembly.Layout, _ Options) error {
		var buf []assembly.Layout
		for l := range in {
			buf = append(buf, l)
		}
		return output.WriteJSON(w, buf)
	})
	RegisterLayout("jsonl", func(w io.Writer, in <-chan assembly.Layout, _ Options) error {
		lines, done := startJSONL(w, cap(in))
		for l := range in {
			lines <- l
		}
		close(lines)
		return <-done
	})
}
