package output

import (
	"fmt"
	"io"

	"asmkit/internal/assembly"
	"asmkit/internal/nuc"
)

// FASTALineWidth wraps consensus records; 0 disables wrapping.
const FASTALineWidth = 60

// WriteFASTARecord writes the ungapped consensus of l.
func WriteFASTARecord(w io.Writer, l assembly.Layout) error {
	seq := nuc.Ungap(l.Consensus())
	if _, err := fmt.Fprintf(w, ">%s kind=%s len=%d gapped_len=%d reads=%d\n",
		l.ID(), l.Kind(), len(seq), l.Len(), l.NumReads()); err != nil {
		return err
	}
	for len(seq) > 0 {
		n := len(seq)
		if FASTALineWidth > 0 && n > FASTALineWidth {
			n = FASTALineWidth
		}
		if _, err := fmt.Fprintf(w, "%s\n", seq[:n]); err != nil {
			return err
		}
		seq = seq[n:]
	}
	return nil
}

// StreamFASTA streams consensus records from a channel to the writer.
func StreamFASTA(w io.Writer, in <-chan assembly.Layout) error {
	for l := range in {
		if err := WriteFASTARecord(w, l); err != nil {
			return err
		}
	}
	return nil
}
