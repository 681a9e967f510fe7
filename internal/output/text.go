package output

import (
	"io"

	"asmkit/internal/assembly"
)

// StreamText writes render(l) for every layout, blank-line separated.
func StreamText(w io.Writer, in <-chan assembly.Layout, render func(assembly.Layout) string) error {
	first := true
	for l := range in {
		if !first {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		first = false
		if _, err := io.WriteString(w, render(l)); err != nil {
			return err
		}
	}
	return nil
}
