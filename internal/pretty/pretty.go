// Package pretty draws ASCII tilings of contig and unitig layouts.
package pretty

import (
	"fmt"
	"strings"

	"asmkit/internal/asm"
	"asmkit/internal/assembly"
)

// Options control the ASCII rendering.
type Options struct {
	// Width of each consensus window; <= 0 renders one window.
	Width int

	// Print MatchGlyph where a read agrees with the consensus.
	DotMatches bool
	MatchGlyph byte

	// Mark repeat-surrogate reads after their id.
	SurrogateTag string
}

var DefaultOptions = Options{
	Width:        100,
	DotMatches:   false,
	MatchGlyph:   '.',
	SurrogateTag: " surrogate",
}

const linePrefix = "# "

func strand(p assembly.PlacedRead) string {
	if p.Direction == asm.Forward {
		return "+"
	}
	return "-"
}

// RenderLayout returns the header, the consensus and every read tiled
// underneath it, window by window.
func RenderLayout(l assembly.Layout, opt Options) string {
	cons := l.Consensus()
	reads := l.Reads()
	width := opt.Width
	if width <= 0 || width > len(cons) {
		width = len(cons)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s %s len=%d reads=%d\n", linePrefix, l.Kind(), l.ID(), len(cons), len(reads))
	if width == 0 {
		return b.String()
	}
	label := len(fmt.Sprint(len(cons)))
	for start := 0; start < len(cons); start += width {
		end := start + width
		if end > len(cons) {
			end = len(cons)
		}
		fmt.Fprintf(&b, "%*d %s\n", label, start, cons[start:end])
		for _, r := range reads {
			rs, re := int(r.Offset), int(r.End())
			if re <= start || rs >= end {
				continue
			}
			lo, hi := max(rs, start), min(re, end)
			b.WriteString(strings.Repeat(" ", label+1+lo-start))
			for i := lo; i < hi; i++ {
				c := r.Sequence[i-rs]
				if opt.DotMatches && c == cons[i] {
					c = opt.MatchGlyph
				}
				b.WriteByte(c)
			}
			b.WriteString(strings.Repeat(" ", end-hi))
			fmt.Fprintf(&b, "  %s %s", r.ID, strand(r))
			if r.RepeatSurrogate {
				b.WriteString(opt.SurrogateTag)
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}
