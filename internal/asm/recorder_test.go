package asm

import (
	"fmt"
	"strings"
)

// recorder logs every visit as a short event string.
type recorder struct {
	events []string

	// haltOnRead requests a halt while visiting this read placement.
	haltOnRead string
	// bookmarks collects a bookmark per contig id.
	bookmarks map[string]Bookmark
	// skipContigs makes VisitContig skip.
	skipContigs bool

	cb Callback
}

func (r *recorder) add(format string, a ...any) { r.events = append(r.events, fmt.Sprintf(format, a...)) }

func (r *recorder) VisitLibraryStats(s LibraryStats) error {
	r.add("MDI %s %v", s.ID.External, s.Histogram)
	return nil
}
func (r *recorder) VisitRead(x Read) error {
	r.add("AFG %s %c [%d,%d)", x.ID.External, x.MateStatus, x.Clear.Begin, x.Clear.End)
	return nil
}
func (r *recorder) VisitMatePair(m MatePair) error {
	r.add("AMP %s %s", m.Read1, m.Read2)
	return nil
}
func (r *recorder) VisitUnitig(cb Callback, u UnitigRecord) (Descent[UnitigVisitor], error) {
	r.add("UTG %s %d %s", u.ID.External, u.NumReads, u.Consensus)
	r.cb = cb
	return Descend[UnitigVisitor](&childRecorder{r: r, name: u.ID.External}), nil
}
func (r *recorder) VisitUnitigLink(l LinkRecord) error {
	r.add("ULK %s %s %d", l.ID1, l.ID2, len(l.Evidence))
	return nil
}
func (r *recorder) VisitContig(cb Callback, c ContigRecord) (Descent[ContigVisitor], error) {
	r.add("CCO %s %d/%d/%d", c.ID.External, c.NumVariants, c.NumReads, c.NumUnitigs)
	r.cb = cb
	if r.bookmarks != nil {
		b, err := cb.CreateBookmark()
		if err != nil {
			return Skip[ContigVisitor](), err
		}
		r.bookmarks[c.ID.External] = b
	}
	if r.skipContigs {
		return Skip[ContigVisitor](), nil
	}
	return Descend[ContigVisitor](&childRecorder{r: r, name: c.ID.External}), nil
}
func (r *recorder) VisitContigLink(l LinkRecord) error {
	r.add("CLK %s %s %d", l.ID1, l.ID2, len(l.Evidence))
	return nil
}
func (r *recorder) VisitScaffold(cb Callback, s ScaffoldRecord) (Descent[ScaffoldVisitor], error) {
	r.add("SCF %s %d", s.ID.External, s.NumContigPairs)
	return Descend[ScaffoldVisitor](&childRecorder{r: r, name: s.ID.External}), nil
}
func (r *recorder) VisitSingleContigScaffold(cb Callback, s SingleContigScaffold) error {
	r.add("SCF1 %s %s", s.ID.External, s.ContigID)
	return nil
}
func (r *recorder) VisitScaffoldLink(l LinkRecord) error {
	r.add("SLK %s %s %d", l.ID1, l.ID2, len(l.Evidence))
	return nil
}
func (r *recorder) VisitEnd() error { r.add("END"); return nil }
func (r *recorder) Halted()         { r.add("HALTED") }

func (r *recorder) String() string { return strings.Join(r.events, "\n") }

type childRecorder struct {
	r    *recorder
	name string
}

func (c *childRecorder) VisitReadLayout(p ReadPlacement) error {
	c.r.add("  MPS %s %s [%d,%d) %s %v", c.name, p.ReadID, p.Range.Begin, p.Range.End, p.Direction, p.GapOffsets)
	if c.r.haltOnRead == p.ReadID {
		c.r.cb.RequestHalt()
	}
	return nil
}
func (c *childRecorder) VisitUnitigLayout(p UnitigPlacement) error {
	c.r.add("  UPS %s %s %s", c.name, p.UnitigID, p.Type)
	return nil
}
func (c *childRecorder) VisitVariant(v VariantRecord) error {
	var parts []string
	for _, x := range v.Variants {
		parts = append(parts, fmt.Sprintf("%s:%d:%s", x.Sequence, x.Weight, strings.Join(x.ReadIDs, ",")))
	}
	c.r.add("  VAR %s %s", c.name, strings.Join(parts, " "))
	return nil
}
func (c *childRecorder) VisitContigPair(p ContigPair) error {
	c.r.add("  CTP %s %s %s", c.name, p.Contig1, p.Contig2)
	return nil
}
func (c *childRecorder) VisitEnd() error { c.r.add("  END %s", c.name); return nil }
func (c *childRecorder) Halted()         { c.r.add("  HALTED %s", c.name) }
