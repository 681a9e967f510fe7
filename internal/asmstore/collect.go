package asmstore

import (
	"context"

	"asmkit/internal/asm"
	"asmkit/internal/builder"
)

// clearRangeCollector gathers AFG clear ranges, optionally only for a
// wanted set, and halts at the first layout message: every read is
// declared before anything places it.
type clearRangeCollector struct {
	asm.NopVisitor
	want   map[string]struct{} // nil collects all
	ranges builder.ClearRangeMap
}

func (c *clearRangeCollector) VisitRead(r asm.Read) error {
	if c.want != nil {
		if _, ok := c.want[r.ID.External]; !ok {
			return nil
		}
	}
	c.ranges[r.ID.External] = r.Clear
	return nil
}

func (c *clearRangeCollector) VisitUnitig(cb asm.Callback, _ asm.UnitigRecord) (asm.Descent[asm.UnitigVisitor], error) {
	cb.RequestHalt()
	return asm.Skip[asm.UnitigVisitor](), nil
}

func (c *clearRangeCollector) VisitContig(cb asm.Callback, _ asm.ContigRecord) (asm.Descent[asm.ContigVisitor], error) {
	cb.RequestHalt()
	return asm.Skip[asm.ContigVisitor](), nil
}

func (c *clearRangeCollector) VisitScaffold(cb asm.Callback, _ asm.ScaffoldRecord) (asm.Descent[asm.ScaffoldVisitor], error) {
	cb.RequestHalt()
	return asm.Skip[asm.ScaffoldVisitor](), nil
}

func (c *clearRangeCollector) VisitSingleContigScaffold(cb asm.Callback, _ asm.SingleContigScaffold) error {
	cb.RequestHalt()
	return nil
}

// CollectClearRanges reads clear ranges from the start of the file. A nil
// want collects every read.
func CollectClearRanges(ctx context.Context, p *asm.Parser, want map[string]struct{}) (builder.ClearRangeMap, error) {
	c := &clearRangeCollector{want: want, ranges: builder.ClearRangeMap{}}
	if err := p.Accept(ctx, c); err != nil {
		return nil, err
	}
	return c.ranges, nil
}

// readIDCollector lists the reads placed by the first layout message it
// sees, then halts.
type readIDCollector struct {
	asm.NopVisitor
	asm.NopContigVisitor
	kind Kind
	cb   asm.Callback
	ids  map[string]struct{}
	seen bool
}

func (c *readIDCollector) VisitContig(cb asm.Callback, _ asm.ContigRecord) (asm.Descent[asm.ContigVisitor], error) {
	if c.kind != Contigs || c.seen {
		cb.RequestHalt()
		return asm.Skip[asm.ContigVisitor](), nil
	}
	c.seen, c.cb = true, cb
	return asm.Descend[asm.ContigVisitor](c), nil
}

func (c *readIDCollector) VisitUnitig(cb asm.Callback, _ asm.UnitigRecord) (asm.Descent[asm.UnitigVisitor], error) {
	if c.kind != Unitigs || c.seen {
		cb.RequestHalt()
		return asm.Skip[asm.UnitigVisitor](), nil
	}
	c.seen, c.cb = true, cb
	return asm.Descend[asm.UnitigVisitor](c), nil
}

func (c *readIDCollector) VisitReadLayout(p asm.ReadPlacement) error {
	c.ids[p.ReadID] = struct{}{}
	return nil
}

// VisitEnd ends the record's subtree and stops the parse.
func (c *readIDCollector) VisitEnd() error {
	if c.cb != nil {
		c.cb.RequestHalt()
	}
	return nil
}

func (c *readIDCollector) Halted() {}

// collectReadIDs is pass one of Get.
func collectReadIDs(ctx context.Context, p *asm.Parser, kind Kind, at asm.Bookmark) (map[string]struct{}, error) {
	c := &readIDCollector{kind: kind, ids: map[string]struct{}{}}
	if err := p.AcceptFrom(ctx, c, at); err != nil {
		return nil, err
	}
	return c.ids, nil
}
