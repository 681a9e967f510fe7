package builder

import (
	"asmkit/internal/asm"
	"asmkit/internal/assembly"
)

// EndHook receives the finished accumulator when a layout completes.
type EndHook func(*assembly.Builder) error

// ContigVisitor rebuilds one contig. Variant visits are ignored; embed it
// and override VisitVariant to post-process them. Unitig placements of
// stone or pebble type mark the reads they cover as repeat surrogates.
type ContigVisitor struct {
	ctx        Context
	b          *assembly.Builder
	surrogates []asm.Range
	onEnd      EndHook
}

// NewContigVisitor starts a contig accumulator from rec.
func NewContigVisitor(c Context, rec asm.ContigRecord, onEnd EndHook) *ContigVisitor {
	return &ContigVisitor{
		ctx:   c,
		b:     assembly.NewBuilder(rec.ID.External, []byte(rec.Consensus), []byte(rec.Quality)),
		onEnd: onEnd,
	}
}

func (v *ContigVisitor) VisitVariant(asm.VariantRecord) error { return nil }

func (v *ContigVisitor) VisitReadLayout(p asm.ReadPlacement) error {
	r, err := PlaceRead(v.ctx, p)
	if err != nil {
		return err
	}
	return v.b.AddRead(r)
}

func (v *ContigVisitor) VisitUnitigLayout(p asm.UnitigPlacement) error {
	if p.Type.IsSurrogate() {
		v.surrogates = append(v.surrogates, p.Range)
	}
	return nil
}

func (v *ContigVisitor) VisitEnd() error {
	if err := markSurrogates(v.b, v.surrogates); err != nil {
		return err
	}
	if v.onEnd == nil {
		return nil
	}
	return v.onEnd(v.b)
}

func (v *ContigVisitor) Halted() {}

// Builder exposes the accumulator, e.g. to embedding visitors.
func (v *ContigVisitor) Builder() *assembly.Builder { return v.b }

// UnitigVisitor rebuilds one unitig.
type UnitigVisitor struct {
	ctx   Context
	b     *assembly.Builder
	onEnd EndHook
}

// NewUnitigVisitor starts a unitig accumulator from rec.
func NewUnitigVisitor(c Context, rec asm.UnitigRecord, onEnd EndHook) *UnitigVisitor {
	return &UnitigVisitor{
		ctx:   c,
		b:     assembly.NewBuilder(rec.ID.External, []byte(rec.Consensus), []byte(rec.Quality)),
		onEnd: onEnd,
	}
}

func (v *UnitigVisitor) VisitReadLayout(p asm.ReadPlacement) error {
	r, err := PlaceRead(v.ctx, p)
	if err != nil {
		return err
	}
	return v.b.AddRead(r)
}

func (v *UnitigVisitor) VisitEnd() error {
	if v.onEnd == nil {
		return nil
	}
	return v.onEnd(v.b)
}

func (v *UnitigVisitor) Halted() {}

func (v *UnitigVisitor) Builder() *assembly.Builder { return v.b }

// markSurrogates flags reads lying entirely inside a surrogate placement.
func markSurrogates(b *assembly.Builder, ranges []asm.Range) error {
	if len(ranges) == 0 {
		return nil
	}
	var ids []string
	b.Each(func(r assembly.PlacedRead) {
		for _, rg := range ranges {
			if r.Offset >= rg.Begin && r.End() <= rg.End {
				ids = append(ids, r.ID)
				return
			}
		}
	})
	for _, id := range ids {
		if err := b.Update(id, func(p *assembly.PlacedRead) { p.RepeatSurrogate = true }); err != nil {
			return err
		}
	}
	return nil
}
