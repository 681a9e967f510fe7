package builder

import (
	"asmkit/internal/asm"
	"asmkit/internal/assembly"
)

// Root is a top-level visitor that rebuilds the contigs and unitigs its
// predicates select and hands each finished layout to a callback. A nil
// predicate selects nothing of that kind.
type Root struct {
	asm.NopVisitor

	Ctx        Context
	WantContig func(id string) bool
	WantUnitig func(id string) bool
	OnContig   func(asm.Callback, *assembly.Contig) error
	OnUnitig   func(asm.Callback, *assembly.Unitig) error
}

func (r *Root) VisitContig(cb asm.Callback, rec asm.ContigRecord) (asm.Descent[asm.ContigVisitor], error) {
	if r.WantContig == nil || !r.WantContig(rec.ID.External) {
		return asm.Skip[asm.ContigVisitor](), nil
	}
	return asm.Descend[asm.ContigVisitor](NewContigVisitor(r.Ctx, rec, func(b *assembly.Builder) error {
		c, err := b.BuildContig()
		if err != nil {
			return err
		}
		if r.OnContig == nil {
			return nil
		}
		return r.OnContig(cb, c)
	})), nil
}

func (r *Root) VisitUnitig(cb asm.Callback, rec asm.UnitigRecord) (asm.Descent[asm.UnitigVisitor], error) {
	if r.WantUnitig == nil || !r.WantUnitig(rec.ID.External) {
		return asm.Skip[asm.UnitigVisitor](), nil
	}
	return asm.Descend[asm.UnitigVisitor](NewUnitigVisitor(r.Ctx, rec, func(b *assembly.Builder) error {
		u, err := b.BuildUnitig()
		if err != nil {
			return err
		}
		if r.OnUnitig == nil {
			return nil
		}
		return r.OnUnitig(cb, u)
	})), nil
}
