package asmstore

import (
	"context"
	"fmt"

	"asmkit/internal/asm"
	"asmkit/internal/assembly"
	"asmkit/internal/builder"
)

// LoadContigs rebuilds every contig whose id passes filter (nil keeps all)
// in two passes: clear ranges first, then layouts. p must be file-backed.
func LoadContigs(ctx context.Context, p *asm.Parser, reads builder.ReadSequences, filter func(string) bool) (map[string]*assembly.Contig, error) {
	out := map[string]*assembly.Contig{}
	err := load(ctx, p, reads, func(bc builder.Context) *builder.Root {
		return &builder.Root{
			Ctx:        bc,
			WantContig: keep(filter),
			OnContig: func(_ asm.Callback, c *assembly.Contig) error {
				if _, dup := out[c.ID()]; dup {
					return fmt.Errorf("duplicate contig id %q", c.ID())
				}
				out[c.ID()] = c
				return nil
			},
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LoadUnitigs is LoadContigs for unitigs.
func LoadUnitigs(ctx context.Context, p *asm.Parser, reads builder.ReadSequences, filter func(string) bool) (map[string]*assembly.Unitig, error) {
	out := map[string]*assembly.Unitig{}
	err := load(ctx, p, reads, func(bc builder.Context) *builder.Root {
		return &builder.Root{
			Ctx:        bc,
			WantUnitig: keep(filter),
			OnUnitig: func(_ asm.Callback, u *assembly.Unitig) error {
				if _, dup := out[u.ID()]; dup {
					return fmt.Errorf("duplicate unitig id %q", u.ID())
				}
				out[u.ID()] = u
				return nil
			},
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func load(ctx context.Context, p *asm.Parser, reads builder.ReadSequences, root func(builder.Context) *builder.Root) error {
	if !p.CanCreateBookmarks() {
		return wrap("load", "", ErrNeedsFile)
	}
	ranges, err := CollectClearRanges(ctx, p, nil)
	if err != nil {
		return wrap("load", "", err)
	}
	if err := p.Accept(ctx, root(builder.Context{Reads: reads, Clear: ranges})); err != nil {
		return wrap("load", "", err)
	}
	return nil
}

func keep(filter func(string) bool) func(string) bool {
	if filter == nil {
		return func(string) bool { return true }
	}
	return filter
}
