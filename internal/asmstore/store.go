package asmstore

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/maypok86/otter/v2"

	"asmkit/internal/asm"
	"asmkit/internal/assembly"
	"asmkit/internal/builder"
)

// Options configure a Store.
type Options struct {
	// Filter restricts which ids are indexed. Nil keeps all.
	Filter func(id string) bool
	// CacheSize bounds the number of rebuilt records kept in memory.
	// Zero disables caching.
	CacheSize int
	// Index, when set, is used instead of scanning the file.
	Index *Index
}

// Store serves records of one kind by id. Get is safe for concurrent use.
type Store[T any] struct {
	parser *asm.Parser
	index  *Index
	reads  builder.ReadSequences
	cache  *otter.Cache[string, T]
	build  func(ctx builder.Context, id string, out *T) *builder.Root
	closed atomic.Bool
}

type (
	ContigStore = Store[*assembly.Contig]
	UnitigStore = Store[*assembly.Unitig]
)

// OpenContigs indexes the contigs of p.
func OpenContigs(ctx context.Context, p *asm.Parser, reads builder.ReadSequences, o Options) (*ContigStore, error) {
	return open(ctx, p, Contigs, reads, o, func(bc builder.Context, id string, out **assembly.Contig) *builder.Root {
		return &builder.Root{
			Ctx:        bc,
			WantContig: func(got string) bool { return got == id },
			OnContig: func(cb asm.Callback, c *assembly.Contig) error {
				*out = c
				cb.RequestHalt()
				return nil
			},
		}
	})
}

// OpenUnitigs indexes the unitigs of p.
func OpenUnitigs(ctx context.Context, p *asm.Parser, reads builder.ReadSequences, o Options) (*UnitigStore, error) {
	return open(ctx, p, Unitigs, reads, o, func(bc builder.Context, id string, out **assembly.Unitig) *builder.Root {
		return &builder.Root{
			Ctx:        bc,
			WantUnitig: func(got string) bool { return got == id },
			OnUnitig: func(cb asm.Callback, u *assembly.Unitig) error {
				*out = u
				cb.RequestHalt()
				return nil
			},
		}
	})
}

func open[T any](ctx context.Context, p *asm.Parser, kind Kind, reads builder.ReadSequences, o Options,
	build func(builder.Context, string, *T) *builder.Root) (*Store[T], error) {
	ix := o.Index
	if ix == nil {
		var err error
		if ix, err = BuildIndex(ctx, p, kind, o.Filter); err != nil {
			return nil, err
		}
	} else {
		if ix.Kind() != kind {
			return nil, wrap("open", "", fmt.Errorf("index holds %ss, not %ss", ix.Kind(), kind))
		}
		if ix.Source() != p.Fingerprint() {
			return nil, wrap("open", "", asm.ErrForeignBookmark)
		}
	}
	s := &Store[T]{parser: p, index: ix, reads: reads, build: build}
	if o.CacheSize > 0 {
		c, err := otter.New(&otter.Options[string, T]{MaximumSize: o.CacheSize})
		if err != nil {
			return nil, wrap("open", "", err)
		}
		s.cache = c
	}
	return s, nil
}

// Index returns the store's index.
func (s *Store[T]) Index() *Index { return s.index }

func (s *Store[T]) Contains(id string) bool {
	_, ok := s.index.Lookup(id)
	return ok
}

// IDs returns the indexed ids, sorted.
func (s *Store[T]) IDs() []string { return s.index.IDs() }

func (s *Store[T]) Len() int { return s.index.Len() }

// Get rebuilds the record named id.
func (s *Store[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if s.closed.Load() {
		return zero, wrap("get", id, ErrClosed)
	}
	at, ok := s.index.Lookup(id)
	if !ok {
		return zero, wrap("get", id, ErrNotFound)
	}
	if s.cache != nil {
		if v, hit := s.cache.GetIfPresent(id); hit {
			return v, nil
		}
	}

	want, err := collectReadIDs(ctx, s.parser, s.index.Kind(), at)
	if err != nil {
		return zero, wrap("get", id, err)
	}
	ranges, err := CollectClearRanges(ctx, s.parser, want)
	if err != nil {
		return zero, wrap("get", id, err)
	}

	var out T
	var found bool
	root := s.build(builder.Context{Reads: s.reads, Clear: ranges}, id, &out)
	onC, onU := root.OnContig, root.OnUnitig
	if onC != nil {
		root.OnContig = func(cb asm.Callback, c *assembly.Contig) error { found = true; return onC(cb, c) }
	}
	if onU != nil {
		root.OnUnitig = func(cb asm.Callback, u *assembly.Unitig) error { found = true; return onU(cb, u) }
	}
	if err := s.parser.AcceptFrom(ctx, root, at); err != nil {
		return zero, wrap("get", id, err)
	}
	if !found {
		return zero, wrap("get", id, fmt.Errorf("%s not at its bookmark: %w", s.index.Kind(), ErrNotFound))
	}
	if s.cache != nil {
		s.cache.Set(id, out)
	}
	return out, nil
}

// Close drops cached records; later Gets fail with ErrClosed.
func (s *Store[T]) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	if s.cache != nil {
		s.cache.InvalidateAll()
	}
	return nil
}
