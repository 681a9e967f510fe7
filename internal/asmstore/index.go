package asmstore

import (
	"context"
	"fmt"
	"sort"

	"asmkit/internal/asm"
)

// Index maps record ids of one kind to bookmarks into one file.
type Index struct {
	kind    Kind
	source  asm.Fingerprint
	entries map[string]asm.Bookmark
	ids     []string
}

// NewIndex assembles an Index from bookmarks restored elsewhere, e.g. a
// sidecar database.
func NewIndex(kind Kind, source asm.Fingerprint, entries map[string]asm.Bookmark) (*Index, error) {
	for id, b := range entries {
		if b.Source() != source {
			return nil, fmt.Errorf("bookmark for %s: %w", id, asm.ErrForeignBookmark)
		}
	}
	ix := &Index{kind: kind, source: source, entries: entries}
	ix.sortIDs()
	return ix, nil
}

func (ix *Index) sortIDs() {
	ix.ids = make([]string, 0, len(ix.entries))
	for id := range ix.entries {
		ix.ids = append(ix.ids, id)
	}
	sort.Strings(ix.ids)
}

func (ix *Index) Kind() Kind { return ix.kind }
func (ix *Index) Source() asm.Fingerprint { return ix.source }
func (ix *Index) Len() int { return len(ix.entries) }
func (ix *Index) IDs() []string { return append([]string(nil), ix.ids...) }
func (ix *Index) Lookup(id string) (asm.Bookmark, bool) {
	b, ok := ix.entries[id]
	return b, ok
}

// Each visits entries in id order.
func (ix *Index) Each(fn func(id string, b asm.Bookmark) error) error {
	for _, id := range ix.ids {
		if err := fn(id, ix.entries[id]); err != nil {
			return err
		}
	}
	return nil
}

type indexer struct {
	asm.NopVisitor
	kind    Kind
	filter  func(string) bool
	entries map[string]asm.Bookmark
}

func (x *indexer) add(cb asm.Callback, id string) error {
	if x.filter != nil && !x.filter(id) {
		return nil
	}
	if _, dup := x.entries[id]; dup {
		return fmt.Errorf("duplicate %s id %q", x.kind, id)
	}
	b, err := cb.CreateBookmark()
	if err != nil {
		return err
	}
	x.entries[id] = b
	return nil
}

func (x *indexer) VisitContig(cb asm.Callback, rec asm.ContigRecord) (asm.Descent[asm.ContigVisitor], error) {
	if x.kind == Contigs {
		if err := x.add(cb, rec.ID.External); err != nil {
			return asm.Skip[asm.ContigVisitor](), err
		}
	}
	return asm.Skip[asm.ContigVisitor](), nil
}

func (x *indexer) VisitUnitig(cb asm.Callback, rec asm.UnitigRecord) (asm.Descent[asm.UnitigVisitor], error) {
	if x.kind == Unitigs {
		if err := x.add(cb, rec.ID.External); err != nil {
			return asm.Skip[asm.UnitigVisitor](), err
		}
	}
	return asm.Skip[asm.UnitigVisitor](), nil
}

// BuildIndex makes one full pass over p, bookmarking every record of kind
// whose id passes filter (nil keeps all).
func BuildIndex(ctx context.Context, p *asm.Parser, kind Kind, filter func(string) bool) (*Index, error) {
	if !p.CanCreateBookmarks() {
		return nil, wrap("index", "", asm.ErrBookmarkUnsupported)
	}
	x := &indexer{kind: kind, filter: filter, entries: map[string]asm.Bookmark{}}
	if err := p.Accept(ctx, x); err != nil {
		return nil, wrap("index", "", err)
	}
	ix := &Index{kind: kind, source: p.Fingerprint(), entries: x.entries}
	ix.sortIDs()
	return ix, nil
}
