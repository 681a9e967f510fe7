package asmstore

import (
	"context"
	"sort"

	"asmkit/internal/asm"
)

// Summary counts the messages of one file.
type Summary struct {
	Libraries       int
	Reads           int
	MatePairs       int
	Unitigs         int
	Contigs         int
	PlacedContigs   int
	Scaffolds       int
	SingleScaffolds int
	UnitigLinks     int
	ContigLinks     int
	ScaffoldLinks   int
	PlacedReads     int   // sum of contig npc counts
	Variants        int   // sum of contig nvr counts
	ConsensusBases  int64 // sum of contig len fields

	// Sub-block counts, filled by Validate only.
	ReadPlacements   int
	UnitigPlacements int
	ContigPairs      int

	UnitigsByStatus  map[string]int
	MateStatusCounts map[string]int
}

type summarizer struct {
	asm.NopVisitor
	asm.NopContigVisitor
	s    Summary
	deep bool
}

func (z *summarizer) VisitReadLayout(asm.ReadPlacement) error { z.s.ReadPlacements++; return nil }

func (z *summarizer) VisitUnitigLayout(asm.UnitigPlacement) error {
	z.s.UnitigPlacements++
	return nil
}

func (z *summarizer) VisitContigPair(asm.ContigPair) error { z.s.ContigPairs++; return nil }

func (z *summarizer) VisitEnd() error { return nil }
func (z *summarizer) Halted()         {}

func (z *summarizer) VisitLibraryStats(asm.LibraryStats) error { z.s.Libraries++; return nil }

func (z *summarizer) VisitRead(r asm.Read) error {
	z.s.Reads++
	z.s.MateStatusCounts[r.MateStatus.String()]++
	return nil
}

func (z *summarizer) VisitMatePair(asm.MatePair) error       { z.s.MatePairs++; return nil }
func (z *summarizer) VisitUnitigLink(asm.LinkRecord) error   { z.s.UnitigLinks++; return nil }
func (z *summarizer) VisitContigLink(asm.LinkRecord) error   { z.s.ContigLinks++; return nil }
func (z *summarizer) VisitScaffoldLink(asm.LinkRecord) error { z.s.ScaffoldLinks++; return nil }

func (z *summarizer) VisitUnitig(_ asm.Callback, u asm.UnitigRecord) (asm.Descent[asm.UnitigVisitor], error) {
	z.s.Unitigs++
	z.s.UnitigsByStatus[u.Status.String()]++
	if z.deep {
		return asm.Descend[asm.UnitigVisitor](z), nil
	}
	return asm.Skip[asm.UnitigVisitor](), nil
}

func (z *summarizer) VisitContig(_ asm.Callback, c asm.ContigRecord) (asm.Descent[asm.ContigVisitor], error) {
	z.s.Contigs++
	if c.Placed {
		z.s.PlacedContigs++
	}
	z.s.PlacedReads += c.NumReads
	z.s.Variants += c.NumVariants
	z.s.ConsensusBases += c.Length
	if z.deep {
		return asm.Descend[asm.ContigVisitor](z), nil
	}
	return asm.Skip[asm.ContigVisitor](), nil
}

func (z *summarizer) VisitScaffold(asm.Callback, asm.ScaffoldRecord) (asm.Descent[asm.ScaffoldVisitor], error) {
	z.s.Scaffolds++
	if z.deep {
		return asm.Descend[asm.ScaffoldVisitor](z), nil
	}
	return asm.Skip[asm.ScaffoldVisitor](), nil
}

func (z *summarizer) VisitSingleContigScaffold(asm.Callback, asm.SingleContigScaffold) error {
	z.s.Scaffolds++
	z.s.SingleScaffolds++
	return nil
}

// Summarize counts everything in one pass, skipping every subtree.
// It works on stream parsers too.
func Summarize(ctx context.Context, p *asm.Parser) (Summary, error) {
	return summarize(ctx, p, false, "summarize")
}

// Validate is Summarize descending into every sub-block, so each field of
// the file is parsed and checked.
func Validate(ctx context.Context, p *asm.Parser) (Summary, error) {
	return summarize(ctx, p, true, "validate")
}

func summarize(ctx context.Context, p *asm.Parser, deep bool, op string) (Summary, error) {
	z := &summarizer{deep: deep, s: Summary{UnitigsByStatus: map[string]int{}, MateStatusCounts: map[string]int{}}}
	if err := p.Accept(ctx, z); err != nil {
		return Summary{}, wrap(op, "", err)
	}
	return z.s, nil
}

type idLister struct {
	asm.NopVisitor
	kind Kind
	ids  []string
}

func (l *idLister) VisitContig(_ asm.Callback, c asm.ContigRecord) (asm.Descent[asm.ContigVisitor], error) {
	if l.kind == Contigs {
		l.ids = append(l.ids, c.ID.External)
	}
	return asm.Skip[asm.ContigVisitor](), nil
}

func (l *idLister) VisitUnitig(_ asm.Callback, u asm.UnitigRecord) (asm.Descent[asm.UnitigVisitor], error) {
	if l.kind == Unitigs {
		l.ids = append(l.ids, u.ID.External)
	}
	return asm.Skip[asm.UnitigVisitor](), nil
}

// ListIDs returns the ids of every record of kind, sorted. Unlike
// BuildIndex it needs no bookmarks.
func ListIDs(ctx context.Context, p *asm.Parser, kind Kind) ([]string, error) {
	l := &idLister{kind: kind}
	if err := p.Accept(ctx, l); err != nil {
		return nil, wrap("ids", "", err)
	}
	sort.Strings(l.ids)
	return l.ids, nil
}
