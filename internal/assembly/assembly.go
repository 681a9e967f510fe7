// Package assembly holds the immutable contig and unitig models rebuilt
// from an ASM file, and the write-once Builder that produces them.
package assembly

import (
	"sort"

	"asmkit/internal/asm"
)

// PlacedRead is a read laid out on a consensus.
type PlacedRead struct {
	ID              string
	Direction       asm.Direction
	Offset          int64     // gapped start on the consensus
	Sequence        []byte    // trimmed, oriented, gapped
	Clear           asm.Range // clear range in raw read coordinates
	FullLength      int64     // ungapped length of the raw read
	RepeatSurrogate bool
}

// End is the gapped end (exclusive) on the consensus.
func (p PlacedRead) End() int64 { return p.Offset + int64(len(p.Sequence)) }

// layout is the shared body of Contig and Unitig.
type layout struct {
	id        string
	consensus []byte
	quality   []byte
	reads     map[string]PlacedRead
	order     []string // by offset, then id
}

func (l *layout) ID() string { return l.id }

// Consensus is the gapped consensus; callers must not modify it.
func (l *layout) Consensus() []byte { return l.consensus }

// Quality is the gapped consensus quality; callers must not modify it.
func (l *layout) Quality() []byte { return l.quality }

func (l *layout) Len() int { return len(l.consensus) }

func (l *layout) NumReads() int { return len(l.reads) }

// Read looks a placed read up by id.
func (l *layout) Read(id string) (PlacedRead, bool) {
	r, ok := l.reads[id]
	return r, ok
}

// Reads returns the placed reads ordered by offset, then id.
func (l *layout) Reads() []PlacedRead {
	out := make([]PlacedRead, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.reads[id])
	}
	return out
}

// ReadIDs returns read ids ordered like Reads.
func (l *layout) ReadIDs() []string { return append([]string(nil), l.order...) }

// Layout is what contigs and unitigs have in common.
type Layout interface {
	Kind() string
	ID() string
	Consensus() []byte
	Quality() []byte
	Len() int
	NumReads() int
	Reads() []PlacedRead
}

// Contig is a finished, immutable contig.
type Contig struct{ layout }

func (*Contig) Kind() string { return "contig" }

// Unitig is a finished, immutable unitig.
type Unitig struct{ layout }

func (*Unitig) Kind() string { return "unitig" }

var (
	_ Layout = (*Contig)(nil)
	_ Layout = (*Unitig)(nil)
)

func newLayout(id string, consensus, quality []byte, reads map[string]PlacedRead) layout {
	order := make([]string, 0, len(reads))
	for rid := range reads {
		order = append(order, rid)
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := reads[order[i]], reads[order[j]]
		if a.Offset != b.Offset {
			return a.Offset < b.Offset
		}
		return a.ID < b.ID
	})
	return layout{id: id, consensus: consensus, quality: quality, reads: reads, order: order}
}
