package assembly

import (
	"errors"
	"fmt"
)

// ErrBuilt is returned when a Builder is used after Build.
var ErrBuilt = errors.New("assembly: builder already built")

// Builder accumulates placed reads for one contig or unitig. It is
// write-once: after Build it rejects further changes.
type Builder struct {
	id        string
	consensus []byte
	quality   []byte
	reads     map[string]PlacedRead
	built     bool
}

// NewBuilder starts a layout over a gapped consensus and its quality.
func NewBuilder(id string, consensus, quality []byte) *Builder {
	return &Builder{
		id:        id,
		consensus: append([]byte(nil), consensus...),
		quality:   append([]byte(nil), quality...),
		reads:     make(map[string]PlacedRead),
	}
}

func (b *Builder) ID() string { return b.id }

// ConsensusLen is the gapped consensus length.
func (b *Builder) ConsensusLen() int { return len(b.consensus) }

// NumReads is the number of reads added so far.
func (b *Builder) NumReads() int { return len(b.reads) }

// AddRead places r. Read ids are unique and reads must lie on the consensus.
func (b *Builder) AddRead(r PlacedRead) error {
	if b.built {
		return ErrBuilt
	}
	if _, dup := b.reads[r.ID]; dup {
		return fmt.Errorf("assembly: %s: duplicate read %q", b.id, r.ID)
	}
	if r.Offset < 0 || r.End() > int64(len(b.consensus)) {
		return fmt.Errorf("assembly: %s: read %q [%d,%d) outside consensus of length %d",
			b.id, r.ID, r.Offset, r.End(), len(b.consensus))
	}
	r.Sequence = append([]byte(nil), r.Sequence...)
	b.reads[r.ID] = r
	return nil
}

// Update rewrites a placed read in place; used by post-processing hooks
// before Build.
func (b *Builder) Update(id string, fn func(*PlacedRead)) error {
	if b.built {
		return ErrBuilt
	}
	r, ok := b.reads[id]
	if !ok {
		return fmt.Errorf("assembly: %s: no read %q", b.id, id)
	}
	fn(&r)
	r.ID = id
	b.reads[id] = r
	return nil
}

// Each visits reads in no particular order.
func (b *Builder) Each(fn func(PlacedRead)) {
	for _, r := range b.reads {
		fn(r)
	}
}

func (b *Builder) seal() (layout, error) {
	if b.built {
		return layout{}, ErrBuilt
	}
	if len(b.quality) != 0 && len(b.quality) != len(b.consensus) {
		return layout{}, fmt.Errorf("assembly: %s: quality length %d != consensus length %d",
			b.id, len(b.quality), len(b.consensus))
	}
	b.built = true
	return newLayout(b.id, b.consensus, b.quality, b.reads), nil
}

// BuildContig freezes the builder into a Contig.
func (b *Builder) BuildContig() (*Contig, error) {
	l, err := b.seal()
	if err != nil {
		return nil, err
	}
	return &Contig{l}, nil
}

// BuildUnitig freezes the builder into a Unitig.
func (b *Builder) BuildUnitig() (*Unitig, error) {
	l, err := b.seal()
	if err != nil {
		return nil, err
	}
	return &Unitig{l}, nil
}
