package builder

import (
	"errors"
	"fmt"

	"asmkit/internal/asm"
	"asmkit/internal/assembly"
	"asmkit/internal/nuc"
)

var (
	// ErrMissingSequence means a placed read has no raw sequence.
	ErrMissingSequence = errors.New("missing raw sequence")
	// ErrMissingClearRange means a placed read was never declared by an {AFG
	// message before being referenced.
	ErrMissingClearRange = errors.New("missing clear range")
)

// ReadSequences returns the full-length raw sequence of a read.
type ReadSequences interface {
	Sequence(id string) ([]byte, error)
}

// ClearRanges returns the clear range of a read.
type ClearRanges interface {
	ClearRange(id string) (asm.Range, error)
}

// Context bundles the read-only collaborators of a build.
type Context struct {
	Reads ReadSequences
	Clear ClearRanges
}

// PlaceRead rebuilds the gapped read of an {MPS placement.
func PlaceRead(c Context, p asm.ReadPlacement) (assembly.PlacedRead, error) {
	raw, err := c.Reads.Sequence(p.ReadID)
	if err != nil {
		return assembly.PlacedRead{}, fmt.Errorf("%w %q: %w", ErrMissingSequence, p.ReadID, err)
	}
	clr, err := c.Clear.ClearRange(p.ReadID)
	if err != nil {
		return assembly.PlacedRead{}, fmt.Errorf("%w %q: %w", ErrMissingClearRange, p.ReadID, err)
	}
	seq, err := Gapped(raw, clr, p.Direction, p.GapOffsets)
	if err != nil {
		return assembly.PlacedRead{}, fmt.Errorf("read %q: %w", p.ReadID, err)
	}
	if int64(len(seq)) != p.Range.Len() {
		return assembly.PlacedRead{}, fmt.Errorf("read %q: gapped length %d does not match placement [%d,%d)",
			p.ReadID, len(seq), p.Range.Begin, p.Range.End)
	}
	return assembly.PlacedRead{
		ID:         p.ReadID,
		Direction:  p.Direction,
		Offset:     p.Range.Begin,
		Sequence:   seq,
		Clear:      clr,
		FullLength: int64(len(raw)),
	}, nil
}

// Gapped trims raw to clr, orients it and inserts gaps.
func Gapped(raw []byte, clr asm.Range, dir asm.Direction, gaps []int) ([]byte, error) {
	seq, err := nuc.Trim(raw, int(clr.Begin), int(clr.End))
	if err != nil {
		return nil, err
	}
	if dir == asm.Reverse {
		seq = nuc.RevComp(seq)
	}
	return nuc.InsertGaps(seq, gaps)
}
