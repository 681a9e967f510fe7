package fasta

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// ErrNoSequence is returned by Sequences.Sequence for unknown ids.
var ErrNoSequence = errors.New("no sequence for read")

// Sequences maps read ids to full-length raw sequences.
type Sequences map[string][]byte

// Sequence returns the raw sequence of id.
func (s Sequences) Sequence(id string) ([]byte, error) {
	seq, ok := s[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrNoSequence, id)
	}
	return seq, nil
}

// IDs returns the ids in sorted order.
func (s Sequences) IDs() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Load reads every record of paths. keep, when non-nil, filters ids.
// Duplicate ids across or within files are an error.
func Load(ctx context.Context, paths []string, keep func(id string) bool) (Sequences, error) {
	out := Sequences{}
	for _, p := range paths {
		err := StreamPathCtx(ctx, p, func(r Record) error {
			if keep != nil && !keep(r.ID) {
				return nil
			}
			if _, dup := out[r.ID]; dup {
				return fmt.Errorf("duplicate read id %q", r.ID)
			}
			out[r.ID] = r.Seq
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
