package nuc

import "fmt"

// Trim returns a copy of seq[begin:end].
func Trim(seq []byte, begin, end int) ([]byte, error) {
	if begin < 0 || end < begin || end > len(seq) {
		return nil, fmt.Errorf("trim [%d,%d) out of bounds for length %d", begin, end, len(seq))
	}
	return append([]byte(nil), seq[begin:end]...), nil
}

// InsertGaps inserts one Gap per offset. Offsets are ungapped positions in
// seq and must be ascending; each is applied on its own, shifted by the
// number of gaps already inserted, so "ACGT" with [1,3] becomes "A-CG-T".
// Repeated offsets insert runs of gaps.
func InsertGaps(seq []byte, offsets []int) ([]byte, error) {
	out := make([]byte, 0, len(seq)+len(offsets))
	out = append(out, seq...)
	prev := 0
	for i, off := range offsets {
		if off < prev {
			return nil, fmt.Errorf("gap offset %d at index %d is not ascending (previous %d)", off, i, prev)
		}
		if off > len(seq) {
			return nil, fmt.Errorf("gap offset %d beyond ungapped length %d", off, len(seq))
		}
		prev = off
		at := off + i
		out = append(out, 0)
		copy(out[at+1:], out[at:])
		out[at] = Gap
	}
	return out, nil
}

// Ungap returns seq without gaps.
func Ungap(seq []byte) []byte {
	out := make([]byte, 0, len(seq))
	for _, b := range seq {
		if b != Gap {
			out = append(out, b)
		}
	}
	return out
}

// NumGaps counts gap positions.
func NumGaps(seq []byte) int {
	n := 0
	for _, b := range seq {
		if b == Gap {
			n++
		}
	}
	return n
}
