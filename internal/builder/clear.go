package builder

import (
	"fmt"

	"asmkit/internal/asm"
)

// ClearRangeMap is a ClearRanges backed by a map.
type ClearRangeMap map[string]asm.Range

func (m ClearRangeMap) ClearRange(id string) (asm.Range, error) {
	r, ok := m[id]
	if !ok {
		return asm.Range{}, fmt.Errorf("no {AFG message for %q", id)
	}
	return r, nil
}
