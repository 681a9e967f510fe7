package assembly

import (
	"testing"

	"github.com/stretchr/testify/require"

	"asmkit/internal/asm"
)

func TestBuilder_BuildsSortedImmutableLayout(t *testing.T) {
	b := NewBuilder("c1", []byte("ACGTACGT"), []byte("XXXXXXXX"))
	require.NoError(t, b.AddRead(PlacedRead{ID: "r2", Offset: 4, Sequence: []byte("ACGT")}))
	require.NoError(t, b.AddRead(PlacedRead{ID: "r1", Offset: 0, Sequence: []byte("AC-T"), Direction: asm.Reverse}))
	require.Equal(t, 2, b.NumReads())

	c, err := b.BuildContig()
	require.NoError(t, err)
	require.Equal(t, "c1", c.ID())
	require.Equal(t, 8, c.Len())
	require.Equal(t, []string{"r1", "r2"}, c.ReadIDs())
	r1, ok := c.Read("r1")
	require.True(t, ok)
	require.Equal(t, asm.Reverse, r1.Direction)
	require.EqualValues(t, 4, r1.End())

	require.ErrorIs(t, b.AddRead(PlacedRead{ID: "r3", Sequence: []byte("A")}), ErrBuilt)
	_, err = b.BuildUnitig()
	require.ErrorIs(t, err, ErrBuilt)
}

func TestBuilder_Rejects(t *testing.T) {
	b := NewBuilder("u1", []byte("ACGT"), nil)
	require.NoError(t, b.AddRead(PlacedRead{ID: "r1", Sequence: []byte("AC")}))
	require.ErrorContains(t, b.AddRead(PlacedRead{ID: "r1", Sequence: []byte("AC")}), "duplicate")
	require.ErrorContains(t, b.AddRead(PlacedRead{ID: "r2", Offset: 3, Sequence: []byte("AC")}), "outside consensus")

	bad := NewBuilder("u2", []byte("ACGT"), []byte("XX"))
	_, err := bad.BuildUnitig()
	require.ErrorContains(t, err, "quality length")
}

func TestBuilder_Update(t *testing.T) {
	b := NewBuilder("c", []byte("ACGT"), nil)
	require.NoError(t, b.AddRead(PlacedRead{ID: "r", Sequence: []byte("AC")}))
	require.NoError(t, b.Update("r", func(p *PlacedRead) { p.RepeatSurrogate = true }))
	require.Error(t, b.Update("x", func(*PlacedRead) {}))
	u, err := b.BuildUnitig()
	require.NoError(t, err)
	r, _ := u.Read("r")
	require.True(t, r.RepeatSurrogate)
}
