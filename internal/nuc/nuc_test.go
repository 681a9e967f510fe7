package nuc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRevComp(t *testing.T) {
	cases := []struct{ in, want string }{
		{"ACGT", "ACGT"},
		{"AAC", "GTT"},
		{"A-CG", "CG-T"},
		{"acgN", "Ncgt"},
		{"AXG", "CNT"},
		{"", ""},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, string(RevComp([]byte(tc.in))), "in=%q", tc.in)
	}
}

func TestInsertGaps_SequentialSingleInsertions(t *testing.T) {
	got, err := InsertGaps([]byte("ACGT"), []int{1, 3})
	require.NoError(t, err)
	require.Equal(t, "A-CG-T", string(got))
}

func TestInsertGaps_Edges(t *testing.T) {
	cases := []struct {
		seq  string
		offs []int
		want string
	}{
		{"ACGT", nil, "ACGT"},
		{"ACGT", []int{0}, "-ACGT"},
		{"ACGT", []int{4}, "ACGT-"},
		{"ACGT", []int{2, 2}, "AC--GT"},
		{"ACGT", []int{0, 4}, "-ACGT-"},
	}
	for _, tc := range cases {
		got, err := InsertGaps([]byte(tc.seq), tc.offs)
		require.NoError(t, err)
		require.Equal(t, tc.want, string(got), "offs=%v", tc.offs)
	}
}

func TestInsertGaps_Rejects(t *testing.T) {
	_, err := InsertGaps([]byte("ACGT"), []int{3, 1})
	require.Error(t, err)
	_, err = InsertGaps([]byte("ACGT"), []int{5})
	require.Error(t, err)
}

func TestInsertGapsDoesNotAliasInput(t *testing.T) {
	in := []byte("ACGT")
	_, err := InsertGaps(in, []int{1})
	require.NoError(t, err)
	require.Equal(t, "ACGT", string(in))
}

func TestOffsets(t *testing.T) {
	g := []byte("A-CG-T")
	require.Equal(t, "ACGT", string(Ungap(g)))
	require.Equal(t, 2, NumGaps(g))
	require.Equal(t, 1, NumGaps(g[:3]))
	require.Zero(t, NumGaps(nil))
}

func TestTrim(t *testing.T) {
	got, err := Trim([]byte("AACCGGTT"), 2, 6)
	require.NoError(t, err)
	require.Equal(t, "CCGG", string(got))
	_, err = Trim([]byte("AC"), 1, 3)
	require.Error(t, err)
}
