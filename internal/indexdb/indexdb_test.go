package indexdb

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"asmkit/internal/asm"
	"asmkit/internal/asmstore"
	"asmkit/internal/asmtest"
	"asmkit/internal/fasta"
)

func TestSaveLoadRoundTripServesGets(t *testing.T) {
	ctx := context.Background()
	path := asmtest.Write(t, "a.asm", asmtest.Assembly)
	p, err := asm.Open(path)
	require.NoError(t, err)

	sidecar := SidecarPath(path, ".idx.sqlite")
	ix, built, err := LoadOrBuild(ctx, sidecar, p, asmstore.Contigs)
	require.NoError(t, err)
	require.True(t, built)
	require.Equal(t, []string{"A", "B"}, ix.IDs())

	// A fresh parser on the same file reuses the sidecar.
	q, err := asm.Open(path)
	require.NoError(t, err)
	again, built, err := LoadOrBuild(ctx, sidecar, q, asmstore.Contigs)
	require.NoError(t, err)
	require.False(t, built)
	for _, id := range ix.IDs() {
		want, _ := ix.Lookup(id)
		got, ok := again.Lookup(id)
		require.True(t, ok)
		require.Equal(t, want.Offset(), got.Offset())
	}

	reads, err := fasta.Load(ctx, []string{asmtest.Write(t, "r.fa", asmtest.Reads)}, nil)
	require.NoError(t, err)
	s, err := asmstore.OpenContigs(ctx, q, reads, asmstore.Options{Index: again})
	require.NoError(t, err)
	b, err := s.Get(ctx, "B")
	require.NoError(t, err)
	require.Equal(t, []string{"r3"}, b.ReadIDs())
}

func TestKindsShareOneSidecar(t *testing.T) {
	ctx := context.Background()
	path := asmtest.Write(t, "a.asm", asmtest.Assembly)
	p, err := asm.Open(path)
	require.NoError(t, err)
	sidecar := filepath.Join(t.TempDir(), "idx.sqlite")

	_, _, err = LoadOrBuild(ctx, sidecar, p, asmstore.Contigs)
	require.NoError(t, err)
	_, _, err = LoadOrBuild(ctx, sidecar, p, asmstore.Unitigs)
	require.NoError(t, err)

	d, err := Open(ctx, sidecar)
	require.NoError(t, err)
	defer d.Close()
	u, err := d.Load(ctx, p, asmstore.Unitigs)
	require.NoError(t, err)
	require.Equal(t, []string{"U1", "U2"}, u.IDs())
	c, err := d.Load(ctx, p, asmstore.Contigs)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
}

func TestStaleSidecarIsRebuilt(t *testing.T) {
	ctx := context.Background()
	path := asmtest.Write(t, "a.asm", asmtest.Assembly)
	p, err := asm.Open(path)
	require.NoError(t, err)
	sidecar := SidecarPath(path, ".idx")
	_, _, err = LoadOrBuild(ctx, sidecar, p, asmstore.Contigs)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("\n"+asmtest.Assembly), 0o644))
	q, err := asm.Open(path)
	require.NoError(t, err)

	d, err := Open(ctx, sidecar)
	require.NoError(t, err)
	_, err = d.Load(ctx, q, asmstore.Contigs)
	require.ErrorIs(t, err, ErrStale)
	require.NoError(t, d.Close())

	ix, built, err := LoadOrBuild(ctx, sidecar, q, asmstore.Contigs)
	require.NoError(t, err)
	require.True(t, built)
	a, _ := ix.Lookup("A")
	require.Equal(t, q.Fingerprint(), a.Source())
}

func TestLoad_Empty(t *testing.T) {
	ctx := context.Background()
	p, err := asm.Open(asmtest.Write(t, "a.asm", asmtest.Assembly))
	require.NoError(t, err)
	d, err := Open(ctx, filepath.Join(t.TempDir(), "x.sqlite"))
	require.NoError(t, err)
	defer d.Close()
	_, err = d.Load(ctx, p, asmstore.Contigs)
	require.ErrorIs(t, err, ErrNoIndex)

	require.NoError(t, Remove(filepath.Join(t.TempDir(), "missing")))
}

func TestEmptyKindStaysCurrent(t *testing.T) {
	ctx := context.Background()
	readsOnly := asmtest.Assembly[:strings.Index(asmtest.Assembly, "{UTG")]
	p, err := asm.Open(asmtest.Write(t, "reads.asm", readsOnly))
	require.NoError(t, err)
	sidecar := filepath.Join(t.TempDir(), "idx.sqlite")

	ix, built, err := LoadOrBuild(ctx, sidecar, p, asmstore.Unitigs)
	require.NoError(t, err)
	require.True(t, built)
	require.Zero(t, ix.Len())

	again, built, err := LoadOrBuild(ctx, sidecar, p, asmstore.Unitigs)
	require.NoError(t, err)
	require.False(t, built)
	require.Zero(t, again.Len())

	// Contigs were never indexed, empty unitigs do not stand in for them.
	d, err := Open(ctx, sidecar)
	require.NoError(t, err)
	defer d.Close()
	_, err = d.Load(ctx, p, asmstore.Contigs)
	require.ErrorIs(t, err, ErrNoIndex)
}

func TestSave_RejectsIndexWithoutSource(t *testing.T) {
	ctx := context.Background()
	ix, err := asmstore.NewIndex(asmstore.Contigs, asm.Fingerprint{}, nil)
	require.NoError(t, err)
	d, err := Open(ctx, filepath.Join(t.TempDir(), "x.sqlite"))
	require.NoError(t, err)
	defer d.Close()
	require.ErrorIs(t, d.Save(ctx, ix), ErrNoSource)
}
