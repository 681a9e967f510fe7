package asm

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"asmkit/internal/asmtest"
)

const wantEvents = `MDI lib1 [5 10 5]
AFG r1 G [0,10)
AFG r2 G [5,15)
AFG r3 N [2,10)
AMP r1 r2
UTG U1 2 AAAAC-CCCGGGGCCC
  MPS U1 r1 [0,11) forward [5]
  MPS U1 r2 [3,14) reverse [3]
  END U1
UTG U2 1 GTACGTAC
  MPS U2 r3 [0,8) forward []
  END U2
ULK U1 U2 1
CCO A 1/2/1
  VAR A G:30:r2 C:10:r1
  MPS A r1 [0,11) forward [5]
  MPS A r2 [3,14) reverse [3]
  UPS A U1 unique
  END A
CCO B 0/1/1
  MPS B r3 [0,8) forward []
  UPS B U2 stone
  END B
CLK A B 1
SCF S1 1
  CTP S1 A B
  END S1
SCF1 S2 B
SLK S1 S2 1
END`

func parseString(t *testing.T, content string, v Visitor) error {
	t.Helper()
	return NewStreamParser(strings.NewReader(content)).Accept(context.Background(), v)
}

func TestAccept_VisitsEverythingInOrder(t *testing.T) {
	r := &recorder{}
	require.NoError(t, parseString(t, asmtest.Assembly, r))
	require.Equal(t, wantEvents, r.String())
}

func TestAccept_Idempotent(t *testing.T) {
	fn := asmtest.Write(t, "a.asm", asmtest.Assembly)
	run := func() string {
		p, err := Open(fn)
		require.NoError(t, err)
		r := &recorder{}
		require.NoError(t, p.Accept(context.Background(), r))
		return r.String()
	}
	require.Equal(t, run(), run())
}

func TestAccept_SkipConsumesDeclaredBlocks(t *testing.T) {
	r := &recorder{skipContigs: true}
	require.NoError(t, parseString(t, asmtest.Assembly, r))
	require.NotContains(t, r.String(), "  END A")
	require.NotContains(t, r.String(), "  MPS A")
	require.Contains(t, r.String(), "CLK A B 1")
	require.True(t, strings.HasSuffix(r.String(), "END"))
}

func TestAccept_NopVisitor(t *testing.T) {
	require.NoError(t, parseString(t, asmtest.Assembly, NopVisitor{}))
}

func TestAccept_WrongDeclaredCount(t *testing.T) {
	cases := map[string]string{
		"too many declared": strings.Replace(asmtest.Assembly, "nfr:1\n", "nfr:2\n", 1),
		"too few declared":  strings.Replace(asmtest.Assembly, "nfr:2\n", "nfr:1\n", 1),
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			for _, v := range []Visitor{&recorder{}, NopVisitor{}} {
				err := parseString(t, content, v)
				var pe *ParseError
				require.ErrorAs(t, err, &pe)
				require.NotZero(t, pe.Line)
			}
		})
	}
}

func TestAccept_HaltInsideUnitig(t *testing.T) {
	r := &recorder{haltOnRead: "r1"}
	require.NoError(t, parseString(t, asmtest.Assembly, r))
	require.Equal(t, `MDI lib1 [5 10 5]
AFG r1 G [0,10)
AFG r2 G [5,15)
AFG r3 N [2,10)
AMP r1 r2
UTG U1 2 AAAAC-CCCGGGGCCC
  MPS U1 r1 [0,11) forward [5]
  HALTED U1
HALTED`, r.String())
}

func TestAccept_HaltOnLastPlacementStillHalts(t *testing.T) {
	r := &recorder{haltOnRead: "r3"}
	require.NoError(t, parseString(t, asmtest.Assembly, r))
	require.True(t, strings.HasSuffix(r.String(), "  MPS U2 r3 [0,8) forward []\n  HALTED U2\nHALTED"), r.String())
}

func TestAccept_SingleContigScaffoldMismatch(t *testing.T) {
	bad := strings.Replace(asmtest.Assembly, "ct1:B\nct2:B", "ct1:B\nct2:A", 1)
	err := parseString(t, bad, &recorder{})
	require.ErrorContains(t, err, "single-contig scaffold")
}

func TestAccept_UnknownCodes(t *testing.T) {
	cases := map[string][2]string{
		"mate status":  {"mst:N", "mst:Q"},
		"unitig state": {"sta:U", "sta:Q"},
		"orientation":  {"ori:A\novt:O", "ori:Q\novt:O"},
		"layout type":  {"typ:S", "typ:Q"},
		"evidence":     {"r1,r3,M\n}\n{SCF", "r1,r3,Q\n}\n{SCF"},
		"message":      {"{AMP", "{XYZ"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			bad := strings.Replace(asmtest.Assembly, c[0], c[1], 1)
			require.NotEqual(t, asmtest.Assembly, bad)
			require.True(t, IsParseError(parseString(t, bad, &recorder{})))
		})
	}
}

func TestAccept_MissingTerminator(t *testing.T) {
	bad := strings.Replace(asmtest.Assembly, "mst:G\n}\n{UTG", "mst:G\n{UTG", 1)
	require.True(t, IsParseError(parseString(t, bad, &recorder{})))

	truncated := asmtest.Assembly[:len(asmtest.Assembly)-3]
	err := parseString(t, truncated, &recorder{})
	require.ErrorContains(t, err, "end of input")
}

func TestAccept_WrappedGapList(t *testing.T) {
	content := `{UTG
acc:(U9,9)
src:
.
cov:1.0
sta:U
len:12
cns:
ACGTACGTACGT
.
qlt:
XXXXXXXXXXXX
.
for:0
nfr:1
{MPS
typ:R
mid:r9
pos:0,12
dln:5
del:1 2
3
4 5
}
}
`
	r := &recorder{}
	require.NoError(t, parseString(t, content, r))
	require.Contains(t, r.String(), "MPS U9 r9 [0,12) forward [1 2 3 4 5]")

	short := strings.Replace(content, "dln:5", "dln:6", 1)
	require.ErrorContains(t, parseString(t, short, &recorder{}), "expected 6 values")

	desc := strings.Replace(content, "4 5", "4 1", 1)
	require.ErrorContains(t, parseString(t, desc, &recorder{}), "not ascending")
}

func TestAccept_CountOverflow(t *testing.T) {
	bad := strings.Replace(asmtest.Assembly, "nrd:2", "nrd:4294967296", 1)
	err := parseString(t, bad, &recorder{})
	require.ErrorIs(t, err, ErrCountOverflow)
}

func TestAccept_HugeDeclaredListsFailCleanly(t *testing.T) {
	gaps := strings.Replace(asmtest.Assembly, "dln:1\ndel:\n5\n", "dln:2147483647\ndel:\n5\n", 1)
	err := parseString(t, gaps, &recorder{})
	require.True(t, IsParseError(err), "err=%v", err)
	require.ErrorContains(t, err, "expected 2147483647 values")

	hist := strings.Replace(asmtest.Assembly, "buc:3", "buc:2147483647", 1)
	err = parseString(t, hist, &recorder{})
	require.True(t, IsParseError(err), "err=%v", err)

	err = parseString(t, contigLink("N", 2147483647, 1), &linkCatcher{})
	require.True(t, IsParseError(err), "err=%v", err)
}

func TestAccept_LegacyUnitigBreakpoints(t *testing.T) {
	legacy := strings.Replace(asmtest.Assembly, "sta:U\n", "sta:U\nabp:0\nbbp:0\n", 1)
	require.NotEqual(t, asmtest.Assembly, legacy)
	r := &recorder{}
	require.NoError(t, parseString(t, legacy, r))
	require.Equal(t, wantEvents, r.String())
}

func TestAccept_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewStreamParser(strings.NewReader(asmtest.Assembly)).Accept(ctx, &recorder{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestStreamParser_Bookmarks(t *testing.T) {
	p := NewStreamParser(strings.NewReader(asmtest.Assembly))
	require.False(t, p.CanCreateBookmarks())
	r := &recorder{bookmarks: map[string]Bookmark{}}
	err := p.Accept(context.Background(), r)
	require.ErrorIs(t, err, ErrBookmarkUnsupported)
	require.False(t, r.cb.CanCreateBookmark())

	err = p.Accept(context.Background(), &recorder{})
	require.ErrorIs(t, err, ErrStreamConsumed)
}

func TestBookmark_ResumesAtRecord(t *testing.T) {
	for name, content := range map[string]string{
		"lf":   asmtest.Assembly,
		"crlf": strings.ReplaceAll(asmtest.Assembly, "\n", "\r\n"),
	} {
		t.Run(name, func(t *testing.T) {
			fn := asmtest.Write(t, "a.asm", content)
			p, err := Open(fn)
			require.NoError(t, err)
			r := &recorder{bookmarks: map[string]Bookmark{}}
			require.NoError(t, p.Accept(context.Background(), r))
			require.Len(t, r.bookmarks, 2)

			resumed := &recorder{haltOnRead: "r3"}
			require.NoError(t, p.AcceptFrom(context.Background(), resumed, r.bookmarks["B"]))
			require.Equal(t, "CCO B 0/1/1\n  MPS B r3 [0,8) forward []\n  HALTED B\nHALTED", resumed.String())
		})
	}
}

func TestBookmark_Gzip(t *testing.T) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte(asmtest.Assembly))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	fn := filepath.Join(t.TempDir(), "a.asm.gz")
	require.NoError(t, os.WriteFile(fn, buf.Bytes(), 0o644))

	p, err := Open(fn)
	require.NoError(t, err)
	r := &recorder{bookmarks: map[string]Bookmark{}}
	require.NoError(t, p.Accept(context.Background(), r))
	require.Equal(t, wantEvents, r.String())

	resumed := &recorder{}
	require.NoError(t, p.AcceptFrom(context.Background(), resumed, r.bookmarks["A"]))
	require.True(t, strings.HasPrefix(resumed.String(), "CCO A 1/2/1"))
}

func TestBookmark_Foreign(t *testing.T) {
	fa := asmtest.Write(t, "a.asm", asmtest.Assembly)
	fb := asmtest.Write(t, "b.asm", asmtest.Assembly)
	pa, err := Open(fa)
	require.NoError(t, err)
	pb, err := Open(fb)
	require.NoError(t, err)

	r := &recorder{bookmarks: map[string]Bookmark{}}
	require.NoError(t, pa.Accept(context.Background(), r))
	err = pb.AcceptFrom(context.Background(), &recorder{}, r.bookmarks["A"])
	require.True(t, errors.Is(err, ErrForeignBookmark))

	b, err := pa.RestoreBookmark(r.bookmarks["A"].Source(), r.bookmarks["A"].Offset())
	require.NoError(t, err)
	require.Equal(t, r.bookmarks["A"], b)
	_, err = pb.RestoreBookmark(r.bookmarks["A"].Source(), 0)
	require.ErrorIs(t, err, ErrForeignBookmark)
}
