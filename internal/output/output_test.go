package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"asmkit/internal/asm"
	"asmkit/internal/asmstore"
	"asmkit/internal/assembly"
	"asmkit/pkg/api"
)

func fixture(t *testing.T) assembly.Layout {
	t.Helper()
	b := assembly.NewBuilder("A", []byte("AC-GT"), []byte("XXXXX"))
	if err := b.AddRead(assembly.PlacedRead{
		ID: "r1", Offset: 0, Sequence: []byte("AC-"),
		Clear: asm.Range{Begin: 2, End: 4}, FullLength: 9,
	}); err != nil {
		t.Fatal(err)
	}
	if err := b.AddRead(assembly.PlacedRead{
		ID: "r2", Direction: asm.Reverse, Offset: 2, Sequence: []byte("-GT"),
		Clear: asm.Range{Begin: 0, End: 2}, FullLength: 5, RepeatSurrogate: true,
	}); err != nil {
		t.Fatal(err)
	}
	c, err := b.BuildContig()
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func feed(ls ...assembly.Layout) <-chan assembly.Layout {
	ch := make(chan assembly.Layout, len(ls))
	for _, l := range ls {
		ch <- l
	}
	close(ch)
	return ch
}

func TestStreamTSV(t *testing.T) {
	var buf bytes.Buffer
	if err := StreamTSV(&buf, feed(fixture(t)), true); err != nil {
		t.Fatalf("tsv: %v", err)
	}
	want := TSVHeader + "\n" +
		"contig\tA\tr1\t+\t0\t3\t2\t4\t9\t0\n" +
		"contig\tA\tr2\t-\t2\t5\t0\t2\t5\t1\n"
	if buf.String() != want {
		t.Fatalf("tsv mismatch:\n%s", buf.String())
	}
}

func TestWriteFASTARecord(t *testing.T) {
	var buf bytes.Buffer
	if err := StreamFASTA(&buf, feed(fixture(t))); err != nil {
		t.Fatalf("fasta: %v", err)
	}
	want := ">A kind=contig len=4 gapped_len=5 reads=2\nACGT\n"
	if buf.String() != want {
		t.Fatalf("unexpected FASTA output: %q", buf.String())
	}
}

func TestWriteFASTARecord_Wraps(t *testing.T) {
	cons := strings.Repeat("A", FASTALineWidth+5)
	b := assembly.NewBuilder("long", []byte(cons), nil)
	c, err := b.BuildContig()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteFASTARecord(&buf, c); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 || len(lines[1]) != FASTALineWidth || len(lines[2]) != 5 {
		t.Fatalf("bad wrapping: %q", lines)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, []assembly.Layout{fixture(t)}); err != nil {
		t.Fatalf("json write: %v", err)
	}
	var got []api.LayoutV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil || len(got) != 1 {
		t.Fatalf("json decode failed: %v %v", err, got)
	}
	l := got[0]
	if l.Kind != "contig" || l.ID != "A" || l.Length != 5 || len(l.Reads) != 2 {
		t.Fatalf("unexpected layout: %+v", l)
	}
	if r := l.Reads[1]; r.Strand != "-" || r.Seq != "-GT" || !r.RepeatSurrogate || r.End != 5 {
		t.Fatalf("unexpected read: %+v", r)
	}
	if l.UngappedLength != 4 {
		t.Fatalf("ungapped length = %d, want 4", l.UngappedLength)
	}
	if r := l.Reads[0]; r.UngappedStart != 0 || r.UngappedEnd != 2 {
		t.Fatalf("r1 ungapped span = [%d,%d), want [0,2)", r.UngappedStart, r.UngappedEnd)
	}
	if r := l.Reads[1]; r.UngappedStart != 2 || r.UngappedEnd != 4 {
		t.Fatalf("r2 ungapped span = [%d,%d), want [2,4)", r.UngappedStart, r.UngappedEnd)
	}
	if strings.Contains(buf.String(), `"repeat_surrogate": false`) {
		t.Fatal("repeat_surrogate should be omitted when false")
	}
}

func TestStreamText_Separates(t *testing.T) {
	var buf bytes.Buffer
	render := func(l assembly.Layout) string { return l.ID() + "\n" }
	if err := StreamText(&buf, feed(fixture(t), fixture(t)), render); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "A\n\nA\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestWriteSummaryText(t *testing.T) {
	s := ToAPISummary("x.asm", asmstore.Summary{
		Contigs:         2,
		UnitigsByStatus: map[string]int{"unique": 1, "repeat": 1},
	})
	var buf bytes.Buffer
	if err := WriteSummaryText(&buf, s); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"source_file              x.asm\n", "contigs                  2\n", "unitig_status.repeat     1\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Index(out, "unitig_status.repeat") > strings.Index(out, "unitig_status.unique") {
		t.Error("status counts not sorted")
	}
}
