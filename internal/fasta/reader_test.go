package fasta

import (
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const plain = `>seq1 first
ACGT
>seq2
NNnn
ac
`

// writeGz creates a gzipped FASTA file with provided data, returns the file path.
func writeGz(t *testing.T, data string) string {
	path := filepath.Join(t.TempDir(), "test.fa.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func TestLoadGzip(t *testing.T) {
	seqs, err := Load(context.Background(), []string{writeGz(t, plain)}, nil)
	if err != nil {
		t.Fatalf("load gz: %v", err)
	}
	if got := strings.Join(seqs.IDs(), ","); got != "seq1,seq2" {
		t.Fatalf("ids=%s", got)
	}
	if s, _ := seqs.Sequence("seq2"); string(s) != "NNnnac" {
		t.Fatalf("seq2=%q", s)
	}
}

func TestLoadStdin(t *testing.T) {
	// Fake stdin by swapping os.Stdin
	orig := os.Stdin
	r, w, _ := os.Pipe()
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	go func() {
		_, _ = io.WriteString(w, plain)
		_ = w.Close()
	}()

	seqs, err := Load(context.Background(), []string{"-"}, nil)
	if err != nil {
		t.Fatalf("load stdin: %v", err)
	}
	if len(seqs) != 2 {
		t.Fatalf("expected 2 records from stdin, got %d", len(seqs))
	}
}

func TestLoadFilterAndMissing(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "x.fa")
	if err := os.WriteFile(fn, []byte(plain), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	seqs, err := Load(context.Background(), []string{fn}, func(id string) bool { return id == "seq1" })
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := seqs.Sequence("seq2"); err == nil {
		t.Fatalf("expected missing seq2")
	}
}

func TestLoadDuplicate(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "dup.fa")
	if err := os.WriteFile(fn, []byte(">a\nAC\n>a\nGT\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(context.Background(), []string{fn}, nil); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestStreamCtx_CancelImmediately(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // already canceled

	n := 0
	err := StreamCtx(ctx, strings.NewReader(">s\nACGT\n"), func(Record) error { n++; return nil })
	if err == nil || n != 0 {
		t.Fatalf("expected cancel error and no records, got err=%v n=%d", err, n)
	}
}

func TestStreamCtx_SequenceBeforeHeader(t *testing.T) {
	err := StreamCtx(context.Background(), strings.NewReader("ACGT\n>s\nA\n"), func(Record) error { return nil })
	if err == nil {
		t.Fatalf("expected error")
	}
}
