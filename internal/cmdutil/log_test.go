package cmdutil

import (
	"bytes"
	"testing"
)

func TestWarnfAndInfof(t *testing.T) {
	var b bytes.Buffer
	Warnf(&b, true, "hidden %d", 1)
	Infof(&b, false, "hidden %d", 2)
	if b.Len() != 0 {
		t.Fatalf("suppressed output leaked: %q", b.String())
	}
	Warnf(&b, false, "missing %s", "r1")
	Infof(&b, true, "indexed %d", 3)
	if got := b.String(); got != "WARN: missing r1\nINFO: indexed 3\n" {
		t.Fatalf("got %q", got)
	}
}
