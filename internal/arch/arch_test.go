package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
}

const mod = "asmkit/"

// under reports whether path is pkg or one of its subpackages.
func under(path, pkg string) bool {
	return path == pkg || strings.HasPrefix(path, pkg+"/")
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.."
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	outer := []string{
		"asmkit/internal/cli", "asmkit/internal/config", "asmkit/internal/indexdb",
		"asmkit/internal/writers", "asmkit/internal/output", "asmkit/internal/pretty",
		"asmkit/cmd",
	}
	bans := map[string][]string{
		// the parser knows nothing about what visitors build
		"asmkit/internal/asm": append([]string{
			"asmkit/internal/assembly", "asmkit/internal/builder",
			"asmkit/internal/asmstore", "asmkit/internal/fasta",
		}, outer...),
		"asmkit/internal/nuc": append([]string{
			"asmkit/internal/asm", "asmkit/internal/assembly",
			"asmkit/internal/builder", "asmkit/internal/asmstore",
		}, outer...),
		"asmkit/internal/assembly": append([]string{
			"asmkit/internal/builder", "asmkit/internal/asmstore", "asmkit/internal/fasta",
		}, outer...),
		"asmkit/internal/builder":  append([]string{"asmkit/internal/asmstore"}, outer...),
		"asmkit/internal/asmstore": outer,
		"asmkit/internal/indexdb": {
			"asmkit/internal/cli", "asmkit/internal/writers", "asmkit/internal/output", "asmkit/cmd",
		},
		"asmkit/internal/writers": {"asmkit/internal/cli", "asmkit/internal/indexdb", "asmkit/cmd"},
		"asmkit/internal/output":  {"asmkit/internal/cli", "asmkit/internal/writers", "asmkit/cmd"},
		"asmkit/internal/pretty":  {"asmkit/internal/cli", "asmkit/internal/writers", "asmkit/internal/output", "asmkit/cmd"},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, mod) {
			continue
		}
		forbidden, ok := bans[p.ImportPath]
		if !ok {
			continue
		}
		for _, dep := range p.Imports {
			if !strings.HasPrefix(dep, mod) {
				continue
			}
			for _, ban := range forbidden {
				if under(dep, ban) {
					violations = append(violations, p.ImportPath+" → "+dep)
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
