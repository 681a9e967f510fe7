package asmstore

import "fmt"

// Kind selects which layout messages a store serves.
type Kind uint8

const (
	Contigs Kind = iota
	Unitigs
)

func (k Kind) String() string {
	if k == Unitigs {
		return "unitig"
	}
	return "contig"
}

// ParseKind accepts "contig(s)" and "unitig(s)".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "contig", "contigs", "ctg":
		return Contigs, nil
	case "unitig", "unitigs", "utg":
		return Unitigs, nil
	}
	return 0, fmt.Errorf("unknown record kind %q (want contig | unitig)", s)
}
