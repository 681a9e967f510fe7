package output

import (
	"fmt"
	"io"
	"sort"

	"asmkit/pkg/api"
)

// WriteSummaryText prints a summary as aligned "key value" lines.
func WriteSummaryText(w io.Writer, s api.SummaryV1) error {
	rows := []struct {
		k string
		v any
	}{
		{"source_file", s.SourceFile},
		{"libraries", s.Libraries},
		{"reads", s.Reads},
		{"mate_pairs", s.MatePairs},
		{"unitigs", s.Unitigs},
		{"contigs", s.Contigs},
		{"placed_contigs", s.PlacedContigs},
		{"scaffolds", s.Scaffolds},
		{"single_contig_scaffolds", s.SingleScaffolds},
		{"unitig_links", s.UnitigLinks},
		{"contig_links", s.ContigLinks},
		{"scaffold_links", s.ScaffoldLinks},
		{"placed_reads", s.PlacedReads},
		{"variants", s.Variants},
		{"consensus_bases", s.ConsensusBases},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-24s %v\n", r.k, r.v); err != nil {
			return err
		}
	}
	if err := writeCounts(w, "unitig_status", s.UnitigStatus); err != nil {
		return err
	}
	return writeCounts(w, "mate_status", s.MateStatus)
}

func writeCounts(w io.Writer, prefix string, m map[string]int) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%-24s %d\n", prefix+"."+k, m[k]); err != nil {
			return err
		}
	}
	return nil
}
