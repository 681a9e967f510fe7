package output

import (
	"io"

	"asmkit/internal/asmstore"
	"asmkit/internal/assembly"
	"asmkit/internal/jsonutil"
	"asmkit/internal/nuc"
	"asmkit/pkg/api"
)

// ToAPILayout converts a layout to the stable wire schema (v1).
func ToAPILayout(l assembly.Layout) api.LayoutV1 {
	cons := l.Consensus()
	v := api.LayoutV1{
		Kind:           l.Kind(),
		ID:             l.ID(),
		Length:         l.Len(),
		UngappedLength: l.Len() - nuc.NumGaps(cons),
		Consensus:      string(cons),
		Quality:        string(l.Quality()),
		Reads:          make([]api.PlacedReadV1, 0, l.NumReads()),
	}
	for _, p := range l.Reads() {
		ub, ue := ungappedSpan(cons, p)
		v.Reads = append(v.Reads, api.PlacedReadV1{
			ID:              p.ID,
			Strand:          strand(p),
			Start:           p.Offset,
			End:             p.End(),
			UngappedStart:   ub,
			UngappedEnd:     ue,
			Seq:             string(p.Sequence),
			ClearBegin:      p.Clear.Begin,
			ClearEnd:        p.Clear.End,
			FullLength:      p.FullLength,
			RepeatSurrogate: p.RepeatSurrogate,
		})
	}
	return v
}

// ToAPISummary converts a file summary to the wire schema (v1).
func ToAPISummary(source string, s asmstore.Summary) api.SummaryV1 {
	return api.SummaryV1{
		SourceFile:      source,
		Libraries:       s.Libraries,
		Reads:           s.Reads,
		MatePairs:       s.MatePairs,
		Unitigs:         s.Unitigs,
		Contigs:         s.Contigs,
		PlacedContigs:   s.PlacedContigs,
		Scaffolds:       s.Scaffolds,
		SingleScaffolds: s.SingleScaffolds,
		UnitigLinks:     s.UnitigLinks,
		ContigLinks:     s.ContigLinks,
		ScaffoldLinks:   s.ScaffoldLinks,
		PlacedReads:     s.PlacedReads,
		Variants:        s.Variants,
		ConsensusBases:  s.ConsensusBases,
		UnitigStatus:    s.UnitigsByStatus,
		MateStatus:      s.MateStatusCounts,
	}
}

// WriteJSON writes a single JSON array of v1 layouts (pretty-indented).
func WriteJSON(w io.Writer, list []assembly.Layout) error {
	out := make([]api.LayoutV1, 0, len(list))
	for _, l := range list {
		out = append(out, ToAPILayout(l))
	}
	return jsonutil.EncodePretty(w, out)
}
