package output

import (
	"asmkit/internal/asm"
	"asmkit/internal/assembly"
	"asmkit/internal/nuc"
)

// TSVHeader is the header row of the tsv format, one row per placed read.
const TSVHeader = "kind\tlayout_id\tread_id\tstrand\tstart\tend\tclear_begin\tclear_end\tfull_length\tsurrogate"

func strand(p assembly.PlacedRead) string {
	if p.Direction == asm.Forward {
		return "+"
	}
	return "-"
}

// ungappedSpan maps a read's gapped [start,end) on the consensus to
// consensus coordinates with gaps removed.
func ungappedSpan(cons []byte, p assembly.PlacedRead) (begin, end int64) {
	at := func(off int64) int64 {
		off = max(0, min(off, int64(len(cons))))
		return off - int64(nuc.NumGaps(cons[:off]))
	}
	return at(p.Offset), at(p.End())
}
