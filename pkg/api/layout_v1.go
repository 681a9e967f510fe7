// pkg/api/layout_v1.go
package api

// LayoutV1 is the stable JSON/JSONL schema for a rebuilt contig or unitig.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type LayoutV1 struct {
	Kind           string         `json:"kind"` // "contig" | "unitig"
	ID             string         `json:"id"`
	Length         int            `json:"length"` // gapped
	UngappedLength int            `json:"ungapped_length,omitempty"`
	Consensus      string         `json:"consensus"`
	Quality        string         `json:"quality,omitempty"`
	Reads          []PlacedReadV1 `json:"reads"`
}

// PlacedReadV1 is one read tiled on a layout.
type PlacedReadV1 struct {
	ID              string `json:"id"`
	Strand          string `json:"strand"` // "+" | "-"
	Start           int64  `json:"start"`  // gapped, on the consensus
	End             int64  `json:"end"`
	UngappedStart   int64  `json:"ungapped_start,omitempty"` // gaps removed from the consensus
	UngappedEnd     int64  `json:"ungapped_end,omitempty"`
	Seq             string `json:"seq"` // trimmed, oriented, gapped
	ClearBegin      int64  `json:"clear_begin"`
	ClearEnd        int64  `json:"clear_end"`
	FullLength      int64  `json:"full_length"`
	RepeatSurrogate bool   `json:"repeat_surrogate,omitempty"`
}
