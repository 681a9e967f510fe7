package api

// SummaryV1 is the stable schema of `asmtool stats`.
type SummaryV1 struct {
	SourceFile      string         `json:"source_file,omitempty"`
	Libraries       int            `json:"libraries"`
	Reads           int            `json:"reads"`
	MatePairs       int            `json:"mate_pairs"`
	Unitigs         int            `json:"unitigs"`
	Contigs         int            `json:"contigs"`
	PlacedContigs   int            `json:"placed_contigs"`
	Scaffolds       int            `json:"scaffolds"`
	SingleScaffolds int            `json:"single_contig_scaffolds"`
	UnitigLinks     int            `json:"unitig_links"`
	ContigLinks     int            `json:"contig_links"`
	ScaffoldLinks   int            `json:"scaffold_links"`
	PlacedReads     int            `json:"placed_reads"`
	Variants        int            `json:"variants"`
	ConsensusBases  int64          `json:"consensus_bases"`
	UnitigStatus    map[string]int `json:"unitig_status,omitempty"`
	MateStatus      map[string]int `json:"mate_status,omitempty"`
}
