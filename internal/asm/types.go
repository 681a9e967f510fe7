package asm

// IDPair couples an external (stable) id with an internal (scratch) id.
type IDPair struct {
	External string
	Internal int64
}

// Range is a half-open [Begin, End) interval.
type Range struct {
	Begin, End int64
}

func (r Range) Len() int64 { return r.End - r.Begin }

// Direction of a placement.
type Direction uint8

const (
	Forward Direction = iota
	Reverse
)

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// LibraryStats is an {MDI message.
type LibraryStats struct {
	ID        IDPair
	Mean      float64
	StdDev    float64
	Min, Max  int64
	Histogram []int64
}

// Read is an {AFG message.
type Read struct {
	ID         IDPair
	MateStatus MateStatus
	Chimeric   bool
	Chaff      bool
	Clear      Range
}

// MatePair is an {AMP message.
type MatePair struct {
	Read1, Read2 string
	Status       MateStatus
}

// UnitigRecord is the header of a {UTG message.
type UnitigRecord struct {
	ID           IDPair
	MicroHetProb float64
	HasMicroHet  bool
	AStat        float64 // "cov:"
	Status       UnitigStatus
	Length       int64
	Consensus    string // gapped
	Quality      string // gapped
	Forced       bool
	NumReads     int
}

// ContigRecord is the header of a {CCO message.
type ContigRecord struct {
	ID          IDPair
	Placed      bool
	Length      int64
	Consensus   string
	Quality     string
	Forced      bool
	NumReads    int
	NumUnitigs  int
	NumVariants int
}

// ReadPlacement is an {MPS sub-block.
type ReadPlacement struct {
	Type       byte
	ReadID     string
	Range      Range // gapped consensus coordinates
	Direction  Direction
	GapOffsets []int
}

// UnitigPlacement is a {UPS sub-block.
type UnitigPlacement struct {
	Type       UnitigLayoutType
	UnitigID   string
	Range      Range
	Direction  Direction
	GapOffsets []int
}

// Variant is one allele of a VariantRecord.
type Variant struct {
	ReadIDs  []string
	Weight   int64
	Sequence string
}

// VariantRecord is a {VAR sub-block. Variants are ordered by weight,
// heaviest first.
type VariantRecord struct {
	Range      Range
	NumReads   int
	AnchorSize int
	VariantID  int64
	PhasedID   int64
	Variants   []Variant
}

// LinkKind says which objects a link joins.
type LinkKind uint8

const (
	UnitigLink LinkKind = iota
	ContigLink
	ScaffoldLink
)

func (k LinkKind) String() string {
	switch k {
	case UnitigLink:
		return "unitig-link"
	case ContigLink:
		return "contig-link"
	default:
		return "scaffold-link"
	}
}

// Evidence is one "jls:" entry of a link.
type Evidence struct {
	Read1, Read2 string
	Type         EvidenceType
}

// LinkRecord is a {ULK, {CLK or {SLK message. Scaffold links carry no
// overlap type; theirs is reported as OverlapNone.
type LinkRecord struct {
	Kind            LinkKind
	ID1, ID2        string
	Orientation     LinkOrientation
	Overlap         OverlapType
	PossibleChimera bool
	IncludesGuide   bool
	Mean, StdDev    float64
	NumEdges        int
	Status          LinkStatus
	Evidence        []Evidence
}

// ScaffoldRecord is the header of a multi-contig {SCF message.
type ScaffoldRecord struct {
	ID             IDPair
	NumContigPairs int
}

// SingleContigScaffold is an {SCF message whose pair count is zero.
type SingleContigScaffold struct {
	ID       IDPair
	ContigID string
}

// ContigPair is a {CTP sub-block.
type ContigPair struct {
	Contig1, Contig2 string
	Mean, StdDev     float64
	Orientation      LinkOrientation
}
