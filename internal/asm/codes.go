package asm

import "fmt"

// codeSet is a closed set of single-character codes. Unknown codes are
// grammar errors, never defaulted.
type codeSet map[byte]string

func (c codeSet) lookup(v string) (byte, bool) {
	if len(v) != 1 {
		return 0, false
	}
	if _, ok := c[v[0]]; !ok {
		return 0, false
	}
	return v[0], true
}

func (c codeSet) name(b byte) string {
	if n, ok := c[b]; ok {
		return n
	}
	return fmt.Sprintf("unknown(%q)", b)
}

// MateStatus is the mate-pair status of a read ("mst:").
type MateStatus byte

const (
	MateUnassigned        MateStatus = 'Z'
	MateGood              MateStatus = 'G'
	MateBadShort          MateStatus = 'C'
	MateBadLong           MateStatus = 'L'
	MateSameOrientation   MateStatus = 'S'
	MateOuttie            MateStatus = 'O'
	MateNoMate            MateStatus = 'N'
	MateBothChaff         MateStatus = 'H'
	MateChaff             MateStatus = 'A'
	MateBothDegenerate    MateStatus = 'D'
	MateDegenerate        MateStatus = 'E'
	MateBothSurrogate     MateStatus = 'U'
	MateSurrogate         MateStatus = 'R'
	MateDifferentScaffold MateStatus = 'F'
)

var mateStatuses = codeSet{
	'Z': "unassigned", 'G': "good", 'C': "bad-short", 'L': "bad-long",
	'S': "same-orientation", 'O': "outtie", 'N': "no-mate",
	'H': "both-chaff", 'A': "chaff", 'D': "both-degenerate", 'E': "degenerate",
	'U': "both-surrogate", 'R': "surrogate", 'F': "different-scaffold",
}

func (m MateStatus) String() string { return mateStatuses.name(byte(m)) }

// UnitigStatus is the repeat classification of a unitig ("sta:").
type UnitigStatus byte

const (
	UnitigUnique       UnitigStatus = 'U'
	UnitigRepeat       UnitigStatus = 'R'
	UnitigNotRez       UnitigStatus = 'N'
	UnitigSeparable    UnitigStatus = 'S'
	UnitigUnresolvable UnitigStatus = 'X'
)

var unitigStatuses = codeSet{
	'U': "unique", 'R': "repeat", 'N': "not-rez", 'S': "separable", 'X': "unresolvable",
}

func (u UnitigStatus) String() string { return unitigStatuses.name(byte(u)) }

// LinkOrientation is the relative orientation of two linked objects ("ori:").
type LinkOrientation byte

const (
	OrientNormal     LinkOrientation = 'N'
	OrientAntiNormal LinkOrientation = 'A'
	OrientInnie      LinkOrientation = 'I'
	OrientOuttie     LinkOrientation = 'O'
	OrientUnknown    LinkOrientation = 'U'
)

var orientations = codeSet{
	'N': "normal", 'A': "anti-normal", 'I': "innie", 'O': "outtie", 'U': "unknown",
}

func (o LinkOrientation) String() string { return orientations.name(byte(o)) }

// OverlapType classifies the overlap behind a link ("ovt:").
type OverlapType byte

const (
	OverlapNone        OverlapType = 'N'
	OverlapRegular     OverlapType = 'O'
	OverlapTandem      OverlapType = 'T'
	OverlapChimeric    OverlapType = 'C'
	OverlapInterleaved OverlapType = 'I'
)

var overlapTypes = codeSet{
	'N': "none", 'O': "regular", 'T': "tandem", 'C': "chimeric", 'I': "interleaved",
}

func (o OverlapType) String() string { return overlapTypes.name(byte(o)) }

// LinkStatus is the scaffolder's verdict on a link ("sta:" in links).
type LinkStatus byte

const (
	LinkAssigned    LinkStatus = 'A'
	LinkPolymorphic LinkStatus = 'P'
	LinkBad         LinkStatus = 'B'
	LinkChimeric    LinkStatus = 'X'
	LinkUnassigned  LinkStatus = 'U'
)

var linkStatuses = codeSet{
	'A': "assigned", 'P': "polymorphic", 'B': "bad", 'X': "chimeric", 'U': "unassigned",
}

func (l LinkStatus) String() string { return linkStatuses.name(byte(l)) }

// UnitigLayoutType is the placement type of a unitig inside a contig ("typ:" in UPS).
type UnitigLayoutType byte

const (
	LayoutUnique     UnitigLayoutType = 'U'
	LayoutRock       UnitigLayoutType = 'R'
	LayoutStone      UnitigLayoutType = 'S'
	LayoutPebble     UnitigLayoutType = 'P'
	LayoutSingleRead UnitigLayoutType = 's'
)

var layoutTypes = codeSet{
	'U': "unique", 'R': "rock", 'S': "stone", 'P': "pebble", 's': "single-read",
}

func (u UnitigLayoutType) String() string { return layoutTypes.name(byte(u)) }

// IsSurrogate reports whether the placement is a repeat surrogate (stone or pebble).
func (u UnitigLayoutType) IsSurrogate() bool { return u == LayoutStone || u == LayoutPebble }

// EvidenceType is the kind of a link's supporting evidence entry.
type EvidenceType byte

const (
	EvidenceMate     EvidenceType = 'M'
	EvidenceBACGuide EvidenceType = 'B'
	EvidenceSTS      EvidenceType = 'S'
	EvidenceReread   EvidenceType = 'R'
	EvidenceExternal EvidenceType = 'X'
	EvidenceOverlap  EvidenceType = 'Y'
)

var evidenceTypes = codeSet{
	'M': "mate", 'B': "bac-guide", 'S': "sts", 'R': "reread", 'X': "external", 'Y': "overlap",
}

func (e EvidenceType) String() string { return evidenceTypes.name(byte(e)) }
