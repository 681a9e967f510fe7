package asm

import "strings"

// linkSpec parameterises the shared link routine by id kind.
type linkSpec struct {
	code       string
	kind       LinkKind
	idPrefix   string // "ut", "co", "sc"
	hasOverlap bool   // ovt/ipc/sta present
	visit      func(Visitor, LinkRecord) error
}

var (
	unitigLinkSpec = linkSpec{
		code: "ULK", kind: UnitigLink, idPrefix: "ut", hasOverlap: true,
		visit: func(v Visitor, l LinkRecord) error { return v.VisitUnitigLink(l) },
	}
	contigLinkSpec = linkSpec{
		code: "CLK", kind: ContigLink, idPrefix: "co", hasOverlap: true,
		visit: func(v Visitor, l LinkRecord) error { return v.VisitContigLink(l) },
	}
	scaffoldLinkSpec = linkSpec{
		code: "SLK", kind: ScaffoldLink, idPrefix: "sc", hasOverlap: false,
		visit: func(v Visitor, l LinkRecord) error { return v.VisitScaffoldLink(l) },
	}
)

// EvidenceCount is the number of "jls:" entries a link with numEdges
// edges carries: numEdges for OverlapNone, numEdges-1 otherwise.
func EvidenceCount(ovt OverlapType, numEdges int) int {
	if ovt == OverlapNone {
		return numEdges
	}
	return numEdges - 1
}

func linkMessage(spec linkSpec) handler {
	return func(s *session, v Visitor) error {
		l := LinkRecord{Kind: spec.kind, Overlap: OverlapNone, Status: LinkUnassigned}
		var err error
		if l.ID1, err = s.stringField(spec.idPrefix + "1"); err != nil {
			return err
		}
		if l.ID2, err = s.stringField(spec.idPrefix + "2"); err != nil {
			return err
		}
		ori, err := s.codeField("ori", orientations)
		if err != nil {
			return err
		}
		l.Orientation = LinkOrientation(ori)
		if spec.hasOverlap {
			ovt, err := s.codeField("ovt", overlapTypes)
			if err != nil {
				return err
			}
			l.Overlap = OverlapType(ovt)
			if l.PossibleChimera, err = s.boolField("ipc"); err != nil {
				return err
			}
		}
		if l.IncludesGuide, err = s.boolField("gui"); err != nil {
			return err
		}
		if l.Mean, err = s.floatField("mea"); err != nil {
			return err
		}
		if l.StdDev, err = s.floatField("std"); err != nil {
			return err
		}
		if l.NumEdges, err = s.countField("num"); err != nil {
			return err
		}
		if spec.hasOverlap {
			sta, err := s.codeField("sta", linkStatuses)
			if err != nil {
				return err
			}
			l.Status = LinkStatus(sta)
		}
		if l.Evidence, err = evidenceList(s, l.Overlap, l.NumEdges); err != nil {
			return err
		}
		if err := s.closeRecord(spec.code); err != nil {
			return err
		}
		return spec.visit(v, l)
	}
}

// evidenceList reads "jls:" and the evidence entries that follow it.
func evidenceList(s *session, ovt OverlapType, numEdges int) ([]Evidence, error) {
	want := EvidenceCount(ovt, numEdges)
	if want < 0 {
		return nil, s.errorf("link with overlap type %s declares no edges", ovt)
	}
	if _, err := s.field("jls"); err != nil {
		return nil, err
	}
	out := make([]Evidence, 0, min(want, maxPrealloc))
	for len(out) < want {
		line, err := s.mustLine("jls entry")
		if err != nil {
			return nil, err
		}
		parts := strings.Split(strings.TrimSpace(line), ",")
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
			return nil, s.errorf("expected ext1,ext2,type evidence entry (%d of %d)", len(out)+1, want)
		}
		typ, ok := evidenceTypes.lookup(parts[2])
		if !ok {
			return nil, s.errorf("unknown evidence type")
		}
		out = append(out, Evidence{Read1: parts[0], Read2: parts[1], Type: EvidenceType(typ)})
	}
	return out, nil
}
