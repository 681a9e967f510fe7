package asm

import (
	"errors"
	"io"
	"strings"
)

// handler parses one top-level message whose "{CODE" line was consumed.
type handler func(*session, Visitor) error

// handlers is the closed set of top-level messages.
var handlers = map[string]handler{
	"MDI": libraryStatsMessage,
	"AFG": readMessage,
	"AMP": matePairMessage,
	"UTG": unitigMessage,
	"ULK": linkMessage(unitigLinkSpec),
	"CCO": contigMessage,
	"CLK": linkMessage(contigLinkSpec),
	"SCF": scaffoldMessage,
	"SLK": linkMessage(scaffoldLinkSpec),
}

// dispatch drives the message loop until end of input, a halt, or an error.
func dispatch(s *session, v Visitor) error {
	for {
		if err := s.interrupted(); err != nil {
			return err
		}
		if s.haltRequested() {
			v.Halted()
			return nil
		}
		s.markBookmark()
		line, err := s.nextLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return v.VisitEnd()
			}
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.HasPrefix(line, "{") {
			return s.errorf("expected start of message")
		}
		h, ok := handlers[strings.TrimSpace(line[1:])]
		if !ok {
			return s.errorf("unknown message type")
		}
		if err := h(s, v); err != nil {
			return err
		}
	}
}

func libraryStatsMessage(s *session, v Visitor) error {
	var ls LibraryStats
	var err error
	if ls.ID, err = s.idPairField("ref"); err != nil {
		return err
	}
	if ls.Mean, err = s.floatField("mea"); err != nil {
		return err
	}
	if ls.StdDev, err = s.floatField("std"); err != nil {
		return err
	}
	if ls.Min, err = s.intField("min"); err != nil {
		return err
	}
	if ls.Max, err = s.intField("max"); err != nil {
		return err
	}
	buckets, err := s.countField("buc")
	if err != nil {
		return err
	}
	rest, err := s.field("his")
	if err != nil {
		return err
	}
	if buckets > 0 {
		if ls.Histogram, err = s.intList("his", rest, buckets); err != nil {
			return err
		}
	}
	if err := s.closeRecord("MDI"); err != nil {
		return err
	}
	return v.VisitLibraryStats(ls)
}

func readMessage(s *session, v Visitor) error {
	var r Read
	var err error
	if r.ID, err = s.idPairField("acc"); err != nil {
		return err
	}
	mst, err := s.codeField("mst", mateStatuses)
	if err != nil {
		return err
	}
	r.MateStatus = MateStatus(mst)
	if r.Chimeric, err = s.boolField("chi"); err != nil {
		return err
	}
	if r.Chaff, err = s.boolField("cha"); err != nil {
		return err
	}
	if r.Clear, err = s.rangeField("clr"); err != nil {
		return err
	}
	if err := s.skipLegacyFields("clv", "clq"); err != nil {
		return err
	}
	if err := s.closeRecord("AFG"); err != nil {
		return err
	}
	return v.VisitRead(r)
}

func matePairMessage(s *session, v Visitor) error {
	var m MatePair
	var err error
	if m.Read1, err = s.stringField("ref1"); err != nil {
		return err
	}
	if m.Read2, err = s.stringField("ref2"); err != nil {
		return err
	}
	mst, err := s.codeField("mst", mateStatuses)
	if err != nil {
		return err
	}
	m.Status = MateStatus(mst)
	if err := s.closeRecord("AMP"); err != nil {
		return err
	}
	return v.VisitMatePair(m)
}

func unitigMessage(s *session, v Visitor) error {
	var u UnitigRecord
	var err error
	if u.ID, err = s.idPairField("acc"); err != nil {
		return err
	}
	if err := s.skipBlock("src"); err != nil {
		return err
	}
	if s.hasField("mhp") {
		if u.MicroHetProb, err = s.floatField("mhp"); err != nil {
			return err
		}
		u.HasMicroHet = true
	}
	if u.AStat, err = s.floatField("cov"); err != nil {
		return err
	}
	sta, err := s.codeField("sta", unitigStatuses)
	if err != nil {
		return err
	}
	u.Status = UnitigStatus(sta)
	if err := s.skipLegacyFields("abp", "bbp"); err != nil {
		return err
	}
	if u.Length, err = s.intField("len"); err != nil {
		return err
	}
	if u.Consensus, err = s.block("cns"); err != nil {
		return err
	}
	if u.Quality, err = s.block("qlt"); err != nil {
		return err
	}
	if u.Forced, err = s.boolField("for"); err != nil {
		return err
	}
	if u.NumReads, err = s.countField("nfr"); err != nil {
		return err
	}

	d, err := v.VisitUnitig(s.callback(), u)
	if err != nil {
		return err
	}
	child, descend := d.Child()
	if !descend {
		if err := s.skipRecords("MPS", u.NumReads); err != nil {
			return err
		}
		return s.closeRecord("UTG")
	}
	if child == nil {
		return s.errorf("unitig visitor descended with a nil child")
	}
	halted, err := s.walk(u.NumReads, func() error {
		return readLayoutBlock(s, child.VisitReadLayout)
	})
	if err != nil {
		return err
	}
	if halted {
		child.Halted()
		return nil
	}
	if err := s.closeRecord("UTG"); err != nil {
		return err
	}
	return child.VisitEnd()
}

func contigMessage(s *session, v Visitor) error {
	var c ContigRecord
	var err error
	if c.ID, err = s.idPairField("acc"); err != nil {
		return err
	}
	pla, err := s.field("pla")
	if err != nil {
		return err
	}
	switch strings.TrimSpace(pla) {
	case "P":
		c.Placed = true
	case "U":
	default:
		return s.errorf("unknown code in \"pla\"")
	}
	if c.Length, err = s.intField("len"); err != nil {
		return err
	}
	if c.Consensus, err = s.block("cns"); err != nil {
		return err
	}
	if c.Quality, err = s.block("qlt"); err != nil {
		return err
	}
	if c.Forced, err = s.boolField("for"); err != nil {
		return err
	}
	if c.NumReads, err = s.countField("npc"); err != nil {
		return err
	}
	if c.NumUnitigs, err = s.countField("nou"); err != nil {
		return err
	}
	if s.hasField("nvr") {
		if c.NumVariants, err = s.countField("nvr"); err != nil {
			return err
		}
	}

	d, err := v.VisitContig(s.callback(), c)
	if err != nil {
		return err
	}
	child, descend := d.Child()
	if !descend {
		if err := s.skipRecords("VAR", c.NumVariants); err != nil {
			return err
		}
		if err := s.skipRecords("MPS", c.NumReads); err != nil {
			return err
		}
		if err := s.skipRecords("UPS", c.NumUnitigs); err != nil {
			return err
		}
		return s.closeRecord("CCO")
	}
	if child == nil {
		return s.errorf("contig visitor descended with a nil child")
	}

	groups := []struct {
		n     int
		block func() error
	}{
		{c.NumVariants, func() error { return variantBlock(s, child.VisitVariant) }},
		{c.NumReads, func() error { return readLayoutBlock(s, child.VisitReadLayout) }},
		{c.NumUnitigs, func() error { return unitigLayoutBlock(s, child.VisitUnitigLayout) }},
	}
	for _, g := range groups {
		halted, err := s.walk(g.n, g.block)
		if err != nil {
			return err
		}
		if halted {
			child.Halted()
			return nil
		}
	}
	if err := s.closeRecord("CCO"); err != nil {
		return err
	}
	return child.VisitEnd()
}

func scaffoldMessage(s *session, v Visitor) error {
	id, err := s.idPairField("acc")
	if err != nil {
		return err
	}
	noc, err := s.countField("noc")
	if err != nil {
		return err
	}

	if noc == 0 {
		cb := s.callback()
		cp, err := contigPairBlock(s)
		if err != nil {
			return err
		}
		if cp.Contig1 != cp.Contig2 {
			return s.errorf("single-contig scaffold names two contigs %q and %q", cp.Contig1, cp.Contig2)
		}
		if err := s.closeRecord("SCF"); err != nil {
			return err
		}
		return v.VisitSingleContigScaffold(cb, SingleContigScaffold{ID: id, ContigID: cp.Contig1})
	}

	d, err := v.VisitScaffold(s.callback(), ScaffoldRecord{ID: id, NumContigPairs: noc})
	if err != nil {
		return err
	}
	child, descend := d.Child()
	if !descend {
		if err := s.skipRecords("CTP", noc); err != nil {
			return err
		}
		return s.closeRecord("SCF")
	}
	if child == nil {
		return s.errorf("scaffold visitor descended with a nil child")
	}
	halted, err := s.walk(noc, func() error {
		cp, err := contigPairBlock(s)
		if err != nil {
			return err
		}
		return child.VisitContigPair(cp)
	})
	if err != nil {
		return err
	}
	if halted {
		child.Halted()
		return nil
	}
	if err := s.closeRecord("SCF"); err != nil {
		return err
	}
	return child.VisitEnd()
}
