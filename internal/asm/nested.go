package asm

import (
	"sort"
	"strconv"
	"strings"
)

// readLayoutBlock parses one {MPS block and hands it to visit.
func readLayoutBlock(s *session, visit func(ReadPlacement) error) error {
	if err := s.openRecord("MPS"); err != nil {
		return err
	}
	typ, err := s.field("typ")
	if err != nil {
		return err
	}
	typ = strings.TrimSpace(typ)
	if len(typ) != 1 {
		return s.errorf("expected single character read type")
	}
	mid, err := s.stringField("mid")
	if err != nil {
		return err
	}
	if err := s.skipLegacyBlock("src"); err != nil {
		return err
	}
	rng, dir, err := s.orientedRangeField("pos")
	if err != nil {
		return err
	}
	gaps, err := s.gapList()
	if err != nil {
		return err
	}
	if err := s.closeRecord("MPS"); err != nil {
		return err
	}
	return visit(ReadPlacement{Type: typ[0], ReadID: mid, Range: rng, Direction: dir, GapOffsets: gaps})
}

// unitigLayoutBlock parses one {UPS block and hands it to visit.
func unitigLayoutBlock(s *session, visit func(UnitigPlacement) error) error {
	if err := s.openRecord("UPS"); err != nil {
		return err
	}
	typ, err := s.codeField("typ", layoutTypes)
	if err != nil {
		return err
	}
	lid, err := s.stringField("lid")
	if err != nil {
		return err
	}
	rng, dir, err := s.orientedRangeField("pos")
	if err != nil {
		return err
	}
	gaps, err := s.gapList()
	if err != nil {
		return err
	}
	if err := s.closeRecord("UPS"); err != nil {
		return err
	}
	return visit(UnitigPlacement{Type: UnitigLayoutType(typ), UnitigID: lid, Range: rng, Direction: dir, GapOffsets: gaps})
}

// variantBlock parses one {VAR block and hands it to visit.
func variantBlock(s *session, visit func(VariantRecord) error) error {
	if err := s.openRecord("VAR"); err != nil {
		return err
	}
	rng, err := s.rangeField("pos")
	if err != nil {
		return err
	}
	nrd, err := s.countField("nrd")
	if err != nil {
		return err
	}
	nca, err := s.countField("nca")
	if err != nil {
		return err
	}
	anc, err := s.countField("anc")
	if err != nil {
		return err
	}
	vid, err := s.intField("vid")
	if err != nil {
		return err
	}
	pid, err := s.intField("pid")
	if err != nil {
		return err
	}

	nraText, err := s.slashList("nra", nca)
	if err != nil {
		return err
	}
	readCounts := make([]int, nca)
	var total int64
	for i, t := range nraText {
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return s.wrapf(err, "bad read count in \"nra\"")
		}
		c, err := s.checkCount("nra", n)
		if err != nil {
			return err
		}
		readCounts[i] = c
		total += n
	}
	sum, err := s.checkCount("nra", total)
	if err != nil {
		return err
	}

	wgtText, err := s.slashList("wgt", nca)
	if err != nil {
		return err
	}
	weights := make([]int64, nca)
	for i, t := range wgtText {
		if weights[i], err = strconv.ParseInt(t, 10, 64); err != nil {
			return s.wrapf(err, "bad weight in \"wgt\"")
		}
	}
	seqs, err := s.slashList("seq", nca)
	if err != nil {
		return err
	}
	rids, err := s.slashList("rid", sum)
	if err != nil {
		return err
	}
	if err := s.closeRecord("VAR"); err != nil {
		return err
	}

	vars := make([]Variant, nca)
	next := 0
	for i := range vars {
		vars[i] = Variant{
			ReadIDs:  rids[next : next+readCounts[i] : next+readCounts[i]],
			Weight:   weights[i],
			Sequence: seqs[i],
		}
		next += readCounts[i]
	}
	sort.SliceStable(vars, func(i, j int) bool { return vars[i].Weight > vars[j].Weight })

	return visit(VariantRecord{
		Range:      rng,
		NumReads:   nrd,
		AnchorSize: anc,
		VariantID:  vid,
		PhasedID:   pid,
		Variants:   vars,
	})
}

// contigPairBlock parses one {CTP block.
func contigPairBlock(s *session) (ContigPair, error) {
	var cp ContigPair
	if err := s.openRecord("CTP"); err != nil {
		return cp, err
	}
	var err error
	if cp.Contig1, err = s.stringField("ct1"); err != nil {
		return cp, err
	}
	if cp.Contig2, err = s.stringField("ct2"); err != nil {
		return cp, err
	}
	if cp.Mean, err = s.floatField("mea"); err != nil {
		return cp, err
	}
	if cp.StdDev, err = s.floatField("std"); err != nil {
		return cp, err
	}
	ori, err := s.codeField("ori", orientations)
	if err != nil {
		return cp, err
	}
	cp.Orientation = LinkOrientation(ori)
	return cp, s.closeRecord("CTP")
}

// walk runs n sub-blocks, checking the halt flag and the context before
// each one and after the last. halted is true when the walk stopped on a
// halt request.
func (s *session) walk(n int, block func() error) (halted bool, err error) {
	for i := 0; i < n; i++ {
		if err := s.interrupted(); err != nil {
			return false, err
		}
		if s.haltRequested() {
			return true, nil
		}
		if err := block(); err != nil {
			return false, err
		}
	}
	return s.haltRequested(), nil
}

// skipRecords fast-skips n "{code" sub-blocks.
func (s *session) skipRecords(code string, n int) error {
	for i := 0; i < n; i++ {
		if err := s.skipRecord(code); err != nil {
			return err
		}
	}
	return nil
}
