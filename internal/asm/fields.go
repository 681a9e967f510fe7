package asm

import (
	"math"
	"strconv"
	"strings"
)

// maxCount bounds every declared count.
const maxCount = math.MaxInt32

// maxPrealloc bounds slice capacity taken from a declared count; longer
// lists grow as their values are read.
const maxPrealloc = 1024

// field consumes one "key:value" line and returns value.
func (s *session) field(key string) (string, error) {
	line, err := s.mustLine(key + ":")
	if err != nil {
		return "", err
	}
	k, v, ok := strings.Cut(line, ":")
	if !ok || k != key {
		return "", s.errorf("expected %q field", key)
	}
	return v, nil
}

// hasField peeks whether the next line is a key field.
func (s *session) hasField(key string) bool {
	line, err := s.peekLine()
	return err == nil && strings.HasPrefix(line, key+":")
}

func (s *session) stringField(key string) (string, error) {
	v, err := s.field(key)
	if err != nil {
		return "", err
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", s.errorf("empty %q field", key)
	}
	return v, nil
}

func (s *session) intField(key string) (int64, error) {
	v, err := s.field(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, s.wrapf(err, "bad integer in %q", key)
	}
	return n, nil
}

// countField reads a non-negative declared count that must fit in 31 bits.
func (s *session) countField(key string) (int, error) {
	n, err := s.intField(key)
	if err != nil {
		return 0, err
	}
	return s.checkCount(key, n)
}

func (s *session) checkCount(key string, n int64) (int, error) {
	if n < 0 {
		return 0, s.errorf("negative count in %q", key)
	}
	if n > maxCount {
		return 0, s.wrapf(ErrCountOverflow, "count %d in %q exceeds %d", n, key, maxCount)
	}
	return int(n), nil
}

func (s *session) floatField(key string) (float64, error) {
	v, err := s.field(key)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, s.wrapf(err, "bad float in %q", key)
	}
	return f, nil
}

func (s *session) boolField(key string) (bool, error) {
	v, err := s.field(key)
	if err != nil {
		return false, err
	}
	switch strings.TrimSpace(v) {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, s.errorf("expected 0 or 1 in %q", key)
}

// codeField reads a single-character code from a closed set.
func (s *session) codeField(key string, set codeSet) (byte, error) {
	v, err := s.field(key)
	if err != nil {
		return 0, err
	}
	b, ok := set.lookup(strings.TrimSpace(v))
	if !ok {
		return 0, s.errorf("unknown code in %q", key)
	}
	return b, nil
}

// idPairField reads "key:(external,internal)".
func (s *session) idPairField(key string) (IDPair, error) {
	v, err := s.field(key)
	if err != nil {
		return IDPair{}, err
	}
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "(") || !strings.HasSuffix(v, ")") {
		return IDPair{}, s.errorf("expected (external,internal) in %q", key)
	}
	ext, iid, ok := strings.Cut(v[1:len(v)-1], ",")
	if !ok || ext == "" {
		return IDPair{}, s.errorf("expected (external,internal) in %q", key)
	}
	n, err := strconv.ParseInt(iid, 10, 64)
	if err != nil {
		return IDPair{}, s.wrapf(err, "bad internal id in %q", key)
	}
	return IDPair{External: ext, Internal: n}, nil
}

func (s *session) pairOfInts(key string) (int64, int64, error) {
	v, err := s.field(key)
	if err != nil {
		return 0, 0, err
	}
	a, b, ok := strings.Cut(strings.TrimSpace(v), ",")
	if !ok {
		return 0, 0, s.errorf("expected a,b in %q", key)
	}
	x, err1 := strconv.ParseInt(a, 10, 64)
	y, err2 := strconv.ParseInt(b, 10, 64)
	if err1 != nil || err2 != nil {
		return 0, 0, s.errorf("bad range in %q", key)
	}
	return x, y, nil
}

// rangeField reads "key:begin,end" with begin <= end.
func (s *session) rangeField(key string) (Range, error) {
	a, b, err := s.pairOfInts(key)
	if err != nil {
		return Range{}, err
	}
	if a > b || a < 0 {
		return Range{}, s.errorf("invalid range in %q", key)
	}
	return Range{Begin: a, End: b}, nil
}

// orientedRangeField reads "key:a,b"; a > b means reverse.
func (s *session) orientedRangeField(key string) (Range, Direction, error) {
	a, b, err := s.pairOfInts(key)
	if err != nil {
		return Range{}, Forward, err
	}
	if a < 0 || b < 0 {
		return Range{}, Forward, s.errorf("negative coordinate in %q", key)
	}
	if a > b {
		return Range{Begin: b, End: a}, Reverse, nil
	}
	return Range{Begin: a, End: b}, Forward, nil
}

// intList consumes n whitespace separated integers starting with the text
// already read (rest) and continuing on following lines. Wrapped lines are
// fine; a terminator before n values is an error.
func (s *session) intList(key, rest string, n int) ([]int64, error) {
	out := make([]int64, 0, min(n, maxPrealloc))
	text := rest
	for {
		for _, f := range strings.Fields(text) {
			if len(out) == n {
				return nil, s.errorf("more than %d values in %q", n, key)
			}
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, s.wrapf(err, "bad integer in %q list", key)
			}
			out = append(out, v)
		}
		if len(out) == n {
			return out, nil
		}
		line, err := s.peekLine()
		if err != nil || strings.HasPrefix(line, "}") || strings.HasPrefix(line, "{") || strings.Contains(line, ":") {
			if _, err := s.mustLine(key + " values"); err != nil {
				return nil, err
			}
			return nil, s.errorf("expected %d values in %q, got %d", n, key, len(out))
		}
		if text, err = s.nextLine(); err != nil {
			return nil, err
		}
	}
}

// gapList reads "dln:n" then "del:" followed by n ascending offsets.
func (s *session) gapList() ([]int, error) {
	n, err := s.countField("dln")
	if err != nil {
		return nil, err
	}
	if n == 0 {
		if s.hasField("del") {
			if _, err := s.field("del"); err != nil {
				return nil, err
			}
		}
		return nil, nil
	}
	rest, err := s.field("del")
	if err != nil {
		return nil, err
	}
	vals, err := s.intList("del", rest, n)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(vals))
	prev := int64(-1)
	for i, v := range vals {
		if v < prev || v < 0 {
			return nil, s.errorf("gap offsets not ascending at index %d", i)
		}
		prev = v
		out[i] = int(v)
	}
	return out, nil
}

// block reads "key:" followed by lines up to one starting with '.', concatenated.
func (s *session) block(key string) (string, error) {
	first, err := s.field(key)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(strings.TrimSpace(first))
	for {
		line, err := s.mustLine(key + " block")
		if err != nil {
			return "", err
		}
		if strings.HasPrefix(line, ".") {
			return b.String(), nil
		}
		if strings.HasPrefix(line, "}") || strings.HasPrefix(line, "{") {
			return "", s.errorf("unterminated %q block", key)
		}
		b.WriteString(line)
	}
}

// skipBlock consumes a "key:" block without keeping it.
func (s *session) skipBlock(key string) error {
	if _, err := s.field(key); err != nil {
		return err
	}
	for {
		line, err := s.mustLine(key + " block")
		if err != nil {
			return err
		}
		if strings.HasPrefix(line, ".") {
			return nil
		}
		if strings.HasPrefix(line, "}") || strings.HasPrefix(line, "{") {
			return s.errorf("unterminated %q block", key)
		}
	}
}

// skipLegacyBlock skips an optional "key:" block written by older
// assembler versions. Only a peek happens when it is absent.
func (s *session) skipLegacyBlock(key string) error {
	if !s.hasField(key) {
		return nil
	}
	return s.skipBlock(key)
}

// skipLegacyFields skips optional single-line fields, in any order.
func (s *session) skipLegacyFields(keys ...string) error {
	for {
		line, err := s.peekLine()
		if err != nil {
			return nil
		}
		k, _, ok := strings.Cut(line, ":")
		if !ok || !contains(keys, k) {
			return nil
		}
		if _, err := s.nextLine(); err != nil {
			return err
		}
	}
}

func contains(keys []string, k string) bool {
	for _, x := range keys {
		if x == k {
			return true
		}
	}
	return false
}

// slashList splits "a/b/c" (a trailing '/' is allowed) and checks the length.
func (s *session) slashList(key string, n int) ([]string, error) {
	v, err := s.field(key)
	if err != nil {
		return nil, err
	}
	v = strings.TrimSuffix(strings.TrimSpace(v), "/")
	var parts []string
	if v != "" {
		parts = strings.Split(v, "/")
	}
	if len(parts) != n {
		return nil, s.errorf("expected %d entries in %q, got %d", n, key, len(parts))
	}
	return parts, nil
}

// openRecord consumes "{code".
func (s *session) openRecord(code string) error {
	line, err := s.mustLine("{" + code)
	if err != nil {
		return err
	}
	if strings.TrimSpace(line) != "{"+code {
		return s.errorf("expected {%s", code)
	}
	return nil
}

// closeRecord consumes the "}" terminator.
func (s *session) closeRecord(code string) error {
	line, err := s.mustLine("end of " + code)
	if err != nil {
		return err
	}
	if strings.TrimSpace(line) != "}" {
		return s.errorf("expected } closing %s", code)
	}
	return nil
}

// skipRecord fast-skips a "{code ... }" block without parsing its fields.
func (s *session) skipRecord(code string) error {
	if err := s.openRecord(code); err != nil {
		return err
	}
	for {
		line, err := s.mustLine("end of " + code)
		if err != nil {
			return err
		}
		if strings.HasPrefix(line, "}") {
			return nil
		}
		if strings.HasPrefix(line, "{") {
			return s.errorf("nested record inside %s", code)
		}
	}
}
