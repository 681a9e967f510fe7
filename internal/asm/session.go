package asm

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// session is the state of one Accept call: the line cursor, the byte
// offset, the bookmark of the record being parsed and the halt flag.
// Every handler receives it explicitly.
type session struct {
	ctx context.Context
	r   *bufio.Reader

	offset int64 // bytes consumed so far (terminators included)
	lineNo int64

	// one line of lookahead; peeking does not move offset
	peeked     bool
	peekText   string
	peekRawLen int64
	peekErr    error

	// last consumed line, for error reports
	lastText   string
	lastOffset int64

	recordStart int64
	halt        bool

	source      Fingerprint
	canBookmark bool
}

func newSession(ctx context.Context, r io.Reader, start int64, source Fingerprint, canBookmark bool) *session {
	return &session{
		ctx:         ctx,
		r:           bufio.NewReaderSize(r, 256<<10),
		offset:      start,
		source:      source,
		canBookmark: canBookmark,
	}
}

// readRaw pulls the next physical line. The returned length counts the
// terminator so offsets stay exact for "\n" and "\r\n" files alike.
func (s *session) readRaw() (string, int64, error) {
	raw, err := s.r.ReadString('\n')
	if err != nil && !(err == io.EOF && len(raw) > 0) {
		if err == io.EOF {
			return "", 0, io.EOF
		}
		return "", 0, fmt.Errorf("asm: read: %w", err)
	}
	n := int64(len(raw))
	raw = strings.TrimSuffix(raw, "\n")
	raw = strings.TrimSuffix(raw, "\r")
	return raw, n, nil
}

// nextLine consumes one line. It returns io.EOF at end of input.
func (s *session) nextLine() (string, error) {
	var (
		text string
		n    int64
		err  error
	)
	if s.peeked {
		text, n, err = s.peekText, s.peekRawLen, s.peekErr
		s.peeked = false
	} else {
		text, n, err = s.readRaw()
	}
	if err != nil {
		return "", err
	}
	s.lineNo++
	s.lastText = text
	s.lastOffset = s.offset
	s.offset += n
	return text, nil
}

// peekLine returns the next line without consuming it.
func (s *session) peekLine() (string, error) {
	if !s.peeked {
		s.peekText, s.peekRawLen, s.peekErr = s.readRaw()
		s.peeked = true
	}
	return s.peekText, s.peekErr
}

// mustLine is nextLine with end of input turned into a grammar error.
func (s *session) mustLine(what string) (string, error) {
	line, err := s.nextLine()
	if errors.Is(err, io.EOF) {
		return "", &ParseError{Msg: "unexpected end of input while reading " + what}
	}
	return line, err
}

// markBookmark records the start of the record about to be parsed.
func (s *session) markBookmark() { s.recordStart = s.offset }

func (s *session) requestHalt()        { s.halt = true }
func (s *session) haltRequested() bool { return s.halt }

// interrupted reports a cancelled context; checked where halts are.
func (s *session) interrupted() error {
	if s.ctx == nil {
		return nil
	}
	return s.ctx.Err()
}

// errorf builds a ParseError pointing at the last consumed line.
func (s *session) errorf(format string, a ...any) error {
	return &ParseError{Line: s.lineNo, Offset: s.lastOffset, Text: s.lastText, Msg: fmt.Sprintf(format, a...)}
}

// wrapf is errorf with a cause.
func (s *session) wrapf(cause error, format string, a ...any) error {
	return &ParseError{Line: s.lineNo, Offset: s.lastOffset, Text: s.lastText, Msg: fmt.Sprintf(format, a...), Err: cause}
}

// callback returns the Callback for the record that started at recordStart.
func (s *session) callback() Callback {
	return &recordCallback{s: s, at: s.recordStart}
}

type recordCallback struct {
	s  *session
	at int64
}

func (c *recordCallback) CanCreateBookmark() bool { return c.s.canBookmark }

func (c *recordCallback) CreateBookmark() (Bookmark, error) {
	if !c.s.canBookmark {
		return Bookmark{}, ErrBookmarkUnsupported
	}
	return Bookmark{source: c.s.source, offset: c.at}, nil
}

func (c *recordCallback) RequestHalt() { c.s.requestHalt() }
