package asm

import (
	"errors"
	"fmt"
)

var (
	// ErrBookmarkUnsupported is returned by Callback.CreateBookmark when the
	// parser reads from a stream it cannot reopen.
	ErrBookmarkUnsupported = errors.New("asm: bookmarks not supported by this parser")
	// ErrForeignBookmark means a bookmark was handed to a parser (or file
	// revision) that did not create it.
	ErrForeignBookmark = errors.New("asm: bookmark belongs to a different parser")
	// ErrCountOverflow marks a declared count that does not fit in 31 bits.
	ErrCountOverflow = errors.New("asm: declared count overflows")
	// ErrStreamConsumed is returned when a stream parser is accepted twice.
	ErrStreamConsumed = errors.New("asm: stream already consumed")
)

// ParseError reports a grammar violation. Parsing stops at the first one.
type ParseError struct {
	Line   int64  // 1-based line number of the offending line (0 at end of input)
	Offset int64  // byte offset where that line starts
	Text   string // offending line, without terminator
	Msg    string
	Err    error // optional cause
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("asm: %s at end of input", e.Msg)
	}
	return fmt.Sprintf("asm: line %d (offset %d): %s: %q", e.Line, e.Offset, e.Msg, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsParseError reports whether err carries a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
