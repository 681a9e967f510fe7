package asm

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
)

// Parser walks one ASM input. A file-backed Parser (Open) may be accepted
// any number of times, concurrently, and supports bookmarks: every Accept
// opens its own stream. A stream Parser (NewStreamParser, or Open("-"))
// can be accepted once and cannot bookmark.
type Parser struct {
	path   string
	source Fingerprint

	mu       sync.Mutex
	stream   io.Reader
	consumed bool
}

// Open returns a Parser over path. "-" reads stdin.
func Open(path string) (*Parser, error) {
	if path == "-" {
		return NewStreamParser(os.Stdin), nil
	}
	fp, err := fingerprintFile(path)
	if err != nil {
		return nil, fmt.Errorf("asm: open %s: %w", path, err)
	}
	return &Parser{path: path, source: fp}, nil
}

// NewStreamParser returns a one-shot Parser over r.
func NewStreamParser(r io.Reader) *Parser {
	return &Parser{stream: r}
}

// Path is the input path ("" for streams).
func (p *Parser) Path() string { return p.path }

// Fingerprint identifies the file revision; zero for streams.
func (p *Parser) Fingerprint() Fingerprint { return p.source }

// CanCreateBookmarks reports whether visits will be able to bookmark.
func (p *Parser) CanCreateBookmarks() bool { return p.stream == nil }

// Accept parses the whole input with v.
func (p *Parser) Accept(ctx context.Context, v Visitor) error {
	return p.accept(ctx, v, 0)
}

// AcceptFrom resumes parsing at the record b points to. b must come from
// this parser (or one opened on the same file revision).
func (p *Parser) AcceptFrom(ctx context.Context, v Visitor, b Bookmark) error {
	if p.stream != nil {
		return ErrBookmarkUnsupported
	}
	if b.source != p.source {
		return ErrForeignBookmark
	}
	return p.accept(ctx, v, b.offset)
}

// RestoreBookmark rebuilds a bookmark persisted as (source, offset).
func (p *Parser) RestoreBookmark(source Fingerprint, offset int64) (Bookmark, error) {
	if p.stream != nil {
		return Bookmark{}, ErrBookmarkUnsupported
	}
	if source != p.source || offset < 0 {
		return Bookmark{}, ErrForeignBookmark
	}
	return Bookmark{source: source, offset: offset}, nil
}

func (p *Parser) accept(ctx context.Context, v Visitor, offset int64) error {
	if ctx == nil {
		ctx = context.Background()
	}
	rc, err := p.open(offset)
	if err != nil {
		return err
	}
	defer rc.Close()

	s := newSession(ctx, rc, offset, p.source, p.stream == nil)
	return dispatch(s, v)
}

func (p *Parser) open(offset int64) (io.ReadCloser, error) {
	if p.stream == nil {
		rc, err := openAt(p.path, offset)
		if err != nil {
			return nil, fmt.Errorf("asm: open %s: %w", p.path, err)
		}
		return rc, nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.consumed {
		return nil, ErrStreamConsumed
	}
	p.consumed = true
	if rc, ok := p.stream.(io.ReadCloser); ok {
		return rc, nil
	}
	return io.NopCloser(p.stream), nil
}
