package asmstore

import (
	"errors"
	"fmt"

	"asmkit/internal/builder"
)

var (
	// ErrNotFound is returned by Get for ids missing from the index.
	ErrNotFound = errors.New("not found")
	// ErrMissingSequence and ErrMissingClearRange come from the builder.
	ErrMissingSequence   = builder.ErrMissingSequence
	ErrMissingClearRange = builder.ErrMissingClearRange
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("store closed")
	// ErrNeedsFile is returned by multi-pass loaders given a stream parser.
	ErrNeedsFile = errors.New("input must be a file, not a stream")
)

// Error is the datastore-level wrapper of anything failing underneath,
// parse errors included.
type Error struct {
	Op  string // "index", "get", "load", ...
	ID  string // record id, when known
	Err error
}

func (e *Error) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("asmstore: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("asmstore: %s %s: %v", e.Op, e.ID, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func wrap(op, id string, err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	return &Error{Op: op, ID: id, Err: err}
}
