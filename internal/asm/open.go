package asm

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openAt opens path positioned at the given offset of its decompressed
// content. gzip is detected by magic number (1F 8B) or by .gz suffix;
// compressed inputs are re-read from the start and discarded up to offset.
func openAt(path string, offset int64) (io.ReadCloser, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := io.ReadFull(fh, sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		rc := &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}
		if offset > 0 {
			if _, err := io.CopyN(io.Discard, gr, offset); err != nil {
				_ = rc.Close()
				return nil, fmt.Errorf("asm: seek %s to %d: %w", path, offset, err)
			}
		}
		return rc, nil
	}
	if offset > 0 {
		if _, err := fh.Seek(offset, io.SeekStart); err != nil {
			_ = fh.Close()
			return nil, err
		}
	}
	return fh, nil
}
