package asm

import (
	"encoding/binary"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint identifies one revision of one input file.
type Fingerprint [blake2b.Size256]byte

func (f Fingerprint) String() string { return hex.EncodeToString(f[:]) }

// IsZero reports whether f was never set (stream parsers have none).
func (f Fingerprint) IsZero() bool { return f == Fingerprint{} }

// Bookmark is the byte offset of a record start, tied to the parser that
// produced it.
type Bookmark struct {
	source Fingerprint
	offset int64
}

// Offset is the byte offset of the bookmarked record in the (decompressed) input.
func (b Bookmark) Offset() int64 { return b.offset }

// Source is the fingerprint of the file the bookmark belongs to.
func (b Bookmark) Source() Fingerprint { return b.source }

// headBytes is how much of the file is folded into the fingerprint.
const headBytes = 64 << 10

// fingerprintFile hashes the absolute path, size, mtime and the first
// headBytes of the file.
func fingerprintFile(path string) (Fingerprint, error) {
	var fp Fingerprint
	abs, err := filepath.Abs(path)
	if err != nil {
		return fp, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return fp, err
	}
	defer fh.Close()
	st, err := fh.Stat()
	if err != nil {
		return fp, err
	}

	h, _ := blake2b.New256(nil)
	_, _ = io.WriteString(h, abs)
	var meta [16]byte
	binary.LittleEndian.PutUint64(meta[:8], uint64(st.Size()))
	binary.LittleEndian.PutUint64(meta[8:], uint64(st.ModTime().UnixNano()))
	_, _ = h.Write(meta[:])
	if _, err := io.CopyN(h, fh, headBytes); err != nil && err != io.EOF {
		return fp, err
	}
	copy(fp[:], h.Sum(nil))
	return fp, nil
}
