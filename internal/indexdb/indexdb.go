// Package indexdb persists asmstore bookmarks in an SQLite sidecar next to
// the ASM file, so later runs skip the indexing pass.
package indexdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"asmkit/internal/asm"
	"asmkit/internal/asmstore"
)

var (
	// ErrNoIndex means the sidecar holds nothing for the requested kind.
	ErrNoIndex = errors.New("indexdb: no index")
	// ErrStale means the sidecar was written for another version of the file.
	ErrStale = errors.New("indexdb: index is stale")
	// ErrNoSource means the index was not built from a file.
	ErrNoSource = errors.New("indexdb: index has no source file")
)

// kindKey marks a kind as fully indexed, so a kind with no records is
// still current.
func kindKey(k asmstore.Kind) string { return "kind:" + k.String() }

const schema = `
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS bookmarks (
	kind   TEXT    NOT NULL,
	id     TEXT    NOT NULL,
	pos    INTEGER NOT NULL,
	PRIMARY KEY (kind, id)
);`

// SidecarPath is where the index of asmPath lives.
func SidecarPath(asmPath, suffix string) string { return asmPath + suffix }

// DB is an open sidecar.
type DB struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the sidecar at path.
func Open(ctx context.Context, path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init %s: %w", path, err)
	}
	return &DB{db: db, path: path}, nil
}

func (d *DB) Close() error { return d.db.Close() }

func (d *DB) Path() string { return d.path }

// Source returns the fingerprint the sidecar was written for, or "".
func (d *DB) Source(ctx context.Context) (string, error) {
	var v string
	err := d.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'source'`).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return v, err
}

// Save replaces the stored index of ix.Kind(). Saving for a different
// source file drops every kind first.
func (d *DB) Save(ctx context.Context, ix *asmstore.Index) error {
	if ix.Source().IsZero() {
		return ErrNoSource
	}
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var prev string
	err = tx.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'source'`).Scan(&prev)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	src := ix.Source().String()
	if prev != src {
		if _, err := tx.ExecContext(ctx, `DELETE FROM bookmarks`); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM meta WHERE key <> 'source'`); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO meta (key, value) VALUES ('source', ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, src); err != nil {
			return err
		}
	}
	kind := ix.Kind().String()
	if _, err := tx.ExecContext(ctx, `DELETE FROM bookmarks WHERE kind = ?`, kind); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO bookmarks (kind, id, pos) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	err = ix.Each(func(id string, b asm.Bookmark) error {
		_, err := stmt.ExecContext(ctx, kind, id, b.Offset())
		return err
	})
	if err != nil {
		return fmt.Errorf("save %s index: %w", kind, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO meta (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, kindKey(ix.Kind()), ix.Len()); err != nil {
		return err
	}
	return tx.Commit()
}

// Load restores the index of kind for p. The sidecar must have been
// written for the same file content.
func (d *DB) Load(ctx context.Context, p *asm.Parser, kind asmstore.Kind) (*asmstore.Index, error) {
	src, err := d.Source(ctx)
	if err != nil {
		return nil, err
	}
	if src == "" {
		return nil, ErrNoIndex
	}
	if src != p.Fingerprint().String() {
		return nil, fmt.Errorf("%s: %w", d.path, ErrStale)
	}
	var saved string
	err = d.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, kindKey(kind)).Scan(&saved)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s %ss: %w", d.path, kind, ErrNoIndex)
	}
	if err != nil {
		return nil, err
	}
	rows, err := d.db.QueryContext(ctx, `SELECT id, pos FROM bookmarks WHERE kind = ?`, kind.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := map[string]asm.Bookmark{}
	for rows.Next() {
		var (
			id  string
			off int64
		)
		if err := rows.Scan(&id, &off); err != nil {
			return nil, err
		}
		b, err := p.RestoreBookmark(p.Fingerprint(), off)
		if err != nil {
			return nil, err
		}
		entries[id] = b
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return asmstore.NewIndex(kind, p.Fingerprint(), entries)
}

// LoadOrBuild returns the sidecar index when it is current, and otherwise
// builds one and writes it back. built reports which happened.
func LoadOrBuild(ctx context.Context, sidecar string, p *asm.Parser, kind asmstore.Kind) (ix *asmstore.Index, built bool, err error) {
	d, err := Open(ctx, sidecar)
	if err != nil {
		return nil, false, err
	}
	defer d.Close()

	ix, err = d.Load(ctx, p, kind)
	if err == nil {
		return ix, false, nil
	}
	if !errors.Is(err, ErrNoIndex) && !errors.Is(err, ErrStale) {
		return nil, false, err
	}
	if ix, err = asmstore.BuildIndex(ctx, p, kind, nil); err != nil {
		return nil, false, err
	}
	if err := d.Save(ctx, ix); err != nil {
		return nil, true, err
	}
	return ix, true, nil
}

// Remove deletes the sidecar; a missing file is not an error.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
