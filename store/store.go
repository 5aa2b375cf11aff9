// SPDX-License-Identifier: MIT

// Package store persists element tables in SQLite (pure-Go modernc driver).
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/stoich/elements"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

const schema = `
CREATE TABLE IF NOT EXISTS atoms (
	number INTEGER PRIMARY KEY,
	symbol TEXT NOT NULL UNIQUE
);`

const (
	upsertAtom = `INSERT INTO atoms (number, symbol) VALUES (?, ?)
	ON CONFLICT(number) DO UPDATE SET symbol = excluded.symbol`
	selectAtoms = `SELECT number, symbol FROM atoms ORDER BY number`
)

var (
	// ErrEmptyPath indicates Open was called without a database path.
	ErrEmptyPath = errors.New("store: empty database path")

	// ErrEmptyTable indicates a table read from an unseeded database.
	ErrEmptyTable = errors.New("store: no atoms stored")
)

// Store wraps the atoms database. Safe for concurrent use.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists. ":memory:" is accepted.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("store: create directory: %w", err)
		}
	}

	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	// A single connection keeps ":memory:" databases coherent.
	db.SetMaxOpenConns(1)

	if _, err = db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: init schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the database path given to Open.
func (s *Store) Path() string { return s.path }

// Seed upserts atoms in one transaction keyed by atomic number and returns
// how many rows were written. The input is validated with elements.NewSet
// first, so a bad list writes nothing.
func (s *Store) Seed(ctx context.Context, atoms []elements.Atom) (int, error) {
	if _, err := elements.NewSet(atoms...); err != nil {
		return 0, fmt.Errorf("store: seed: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	stmt, err := tx.PrepareContext(ctx, upsertAtom)
	if err != nil {
		return 0, fmt.Errorf("store: prepare: %w", err)
	}
	defer stmt.Close()

	for _, a := range atoms {
		if _, err = stmt.ExecContext(ctx, a.Number, a.Symbol); err != nil {
			return 0, fmt.Errorf("store: upsert %s: %w", a.Symbol, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("store: commit: %w", err)
	}

	return len(atoms), nil
}

// Atoms returns every stored atom ordered by atomic number.
func (s *Store) Atoms(ctx context.Context) ([]elements.Atom, error) {
	rows, err := s.db.QueryContext(ctx, selectAtoms)
	if err != nil {
		return nil, fmt.Errorf("store: query atoms: %w", err)
	}
	defer rows.Close()

	var out []elements.Atom
	for rows.Next() {
		var a elements.Atom
		if err = rows.Scan(&a.Number, &a.Symbol); err != nil {
			return nil, fmt.Errorf("store: scan atom: %w", err)
		}
		out = append(out, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate atoms: %w", err)
	}

	return out, nil
}

// Table builds an elements.Set from the stored atoms. An empty database
// yields ErrEmptyTable.
func (s *Store) Table(ctx context.Context) (*elements.Set, error) {
	atoms, err := s.Atoms(ctx)
	if err != nil {
		return nil, err
	}
	if len(atoms) == 0 {
		return nil, ErrEmptyTable
	}

	return elements.NewSet(atoms...)
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
