// Package sqlite provides a SQLite-backed implementation of the
// storage.Catalog interface using Go's standard database/sql package.
//
// The catalog file is a convenient artefact: seed it once from the JSON
// dataset and it can be inspected or queried with any SQLite tool.
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/aanand-mishra/dino-compare/internal/storage"
	"github.com/aanand-mishra/dino-compare/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Catalog.
// It holds a *sql.DB which is a connection pool managed by database/sql.
type SQLite struct {
	Db *sql.DB
}

var _ storage.Catalog = (*SQLite)(nil)

// New opens the SQLite database at path, creates the dinosaurs table if
// it does not already exist, and returns a ready-to-use *SQLite.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// CREATE TABLE IF NOT EXISTS is idempotent, safe to run on every
	// startup. position keeps the dataset order; species is matched
	// case-insensitively.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS dinosaurs (
			position INTEGER PRIMARY KEY,
			species  TEXT    NOT NULL COLLATE NOCASE,
			weight   REAL    NOT NULL,
			height   REAL    NOT NULL,
			diet     TEXT    NOT NULL,
			location TEXT    NOT NULL,
			period   TEXT    NOT NULL,
			fact     TEXT    NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// Close releases the connection pool.
func (s *SQLite) Close() error {
	return s.Db.Close()
}

// ─────────────────────────────────────────────────────────────────────────────
// ReplaceDinosaurs deletes every row and inserts dinos inside one
// transaction, so a reader never sees a half-seeded catalog.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) ReplaceDinosaurs(dinos []types.Dinosaur) (err error) {
	tx, err := s.Db.Begin()
	if err != nil {
		return fmt.Errorf("ReplaceDinosaurs: begin: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.Exec("DELETE FROM dinosaurs"); err != nil {
		return fmt.Errorf("ReplaceDinosaurs: clear: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO dinosaurs (position, species, weight, height, diet, location, period, fact)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("ReplaceDinosaurs: prepare: %w", err)
	}
	defer stmt.Close()

	for i, d := range dinos {
		// Argument order matches the ? order in the SQL.
		_, err = stmt.Exec(i, d.Species, float64(d.Weight), float64(d.Height),
			d.Diet, d.Where, d.When, d.Fact)
		if err != nil {
			return fmt.Errorf("ReplaceDinosaurs: insert %q: %w", d.Species, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("ReplaceDinosaurs: commit: %w", err)
	}
	return nil
}

// GetDinosaurs returns all rows in dataset order.
func (s *SQLite) GetDinosaurs() ([]types.Dinosaur, error) {
	stmt, err := s.Db.Prepare(
		"SELECT species, weight, height, diet, location, period, fact FROM dinosaurs ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("GetDinosaurs: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("GetDinosaurs: query: %w", err)
	}
	defer rows.Close()

	dinos := make([]types.Dinosaur, 0)
	for rows.Next() {
		d, err := scanDinosaur(rows)
		if err != nil {
			return nil, fmt.Errorf("GetDinosaurs: scan row: %w", err)
		}
		dinos = append(dinos, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetDinosaurs: rows iteration: %w", err)
	}

	return dinos, nil
}

// GetDinosaurBySpecies fetches exactly one row matched by species.
func (s *SQLite) GetDinosaurBySpecies(species string) (types.Dinosaur, error) {
	stmt, err := s.Db.Prepare(
		"SELECT species, weight, height, diet, location, period, fact FROM dinosaurs WHERE species = ? LIMIT 1",
	)
	if err != nil {
		return types.Dinosaur{}, fmt.Errorf("GetDinosaurBySpecies: prepare: %w", err)
	}
	defer stmt.Close()

	d, err := scanDinosaur(stmt.QueryRow(species))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Dinosaur{}, fmt.Errorf("species %q: %w", species, storage.ErrNotFound)
		}
		return types.Dinosaur{}, fmt.Errorf("GetDinosaurBySpecies: scan: %w", err)
	}

	return d, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDinosaur(row scanner) (types.Dinosaur, error) {
	var (
		d              types.Dinosaur
		weight, height float64
	)
	err := row.Scan(&d.Species, &weight, &height, &d.Diet, &d.Where, &d.When, &d.Fact)
	if err != nil {
		return types.Dinosaur{}, err
	}
	d.Weight = types.Measure(weight)
	d.Height = types.Measure(height)
	return d, nil
}
