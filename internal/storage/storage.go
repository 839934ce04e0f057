// Package storage defines the contract for the dinosaur catalog.
//
// The catalog is seeded once from the dataset at startup and only read
// afterwards. Handlers depend on this interface, not on a backend, so
// the in-memory and SQLite catalogs are interchangeable.
package storage

import (
	"errors"

	"github.com/aanand-mishra/dino-compare/internal/types"
)

// ErrNotFound is returned when no dinosaur has the requested species.
var ErrNotFound = errors.New("dinosaur not found")

// Catalog is the storage contract.
type Catalog interface {
	// ReplaceDinosaurs swaps the whole catalog for dinos, keeping their order.
	ReplaceDinosaurs(dinos []types.Dinosaur) error

	// GetDinosaurs returns every dinosaur in dataset order.
	// Returns an empty slice (not nil) when the catalog is empty.
	GetDinosaurs() ([]types.Dinosaur, error)

	// GetDinosaurBySpecies returns one dinosaur, matched case-insensitively.
	// Wraps ErrNotFound when there is no match.
	GetDinosaurBySpecies(species string) (types.Dinosaur, error)
}
