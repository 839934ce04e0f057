// Package memory is a storage.Catalog backed by a slice. It is used when
// no storage_path is configured.
package memory

import (
	"fmt"
	"strings"
	"sync"

	"github.com/aanand-mishra/dino-compare/internal/storage"
	"github.com/aanand-mishra/dino-compare/internal/types"
)

type Memory struct {
	mu    sync.RWMutex
	dinos []types.Dinosaur
}

var _ storage.Catalog = (*Memory)(nil)

func New() *Memory {
	return &Memory{}
}

func (m *Memory) ReplaceDinosaurs(dinos []types.Dinosaur) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dinos = append([]types.Dinosaur(nil), dinos...)
	return nil
}

func (m *Memory) GetDinosaurs() ([]types.Dinosaur, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append(make([]types.Dinosaur, 0, len(m.dinos)), m.dinos...), nil
}

func (m *Memory) GetDinosaurBySpecies(species string) (types.Dinosaur, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.dinos {
		if strings.EqualFold(d.Species, species) {
			return d, nil
		}
	}
	return types.Dinosaur{}, fmt.Errorf("species %q: %w", species, storage.ErrNotFound)
}
