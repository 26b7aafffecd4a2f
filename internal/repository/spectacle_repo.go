package repository

import (
	"fmt"
	"sync"

	"github.com/Irfaaanz/Opto5/internal/models"
	"github.com/Irfaaanz/Opto5/internal/utils"
)

// SpectacleRepository is the in-memory store for the spectacle collection.
// All state is process-local by design; the mutex serializes the concurrent
// HTTP callers around an otherwise single-writer core.
type SpectacleRepository struct {
	mu    sync.RWMutex
	items []models.Spectacle
	index map[string]int
}

// NewSpectacleRepository creates an empty SpectacleRepository.
func NewSpectacleRepository() *SpectacleRepository {
	return &SpectacleRepository{index: make(map[string]int)}
}

// List returns a copy of all spectacles in insertion order.
func (r *SpectacleRepository) List() []models.Spectacle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Spectacle, len(r.items))
	copy(out, r.items)
	return out
}

// Get returns the spectacle with the given id, if present.
func (r *SpectacleRepository) Get(id string) (models.Spectacle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return models.Spectacle{}, false
	}
	return r.items[i], true
}

// Create appends a new spectacle. Duplicate ids are rejected without
// touching the stored collection.
func (r *SpectacleRepository) Create(s models.Spectacle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[s.ID]; exists {
		return fmt.Errorf("%w: product id %q already exists", utils.ErrValidation, s.ID)
	}
	r.index[s.ID] = len(r.items)
	r.items = append(r.items, s)
	return nil
}

// Update replaces every editable field of the spectacle with the given id.
// The id itself is immutable through this call.
func (r *SpectacleRepository) Update(id string, s models.Spectacle) (models.Spectacle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return models.Spectacle{}, fmt.Errorf("%w: spectacle %q", utils.ErrNotFound, id)
	}
	s.ID = id
	r.items[i] = s
	return s, nil
}

// Delete removes the spectacle with the given id. Inventory records and
// ledger entries referencing it are left alone.
func (r *SpectacleRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return fmt.Errorf("%w: spectacle %q", utils.ErrNotFound, id)
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.items); j++ {
		r.index[r.items[j].ID] = j
	}
	return nil
}

// Count returns the number of stored spectacles.
func (r *SpectacleRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
