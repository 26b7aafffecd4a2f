package repository

import (
	"fmt"
	"sync"

	"github.com/Irfaaanz/Opto5/internal/models"
	"github.com/Irfaaanz/Opto5/internal/utils"
)

// LensRepository is the in-memory store for the contact lens collection.
// Lens ids live in their own namespace: a lens and a spectacle may share an
// id without conflict.
type LensRepository struct {
	mu    sync.RWMutex
	items []models.Lens
	index map[string]int
}

// NewLensRepository creates an empty LensRepository.
func NewLensRepository() *LensRepository {
	return &LensRepository{index: make(map[string]int)}
}

// List returns a copy of all lenses in insertion order.
func (r *LensRepository) List() []models.Lens {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Lens, len(r.items))
	copy(out, r.items)
	return out
}

// Get returns the lens with the given id, if present.
func (r *LensRepository) Get(id string) (models.Lens, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return models.Lens{}, false
	}
	return r.items[i], true
}

// Create appends a new lens. Duplicate ids are rejected without touching the
// stored collection.
func (r *LensRepository) Create(l models.Lens) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[l.ID]; exists {
		return fmt.Errorf("%w: product id %q already exists", utils.ErrValidation, l.ID)
	}
	r.index[l.ID] = len(r.items)
	r.items = append(r.items, l)
	return nil
}

// Update replaces every editable field of the lens with the given id. The id
// itself is immutable through this call.
func (r *LensRepository) Update(id string, l models.Lens) (models.Lens, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return models.Lens{}, fmt.Errorf("%w: lens %q", utils.ErrNotFound, id)
	}
	l.ID = id
	r.items[i] = l
	return l, nil
}

// Delete removes the lens with the given id.
func (r *LensRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return fmt.Errorf("%w: lens %q", utils.ErrNotFound, id)
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.items); j++ {
		r.index[r.items[j].ID] = j
	}
	return nil
}

// Count returns the number of stored lenses.
func (r *LensRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
