package repository

import (
	"sync"

	"github.com/Irfaaanz/Opto5/internal/models"
)

// InventoryRepository is the in-memory store for inventory records, keyed by
// product id. Records are only ever mutated through the stock ledger; product
// edits never regenerate them.
type InventoryRepository struct {
	mu      sync.RWMutex
	records []models.InventoryRecord
	index   map[string]int
}

// NewInventoryRepository creates an empty InventoryRepository.
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{index: make(map[string]int)}
}

// List returns a copy of all records in insertion order.
func (r *InventoryRepository) List() []models.InventoryRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.InventoryRecord, len(r.records))
	copy(out, r.records)
	return out
}

// Get returns the record for the given product id, if present.
func (r *InventoryRepository) Get(productID string) (models.InventoryRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[productID]
	if !ok {
		return models.InventoryRecord{}, false
	}
	return r.records[i], true
}

// Put inserts or replaces the record for rec.ProductID.
func (r *InventoryRepository) Put(rec models.InventoryRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.index[rec.ProductID]; ok {
		r.records[i] = rec
		return
	}
	r.index[rec.ProductID] = len(r.records)
	r.records = append(r.records, rec)
}

// Count returns the number of stored records.
func (r *InventoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
