package repository

import (
	"sync"
	"time"

	"github.com/Irfaaanz/Opto5/internal/models"
)

// LedgerRepository is the append-only store of accepted stock transactions.
// Entries are never edited or removed once appended.
type LedgerRepository struct {
	mu      sync.RWMutex
	entries []models.StockTransaction
	lastTS  time.Time
}

// NewLedgerRepository creates an empty LedgerRepository.
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{}
}

// Append stamps the transaction and adds it to the ledger. Timestamps are
// non-decreasing across the ledger even if the wall clock steps backwards.
func (r *LedgerRepository) Append(tx models.StockTransaction) models.StockTransaction {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if now.Before(r.lastTS) {
		now = r.lastTS
	}
	r.lastTS = now
	tx.Timestamp = now
	r.entries = append(r.entries, tx)
	return tx
}

// List returns up to limit transactions, newest first. limit <= 0 returns
// the whole ledger.
func (r *LedgerRepository) List(limit int) []models.StockTransaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.entries)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]models.StockTransaction, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, r.entries[i])
	}
	return out
}

// All returns a copy of the ledger in append order.
func (r *LedgerRepository) All() []models.StockTransaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.StockTransaction, len(r.entries))
	copy(out, r.entries)
	return out
}

// Count returns the number of recorded transactions.
func (r *LedgerRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
