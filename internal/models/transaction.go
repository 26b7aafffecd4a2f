package models

import "time"

// Direction says whether a stock transaction adds to or removes from stock.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// Reason explains why a stock transaction occurred. The allowed set depends
// on the direction.
type Reason string

const (
	ReasonNewStock     Reason = "New Stock"
	ReasonReturnedItem Reason = "Returned Item"
	ReasonSale         Reason = "Sale"
	ReasonDamaged      Reason = "Damaged"
	ReasonExpired      Reason = "Expired"
	ReasonAdjustment   Reason = "Adjustment"
)

var reasonsByDirection = map[Direction][]Reason{
	DirectionIn:  {ReasonNewStock, ReasonReturnedItem, ReasonAdjustment},
	DirectionOut: {ReasonSale, ReasonDamaged, ReasonExpired, ReasonAdjustment},
}

// AllowedReasons returns the valid reasons for a direction, in the order the
// stock flow form presents them. Unknown directions yield nil.
func AllowedReasons(d Direction) []Reason {
	src := reasonsByDirection[d]
	if src == nil {
		return nil
	}
	out := make([]Reason, len(src))
	copy(out, src)
	return out
}

// ReasonAllowed reports whether r is valid for direction d.
func ReasonAllowed(d Direction, r Reason) bool {
	for _, allowed := range reasonsByDirection[d] {
		if r == allowed {
			return true
		}
	}
	return false
}

// StockTransaction is an accepted, immutable stock movement. Once appended to
// the ledger it is never edited or deleted; corrections are recorded as new
// compensating transactions.
type StockTransaction struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Direction Direction `json:"direction"`
	Quantity  int       `json:"quantity"`
	Reason    Reason    `json:"reason"`
	Notes     string    `json:"notes,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
