package service

import (
	"github.com/Irfaaanz/Opto5/internal/models"
)

// ClassifyStatus derives the status of an inventory record for a given day.
// It is a pure function: "today" always comes in as a parameter so callers
// and tests control the clock.
//
// Rules apply in strict priority order, first match wins:
//  1. expiry before today            -> Expired
//  2. expiry within nearExpiryDays   -> Near Expiry (the Nth day counts)
//  3. quantity <= lowStockThreshold  -> Low Stock
//  4. otherwise                      -> Normal
//
// Expiry dominates quantity: a record can be Expired with a full shelf.
// Records without an expiry date are classified on quantity alone.
func ClassifyStatus(rec models.InventoryRecord, today models.Date, lowStockThreshold, nearExpiryDays int) models.Status {
	if rec.ExpiryDate != nil {
		daysLeft := today.DaysUntil(*rec.ExpiryDate)
		if daysLeft < 0 {
			return models.StatusExpired
		}
		if daysLeft <= nearExpiryDays {
			return models.StatusNearExpiry
		}
	}
	if rec.Quantity <= lowStockThreshold {
		return models.StatusLowStock
	}
	return models.StatusNormal
}
