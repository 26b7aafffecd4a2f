package service

import (
	"strings"

	"github.com/Irfaaanz/Opto5/internal/config"
	"github.com/Irfaaanz/Opto5/internal/models"
	"github.com/Irfaaanz/Opto5/internal/repository"
)

// InventoryService produces the stock overview: every record with its status
// derived for the requested day.
type InventoryService struct {
	inventory *repository.InventoryRepository
	cfg       config.InventoryConfig
}

// NewInventoryService constructs an InventoryService.
func NewInventoryService(inventory *repository.InventoryRepository, cfg config.InventoryConfig) *InventoryService {
	return &InventoryService{inventory: inventory, cfg: cfg}
}

// InventoryItem is an inventory record together with its derived status.
// The status is computed per read and never written back.
type InventoryItem struct {
	models.InventoryRecord
	Status models.Status `json:"status"`
}

// List returns the inventory filtered by free-text search (name or product
// id, case-insensitive) and item type. typeFilter "" or "All" matches every
// type.
func (s *InventoryService) List(search, typeFilter string, today models.Date) []InventoryItem {
	needle := strings.ToLower(search)

	records := s.inventory.List()
	out := make([]InventoryItem, 0, len(records))
	for _, rec := range records {
		if needle != "" &&
			!strings.Contains(strings.ToLower(rec.Name), needle) &&
			!strings.Contains(strings.ToLower(rec.ProductID), needle) {
			continue
		}
		if typeFilter != "" && typeFilter != "All" && string(rec.Type) != typeFilter {
			continue
		}
		out = append(out, s.withStatus(rec, today))
	}
	return out
}

// Classify derives the status of a single record using the configured
// thresholds.
func (s *InventoryService) Classify(rec models.InventoryRecord, today models.Date) models.Status {
	return ClassifyStatus(rec, today, s.cfg.LowStockThreshold, s.cfg.NearExpiryDays)
}

func (s *InventoryService) withStatus(rec models.InventoryRecord, today models.Date) InventoryItem {
	return InventoryItem{InventoryRecord: rec, Status: s.Classify(rec, today)}
}
