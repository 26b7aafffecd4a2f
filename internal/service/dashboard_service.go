package service

import (
	"github.com/Irfaaanz/Opto5/internal/models"
	"github.com/Irfaaanz/Opto5/internal/repository"
)

// DashboardService aggregates the numbers the dashboard landing page shows:
// catalog size, priority alerts, and today's stock flow.
type DashboardService struct {
	catalog   *CatalogService
	inventory *InventoryService
	ledger    *repository.LedgerRepository
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(catalog *CatalogService, inventory *InventoryService, ledger *repository.LedgerRepository) *DashboardService {
	return &DashboardService{catalog: catalog, inventory: inventory, ledger: ledger}
}

// Summary is the dashboard payload.
type Summary struct {
	TotalProducts int `json:"totalProducts"`
	TotalStock    int `json:"totalStock"`

	LowStockItems []InventoryItem `json:"lowStockItems"`
	ExpiringItems []InventoryItem `json:"expiringItems"`

	TodayStockIn  int `json:"todayStockIn"`
	TodayStockOut int `json:"todayStockOut"`

	RecentTransactions []models.StockTransaction `json:"recentTransactions"`
}

const recentTransactionLimit = 5

// Summarize builds the dashboard summary for the given day. Low-stock and
// expiring lists come straight from the classifier, so they always agree
// with the inventory page.
func (s *DashboardService) Summarize(today models.Date) *Summary {
	summary := &Summary{
		TotalProducts:      s.catalog.ProductCount(),
		LowStockItems:      []InventoryItem{},
		ExpiringItems:      []InventoryItem{},
		RecentTransactions: s.ledger.List(recentTransactionLimit),
	}

	for _, item := range s.inventory.List("", "", today) {
		summary.TotalStock += item.Quantity
		switch item.Status {
		case models.StatusLowStock:
			summary.LowStockItems = append(summary.LowStockItems, item)
		case models.StatusNearExpiry, models.StatusExpired:
			summary.ExpiringItems = append(summary.ExpiringItems, item)
		}
	}

	for _, tx := range s.ledger.All() {
		if !models.DateOf(tx.Timestamp).Equal(today.Time) {
			continue
		}
		switch tx.Direction {
		case models.DirectionIn:
			summary.TodayStockIn += tx.Quantity
		case models.DirectionOut:
			summary.TodayStockOut += tx.Quantity
		}
	}

	return summary
}
