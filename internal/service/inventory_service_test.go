package service

import (
	"testing"
	"time"

	"github.com/Irfaaanz/Opto5/internal/config"
	"github.com/Irfaaanz/Opto5/internal/models"
	"github.com/Irfaaanz/Opto5/internal/repository"
)

func newTestInventory() (*InventoryService, *repository.InventoryRepository) {
	repo := repository.NewInventoryRepository()
	svc := NewInventoryService(repo, config.InventoryConfig{LowStockThreshold: 5, NearExpiryDays: 30})
	return svc, repo
}

func TestInventoryList_StatusPerRecord(t *testing.T) {
	svc, repo := newTestInventory()
	today := models.NewDate(2026, time.February, 1)
	soon := models.NewDate(2026, time.February, 20)
	past := models.NewDate(2024, time.January, 1)

	repo.Put(models.InventoryRecord{ProductID: "INV001", Name: "Ray-Ban RB5154 Black", Type: models.ItemTypeFrame, Quantity: 12})
	repo.Put(models.InventoryRecord{ProductID: "INV002", Name: "AeroX (Rayban) Matte", Type: models.ItemTypeFrame, Quantity: 3})
	repo.Put(models.InventoryRecord{ProductID: "INV004", Name: "Biofinity Monthly", Type: models.ItemTypeContact, Quantity: 20, ExpiryDate: &soon})
	repo.Put(models.InventoryRecord{ProductID: "INV007", Name: "Dailies Total1", Type: models.ItemTypeContact, Quantity: 15, ExpiryDate: &past})

	items := svc.List("", "", today)
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}

	want := map[string]models.Status{
		"INV001": models.StatusNormal,
		"INV002": models.StatusLowStock,
		"INV004": models.StatusNearExpiry,
		"INV007": models.StatusExpired,
	}
	for _, item := range items {
		if item.Status != want[item.ProductID] {
			t.Errorf("%s: got %q, want %q", item.ProductID, item.Status, want[item.ProductID])
		}
	}
}

func TestInventoryList_SearchAndTypeFilter(t *testing.T) {
	svc, repo := newTestInventory()
	today := models.NewDate(2026, time.February, 1)

	repo.Put(models.InventoryRecord{ProductID: "INV001", Name: "Ray-Ban RB5154 Black", Type: models.ItemTypeFrame, Quantity: 12})
	repo.Put(models.InventoryRecord{ProductID: "INV005", Name: "Zeiss DuraVision Lens", Type: models.ItemTypeLens, Quantity: 8})
	repo.Put(models.InventoryRecord{ProductID: "INV003", Name: "Acuvue Oasys 1-Day", Type: models.ItemTypeContact, Quantity: 45})

	if got := svc.List("rayban", "", today); len(got) != 1 || got[0].ProductID != "INV001" {
		t.Errorf("name search: got %v", got)
	}
	if got := svc.List("inv005", "", today); len(got) != 1 || got[0].ProductID != "INV005" {
		t.Errorf("id search: got %v", got)
	}
	if got := svc.List("", "Contact", today); len(got) != 1 || got[0].ProductID != "INV003" {
		t.Errorf("type filter: got %v", got)
	}
	if got := svc.List("", "All", today); len(got) != 3 {
		t.Errorf("All filter: got %d items", len(got))
	}
	if got := svc.List("zeiss", "Contact", today); len(got) != 0 {
		t.Errorf("search and filter must both apply: got %v", got)
	}
}
