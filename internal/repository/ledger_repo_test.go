package repository

import (
	"testing"

	"github.com/Irfaaanz/Opto5/internal/models"
)

func TestLedgerRepository_AppendAssignsMonotonicTimestamps(t *testing.T) {
	repo := NewLedgerRepository()

	var prev models.StockTransaction
	for i := 0; i < 100; i++ {
		tx := repo.Append(models.StockTransaction{ID: "tx", ProductID: "RB123", Direction: models.DirectionIn, Quantity: 1, Reason: models.ReasonNewStock})
		if tx.Timestamp.IsZero() {
			t.Fatal("append did not stamp the transaction")
		}
		if i > 0 && tx.Timestamp.Before(prev.Timestamp) {
			t.Fatalf("timestamp went backwards: %v after %v", tx.Timestamp, prev.Timestamp)
		}
		prev = tx
	}
}

func TestLedgerRepository_ListReturnsCopies(t *testing.T) {
	repo := NewLedgerRepository()
	repo.Append(models.StockTransaction{ID: "tx-1", ProductID: "RB123", Direction: models.DirectionIn, Quantity: 5, Reason: models.ReasonNewStock})

	got := repo.List(0)
	got[0].Quantity = 999

	if again := repo.List(0); again[0].Quantity != 5 {
		t.Errorf("ledger entry mutated through a returned slice: %d", again[0].Quantity)
	}
}

func TestLedgerRepository_ListLimitNewestFirst(t *testing.T) {
	repo := NewLedgerRepository()
	for i := 1; i <= 5; i++ {
		repo.Append(models.StockTransaction{ID: "tx", ProductID: "RB123", Direction: models.DirectionIn, Quantity: i, Reason: models.ReasonNewStock})
	}

	got := repo.List(2)
	if len(got) != 2 {
		t.Fatalf("limit 2: got %d entries", len(got))
	}
	if got[0].Quantity != 5 || got[1].Quantity != 4 {
		t.Errorf("expected newest first, got quantities %d, %d", got[0].Quantity, got[1].Quantity)
	}

	if got := repo.List(100); len(got) != 5 {
		t.Errorf("oversized limit: got %d entries", len(got))
	}
}

func TestSpectacleRepository_DeleteReindexes(t *testing.T) {
	repo := NewSpectacleRepository()
	for _, id := range []string{"SID001", "SID002", "SID003"} {
		if err := repo.Create(models.Spectacle{ID: id, Brand: "Ray-Ban"}); err != nil {
			t.Fatal(err)
		}
	}

	if err := repo.Delete("SID002"); err != nil {
		t.Fatal(err)
	}

	// Remaining items must stay addressable after the slice shifts.
	if _, ok := repo.Get("SID003"); !ok {
		t.Error("SID003 unreachable after deleting SID002")
	}
	got := repo.List()
	if len(got) != 2 || got[0].ID != "SID001" || got[1].ID != "SID003" {
		t.Errorf("insertion order broken after delete: %v", got)
	}
}
