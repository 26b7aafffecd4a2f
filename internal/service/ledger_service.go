package service

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Irfaaanz/Opto5/internal/models"
	"github.com/Irfaaanz/Opto5/internal/repository"
	"github.com/Irfaaanz/Opto5/internal/utils"
)

// LedgerService validates and applies stock transactions. Accepted
// transactions are appended to the ledger; rejected ones leave both the
// inventory record and the ledger untouched.
type LedgerService struct {
	inventory *repository.InventoryRepository
	ledger    *repository.LedgerRepository
	catalog   *CatalogService

	// mu serializes read-modify-write of an inventory record against the
	// underflow check. The engine itself is single-writer; this is the
	// wrapper the concurrent HTTP host needs.
	mu sync.Mutex
}

// NewLedgerService constructs a LedgerService.
func NewLedgerService(inventory *repository.InventoryRepository, ledger *repository.LedgerRepository, catalog *CatalogService) *LedgerService {
	return &LedgerService{inventory: inventory, ledger: ledger, catalog: catalog}
}

// RecordTransactionRequest is the stock flow form payload.
type RecordTransactionRequest struct {
	ProductID string           `json:"productId"`
	Direction models.Direction `json:"direction"`
	Quantity  int              `json:"quantity"`
	Reason    models.Reason    `json:"reason"`
	Notes     string           `json:"notes"`
}

// TransactionResult pairs the updated record with the accepted transaction.
type TransactionResult struct {
	Record      models.InventoryRecord  `json:"record"`
	Transaction models.StockTransaction `json:"transaction"`
}

// Apply validates the request, adjusts the inventory record, and appends the
// accepted transaction. Stock-in on a product without a record creates one;
// stock-out below zero is rejected with ErrInsufficientStock.
func (s *LedgerService) Apply(req *RecordTransactionRequest) (*TransactionResult, error) {
	if req.ProductID == "" {
		return nil, fmt.Errorf("%w: no product selected", utils.ErrInvalidTransaction)
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be greater than zero", utils.ErrInvalidTransaction)
	}
	if req.Direction != models.DirectionIn && req.Direction != models.DirectionOut {
		return nil, fmt.Errorf("%w: unknown direction %q", utils.ErrInvalidTransaction, req.Direction)
	}
	if !models.ReasonAllowed(req.Direction, req.Reason) {
		return nil, fmt.Errorf("%w: reason %q is not valid for stock %s", utils.ErrInvalidTransaction, req.Reason, req.Direction)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.inventory.Get(req.ProductID)
	if !ok {
		rec = s.newRecord(req.ProductID)
	}

	switch req.Direction {
	case models.DirectionIn:
		rec.Quantity += req.Quantity
	case models.DirectionOut:
		if rec.Quantity < req.Quantity {
			return nil, fmt.Errorf("%w: %d in stock for %q, cannot remove %d",
				utils.ErrInsufficientStock, rec.Quantity, req.ProductID, req.Quantity)
		}
		rec.Quantity -= req.Quantity
	}

	s.inventory.Put(rec)
	tx := s.ledger.Append(models.StockTransaction{
		ID:        uuid.New().String(),
		ProductID: req.ProductID,
		Direction: req.Direction,
		Quantity:  req.Quantity,
		Reason:    req.Reason,
		Notes:     req.Notes,
	})

	log.Info().
		Str("transaction_id", tx.ID).
		Str("product_id", tx.ProductID).
		Str("direction", string(tx.Direction)).
		Int("quantity", tx.Quantity).
		Str("reason", string(tx.Reason)).
		Int("stock", rec.Quantity).
		Msg("stock transaction recorded")

	return &TransactionResult{Record: rec, Transaction: tx}, nil
}

// History returns up to limit accepted transactions, newest first.
func (s *LedgerService) History(limit int) []models.StockTransaction {
	return s.ledger.List(limit)
}

// Reasons returns the allowed reasons for a direction. The stock flow form
// resets its reason to the first entry when the direction toggles; serving
// the list in form order keeps that caller-side behavior cheap.
func (s *LedgerService) Reasons(d models.Direction) ([]models.Reason, error) {
	reasons := models.AllowedReasons(d)
	if reasons == nil {
		return nil, fmt.Errorf("%w: unknown direction %q", utils.ErrInvalidTransaction, d)
	}
	return reasons, nil
}

// newRecord starts an inventory record for a first stock-in, resolving the
// display name and type from the catalog when the product is known. Unknown
// ids still get a record: the reference is weak by design.
func (s *LedgerService) newRecord(productID string) models.InventoryRecord {
	if lens, ok := s.catalog.GetLens(productID); ok {
		name := lens.Brand
		if lens.Power != "" {
			name += " " + lens.Power
		}
		return models.InventoryRecord{
			ProductID:  productID,
			Name:       name,
			Type:       models.ItemTypeContact,
			ExpiryDate: lens.ExpiryDate,
		}
	}
	if spec, ok := s.catalog.GetSpectacle(productID); ok {
		name := spec.Brand
		if spec.Color != "" {
			name += " " + spec.Color
		}
		return models.InventoryRecord{
			ProductID: productID,
			Name:      name,
			Type:      models.ItemTypeFrame,
		}
	}
	return models.InventoryRecord{ProductID: productID, Name: productID}
}
