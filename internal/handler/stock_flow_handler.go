package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Irfaaanz/Opto5/internal/models"
	"github.com/Irfaaanz/Opto5/internal/service"
	"github.com/Irfaaanz/Opto5/internal/utils"
)

// StockFlowHandler handles stock transaction HTTP endpoints.
type StockFlowHandler struct {
	ledger *service.LedgerService
}

// NewStockFlowHandler constructs a StockFlowHandler.
func NewStockFlowHandler(ledger *service.LedgerService) *StockFlowHandler {
	return &StockFlowHandler{ledger: ledger}
}

// RecordTransaction handles POST /v1/stock-transactions
func (h *StockFlowHandler) RecordTransaction(c *gin.Context) {
	var req service.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	result, err := h.ledger.Apply(&req)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.Success(c, 201, "Transaction recorded successfully", result)
}

// ListTransactions handles GET /v1/stock-transactions
func (h *StockFlowHandler) ListTransactions(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	utils.Success(c, 200, "Transactions retrieved", h.ledger.History(limit))
}

// GetReasons handles GET /v1/stock-transactions/reasons
// The stock flow form fetches this list when the direction toggle flips and
// preselects the first entry.
func (h *StockFlowHandler) GetReasons(c *gin.Context) {
	direction := models.Direction(c.DefaultQuery("direction", string(models.DirectionIn)))
	reasons, err := h.ledger.Reasons(direction)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.Success(c, 200, "Reasons retrieved", gin.H{
		"direction": direction,
		"reasons":   reasons,
	})
}
