package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Irfaaanz/Opto5/internal/models"
	"github.com/Irfaaanz/Opto5/internal/service"
	"github.com/Irfaaanz/Opto5/internal/utils"
)

// InventoryHandler serves the stock overview.
type InventoryHandler struct {
	inventory *service.InventoryService
}

// NewInventoryHandler constructs an InventoryHandler.
func NewInventoryHandler(inventory *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

// ListInventory handles GET /v1/inventory
// Query params: search (name or product id), type (All|Frame|Lens|Contact).
func (h *InventoryHandler) ListInventory(c *gin.Context) {
	items := h.inventory.List(c.Query("search"), c.Query("type"), models.DateOf(time.Now()))
	utils.Success(c, 200, "Inventory retrieved", items)
}
