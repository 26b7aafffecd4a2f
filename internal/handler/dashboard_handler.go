package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Irfaaanz/Opto5/internal/models"
	"github.com/Irfaaanz/Opto5/internal/service"
	"github.com/Irfaaanz/Opto5/internal/utils"
)

// DashboardHandler serves the dashboard summary.
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler constructs a DashboardHandler.
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// GetSummary handles GET /v1/dashboard/summary
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary := h.dashboard.Summarize(models.DateOf(time.Now()))
	utils.Success(c, 200, "Dashboard summary retrieved", summary)
}
