package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Irfaaanz/Opto5/internal/service"
	"github.com/Irfaaanz/Opto5/internal/utils"
)

// ProductHandler handles catalog CRUD HTTP endpoints for both variants.
type ProductHandler struct {
	catalog *service.CatalogService
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(catalog *service.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// ListSpectacles handles GET /v1/products/spectacles
func (h *ProductHandler) ListSpectacles(c *gin.Context) {
	items := h.catalog.ListSpectacles(c.Query("search"), service.ParseSortMode(c.Query("sort")))
	utils.Success(c, 200, "Spectacles retrieved", items)
}

// GetSpectacle handles GET /v1/products/spectacles/:id
func (h *ProductHandler) GetSpectacle(c *gin.Context) {
	spec, ok := h.catalog.GetSpectacle(c.Param("id"))
	if !ok {
		utils.Error(c, 404, "NOT_FOUND", "Spectacle not found")
		return
	}
	utils.Success(c, 200, "Spectacle retrieved", spec)
}

// CreateSpectacle handles POST /v1/products/spectacles
func (h *ProductHandler) CreateSpectacle(c *gin.Context) {
	var req service.SpectacleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	spec, err := h.catalog.CreateSpectacle(&req)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.Success(c, 201, "Spectacle created successfully", spec)
}

// UpdateSpectacle handles PUT /v1/products/spectacles/:id
func (h *ProductHandler) UpdateSpectacle(c *gin.Context) {
	var req service.SpectacleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	spec, err := h.catalog.UpdateSpectacle(c.Param("id"), &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.Success(c, 200, "Spectacle updated successfully", spec)
}

// DeleteSpectacle handles DELETE /v1/products/spectacles/:id
func (h *ProductHandler) DeleteSpectacle(c *gin.Context) {
	if err := h.catalog.DeleteSpectacle(c.Param("id")); err != nil {
		respondDomainError(c, err)
		return
	}
	utils.Success(c, 200, "Spectacle deleted successfully", nil)
}

// ListLenses handles GET /v1/products/lenses
func (h *ProductHandler) ListLenses(c *gin.Context) {
	items := h.catalog.ListLenses(c.Query("search"), service.ParseSortMode(c.Query("sort")))
	utils.Success(c, 200, "Lenses retrieved", items)
}

// GetLens handles GET /v1/products/lenses/:id
func (h *ProductHandler) GetLens(c *gin.Context) {
	lens, ok := h.catalog.GetLens(c.Param("id"))
	if !ok {
		utils.Error(c, 404, "NOT_FOUND", "Lens not found")
		return
	}
	utils.Success(c, 200, "Lens retrieved", lens)
}

// CreateLens handles POST /v1/products/lenses
func (h *ProductHandler) CreateLens(c *gin.Context) {
	var req service.LensRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	lens, err := h.catalog.CreateLens(&req)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.Success(c, 201, "Lens created successfully", lens)
}

// UpdateLens handles PUT /v1/products/lenses/:id
func (h *ProductHandler) UpdateLens(c *gin.Context) {
	var req service.LensRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	lens, err := h.catalog.UpdateLens(c.Param("id"), &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.Success(c, 200, "Lens updated successfully", lens)
}

// DeleteLens handles DELETE /v1/products/lenses/:id
func (h *ProductHandler) DeleteLens(c *gin.Context) {
	if err := h.catalog.DeleteLens(c.Param("id")); err != nil {
		respondDomainError(c, err)
		return
	}
	utils.Success(c, 200, "Lens deleted successfully", nil)
}
