package service

import (
	"fmt"
	"strings"

	"github.com/Irfaaanz/Opto5/internal/models"
	"github.com/Irfaaanz/Opto5/internal/repository"
	"github.com/Irfaaanz/Opto5/internal/utils"
)

// CatalogService handles CRUD and listing for both product collections.
// Spectacles and lenses are independent: each has its own id namespace and
// its own field schema.
type CatalogService struct {
	spectacles *repository.SpectacleRepository
	lenses     *repository.LensRepository
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(spectacles *repository.SpectacleRepository, lenses *repository.LensRepository) *CatalogService {
	return &CatalogService{spectacles: spectacles, lenses: lenses}
}

// SpectacleRequest carries the editable fields of a spectacle. On update the
// id field is ignored; the path id wins.
type SpectacleRequest struct {
	ID        string           `json:"id"`
	Brand     string           `json:"brand"`
	Color     string           `json:"color"`
	Size      string           `json:"size"`
	FrameType models.FrameType `json:"frameType"`
	Material  string           `json:"material"`
}

// LensRequest carries the editable fields of a contact lens.
type LensRequest struct {
	ID         string              `json:"id"`
	Brand      string              `json:"brand"`
	Power      string              `json:"power"`
	Category   models.LensCategory `json:"category"`
	BaseCurve  string              `json:"baseCurve"`
	Diameter   string              `json:"diameter"`
	ExpiryDate *models.Date        `json:"expiryDate"`
}

// CreateSpectacle validates and stores a new spectacle.
func (s *CatalogService) CreateSpectacle(req *SpectacleRequest) (models.Spectacle, error) {
	if err := validateCommon(req.ID, req.Brand); err != nil {
		return models.Spectacle{}, err
	}
	if !models.ValidFrameType(req.FrameType) {
		return models.Spectacle{}, fmt.Errorf("%w: unknown frame type %q", utils.ErrValidation, req.FrameType)
	}
	spec := spectacleFromRequest(req)
	if err := s.spectacles.Create(spec); err != nil {
		return models.Spectacle{}, err
	}
	return spec, nil
}

// UpdateSpectacle replaces all editable fields of an existing spectacle.
func (s *CatalogService) UpdateSpectacle(id string, req *SpectacleRequest) (models.Spectacle, error) {
	if strings.TrimSpace(req.Brand) == "" {
		return models.Spectacle{}, fmt.Errorf("%w: brand is required", utils.ErrValidation)
	}
	if !models.ValidFrameType(req.FrameType) {
		return models.Spectacle{}, fmt.Errorf("%w: unknown frame type %q", utils.ErrValidation, req.FrameType)
	}
	return s.spectacles.Update(id, spectacleFromRequest(req))
}

// DeleteSpectacle removes a spectacle from the catalog. Inventory records
// and ledger entries keep referencing the id as a soft-broken link.
func (s *CatalogService) DeleteSpectacle(id string) error {
	return s.spectacles.Delete(id)
}

// GetSpectacle returns a spectacle by id.
func (s *CatalogService) GetSpectacle(id string) (models.Spectacle, bool) {
	return s.spectacles.Get(id)
}

// ListSpectacles returns a filtered, ordered view of the spectacle collection.
func (s *CatalogService) ListSpectacles(search string, mode SortMode) []models.Spectacle {
	return FilterProducts(s.spectacles.List(), search, mode)
}

// CreateLens validates and stores a new contact lens.
func (s *CatalogService) CreateLens(req *LensRequest) (models.Lens, error) {
	if err := validateCommon(req.ID, req.Brand); err != nil {
		return models.Lens{}, err
	}
	if !models.ValidLensCategory(req.Category) {
		return models.Lens{}, fmt.Errorf("%w: unknown lens category %q", utils.ErrValidation, req.Category)
	}
	lens := lensFromRequest(req)
	if err := s.lenses.Create(lens); err != nil {
		return models.Lens{}, err
	}
	return lens, nil
}

// UpdateLens replaces all editable fields of an existing lens.
func (s *CatalogService) UpdateLens(id string, req *LensRequest) (models.Lens, error) {
	if strings.TrimSpace(req.Brand) == "" {
		return models.Lens{}, fmt.Errorf("%w: brand is required", utils.ErrValidation)
	}
	if !models.ValidLensCategory(req.Category) {
		return models.Lens{}, fmt.Errorf("%w: unknown lens category %q", utils.ErrValidation, req.Category)
	}
	return s.lenses.Update(id, lensFromRequest(req))
}

// DeleteLens removes a lens from the catalog.
func (s *CatalogService) DeleteLens(id string) error {
	return s.lenses.Delete(id)
}

// GetLens returns a lens by id.
func (s *CatalogService) GetLens(id string) (models.Lens, bool) {
	return s.lenses.Get(id)
}

// ListLenses returns a filtered, ordered view of the lens collection.
func (s *CatalogService) ListLenses(search string, mode SortMode) []models.Lens {
	return FilterProducts(s.lenses.List(), search, mode)
}

// ProductCount returns the total number of products across both collections.
func (s *CatalogService) ProductCount() int {
	return s.spectacles.Count() + s.lenses.Count()
}

func validateCommon(id, brand string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: product id is required", utils.ErrValidation)
	}
	if strings.TrimSpace(brand) == "" {
		return fmt.Errorf("%w: brand is required", utils.ErrValidation)
	}
	return nil
}

func spectacleFromRequest(req *SpectacleRequest) models.Spectacle {
	return models.Spectacle{
		ID:        req.ID,
		Brand:     req.Brand,
		Color:     req.Color,
		Size:      req.Size,
		FrameType: req.FrameType,
		Material:  req.Material,
	}
}

func lensFromRequest(req *LensRequest) models.Lens {
	return models.Lens{
		ID:         req.ID,
		Brand:      req.Brand,
		Power:      req.Power,
		Category:   req.Category,
		BaseCurve:  req.BaseCurve,
		Diameter:   req.Diameter,
		ExpiryDate: req.ExpiryDate,
	}
}
