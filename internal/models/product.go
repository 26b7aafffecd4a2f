package models

// FrameType enumerates the supported spectacle frame constructions.
type FrameType string

const (
	FrameTypeFullRim FrameType = "Full-Rim"
	FrameTypeHalfRim FrameType = "Half-Rim"
	FrameTypeRimless FrameType = "Rimless"
)

// ValidFrameType reports whether ft is a known frame type. Empty is allowed:
// the frame type is optional on a spectacle.
func ValidFrameType(ft FrameType) bool {
	switch ft {
	case "", FrameTypeFullRim, FrameTypeHalfRim, FrameTypeRimless:
		return true
	}
	return false
}

// LensCategory enumerates contact lens replacement schedules.
type LensCategory string

const (
	LensCategoryDaily    LensCategory = "Daily"
	LensCategoryMonthly  LensCategory = "Monthly"
	LensCategoryBiWeekly LensCategory = "Bi-Weekly"
)

// ValidLensCategory reports whether lc is a known category. Empty is allowed.
func ValidLensCategory(lc LensCategory) bool {
	switch lc {
	case "", LensCategoryDaily, LensCategoryMonthly, LensCategoryBiWeekly:
		return true
	}
	return false
}

// Spectacle is a frame product in the catalog. The ID is caller-supplied and
// treated as opaque; it is unique within the spectacle collection only.
type Spectacle struct {
	ID        string    `json:"id"`
	Brand     string    `json:"brand"`
	Color     string    `json:"color"`
	Size      string    `json:"size"`
	FrameType FrameType `json:"frameType"`
	Material  string    `json:"material"`
}

// Lens is a contact lens product in the catalog.
type Lens struct {
	ID         string       `json:"id"`
	Brand      string       `json:"brand"`
	Power      string       `json:"power"`
	Category   LensCategory `json:"category"`
	BaseCurve  string       `json:"baseCurve"`
	Diameter   string       `json:"diameter"`
	ExpiryDate *Date        `json:"expiryDate,omitempty"`
}

// CatalogItem is the read surface the query engine needs from either variant.
type CatalogItem interface {
	ProductID() string
	BrandName() string
}

func (s Spectacle) ProductID() string { return s.ID }
func (s Spectacle) BrandName() string { return s.Brand }

func (l Lens) ProductID() string { return l.ID }
func (l Lens) BrandName() string { return l.Brand }
