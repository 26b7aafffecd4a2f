package seed

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Irfaaanz/Opto5/internal/models"
	"github.com/Irfaaanz/Opto5/internal/repository"
)

// Load populates the stores with the demo catalog and inventory so the API
// is usable straight after boot. Expiry dates are placed relative to today
// so every status class stays visible regardless of when the server starts.
func Load(spectacles *repository.SpectacleRepository, lenses *repository.LensRepository, inventory *repository.InventoryRepository) {
	today := models.DateOf(time.Now())
	inDays := func(n int) *models.Date {
		d := models.Date{Time: today.AddDate(0, 0, n)}
		return &d
	}

	demoSpectacles := []models.Spectacle{
		{ID: "SID001", Brand: "Ray-Ban RB5154", Color: "Black/Silver", Size: "M", FrameType: models.FrameTypeHalfRim, Material: "Acetate"},
		{ID: "SID002", Brand: "AeroX (Rayban)", Color: "Black", Size: "M", FrameType: models.FrameTypeFullRim, Material: "Acetate"},
		{ID: "SID003", Brand: "ClassicPro (Oakley)", Color: "Brown", Size: "L", FrameType: models.FrameTypeHalfRim, Material: "Metal"},
		{ID: "SID004", Brand: "UrbanLite (Gucci)", Color: "Gold", Size: "M", FrameType: models.FrameTypeFullRim, Material: "Metal"},
		{ID: "SID005", Brand: "SportMax (Prada)", Color: "Blue", Size: "S", FrameType: models.FrameTypeFullRim, Material: "TR90"},
	}

	demoLenses := []models.Lens{
		{ID: "CID001", Brand: "Acuvue", Power: "-1.00", Category: models.LensCategoryDaily, BaseCurve: "8.5", Diameter: "14.2", ExpiryDate: inDays(400)},
		{ID: "CID002", Brand: "Acuvue", Power: "-2.00", Category: models.LensCategoryDaily, BaseCurve: "8.5", Diameter: "14.2", ExpiryDate: inDays(480)},
		{ID: "CID003", Brand: "Acuvue", Power: "-3.00", Category: models.LensCategoryMonthly, BaseCurve: "8.4", Diameter: "14.0", ExpiryDate: inDays(330)},
		{ID: "CID004", Brand: "Acuvue", Power: "-4.00", Category: models.LensCategoryMonthly, BaseCurve: "8.4", Diameter: "14.0", ExpiryDate: inDays(560)},
	}

	demoInventory := []models.InventoryRecord{
		{ProductID: "INV001", Name: "Ray-Ban RB5154 Black", Type: models.ItemTypeFrame, Quantity: 12},
		{ProductID: "INV002", Name: "AeroX (Rayban) Matte", Type: models.ItemTypeFrame, Quantity: 3},
		{ProductID: "INV003", Name: "Acuvue Oasys 1-Day", Type: models.ItemTypeContact, Quantity: 45, ExpiryDate: inDays(200)},
		{ProductID: "INV004", Name: "Biofinity Monthly", Type: models.ItemTypeContact, Quantity: 20, ExpiryDate: inDays(15)},
		{ProductID: "INV005", Name: "Zeiss DuraVision Lens", Type: models.ItemTypeLens, Quantity: 8},
		{ProductID: "INV006", Name: "Hoya BlueControl", Type: models.ItemTypeLens, Quantity: 2},
		{ProductID: "INV007", Name: "Dailies Total1", Type: models.ItemTypeContact, Quantity: 15, ExpiryDate: inDays(-30)},
	}

	for _, s := range demoSpectacles {
		if err := spectacles.Create(s); err != nil {
			log.Warn().Err(err).Str("id", s.ID).Msg("skipping demo spectacle")
		}
	}
	for _, l := range demoLenses {
		if err := lenses.Create(l); err != nil {
			log.Warn().Err(err).Str("id", l.ID).Msg("skipping demo lens")
		}
	}
	for _, rec := range demoInventory {
		inventory.Put(rec)
	}

	log.Info().
		Int("spectacles", len(demoSpectacles)).
		Int("lenses", len(demoLenses)).
		Int("inventory", len(demoInventory)).
		Msg("demo data loaded")
}
