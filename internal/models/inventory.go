package models

// ItemType is the inventory category shown on the stock overview.
type ItemType string

const (
	ItemTypeFrame   ItemType = "Frame"
	ItemTypeLens    ItemType = "Lens"
	ItemTypeContact ItemType = "Contact"
)

// InventoryRecord tracks the stocked quantity of a product. It references the
// catalog weakly by product id: deleting the product does not remove the
// record, it just leaves a soft-broken link.
type InventoryRecord struct {
	ProductID  string   `json:"productId"`
	Name       string   `json:"name"`
	Type       ItemType `json:"type"`
	Quantity   int      `json:"quantity"`
	ExpiryDate *Date    `json:"expiryDate,omitempty"`
}

// Status is the derived classification of an inventory record. It is computed
// on read from quantity and expiry and never stored.
type Status string

const (
	StatusNormal     Status = "Normal"
	StatusLowStock   Status = "Low Stock"
	StatusNearExpiry Status = "Near Expiry"
	StatusExpired    Status = "Expired"
)
