package cart

import (
	"time"

	"printaro-be/internal/catalog"
	"printaro-be/internal/configurator"
	"printaro-be/internal/pricing"
)

// Specifications freeze the configuration a line item was added with.
type Specifications struct {
	MaterialID     string                  `json:"materialId"`
	MaterialName   string                  `json:"materialName,omitempty"`
	PrintMethodID  string                  `json:"printMethodId"`
	FinishingIDs   []string                `json:"finishingIds"`
	Options        map[string][]string     `json:"options"`
	Quantity       int                     `json:"quantity"`
	Dimension      *configurator.Dimension `json:"dimension,omitempty"`
	ProductionTime string                  `json:"productionTime,omitempty"`
}

// Item is one cart line. Its price fields are mutated only through the
// store's update path, never directly, so specification and price cannot
// drift apart.
type Item struct {
	ID             string           `json:"id"`
	ProductID      string           `json:"productId"`
	ProductSlug    string           `json:"productSlug"`
	Name           string           `json:"name"`
	PreviewURL     string           `json:"previewUrl,omitempty"`
	FileURL        string           `json:"fileUrl,omitempty"`
	Specifications Specifications   `json:"specifications"`
	Upsells        []catalog.Upsell `json:"upsells"`
	Breakdown      pricing.Summary  `json:"priceBreakdown"`
	TotalPrice     float64          `json:"totalPrice"`
	AddedAt        time.Time        `json:"addedAt"`
}

// Totals roll up the cart. Tax and currency conversion are the caller's
// concern.
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	ItemCount int     `json:"itemCount"`
}
