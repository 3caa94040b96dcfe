package catalog

// Product is the fully-materialized configurator definition for a single
// product. It is loaded once at the boundary and treated as read-only by the
// engine packages.
type Product struct {
	ID           string               `json:"id"`
	Slug         string               `json:"slug"`
	Name         string               `json:"name"`
	Type         string               `json:"type"`
	Options      []Option             `json:"options"`
	Materials    []Material           `json:"materials"`
	PrintMethods []PrintMethod        `json:"printMethods"`
	Finishing    []FinishingOperation `json:"finishing"`
	Upsells      []Upsell             `json:"upsells,omitempty"`
	Pricing      Pricing              `json:"pricing"`
	Dimensions   *Dimensions          `json:"dimensions,omitempty"`
	Defaults     Defaults             `json:"defaults"`
}

type Option struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Type     string        `json:"type"` // select | checkbox | radio
	Required bool          `json:"required"`
	Values   []OptionValue `json:"values"`
}

type OptionValue struct {
	ID            string   `json:"id"`
	Label         string   `json:"label"`
	PriceModifier *float64 `json:"priceModifier,omitempty"`
}

type Material struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Unit          string               `json:"unit"` // pcs | m2 | sheet
	CostPerUnit   float64              `json:"costPerUnit"`
	PriceModifier *float64             `json:"priceModifier,omitempty"`
	Constraints   *MaterialConstraints `json:"constraints,omitempty"`
}

// MaterialConstraints bound the printable dimensions of a material. The
// bounds are expressed in Unit and normalized to millimeters before any
// comparison.
type MaterialConstraints struct {
	MinWidth  *float64 `json:"minWidth,omitempty"`
	MinHeight *float64 `json:"minHeight,omitempty"`
	MaxWidth  *float64 `json:"maxWidth,omitempty"`
	MaxHeight *float64 `json:"maxHeight,omitempty"`
	Unit      string   `json:"unit"`
}

type PrintMethod struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	CostPerM2    *float64 `json:"costPerM2,omitempty"`
	CostPerSheet *float64 `json:"costPerSheet,omitempty"`
	// Max bounds are millimeters at the data boundary.
	MaxWidth    *float64 `json:"maxWidth,omitempty"`
	MaxHeight   *float64 `json:"maxHeight,omitempty"`
	MaterialIDs []string `json:"materialIds"`
}

type FinishingOperation struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	CostFix        *float64 `json:"costFix,omitempty"`
	CostPerUnit    *float64 `json:"costPerUnit,omitempty"`
	CostPerM2      *float64 `json:"costPerM2,omitempty"`
	MaterialIDs    []string `json:"materialIds"`
	PrintMethodIDs []string `json:"printMethodIds"`
}

type Upsell struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity,omitempty"`
}

// Pricing types.
const (
	PricingFixed   = "fixed"
	PricingPerUnit = "per_unit"
	PricingPerArea = "per_area"
	PricingTiered  = "tiered"
)

type Pricing struct {
	Type      string  `json:"type"`
	BasePrice float64 `json:"basePrice"`
	// SheetWidth/SheetHeight describe the nominal press sheet (mm) used to
	// derive sheets-needed when a print method only defines costPerSheet.
	SheetWidth  *float64     `json:"sheetWidth,omitempty"`
	SheetHeight *float64     `json:"sheetHeight,omitempty"`
	PriceBreaks []PriceBreak `json:"priceBreaks,omitempty"`
}

// PriceBreak is one quantity tier. Exactly one of Price/Discount is expected;
// Price takes precedence when both are set. MaxQuantity nil means the tier is
// open-ended.
type PriceBreak struct {
	MinQuantity int      `json:"minQuantity"`
	MaxQuantity *int     `json:"maxQuantity,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Discount    *float64 `json:"discount,omitempty"`
}

type Dimensions struct {
	WidthMin  *float64 `json:"widthMin,omitempty"`
	WidthMax  *float64 `json:"widthMax,omitempty"`
	HeightMin *float64 `json:"heightMin,omitempty"`
	HeightMax *float64 `json:"heightMax,omitempty"`
	Unit      string   `json:"unit"`
}

type Defaults struct {
	Quantity      int                 `json:"quantity"`
	MaterialID    string              `json:"materialId,omitempty"`
	PrintMethodID string              `json:"printMethodId,omitempty"`
	FinishingIDs  []string            `json:"finishingIds,omitempty"`
	OptionValues  map[string][]string `json:"optionValues,omitempty"`
}

// FileSpecs are the print requirements a product imposes on uploaded artwork.
type FileSpecs struct {
	MinWidth        *int     `json:"minWidth,omitempty"`
	MinHeight       *int     `json:"minHeight,omitempty"`
	BleedRequired   bool     `json:"bleedRequired"`
	AspectTolerance *float64 `json:"aspectTolerance,omitempty"`
}
