package pricing

import (
	"math"
	"strings"

	"printaro-be/internal/catalog"
	"printaro-be/internal/units"
	"printaro-be/internal/utils"
)

// Nominal B2 press sheet (mm), used to derive sheets-needed when a print
// method prices per sheet and the product declares no sheet size.
const (
	defaultSheetWidthMM  = 500.0
	defaultSheetHeightMM = 707.0
)

// Request carries the user-controlled inputs of a price calculation.
type Request struct {
	Quantity int
	Width    float64
	Height   float64
	Unit     string
	Options  map[string][]string
}

// Context carries the already-resolved catalog entities the calculation
// charges for. Nil/empty fields simply omit their cost line.
type Context struct {
	Material         *catalog.Material
	PrintMethod      *catalog.PrintMethod
	Finishing        []catalog.FinishingOperation
	Upsells          []catalog.Upsell
	OptionAdjustment float64
}

// AppliedBreak echoes the matched quantity tier in the summary.
type AppliedBreak struct {
	MinQuantity int      `json:"minQuantity"`
	MaxQuantity *int     `json:"maxQuantity,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Discount    *float64 `json:"discount,omitempty"`
}

// Summary is the full price breakdown. All monetary fields are rounded to 2
// decimals here, at the presentation boundary; aggregation below keeps full
// precision.
type Summary struct {
	BasePrice     float64       `json:"basePrice"`
	MaterialCost  float64       `json:"materialCost"`
	PrintCost     float64       `json:"printCost"`
	FinishingCost float64       `json:"finishingCost"`
	OptionCost    float64       `json:"optionCost"`
	UpsellCost    float64       `json:"upsellCost"`
	Discounts     float64       `json:"discounts"`
	Subtotal      float64       `json:"subtotal"`
	Total         float64       `json:"total"`
	PricePerUnit  float64       `json:"pricePerUnit"`
	Quantity      int           `json:"quantity"`
	Area          *float64      `json:"area,omitempty"`
	PricingType   string        `json:"pricingType"`
	AppliedBreak  *AppliedBreak `json:"appliedBreak,omitempty"`
}

// Calculate aggregates every cost line of a configuration into a Summary.
// Missing cost fields are treated as zero, never as an error; an unparsable
// dimension omits area-based lines rather than failing. Quantity below 1 is
// clamped, callers are expected to reject it upstream.
func Calculate(product *catalog.Product, req Request, ctx Context) Summary {
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	unit := req.Unit
	if unit == "" && product.Dimensions != nil {
		unit = product.Dimensions.Unit
	}

	var (
		area    float64
		hasArea bool
	)
	if req.Width > 0 && req.Height > 0 {
		area, hasArea = units.AreaSquareMeters(req.Width, req.Height, unit)
	}

	applied := ResolvePriceBreak(product.Pricing.PriceBreaks, quantity)

	base, discounts := basePriceFor(product.Pricing, applied, quantity, area, hasArea)
	materialCost := materialCostFor(ctx.Material, quantity, area, hasArea)
	printCost := printCostFor(product.Pricing, ctx.PrintMethod, quantity, area, hasArea)
	finishingCost := finishingCostFor(ctx.Finishing, quantity, area, hasArea)
	optionCost := optionCostFor(product, req.Options) + ctx.OptionAdjustment
	upsellCost := upsellCostFor(ctx.Upsells)

	subtotal := base + materialCost + printCost + finishingCost + optionCost + upsellCost - discounts
	if subtotal < 0 {
		subtotal = 0
	}
	total := subtotal

	summary := Summary{
		BasePrice:     utils.Round2(base),
		MaterialCost:  utils.Round2(materialCost),
		PrintCost:     utils.Round2(printCost),
		FinishingCost: utils.Round2(finishingCost),
		OptionCost:    utils.Round2(optionCost),
		UpsellCost:    utils.Round2(upsellCost),
		Discounts:     utils.Round2(discounts),
		Subtotal:      utils.Round2(subtotal),
		Total:         utils.Round2(total),
		PricePerUnit:  utils.Round2(total / float64(quantity)),
		Quantity:      quantity,
		PricingType:   product.Pricing.Type,
	}

	if hasArea {
		summary.Area = &area
	}
	if applied != nil {
		summary.AppliedBreak = &AppliedBreak{
			MinQuantity: applied.MinQuantity,
			MaxQuantity: applied.MaxQuantity,
			Price:       applied.Price,
			Discount:    applied.Discount,
		}
	}

	return summary
}

// basePriceFor returns the base line and any quantity-derived discount as a
// separate amount. Discounts are never folded into the base so callers can
// surface the saving.
func basePriceFor(pricing catalog.Pricing, applied *catalog.PriceBreak, quantity int, area float64, hasArea bool) (base, discounts float64) {
	qty := float64(quantity)

	switch pricing.Type {
	case catalog.PricingFixed:
		return pricing.BasePrice, 0

	case catalog.PricingPerArea:
		if hasArea {
			return pricing.BasePrice * area * qty, 0
		}
		// No usable geometry: fall back to per-unit so the quote stays usable.
		return pricing.BasePrice * qty, 0

	case catalog.PricingTiered:
		if applied == nil {
			return pricing.BasePrice * qty, 0
		}
		if applied.Price != nil {
			// Price takes precedence over discount when both are set.
			return *applied.Price * qty, 0
		}
		if applied.Discount != nil {
			gross := pricing.BasePrice * qty
			return gross, gross * *applied.Discount
		}
		return pricing.BasePrice * qty, 0

	default: // per_unit
		return pricing.BasePrice * qty, 0
	}
}

func materialCostFor(material *catalog.Material, quantity int, area float64, hasArea bool) float64 {
	if material == nil {
		return 0
	}

	unitCost := material.CostPerUnit + utils.PtrFloat64(material.PriceModifier)

	if isAreaUnit(material.Unit) && hasArea {
		return unitCost * area * float64(quantity)
	}

	return unitCost * float64(quantity)
}

func isAreaUnit(unit string) bool {
	u := strings.ToLower(unit)
	return strings.Contains(u, "m2") || strings.Contains(u, "sqm") || strings.Contains(u, "mp")
}

func printCostFor(pricing catalog.Pricing, method *catalog.PrintMethod, quantity int, area float64, hasArea bool) float64 {
	if method == nil {
		return 0
	}

	var cost float64

	if method.CostPerM2 != nil && hasArea {
		cost += *method.CostPerM2 * area * float64(quantity)
	}

	if method.CostPerSheet != nil {
		cost += *method.CostPerSheet * float64(sheetsNeeded(pricing, quantity, area, hasArea))
	}

	return cost
}

// sheetsNeeded derives how many press sheets a run consumes. With usable
// geometry it divides total printed area by the sheet area (product-declared,
// else the nominal B2 sheet); without geometry it assumes one sheet per unit.
func sheetsNeeded(pricing catalog.Pricing, quantity int, area float64, hasArea bool) int {
	if !hasArea {
		return quantity
	}

	sheetW := defaultSheetWidthMM
	sheetH := defaultSheetHeightMM
	if pricing.SheetWidth != nil && *pricing.SheetWidth > 0 {
		sheetW = *pricing.SheetWidth
	}
	if pricing.SheetHeight != nil && *pricing.SheetHeight > 0 {
		sheetH = *pricing.SheetHeight
	}

	sheetArea := (sheetW / 1000) * (sheetH / 1000)
	sheets := int(math.Ceil(area * float64(quantity) / sheetArea))
	if sheets < 1 {
		sheets = 1
	}
	return sheets
}

func finishingCostFor(finishing []catalog.FinishingOperation, quantity int, area float64, hasArea bool) float64 {
	var total float64

	// Cost fields are independent, not exclusive: an operation may charge a
	// setup fee and a per-unit fee at once.
	for _, op := range finishing {
		total += utils.PtrFloat64(op.CostFix)
		total += utils.PtrFloat64(op.CostPerUnit) * float64(quantity)
		if op.CostPerM2 != nil && hasArea {
			total += *op.CostPerM2 * area
		}
	}

	return total
}

func optionCostFor(product *catalog.Product, selected map[string][]string) float64 {
	var total float64

	for _, option := range product.Options {
		valueIDs, ok := selected[option.ID]
		if !ok {
			continue
		}
		for _, id := range valueIDs {
			for _, value := range option.Values {
				if value.ID == id {
					total += utils.PtrFloat64(value.PriceModifier)
					break
				}
			}
		}
	}

	return total
}

func upsellCostFor(upsells []catalog.Upsell) float64 {
	var total float64

	for _, u := range upsells {
		qty := u.Quantity
		if qty < 1 {
			qty = 1
		}
		total += u.Price * float64(qty)
	}

	return total
}
