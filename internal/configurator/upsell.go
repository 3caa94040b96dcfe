package configurator

import (
	"fmt"
	"math"

	"printaro-be/internal/pricing"
	"printaro-be/internal/utils"
)

// QuantitySuggestion proposes a larger run with a better unit price.
type QuantitySuggestion struct {
	Quantity          int     `json:"quantity"`
	Total             float64 `json:"total"`
	UnitPrice         float64 `json:"unitPrice"`
	ExtraCost         float64 `json:"extraCost"`
	SavingsPerUnitPct float64 `json:"savingsPerUnitPct"`
	Message           string  `json:"message"`
}

var upsellMultipliers = []float64{1.5, 2, 2.5}

// QuantitySuggestions recomputes the price at a few larger quantities and
// reports the unit-price savings. Suggestions that do not change the
// quantity are skipped.
func (s *Session) QuantitySuggestions() []QuantitySuggestion {
	current := s.selections.Quantity
	currentTotal := s.summary.Total
	if current < 1 || currentTotal <= 0 {
		return nil
	}

	currentUnit := currentTotal / float64(current)
	suggestions := make([]QuantitySuggestion, 0, len(upsellMultipliers))

	for _, multiplier := range upsellMultipliers {
		quantity := int(math.Round(float64(current) * multiplier))
		if quantity < current+50 {
			quantity = current + 50
		}
		if quantity == current {
			continue
		}

		req := s.priceRequest()
		req.Quantity = quantity
		summary := pricing.Calculate(s.product, req, s.priceContext())

		unitPrice := summary.Total / float64(quantity)
		savings := math.Max(0, (currentUnit-unitPrice)/currentUnit*100)
		extraCost := summary.Total - currentTotal

		suggestions = append(suggestions, QuantitySuggestion{
			Quantity:          quantity,
			Total:             summary.Total,
			UnitPrice:         utils.Round2(unitPrice),
			ExtraCost:         utils.Round2(extraCost),
			SavingsPerUnitPct: utils.Round2(savings),
			Message: fmt.Sprintf("order %d pcs for %+.2f and save %.0f%% per unit",
				quantity, extraCost, savings),
		})
	}

	return suggestions
}
