package pricing

import "printaro-be/internal/catalog"

// ResolvePriceBreak selects the quantity tier applicable to quantity: the
// tier with the greatest MinQuantity that is <= quantity, provided the tier's
// MaxQuantity (when defined) is not exceeded. When two tiers could both match
// (malformed input), the higher MinQuantity wins. Returns nil when no tier
// matches; that is a normal outcome, not an error.
func ResolvePriceBreak(breaks []catalog.PriceBreak, quantity int) *catalog.PriceBreak {
	var applied *catalog.PriceBreak

	for i := range breaks {
		b := &breaks[i]
		if quantity < b.MinQuantity {
			continue
		}
		if b.MaxQuantity != nil && quantity > *b.MaxQuantity {
			continue
		}
		if applied == nil || b.MinQuantity >= applied.MinQuantity {
			applied = b
		}
	}

	return applied
}
