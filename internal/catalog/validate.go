package catalog

import "fmt"

// Validate checks the invariants the engine relies on. It is run once, where
// product data enters the engine; downstream packages assume it has passed.
func (p *Product) Validate() error {
	for _, option := range p.Options {
		seen := make(map[string]struct{}, len(option.Values))
		for _, value := range option.Values {
			if _, dup := seen[value.ID]; dup {
				return fmt.Errorf("option %q value %q: %w", option.ID, value.ID, ErrDuplicateOptionValue)
			}
			seen[value.ID] = struct{}{}
		}
	}

	switch p.Pricing.Type {
	case PricingFixed, PricingPerUnit, PricingPerArea, PricingTiered:
	default:
		return fmt.Errorf("%q: %w", p.Pricing.Type, ErrUnknownPricingType)
	}

	breaks := p.Pricing.PriceBreaks
	for i := 1; i < len(breaks); i++ {
		prev, cur := breaks[i-1], breaks[i]
		if cur.MinQuantity <= prev.MinQuantity {
			return fmt.Errorf("tier %d: %w", i, ErrUnorderedPriceBreaks)
		}
		if prev.MaxQuantity != nil && cur.MinQuantity <= *prev.MaxQuantity {
			return fmt.Errorf("tier %d: %w", i, ErrOverlappingPriceBreak)
		}
	}

	if p.Defaults.Quantity < 1 {
		return ErrInvalidDefaultQty
	}

	return nil
}
