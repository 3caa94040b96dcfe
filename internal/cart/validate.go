package cart

import "fmt"

// ValidateItems reports what blocks checkout for the given items. These are
// advisory strings for the caller, not errors; an empty slice means the cart
// is ready.
func ValidateItems(items []Item) []string {
	issues := []string{}

	for _, item := range items {
		if item.Specifications.Quantity < 1 {
			issues = append(issues,
				fmt.Sprintf("item %s: quantity must be at least 1", item.Name))
		}
		if item.Specifications.MaterialID == "" {
			issues = append(issues,
				fmt.Sprintf("item %s: material is missing", item.Name))
		}
		if item.TotalPrice < 0 {
			issues = append(issues,
				fmt.Sprintf("item %s: price is invalid", item.Name))
		}
	}

	return issues
}
