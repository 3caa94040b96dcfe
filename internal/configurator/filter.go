package configurator

import (
	"fmt"
	"slices"

	"printaro-be/internal/catalog"
	"printaro-be/internal/units"
	"printaro-be/internal/utils"
)

// FilteredMaterial is a catalog material annotated with the cost the current
// selection would actually pay for it.
type FilteredMaterial struct {
	catalog.Material
	EffectiveCost float64 `json:"effectiveCost"`
}

type MaterialFilterResult struct {
	Materials        []FilteredMaterial `json:"materials"`
	SelectedMaterial *FilteredMaterial  `json:"selectedMaterial,omitempty"`
	Issues           []string           `json:"issues"`
}

// FilterMaterials returns the materials whose physical constraints admit the
// requested dimension. A missing or unparsable dimension passes everything:
// the engine never blocks on geometry it cannot verify. Pure and idempotent.
func FilterMaterials(product *catalog.Product, selections Selections) MaterialFilterResult {
	result := MaterialFilterResult{Issues: []string{}}

	for _, material := range product.Materials {
		if !materialFits(material, selections.Dimension) {
			continue
		}

		fm := FilteredMaterial{
			Material:      material,
			EffectiveCost: utils.Round2(material.CostPerUnit + utils.PtrFloat64(material.PriceModifier)),
		}
		result.Materials = append(result.Materials, fm)

		if material.ID == selections.MaterialID {
			selected := fm
			result.SelectedMaterial = &selected
		}
	}

	if selections.MaterialID != "" && result.SelectedMaterial == nil {
		result.Issues = append(result.Issues,
			fmt.Sprintf("material %s is not compatible with the requested dimensions", selections.MaterialID))
	}

	return result
}

func materialFits(material catalog.Material, dim *Dimension) bool {
	c := material.Constraints
	if c == nil || dim == nil {
		return true
	}

	width, okW := units.ToMillimeters(dim.Width, dim.Unit)
	height, okH := units.ToMillimeters(dim.Height, dim.Unit)
	if !okW || !okH {
		// Cannot verify, do not block.
		return true
	}

	if bound, ok := units.ToMillimeters(utils.PtrFloat64(c.MaxWidth), c.Unit); c.MaxWidth != nil && ok && width > bound {
		return false
	}
	if bound, ok := units.ToMillimeters(utils.PtrFloat64(c.MaxHeight), c.Unit); c.MaxHeight != nil && ok && height > bound {
		return false
	}
	if bound, ok := units.ToMillimeters(utils.PtrFloat64(c.MinWidth), c.Unit); c.MinWidth != nil && ok && width < bound {
		return false
	}
	if bound, ok := units.ToMillimeters(utils.PtrFloat64(c.MinHeight), c.Unit); c.MinHeight != nil && ok && height < bound {
		return false
	}

	return true
}

type PrintMethodFilterResult struct {
	PrintMethods   []catalog.PrintMethod `json:"printMethods"`
	SelectedMethod *catalog.PrintMethod  `json:"selectedMethod,omitempty"`
	Issues         []string              `json:"issues"`
}

// FilterPrintMethods keeps the print methods compatible with the selected
// material and not exceeded by the requested dimension. An empty
// compatibility list on a method means it is unrestricted.
func FilterPrintMethods(product *catalog.Product, selections Selections) PrintMethodFilterResult {
	result := PrintMethodFilterResult{Issues: []string{}}

	for _, method := range product.PrintMethods {
		if selections.MaterialID != "" && len(method.MaterialIDs) > 0 &&
			!slices.Contains(method.MaterialIDs, selections.MaterialID) {
			continue
		}
		if !printMethodFits(method, selections.Dimension) {
			continue
		}

		result.PrintMethods = append(result.PrintMethods, method)
		if method.ID == selections.PrintMethodID {
			selected := method
			result.SelectedMethod = &selected
		}
	}

	if selections.PrintMethodID != "" && result.SelectedMethod == nil {
		result.Issues = append(result.Issues,
			fmt.Sprintf("print method %s is not compatible with the current selection", selections.PrintMethodID))
	}

	return result
}

func printMethodFits(method catalog.PrintMethod, dim *Dimension) bool {
	if dim == nil {
		return true
	}

	width, okW := units.ToMillimeters(dim.Width, dim.Unit)
	height, okH := units.ToMillimeters(dim.Height, dim.Unit)
	if !okW || !okH {
		return true
	}

	// Method bounds are millimeters at the data boundary.
	if method.MaxWidth != nil && width > *method.MaxWidth {
		return false
	}
	if method.MaxHeight != nil && height > *method.MaxHeight {
		return false
	}

	return true
}

type FinishingFilterResult struct {
	Finishing         []catalog.FinishingOperation `json:"finishing"`
	SelectedFinishing []catalog.FinishingOperation `json:"selectedFinishing"`
	Issues            []string                     `json:"issues"`
}

// FilterFinishing keeps the operations compatible with both the selected
// material and the selected print method. While either upstream selection is
// empty the full catalog stays visible so the UI can present it early.
func FilterFinishing(product *catalog.Product, selections Selections) FinishingFilterResult {
	result := FinishingFilterResult{
		SelectedFinishing: []catalog.FinishingOperation{},
		Issues:            []string{},
	}

	for _, op := range product.Finishing {
		if selections.MaterialID != "" && len(op.MaterialIDs) > 0 &&
			!slices.Contains(op.MaterialIDs, selections.MaterialID) {
			continue
		}
		if selections.PrintMethodID != "" && len(op.PrintMethodIDs) > 0 &&
			!slices.Contains(op.PrintMethodIDs, selections.PrintMethodID) {
			continue
		}

		result.Finishing = append(result.Finishing, op)
		if slices.Contains(selections.FinishingIDs, op.ID) {
			result.SelectedFinishing = append(result.SelectedFinishing, op)
		}
	}

	for _, id := range selections.FinishingIDs {
		survived := slices.ContainsFunc(result.Finishing, func(op catalog.FinishingOperation) bool {
			return op.ID == id
		})
		if !survived {
			result.Issues = append(result.Issues,
				fmt.Sprintf("finishing %s is not compatible with the current selection", id))
		}
	}

	return result
}
