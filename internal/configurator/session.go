package configurator

import (
	"fmt"
	"slices"

	"printaro-be/internal/catalog"
	"printaro-be/internal/pricing"
)

// Session drives one product configuration: it owns the Selections, re-filters
// the dependent fields after every mutation and keeps the price summary
// consistent. Sessions are single-goroutine, per-request state.
type Session struct {
	product *catalog.Product

	selections   Selections
	materials    MaterialFilterResult
	printMethods PrintMethodFilterResult
	finishing    FinishingFilterResult
	summary      pricing.Summary
	issues       []string
}

// NewSession starts a configuration from the product's defaults.
func NewSession(product *catalog.Product) *Session {
	s := &Session{
		product: product,
		selections: Selections{
			Quantity:      product.Defaults.Quantity,
			MaterialID:    product.Defaults.MaterialID,
			PrintMethodID: product.Defaults.PrintMethodID,
			FinishingIDs:  slices.Clone(product.Defaults.FinishingIDs),
			Options:       cloneOptions(product.Defaults.OptionValues),
		},
	}
	s.recompute()
	return s
}

// Resume rebuilds a session from previously captured selections, e.g. a cart
// item's frozen specification.
func Resume(product *catalog.Product, selections Selections) *Session {
	s := &Session{product: product, selections: selections}
	s.recompute()
	return s
}

func cloneOptions(options map[string][]string) map[string][]string {
	cloned := make(map[string][]string, len(options))
	for id, values := range options {
		cloned[id] = slices.Clone(values)
	}
	return cloned
}

// recompute re-runs the dependency chain: dimension constrains materials,
// material constrains print methods, both constrain finishing, everything
// feeds the price.
func (s *Session) recompute() {
	s.selections.normalize()

	s.materials = FilterMaterials(s.product, s.selections)
	if s.materials.SelectedMaterial == nil && len(s.materials.Materials) > 0 {
		s.selections.MaterialID = s.materials.Materials[0].ID
		selected := s.materials.Materials[0]
		s.materials.SelectedMaterial = &selected
	}

	s.printMethods = FilterPrintMethods(s.product, s.selections)
	if s.printMethods.SelectedMethod == nil && len(s.printMethods.PrintMethods) > 0 {
		s.selections.PrintMethodID = s.printMethods.PrintMethods[0].ID
		selected := s.printMethods.PrintMethods[0]
		s.printMethods.SelectedMethod = &selected
	}

	s.finishing = FilterFinishing(s.product, s.selections)

	// Drop finishing selections that no longer apply.
	kept := make([]string, 0, len(s.selections.FinishingIDs))
	for _, id := range s.selections.FinishingIDs {
		if slices.ContainsFunc(s.finishing.Finishing, func(op catalog.FinishingOperation) bool { return op.ID == id }) {
			kept = append(kept, id)
		}
	}
	s.selections.FinishingIDs = kept

	s.issues = make([]string, 0,
		len(s.materials.Issues)+len(s.printMethods.Issues)+len(s.finishing.Issues))
	s.issues = append(s.issues, s.materials.Issues...)
	s.issues = append(s.issues, s.printMethods.Issues...)
	s.issues = append(s.issues, s.finishing.Issues...)

	s.summary = pricing.Calculate(s.product, s.priceRequest(), s.priceContext())
}

func (s *Session) priceRequest() pricing.Request {
	req := pricing.Request{
		Quantity: s.selections.Quantity,
		Options:  s.selections.Options,
	}
	if s.selections.Dimension != nil {
		req.Width = s.selections.Dimension.Width
		req.Height = s.selections.Dimension.Height
		req.Unit = s.selections.Dimension.Unit
	}
	return req
}

func (s *Session) priceContext() pricing.Context {
	ctx := pricing.Context{Finishing: s.finishing.SelectedFinishing}
	if s.materials.SelectedMaterial != nil {
		ctx.Material = &s.materials.SelectedMaterial.Material
	}
	ctx.PrintMethod = s.printMethods.SelectedMethod
	return ctx
}

func (s *Session) SetMaterial(materialID string) {
	s.selections.MaterialID = materialID
	s.recompute()
}

func (s *Session) SetPrintMethod(printMethodID string) {
	s.selections.PrintMethodID = printMethodID
	s.recompute()
}

func (s *Session) SetFinishing(finishingIDs []string) {
	s.selections.FinishingIDs = slices.Clone(finishingIDs)
	s.recompute()
}

// SetOption replaces the selected values of one option; an empty value list
// clears it.
func (s *Session) SetOption(optionID string, valueIDs []string) {
	known := slices.ContainsFunc(s.product.Options, func(o catalog.Option) bool { return o.ID == optionID })
	if !known {
		return
	}

	if len(valueIDs) == 0 {
		delete(s.selections.Options, optionID)
	} else {
		s.selections.Options[optionID] = slices.Clone(valueIDs)
	}
	s.recompute()
}

func (s *Session) SetQuantity(quantity int) {
	s.selections.Quantity = quantity
	s.recompute()
}

func (s *Session) SetDimension(dimension *Dimension) {
	s.selections.Dimension = dimension
	s.recompute()
}

func (s *Session) Selections() Selections                { return s.selections }
func (s *Session) Materials() MaterialFilterResult       { return s.materials }
func (s *Session) PrintMethods() PrintMethodFilterResult { return s.printMethods }
func (s *Session) Finishing() FinishingFilterResult      { return s.finishing }
func (s *Session) Summary() pricing.Summary              { return s.summary }
func (s *Session) Issues() []string                      { return s.issues }

// Validate reports what still blocks adding the configuration to the cart.
// Compatibility issues collected during recompute are included; the caller
// decides whether to auto-correct or prompt.
func (s *Session) Validate() []string {
	errs := slices.Clone(s.issues)

	if s.selections.MaterialID == "" && len(s.product.Materials) > 0 {
		errs = append(errs, "select a compatible material")
	}
	if s.selections.PrintMethodID == "" && len(s.product.PrintMethods) > 0 {
		errs = append(errs, "select a print method")
	}

	for _, option := range s.product.Options {
		if option.Required && len(s.selections.Options[option.ID]) == 0 {
			errs = append(errs, fmt.Sprintf("option %s is required", option.Name))
		}
	}

	if d := s.product.Dimensions; d != nil && s.selections.Dimension != nil {
		w, h := s.selections.Dimension.Width, s.selections.Dimension.Height
		if d.WidthMin != nil && w < *d.WidthMin {
			errs = append(errs, fmt.Sprintf("minimum width is %g%s", *d.WidthMin, d.Unit))
		}
		if d.WidthMax != nil && w > *d.WidthMax {
			errs = append(errs, fmt.Sprintf("maximum width is %g%s", *d.WidthMax, d.Unit))
		}
		if d.HeightMin != nil && h < *d.HeightMin {
			errs = append(errs, fmt.Sprintf("minimum height is %g%s", *d.HeightMin, d.Unit))
		}
		if d.HeightMax != nil && h > *d.HeightMax {
			errs = append(errs, fmt.Sprintf("maximum height is %g%s", *d.HeightMax, d.Unit))
		}
	}

	return errs
}
