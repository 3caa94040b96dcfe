package catalog

import "errors"

var (
	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")

	// -- Boundary Validation --
	ErrDuplicateOptionValue  = errors.New("duplicate option value id")
	ErrUnorderedPriceBreaks  = errors.New("price breaks must be ordered ascending by min quantity")
	ErrOverlappingPriceBreak = errors.New("price breaks must not overlap")
	ErrInvalidDefaultQty     = errors.New("default quantity must be at least 1")
	ErrUnknownPricingType    = errors.New("unknown pricing type")
)
