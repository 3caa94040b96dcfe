package units

import "strings"

// Millimeters per supported linear unit.
var toMM = map[string]float64{
	"mm": 1,
	"cm": 10,
	"m":  1000,
	"in": 25.4,
}

// ToMillimeters converts a linear value to millimeters. The second return is
// false for unknown units or non-positive values; callers must treat that as
// "cannot verify" and never block on it.
func ToMillimeters(value float64, unit string) (float64, bool) {
	if value <= 0 {
		return 0, false
	}

	factor, ok := toMM[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return 0, false
	}

	return value * factor, true
}

// AreaSquareMeters computes the area of a width×height rectangle expressed in
// the given unit, in square meters. Returns false when either side cannot be
// converted.
func AreaSquareMeters(width, height float64, unit string) (float64, bool) {
	w, ok := ToMillimeters(width, unit)
	if !ok {
		return 0, false
	}

	h, ok := ToMillimeters(height, unit)
	if !ok {
		return 0, false
	}

	return (w / 1000) * (h / 1000), true
}
