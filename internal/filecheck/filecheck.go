package filecheck

import (
	"math"
	"strings"

	"printaro-be/internal/catalog"
)

// Status grades a single check. Error outranks warning outranks ok.
type Status string

const (
	StatusOK      Status = "ok"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

const (
	// Files over this size cannot enter the production queue at all.
	maxFileSizeBytes = 200 * 1024 * 1024

	// Pixel thresholds for print-grade resolution.
	resolutionOKPx      = 1800
	resolutionWarningPx = 1400

	defaultAspectTolerance = 0.05
)

// Metadata is the best-effort information extracted from an uploaded file.
// Extraction happens outside this package; nil pointers mean "unknown".
type Metadata struct {
	SizeBytes     int64   `json:"sizeBytes"`
	Width         *int    `json:"width,omitempty"`
	Height        *int    `json:"height,omitempty"`
	Pages         *int    `json:"pages,omitempty"`
	ColorProfile  *string `json:"colorProfile,omitempty"`
	HasBleed      *bool   `json:"hasBleed,omitempty"`
	FontsEmbedded *bool   `json:"fontsEmbedded,omitempty"`
}

// Result holds the five independently-graded checks.
type Result struct {
	Resolution Status `json:"resolution"`
	Dimensions Status `json:"dimensions"`
	Bleed      Status `json:"bleed"`
	Color      Status `json:"color"`
	Fonts      Status `json:"fonts"`
}

var severity = map[Status]int{
	StatusOK:      0,
	StatusWarning: 1,
	StatusError:   2,
}

// Overall rolls the five checks into one verdict: the worst of the five,
// by simple precedence.
func (r Result) Overall() Status {
	overall := StatusOK
	for _, s := range []Status{r.Resolution, r.Dimensions, r.Bleed, r.Color, r.Fonts} {
		if severity[s] > severity[overall] {
			overall = s
		}
	}
	return overall
}

// Validate grades an uploaded file's metadata against a product's print
// requirements. Missing metadata degrades to a warning, never a silent pass;
// only conditions with real production consequences grade as an error.
func Validate(specs catalog.FileSpecs, meta Metadata) Result {
	return Result{
		Resolution: checkResolution(meta),
		Dimensions: checkDimensions(specs, meta),
		Bleed:      checkBleed(specs, meta),
		Color:      checkColor(meta),
		Fonts:      checkFonts(meta),
	}
}

func checkResolution(meta Metadata) Status {
	if meta.SizeBytes > maxFileSizeBytes {
		return StatusError
	}

	if meta.Width == nil || meta.Height == nil {
		return StatusWarning
	}

	w, h := *meta.Width, *meta.Height
	switch {
	case w >= resolutionOKPx && h >= resolutionOKPx:
		return StatusOK
	case w >= resolutionWarningPx && h >= resolutionWarningPx:
		return StatusWarning
	default:
		return StatusError
	}
}

func checkDimensions(specs catalog.FileSpecs, meta Metadata) Status {
	hasPixels := meta.Width != nil && meta.Height != nil

	if specs.MinWidth == nil || specs.MinHeight == nil {
		if hasPixels {
			return StatusOK
		}
		return StatusWarning
	}

	if !hasPixels {
		return StatusWarning
	}

	tolerance := defaultAspectTolerance
	if specs.AspectTolerance != nil && *specs.AspectTolerance > 0 {
		tolerance = *specs.AspectTolerance
	}

	required := float64(*specs.MinWidth) / float64(*specs.MinHeight)
	actual := float64(*meta.Width) / float64(*meta.Height)

	aspectOK := math.Abs(actual-required) <= required*tolerance
	sizeOK := *meta.Width >= *specs.MinWidth && *meta.Height >= *specs.MinHeight

	if aspectOK && sizeOK {
		return StatusOK
	}
	return StatusError
}

// Bleed issues are fixable in finishing, so they never block.
func checkBleed(specs catalog.FileSpecs, meta Metadata) Status {
	if !specs.BleedRequired {
		return StatusOK
	}
	if meta.HasBleed != nil && *meta.HasBleed {
		return StatusOK
	}
	return StatusWarning
}

func checkColor(meta Metadata) Status {
	if meta.ColorProfile != nil && strings.EqualFold(*meta.ColorProfile, "cmyk") {
		return StatusOK
	}
	return StatusWarning
}

func checkFonts(meta Metadata) Status {
	if meta.FontsEmbedded != nil && !*meta.FontsEmbedded {
		return StatusWarning
	}
	return StatusOK
}
