package filecheck

import (
	"testing"

	"printaro-be/internal/catalog"
	"printaro-be/internal/utils"

	"github.com/stretchr/testify/assert"
)

func cleanMeta() Metadata {
	return Metadata{
		SizeBytes:     5 * 1024 * 1024,
		Width:         utils.IntPtr(2400),
		Height:        utils.IntPtr(2400),
		ColorProfile:  utils.StrPtr("CMYK"),
		HasBleed:      utils.BoolPtr(true),
		FontsEmbedded: utils.BoolPtr(true),
	}
}

func TestCheckResolution(t *testing.T) {
	t.Run("Oversized file is an error regardless of pixels", func(t *testing.T) {
		meta := cleanMeta()
		meta.SizeBytes = 201 * 1024 * 1024

		r := Validate(catalog.FileSpecs{}, meta)
		assert.Equal(t, StatusError, r.Resolution)
	})

	t.Run("Both sides above 1800px", func(t *testing.T) {
		r := Validate(catalog.FileSpecs{}, cleanMeta())
		assert.Equal(t, StatusOK, r.Resolution)
	})

	t.Run("Both sides above 1400px is a warning", func(t *testing.T) {
		meta := cleanMeta()
		meta.Width = utils.IntPtr(1500)
		meta.Height = utils.IntPtr(1799)

		r := Validate(catalog.FileSpecs{}, meta)
		assert.Equal(t, StatusWarning, r.Resolution)
	})

	t.Run("One side below 1400px is an error", func(t *testing.T) {
		meta := cleanMeta()
		meta.Width = utils.IntPtr(1200)

		r := Validate(catalog.FileSpecs{}, meta)
		assert.Equal(t, StatusError, r.Resolution)
	})

	t.Run("Missing pixel metadata cannot silently pass", func(t *testing.T) {
		meta := cleanMeta()
		meta.Width = nil
		meta.Height = nil

		r := Validate(catalog.FileSpecs{}, meta)
		assert.Equal(t, StatusWarning, r.Resolution)
	})
}

func TestCheckDimensions(t *testing.T) {
	specs := catalog.FileSpecs{
		MinWidth:  utils.IntPtr(1800),
		MinHeight: utils.IntPtr(1800),
	}

	t.Run("No declared minimums with pixels", func(t *testing.T) {
		r := Validate(catalog.FileSpecs{}, cleanMeta())
		assert.Equal(t, StatusOK, r.Dimensions)
	})

	t.Run("No declared minimums without pixels", func(t *testing.T) {
		meta := cleanMeta()
		meta.Width = nil
		meta.Height = nil

		r := Validate(catalog.FileSpecs{}, meta)
		assert.Equal(t, StatusWarning, r.Dimensions)
	})

	t.Run("Square artwork meets square minimums", func(t *testing.T) {
		r := Validate(specs, cleanMeta())
		assert.Equal(t, StatusOK, r.Dimensions)
	})

	t.Run("Aspect ratio outside tolerance", func(t *testing.T) {
		meta := cleanMeta()
		meta.Width = utils.IntPtr(2400)
		meta.Height = utils.IntPtr(1900) // ratio 1.26 vs required 1.0

		r := Validate(specs, meta)
		assert.Equal(t, StatusError, r.Dimensions)
	})

	t.Run("Pixels below minimums", func(t *testing.T) {
		meta := cleanMeta()
		meta.Width = utils.IntPtr(1700)
		meta.Height = utils.IntPtr(1700)

		r := Validate(specs, meta)
		assert.Equal(t, StatusError, r.Dimensions)
	})

	t.Run("Custom tolerance admits a wider ratio", func(t *testing.T) {
		loose := specs
		loose.AspectTolerance = utils.Float64Ptr(0.3)
		meta := cleanMeta()
		meta.Width = utils.IntPtr(2400)
		meta.Height = utils.IntPtr(1900)

		r := Validate(loose, meta)
		assert.Equal(t, StatusOK, r.Dimensions)
	})

	t.Run("Missing pixels with declared minimums", func(t *testing.T) {
		meta := cleanMeta()
		meta.Width = nil
		meta.Height = nil

		r := Validate(specs, meta)
		assert.Equal(t, StatusWarning, r.Dimensions)
	})
}

func TestCheckBleedColorFonts(t *testing.T) {
	t.Run("Bleed not required", func(t *testing.T) {
		meta := cleanMeta()
		meta.HasBleed = nil

		r := Validate(catalog.FileSpecs{}, meta)
		assert.Equal(t, StatusOK, r.Bleed)
	})

	t.Run("Bleed required but undetected is only a warning", func(t *testing.T) {
		meta := cleanMeta()
		meta.HasBleed = utils.BoolPtr(false)

		r := Validate(catalog.FileSpecs{BleedRequired: true}, meta)
		assert.Equal(t, StatusWarning, r.Bleed)
	})

	t.Run("Bleed required and unknown is only a warning", func(t *testing.T) {
		meta := cleanMeta()
		meta.HasBleed = nil

		r := Validate(catalog.FileSpecs{BleedRequired: true}, meta)
		assert.Equal(t, StatusWarning, r.Bleed)
	})

	t.Run("CMYK profile detected", func(t *testing.T) {
		r := Validate(catalog.FileSpecs{}, cleanMeta())
		assert.Equal(t, StatusOK, r.Color)
	})

	t.Run("RGB or unknown profile is a warning", func(t *testing.T) {
		meta := cleanMeta()
		meta.ColorProfile = utils.StrPtr("RGB")
		r := Validate(catalog.FileSpecs{}, meta)
		assert.Equal(t, StatusWarning, r.Color)

		meta.ColorProfile = nil
		r = Validate(catalog.FileSpecs{}, meta)
		assert.Equal(t, StatusWarning, r.Color)
	})

	t.Run("Fonts unknown passes", func(t *testing.T) {
		meta := cleanMeta()
		meta.FontsEmbedded = nil

		r := Validate(catalog.FileSpecs{}, meta)
		assert.Equal(t, StatusOK, r.Fonts)
	})

	t.Run("Fonts known un-embedded is a warning", func(t *testing.T) {
		meta := cleanMeta()
		meta.FontsEmbedded = utils.BoolPtr(false)

		r := Validate(catalog.FileSpecs{}, meta)
		assert.Equal(t, StatusWarning, r.Fonts)
	})
}

func TestOverall(t *testing.T) {
	t.Run("Worst of five wins", func(t *testing.T) {
		r := Result{
			Resolution: StatusOK,
			Dimensions: StatusError,
			Bleed:      StatusOK,
			Color:      StatusWarning,
			Fonts:      StatusOK,
		}
		assert.Equal(t, StatusError, r.Overall())
	})

	t.Run("Warning outranks ok", func(t *testing.T) {
		r := Result{
			Resolution: StatusOK,
			Dimensions: StatusOK,
			Bleed:      StatusWarning,
			Color:      StatusOK,
			Fonts:      StatusOK,
		}
		assert.Equal(t, StatusWarning, r.Overall())
	})

	t.Run("All clean", func(t *testing.T) {
		r := Validate(catalog.FileSpecs{BleedRequired: true}, cleanMeta())
		assert.Equal(t, StatusOK, r.Overall())
	})
}
