package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMillimeters(t *testing.T) {
	t.Run("Supported units", func(t *testing.T) {
		tests := []struct {
			value    float64
			unit     string
			expected float64
		}{
			{150, "mm", 150},
			{15, "cm", 150},
			{1.5, "m", 1500},
			{2, "in", 50.8},
		}

		for _, tc := range tests {
			got, ok := ToMillimeters(tc.value, tc.unit)
			assert.True(t, ok, "unit %q should be supported", tc.unit)
			assert.InDelta(t, tc.expected, got, 1e-9)
		}
	})

	t.Run("Case and whitespace are ignored", func(t *testing.T) {
		got, ok := ToMillimeters(10, " CM ")
		assert.True(t, ok)
		assert.InDelta(t, 100, got, 1e-9)
	})

	t.Run("Unknown unit", func(t *testing.T) {
		_, ok := ToMillimeters(10, "ft")
		assert.False(t, ok)

		_, ok = ToMillimeters(10, "")
		assert.False(t, ok)
	})

	t.Run("Non-positive values", func(t *testing.T) {
		_, ok := ToMillimeters(0, "mm")
		assert.False(t, ok)

		_, ok = ToMillimeters(-5, "cm")
		assert.False(t, ok)
	})

	t.Run("Round trip within tolerance", func(t *testing.T) {
		// mm -> in equivalent -> mm should preserve the value.
		mm, ok := ToMillimeters(25.4, "mm")
		assert.True(t, ok)

		inches := mm / 25.4
		back, ok := ToMillimeters(inches, "in")
		assert.True(t, ok)
		assert.InDelta(t, mm, back, 1e-9)
	})
}

func TestAreaSquareMeters(t *testing.T) {
	t.Run("Centimeters", func(t *testing.T) {
		// 50cm x 70cm = 0.5m x 0.7m = 0.35 m2
		area, ok := AreaSquareMeters(50, 70, "cm")
		assert.True(t, ok)
		assert.InDelta(t, 0.35, area, 1e-9)
	})

	t.Run("Millimeters", func(t *testing.T) {
		area, ok := AreaSquareMeters(1000, 1000, "mm")
		assert.True(t, ok)
		assert.InDelta(t, 1.0, area, 1e-9)
	})

	t.Run("Unknown unit fails closed", func(t *testing.T) {
		_, ok := AreaSquareMeters(50, 70, "px")
		assert.False(t, ok)
	})

	t.Run("Missing side fails closed", func(t *testing.T) {
		_, ok := AreaSquareMeters(0, 70, "cm")
		assert.False(t, ok)
	})
}
