package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPriceForQuantity tests tier smoothing and its edge cases.
func TestPriceForQuantity(t *testing.T) {
	ordered := []RateTier{{Qty: 100, Price: 40}, {Qty: 500, Price: 70}, {Qty: 1000, Price: 100}}
	shuffled := []RateTier{{Qty: 1000, Price: 100}, {Qty: 100, Price: 40}, {Qty: 500, Price: 70}}

	tests := []struct {
		name     string
		tiers    []RateTier
		quantity float64
		expected float64
	}{
		{name: "empty table prices at zero", tiers: nil, quantity: 100, expected: 0},
		{name: "exact match on first tier", tiers: ordered, quantity: 100, expected: 40},
		{name: "exact match on middle tier", tiers: ordered, quantity: 500, expected: 70},
		{name: "exact match on last tier", tiers: ordered, quantity: 1000, expected: 100},
		{name: "midpoint between tiers", tiers: ordered, quantity: 300, expected: 55},
		{name: "quarter between tiers", tiers: ordered, quantity: 625, expected: 77.5},
		{name: "below every tier takes smallest", tiers: ordered, quantity: 10, expected: 40},
		{name: "above every tier takes largest", tiers: ordered, quantity: 5000, expected: 100},
		{name: "unordered exact match", tiers: shuffled, quantity: 500, expected: 70},
		{name: "unordered interpolation", tiers: shuffled, quantity: 300, expected: 55},
		{name: "unordered below every tier", tiers: shuffled, quantity: 50, expected: 40},
		{name: "unordered above every tier", tiers: shuffled, quantity: 2000, expected: 100},
		{name: "single tier", tiers: []RateTier{{Qty: 200, Price: 33}}, quantity: 750, expected: 33},
		{
			name:     "duplicate thresholds return the first",
			tiers:    []RateTier{{Qty: 100, Price: 40}, {Qty: 100, Price: 45}, {Qty: 500, Price: 70}},
			quantity: 100,
			expected: 40,
		},
		{
			name:     "duplicate thresholds still interpolate",
			tiers:    []RateTier{{Qty: 500, Price: 70}, {Qty: 100, Price: 40}, {Qty: 500, Price: 80}},
			quantity: 300,
			expected: 55,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, PriceForQuantity(tt.tiers, tt.quantity), 1e-9)
		})
	}
}

// TestPriceForQuantity_Linear checks interpolated prices stay strictly
// between their tiers and follow a straight line.
func TestPriceForQuantity_Linear(t *testing.T) {
	tiers := []RateTier{{Qty: 100, Price: 40}, {Qty: 500, Price: 70}}

	prev := PriceForQuantity(tiers, 100)
	for q := 101.0; q < 500; q += 37 {
		p := PriceForQuantity(tiers, q)
		assert.Greater(t, p, 40.0)
		assert.Less(t, p, 70.0)
		assert.Greater(t, p, prev)
		assert.InDelta(t, 40+30*(q-100)/400, p, 1e-9)
		prev = p
	}
}

// TestColorSheetPrice tests the volume band boundaries.
func TestColorSheetPrice(t *testing.T) {
	tests := []struct {
		sheets   int
		expected float64
	}{
		{0, 3.00}, {24, 3.00}, {25, 2.50}, {49, 2.50}, {50, 2.00}, {99, 2.00},
		{100, 1.90}, {199, 1.90}, {200, 1.80}, {299, 1.80}, {300, 1.70},
		{399, 1.70}, {400, 1.60}, {499, 1.60}, {500, 1.50}, {10000, 1.50},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ColorSheetPrice(tt.sheets), "sheets=%d", tt.sheets)
		assert.InDelta(t, tt.expected-0.2, SingleSidedSheetPrice(tt.sheets), 1e-9, "sheets=%d", tt.sheets)
	}
}

// TestSheetCounts tests that sheet counts round up.
func TestSheetCounts(t *testing.T) {
	assert.Equal(t, 7, InteriorSheets(9, FormatA4, 3))
	assert.Equal(t, 20, InteriorSheets(8, FormatA4, 10))
	assert.Equal(t, 10, InteriorSheets(8, FormatA5, 10))
	assert.Equal(t, 2, InteriorSheets(12, FormatA5, 1))
	assert.Equal(t, 3, CoverSheets(FormatA4, 3))
	assert.Equal(t, 2, CoverSheets(FormatA5, 3))
	assert.Equal(t, 0, CoverSheets(FormatA5, 0))
}
