package pricing

import "math"

// RateTier is a published price at a quantity threshold.
type RateTier struct {
	Qty   float64 `json:"qty" bson:"qty"`
	Price float64 `json:"price" bson:"price"`
}

// PriceForQuantity smooths a tier table by interpolating linearly between the
// closest thresholds around quantity. Tables may be unordered and may repeat
// thresholds. A quantity outside the table takes the price of the nearest
// tier; an empty table prices at zero.
func PriceForQuantity(tiers []RateTier, quantity float64) float64 {
	if len(tiers) == 0 {
		return 0
	}

	lower, upper := tiers[0], tiers[0]
	var haveLower, haveUpper bool

	for _, t := range tiers {
		if t.Qty <= quantity && (!haveLower || t.Qty > lower.Qty) {
			lower = t
			haveLower = true
		}
		if t.Qty >= quantity && (!haveUpper || t.Qty < upper.Qty) {
			upper = t
			haveUpper = true
		}
	}

	switch {
	case !haveLower:
		return upper.Price
	case !haveUpper:
		return lower.Price
	case lower.Qty == upper.Qty:
		return lower.Price
	}

	ratio := (quantity - lower.Qty) / (upper.Qty - lower.Qty)
	return lower.Price + (upper.Price-lower.Price)*ratio
}

// colorSheetBands maps a total sheet count to a per-sheet color price.
// Bands are checked in order; the first upper bound above the count wins.
var colorSheetBands = []struct {
	below int
	price float64
}{
	{25, 3.00},
	{50, 2.50},
	{100, 2.00},
	{200, 1.90},
	{300, 1.80},
	{400, 1.70},
	{500, 1.60},
}

const (
	colorSheetFloor      = 1.50
	singleSidedDiscount  = 0.20
	standardPagesPerSide = 4
	halfPagesPerSide     = 8
)

// ColorSheetPrice returns the per-sheet color price for a job of totalSheets.
func ColorSheetPrice(totalSheets int) float64 {
	for _, b := range colorSheetBands {
		if totalSheets < b.below {
			return b.price
		}
	}
	return colorSheetFloor
}

// SingleSidedSheetPrice is the color price less the single-sided discount.
func SingleSidedSheetPrice(totalSheets int) float64 {
	return ColorSheetPrice(totalSheets) - singleSidedDiscount
}

// InteriorSheets counts press sheets for the inner pages of a bound job.
// A4 prints four pages per sheet, every other format eight.
func InteriorSheets(pages int, format Format, quantity int) int {
	perSheet := float64(halfPagesPerSide)
	if format == FormatA4 {
		perSheet = standardPagesPerSide
	}
	return int(math.Ceil(float64(pages) / perSheet * float64(quantity)))
}

// CoverSheets counts cover sheets: one per copy in A4, half otherwise.
func CoverSheets(format Format, quantity int) int {
	perCopy := 0.5
	if format == FormatA4 {
		perCopy = 1
	}
	return int(math.Ceil(perCopy * float64(quantity)))
}

// roundCents rounds half away from zero to two decimals.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
