package pricing

import "github.com/shopspring/decimal"

// Currency is the suffix printed after amounts.
const Currency = "DT"

// Amount converts a computed price to a two-decimal fixed point value for
// storage and display.
func Amount(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// FormatPrice renders an amount as "12.50 DT".
func FormatPrice(v float64) string {
	return Amount(v).StringFixed(2) + " " + Currency
}
