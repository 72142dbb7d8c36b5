package money

import "github.com/shopspring/decimal"

// Cents rounds to two decimal places, half away from zero.
func Cents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Euros rounds to whole euros, half away from zero.
func Euros(v float64) float64 {
	return decimal.NewFromFloat(v).Round(0).InexactFloat64()
}

// CeilEuros rounds up to whole euros.
func CeilEuros(v float64) float64 {
	return decimal.NewFromFloat(v).Ceil().InexactFloat64()
}
