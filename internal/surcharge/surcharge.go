// Package surcharge computes the levies charged on top of income tax.
package surcharge

import (
	"math"

	"netto-engine/internal/model"
	"netto-engine/internal/money"
)

// Soli is the solidarity surcharge on incomeTax. Above the threshold it phases
// in at the start fraction until it reaches the end rate of the whole tax.
func Soli(params model.SoliParameters, incomeTax float64) float64 {
	phaseIn := math.Max(0, incomeTax-params.StartTaxableIncome) * params.StartFraction
	full := incomeTax * params.EndRate
	return money.Cents(math.Max(0, math.Min(phaseIn, full)))
}

// ChurchTax applies the configured church tax rate to incomeTax.
func ChurchTax(incomeTax float64, cfg model.TaxConfig) float64 {
	return money.Cents(math.Max(0, incomeTax*cfg.ChurchTax()))
}
