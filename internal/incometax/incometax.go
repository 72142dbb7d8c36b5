// Package incometax implements the four-bracket German income tax curve.
package incometax

import (
	"fmt"
	"math"

	"netto-engine/internal/model"
	"netto-engine/internal/numeric"
)

const (
	// Employee lump sum for work expenses.
	workAllowance = 1200
	// Lump sum for special expenses.
	specialExpenses = 36

	// The polynomial brackets are evaluated in units of 10000 euros.
	polyUnit = 10000
)

// TaxableIncome reduces salary by the deductible social security, the lump
// sums and other deductibles, floored to whole euros and never negative.
func TaxableIncome(salary, deductibleSS, other float64) float64 {
	return math.Floor(math.Max(0, salary-deductibleSS-workAllowance-specialExpenses-other))
}

// MarginalRate returns the tax rate on the last euro of taxable income.
//
// The rate is 0 below the first step and rises linearly through the two
// progression zones up to the third bracket's rate, which is flat until the
// top step. Married couples have every step doubled.
func MarginalRate(tables *model.YearTables, taxable float64, cfg model.TaxConfig) float64 {
	s := tables.Steps(cfg.Married())
	b := tables.Brackets

	switch {
	case taxable < s[model.BracketBasic]:
		return 0
	case taxable <= s[model.BracketProgressionLow]:
		return gradient(s[0], s[1], b[0].Rate, b[1].Rate, taxable)
	case taxable <= s[model.BracketProgressionHigh]:
		return gradient(s[1], s[2], b[1].Rate, b[2].Rate, taxable)
	case taxable < s[model.BracketTop]:
		return b[model.BracketProgressionHigh].Rate
	}
	return b[model.BracketTop].Rate
}

func gradient(xi, xj, yi, yj, x float64) float64 {
	return (1-(xj-x)/(xj-xi))*(yj-yi) + yi
}

// Tax is the closed-form income tax on taxable income rounded to whole euros.
// Married couples are taxed by splitting: twice the tax on half the income.
func Tax(tables *model.YearTables, taxable float64, cfg model.TaxConfig) (float64, error) {
	if err := checkPolynomial(tables); err != nil {
		return 0, err
	}

	x := math.Round(taxable)
	if cfg.Married() {
		return 2 * polynomial(tables, x/2), nil
	}
	return polynomial(tables, x), nil
}

// minimum number of constants per bracket
var constLen = [model.BracketCount]int{0, 2, 3, 2}

func checkPolynomial(tables *model.YearTables) error {
	for i, n := range constLen {
		if len(tables.Brackets[i].Const) < n {
			return fmt.Errorf("%w %d: bracket %d has %d of %d constants",
				model.ErrNoPolynomial, tables.Year, i, len(tables.Brackets[i].Const), n)
		}
	}
	return nil
}

func polynomial(tables *model.YearTables, x float64) float64 {
	b := tables.Brackets
	switch {
	case x <= b[model.BracketBasic].Step:
		return 0
	case x <= b[model.BracketProgressionLow].Step:
		c := b[model.BracketProgressionLow].Const
		y := (x - b[model.BracketBasic].Step) / polyUnit
		return (c[0]*y + c[1]) * y
	case x <= b[model.BracketProgressionHigh].Step:
		c := b[model.BracketProgressionHigh].Const
		z := (x - b[model.BracketProgressionLow].Step) / polyUnit
		return (c[0]*z+c[1])*z + c[2]
	case x < b[model.BracketTop].Step:
		return b[model.BracketProgressionHigh].Rate*x - b[model.BracketTop].Const[0]
	}
	return b[model.BracketTop].Rate*x - b[model.BracketTop].Const[1]
}

// TaxByIntegration integrates MarginalRate from 0 to taxable. It needs no
// polynomial constants, so it works for every year with a tax curve.
func TaxByIntegration(tables *model.YearTables, taxable float64, cfg model.TaxConfig) float64 {
	if taxable <= 0 {
		return 0
	}
	steps := tables.Steps(cfg.Married())
	rate := func(x float64) float64 { return MarginalRate(tables, x, cfg) }
	return numeric.Integrate(rate, 0, taxable, numeric.DefaultTolerance, steps[:]...)
}
