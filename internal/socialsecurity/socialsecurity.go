// Package socialsecurity computes the employee's share of statutory social
// insurance contributions.
package socialsecurity

import (
	"math"

	"netto-engine/internal/model"
	"netto-engine/internal/money"
	"netto-engine/internal/numeric"
)

// Sick-pay share of the health rate, not deductible from taxable income.
const sickPayShare = 0.003

// Rate is the contribution rate of cat at salary: base plus extra while
// 0 < salary <= limit, otherwise 0.
func Rate(tables *model.YearTables, salary float64, cat Category, cfg model.TaxConfig) float64 {
	e := cat.Entry(&tables.SocialSecurity)
	if salary <= 0 || salary > e.Limit {
		return 0
	}
	return e.Rate + cat.Extra(e, cfg)
}

// Contribution is the yearly amount for cat, with salary capped at the
// category's limit.
func Contribution(tables *model.YearTables, salary float64, cat Category, cfg model.TaxConfig) float64 {
	if salary <= 0 {
		return 0
	}
	base := math.Min(salary, cat.Entry(&tables.SocialSecurity).Limit)
	return base * Rate(tables, base, cat, cfg)
}

// Total sums every category's contribution, rounded to cents.
func Total(tables *model.YearTables, salary float64, cfg model.TaxConfig) float64 {
	var sum float64
	for _, cat := range all {
		sum += Contribution(tables, salary, cat, cfg)
	}
	return money.Cents(sum)
}

// TotalByIntegration sums the integral of each category's rate from 0 to
// salary, rounded to cents. It agrees with Total within a cent or two.
func TotalByIntegration(tables *model.YearTables, salary float64, cfg model.TaxConfig) float64 {
	if salary <= 0 {
		return 0
	}
	var sum float64
	for _, cat := range all {
		rate := func(x float64) float64 { return Rate(tables, x, cat, cfg) }
		limit := cat.Entry(&tables.SocialSecurity).Limit
		sum += numeric.Integrate(rate, 0, salary, numeric.DefaultTolerance, limit)
	}
	return money.Cents(sum)
}

// Deductible is the part of the contributions that reduces taxable income:
// pension scaled by the year's factor, health without the sick-pay share, and
// nursing in full. Each part is rounded up to whole euros.
func Deductible(tables *model.YearTables, salary float64, cfg model.TaxConfig) float64 {
	if salary <= 0 {
		return 0
	}

	pension := Contribution(tables, salary, Pension, cfg) * tables.PensionFactor

	h := tables.SocialSecurity.Health
	health := math.Min(salary, h.Limit) * (h.Rate - sickPayShare + Health.Extra(h, cfg))

	nursing := Contribution(tables, salary, Nursing, cfg)

	return money.CeilEuros(pension) + money.CeilEuros(health) + money.CeilEuros(nursing)
}
