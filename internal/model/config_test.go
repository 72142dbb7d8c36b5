package model

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTaxConfig(t *testing.T) {
	c := DefaultTaxConfig()
	assert.Equal(t, 2022, c.Year())
	assert.False(t, c.Married())
	assert.False(t, c.HasChildren())
	assert.Equal(t, 0.014, c.ExtraHealthInsurance())
	assert.Equal(t, 0.09, c.ChurchTax())
}

func TestNewTaxConfig(t *testing.T) {
	c, err := NewTaxConfig(
		WithYear(2024),
		WithMarried(true),
		WithChildren(true),
		WithExtraHealthInsurance(0.017),
		WithChurchTax(0),
	)
	require.NoError(t, err)
	assert.Equal(t, 2024, c.Year())
	assert.True(t, c.Married())
	assert.True(t, c.HasChildren())
	assert.Equal(t, 0.017, c.ExtraHealthInsurance())
	assert.Equal(t, 0.0, c.ChurchTax())

	copied, err := NewTaxConfig(c.Options()...)
	require.NoError(t, err)
	assert.Equal(t, c, copied)

	adjusted, err := NewTaxConfig(append(c.Options(), WithYear(2018))...)
	require.NoError(t, err)
	assert.Equal(t, 2018, adjusted.Year())
	assert.True(t, adjusted.Married())
}

func TestNewTaxConfigRejects(t *testing.T) {
	cases := []struct {
		name  string
		opt   Option
		field string
	}{
		{"year too early", WithYear(2017), "year"},
		{"year too late", WithYear(2026), "year"},
		{"negative extra health", WithExtraHealthInsurance(-0.001), "extra_health_insurance"},
		{"negative church tax", WithChurchTax(-0.09), "church_tax"},
		{"nan extra health", WithExtraHealthInsurance(math.NaN()), "extra_health_insurance"},
		{"infinite extra health", WithExtraHealthInsurance(math.Inf(1)), "extra_health_insurance"},
		{"nan church tax", WithChurchTax(math.NaN()), "church_tax"},
		{"infinite church tax", WithChurchTax(math.Inf(1)), "church_tax"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewTaxConfig(tc.opt)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Equal(t, TaxConfig{}, c)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tc.field, cfgErr.Field)
		})
	}

	for _, year := range []int{MinYear, MaxYear} {
		_, err := NewTaxConfig(WithYear(year))
		assert.NoError(t, err, "year %d", year)
	}
}

func TestErrorsUnwrap(t *testing.T) {
	dataErr := &DataError{Kind: "soli", Year: 2026, Err: ErrNotImplemented}
	assert.ErrorIs(t, dataErr, ErrNotImplemented)
	assert.Equal(t, "soli data for 2026: year not yet implemented", dataErr.Error())

	convErr := &ConvergenceError{Target: 30000, Iterations: 200, Last: 48000.5}
	assert.ErrorIs(t, convErr, ErrNoConvergence)
	assert.Contains(t, convErr.Error(), "target net 30000.00")
}

func TestStepsDoubleWhenMarried(t *testing.T) {
	tables := &YearTables{Brackets: [BracketCount]TaxBracket{
		{Step: 10347}, {Step: 14926}, {Step: 58596}, {Step: 277826},
	}}
	assert.Equal(t, [BracketCount]float64{10347, 14926, 58596, 277826}, tables.Steps(false))
	assert.Equal(t, [BracketCount]float64{20694, 29852, 117192, 555652}, tables.Steps(true))
}

func TestBreakdownDeductions(t *testing.T) {
	b := &Breakdown{IncomeTax: 100, Soli: 5.5, ChurchTax: 9, SocialSecurity: 200}
	assert.InDelta(t, 314.5, b.Deductions(), 1e-9)
}

func TestBreakdownMonthly(t *testing.T) {
	b := &Breakdown{Year: 2022, Salary: 60000, IncomeTax: 1200, NetIncome: 36000}
	m := b.Monthly()
	assert.Equal(t, 2022, m.Year)
	assert.Equal(t, 5000.0, m.Salary)
	assert.Equal(t, 100.0, m.IncomeTax)
	assert.Equal(t, 3000.0, m.NetIncome)
	assert.Equal(t, 60000.0, b.Salary)
}
