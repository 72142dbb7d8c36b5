package socialsecurity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netto-engine/internal/model"
	"netto-engine/internal/ratetable"
)

func tables2022(t *testing.T) *model.YearTables {
	t.Helper()
	tb, err := ratetable.Default().Tables(2022)
	require.NoError(t, err)
	return tb
}

func config(t *testing.T, opts ...model.Option) model.TaxConfig {
	t.Helper()
	c, err := model.NewTaxConfig(opts...)
	require.NoError(t, err)
	return c
}

func TestRegistry(t *testing.T) {
	for _, name := range []string{"pension", "unemployment", "health", "nursing"} {
		c, ok := Get(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}
	_, ok := Get("dental")
	assert.False(t, ok)

	cats := All()
	assert.Equal(t, []Category{Pension, Unemployment, Health, Nursing}, cats)
	cats[0] = nil
	assert.Equal(t, Pension, All()[0])
}

func TestRate(t *testing.T) {
	tb := tables2022(t)
	def := config(t)

	cases := []struct {
		name   string
		cat    Category
		cfg    model.TaxConfig
		salary float64
		want   float64
	}{
		{"pension zero salary", Pension, def, 0, 0},
		{"pension negative", Pension, def, -1, 0},
		{"pension", Pension, def, 10000, 0.093},
		{"pension at limit", Pension, def, 84600, 0.093},
		{"pension above limit", Pension, def, 84601, 0},
		{"unemployment", Unemployment, def, 30000, 0.012},
		{"health", Health, def, 30000, 0.08},
		{"health higher extra", Health, config(t, model.WithExtraHealthInsurance(0.015)), 30000, 0.0805},
		{"health above limit", Health, def, 58051, 0},
		{"nursing childless", Nursing, def, 30000, 0.01875},
		{"nursing with children", Nursing, config(t, model.WithChildren(true)), 30000, 0.01525},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Rate(tb, tc.salary, tc.cat, tc.cfg), 1e-12)
		})
	}
}

func TestContribution(t *testing.T) {
	tb := tables2022(t)
	def := config(t)

	assert.Equal(t, 0.0, Contribution(tb, 0, Pension, def))
	assert.Equal(t, 0.0, Contribution(tb, -100, Health, def))
	assert.InDelta(t, 2790, Contribution(tb, 30000, Pension, def), 1e-9)
	assert.InDelta(t, 7867.8, Contribution(tb, 100000, Pension, def), 1e-9)
	assert.InDelta(t, 58050*0.08, Contribution(tb, 100000, Health, def), 1e-9)
	assert.InDelta(t, 562.5, Contribution(tb, 30000, Nursing, def), 1e-9)
}

func TestTotal(t *testing.T) {
	tb := tables2022(t)
	def := config(t)

	assert.Equal(t, 0.0, Total(tb, 0, def))
	assert.InDelta(t, 6112.5, Total(tb, 30000, def), 1e-9)
	assert.InDelta(t, 14615.44, Total(tb, 100000, def), 0.01)
	assert.Equal(t, Total(tb, 100000, def), Total(tb, 200000, def))
}

func TestTotalByIntegrationMatchesTotal(t *testing.T) {
	for _, year := range ratetable.Default().Years() {
		tb, err := ratetable.Default().Tables(year)
		require.NoError(t, err)

		configs := []model.TaxConfig{
			config(t, model.WithYear(year)),
			config(t, model.WithYear(year), model.WithChildren(true), model.WithExtraHealthInsurance(0.02)),
		}
		for _, cfg := range configs {
			for salary := 0.0; salary <= 300000; salary += 7919 {
				assert.InDelta(t, Total(tb, salary, cfg), TotalByIntegration(tb, salary, cfg), 0.02,
					"year %d salary %v", year, salary)
			}
			limit := tb.SocialSecurity.Health.Limit
			assert.InDelta(t, Total(tb, limit, cfg), TotalByIntegration(tb, limit, cfg), 0.02)
		}
	}
}

func TestDeductible(t *testing.T) {
	tb := tables2022(t)
	def := config(t)

	assert.Equal(t, 0.0, Deductible(tb, 0, def))
	assert.Equal(t, 0.0, Deductible(tb, -5, def))
	// 2455.2 + 2310 + 562.5, each rounded up
	assert.Equal(t, 2456.0+2310+563, Deductible(tb, 30000, def))

	withChildren := config(t, model.WithChildren(true))
	assert.Less(t, Deductible(tb, 30000, withChildren), Deductible(tb, 30000, def))
}
