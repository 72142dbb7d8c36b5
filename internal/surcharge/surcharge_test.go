package surcharge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netto-engine/internal/model"
)

var soli2022 = model.SoliParameters{Year: 2022, StartTaxableIncome: 16956, StartFraction: 0.119, EndRate: 0.055}

func TestSoli(t *testing.T) {
	cases := []struct {
		tax  float64
		want float64
	}{
		{-1000, 0},
		{0, 0},
		{16956, 0},
		{16957, 0.12},
		{17514.96, 66.52},
		{26913.96, 1185.0},
		{30000, 1552.24},
		{100000, 5500},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, Soli(soli2022, tc.tax), 1e-9, "tax %v", tc.tax)
	}
}

func TestSoliIsContinuousAtFullRate(t *testing.T) {
	// Phase-in meets the full rate where (x - 16956) * 0.119 = 0.055x.
	crossover := 16956 * 0.119 / (0.119 - 0.055)
	below := Soli(soli2022, crossover-1)
	above := Soli(soli2022, crossover+1)
	assert.InDelta(t, above, below, 0.2)
}

func TestChurchTax(t *testing.T) {
	cfg := model.DefaultTaxConfig()
	assert.Equal(t, 900.0, ChurchTax(10000, cfg))
	assert.Equal(t, 0.0, ChurchTax(-1000, cfg))
	assert.Equal(t, 0.0, ChurchTax(0, cfg))

	none, err := model.NewTaxConfig(model.WithChurchTax(0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, ChurchTax(10000, none))

	bavaria, err := model.NewTaxConfig(model.WithChurchTax(0.08))
	require.NoError(t, err)
	assert.InDelta(t, 2613.08, ChurchTax(32663.55, bavaria), 1e-9)
}
