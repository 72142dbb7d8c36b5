package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCents(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{1.005, 1.01},
		{1.004, 1},
		{-1.005, -1.01},
		{5500.000000001, 5500},
		{20554.375, 20554.38},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Cents(tc.in), "in=%v", tc.in)
	}
}

func TestEuros(t *testing.T) {
	assert.Equal(t, 30000.0, Euros(29999.5))
	assert.Equal(t, 29999.0, Euros(29999.49))
	assert.Equal(t, 10000.0, Euros(10000.000001))
}

func TestCeilEuros(t *testing.T) {
	assert.Equal(t, 2456.0, CeilEuros(2455.2))
	assert.Equal(t, 563.0, CeilEuros(562.5))
	assert.Equal(t, 2310.0, CeilEuros(2310))
	assert.Equal(t, 0.0, CeilEuros(0))
}
