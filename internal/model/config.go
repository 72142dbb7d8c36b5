package model

import "math"

const (
	MinYear = 2018
	MaxYear = 2025

	DefaultYear                 = 2022
	DefaultExtraHealthInsurance = 0.014
	DefaultChurchTax            = 0.09
)

// TaxConfig holds the personal attributes a calculation depends on. Values are
// validated by NewTaxConfig and cannot be changed afterwards; pass it by value.
type TaxConfig struct {
	year                 int
	married              bool
	hasChildren          bool
	extraHealthInsurance float64
	churchTax            float64
}

type Option func(*TaxConfig)

func WithYear(year int) Option {
	return func(c *TaxConfig) { c.year = year }
}

// WithMarried enables income splitting (doubled bracket thresholds).
func WithMarried(married bool) Option {
	return func(c *TaxConfig) { c.married = married }
}

// WithChildren drops the childless surcharge on nursing insurance.
func WithChildren(hasChildren bool) Option {
	return func(c *TaxConfig) { c.hasChildren = hasChildren }
}

func WithExtraHealthInsurance(rate float64) Option {
	return func(c *TaxConfig) { c.extraHealthInsurance = rate }
}

// WithChurchTax sets the church tax rate; 0 means no church tax.
func WithChurchTax(rate float64) Option {
	return func(c *TaxConfig) { c.churchTax = rate }
}

// NewTaxConfig applies opts on top of the defaults and validates the result.
func NewTaxConfig(opts ...Option) (TaxConfig, error) {
	c := TaxConfig{
		year:                 DefaultYear,
		extraHealthInsurance: DefaultExtraHealthInsurance,
		churchTax:            DefaultChurchTax,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.validate(); err != nil {
		return TaxConfig{}, err
	}
	return c, nil
}

// DefaultTaxConfig is year 2022, single, no children, 1.4% extra health
// insurance and 9% church tax.
func DefaultTaxConfig() TaxConfig {
	c, _ := NewTaxConfig()
	return c
}

func (c TaxConfig) validate() error {
	if c.year < MinYear || c.year > MaxYear {
		return &ConfigError{Field: "year", Value: c.year, Reason: "must be between 2018 and 2025"}
	}
	if !validRate(c.extraHealthInsurance) {
		return &ConfigError{Field: "extra_health_insurance", Value: c.extraHealthInsurance, Reason: "must be a finite non-negative rate"}
	}
	if !validRate(c.churchTax) {
		return &ConfigError{Field: "church_tax", Value: c.churchTax, Reason: "must be a finite non-negative rate"}
	}
	return nil
}

func validRate(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

func (c TaxConfig) Year() int                     { return c.year }
func (c TaxConfig) Married() bool                 { return c.married }
func (c TaxConfig) HasChildren() bool             { return c.hasChildren }
func (c TaxConfig) ExtraHealthInsurance() float64 { return c.extraHealthInsurance }
func (c TaxConfig) ChurchTax() float64            { return c.churchTax }

// Options returns opts that rebuild c, so a copy can be adjusted with
// NewTaxConfig(append(c.Options(), WithYear(2024))...).
func (c TaxConfig) Options() []Option {
	return []Option{
		WithYear(c.year),
		WithMarried(c.married),
		WithChildren(c.hasChildren),
		WithExtraHealthInsurance(c.extraHealthInsurance),
		WithChurchTax(c.churchTax),
	}
}
