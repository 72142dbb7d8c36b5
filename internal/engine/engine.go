// Package engine composes income tax, surcharges and social security into net
// income, and inverts that composition.
package engine

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"netto-engine/internal/incometax"
	"netto-engine/internal/model"
	"netto-engine/internal/money"
	"netto-engine/internal/numeric"
	"netto-engine/internal/ratetable"
	"netto-engine/internal/socialsecurity"
	"netto-engine/internal/surcharge"
)

var log = logrus.WithField("module", "engine")

// TableSource supplies the rate tables of a year. *ratetable.Registry
// implements it.
type TableSource interface {
	Tables(year int) (*model.YearTables, error)
}

// Calculator is safe for concurrent use as long as its verbose writer is.
type Calculator struct {
	tables  TableSource
	solver  numeric.Solver
	verbose io.Writer
}

// New returns a Calculator over src, or over ratetable.Default() when src is nil.
func New(src TableSource) *Calculator {
	if src == nil {
		src = ratetable.Default()
	}
	return &Calculator{tables: src, solver: numeric.DefaultSolver}
}

// WithVerbose returns a copy of c that writes a yearly report to w on every
// NetIncome call.
func (c *Calculator) WithVerbose(w io.Writer) *Calculator {
	cp := *c
	cp.verbose = w
	return &cp
}

// WithSolver returns a copy of c that inverts net income with s.
func (c *Calculator) WithSolver(s numeric.Solver) *Calculator {
	cp := *c
	cp.solver = s
	return &cp
}

// NetIncome returns salary minus income tax, soli, church tax and social
// security, rounded to cents.
func (c *Calculator) NetIncome(salary, deductibles float64, cfg model.TaxConfig) (float64, error) {
	b, err := c.Calculate(salary, deductibles, cfg)
	if err != nil {
		return 0, err
	}
	if c.verbose != nil {
		if err := WriteReport(c.verbose, b); err != nil {
			return 0, err
		}
	}
	return b.NetIncome, nil
}

// Calculate returns every intermediate amount of the net-income calculation.
func (c *Calculator) Calculate(salary, deductibles float64, cfg model.TaxConfig) (*model.Breakdown, error) {
	if !validAmount(salary) || !validAmount(deductibles) {
		return nil, fmt.Errorf("%w: salary %v, deductibles %v", model.ErrInvalidAmount, salary, deductibles)
	}
	tables, err := c.tables.Tables(cfg.Year())
	if err != nil {
		return nil, err
	}
	return calculate(tables, salary, deductibles, cfg), nil
}

func calculate(tables *model.YearTables, salary, deductibles float64, cfg model.TaxConfig) *model.Breakdown {
	dedSS := socialsecurity.Deductible(tables, salary, cfg)
	taxable := incometax.TaxableIncome(salary, dedSS, deductibles)
	tax := incometax.TaxByIntegration(tables, taxable, cfg)
	soli := surcharge.Soli(tables.Soli, tax)
	church := surcharge.ChurchTax(tax, cfg)
	ss := socialsecurity.Total(tables, salary, cfg)

	return &model.Breakdown{
		Year:                     tables.Year,
		Salary:                   salary,
		Deductibles:              deductibles,
		DeductibleSocialSecurity: dedSS,
		TaxableIncome:            taxable,
		IncomeTax:                tax,
		Soli:                     soli,
		ChurchTax:                church,
		SocialSecurity:           ss,
		NetIncome:                money.Cents(salary - tax - soli - church - ss),
	}
}

// WriteReport writes the yearly evaluation of b.
func WriteReport(w io.Writer, b *model.Breakdown) error {
	_, err := fmt.Fprintf(w, "Yearly Evaluation:\n"+
		"Income Tax:      %12s\n"+
		"Soli:            %12s\n"+
		"Church Tax:      %12s\n"+
		"Social Security: %12s\n",
		reportAmount(b.IncomeTax), reportAmount(b.Soli), reportAmount(b.ChurchTax), reportAmount(b.SocialSecurity))
	return err
}

// reportAmount renders v in its shortest form, always with a fractional part.
func reportAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// validAmount reports whether v is a usable euro amount: finite and not negative.
func validAmount(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
