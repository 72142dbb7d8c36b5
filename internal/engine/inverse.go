package engine

import (
	"fmt"

	"netto-engine/internal/model"
	"netto-engine/internal/money"
)

// InverseNetIncome returns the gross salary, in whole euros, whose net income
// is desiredNet.
func (c *Calculator) InverseNetIncome(desiredNet, deductibles float64, cfg model.TaxConfig) (float64, error) {
	if !validAmount(desiredNet) || !validAmount(deductibles) {
		return 0, fmt.Errorf("%w: net %v, deductibles %v", model.ErrInvalidAmount, desiredNet, deductibles)
	}
	if desiredNet == 0 {
		return 0, nil
	}
	tables, err := c.tables.Tables(cfg.Year())
	if err != nil {
		return 0, err
	}

	// Net never exceeds gross, so the search starts at or below the root.
	gap := func(salary float64) float64 {
		return calculate(tables, salary, deductibles, cfg).NetIncome - desiredNet
	}
	res, err := c.solver.Increasing(gap, desiredNet)
	if err != nil {
		return 0, &model.ConvergenceError{Target: desiredNet, Iterations: res.Iterations, Last: res.X}
	}

	log.Debugf("gross %.2f for net %.2f after %d iterations", res.X, desiredNet, res.Iterations)
	return money.Euros(res.X), nil
}
