package engine

import (
	"fmt"

	"netto-engine/internal/model"
)

// Compare calculates salary under each scenario, in order.
func (c *Calculator) Compare(salary, deductibles float64, scenarios []model.Scenario) ([]model.ScenarioResult, error) {
	results := make([]model.ScenarioResult, 0, len(scenarios))
	for _, s := range scenarios {
		b, err := c.Calculate(salary, deductibles, s.Config)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		results = append(results, model.ScenarioResult{Scenario: s.Name, Breakdown: b})
	}
	return results, nil
}
