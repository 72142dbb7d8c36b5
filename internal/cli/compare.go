package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"netto-engine/internal/config"
	"netto-engine/internal/engine"
	"netto-engine/internal/model"
)

// exampleScenarios is the comparison shown when no --scenario is given.
func exampleScenarios() ([]model.Scenario, error) {
	specs := []struct {
		name string
		opts []model.Option
	}{
		{"Single, 2024, no church tax", []model.Option{model.WithYear(2024), model.WithChurchTax(0)}},
		{"Married, 2024, with church tax", []model.Option{model.WithYear(2024), model.WithMarried(true), model.WithChurchTax(0.09)}},
		{"Single with children, 2025", []model.Option{model.WithYear(2025), model.WithChildren(true), model.WithChurchTax(0)}},
	}
	scenarios := make([]model.Scenario, 0, len(specs))
	for _, s := range specs {
		cfg, err := model.NewTaxConfig(s.opts...)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, model.Scenario{Name: s.name, Config: cfg})
	}
	return scenarios, nil
}

// parseScenario reads "name=profile.yaml". The profile applies on top of base.
func parseScenario(s string, base model.TaxConfig) (model.Scenario, error) {
	name, path, ok := strings.Cut(s, "=")
	if !ok || name == "" || path == "" {
		return model.Scenario{}, fmt.Errorf("%w: scenario %q must be name=profile.yaml", model.ErrInvalidConfig, s)
	}
	cfg, err := config.FromFile(path, base.Options()...)
	if err != nil {
		return model.Scenario{}, err
	}
	return model.Scenario{Name: name, Config: cfg}, nil
}

func newCompareCommand(o *rootOptions) *cobra.Command {
	var (
		deductibles float64
		specs       []string
	)

	cmd := &cobra.Command{
		Use:   "compare <salary>",
		Short: "Compare net income of one salary across scenarios",
		Example: `  netto compare 70000
  netto compare 70000 --scenario single=single.yaml --scenario married=married.yaml
  netto compare 70000 --church-tax 0 --scenario 2020=year2020.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			salary, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			scenarios, err := exampleScenarios()
			if err != nil {
				return err
			}
			if len(specs) > 0 {
				base, err := o.taxConfig(cmd)
				if err != nil {
					return err
				}
				scenarios = scenarios[:0]
				for _, s := range specs {
					sc, err := parseScenario(s, base)
					if err != nil {
						return err
					}
					scenarios = append(scenarios, sc)
				}
			}

			return o.emit(cmd, func() (any, error) {
				return engine.New(nil).Compare(salary, deductibles, scenarios)
			}, func(w io.Writer, result any) error {
				results := result.([]model.ScenarioResult)
				width := max(40, len(lo.MaxBy(results, func(a, b model.ScenarioResult) bool {
					return len(a.Scenario) > len(b.Scenario)
				}).Scenario))

				fmt.Fprintf(w, "Comparison for %.0f EUR gross salary:\n", salary)
				fmt.Fprintln(w, strings.Repeat("-", width+20))
				for _, r := range results {
					fmt.Fprintf(w, "%-*s -> %10.2f EUR\n", width, r.Scenario, r.Breakdown.NetIncome)
				}
				return nil
			})
		},
	}

	cmd.Flags().Float64Var(&deductibles, "deductibles", 0, "additional tax deductibles")
	cmd.Flags().StringArrayVar(&specs, "scenario", nil, "scenario as name=profile.yaml, repeatable")
	return cmd
}
