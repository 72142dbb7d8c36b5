package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"netto-engine/internal/engine"
)

type grossResult struct {
	Year        int     `json:"year"`
	NetIncome   float64 `json:"net_income"`
	Deductibles float64 `json:"deductibles"`
	Salary      float64 `json:"salary"`
}

func newGrossCommand(o *rootOptions) *cobra.Command {
	var deductibles float64

	cmd := &cobra.Command{
		Use:   "gross <net>",
		Short: "Yearly gross salary needed for a target net income",
		Example: `  netto gross 50000
  netto gross 50000 --deductibles 5000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			cfg, err := o.taxConfig(cmd)
			if err != nil {
				return err
			}

			return o.emit(cmd, func() (any, error) {
				salary, err := engine.New(nil).InverseNetIncome(target, deductibles, cfg)
				if err != nil {
					return nil, err
				}
				return &grossResult{Year: cfg.Year(), NetIncome: target, Deductibles: deductibles, Salary: salary}, nil
			}, func(w io.Writer, result any) error {
				r := result.(*grossResult)
				_, err := fmt.Fprintf(w, "Gross salary (%d) for net %.2f: %.0f\n", r.Year, r.NetIncome, r.Salary)
				return err
			})
		},
	}

	cmd.Flags().Float64Var(&deductibles, "deductibles", 0, "additional tax deductibles")
	return cmd
}
