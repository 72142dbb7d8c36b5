package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"netto-engine/internal/engine"
	"netto-engine/internal/model"
)

func newNetCommand(o *rootOptions) *cobra.Command {
	var (
		deductibles float64
		verbose     bool
		monthly     bool
	)

	cmd := &cobra.Command{
		Use:   "net <salary>",
		Short: "Net income for a yearly gross salary",
		Example: `  netto net 50000
  netto net 50000 --deductibles 10000 --verbose
  netto net 60000 --year 2025 --married --children --church-tax 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			salary, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			cfg, err := o.taxConfig(cmd)
			if err != nil {
				return err
			}

			var yearly *model.Breakdown
			return o.emit(cmd, func() (any, error) {
				b, err := engine.New(nil).Calculate(salary, deductibles, cfg)
				if err != nil {
					return nil, err
				}
				yearly = b
				if monthly {
					return b.Monthly(), nil
				}
				return b, nil
			}, func(w io.Writer, result any) error {
				if verbose {
					if err := engine.WriteReport(w, yearly); err != nil {
						return err
					}
				}
				b := result.(*model.Breakdown)
				period := "yearly"
				if monthly {
					period = "monthly"
				}
				_, err := fmt.Fprintf(w, "Net income (%d, %s): %.2f\n", b.Year, period, b.NetIncome)
				return err
			})
		},
	}

	cmd.Flags().Float64Var(&deductibles, "deductibles", 0, "additional tax deductibles")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the yearly evaluation")
	cmd.Flags().BoolVar(&monthly, "monthly", false, "report amounts per month")
	return cmd
}
