// Package cli implements the netto command line.
package cli

import (
	"fmt"
	"io"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"netto-engine/internal/config"
	"netto-engine/internal/engine"
	"netto-engine/internal/model"
)

var log = logrus.WithField("module", "cli")

const (
	outputText = "text"
	outputJSON = "json"
)

type rootOptions struct {
	year        int
	married     bool
	children    bool
	extraHealth float64
	churchTax   float64
	profile     string
	logLevel    string
	output      string
}

func NewRootCommand() *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "netto",
		Short: "German net income calculator",
		Long: `netto computes German net income from a yearly gross salary, and the
gross salary needed for a target net income.

Tax settings are read from the environment (YEAR, IS_MARRIED, HAS_CHILDREN,
EXTRA_HEALTH_INSURANCE, CHURCH_TAX, also from .env), then from --profile,
then from flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logrus.ParseLevel(o.logLevel)
			if err != nil {
				return err
			}
			logrus.SetLevel(level)
			if o.output != outputText && o.output != outputJSON {
				return fmt.Errorf("unknown output format %q", o.output)
			}
			return nil
		},
	}

	f := cmd.PersistentFlags()
	f.IntVar(&o.year, "year", model.DefaultYear, "tax year")
	f.BoolVar(&o.married, "married", false, "joint assessment with income splitting")
	f.BoolVar(&o.children, "children", false, "has children (no nursing surcharge)")
	f.Float64Var(&o.extraHealth, "extra-health", model.DefaultExtraHealthInsurance, "extra health insurance rate")
	f.Float64Var(&o.churchTax, "church-tax", model.DefaultChurchTax, "church tax rate, 0 for none")
	f.StringVar(&o.profile, "profile", "", "YAML tax profile")
	f.StringVar(&o.logLevel, "log-level", "warning", "log level")
	f.StringVarP(&o.output, "output", "o", outputText, "output format: text or json")

	cmd.AddCommand(
		newNetCommand(o),
		newGrossCommand(o),
		newCompareCommand(o),
		newTablesCommand(o),
	)
	return cmd
}

func Execute() error {
	return NewRootCommand().Execute()
}

// taxConfig layers environment, profile and explicitly set flags.
func (o *rootOptions) taxConfig(cmd *cobra.Command) (model.TaxConfig, error) {
	var opts []model.Option
	if o.profile != "" {
		p, err := config.LoadProfile(o.profile)
		if err != nil {
			return model.TaxConfig{}, err
		}
		opts = append(opts, p.Options()...)
	}

	flags := cmd.Flags()
	if flags.Changed("year") {
		opts = append(opts, model.WithYear(o.year))
	}
	if flags.Changed("married") {
		opts = append(opts, model.WithMarried(o.married))
	}
	if flags.Changed("children") {
		opts = append(opts, model.WithChildren(o.children))
	}
	if flags.Changed("extra-health") {
		opts = append(opts, model.WithExtraHealthInsurance(o.extraHealth))
	}
	if flags.Changed("church-tax") {
		opts = append(opts, model.WithChurchTax(o.churchTax))
	}
	cfg, err := config.FromEnv(opts...)
	if err != nil {
		return model.TaxConfig{}, err
	}
	log.Debugf("tax config: %+v", cfg)
	return cfg, nil
}

// emit runs fn and prints its result with text, or as a JSON calculation
// response when --output json is set.
func (o *rootOptions) emit(cmd *cobra.Command, fn func() (any, error), text func(w io.Writer, result any) error) error {
	w := cmd.OutOrStdout()
	if o.output == outputText {
		result, err := fn()
		if err != nil {
			return err
		}
		return text(w, result)
	}

	var runErr error
	resp := engine.Run(cmd.CommandPath(), func() (any, error) {
		result, err := fn()
		runErr = err
		return result, err
	})
	if err := writeJSON(w, resp); err != nil {
		return err
	}
	return runErr
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", model.ErrInvalidAmount, s)
	}
	return v, nil
}
