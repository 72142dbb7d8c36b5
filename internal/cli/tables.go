package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"netto-engine/internal/jsonpatch"
	"netto-engine/internal/model"
	"netto-engine/internal/ratetable"
)

type yearStatus struct {
	Year   int    `json:"year"`
	Status string `json:"status"`
}

func newTablesCommand(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Inspect the yearly rate tables",
	}
	cmd.AddCommand(
		newTablesListCommand(o),
		newTablesShowCommand(o),
		newTablesDiffCommand(o),
	)
	return cmd
}

func newTablesListCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every year and whether its tables are available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.emit(cmd, func() (any, error) {
				years := lo.RangeFrom(ratetable.FirstYear, ratetable.LastYear-ratetable.FirstYear+1)
				return lo.Map(years, func(year int, _ int) yearStatus {
					return yearStatus{Year: year, Status: ratetable.Default().Lookup(year).Status.String()}
				}), nil
			}, func(w io.Writer, result any) error {
				for _, s := range result.([]yearStatus) {
					fmt.Fprintf(w, "%d  %s\n", s.Year, s.Status)
				}
				return nil
			})
		},
	}
}

func newTablesShowCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <year>",
		Short: "Print the rate tables of a year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args[0])
			if err != nil {
				return err
			}
			return o.emit(cmd, func() (any, error) {
				return ratetable.Default().Tables(year)
			}, writeJSON)
		},
	}
}

func newTablesDiffCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <from> <to>",
		Short: "Print what changed between two years as a JSON Patch",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseYear(args[0])
			if err != nil {
				return err
			}
			to, err := parseYear(args[1])
			if err != nil {
				return err
			}
			return o.emit(cmd, func() (any, error) {
				a, err := ratetable.Default().Tables(from)
				if err != nil {
					return nil, err
				}
				b, err := ratetable.Default().Tables(to)
				if err != nil {
					return nil, err
				}
				ops, err := jsonpatch.DiffValues(a, b)
				if err != nil {
					return nil, err
				}
				if ops == nil {
					ops = []jsonpatch.Op{}
				}
				return ops, nil
			}, func(w io.Writer, result any) error {
				for _, op := range result.([]jsonpatch.Op) {
					if op.Value == nil {
						fmt.Fprintf(w, "%-8s %s\n", op.Op, op.Path)
						continue
					}
					fmt.Fprintf(w, "%-8s %s %s\n", op.Op, op.Path, op.Value)
				}
				return nil
			})
		},
	}
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, &model.ConfigError{Field: "year", Value: s, Reason: "must be a number"}
	}
	return year, nil
}
