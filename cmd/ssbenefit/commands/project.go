package commands

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/rpgo/ssbenefit/internal/calculation"
	"github.com/rpgo/ssbenefit/internal/config"
	"github.com/rpgo/ssbenefit/internal/domain"
	"github.com/spf13/cobra"
)

func projectCmd(a *app) *cobra.Command {
	var (
		index         indexFlags
		projection    projectionFlags
		referenceYear int
		asCSV         bool
	)

	cmd := &cobra.Command{
		Use:     "project",
		Short:   "Back-project early-career earnings from a known wage",
		Example: fmt.Sprintf("  ssbenefit project --age 40 --last-wage 100000 --earning-growth 0.01 --extend-through %d --index-growth %s",
			config.CurrentYear()-1, config.ExampleIndexGrowth),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			cfg, err := a.loadConfiguration()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("reference-year") {
				cfg.ReferenceYear = referenceYear
			}
			index.apply(cmd, &cfg.WageIndex)
			projection.apply(cmd, cfg)
			parser.ApplyDefaults(cfg)
			if cfg.Projection == nil {
				return fmt.Errorf("%w: --age or --birth-date and --last-wage are required", domain.ErrInvalidArgument)
			}
			if err := parser.ValidateConfiguration(cfg); err != nil {
				return err
			}

			table, err := config.LoadWageIndex(cfg.WageIndex)
			if err != nil {
				return err
			}
			in, err := config.ProjectionInput(cfg.Projection, cfg.ReferenceYear)
			if err != nil {
				return err
			}
			if err := config.RequireIndexCoverage(table, in, cfg.ReferenceYear); err != nil {
				return err
			}

			projector := calculation.NewEarningsProjector(table, cfg.ReferenceYear)
			projector.Logger = a.sugar()
			wages, err := projector.Project(in)
			if err != nil {
				return err
			}

			if asCSV {
				data, err := wagesCSV(wages)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			out := cmd.OutOrStdout()
			for _, year := range wages.Years() {
				fmt.Fprintf(out, "%d %12s\n", year, wages[year].StringFixed(2))
			}
			fmt.Fprintf(out, "Total %10s\n", wages.Total().StringFixed(2))
			return nil
		},
	}

	cmd.Flags().IntVar(&referenceYear, "reference-year", 0, "year ages and spans are measured against (default: current year)")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "print Year,Earnings CSV")
	index.bind(cmd)
	projection.bind(cmd)
	return cmd
}

func wagesCSV(wages domain.Wages) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Year", "Earnings"}); err != nil {
		return nil, err
	}
	for _, year := range wages.Years() {
		if err := w.Write([]string{strconv.Itoa(year), wages[year].StringFixed(2)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
