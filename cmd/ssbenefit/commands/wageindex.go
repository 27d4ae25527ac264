package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rpgo/ssbenefit/internal/config"
	"github.com/rpgo/ssbenefit/internal/output"
	"github.com/rpgo/ssbenefit/internal/wageindex"
	"github.com/spf13/cobra"
)

func wageIndexCmd(a *app) *cobra.Command {
	var (
		index  indexFlags
		list   bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "wage-index",
		Short: "Summarize the national average wage index table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfiguration()
			if err != nil {
				return err
			}
			index.apply(cmd, &cfg.WageIndex)
			if err := config.NewInputParser().ValidateWageIndex(&cfg.WageIndex); err != nil {
				return err
			}
			table, err := config.LoadWageIndex(cfg.WageIndex)
			if err != nil {
				return err
			}
			summary := wageindex.Summarize(table)
			out := cmd.OutOrStdout()

			if asJSON {
				b, err := json.MarshalIndent(summary, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(b))
				return err
			}

			source := cfg.WageIndex.File
			if source == "" {
				source = wageindex.Source
			}
			fmt.Fprintf(out, "Source: %s\n", source)
			fmt.Fprintf(out, "Years: %d-%d (%d values)\n", summary.MinYear, summary.MaxYear, summary.Count)
			fmt.Fprintf(out, "Latest: %s\n", summary.Latest.StringFixed(2))
			fmt.Fprintf(out, "Mean growth: %s\n", output.FormatPercentage(summary.MeanGrowth))
			missing := "none"
			if len(summary.MissingYears) > 0 {
				years := make([]string, len(summary.MissingYears))
				for i, y := range summary.MissingYears {
					years[i] = fmt.Sprint(y)
				}
				missing = strings.Join(years, ", ")
			}
			fmt.Fprintf(out, "Missing years: %s\n", missing)

			if list {
				fmt.Fprintln(out)
				for _, year := range table.Years() {
					fmt.Fprintf(out, "%d %10s\n", year, table[year].StringFixed(2))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "list every year's value")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")
	index.bind(cmd)
	return cmd
}
