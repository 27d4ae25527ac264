package commands

import (
	"fmt"
	"strings"

	"github.com/rpgo/ssbenefit/internal/calculation"
	"github.com/rpgo/ssbenefit/internal/config"
	"github.com/rpgo/ssbenefit/internal/output"
	"github.com/rpgo/ssbenefit/internal/statement"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func estimateCmd(a *app) *cobra.Command {
	var (
		index         indexFlags
		projection    projectionFlags
		referenceYear int
		statementPath string
		futureYears   int
		futureGrowth  decimal.Decimal
		averaging     string
		format        string
		outputPath    string
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the monthly retirement benefit",
		Example: fmt.Sprintf(`  ssbenefit estimate --statement Your_Social_Security_Statement_Data.xml
  ssbenefit estimate --age 40 --last-wage 85000 --future-years 20 --future-growth 0.02 \
    --extend-through %d --index-growth %s
  ssbenefit estimate --config ssbenefit.yaml --format json --output estimate.json`,
			config.CurrentYear()-1, config.ExampleIndexGrowth),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := a.sugar()
			parser := config.NewInputParser()

			cfg, err := a.loadConfiguration()
			if err != nil {
				return err
			}
			fs := cmd.Flags()
			if fs.Changed("reference-year") {
				cfg.ReferenceYear = referenceYear
			}
			if fs.Changed("statement") {
				cfg.Statement = statementPath
			}
			if fs.Changed("future-years") {
				cfg.Future.Years = futureYears
			}
			if fs.Changed("future-growth") {
				cfg.Future.GrowthRate = futureGrowth
			}
			if fs.Changed("averaging") {
				cfg.Averaging = averaging
			}
			if fs.Changed("format") {
				cfg.OutputFormat = format
			}
			index.apply(cmd, &cfg.WageIndex)
			projection.apply(cmd, cfg)
			parser.ApplyDefaults(cfg)

			report := &output.Report{ReferenceYear: cfg.ReferenceYear}
			var req calculation.EstimateRequest
			if cfg.Statement != "" {
				st, err := statement.ParseFile(cfg.Statement)
				if err != nil {
					return err
				}
				log.Infow("read statement", "path", cfg.Statement, "years", len(st.Earnings))
				req.Statement = st.Earnings
				report.Name = st.Name
				if st.HasDateOfBirth() {
					report.DateOfBirth = st.DateOfBirth
				}
			}
			// A projection without an age borrows the statement's birth date.
			if p := cfg.Projection; p != nil && p.Age == 0 && p.BirthDate == "" && report.HasDateOfBirth() {
				p.BirthDate = report.DateOfBirth.Format("2006-01-02")
			}

			if err := parser.ValidateConfiguration(cfg); err != nil {
				return err
			}
			formatter, err := output.LookupFormatter(cfg.OutputFormat)
			if err != nil {
				return err
			}

			table, err := config.LoadWageIndex(cfg.WageIndex)
			if err != nil {
				return err
			}
			if cfg.Projection != nil {
				in, err := config.ProjectionInput(cfg.Projection, cfg.ReferenceYear)
				if err != nil {
					return err
				}
				if err := config.RequireIndexCoverage(table, in, cfg.ReferenceYear); err != nil {
					return err
				}
				req.Projection = &in
			}
			req.FutureYears = cfg.Future.Years
			req.FutureGrowthRate = cfg.Future.GrowthRate

			policy, err := calculation.ParseAveragingPolicy(cfg.Averaging)
			if err != nil {
				return err
			}
			engine := calculation.NewCalculationEngine(table, cfg.ReferenceYear)
			engine.Averaging = policy
			engine.SetLogger(log)

			est, err := engine.RunEstimate(req)
			if err != nil {
				return err
			}
			report.Estimate = est

			if outputPath != "" {
				if err := output.WriteFile(formatter, report, outputPath); err != nil {
					return err
				}
				log.Infow("wrote report", "path", outputPath, "format", formatter.Name())
				return nil
			}
			return output.WriteFormatted(cmd.OutOrStdout(), formatter, report)
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&referenceYear, "reference-year", 0, "year ages and spans are measured against (default: current year)")
	fs.StringVarP(&statementPath, "statement", "s", "", "SSA statement XML export")
	fs.IntVar(&futureYears, "future-years", 0, "years of future earnings to add after the latest year")
	fs.Var(decimalValue{&futureGrowth}, "future-growth", "annual growth of future earnings, e.g. 0.02")
	fs.StringVar(&averaging, "averaging", "", "short-history averaging: fixed-divisor or available-years")
	fs.StringVarP(&format, "format", "f", "", "output format: "+formatList())
	fs.StringVarP(&outputPath, "output", "o", "", "write the report to this file instead of stdout")
	index.bind(cmd)
	projection.bind(cmd)
	return cmd
}

func formatList() string {
	return strings.Join(output.AvailableFormatterNames(), ", ")
}
