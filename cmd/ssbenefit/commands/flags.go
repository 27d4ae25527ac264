package commands

import (
	"fmt"

	"github.com/rpgo/ssbenefit/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// decimalValue lets a decimal.Decimal be bound as a flag.
type decimalValue struct{ d *decimal.Decimal }

func (v decimalValue) String() string {
	if v.d == nil {
		return "0"
	}
	return v.d.String()
}

func (v decimalValue) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid decimal %q", s)
	}
	*v.d = d
	return nil
}

func (v decimalValue) Type() string { return "decimal" }

// indexFlags select the wage index table.
type indexFlags struct {
	file          string
	extendThrough int
	growth        decimal.Decimal
}

func (f *indexFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.file, "wage-index", "", "wage index CSV or YAML file (default: built-in series)")
	fs.IntVar(&f.extendThrough, "extend-through", 0, "extend the wage index through this year")
	fs.Var(decimalValue{&f.growth}, "index-growth", "annual growth used to extend the wage index, e.g. 0.03")
}

func (f *indexFlags) apply(cmd *cobra.Command, src *domain.WageIndexSource) {
	fs := cmd.Flags()
	if fs.Changed("wage-index") {
		src.File = f.file
	}
	if fs.Changed("extend-through") {
		src.ExtendThrough = f.extendThrough
	}
	if fs.Changed("index-growth") {
		src.GrowthRate = f.growth
	}
}

// projectionFlags describe the known anchor wage for back-projection.
type projectionFlags struct {
	age       int
	birthDate string
	lastWage  decimal.Decimal
	lastYear  int
	growth    decimal.Decimal
}

var projectionFlagNames = []string{"age", "birth-date", "last-wage", "last-year", "earning-growth"}

func (f *projectionFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.age, "age", 0, "age at the end of the reference year")
	fs.StringVar(&f.birthDate, "birth-date", "", "birth date (YYYY-MM-DD), instead of --age")
	fs.Var(decimalValue{&f.lastWage}, "last-wage", "wage in the last year worked")
	fs.IntVar(&f.lastYear, "last-year", 0, "last year worked (default: reference year)")
	fs.Var(decimalValue{&f.growth}, "earning-growth", "personal earnings growth above the wage index, e.g. 0.01")
}

func (f *projectionFlags) apply(cmd *cobra.Command, cfg *domain.Configuration) {
	fs := cmd.Flags()
	changed := false
	for _, name := range projectionFlagNames {
		changed = changed || fs.Changed(name)
	}
	if !changed {
		return
	}
	if cfg.Projection == nil {
		cfg.Projection = &domain.ProjectionConfig{}
	}
	p := cfg.Projection
	if fs.Changed("age") {
		p.Age, p.BirthDate = f.age, ""
	}
	if fs.Changed("birth-date") {
		p.BirthDate, p.Age = f.birthDate, 0
	}
	if fs.Changed("last-wage") {
		p.LastWage = f.lastWage
	}
	if fs.Changed("last-year") {
		p.LastYearWorked = f.lastYear
	}
	if fs.Changed("earning-growth") {
		p.EarningGrowthRate = f.growth
	}
}
