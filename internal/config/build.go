package config

import (
	"fmt"

	"github.com/rpgo/ssbenefit/internal/calculation"
	"github.com/rpgo/ssbenefit/internal/domain"
	"github.com/rpgo/ssbenefit/internal/wageindex"
	"github.com/shopspring/decimal"
)

// ExampleIndexGrowth is the wage index growth the example configuration
// extends the published series with.
var ExampleIndexGrowth = decimal.RequireFromString("0.03")

// LoadWageIndex returns the table a configuration asks for: the built-in
// series or a file, optionally extended with projected values.
func LoadWageIndex(src domain.WageIndexSource) (domain.WageIndexTable, error) {
	table := wageindex.Default()
	if src.File != "" {
		loaded, err := wageindex.LoadFile(src.File)
		if err != nil {
			return nil, fmt.Errorf("failed to load wage index: %w", err)
		}
		table = loaded
	}

	if src.ExtendThrough > 0 {
		extended, err := wageindex.Extend(table, src.ExtendThrough, src.GrowthRate)
		if err != nil {
			return nil, fmt.Errorf("failed to extend wage index: %w", err)
		}
		table = extended
	}
	return table, nil
}

// RequireIndexCoverage reports, before projecting, whether table reaches the
// last year a back-projection from in reads. The error names the setting
// that extends the table.
func RequireIndexCoverage(table domain.WageIndexTable, in calculation.ProjectionInput, referenceYear int) error {
	needed := referenceYear - 1
	if in.LastYearWorked != 0 && in.LastYearWorked < needed {
		needed = in.LastYearWorked
	}
	latest, ok := table.Latest()
	if !ok {
		return fmt.Errorf("%w: wage index table is empty", domain.ErrMissingData)
	}
	if latest < needed {
		return fmt.Errorf("%w: wage index ends in %d but projecting to %d needs %d; set wage_index.extend_through (--extend-through %d) and growth_rate (--index-growth)",
			domain.ErrMissingData, latest, referenceYear, needed, needed)
	}
	return nil
}
