package calculation

import (
	"fmt"

	"github.com/rpgo/ssbenefit/internal/domain"
	"github.com/shopspring/decimal"
)

// MergeEarnings fills the years missing from base with values from fill.
// Years present in base always win; neither input is modified.
func MergeEarnings(base, fill domain.Wages) domain.Wages {
	merged := make(domain.Wages, len(base)+len(fill))
	for year, amount := range fill {
		merged[year] = amount
	}
	for year, amount := range base {
		merged[year] = amount
	}
	return merged
}

// ProjectForward compounds the latest wage in earnings for the given number of
// future years at rate, rounding each projected year to whole dollars. The
// returned record holds only the projected years.
func ProjectForward(earnings domain.Wages, years int, rate decimal.Decimal) (domain.Wages, error) {
	if years < 0 {
		return nil, fmt.Errorf("%w: future years cannot be negative, got %d", domain.ErrInvalidArgument, years)
	}
	projected := make(domain.Wages, years)
	if years == 0 {
		return projected, nil
	}

	yearsPresent := earnings.Years()
	if len(yearsPresent) == 0 {
		return nil, fmt.Errorf("%w: no earnings to project forward from", domain.ErrInvalidArgument)
	}
	last := yearsPresent[len(yearsPresent)-1]

	growth := decimal.NewFromInt(1).Add(rate)
	current := earnings[last]
	for i := 1; i <= years; i++ {
		current = current.Mul(growth)
		projected[last+i] = current.Round(0)
	}
	return projected, nil
}
