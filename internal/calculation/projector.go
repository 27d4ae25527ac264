package calculation

import (
	"fmt"

	"github.com/rpgo/ssbenefit/internal/domain"
	"github.com/shopspring/decimal"
)

// Early-career back-projection constants.
const (
	// WorkStartAge is the age at which the projected working life begins.
	WorkStartAge = 18
	// YouthFactorAge is the age at which the youth step-down is applied.
	YouthFactorAge = 21
	// YouthFactor divides the projected wage once, in the year the subject turned YouthFactorAge.
	YouthFactor = 8
	// MinimumProjectionAge is exclusive: projections need an age above it.
	MinimumProjectionAge = 22
)

// NearTermGrowth is the fixed ratio between the wage of the year before the
// reference year and the reference-year wage. The index for that year is
// usually not yet published when an estimate is made.
var NearTermGrowth = decimal.RequireFromString("0.96")

// ProjectionInput is the known anchor point of a back-projection.
type ProjectionInput struct {
	// Age is the subject's age in the reference year.
	Age int
	// LastWage is the wage earned in LastYearWorked.
	LastWage decimal.Decimal
	// LastYearWorked defaults to the reference year when zero.
	LastYearWorked int
	// EarningGrowthRate is a personal real growth assumption applied on top of the wage index.
	EarningGrowthRate decimal.Decimal
}

// EarningsProjector extrapolates a full working-life earnings record backward
// from one known wage. It is read-only after construction and safe for
// concurrent use.
type EarningsProjector struct {
	table         domain.WageIndexTable
	referenceYear int
	Logger        Logger
}

// NewEarningsProjector creates a projector against a wage index table and an explicit reference year.
func NewEarningsProjector(table domain.WageIndexTable, referenceYear int) *EarningsProjector {
	return &EarningsProjector{
		table:         table,
		referenceYear: referenceYear,
		Logger:        NopLogger{},
	}
}

// ReferenceYear returns the year ages and work spans are measured against.
func (p *EarningsProjector) ReferenceYear() int { return p.referenceYear }

// WorkStartYear is the first year of the projected working life.
func (p *EarningsProjector) WorkStartYear(age int) int {
	return p.referenceYear - age + WorkStartAge
}

// YouthYear is the single year that receives the youth step-down.
func (p *EarningsProjector) YouthYear(age int) int {
	return p.referenceYear - age + YouthFactorAge
}

// Project builds the earnings record for [WorkStartYear, LastYearWorked].
func (p *EarningsProjector) Project(in ProjectionInput) (domain.Wages, error) {
	logger := loggerOrNop(p.Logger)

	if in.Age <= MinimumProjectionAge {
		return nil, fmt.Errorf("%w: age must be greater than %d, got %d", domain.ErrInvalidArgument, MinimumProjectionAge, in.Age)
	}
	lastYear := in.LastYearWorked
	if lastYear == 0 {
		lastYear = p.referenceYear
	}
	if lastYear > p.referenceYear {
		return nil, fmt.Errorf("%w: last year worked %d cannot be after reference year %d", domain.ErrInvalidArgument, lastYear, p.referenceYear)
	}

	startYear := p.WorkStartYear(in.Age)
	youthYear := p.YouthYear(in.Age)
	growth := decimal.NewFromInt(1).Add(in.EarningGrowthRate)
	if growth.IsZero() {
		return nil, fmt.Errorf("%w: earning growth rate cannot be -100%%", domain.ErrInvalidArgument)
	}

	logger.Debugf("projecting earnings %d..%d from %s (youth year %d)", startYear, lastYear, in.LastWage.StringFixed(2), youthYear)

	// The anchor's own factor is never applied, but the reference-year case
	// still validates that the previous year's index is present.
	if lastYear == p.referenceYear {
		if _, err := p.reductionFactor(lastYear); err != nil {
			return nil, err
		}
	}

	size := lastYear - startYear + 1
	if size < 1 {
		size = 1
	}
	wages := make(domain.Wages, size)
	wages[lastYear] = in.LastWage
	for year := lastYear - 1; year >= startYear; year-- {
		factor, err := p.reductionFactor(year)
		if err != nil {
			return nil, err
		}
		wage := wages[year+1].Mul(factor.Div(growth))
		if year == youthYear {
			wage = wage.Div(decimal.NewFromInt(YouthFactor))
		}
		wages[year] = wage
	}
	return wages, nil
}

// reductionFactor is the ratio between a year's wage and the following year's.
func (p *EarningsProjector) reductionFactor(year int) (decimal.Decimal, error) {
	switch year {
	case p.referenceYear:
		if _, ok := p.table[p.referenceYear-1]; !ok {
			return decimal.Zero, fmt.Errorf("%w: wage index for previous year is required (%d)", domain.ErrMissingData, p.referenceYear-1)
		}
		return decimal.NewFromInt(1), nil
	case p.referenceYear - 1:
		return NearTermGrowth, nil
	}

	current, ok := p.table[year]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: wage index for %d is required", domain.ErrMissingData, year)
	}
	next, ok := p.table[year+1]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: wage index for %d is required", domain.ErrMissingData, year+1)
	}
	return current.Div(next), nil
}
