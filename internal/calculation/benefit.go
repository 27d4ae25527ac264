package calculation

import (
	"fmt"
	"sort"

	"github.com/rpgo/ssbenefit/internal/domain"
	money "github.com/rpgo/ssbenefit/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Benefit formula constants.
const (
	// LookbackYears is the number of highest indexed earnings years averaged into AIME.
	LookbackYears = 35
	// MonthsPerYear converts annual sums into monthly averages.
	MonthsPerYear = 12
)

var (
	// bendPointBaseWage is the 1977 national average wage the statutory bend points are scaled from.
	bendPointBaseWage         = decimal.RequireFromString("9779.44")
	firstBendPointMultiplier  = decimal.NewFromInt(180)
	secondBendPointMultiplier = decimal.NewFromInt(1085)

	firstTierRate  = decimal.RequireFromString("0.9")
	secondTierRate = decimal.RequireFromString("0.32")
	thirdTierRate  = decimal.RequireFromString("0.15")

	// EarlyRetirementFactor is the worst-case (claim at 62) reduction applied to the normal benefit.
	EarlyRetirementFactor = decimal.RequireFromString("0.7")
)

// AveragingPolicy decides the AIME divisor when a record has fewer than LookbackYears years.
type AveragingPolicy string

const (
	// FixedDivisor always divides by 420 months; missing years count as zero earnings.
	FixedDivisor AveragingPolicy = "fixed-divisor"
	// AvailableYears divides by 12 months for each year actually present, up to 35.
	AvailableYears AveragingPolicy = "available-years"
)

// ParseAveragingPolicy resolves a policy name; empty means FixedDivisor.
func ParseAveragingPolicy(name string) (AveragingPolicy, error) {
	switch AveragingPolicy(name) {
	case "", FixedDivisor:
		return FixedDivisor, nil
	case AvailableYears:
		return AvailableYears, nil
	}
	return "", fmt.Errorf("%w: unknown averaging policy %q (want %q or %q)", domain.ErrInvalidArgument, name, FixedDivisor, AvailableYears)
}

// CalculatorOption configures a BenefitCalculator.
type CalculatorOption func(*BenefitCalculator)

// WithAveraging sets the short-history policy.
func WithAveraging(policy AveragingPolicy) CalculatorOption {
	return func(bc *BenefitCalculator) { bc.averaging = policy }
}

// WithLogger sets the calculator's logger. A nil logger disables logging.
func WithLogger(l Logger) CalculatorOption {
	return func(bc *BenefitCalculator) { bc.Logger = loggerOrNop(l) }
}

// BenefitCalculator turns an earnings record into a benefit estimate using the
// wage index, the top 35 indexed years and the bend-point formula. It is
// read-only after construction and safe for concurrent use.
type BenefitCalculator struct {
	table     domain.WageIndexTable
	averaging AveragingPolicy
	Logger    Logger
}

// NewBenefitCalculator creates a calculator against a wage index table.
func NewBenefitCalculator(table domain.WageIndexTable, opts ...CalculatorOption) *BenefitCalculator {
	bc := &BenefitCalculator{
		table:     table,
		averaging: FixedDivisor,
		Logger:    NopLogger{},
	}
	for _, opt := range opts {
		opt(bc)
	}
	return bc
}

// Averaging returns the configured short-history policy.
func (bc *BenefitCalculator) Averaging() AveragingPolicy { return bc.averaging }

// BendPoints derives the bend points from the latest wage index year.
func (bc *BenefitCalculator) BendPoints() (domain.BendPoints, int, error) {
	indexYear, ok := bc.table.Latest()
	if !ok {
		return domain.BendPoints{}, 0, fmt.Errorf("%w: wage index table is empty", domain.ErrMissingData)
	}
	base := bc.table[indexYear]
	return domain.BendPoints{
		First:  money.NewMoneyFromDecimal(firstBendPointMultiplier.Mul(base).Div(bendPointBaseWage)).RoundDollar(),
		Second: money.NewMoneyFromDecimal(secondBendPointMultiplier.Mul(base).Div(bendPointBaseWage)).RoundDollar(),
	}, indexYear, nil
}

// IndexFactors returns the factor that brings each table year's earnings to index-year terms.
func (bc *BenefitCalculator) IndexFactors() (map[int]decimal.Decimal, error) {
	indexYear, ok := bc.table.Latest()
	if !ok {
		return nil, fmt.Errorf("%w: wage index table is empty", domain.ErrMissingData)
	}
	return indexFactors(bc.table, indexYear), nil
}

func indexFactors(table domain.WageIndexTable, indexYear int) map[int]decimal.Decimal {
	base := table[indexYear]
	one := decimal.NewFromInt(1)
	factors := make(map[int]decimal.Decimal, len(table))
	for year, value := range table {
		factors[year] = one.Add(base.Sub(value).Div(value))
	}
	return factors
}

// AdjustEarnings indexes every year of a record. Years without an index
// entry, such as projected future years, pass through unscaled.
func (bc *BenefitCalculator) AdjustEarnings(earnings domain.Wages) (domain.Wages, error) {
	factors, err := bc.IndexFactors()
	if err != nil {
		return nil, err
	}
	return adjustEarnings(earnings, factors), nil
}

func adjustEarnings(earnings domain.Wages, factors map[int]decimal.Decimal) domain.Wages {
	adjusted := make(domain.Wages, len(earnings))
	for year, amount := range earnings {
		factor, ok := factors[year]
		if !ok {
			factor = decimal.NewFromInt(1)
		}
		adjusted[year] = amount.Mul(factor)
	}
	return adjusted
}

// topYearsSum sums the n largest values and reports how many were used.
func topYearsSum(adjusted domain.Wages, n int) (decimal.Decimal, int) {
	values := make([]decimal.Decimal, 0, len(adjusted))
	for _, v := range adjusted {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool { return values[i].GreaterThan(values[j]) })
	if len(values) > n {
		values = values[:n]
	}
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(v)
	}
	return sum, len(values)
}

func (bc *BenefitCalculator) aimeDivisor(yearsCounted int) decimal.Decimal {
	years := LookbackYears
	if bc.averaging == AvailableYears && yearsCounted > 0 && yearsCounted < LookbackYears {
		years = yearsCounted
	}
	return decimal.NewFromInt(int64(MonthsPerYear * years))
}

// firstTier, secondTier and thirdTier are the three segments of the benefit
// formula, evaluated on earnings totals rather than on AIME: every term is
// scaled by the AIME divisor so that the only inexact step is the final
// division. Adjacent segments agree at the shared bend point.
func firstTier(total, _ decimal.Decimal, _ domain.BendPoints) decimal.Decimal {
	return firstTierRate.Mul(total)
}

func secondTier(total, divisor decimal.Decimal, bp domain.BendPoints) decimal.Decimal {
	first := bp.First.Decimal.Mul(divisor)
	return firstTierRate.Mul(first).
		Add(secondTierRate.Mul(total.Sub(first)))
}

func thirdTier(total, divisor decimal.Decimal, bp domain.BendPoints) decimal.Decimal {
	first := bp.First.Decimal.Mul(divisor)
	second := bp.Second.Decimal.Mul(divisor)
	return firstTierRate.Mul(first).
		Add(secondTierRate.Mul(second.Sub(first))).
		Add(thirdTierRate.Mul(total.Sub(second)))
}

// scaledBenefit is the raw monthly benefit multiplied by divisor.
func scaledBenefit(total, divisor decimal.Decimal, bp domain.BendPoints) decimal.Decimal {
	switch {
	case total.LessThanOrEqual(bp.First.Decimal.Mul(divisor)):
		return firstTier(total, divisor, bp)
	case total.LessThanOrEqual(bp.Second.Decimal.Mul(divisor)):
		return secondTier(total, divisor, bp)
	default:
		return thirdTier(total, divisor, bp)
	}
}

// PrimaryInsuranceAmount is the untruncated monthly benefit for an AIME.
func PrimaryInsuranceAmount(aime decimal.Decimal, bp domain.BendPoints) decimal.Decimal {
	return scaledBenefit(aime, decimal.NewFromInt(1), bp)
}

// ReducedBenefit applies the early-retirement factor and truncates to the dime.
func ReducedBenefit(normal money.Money) money.Money {
	return normal.Mul(EarlyRetirementFactor).FloorDime()
}

// Calculate produces the benefit estimate for an earnings record.
func (bc *BenefitCalculator) Calculate(earnings domain.Wages) (*domain.Results, error) {
	logger := loggerOrNop(bc.Logger)

	bp, indexYear, err := bc.BendPoints()
	if err != nil {
		return nil, err
	}
	adjusted := adjustEarnings(earnings, indexFactors(bc.table, indexYear))
	top35, counted := topYearsSum(adjusted, LookbackYears)
	if counted < LookbackYears {
		logger.Warnf("earnings record has %d years, fewer than %d; averaging policy %s", counted, LookbackYears, bc.averaging)
	}

	divisor := bc.aimeDivisor(counted)
	aime := top35.Div(divisor)
	normal := money.NewMoneyFromDecimal(scaledBenefit(top35, divisor, bp).Div(divisor)).FloorDime()
	reduced := ReducedBenefit(normal)

	logger.Debugf("index year %d, bend points %s/%s, AIME %s, normal %s", indexYear, bp.First, bp.Second, aime.StringFixed(2), normal)

	return &domain.Results{
		Top35YearsEarnings:    money.NewMoneyFromDecimal(top35),
		AIME:                  money.NewMoneyFromDecimal(aime),
		FirstBendPoint:        bp.First,
		SecondBendPoint:       bp.Second,
		NormalMonthlyBenefit:  normal,
		NormalAnnualBenefit:   normal.Annual(),
		ReducedMonthlyBenefit: reduced,
		ReducedAnnualBenefit:  reduced.Annual(),
		IndexYear:             indexYear,
		YearsCounted:          counted,
	}, nil
}
