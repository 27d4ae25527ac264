package calculation

import (
	"fmt"

	"github.com/rpgo/ssbenefit/internal/domain"
	"github.com/shopspring/decimal"
)

// EstimateRequest describes the earnings sources for one estimate.
type EstimateRequest struct {
	// Statement is the reported earnings record; it may be empty when the
	// estimate is built from a projection alone.
	Statement domain.Wages
	// Projection back-projects early-career earnings to fill statement gaps.
	Projection *ProjectionInput
	// FutureYears compounds the latest known wage forward at FutureGrowthRate.
	FutureYears      int
	FutureGrowthRate decimal.Decimal
}

// Estimate is the outcome of a request: the merged earnings record and the benefit it yields.
type Estimate struct {
	Earnings  domain.Wages    `json:"earnings"`
	Statement domain.Wages    `json:"statement,omitempty"`
	Projected domain.Wages    `json:"projected,omitempty"`
	Future    domain.Wages    `json:"future,omitempty"`
	Results   *domain.Results `json:"results"`
}

// Source reports where the merged value for year came from: "statement",
// "projected", "future", or "" when the year is not in the record.
func (e *Estimate) Source(year int) string {
	switch {
	case hasYear(e.Statement, year):
		return "statement"
	case hasYear(e.Future, year):
		return "future"
	case hasYear(e.Projected, year):
		return "projected"
	default:
		return ""
	}
}

func hasYear(w domain.Wages, year int) bool {
	_, ok := w[year]
	return ok
}

// CalculationEngine wires the projector and the calculator together for a
// fixed wage index table and reference year.
type CalculationEngine struct {
	Table         domain.WageIndexTable
	ReferenceYear int
	Averaging     AveragingPolicy
	Logger        Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine(table domain.WageIndexTable, referenceYear int) *CalculationEngine {
	return &CalculationEngine{
		Table:         table,
		ReferenceYear: referenceYear,
		Averaging:     FixedDivisor,
		Logger:        NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	ce.Logger = loggerOrNop(l)
}

// Projector returns an EarningsProjector sharing the engine's table, reference year and logger.
func (ce *CalculationEngine) Projector() *EarningsProjector {
	p := NewEarningsProjector(ce.Table, ce.ReferenceYear)
	p.Logger = loggerOrNop(ce.Logger)
	return p
}

// Calculator returns a BenefitCalculator sharing the engine's table, policy and logger.
func (ce *CalculationEngine) Calculator() *BenefitCalculator {
	return NewBenefitCalculator(ce.Table, WithAveraging(ce.Averaging), WithLogger(ce.Logger))
}

// RunEstimate merges the requested earnings sources and calculates the benefit.
func (ce *CalculationEngine) RunEstimate(req EstimateRequest) (*Estimate, error) {
	logger := loggerOrNop(ce.Logger)
	est := &Estimate{Earnings: req.Statement.Clone(), Statement: req.Statement.Clone()}

	if req.Projection != nil {
		projected, err := ce.Projector().Project(*req.Projection)
		if err != nil {
			return nil, fmt.Errorf("failed to project earnings: %w", err)
		}
		est.Projected = projected
		est.Earnings = MergeEarnings(est.Earnings, projected)
		logger.Infof("projected %d earnings years, %d after merge", len(projected), len(est.Earnings))
	}

	if req.FutureYears > 0 {
		future, err := ProjectForward(est.Earnings, req.FutureYears, req.FutureGrowthRate)
		if err != nil {
			return nil, fmt.Errorf("failed to project future earnings: %w", err)
		}
		est.Future = future
		est.Earnings = MergeEarnings(est.Earnings, future)
		logger.Infof("added %d future earnings years", len(future))
	}

	if len(est.Earnings) == 0 {
		return nil, fmt.Errorf("%w: no earnings to estimate from", domain.ErrInvalidArgument)
	}

	results, err := ce.Calculator().Calculate(est.Earnings)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate benefit: %w", err)
	}
	est.Results = results
	return est, nil
}
