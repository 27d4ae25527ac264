package config

import (
	"fmt"
	"os"

	"github.com/rpgo/ssbenefit/internal/calculation"
	"github.com/rpgo/ssbenefit/internal/domain"
	"github.com/rpgo/ssbenefit/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	minReferenceYear = 1951
	maxReferenceYear = 2200
	maxFutureYears   = 60
	defaultFormat    = "console"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes, defaults and validates a YAML configuration.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.ApplyDefaults(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &config, nil
}

// ApplyDefaults fills the reference year from the clock and the formatting defaults.
func (ip *InputParser) ApplyDefaults(config *domain.Configuration) {
	if config.ReferenceYear == 0 {
		config.ReferenceYear = CurrentYear()
	}
	if config.Averaging == "" {
		config.Averaging = string(calculation.FixedDivisor)
	}
	if config.OutputFormat == "" {
		config.OutputFormat = defaultFormat
	}
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.ReferenceYear < minReferenceYear || config.ReferenceYear > maxReferenceYear {
		return invalid("reference year must be between %d and %d, got %d", minReferenceYear, maxReferenceYear, config.ReferenceYear)
	}

	if _, err := calculation.ParseAveragingPolicy(config.Averaging); err != nil {
		return err
	}

	if err := ip.ValidateWageIndex(&config.WageIndex); err != nil {
		return fmt.Errorf("wage_index: %w", err)
	}

	if config.Projection != nil {
		if err := ip.validateProjection(config.Projection, config.ReferenceYear); err != nil {
			return fmt.Errorf("projection: %w", err)
		}
	}

	if config.Future.Years < 0 || config.Future.Years > maxFutureYears {
		return invalid("future.years must be between 0 and %d", maxFutureYears)
	}
	if !rateAboveMinusOne(config.Future.GrowthRate) {
		return invalid("future.growth_rate must be greater than -100%%")
	}

	return nil
}

// ValidateWageIndex checks the wage index source settings.
func (ip *InputParser) ValidateWageIndex(src *domain.WageIndexSource) error {
	if src.ExtendThrough < 0 {
		return invalid("extend_through cannot be negative")
	}
	if !rateAboveMinusOne(src.GrowthRate) {
		return invalid("growth_rate must be greater than -100%%")
	}
	return nil
}

func (ip *InputParser) validateProjection(p *domain.ProjectionConfig, referenceYear int) error {
	if p.Age != 0 && p.BirthDate != "" {
		return invalid("specify either age or birth_date, not both")
	}
	age := p.Age
	if p.BirthDate != "" {
		birth, err := dateutil.ParseDate(p.BirthDate)
		if err != nil {
			return invalid("birth_date: %v", err)
		}
		age = dateutil.AgeInYear(birth, referenceYear)
	}
	if age <= calculation.MinimumProjectionAge {
		return invalid("age in %d must be greater than %d, got %d", referenceYear, calculation.MinimumProjectionAge, age)
	}
	if !p.LastWage.IsPositive() {
		return invalid("last_wage must be positive")
	}
	if p.LastYearWorked > referenceYear {
		return invalid("last_year_worked %d cannot be after reference year %d", p.LastYearWorked, referenceYear)
	}
	if !rateAboveMinusOne(p.EarningGrowthRate) {
		return invalid("earning_growth_rate must be greater than -100%%")
	}
	return nil
}

// ProjectionInput converts the projection block into the projector's input,
// resolving a birth date into an age in the reference year.
func ProjectionInput(p *domain.ProjectionConfig, referenceYear int) (calculation.ProjectionInput, error) {
	age := p.Age
	if p.BirthDate != "" {
		birth, err := dateutil.ParseDate(p.BirthDate)
		if err != nil {
			return calculation.ProjectionInput{}, invalid("birth_date: %v", err)
		}
		age = dateutil.AgeInYear(birth, referenceYear)
	}
	return calculation.ProjectionInput{
		Age:               age,
		LastWage:          p.LastWage,
		LastYearWorked:    p.LastYearWorked,
		EarningGrowthRate: p.EarningGrowthRate,
	}, nil
}

func rateAboveMinusOne(rate decimal.Decimal) bool {
	return rate.GreaterThan(decimal.NewFromInt(-1))
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// CreateExampleConfiguration creates an example configuration
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	year := CurrentYear()
	return &domain.Configuration{
		ReferenceYear: year,
		WageIndex: domain.WageIndexSource{
			ExtendThrough: year - 1,
			GrowthRate:    ExampleIndexGrowth,
		},
		Statement: "Your_Social_Security_Statement_Data.xml",
		Projection: &domain.ProjectionConfig{
			BirthDate:         "1980-06-15",
			LastWage:          decimal.NewFromInt(85000),
			EarningGrowthRate: decimal.NewFromFloat(0.01),
		},
		Future: domain.FutureEarnings{
			Years:      20,
			GrowthRate: decimal.NewFromFloat(0.02),
		},
		Averaging:    string(calculation.FixedDivisor),
		OutputFormat: defaultFormat,
	}
}

// MarshalExample renders the example configuration as YAML.
func (ip *InputParser) MarshalExample() ([]byte, error) {
	return yaml.Marshal(ip.CreateExampleConfiguration())
}
