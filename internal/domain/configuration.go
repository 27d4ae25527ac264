package domain

import "github.com/shopspring/decimal"

// Configuration represents the complete input configuration
type Configuration struct {
	// ReferenceYear is the "current" year ages and spans are measured against.
	// Zero means the year the program runs in.
	ReferenceYear int             `yaml:"reference_year" json:"reference_year"`
	WageIndex     WageIndexSource `yaml:"wage_index" json:"wage_index"`
	// Statement is the path of an SSA statement export.
	Statement    string            `yaml:"statement,omitempty" json:"statement,omitempty"`
	Projection   *ProjectionConfig `yaml:"projection,omitempty" json:"projection,omitempty"`
	Future       FutureEarnings    `yaml:"future" json:"future"`
	Averaging    string            `yaml:"averaging" json:"averaging"`
	OutputFormat string            `yaml:"output_format" json:"output_format"`
}

// WageIndexSource selects and optionally extends the wage index table.
type WageIndexSource struct {
	// File overrides the built-in series with a CSV or YAML file.
	File          string          `yaml:"file,omitempty" json:"file,omitempty"`
	ExtendThrough int             `yaml:"extend_through,omitempty" json:"extend_through,omitempty"`
	GrowthRate    decimal.Decimal `yaml:"growth_rate,omitempty" json:"growth_rate,omitempty"`
}

// ProjectionConfig is the known anchor for back-projecting early-career earnings.
type ProjectionConfig struct {
	Age               int             `yaml:"age,omitempty" json:"age,omitempty"`
	BirthDate         string          `yaml:"birth_date,omitempty" json:"birth_date,omitempty"`
	LastWage          decimal.Decimal `yaml:"last_wage" json:"last_wage"`
	LastYearWorked    int             `yaml:"last_year_worked,omitempty" json:"last_year_worked,omitempty"`
	EarningGrowthRate decimal.Decimal `yaml:"earning_growth_rate,omitempty" json:"earning_growth_rate,omitempty"`
}

// FutureEarnings compounds the latest known wage forward.
type FutureEarnings struct {
	Years      int             `yaml:"years,omitempty" json:"years,omitempty"`
	GrowthRate decimal.Decimal `yaml:"growth_rate,omitempty" json:"growth_rate,omitempty"`
}
