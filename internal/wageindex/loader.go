package wageindex

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rpgo/ssbenefit/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// LoadFile loads a wage index table from a CSV or YAML file, chosen by extension.
func LoadFile(path string) (domain.WageIndexTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(file)
	case ".csv", "":
		return LoadCSV(file)
	default:
		return nil, fmt.Errorf("unsupported wage index file type %q", filepath.Ext(path))
	}
}

// LoadCSV reads "year,index" rows. The first row is a header; blank rows
// and rows starting with '#' are ignored.
func LoadCSV(r io.Reader) (domain.WageIndexTable, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1

	// Read header
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("invalid CSV format: expected at least 2 columns")
	}

	table := make(domain.WageIndexTable)
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read data row: %w", err)
		}
		line++

		if len(record) < 2 {
			return nil, fmt.Errorf("row %d: expected year and index value", line)
		}
		year, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid year %q", line, record[0])
		}
		value, err := decimal.NewFromString(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid index value %q", line, record[1])
		}
		if err := put(table, year, value); err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
	}

	if len(table) == 0 {
		return nil, fmt.Errorf("%w: no wage index values found", domain.ErrMissingData)
	}
	return table, nil
}

// LoadYAML reads a mapping of year to index value.
func LoadYAML(r io.Reader) (domain.WageIndexTable, error) {
	var raw map[int]decimal.Decimal
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: no wage index values found", domain.ErrMissingData)
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	table := make(domain.WageIndexTable, len(raw))
	for year, value := range raw {
		if err := put(table, year, value); err != nil {
			return nil, err
		}
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("%w: no wage index values found", domain.ErrMissingData)
	}
	return table, nil
}

func put(table domain.WageIndexTable, year int, value decimal.Decimal) error {
	if !value.IsPositive() {
		return fmt.Errorf("wage index for %d must be positive, got %s", year, value)
	}
	if _, dup := table[year]; dup {
		return fmt.Errorf("duplicate wage index for %d", year)
	}
	table[year] = value
	return nil
}

// Extend returns a copy of table with values projected from its latest year
// through throughYear, compounding at rate and rounding to cents.
func Extend(table domain.WageIndexTable, throughYear int, rate decimal.Decimal) (domain.WageIndexTable, error) {
	latest, ok := table.Latest()
	if !ok {
		return nil, fmt.Errorf("%w: cannot extend an empty wage index table", domain.ErrMissingData)
	}

	extended := make(domain.WageIndexTable, len(table))
	for year, value := range table {
		extended[year] = value
	}

	growth := decimal.NewFromInt(1).Add(rate)
	if !growth.IsPositive() {
		return nil, fmt.Errorf("%w: growth rate must be greater than -100%%", domain.ErrInvalidArgument)
	}
	current := table[latest]
	for year := latest + 1; year <= throughYear; year++ {
		current = current.Mul(growth).Round(2)
		extended[year] = current
	}
	return extended, nil
}
