package wageindex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rpgo/ssbenefit/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	table := Default()
	assert.Len(t, table, 72)

	latest, ok := table.Latest()
	require.True(t, ok)
	assert.Equal(t, 2022, latest)
	assert.Equal(t, "63795.13", table[2022].StringFixed(2))
	assert.Equal(t, "9779.44", table[1977].StringFixed(2))

	// Every call returns an independent copy.
	table[2022] = decimal.Zero
	assert.Equal(t, "63795.13", Default()[2022].StringFixed(2))
}

func TestDefaultIsContiguous(t *testing.T) {
	s := Summarize(Default())
	assert.Equal(t, 1951, s.MinYear)
	assert.Equal(t, 2022, s.MaxYear)
	assert.Empty(t, s.MissingYears)
	assert.True(t, s.MeanGrowth.GreaterThan(decimal.NewFromFloat(0.03)))
	assert.True(t, s.MeanGrowth.LessThan(decimal.NewFromFloat(0.06)))
}

func TestLoadCSV(t *testing.T) {
	data := "year,index\n" +
		"# published\n" +
		"2018,52145.80\n" +
		"2019, 54099.99\n" +
		"2020,55628.60\n"

	table, err := LoadCSV(strings.NewReader(data))
	require.NoError(t, err)
	if diff := cmp.Diff([]int{2018, 2019, 2020}, table.Years()); diff != "" {
		t.Fatalf("years mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "54099.99", table[2019].StringFixed(2))
}

func TestLoadCSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"empty", "", "failed to read header"},
		{"single column header", "year\n", "expected at least 2 columns"},
		{"no rows", "year,index\n", "no wage index values"},
		{"bad year", "year,index\nabc,1\n", "invalid year"},
		{"bad value", "year,index\n2020,lots\n", "invalid index value"},
		{"negative value", "year,index\n2020,-5\n", "must be positive"},
		{"duplicate", "year,index\n2020,5\n2020,6\n", "duplicate"},
		{"short row", "year,index\n2020\n", "expected year and index value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCSV(strings.NewReader(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadYAML(t *testing.T) {
	table, err := LoadYAML(strings.NewReader("2021: 60575.07\n2022: 63795.13\n"))
	require.NoError(t, err)
	assert.Len(t, table, 2)
	assert.Equal(t, "60575.07", table[2021].StringFixed(2))

	_, err = LoadYAML(strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrMissingData)

	_, err = LoadYAML(strings.NewReader("2021: [1, 2]\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "awi.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("year,index\n2020,55628.60\n"), 0644))
	table, err := LoadFile(csvPath)
	require.NoError(t, err)
	assert.Len(t, table, 1)

	yamlPath := filepath.Join(dir, "awi.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("2020: 55628.60\n"), 0644))
	table, err = LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Len(t, table, 1)

	_, err = LoadFile(filepath.Join(dir, "missing.csv"))
	assert.ErrorContains(t, err, "failed to open file")

	jsonPath := filepath.Join(dir, "awi.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte("{}"), 0644))
	_, err = LoadFile(jsonPath)
	assert.ErrorContains(t, err, "unsupported wage index file type")
}

func TestExtend(t *testing.T) {
	base := domain.WageIndexTable{2021: decimal.RequireFromString("60575.07"), 2022: decimal.RequireFromString("63795.13")}

	extended, err := Extend(base, 2024, decimal.RequireFromString("0.03"))
	require.NoError(t, err)
	assert.Len(t, extended, 4)
	assert.Equal(t, "65708.98", extended[2023].StringFixed(2))
	assert.Equal(t, "67680.25", extended[2024].StringFixed(2))
	// The source table is not modified.
	assert.Len(t, base, 2)

	same, err := Extend(base, 2020, decimal.Zero)
	require.NoError(t, err)
	assert.Len(t, same, 2)

	_, err = Extend(domain.WageIndexTable{}, 2030, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrMissingData)

	_, err = Extend(base, 2030, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestSummarizeGaps(t *testing.T) {
	table := domain.WageIndexTable{
		2000: decimal.NewFromInt(100),
		2001: decimal.NewFromInt(110),
		2004: decimal.NewFromInt(130),
	}
	s := Summarize(table)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, []int{2002, 2003}, s.MissingYears)
	assert.Equal(t, "0.1", s.MeanGrowth.String())

	assert.Equal(t, Summary{}, Summarize(nil))
}
