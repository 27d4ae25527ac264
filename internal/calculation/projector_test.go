package calculation

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rpgo/ssbenefit/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// flatTable returns a table with the same index value for every year in [from, to].
func flatTable(from, to int, value string) domain.WageIndexTable {
	table := make(domain.WageIndexTable, to-from+1)
	for year := from; year <= to; year++ {
		table[year] = d(value)
	}
	return table
}

func yearRange(from, to int) []int {
	years := make([]int, 0, to-from+1)
	for year := from; year <= to; year++ {
		years = append(years, year)
	}
	return years
}

func assertDecimalNear(t *testing.T, want, got decimal.Decimal) {
	t.Helper()
	diff := want.Sub(got).Abs()
	assert.True(t, diff.LessThan(d("0.000001")), "want %s, got %s", want, got)
}

func TestProjectScenarioA(t *testing.T) {
	table := domain.WageIndexTable{
		2015: d("48500"),
		2016: d("49000"),
		2017: d("49500"),
		2018: d("50000"),
		2019: d("51000"),
		2020: d("52020"),
	}
	p := NewEarningsProjector(table, 2020)

	wages, err := p.Project(ProjectionInput{Age: 23, LastWage: d("40000"), LastYearWorked: 2020})
	require.NoError(t, err)

	if diff := cmp.Diff(yearRange(2015, 2020), wages.Years()); diff != "" {
		t.Fatalf("projected years mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, wages[2020].Equal(d("40000")))

	// The year before the reference year takes the fixed near-term ratio, not 51000/52020.
	assert.True(t, wages[2019].Equal(d("38400")), "got %s", wages[2019])
	tableRatio := d("40000").Mul(d("51000").Div(d("52020")))
	assert.False(t, wages[2019].Equal(tableRatio))

	// 2018 is the year the subject turned 21.
	want2018 := d("38400").Mul(d("50000").Div(d("51000"))).Div(d("8"))
	assertDecimalNear(t, want2018, wages[2018])
	want2017 := want2018.Mul(d("49500").Div(d("50000")))
	assertDecimalNear(t, want2017, wages[2017])
	want2015 := want2017.Mul(d("49000").Div(d("49500"))).Mul(d("48500").Div(d("49000")))
	assertDecimalNear(t, want2015, wages[2015])
}

func TestProjectAppliesYouthFactorOnce(t *testing.T) {
	table := flatTable(1980, 2020, "50000")
	p := NewEarningsProjector(table, 2020)

	for _, age := range []int{23, 30, 40, 55} {
		wages, err := p.Project(ProjectionInput{Age: age, LastWage: d("80000")})
		require.NoError(t, err, "age %d", age)

		youthYear := p.YouthYear(age)
		youthSteps := 0
		for year := p.WorkStartYear(age); year < 2020; year++ {
			ratio := wages[year].Div(wages[year+1])
			switch {
			case year == 2019:
				assert.True(t, ratio.Equal(NearTermGrowth), "age %d year %d ratio %s", age, year, ratio)
			case year == youthYear:
				youthSteps++
				assert.True(t, ratio.Equal(d("0.125")), "age %d year %d ratio %s", age, year, ratio)
			default:
				assert.True(t, ratio.Equal(d("1")), "age %d year %d ratio %s", age, year, ratio)
			}
		}
		assert.Equal(t, 1, youthSteps, "age %d", age)
	}
}

func TestProjectRangeAndAnchor(t *testing.T) {
	table := flatTable(1960, 2024, "60000")
	p := NewEarningsProjector(table, 2024)

	tests := []struct {
		name     string
		in       ProjectionInput
		wantFrom int
		wantTo   int
	}{
		{"defaults to reference year", ProjectionInput{Age: 45, LastWage: d("91000.55")}, 1997, 2024},
		{"earlier last year", ProjectionInput{Age: 45, LastWage: d("70000"), LastYearWorked: 2015}, 1997, 2015},
		{"oldest subject", ProjectionInput{Age: 64, LastWage: d("120000"), LastYearWorked: 2024}, 1978, 2024},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wages, err := p.Project(tt.in)
			require.NoError(t, err)
			if diff := cmp.Diff(yearRange(tt.wantFrom, tt.wantTo), wages.Years()); diff != "" {
				t.Fatalf("years mismatch (-want +got):\n%s", diff)
			}
			assert.True(t, wages[tt.wantTo].Equal(tt.in.LastWage))
		})
	}
}

func TestProjectLastYearBeforeWorkStart(t *testing.T) {
	p := NewEarningsProjector(flatTable(1990, 2020, "50000"), 2020)

	wages, err := p.Project(ProjectionInput{Age: 30, LastWage: d("1000"), LastYearWorked: 2000})
	require.NoError(t, err)
	assert.Len(t, wages, 1)
	assert.True(t, wages[2000].Equal(d("1000")))
}

func TestProjectGrowthRate(t *testing.T) {
	p := NewEarningsProjector(flatTable(1990, 2020, "50000"), 2020)

	wages, err := p.Project(ProjectionInput{Age: 30, LastWage: d("51000"), EarningGrowthRate: d("0.02")})
	require.NoError(t, err)

	assert.True(t, wages[2019].Equal(d("51000").Mul(d("0.96").Div(d("1.02")))))
	assertDecimalNear(t, wages[2019].Div(d("1.02")), wages[2018])
}

func TestProjectInvalidArguments(t *testing.T) {
	p := NewEarningsProjector(flatTable(1990, 2020, "50000"), 2020)

	for _, age := range []int{22, 20, 0} {
		_, err := p.Project(ProjectionInput{Age: age, LastWage: d("40000")})
		assert.True(t, errors.Is(err, domain.ErrInvalidArgument), "age %d: %v", age, err)
	}

	_, err := p.Project(ProjectionInput{Age: 40, LastWage: d("40000"), LastYearWorked: 2021})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "2021")

	_, err = p.Project(ProjectionInput{Age: 40, LastWage: d("40000"), EarningGrowthRate: d("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestProjectMissingData(t *testing.T) {
	t.Run("previous year required when anchored at reference year", func(t *testing.T) {
		table := flatTable(1990, 2018, "50000")
		table[2020] = d("52000")
		p := NewEarningsProjector(table, 2020)

		_, err := p.Project(ProjectionInput{Age: 30, LastWage: d("40000")})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMissingData)
		assert.Contains(t, err.Error(), "previous year")
	})

	t.Run("gap in the table", func(t *testing.T) {
		table := flatTable(1990, 2020, "50000")
		delete(table, 2005)
		p := NewEarningsProjector(table, 2020)

		_, err := p.Project(ProjectionInput{Age: 40, LastWage: d("40000")})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMissingData)
		assert.Contains(t, err.Error(), "2005")
	})

	t.Run("table ends before the projection", func(t *testing.T) {
		p := NewEarningsProjector(flatTable(2010, 2020, "50000"), 2020)

		_, err := p.Project(ProjectionInput{Age: 40, LastWage: d("40000")})
		assert.ErrorIs(t, err, domain.ErrMissingData)
	})
}

func TestProjectDoesNotTouchTable(t *testing.T) {
	table := flatTable(1990, 2020, "50000")
	before := len(table)
	p := NewEarningsProjector(table, 2020)
	_, err := p.Project(ProjectionInput{Age: 35, LastWage: d("50000")})
	require.NoError(t, err)
	assert.Len(t, table, before)
}
