package wageindex

import (
	"github.com/rpgo/ssbenefit/internal/domain"
	"github.com/shopspring/decimal"
)

// Summary describes the coverage of a wage index table.
type Summary struct {
	MinYear      int             `json:"min_year"`
	MaxYear      int             `json:"max_year"`
	Count        int             `json:"count"`
	Latest       decimal.Decimal `json:"latest"`
	MeanGrowth   decimal.Decimal `json:"mean_growth"`
	MissingYears []int           `json:"missing_years"`
}

// Summarize reports the year range, gaps and average year-over-year growth of a table.
func Summarize(table domain.WageIndexTable) Summary {
	years := table.Years()
	if len(years) == 0 {
		return Summary{}
	}

	s := Summary{
		MinYear: years[0],
		MaxYear: years[len(years)-1],
		Count:   len(years),
		Latest:  table[years[len(years)-1]],
	}

	// Find gaps in the data
	for i := 1; i < len(years); i++ {
		for year := years[i-1] + 1; year < years[i]; year++ {
			s.MissingYears = append(s.MissingYears, year)
		}
	}

	// Average growth over consecutive years only
	var growthSum decimal.Decimal
	pairs := 0
	for i := 1; i < len(years); i++ {
		if years[i] != years[i-1]+1 {
			continue
		}
		prev := table[years[i-1]]
		growthSum = growthSum.Add(table[years[i]].Sub(prev).Div(prev))
		pairs++
	}
	if pairs > 0 {
		s.MeanGrowth = growthSum.Div(decimal.NewFromInt(int64(pairs)))
	}
	return s
}
