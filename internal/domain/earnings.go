package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Wages maps a calendar year to the nominal earnings for that year.
// It is a lookup table; iteration order carries no meaning.
type Wages map[int]decimal.Decimal

// Years returns the years present in ascending order.
func (w Wages) Years() []int {
	return sortedYears(w)
}

// Clone returns an independent copy.
func (w Wages) Clone() Wages {
	out := make(Wages, len(w))
	for year, amount := range w {
		out[year] = amount
	}
	return out
}

// Total sums all earnings in the record.
func (w Wages) Total() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range w {
		total = total.Add(amount)
	}
	return total
}

// WageIndexTable maps a year to the national average wage index for that year,
// possibly extended with projected future values. Tables are shared read-only;
// nothing in this module writes to a table it did not create.
type WageIndexTable map[int]decimal.Decimal

// Latest returns the most recent year present in the table.
func (t WageIndexTable) Latest() (int, bool) {
	if len(t) == 0 {
		return 0, false
	}
	latest := 0
	first := true
	for year := range t {
		if first || year > latest {
			latest = year
			first = false
		}
	}
	return latest, true
}

// Value looks up the index for a year.
func (t WageIndexTable) Value(year int) (decimal.Decimal, bool) {
	v, ok := t[year]
	return v, ok
}

// Years returns the years present in ascending order.
func (t WageIndexTable) Years() []int {
	return sortedYears(t)
}

func sortedYears(m map[int]decimal.Decimal) []int {
	years := make([]int, 0, len(m))
	for year := range m {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}
