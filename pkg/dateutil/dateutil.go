package dateutil

import (
	"fmt"
	"time"
)

// Age calculates the age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// AgeInYear returns the age reached by the end of the given calendar year.
func AgeInYear(birthDate time.Time, year int) int {
	return Age(birthDate, EndOfYear(time.Date(year, 1, 1, 0, 0, 0, 0, birthDate.Location())))
}

// RetirementAge is an age expressed in whole years plus months.
type RetirementAge struct {
	Years  int
	Months int
}

func (r RetirementAge) String() string {
	if r.Months == 0 {
		return fmt.Sprintf("%d", r.Years)
	}
	return fmt.Sprintf("%d and %d months", r.Years, r.Months)
}

// FullRetirementAge returns the Social Security Full Retirement Age for a birth date.
// People born on January 1 use the rules for the previous year.
func FullRetirementAge(birthDate time.Time) RetirementAge {
	birthYear := birthDate.Year()
	if birthDate.Month() == time.January && birthDate.Day() == 1 {
		birthYear--
	}

	switch {
	case birthYear <= 1937:
		return RetirementAge{Years: 65}
	case birthYear <= 1942:
		return RetirementAge{Years: 65, Months: 2 * (birthYear - 1937)}
	case birthYear <= 1954:
		return RetirementAge{Years: 66}
	case birthYear <= 1959:
		return RetirementAge{Years: 66, Months: 2 * (birthYear - 1954)}
	default: // 1960 and later
		return RetirementAge{Years: 67}
	}
}

// EarliestRetirementAge is the first age at which a reduced retirement benefit can be claimed.
const EarliestRetirementAge = 62

// EndOfYear returns the last day of the year for a given date
func EndOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), 12, 31, 23, 59, 59, 999999999, date.Location())
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}
