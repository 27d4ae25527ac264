// Package statement reads the earnings record out of an SSA online
// Social Security statement export ("Your_Social_Security_Statement_Data.xml").
package statement

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rpgo/ssbenefit/internal/domain"
	"github.com/shopspring/decimal"
)

// SupportedSchema is the only statement schema namespace accepted.
const SupportedSchema = "http://ssa.gov/osss/schemas/2.0"

const rootElement = "OnlineSocialSecurityStatementData"

// Statement is the parsed content of a statement export.
type Statement struct {
	Name        string
	DateOfBirth time.Time
	Earnings    domain.Wages
}

// statementXML represents the subset of the export this package reads.
// Child tags carry no namespace so they match the osss prefix as declared.
type statementXML struct {
	XMLName  xml.Name
	UserInfo struct {
		Name        string `xml:"Name"`
		DateOfBirth string `xml:"DateOfBirth"`
	} `xml:"UserInformation"`
	Earnings []earningsXML `xml:"EarningsRecord>Earnings"`
}

type earningsXML struct {
	StartYear    string `xml:"startYear,attr"`
	FicaEarnings string `xml:"FicaEarnings"`
}

// ParseFile opens and parses a statement export.
func ParseFile(path string) (*Statement, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open statement %s: %w", path, err)
	}
	defer file.Close()

	st, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return st, nil
}

// Parse reads a statement export. The earnings record is keyed by each
// entry's startYear and valued with its FICA-taxable earnings.
func Parse(r io.Reader) (*Statement, error) {
	var doc statementXML
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: malformed statement: %v", domain.ErrParse, err)
	}

	if doc.XMLName.Local != rootElement {
		return nil, fmt.Errorf("%w: unexpected root element %q", domain.ErrParse, doc.XMLName.Local)
	}
	if doc.XMLName.Space != SupportedSchema {
		return nil, fmt.Errorf("%w: %q is not supported (%s)", domain.ErrParse, doc.XMLName.Space, SupportedSchema)
	}

	st := &Statement{
		Name:     strings.TrimSpace(doc.UserInfo.Name),
		Earnings: make(domain.Wages, len(doc.Earnings)),
	}
	if dob := strings.TrimSpace(doc.UserInfo.DateOfBirth); dob != "" {
		t, err := time.Parse("2006-01-02", dob)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date of birth %q", domain.ErrParse, dob)
		}
		st.DateOfBirth = t
	}

	for i, e := range doc.Earnings {
		year, err := strconv.Atoi(strings.TrimSpace(e.StartYear))
		if err != nil {
			return nil, fmt.Errorf("%w: earnings entry %d has invalid startYear %q", domain.ErrParse, i+1, e.StartYear)
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(e.FicaEarnings))
		if err != nil {
			return nil, fmt.Errorf("%w: earnings for %d has invalid FicaEarnings %q", domain.ErrParse, year, e.FicaEarnings)
		}
		if _, dup := st.Earnings[year]; dup {
			return nil, fmt.Errorf("%w: duplicate earnings entry for %d", domain.ErrParse, year)
		}
		st.Earnings[year] = amount
	}
	return st, nil
}

// HasDateOfBirth reports whether the statement carried a date of birth.
func (s *Statement) HasDateOfBirth() bool {
	return !s.DateOfBirth.IsZero()
}
