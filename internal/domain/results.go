package domain

import (
	money "github.com/rpgo/ssbenefit/pkg/decimal"
)

// BendPoints are the AIME thresholds where the accrual rate changes from 90% to 32% and from 32% to 15%.
type BendPoints struct {
	First  money.Money `json:"first"`
	Second money.Money `json:"second"`
}

// Results is the benefit estimate for one earnings record.
type Results struct {
	Top35YearsEarnings    money.Money `json:"Top35YearsEarnings"`
	AIME                  money.Money `json:"AIME"`
	FirstBendPoint        money.Money `json:"FirstBendPoint"`
	SecondBendPoint       money.Money `json:"SecondBendPoint"`
	NormalMonthlyBenefit  money.Money `json:"NormalMonthlyBenefit"`
	NormalAnnualBenefit   money.Money `json:"NormalAnnualBenefit"`
	ReducedMonthlyBenefit money.Money `json:"ReducedMonthlyBenefit"`
	ReducedAnnualBenefit  money.Money `json:"ReducedAnnualBenefit"`

	// IndexYear is the wage index year used as the indexing base.
	IndexYear int `json:"-"`
	// YearsCounted is the number of earnings years that entered the top-35 sum.
	YearsCounted int `json:"-"`
}

// ResultField is one named line of a Results record.
type ResultField struct {
	Name  string
	Label string
	Value money.Money
}

// Fields returns the record's values in presentation order.
func (r *Results) Fields() []ResultField {
	return []ResultField{
		{"Top35YearsEarnings", "Top 35 Years of Adjusted Earnings", r.Top35YearsEarnings},
		{"AIME", "Average Indexed Monthly Earnings (AIME)", r.AIME},
		{"FirstBendPoint", "First Bend Point", r.FirstBendPoint},
		{"SecondBendPoint", "Second Bend Point", r.SecondBendPoint},
		{"NormalMonthlyBenefit", "Normal Monthly Benefit", r.NormalMonthlyBenefit},
		{"NormalAnnualBenefit", "Normal Annual Benefit", r.NormalAnnualBenefit},
		{"ReducedMonthlyBenefit", "Reduced (70%) Monthly Benefit", r.ReducedMonthlyBenefit},
		{"ReducedAnnualBenefit", "Reduced (70%) Annual Benefit", r.ReducedAnnualBenefit},
	}
}

// BendPoints returns the bend points the estimate was computed with.
func (r *Results) BendPoints() BendPoints {
	return BendPoints{First: r.FirstBendPoint, Second: r.SecondBendPoint}
}
