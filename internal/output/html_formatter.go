package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/rpgo/ssbenefit/internal/domain"
	"github.com/rpgo/ssbenefit/pkg/dateutil"
	money "github.com/rpgo/ssbenefit/pkg/decimal"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"money": func(m money.Money) string { return m.Format() },
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

type htmlYear struct {
	Year   int
	Amount decimal.Decimal
	Source string
}

func (h HTMLFormatter) Format(report *Report) ([]byte, error) {
	if report == nil || report.Estimate == nil || report.Estimate.Results == nil {
		return nil, fmt.Errorf("html formatter: no results to format")
	}
	est := report.Estimate

	years := make([]htmlYear, 0, len(est.Earnings))
	for _, y := range est.Earnings.Years() {
		years = append(years, htmlYear{Year: y, Amount: est.Earnings[y], Source: est.Source(y)})
	}
	var fra string
	if report.HasDateOfBirth() {
		fra = dateutil.FullRetirementAge(report.DateOfBirth).String()
	}

	data := struct {
		Name              string
		FullRetirementAge string
		Fields            []domain.ResultField
		Years             []htmlYear
		Estimate          interface{}
	}{report.Name, fra, est.Results.Fields(), years, est.Results}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
