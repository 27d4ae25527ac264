package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSVDetailedExporter lists every earnings year with where its value came from.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *Report) ([]byte, error) {
	if report == nil || report.Estimate == nil {
		return nil, fmt.Errorf("detailed csv formatter: no estimate to format")
	}
	est := report.Estimate
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Year", "Earnings", "Source"}); err != nil {
		return nil, err
	}
	for _, year := range est.Earnings.Years() {
		row := []string{
			intToString(year),
			est.Earnings[year].StringFixed(2),
			est.Source(year),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
