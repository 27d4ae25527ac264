package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSVSummarizer writes the results record as one Field,Value row per line.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *Report) ([]byte, error) {
	if report == nil || report.Estimate == nil || report.Estimate.Results == nil {
		return nil, fmt.Errorf("csv formatter: no results to format")
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Field", "Value"}); err != nil {
		return nil, err
	}
	for _, f := range report.Estimate.Results.Fields() {
		if err := w.Write([]string{f.Name, f.Value.String()}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
