package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/ssbenefit/internal/calculation"
	"github.com/rpgo/ssbenefit/pkg/dateutil"
)

// labelWidth is the width of the underscore-filled label column.
const labelWidth = 43

// ConsoleFormatter prints the estimate as an aligned label/value listing.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	if report == nil || report.Estimate == nil || report.Estimate.Results == nil {
		return nil, fmt.Errorf("console formatter: no results to format")
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "SOCIAL SECURITY BENEFIT ESTIMATE")
	fmt.Fprintln(&buf, "================================")
	if report.Name != "" {
		fmt.Fprintf(&buf, "Worker: %s\n", report.Name)
	}
	if report.HasDateOfBirth() {
		fmt.Fprintf(&buf, "Full Retirement Age: %s (early benefits from %d)\n",
			dateutil.FullRetirementAge(report.DateOfBirth), dateutil.EarliestRetirementAge)
	}
	est := report.Estimate
	fmt.Fprintf(&buf, "Earnings years: %d (statement %d, projected %d, future %d)\n",
		len(est.Earnings), len(est.Statement), len(est.Earnings)-len(est.Statement)-len(est.Future), len(est.Future))
	if est.Results.YearsCounted < calculation.LookbackYears {
		fmt.Fprintf(&buf, "Note: only %d years of earnings counted toward the top %d\n", est.Results.YearsCounted, calculation.LookbackYears)
	}
	fmt.Fprintln(&buf)

	for _, f := range est.Results.Fields() {
		fmt.Fprintf(&buf, "%s%11s\n", padLabel(f.Label), f.Value.String())
	}
	return buf.Bytes(), nil
}

func padLabel(label string) string {
	label += " "
	if len(label) >= labelWidth {
		return label
	}
	return label + strings.Repeat("_", labelWidth-len(label))
}
