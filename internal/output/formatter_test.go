package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rpgo/ssbenefit/internal/calculation"
	"github.com/rpgo/ssbenefit/internal/domain"
	money "github.com/rpgo/ssbenefit/pkg/decimal"
	"github.com/shopspring/decimal"
)

func m(s string) money.Money {
	v, err := money.NewMoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func buildTestReport() *Report {
	return &Report{
		Name:          "Pat Example",
		DateOfBirth:   time.Date(1960, time.May, 2, 0, 0, 0, 0, time.UTC),
		ReferenceYear: 2023,
		Estimate: &calculation.Estimate{
			Earnings: domain.Wages{
				2019: decimal.NewFromInt(30000),
				2020: decimal.NewFromInt(40000),
				2021: decimal.NewFromInt(41000),
			},
			Statement: domain.Wages{2020: decimal.NewFromInt(40000)},
			Projected: domain.Wages{2019: decimal.NewFromInt(30000), 2020: decimal.NewFromInt(39000)},
			Future:    domain.Wages{2021: decimal.NewFromInt(41000)},
			Results: &domain.Results{
				Top35YearsEarnings:    m("805000.00"),
				AIME:                  m("1916.67"),
				FirstBendPoint:        m("957"),
				SecondBendPoint:       m("5771"),
				NormalMonthlyBenefit:  m("1168.30"),
				NormalAnnualBenefit:   m("14019.60"),
				ReducedMonthlyBenefit: m("817.80"),
				ReducedAnnualBenefit:  m("9813.60"),
				YearsCounted:          3,
			},
		},
	}
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	for _, want := range []string{
		"SOCIAL SECURITY BENEFIT ESTIMATE",
		"Worker: Pat Example",
		"Full Retirement Age: 67 (early benefits from 62)",
		"Earnings years: 3 (statement 1, projected 1, future 1)",
		"Top 35 Years of Adjusted Earnings _________  805000.00\n",
		"Average Indexed Monthly Earnings (AIME) ___    1916.67\n",
		"Second Bend Point _________________________    5771.00\n",
		"Reduced (70%) Annual Benefit ______________    9813.60\n",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("console output missing %q, got:\n%s", want, content)
		}
	}
}

func TestConsoleFormatterWithoutBirthDate(t *testing.T) {
	r := buildTestReport()
	r.DateOfBirth = time.Time{}
	out, err := ConsoleFormatter{}.Format(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(out), "Full Retirement Age") {
		t.Fatalf("full retirement age printed without a birth date")
	}
}

func TestFormattersRejectEmptyReport(t *testing.T) {
	for _, f := range []Formatter{ConsoleFormatter{}, CSVSummarizer{}, CSVDetailedExporter{}, HTMLFormatter{}} {
		if _, err := f.Format(&Report{}); err == nil {
			t.Fatalf("%s: expected error for report without an estimate", f.Name())
		}
	}
}

func TestCSVSummarizer(t *testing.T) {
	out, err := CSVSummarizer{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 9 {
		t.Fatalf("expected 9 lines (header+8 fields), got %d", len(lines))
	}
	if lines[0] != "Field,Value" || lines[2] != "AIME,1916.67" || lines[8] != "ReducedAnnualBenefit,9813.60" {
		t.Fatalf("unexpected csv rows: %v", lines)
	}
}

func TestCSVDetailedExporterSources(t *testing.T) {
	out, err := CSVDetailedExporter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Year,Earnings,Source\n" +
		"2019,30000.00,projected\n" +
		"2020,40000.00,statement\n" +
		"2021,41000.00,future\n"
	if string(out) != want {
		t.Fatalf("detailed csv mismatch\n--- have ---\n%s\n--- want ---\n%s", out, want)
	}
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded struct {
		Estimate struct {
			Results map[string]string `json:"results"`
		} `json:"estimate"`
		ReferenceYear int `json:"reference_year"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.ReferenceYear != 2023 {
		t.Fatalf("reference_year = %d, want 2023", decoded.ReferenceYear)
	}
	if got := decoded.Estimate.Results["NormalMonthlyBenefit"]; got != "1168.30" {
		t.Fatalf("NormalMonthlyBenefit = %q, want 1168.30", got)
	}
	if _, ok := decoded.Estimate.Results["YearsCounted"]; ok {
		t.Fatalf("internal fields should not be serialized")
	}
}

func TestHTMLFormatterBasic(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("html format error: %v", err)
	}
	content := string(out)
	for _, want := range []string{"Benefit Summary", "Pat Example", "$1168.30", "<td>projected</td>", "Full Retirement Age: 67"} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in HTML output", want)
		}
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	if err := WriteFile(CSVSummarizer{}, buildTestReport(), path); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.HasPrefix(string(data), "Field,Value") {
		t.Fatalf("unexpected file content: %s", data)
	}
}

func TestGenerateReport(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerateReport(&buf, buildTestReport(), "TXT"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "SOCIAL SECURITY BENEFIT ESTIMATE") {
		t.Fatalf("alias txt did not select console output: %s", firstLine(buf.String()))
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func TestFormatterAliasResolution(t *testing.T) {
	f := GetFormatterByName("csv-earnings")
	if f == nil {
		t.Fatalf("alias csv-earnings did not resolve to a formatter")
	}
	if f.Name() != "detailed-csv" {
		t.Fatalf("alias resolved to %q, want 'detailed-csv'", f.Name())
	}
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	err := GenerateReport(&bytes.Buffer{}, buildTestReport(), "definitely-not-a-format")
	if err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "unsupported report format") || !strings.Contains(msg, "Try one of:") {
		t.Fatalf("error message missing suggestions: %s", msg)
	}
}

func TestExtension(t *testing.T) {
	cases := map[string]string{"console": "txt", "earnings": "csv", "csv": "csv", "html": "html", "json": "json"}
	for format, want := range cases {
		if got := Extension(format); got != want {
			t.Errorf("Extension(%q) = %q, want %q", format, got, want)
		}
	}
}
