package output

import (
	"fmt"
	"io"
	"strings"
)

// GenerateReport renders report in the named format to w.
func GenerateReport(w io.Writer, report *Report, format string) error {
	f, err := LookupFormatter(format)
	if err != nil {
		return err
	}
	return WriteFormatted(w, f, report)
}

// LookupFormatter resolves a format name, listing the alternatives when it is unknown.
func LookupFormatter(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// Extension returns the file extension conventionally used for a format.
func Extension(format string) string {
	switch NormalizeFormatName(format) {
	case "console":
		return "txt"
	case "csv", "detailed-csv":
		return "csv"
	case "html":
		return "html"
	default:
		return "json"
	}
}
