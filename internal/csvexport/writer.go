package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"freightdoc/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the verdict CSV header row.
var columns = []string{
	"Bill of Lading ID",
	"BOL Number",
	"Load ID",
	"Status",
	"Location Score",
	"Weight Variance %",
	"Hazmat Mismatch",
	"PO Mismatch",
	"Reasons",
	"Validated At",
}

// Writer wraps csv.Writer for exporting validation verdicts.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteVerdict writes one verdict row. bolNumber may be empty.
func (w *Writer) WriteVerdict(bolNumber string, v *domain.ValidationVerdict) error {
	return w.csv.Write(verdictToRow(bolNumber, v))
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func verdictToRow(bolNumber string, v *domain.ValidationVerdict) []string {
	row := make([]string, len(columns))
	row[0] = v.BOLID.String()
	row[1] = bolNumber
	row[2] = v.LoadID.String()
	row[3] = string(v.Status)
	row[4] = strconv.Itoa(v.LocationMatchScore)
	if v.WeightVariancePct != nil {
		row[5] = strconv.FormatFloat(*v.WeightVariancePct, 'f', 2, 64)
	}
	row[6] = formatBool(v.HasHazmatMismatch)
	row[7] = formatBool(v.HasPOMismatch)
	row[8] = strings.Join(v.Reasons, "; ")
	if !v.ValidatedAt.IsZero() {
		row[9] = v.ValidatedAt.UTC().Format(time.RFC3339)
	}
	return row
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename replaces anything but alphanumerics, hyphens and
// underscores with _, collapses repeats and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns {sanitized_prefix}_{YYYY-MM-DD}.csv for the given day.
func BuildFilename(prefix string, day time.Time) string {
	return fmt.Sprintf("%s_%s.csv", SanitizeFilename(prefix), day.Format("2006-01-02"))
}
