// Package export formats calculator reports as delimited text.
//
// Records is the single formatting step shared by the CSV download and the
// report table returned over the API, so both show identical values.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/calculator"
)

// ContentType is the MIME type of WriteCSV output.
const ContentType = "text/csv; charset=utf-8"

// ErrEmptyReport is returned by WriteCSV for a report without rows.
var ErrEmptyReport = errors.New("report has no rows")

var columns = map[calculator.ReportKind][]string{
	calculator.ReportSummary:  {"Description", "Date", "Amount", "Status", "Participants", "Split Type"},
	calculator.ReportDetailed: {"Description", "Date", "Amount", "Status", "Participant", "Share", "Paid"},
	calculator.ReportBalance:  {"Participant", "Total Paid", "Total Owed", "Balance"},
}

// Columns returns the header row for a report kind, or nil for an unknown kind.
func Columns(kind calculator.ReportKind) []string {
	cols, ok := columns[kind]
	if !ok {
		return nil
	}
	out := make([]string, len(cols))
	copy(out, cols)
	return out
}

// Records formats report rows as strings, in report order, without a header.
func Records(report *calculator.Report) [][]string {
	records := make([][]string, 0, report.Len())
	switch report.Kind {
	case calculator.ReportSummary:
		for _, row := range report.Summary {
			records = append(records, []string{
				row.Description,
				formatDate(row.Date),
				formatAmount(row.Amount),
				string(row.Status),
				strings.Join(row.Participants, "; "),
				string(row.SplitType),
			})
		}
	case calculator.ReportDetailed:
		for _, row := range report.Detailed {
			records = append(records, []string{
				row.Description,
				formatDate(row.Date),
				formatAmount(row.Amount),
				string(row.Status),
				row.Participant,
				formatAmount(row.Share),
				yesNo(row.Paid),
			})
		}
	case calculator.ReportBalance:
		for _, row := range report.Balance {
			records = append(records, []string{
				row.Participant,
				formatAmount(row.TotalPaid),
				formatAmount(row.TotalOwed),
				formatAmount(row.Balance),
			})
		}
	}
	return records
}

// WriteCSV writes the header and all rows of report to w.
func WriteCSV(w io.Writer, report *calculator.Report) error {
	if report.Empty() {
		return ErrEmptyReport
	}
	header := Columns(report.Kind)
	if header == nil {
		return fmt.Errorf("%w: %q", calculator.ErrUnknownReportKind, report.Kind)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := cw.WriteAll(Records(report)); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}

// Filename names a report download: expense-report-<kind>-<YYYY-MM-DD>.csv.
func Filename(kind calculator.ReportKind, now time.Time) string {
	return fmt.Sprintf("expense-report-%s-%s.csv", kind, now.UTC().Format(calculator.DateLayout))
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatDate(t time.Time) string {
	return t.Format(calculator.DateLayout)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
