package calculator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

// ReportKind selects the rows produced by BuildReport.
type ReportKind string

const (
	ReportSummary  ReportKind = "summary"
	ReportDetailed ReportKind = "detailed"
	ReportBalance  ReportKind = "balance"
)

// ErrUnknownReportKind is returned for a report kind other than summary,
// detailed or balance.
var ErrUnknownReportKind = errors.New("unknown report kind")

// ParseReportKind validates a report kind name (case-insensitive).
func ParseReportKind(s string) (ReportKind, error) {
	switch kind := ReportKind(strings.ToLower(strings.TrimSpace(s))); kind {
	case ReportSummary, ReportDetailed, ReportBalance:
		return kind, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownReportKind, s)
}

// SummaryRow describes one expense.
type SummaryRow struct {
	Description  string
	Date         time.Time
	Amount       decimal.Decimal
	Status       models.Status
	Participants []string
	SplitType    models.SplitType
}

// DetailedRow describes one participant of one expense.
type DetailedRow struct {
	Description string
	Date        time.Time
	Amount      decimal.Decimal
	Status      models.Status
	Participant string
	Share       decimal.Decimal
	Paid        bool
}

// BalanceRow describes one participant across all expenses of the report.
type BalanceRow struct {
	Participant string
	TotalPaid   decimal.Decimal
	TotalOwed   decimal.Decimal
	Balance     decimal.Decimal
}

// Report holds the rows of one report kind. Only the slice matching Kind
// is populated.
type Report struct {
	Kind     ReportKind
	Summary  []SummaryRow
	Detailed []DetailedRow
	Balance  []BalanceRow
}

// Len returns the number of rows.
func (r *Report) Len() int {
	switch r.Kind {
	case ReportSummary:
		return len(r.Summary)
	case ReportDetailed:
		return len(r.Detailed)
	case ReportBalance:
		return len(r.Balance)
	}
	return 0
}

// Empty reports whether the report has no rows. Callers use it to skip
// rendering or exporting.
func (r *Report) Empty() bool {
	return r.Len() == 0
}

// BuildReport turns already filtered expenses into report rows.
//
// Rows keep the input order: summary has one row per expense, detailed one
// row per expense and participant (expense-major), balance one row per
// distinct participant in first-seen order.
func BuildReport(expenses []models.Expense, kind ReportKind) (*Report, error) {
	report := &Report{Kind: kind}

	switch kind {
	case ReportSummary:
		report.Summary = make([]SummaryRow, 0, len(expenses))
		for _, expense := range expenses {
			report.Summary = append(report.Summary, SummaryRow{
				Description:  expense.Description,
				Date:         expense.Date,
				Amount:       expense.Amount,
				Status:       expense.Status,
				Participants: expense.ParticipantNames(),
				SplitType:    expense.EffectiveSplitType(),
			})
		}

	case ReportDetailed:
		for i := range expenses {
			expense := &expenses[i]
			for _, participant := range expense.Participants {
				report.Detailed = append(report.Detailed, DetailedRow{
					Description: expense.Description,
					Date:        expense.Date,
					Amount:      expense.Amount,
					Status:      expense.Status,
					Participant: participant.Name,
					Share:       shareOrZero(expense, participant),
					Paid:        participant.HasPaid,
				})
			}
		}

	case ReportBalance:
		balances := CalculateBalances(expenses)
		report.Balance = make([]BalanceRow, 0, balances.Len())
		for _, m := range balances.List() {
			report.Balance = append(report.Balance, BalanceRow{
				Participant: m.Name,
				TotalPaid:   m.TotalPaid,
				TotalOwed:   m.TotalOwed,
				Balance:     m.Balance(),
			})
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownReportKind, kind)
	}

	return report, nil
}
