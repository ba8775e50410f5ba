package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/export"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/pkg/api"
)

var _ api.ReportServiceHandler = (*ReportService)(nil)

// ReportService serves statistics and report tables over a date range.
// Every call loads a fresh snapshot of the stored expenses.
type ReportService struct {
	store  storage.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewReportService creates a new ReportService.
func NewReportService(store storage.Store, logger *slog.Logger) *ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportService{store: store, logger: logger, now: time.Now}
}

// loadRange returns the stored expenses whose date falls in [start, end].
// Empty bounds default to the last month up to today.
func (s *ReportService) loadRange(ctx context.Context, start, end string) (calculator.DateRange, []models.Expense, error) {
	dateRange, err := calculator.ParseDateRange(start, end, s.now())
	if err != nil {
		return calculator.DateRange{}, nil, err
	}
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		return calculator.DateRange{}, nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	return dateRange, calculator.FilterByDate(expenses, dateRange), nil
}

// report builds the report of the given kind over the filtered snapshot.
func (s *ReportService) report(ctx context.Context, kind, start, end string) (calculator.DateRange, *calculator.Report, error) {
	reportKind, err := calculator.ParseReportKind(kind)
	if err != nil {
		return calculator.DateRange{}, nil, err
	}
	dateRange, expenses, err := s.loadRange(ctx, start, end)
	if err != nil {
		return calculator.DateRange{}, nil, err
	}
	report, err := calculator.BuildReport(expenses, reportKind)
	if err != nil {
		return calculator.DateRange{}, nil, err
	}
	return dateRange, report, nil
}

// reportError maps report failures onto Connect codes.
func reportError(err error) error {
	switch {
	case errors.Is(err, calculator.ErrInvalidDate), errors.Is(err, calculator.ErrUnknownReportKind):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// GetStats returns totals, category and month breakdowns and per-person
// balances for the requested range.
func (s *ReportService) GetStats(ctx context.Context, req *connect.Request[api.GetStatsRequest]) (*connect.Response[api.GetStatsResponse], error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}

	dateRange, expenses, err := s.loadRange(ctx, req.Msg.StartDate, req.Msg.EndDate)
	if err != nil {
		s.logger.Warn("GetStats failed", "start", req.Msg.StartDate, "end", req.Msg.EndDate, "error", err)
		return nil, reportError(err)
	}

	stats := calculator.CalculateStats(expenses)
	s.logger.Debug("Stats computed", "expenses", stats.ExpenseCount, "total", stats.TotalAmount.String())
	return connect.NewResponse(toAPIStats(dateRange, stats)), nil
}

// GetReport returns a report as a table of formatted cells, matching the
// CSV download of the same kind and range.
func (s *ReportService) GetReport(ctx context.Context, req *connect.Request[api.GetReportRequest]) (*connect.Response[api.GetReportResponse], error) {
	if _, err := requireUser(ctx); err != nil {
		return nil, err
	}

	dateRange, report, err := s.report(ctx, req.Msg.Kind, req.Msg.StartDate, req.Msg.EndDate)
	if err != nil {
		s.logger.Warn("GetReport failed", "kind", req.Msg.Kind, "error", err)
		return nil, reportError(err)
	}

	return connect.NewResponse(&api.GetReportResponse{
		Kind:      string(report.Kind),
		StartDate: dateRange.Start.Format(calculator.DateLayout),
		EndDate:   dateRange.End.Format(calculator.DateLayout),
		Columns:   export.Columns(report.Kind),
		Rows:      export.Records(report),
		Empty:     report.Empty(),
		Filename:  export.Filename(report.Kind, s.now()),
	}), nil
}
