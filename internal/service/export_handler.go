package service

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/export"
)

// ExportPattern is the route of the CSV download, for http.ServeMux.
const ExportPattern = "GET /api/reports/{file}"

// ExportObserver receives one call per download attempt.
type ExportObserver interface {
	ObserveExport(kind, outcome string, rows int)
}

// ExportHandler serves /api/reports/<kind>.csv?start=YYYY-MM-DD&end=YYYY-MM-DD.
//
// Responses: 200 with a CSV attachment, 204 when the range holds no
// expenses, 400 for an unknown kind or a malformed date.
type ExportHandler struct {
	reports  *ReportService
	observer ExportObserver
}

// NewExportHandler creates the CSV download handler. observer may be nil.
func NewExportHandler(reports *ReportService, observer ExportObserver) *ExportHandler {
	return &ExportHandler{reports: reports, observer: observer}
}

func (h *ExportHandler) observe(kind, outcome string, rows int) {
	if h.observer != nil {
		h.observer.ObserveExport(kind, outcome, rows)
	}
}

func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := h.reports.logger
	file := r.PathValue("file")
	kind, ok := strings.CutSuffix(file, ".csv")
	if !ok {
		http.NotFound(w, r)
		return
	}

	query := r.URL.Query()
	_, report, err := h.reports.report(r.Context(), kind, query.Get("start"), query.Get("end"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, calculator.ErrInvalidDate) || errors.Is(err, calculator.ErrUnknownReportKind) {
			status = http.StatusBadRequest
			logger.Warn("Export rejected", "file", file, "error", err)
		} else {
			logger.Error("Export failed", "file", file, "error", err)
		}
		h.observe(kind, "error", 0)
		http.Error(w, err.Error(), status)
		return
	}

	if report.Empty() {
		h.observe(string(report.Kind), "empty", 0)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, report); err != nil {
		logger.Error("Export failed", "kind", report.Kind, "error", err)
		h.observe(string(report.Kind), "error", 0)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	filename := export.Filename(report.Kind, h.reports.now())
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn("Export write interrupted", "kind", report.Kind, "error", err)
		return
	}

	h.observe(string(report.Kind), "ok", report.Len())
	logger.Info("Report exported", "kind", report.Kind, "rows", report.Len(), "filename", filename)
}

var _ http.Handler = (*ExportHandler)(nil)
