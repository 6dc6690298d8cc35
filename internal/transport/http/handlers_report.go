package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"flightplanner/internal/service"
	"flightplanner/pkg/platform/httputil"
)

type Reporter interface {
	Report(ctx context.Context) (*service.FlightReportResponse, error)
	Summary(ctx context.Context) (*service.FlightSummaryResponse, error)
}

type ReportHandler struct {
	reports Reporter
	logger  *slog.Logger
}

func NewReportHandler(reports Reporter, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, logger: logger}
}

func (h *ReportHandler) Register(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/", h.handleReport)
		r.Get("/summary", h.handleSummary)
	})
}

func (h *ReportHandler) handleReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.reports.Report(r.Context())
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reports.Summary(r.Context())
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, summary)
}
