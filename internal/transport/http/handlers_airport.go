package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"flightplanner/internal/service"
	"flightplanner/pkg/platform/httputil"
)

type AirportReader interface {
	Create(ctx context.Context, req service.CreateAirportRequest) (*service.AirportResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*service.AirportResponse, error)
	Search(ctx context.Context, query service.SearchAirportsQuery) (*service.PagedResponse[service.AirportResponse], error)
	Update(ctx context.Context, id uuid.UUID, req service.UpdateAirportRequest) (*service.AirportResponse, error)
}

type AirportHandler struct {
	airports AirportReader
	logger   *slog.Logger
}

func NewAirportHandler(airports AirportReader, logger *slog.Logger) *AirportHandler {
	return &AirportHandler{airports: airports, logger: logger}
}

func (h *AirportHandler) Register(r chi.Router) {
	r.Route("/airports", func(r chi.Router) {
		r.Post("/", h.handleCreate)
		r.Get("/", h.handleSearch)
		r.Get("/{id}", h.handleGet)
		r.Put("/{id}", h.handleUpdate)
	})
}

func (h *AirportHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req service.CreateAirportRequest
	if err := decode(r, &req); err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	resp, err := h.airports.Create(r.Context(), req)
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	w.Header().Set("Location", "/airports/"+resp.ID.String())
	httputil.WriteJSON(w, http.StatusCreated, resp)
}

// handleSearch pages through airports. Query params mirror the request shape:
// searchTerm, page, pageSize; omitted numbers fall back to service defaults.
func (h *AirportHandler) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := service.SearchAirportsQuery{
		SearchTerm: r.URL.Query().Get("searchTerm"),
	}
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			writeFailure(w, r, h.logger, invalidQueryParam("page"))
			return
		}
		query.Page = page
	}
	if raw := r.URL.Query().Get("pageSize"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			writeFailure(w, r, h.logger, invalidQueryParam("pageSize"))
			return
		}
		query.PageSize = size
	}

	page, err := h.airports.Search(r.Context(), query)
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, page)
}

func (h *AirportHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	resp, err := h.airports.Get(r.Context(), id)
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	if resp == nil {
		httputil.WriteNotFound(w)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *AirportHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	var req service.UpdateAirportRequest
	if err := decode(r, &req); err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	resp, err := h.airports.Update(r.Context(), id, req)
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	if resp == nil {
		httputil.WriteNotFound(w)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}
