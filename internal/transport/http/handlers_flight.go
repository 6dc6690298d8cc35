package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"flightplanner/internal/service"
	"flightplanner/pkg/platform/httputil"
)

type FlightPlanner interface {
	Create(ctx context.Context, req service.CreateFlightRequest) (*service.FlightResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*service.FlightResponse, error)
	GetAll(ctx context.Context) ([]service.FlightResponse, error)
	Update(ctx context.Context, id uuid.UUID, req service.UpdateFlightRequest) (*service.FlightResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type FlightHandler struct {
	flights FlightPlanner
	logger  *slog.Logger
}

func NewFlightHandler(flights FlightPlanner, logger *slog.Logger) *FlightHandler {
	return &FlightHandler{flights: flights, logger: logger}
}

func (h *FlightHandler) Register(r chi.Router) {
	r.Route("/flights", func(r chi.Router) {
		r.Post("/", h.handleCreate)
		r.Get("/", h.handleGetAll)
		r.Get("/{id}", h.handleGet)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
	})
}

func (h *FlightHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req service.CreateFlightRequest
	if err := decode(r, &req); err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	resp, err := h.flights.Create(r.Context(), req)
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	w.Header().Set("Location", "/flights/"+resp.ID.String())
	httputil.WriteJSON(w, http.StatusCreated, resp)
}

func (h *FlightHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	resp, err := h.flights.Get(r.Context(), id)
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

func (h *FlightHandler) handleGetAll(w http.ResponseWriter, r *http.Request) {
	all, err := h.flights.GetAll(r.Context())
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, all)
}

func (h *FlightHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	var req service.UpdateFlightRequest
	if err := decode(r, &req); err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	resp, err := h.flights.Update(r.Context(), id, req)
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

func (h *FlightHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	deleted, err := h.flights.Delete(r.Context(), id)
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	if !deleted {
		httputil.WriteNotFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
