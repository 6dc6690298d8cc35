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

// AircraftReader and friends keep handlers decoupled from the concrete
// services so tests can swap in fakes.
type AircraftReader interface {
	Create(ctx context.Context, req service.CreateAircraftRequest) (*service.AircraftResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*service.AircraftResponse, error)
	GetAll(ctx context.Context) ([]service.AircraftResponse, error)
}

type AircraftHandler struct {
	aircraft AircraftReader
	logger   *slog.Logger
}

func NewAircraftHandler(aircraft AircraftReader, logger *slog.Logger) *AircraftHandler {
	return &AircraftHandler{aircraft: aircraft, logger: logger}
}

func (h *AircraftHandler) Register(r chi.Router) {
	r.Route("/aircrafts", func(r chi.Router) {
		r.Post("/", h.handleCreate)
		r.Get("/", h.handleGetAll)
		r.Get("/{id}", h.handleGet)
	})
}

func (h *AircraftHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req service.CreateAircraftRequest
	if err := decode(r, &req); err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	resp, err := h.aircraft.Create(r.Context(), req)
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	w.Header().Set("Location", "/aircrafts/"+resp.ID.String())
	httputil.WriteJSON(w, http.StatusCreated, resp)
}

func (h *AircraftHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	resp, err := h.aircraft.Get(r.Context(), id)
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

func (h *AircraftHandler) handleGetAll(w http.ResponseWriter, r *http.Request) {
	all, err := h.aircraft.GetAll(r.Context())
	if err != nil {
		writeFailure(w, r, h.logger, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, all)
}
