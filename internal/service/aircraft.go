package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"flightplanner/internal/audit"
	"flightplanner/internal/domain"
	"flightplanner/internal/store"
	dErrors "flightplanner/pkg/domain-errors"
)

// AircraftService manages the aircraft catalog. Model uniqueness lives here
// rather than on the entity because it needs the store.
type AircraftService struct {
	aircraft store.AircraftStore
	opts     options
}

func NewAircraftService(aircraft store.AircraftStore, opts ...Option) *AircraftService {
	return &AircraftService{aircraft: aircraft, opts: newOptions(opts)}
}

func (s *AircraftService) Create(ctx context.Context, req CreateAircraftRequest) (*AircraftResponse, error) {
	existing, err := s.aircraft.FindByModel(ctx, req.Model)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up aircraft by model")
	}
	if existing != nil {
		return nil, dErrors.Newf(dErrors.CodeConflict, "Aircraft with model '%s' already exists", req.Model)
	}

	aircraft, err := domain.NewAircraft(req.Model, req.CruiseSpeedKts, req.FuelBurnPerHourKg, req.TakeoffFuelKg)
	if err != nil {
		return nil, err
	}
	if err := s.aircraft.Add(ctx, aircraft); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store aircraft")
	}

	s.opts.emit(ctx, "aircraft", aircraft.ID(), audit.ActionCreated)
	if s.opts.metrics != nil {
		s.opts.metrics.AircraftCreated.Inc()
	}

	resp := toAircraftResponse(aircraft)
	return &resp, nil
}

// Get returns nil without error when no aircraft exists; the transport layer
// maps that to 404.
func (s *AircraftService) Get(ctx context.Context, id uuid.UUID) (*AircraftResponse, error) {
	aircraft, err := s.aircraft.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load aircraft")
	}
	resp := toAircraftResponse(aircraft)
	return &resp, nil
}

func (s *AircraftService) GetAll(ctx context.Context) ([]AircraftResponse, error) {
	all, err := s.aircraft.FindAll(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list aircraft")
	}
	responses := make([]AircraftResponse, 0, len(all))
	for _, a := range all {
		responses = append(responses, toAircraftResponse(a))
	}
	return responses, nil
}
