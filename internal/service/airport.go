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

// AirportService manages airports. IATA uniqueness lives here; field
// validation lives on the value objects and the entity.
type AirportService struct {
	airports store.AirportStore
	opts     options
}

func NewAirportService(airports store.AirportStore, opts ...Option) *AirportService {
	return &AirportService{airports: airports, opts: newOptions(opts)}
}

func (s *AirportService) Create(ctx context.Context, req CreateAirportRequest) (*AirportResponse, error) {
	iata, err := domain.NewIataCode(req.Iata)
	if err != nil {
		return nil, err
	}
	location, err := domain.NewGeoCoordinate(req.Latitude, req.Longitude)
	if err != nil {
		return nil, err
	}

	existing, err := s.airports.FindByIata(ctx, iata.String())
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up airport by IATA code")
	}
	if existing != nil {
		return nil, dErrors.Newf(dErrors.CodeConflict, "Airport with IATA code '%s' already exists", iata.String())
	}

	airport, err := domain.NewAirport(iata, req.Name, location)
	if err != nil {
		return nil, err
	}
	if err := s.airports.Add(ctx, airport); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store airport")
	}

	s.opts.emit(ctx, "airport", airport.ID(), audit.ActionCreated)
	if s.opts.metrics != nil {
		s.opts.metrics.AirportsCreated.Inc()
	}

	resp := toAirportResponse(airport)
	return &resp, nil
}

func (s *AirportService) Get(ctx context.Context, id uuid.UUID) (*AirportResponse, error) {
	airport, err := s.airports.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load airport")
	}
	resp := toAirportResponse(airport)
	return &resp, nil
}

// Search pages through airports matching the term by name or IATA code. An
// empty term matches everything.
func (s *AirportService) Search(ctx context.Context, query SearchAirportsQuery) (*PagedResponse[AirportResponse], error) {
	query = query.normalized()
	skip := (query.Page - 1) * query.PageSize

	airports, err := s.airports.Search(ctx, query.SearchTerm, skip, query.PageSize)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to search airports")
	}
	total, err := s.airports.Count(ctx, query.SearchTerm)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count airports")
	}

	items := make([]AirportResponse, 0, len(airports))
	for _, a := range airports {
		items = append(items, toAirportResponse(a))
	}
	return &PagedResponse[AirportResponse]{
		Items:      items,
		Page:       query.Page,
		PageSize:   query.PageSize,
		TotalCount: total,
		TotalPages: (total + query.PageSize - 1) / query.PageSize,
	}, nil
}

// Update replaces iata, name, and location together. A missing airport is an
// absent result, not an error.
func (s *AirportService) Update(ctx context.Context, id uuid.UUID, req UpdateAirportRequest) (*AirportResponse, error) {
	airport, err := s.airports.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load airport")
	}

	iata, err := domain.NewIataCode(req.Iata)
	if err != nil {
		return nil, err
	}
	location, err := domain.NewGeoCoordinate(req.Latitude, req.Longitude)
	if err != nil {
		return nil, err
	}
	if err := airport.Update(iata, req.Name, location); err != nil {
		return nil, err
	}
	if err := s.airports.Update(ctx, airport); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store airport")
	}

	s.opts.emit(ctx, "airport", airport.ID(), audit.ActionUpdated)

	resp := toAirportResponse(airport)
	return &resp, nil
}
