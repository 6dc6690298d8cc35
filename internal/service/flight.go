package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"flightplanner/internal/audit"
	"flightplanner/internal/domain"
	"flightplanner/internal/store"
	dErrors "flightplanner/pkg/domain-errors"
)

// FlightService manages flights and computes their estimates. Estimates are
// derived on every read, never persisted.
type FlightService struct {
	flights  store.FlightStore
	airports store.AirportStore
	aircraft store.AircraftStore
	distance domain.DistanceCalculator
	fuel     domain.FuelEstimator
	opts     options
}

func NewFlightService(
	flights store.FlightStore,
	airports store.AirportStore,
	aircraft store.AircraftStore,
	distance domain.DistanceCalculator,
	fuel domain.FuelEstimator,
	opts ...Option,
) *FlightService {
	return &FlightService{
		flights:  flights,
		airports: airports,
		aircraft: aircraft,
		distance: distance,
		fuel:     fuel,
		opts:     newOptions(opts),
	}
}

// resolveRefs loads the three entities a flight references. The order of the
// checks is part of the API contract: origin, then destination, then
// aircraft, short-circuiting on the first missing reference.
func (s *FlightService) resolveRefs(ctx context.Context, originID, destinationID, aircraftID uuid.UUID) (*domain.Airport, *domain.Airport, *domain.Aircraft, error) {
	origin, err := s.airports.FindByID(ctx, originID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, nil, dErrors.New(dErrors.CodeNotFound, "Origin airport not found")
		}
		return nil, nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load origin airport")
	}
	destination, err := s.airports.FindByID(ctx, destinationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, nil, dErrors.New(dErrors.CodeNotFound, "Destination airport not found")
		}
		return nil, nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load destination airport")
	}
	aircraft, err := s.aircraft.FindByID(ctx, aircraftID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, nil, dErrors.New(dErrors.CodeNotFound, "Aircraft not found")
		}
		return nil, nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load aircraft")
	}
	return origin, destination, aircraft, nil
}

func (s *FlightService) Create(ctx context.Context, req CreateFlightRequest) (*FlightResponse, error) {
	origin, destination, aircraft, err := s.resolveRefs(ctx, req.OriginAirportID, req.DestinationAirportID, req.AircraftID)
	if err != nil {
		return nil, err
	}

	flight, err := domain.NewFlight(req.OriginAirportID, req.DestinationAirportID, req.AircraftID, req.DepartureAt)
	if err != nil {
		return nil, err
	}
	estimates, err := flight.Plan(s.distance, s.fuel, origin, destination, aircraft)
	if err != nil {
		return nil, err
	}
	if err := s.flights.Add(ctx, flight); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store flight")
	}

	s.opts.emit(ctx, "flight", flight.ID(), audit.ActionCreated)
	if s.opts.metrics != nil {
		s.opts.metrics.FlightsCreated.Inc()
		s.opts.metrics.FlightsPlanned.Inc()
	}

	resp := toFlightResponse(flight, origin, destination, aircraft, estimates)
	return &resp, nil
}

// Get returns nil when the flight is missing, and also when any of its
// references no longer resolve. An orphaned flight reads as absent instead of
// erroring, unlike Create which names the missing reference.
func (s *FlightService) Get(ctx context.Context, id uuid.UUID) (*FlightResponse, error) {
	flight, err := s.flights.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load flight")
	}

	var (
		origin      *domain.Airport
		destination *domain.Airport
		aircraft    *domain.Aircraft
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		origin, err = s.airports.FindByID(gctx, flight.OriginID())
		return err
	})
	g.Go(func() (err error) {
		destination, err = s.airports.FindByID(gctx, flight.DestinationID())
		return err
	})
	g.Go(func() (err error) {
		aircraft, err = s.aircraft.FindByID(gctx, flight.AircraftID())
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load flight references")
	}

	estimates, err := flight.Plan(s.distance, s.fuel, origin, destination, aircraft)
	if err != nil {
		return nil, err
	}
	resp := toFlightResponse(flight, origin, destination, aircraft, estimates)
	return &resp, nil
}

func (s *FlightService) GetAll(ctx context.Context) ([]FlightResponse, error) {
	flights, err := s.flights.FindAll(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list flights")
	}
	resolver := flightResolver{airports: s.airports, aircraft: s.aircraft}
	airports, aircraft, err := resolver.resolve(ctx, flights)
	if err != nil {
		return nil, err
	}
	return planResolved(flights, airports, aircraft, s.distance, s.fuel)
}

// Update replaces a flight's references and departure time. The replacement
// is a freshly constructed flight with its own identity; the store's update
// keys on that identity, so an unmatched replace is a silent no-op rather
// than an error. The response reflects the replacement value either way.
func (s *FlightService) Update(ctx context.Context, id uuid.UUID, req UpdateFlightRequest) (*FlightResponse, error) {
	if _, err := s.flights.FindByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load flight")
	}

	origin, destination, aircraft, err := s.resolveRefs(ctx, req.OriginAirportID, req.DestinationAirportID, req.AircraftID)
	if err != nil {
		return nil, err
	}

	flight, err := domain.NewFlight(req.OriginAirportID, req.DestinationAirportID, req.AircraftID, req.DepartureAt)
	if err != nil {
		return nil, err
	}
	estimates, err := flight.Plan(s.distance, s.fuel, origin, destination, aircraft)
	if err != nil {
		return nil, err
	}
	if err := s.flights.Update(ctx, flight); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store flight")
	}

	s.opts.emit(ctx, "flight", id, audit.ActionUpdated)

	resp := toFlightResponse(flight, origin, destination, aircraft, estimates)
	return &resp, nil
}

// Delete reports whether a flight was removed.
func (s *FlightService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.flights.Delete(ctx, id)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete flight")
	}
	if deleted {
		s.opts.emit(ctx, "flight", id, audit.ActionDeleted)
	}
	return deleted, nil
}
