package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"flightplanner/internal/domain"
	"flightplanner/internal/store"
	dErrors "flightplanner/pkg/domain-errors"
)

// flightResolver batch-loads the airports and aircraft a set of flights
// references. The two lookups are independent and run concurrently.
type flightResolver struct {
	airports store.AirportStore
	aircraft store.AircraftStore
}

func (r flightResolver) resolve(ctx context.Context, flights []*domain.Flight) (map[uuid.UUID]*domain.Airport, map[uuid.UUID]*domain.Aircraft, error) {
	airportIDs := make(map[uuid.UUID]struct{})
	aircraftIDs := make(map[uuid.UUID]struct{})
	for _, f := range flights {
		airportIDs[f.OriginID()] = struct{}{}
		airportIDs[f.DestinationID()] = struct{}{}
		aircraftIDs[f.AircraftID()] = struct{}{}
	}

	airportsByID := make(map[uuid.UUID]*domain.Airport, len(airportIDs))
	aircraftByID := make(map[uuid.UUID]*domain.Aircraft, len(aircraftIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		airports, err := r.airports.FindByIDs(gctx, keys(airportIDs))
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load airports")
		}
		for _, a := range airports {
			airportsByID[a.ID()] = a
		}
		return nil
	})
	g.Go(func() error {
		aircraft, err := r.aircraft.FindByIDs(gctx, keys(aircraftIDs))
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load aircraft")
		}
		for _, a := range aircraft {
			aircraftByID[a.ID()] = a
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return airportsByID, aircraftByID, nil
}

// planResolved computes estimates for every flight whose references resolved
// and skips the rest. Orphaned flights stay invisible rather than failing the
// whole listing.
func planResolved(flights []*domain.Flight, airports map[uuid.UUID]*domain.Airport, aircraft map[uuid.UUID]*domain.Aircraft, distance domain.DistanceCalculator, fuel domain.FuelEstimator) ([]FlightResponse, error) {
	responses := make([]FlightResponse, 0, len(flights))
	for _, f := range flights {
		origin, ok := airports[f.OriginID()]
		if !ok {
			continue
		}
		destination, ok := airports[f.DestinationID()]
		if !ok {
			continue
		}
		plane, ok := aircraft[f.AircraftID()]
		if !ok {
			continue
		}
		estimates, err := f.Plan(distance, fuel, origin, destination, plane)
		if err != nil {
			return nil, err
		}
		responses = append(responses, toFlightResponse(f, origin, destination, plane, estimates))
	}
	return responses, nil
}

func keys(set map[uuid.UUID]struct{}) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}
