package domain

import (
	"time"

	"github.com/google/uuid"

	dErrors "flightplanner/pkg/domain-errors"
)

// Flight references its origin, destination, and aircraft by id. Referential
// integrity (that the ids resolve to stored entities) is the services' job;
// the entity only guarantees origin != destination.
type Flight struct {
	id            uuid.UUID
	originID      uuid.UUID
	destinationID uuid.UUID
	aircraftID    uuid.UUID
	departureAt   *time.Time
}

// NewFlight validates origin != destination and assigns a fresh identity.
// departureAt is optional and stored verbatim; past departures are accepted.
func NewFlight(originID, destinationID, aircraftID uuid.UUID, departureAt *time.Time) (*Flight, error) {
	if originID == destinationID {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Origin and destination must differ.")
	}
	return &Flight{
		id:            uuid.New(),
		originID:      originID,
		destinationID: destinationID,
		aircraftID:    aircraftID,
		departureAt:   departureAt,
	}, nil
}

// ReconstituteFlight rebuilds a flight with a pre-existing identity. For use
// by the persistence mapping layer and test fixtures only.
func ReconstituteFlight(id, originID, destinationID, aircraftID uuid.UUID, departureAt *time.Time) (*Flight, error) {
	if originID == destinationID {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Origin and destination must differ.")
	}
	return &Flight{
		id:            id,
		originID:      originID,
		destinationID: destinationID,
		aircraftID:    aircraftID,
		departureAt:   departureAt,
	}, nil
}

// Plan computes the estimates for this flight. The supplied entities must be
// the ones this flight references; the guard catches callers passing a
// mismatched combination of loaded aggregates. Estimates are derived on every
// call and never cached on the entity.
func (f *Flight) Plan(distance DistanceCalculator, fuel FuelEstimator, origin, destination *Airport, aircraft *Aircraft) (FlightEstimates, error) {
	if origin.ID() != f.originID || destination.ID() != f.destinationID || aircraft.ID() != f.aircraftID {
		return FlightEstimates{}, dErrors.New(dErrors.CodeBadRequest, "Mismatched aggregates.")
	}

	dKm := distance.DistanceKm(origin.Location(), destination.Location())
	return fuel.Estimate(aircraft, dKm)
}

func (f *Flight) ID() uuid.UUID {
	return f.id
}

func (f *Flight) OriginID() uuid.UUID {
	return f.originID
}

func (f *Flight) DestinationID() uuid.UUID {
	return f.destinationID
}

func (f *Flight) AircraftID() uuid.UUID {
	return f.aircraftID
}

func (f *Flight) DepartureAt() *time.Time {
	return f.departureAt
}
