package domain

import (
	"time"

	dErrors "flightplanner/pkg/domain-errors"
)

// FlightEstimates bundles the derived distance, duration, and fuel figures for
// one (origin, destination, aircraft) triple. Pure computed value; never
// persisted.
type FlightEstimates struct {
	distanceKm float64
	duration   time.Duration
	fuelKg     float64
}

// NewFlightEstimates validates the computed figures. Distances under 1 km are
// rejected: origin != destination does not rule out two airports closer than
// that, and such flights fail here rather than earlier.
func NewFlightEstimates(distanceKm float64, duration time.Duration, fuelKg float64) (FlightEstimates, error) {
	if distanceKm < 1 {
		return FlightEstimates{}, dErrors.New(dErrors.CodeBadRequest, "Distance must be at least 1 km.")
	}
	if duration < 0 {
		return FlightEstimates{}, dErrors.New(dErrors.CodeBadRequest, "Duration must be positive.")
	}
	if fuelKg < 0 {
		return FlightEstimates{}, dErrors.New(dErrors.CodeBadRequest, "Fuel must be non-negative.")
	}
	return FlightEstimates{distanceKm: distanceKm, duration: duration, fuelKg: fuelKg}, nil
}

func (e FlightEstimates) DistanceKm() float64 {
	return e.distanceKm
}

func (e FlightEstimates) Duration() time.Duration {
	return e.duration
}

func (e FlightEstimates) FuelKg() float64 {
	return e.fuelKg
}
