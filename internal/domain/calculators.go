package domain

// DistanceCalculator computes the great-circle distance between two
// coordinates. Implementations must be pure and deterministic.
type DistanceCalculator interface {
	DistanceKm(a, b GeoCoordinate) float64
}

// FuelEstimator derives duration and fuel burn for an aircraft flying a given
// distance. The returned estimates are validated by their own constructor, so
// an estimate for a sub-kilometer distance fails.
type FuelEstimator interface {
	Estimate(aircraft *Aircraft, distanceKm float64) (FlightEstimates, error)
}
