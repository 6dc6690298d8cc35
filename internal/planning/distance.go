// Package planning implements the distance and fuel calculators behind
// Flight.Plan.
package planning

import (
	"math"

	"flightplanner/internal/domain"
)

const earthRadiusKm = 6371.0

// HaversineDistanceCalculator computes great-circle distances on a spherical
// Earth. Downstream tests pin exact haversine values for known city pairs, so
// this must stay the textbook formula.
type HaversineDistanceCalculator struct{}

func NewHaversineDistanceCalculator() HaversineDistanceCalculator {
	return HaversineDistanceCalculator{}
}

func (HaversineDistanceCalculator) DistanceKm(a, b domain.GeoCoordinate) float64 {
	lat1 := degreesToRadians(a.Latitude())
	lat2 := degreesToRadians(b.Latitude())
	deltaLat := degreesToRadians(b.Latitude() - a.Latitude())
	deltaLon := degreesToRadians(b.Longitude() - a.Longitude())

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	centralAngle := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * centralAngle
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
