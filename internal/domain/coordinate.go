package domain

import (
	dErrors "flightplanner/pkg/domain-errors"
)

// GeoCoordinate is a validated latitude/longitude pair. The zero value is the
// null island coordinate; use NewGeoCoordinate to get a bounds-checked one.
// Two coordinates with equal fields compare equal with ==.
type GeoCoordinate struct {
	latitude  float64
	longitude float64
}

// NewGeoCoordinate validates latitude against [-90, 90] and longitude against
// [-180, 180].
func NewGeoCoordinate(latitude, longitude float64) (GeoCoordinate, error) {
	if latitude < -90 || latitude > 90 {
		return GeoCoordinate{}, dErrors.New(dErrors.CodeBadRequest, "Latitude must be between -90 and 90.")
	}
	if longitude < -180 || longitude > 180 {
		return GeoCoordinate{}, dErrors.New(dErrors.CodeBadRequest, "Longitude must be between -180 and 180.")
	}
	return GeoCoordinate{latitude: latitude, longitude: longitude}, nil
}

func (c GeoCoordinate) Latitude() float64 {
	return c.latitude
}

func (c GeoCoordinate) Longitude() float64 {
	return c.longitude
}
