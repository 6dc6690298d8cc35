package service

import (
	"time"

	"github.com/google/uuid"
)

type CreateAircraftRequest struct {
	Model             string  `json:"model"`
	CruiseSpeedKts    float64 `json:"cruiseSpeedKts"`
	FuelBurnPerHourKg float64 `json:"fuelBurnPerHourKg"`
	TakeoffFuelKg     float64 `json:"takeoffFuelKg"`
}

type CreateAirportRequest struct {
	Iata      string  `json:"iata"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UpdateAirportRequest carries the full replacement state; airports have no
// partial update.
type UpdateAirportRequest struct {
	Iata      string  `json:"iata"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type CreateFlightRequest struct {
	OriginAirportID      uuid.UUID  `json:"originAirportId"`
	DestinationAirportID uuid.UUID  `json:"destinationAirportId"`
	AircraftID           uuid.UUID  `json:"aircraftId"`
	DepartureAt          *time.Time `json:"departureAt,omitempty"`
}

type UpdateFlightRequest struct {
	OriginAirportID      uuid.UUID  `json:"originAirportId"`
	DestinationAirportID uuid.UUID  `json:"destinationAirportId"`
	AircraftID           uuid.UUID  `json:"aircraftId"`
	DepartureAt          *time.Time `json:"departureAt,omitempty"`
}

// SearchAirportsQuery pages through airports by name or IATA code. Zero
// values fall back to page 1 with 10 results.
type SearchAirportsQuery struct {
	SearchTerm string
	Page       int
	PageSize   int
}

func (q SearchAirportsQuery) normalized() SearchAirportsQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 10
	}
	return q
}
