package service

import (
	"time"

	"github.com/google/uuid"

	"flightplanner/internal/domain"
)

type AircraftResponse struct {
	ID                uuid.UUID `json:"id"`
	Model             string    `json:"model"`
	CruiseSpeedKts    float64   `json:"cruiseSpeedKts"`
	FuelBurnPerHourKg float64   `json:"fuelBurnPerHourKg"`
	TakeoffFuelKg     float64   `json:"takeoffFuelKg"`
}

type AirportResponse struct {
	ID        uuid.UUID `json:"id"`
	Iata      string    `json:"iata"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

type FlightEstimatesResponse struct {
	DistanceKm float64 `json:"distanceKm"`
	Duration   string  `json:"duration"`
	FuelKg     float64 `json:"fuelKg"`
}

type FlightResponse struct {
	ID          uuid.UUID               `json:"id"`
	Origin      AirportResponse         `json:"origin"`
	Destination AirportResponse         `json:"destination"`
	Aircraft    AircraftResponse        `json:"aircraft"`
	DepartureAt *time.Time              `json:"departureAt,omitempty"`
	Estimates   FlightEstimatesResponse `json:"estimates"`
}

type PagedResponse[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
}

type FlightReportResponse struct {
	Flights         []FlightResponse `json:"flights"`
	TotalFlights    int              `json:"totalFlights"`
	TotalDistanceKm float64          `json:"totalDistanceKm"`
	TotalFuelKg     float64          `json:"totalFuelKg"`
}

type FlightSummaryResponse struct {
	TotalFlights      int     `json:"totalFlights"`
	TotalDistanceKm   float64 `json:"totalDistanceKm"`
	TotalFuelKg       float64 `json:"totalFuelKg"`
	AverageDistanceKm float64 `json:"averageDistanceKm"`
	AverageFuelKg     float64 `json:"averageFuelKg"`
}

func toAircraftResponse(a *domain.Aircraft) AircraftResponse {
	return AircraftResponse{
		ID:                a.ID(),
		Model:             a.Model(),
		CruiseSpeedKts:    a.CruiseSpeedKts(),
		FuelBurnPerHourKg: a.FuelBurnPerHourKg(),
		TakeoffFuelKg:     a.TakeoffFuelKg(),
	}
}

func toAirportResponse(a *domain.Airport) AirportResponse {
	return AirportResponse{
		ID:        a.ID(),
		Iata:      a.Iata().String(),
		Name:      a.Name(),
		Latitude:  a.Location().Latitude(),
		Longitude: a.Location().Longitude(),
	}
}

func toEstimatesResponse(e domain.FlightEstimates) FlightEstimatesResponse {
	return FlightEstimatesResponse{
		DistanceKm: e.DistanceKm(),
		Duration:   e.Duration().Round(time.Second).String(),
		FuelKg:     e.FuelKg(),
	}
}

func toFlightResponse(f *domain.Flight, origin, destination *domain.Airport, aircraft *domain.Aircraft, estimates domain.FlightEstimates) FlightResponse {
	return FlightResponse{
		ID:          f.ID(),
		Origin:      toAirportResponse(origin),
		Destination: toAirportResponse(destination),
		Aircraft:    toAircraftResponse(aircraft),
		DepartureAt: f.DepartureAt(),
		Estimates:   toEstimatesResponse(estimates),
	}
}
