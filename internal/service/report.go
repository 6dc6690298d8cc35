package service

import (
	"context"

	"flightplanner/internal/domain"
	"flightplanner/internal/store"
	dErrors "flightplanner/pkg/domain-errors"
)

// ReportService aggregates estimates across all flights. Flights whose
// references no longer resolve are skipped, matching the list endpoint.
type ReportService struct {
	flights  store.FlightStore
	resolver flightResolver
	distance domain.DistanceCalculator
	fuel     domain.FuelEstimator
}

func NewReportService(
	flights store.FlightStore,
	airports store.AirportStore,
	aircraft store.AircraftStore,
	distance domain.DistanceCalculator,
	fuel domain.FuelEstimator,
) *ReportService {
	return &ReportService{
		flights:  flights,
		resolver: flightResolver{airports: airports, aircraft: aircraft},
		distance: distance,
		fuel:     fuel,
	}
}

func (s *ReportService) Report(ctx context.Context) (*FlightReportResponse, error) {
	responses, err := s.planAll(ctx)
	if err != nil {
		return nil, err
	}
	report := &FlightReportResponse{
		Flights:      responses,
		TotalFlights: len(responses),
	}
	for _, r := range responses {
		report.TotalDistanceKm += r.Estimates.DistanceKm
		report.TotalFuelKg += r.Estimates.FuelKg
	}
	return report, nil
}

// Summary returns totals plus arithmetic means; averages are 0 when no flight
// resolved.
func (s *ReportService) Summary(ctx context.Context) (*FlightSummaryResponse, error) {
	report, err := s.Report(ctx)
	if err != nil {
		return nil, err
	}
	summary := &FlightSummaryResponse{
		TotalFlights:    report.TotalFlights,
		TotalDistanceKm: report.TotalDistanceKm,
		TotalFuelKg:     report.TotalFuelKg,
	}
	if report.TotalFlights > 0 {
		summary.AverageDistanceKm = report.TotalDistanceKm / float64(report.TotalFlights)
		summary.AverageFuelKg = report.TotalFuelKg / float64(report.TotalFlights)
	}
	return summary, nil
}

func (s *ReportService) planAll(ctx context.Context) ([]FlightResponse, error) {
	flights, err := s.flights.FindAll(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list flights")
	}
	airports, aircraft, err := s.resolver.resolve(ctx, flights)
	if err != nil {
		return nil, err
	}
	return planResolved(flights, airports, aircraft, s.distance, s.fuel)
}
