package httptransport

import (
	"log/slog"
	"net/http"

	"flightplanner/internal/audit"
	"flightplanner/internal/planning"
	"flightplanner/internal/service"
	"flightplanner/internal/store"
)

// testEnv wires the full router against in-memory stores so handler tests
// exercise routing, middleware, and JSON translation end to end.
type testEnv struct {
	router   http.Handler
	flights  *store.InMemoryFlightStore
	airports *store.InMemoryAirportStore
	aircraft *store.InMemoryAircraftStore
	trail    *audit.MemoryPublisher
}

func newTestEnv() *testEnv {
	env := &testEnv{
		flights:  store.NewInMemoryFlightStore(),
		airports: store.NewInMemoryAirportStore(),
		aircraft: store.NewInMemoryAircraftStore(),
		trail:    audit.NewMemoryPublisher(),
	}

	logger := slog.New(slog.DiscardHandler)
	distance := planning.NewHaversineDistanceCalculator()
	fuel := planning.NewSimpleFuelEstimator()

	aircraftSvc := service.NewAircraftService(env.aircraft, service.WithAuditPublisher(env.trail))
	airportSvc := service.NewAirportService(env.airports, service.WithAuditPublisher(env.trail))
	flightSvc := service.NewFlightService(env.flights, env.airports, env.aircraft, distance, fuel, service.WithAuditPublisher(env.trail))
	reportSvc := service.NewReportService(env.flights, env.airports, env.aircraft, distance, fuel)

	env.router = NewRouter(Deps{
		Aircraft: NewAircraftHandler(aircraftSvc, logger),
		Airports: NewAirportHandler(airportSvc, logger),
		Flights:  NewFlightHandler(flightSvc, logger),
		Reports:  NewReportHandler(reportSvc, logger),
		Logger:   logger,
	})
	return env
}
