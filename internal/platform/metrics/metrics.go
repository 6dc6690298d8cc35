package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	AircraftCreated prometheus.Counter
	AirportsCreated prometheus.Counter
	FlightsCreated  prometheus.Counter
	FlightsPlanned  prometheus.Counter
	RequestDuration *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the metrics against a specific registerer so tests can
// use isolated registries.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AircraftCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "flightplanner_aircraft_created_total",
			Help: "Total number of aircraft created",
		}),
		AirportsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "flightplanner_airports_created_total",
			Help: "Total number of airports created",
		}),
		FlightsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "flightplanner_flights_created_total",
			Help: "Total number of flights created",
		}),
		FlightsPlanned: factory.NewCounter(prometheus.CounterOpts{
			Name: "flightplanner_flights_planned_total",
			Help: "Total number of flight estimate computations",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "flightplanner_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}
