// Package httptransport is the thin HTTP layer. Handlers decode requests,
// delegate to the services, and translate results into JSON responses; no
// business logic lives here.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"flightplanner/internal/platform/metrics"
	"flightplanner/internal/platform/middleware"
	"flightplanner/pkg/platform/httputil"
)

// Deps bundles everything the router mounts.
type Deps struct {
	Aircraft *AircraftHandler
	Airports *AirportHandler
	Flights  *FlightHandler
	Reports  *ReportHandler
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
}

// NewRouter wires the middleware chain and every route.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)
	r.Use(middleware.Latency(deps.Metrics))

	deps.Aircraft.Register(r)
	deps.Airports.Register(r)
	deps.Flights.Register(r)
	deps.Reports.Register(r)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
