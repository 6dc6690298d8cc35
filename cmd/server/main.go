package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"flightplanner/internal/audit"
	"flightplanner/internal/planning"
	"flightplanner/internal/platform/config"
	"flightplanner/internal/platform/httpserver"
	"flightplanner/internal/platform/logger"
	"flightplanner/internal/platform/metrics"
	"flightplanner/internal/platform/postgres"
	"flightplanner/internal/service"
	"flightplanner/internal/store"
	httptransport "flightplanner/internal/transport/http"
)

// main wires dependencies and owns the process lifecycle. Business logic
// lives in the service and domain packages.
func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New(cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	var (
		aircraftStore store.AircraftStore
		airportStore  store.AirportStore
		flightStore   store.FlightStore
	)
	if cfg.DatabaseURL != "" {
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		aircraftStore = store.NewPostgresAircraftStore(pool)
		airportStore = store.NewPostgresAirportStore(pool)
		flightStore = store.NewPostgresFlightStore(pool)
		log.Info("using postgres stores")
	} else {
		aircraftStore = store.NewInMemoryAircraftStore()
		airportStore = store.NewInMemoryAirportStore()
		flightStore = store.NewInMemoryFlightStore()
		log.Warn("DATABASE_URL not set, using in-memory stores")
	}

	var publisher audit.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		kafka, err := audit.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaAuditTopic, log)
		if err != nil {
			log.Error("kafka client setup failed", "error", err)
			os.Exit(1)
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := kafka.Close(closeCtx); err != nil {
				log.Error("kafka shutdown failed", "error", err)
			}
		}()
		publisher = kafka
		log.Info("audit events go to kafka", "topic", cfg.KafkaAuditTopic)
	} else {
		publisher = audit.NewMemoryPublisher()
		log.Warn("KAFKA_BROKERS not set, audit events stay in memory")
	}

	distance := planning.NewHaversineDistanceCalculator()
	fuel := planning.NewSimpleFuelEstimator()

	opts := []service.Option{
		service.WithLogger(log),
		service.WithAuditPublisher(publisher),
		service.WithMetrics(m),
	}
	aircraftSvc := service.NewAircraftService(aircraftStore, opts...)
	airportSvc := service.NewAirportService(airportStore, opts...)
	flightSvc := service.NewFlightService(flightStore, airportStore, aircraftStore, distance, fuel, opts...)
	reportSvc := service.NewReportService(flightStore, airportStore, aircraftStore, distance, fuel)

	router := httptransport.NewRouter(httptransport.Deps{
		Aircraft: httptransport.NewAircraftHandler(aircraftSvc, log),
		Airports: httptransport.NewAirportHandler(airportSvc, log),
		Flights:  httptransport.NewFlightHandler(flightSvc, log),
		Reports:  httptransport.NewReportHandler(reportSvc, log),
		Logger:   log,
		Metrics:  m,
	})

	srv := httpserver.New(cfg.Addr, router)

	go func() {
		log.Info("starting flightplanner", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
