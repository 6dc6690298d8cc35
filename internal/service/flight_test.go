package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"flightplanner/internal/audit"
	"flightplanner/internal/planning"
	"flightplanner/internal/store"
	dErrors "flightplanner/pkg/domain-errors"
)

type FlightServiceSuite struct {
	suite.Suite
	ctx      context.Context
	flights  *store.InMemoryFlightStore
	airports *store.InMemoryAirportStore
	aircraft *store.InMemoryAircraftStore
	trail    *audit.MemoryPublisher
	service  *FlightService

	jfk   *AirportResponse
	lax   *AirportResponse
	b737  *AircraftResponse
	wings *AirportService
	fleet *AircraftService
}

func TestFlightServiceSuite(t *testing.T) {
	suite.Run(t, new(FlightServiceSuite))
}

func (s *FlightServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.flights = store.NewInMemoryFlightStore()
	s.airports = store.NewInMemoryAirportStore()
	s.aircraft = store.NewInMemoryAircraftStore()
	s.trail = audit.NewMemoryPublisher()
	s.service = NewFlightService(
		s.flights, s.airports, s.aircraft,
		planning.NewHaversineDistanceCalculator(),
		planning.NewSimpleFuelEstimator(),
		WithAuditPublisher(s.trail),
	)

	s.wings = NewAirportService(s.airports)
	s.fleet = NewAircraftService(s.aircraft)

	var err error
	s.jfk, err = s.wings.Create(s.ctx, CreateAirportRequest{Iata: "JFK", Name: "John F. Kennedy International", Latitude: 40.6413, Longitude: -73.7781})
	s.Require().NoError(err)
	s.lax, err = s.wings.Create(s.ctx, CreateAirportRequest{Iata: "LAX", Name: "Los Angeles International", Latitude: 33.9416, Longitude: -118.4085})
	s.Require().NoError(err)
	s.b737, err = s.fleet.Create(s.ctx, CreateAircraftRequest{Model: "Boeing 737-800", CruiseSpeedKts: 450, FuelBurnPerHourKg: 2500, TakeoffFuelKg: 20000})
	s.Require().NoError(err)
}

func (s *FlightServiceSuite) validRequest() CreateFlightRequest {
	return CreateFlightRequest{
		OriginAirportID:      s.jfk.ID,
		DestinationAirportID: s.lax.ID,
		AircraftID:           s.b737.ID,
	}
}

func (s *FlightServiceSuite) TestCreate() {
	s.Run("creates flight with computed estimates", func() {
		departure := time.Date(2026, 10, 1, 14, 30, 0, 0, time.UTC)
		req := s.validRequest()
		req.DepartureAt = &departure

		resp, err := s.service.Create(s.ctx, req)
		s.Require().NoError(err)
		s.NotEqual(uuid.Nil, resp.ID)
		s.Equal("JFK", resp.Origin.Iata)
		s.Equal("LAX", resp.Destination.Iata)
		s.Equal("Boeing 737-800", resp.Aircraft.Model)
		s.Require().NotNil(resp.DepartureAt)
		s.True(departure.Equal(*resp.DepartureAt))
		s.InDelta(3974.34, resp.Estimates.DistanceKm, 0.5)
		s.InDelta(31922.06, resp.Estimates.FuelKg, 1.0)

		stored, err := s.flights.FindByID(s.ctx, resp.ID)
		s.Require().NoError(err)
		s.Equal(s.jfk.ID, stored.OriginID())
	})

	s.Run("same origin and destination is rejected before persisting", func() {
		req := s.validRequest()
		req.DestinationAirportID = req.OriginAirportID
		_, err := s.service.Create(s.ctx, req)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
		s.Equal("Origin and destination must differ.", dErrors.MessageOf(err))

		all, err := s.flights.FindAll(s.ctx)
		s.Require().NoError(err)
		s.Len(all, 1) // only the flight from the previous subtest
	})
}

func (s *FlightServiceSuite) TestCreateMissingReferences() {
	cases := []struct {
		name    string
		mutate  func(*CreateFlightRequest)
		message string
	}{
		{"missing origin reported first", func(r *CreateFlightRequest) {
			r.OriginAirportID = uuid.New()
			r.DestinationAirportID = uuid.New()
			r.AircraftID = uuid.New()
		}, "Origin airport not found"},
		{"missing destination reported second", func(r *CreateFlightRequest) {
			r.DestinationAirportID = uuid.New()
			r.AircraftID = uuid.New()
		}, "Destination airport not found"},
		{"missing aircraft reported last", func(r *CreateFlightRequest) {
			r.AircraftID = uuid.New()
		}, "Aircraft not found"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			req := s.validRequest()
			tc.mutate(&req)
			_, err := s.service.Create(s.ctx, req)
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
			s.Equal(tc.message, dErrors.MessageOf(err))
		})
	}

	s.Run("nothing was persisted", func() {
		all, err := s.flights.FindAll(s.ctx)
		s.Require().NoError(err)
		s.Empty(all)
	})
}

func (s *FlightServiceSuite) TestGet() {
	s.Run("absent flight returns nil without error", func() {
		resp, err := s.service.Get(s.ctx, uuid.New())
		s.NoError(err)
		s.Nil(resp)
	})

	s.Run("estimates are deterministic across reads", func() {
		created, err := s.service.Create(s.ctx, s.validRequest())
		s.Require().NoError(err)

		first, err := s.service.Get(s.ctx, created.ID)
		s.Require().NoError(err)
		second, err := s.service.Get(s.ctx, created.ID)
		s.Require().NoError(err)
		s.Equal(first.Estimates, second.Estimates)
	})

	s.Run("orphaned reference reads as absent", func() {
		created, err := s.service.Create(s.ctx, s.validRequest())
		s.Require().NoError(err)

		deleted, err := s.aircraft.Delete(s.ctx, s.b737.ID)
		s.Require().NoError(err)
		s.Require().True(deleted)

		resp, err := s.service.Get(s.ctx, created.ID)
		s.NoError(err)
		s.Nil(resp)
	})
}

func (s *FlightServiceSuite) TestUpdate() {
	s.Run("absent flight returns nil without error", func() {
		resp, err := s.service.Update(s.ctx, uuid.New(), UpdateFlightRequest(s.validRequest()))
		s.NoError(err)
		s.Nil(resp)
	})

	s.Run("missing reference fails with not found", func() {
		created, err := s.service.Create(s.ctx, s.validRequest())
		s.Require().NoError(err)

		req := UpdateFlightRequest(s.validRequest())
		req.AircraftID = uuid.New()
		_, err = s.service.Update(s.ctx, created.ID, req)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
		s.Equal("Aircraft not found", dErrors.MessageOf(err))
	})

	s.Run("replacement carries a fresh identity and the store keeps the original", func() {
		created, err := s.service.Create(s.ctx, s.validRequest())
		s.Require().NoError(err)

		departure := time.Date(2026, 11, 2, 8, 0, 0, 0, time.UTC)
		req := UpdateFlightRequest(s.validRequest())
		req.DepartureAt = &departure

		resp, err := s.service.Update(s.ctx, created.ID, req)
		s.Require().NoError(err)
		s.NotEqual(created.ID, resp.ID)
		s.Require().NotNil(resp.DepartureAt)
		s.True(departure.Equal(*resp.DepartureAt))

		// The replacement's identity matches nothing in the store, so the
		// original record survives unchanged.
		stored, err := s.flights.FindByID(s.ctx, created.ID)
		s.Require().NoError(err)
		s.Nil(stored.DepartureAt())
		_, err = s.flights.FindByID(s.ctx, resp.ID)
		s.ErrorIs(err, store.ErrNotFound)
	})
}

func (s *FlightServiceSuite) TestDelete() {
	s.Run("reports true for a removed flight", func() {
		created, err := s.service.Create(s.ctx, s.validRequest())
		s.Require().NoError(err)

		deleted, err := s.service.Delete(s.ctx, created.ID)
		s.Require().NoError(err)
		s.True(deleted)

		events := s.trail.Events()
		s.Equal(audit.ActionDeleted, events[len(events)-1].Action)
	})

	s.Run("reports false for an unknown id", func() {
		deleted, err := s.service.Delete(s.ctx, uuid.New())
		s.Require().NoError(err)
		s.False(deleted)
	})
}

func (s *FlightServiceSuite) TestGetAll() {
	s.Run("skips flights whose references are gone", func() {
		first, err := s.service.Create(s.ctx, s.validRequest())
		s.Require().NoError(err)

		orphanCraft, err := s.fleet.Create(s.ctx, CreateAircraftRequest{Model: "Airbus A320", CruiseSpeedKts: 447, FuelBurnPerHourKg: 2400, TakeoffFuelKg: 18000})
		s.Require().NoError(err)
		req := s.validRequest()
		req.AircraftID = orphanCraft.ID
		_, err = s.service.Create(s.ctx, req)
		s.Require().NoError(err)

		deleted, err := s.aircraft.Delete(s.ctx, orphanCraft.ID)
		s.Require().NoError(err)
		s.Require().True(deleted)

		all, err := s.service.GetAll(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(all, 1)
		s.Equal(first.ID, all[0].ID)
	})
}
