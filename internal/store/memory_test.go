package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"flightplanner/internal/domain"
	"flightplanner/pkg/platform/sentinel"
)

type MemoryStoreSuite struct {
	suite.Suite
	ctx      context.Context
	aircraft *InMemoryAircraftStore
	airports *InMemoryAirportStore
	flights  *InMemoryFlightStore
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.aircraft = NewInMemoryAircraftStore()
	s.airports = NewInMemoryAirportStore()
	s.flights = NewInMemoryFlightStore()
}

func (s *MemoryStoreSuite) newAircraft(model string) *domain.Aircraft {
	a, err := domain.NewAircraft(model, 450, 2500, 20000)
	s.Require().NoError(err)
	return a
}

func (s *MemoryStoreSuite) newAirport(iataCode, name string) *domain.Airport {
	iata, err := domain.NewIataCode(iataCode)
	s.Require().NoError(err)
	location, err := domain.NewGeoCoordinate(40, -73)
	s.Require().NoError(err)
	airport, err := domain.NewAirport(iata, name, location)
	s.Require().NoError(err)
	return airport
}

func (s *MemoryStoreSuite) newFlight() *domain.Flight {
	f, err := domain.NewFlight(uuid.New(), uuid.New(), uuid.New(), nil)
	s.Require().NoError(err)
	return f
}

func (s *MemoryStoreSuite) TestAircraftLookups() {
	s.Run("add and find by id", func() {
		a := s.newAircraft("Boeing 737-800")
		s.Require().NoError(s.aircraft.Add(s.ctx, a))

		found, err := s.aircraft.FindByID(s.ctx, a.ID())
		s.Require().NoError(err)
		s.Equal(a.Model(), found.Model())
	})

	s.Run("unknown id returns ErrNotFound", func() {
		_, err := s.aircraft.FindByID(s.ctx, uuid.New())
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("find by model", func() {
		a := s.newAircraft("A321neo")
		s.Require().NoError(s.aircraft.Add(s.ctx, a))

		found, err := s.aircraft.FindByModel(s.ctx, "A321neo")
		s.Require().NoError(err)
		s.Equal(a.ID(), found.ID())

		_, err = s.aircraft.FindByModel(s.ctx, "A380")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("find by ids skips missing", func() {
		a := s.newAircraft("E195")
		b := s.newAircraft("B744")
		s.Require().NoError(s.aircraft.Add(s.ctx, a))
		s.Require().NoError(s.aircraft.Add(s.ctx, b))

		found, err := s.aircraft.FindByIDs(s.ctx, []uuid.UUID{a.ID(), uuid.New(), b.ID()})
		s.Require().NoError(err)
		s.Len(found, 2)
	})

	s.Run("delete reports whether a record was removed", func() {
		a := s.newAircraft("DC-3")
		s.Require().NoError(s.aircraft.Add(s.ctx, a))

		removed, err := s.aircraft.Delete(s.ctx, a.ID())
		s.Require().NoError(err)
		s.True(removed)

		removed, err = s.aircraft.Delete(s.ctx, a.ID())
		s.Require().NoError(err)
		s.False(removed)
	})
}

func (s *MemoryStoreSuite) TestAirportIataLookup() {
	airport := s.newAirport("jfk", "John F. Kennedy International Airport")
	s.Require().NoError(s.airports.Add(s.ctx, airport))

	s.Run("lookup is case-insensitive", func() {
		for _, code := range []string{"JFK", "jfk", "Jfk"} {
			found, err := s.airports.FindByIata(s.ctx, code)
			s.Require().NoError(err, "code %q", code)
			s.Equal(airport.ID(), found.ID())
		}
	})

	s.Run("unknown code returns ErrNotFound", func() {
		_, err := s.airports.FindByIata(s.ctx, "LAX")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *MemoryStoreSuite) TestAirportSearch() {
	names := []string{
		"Amsterdam Schiphol",
		"Berlin Brandenburg",
		"Chicago O'Hare International",
		"Dallas Fort Worth International",
		"Denver International",
	}
	codes := []string{"AMS", "BER", "ORD", "DFW", "DEN"}
	for i, name := range names {
		s.Require().NoError(s.airports.Add(s.ctx, s.newAirport(codes[i], name)))
	}

	s.Run("empty term matches all", func() {
		count, err := s.airports.Count(s.ctx, "")
		s.Require().NoError(err)
		s.Equal(5, count)
	})

	s.Run("matches name case-insensitively", func() {
		found, err := s.airports.Search(s.ctx, "international", 0, 10)
		s.Require().NoError(err)
		s.Len(found, 3)
	})

	s.Run("matches iata code", func() {
		found, err := s.airports.Search(s.ctx, "ams", 0, 10)
		s.Require().NoError(err)
		s.Require().Len(found, 1)
		s.Equal("AMS", found[0].Iata().String())
	})

	s.Run("skip and take window the name-ordered results", func() {
		page1, err := s.airports.Search(s.ctx, "", 0, 2)
		s.Require().NoError(err)
		page2, err := s.airports.Search(s.ctx, "", 2, 2)
		s.Require().NoError(err)

		s.Require().Len(page1, 2)
		s.Require().Len(page2, 2)
		s.Equal("Amsterdam Schiphol", page1[0].Name())
		s.Equal("Chicago O'Hare International", page2[0].Name())
	})

	s.Run("skip past the end returns empty", func() {
		found, err := s.airports.Search(s.ctx, "", 10, 5)
		s.Require().NoError(err)
		s.Empty(found)
	})
}

func (s *MemoryStoreSuite) TestFlightUpdateSemantics() {
	s.Run("updates an existing record", func() {
		f := s.newFlight()
		s.Require().NoError(s.flights.Add(s.ctx, f))

		replacement, err := domain.ReconstituteFlight(f.ID(), uuid.New(), uuid.New(), uuid.New(), nil)
		s.Require().NoError(err)
		s.Require().NoError(s.flights.Update(s.ctx, replacement))

		found, err := s.flights.FindByID(s.ctx, f.ID())
		s.Require().NoError(err)
		s.Equal(replacement.OriginID(), found.OriginID())
	})

	s.Run("update of an unknown id is a no-op", func() {
		f := s.newFlight()
		s.Require().NoError(s.flights.Update(s.ctx, f))

		_, err := s.flights.FindByID(s.ctx, f.ID())
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *MemoryStoreSuite) TestFlightOrderIsStable() {
	var ids []uuid.UUID
	for i := 0; i < 4; i++ {
		f := s.newFlight()
		ids = append(ids, f.ID())
		s.Require().NoError(s.flights.Add(s.ctx, f))
	}

	all, err := s.flights.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 4)
	for i, f := range all {
		s.Equal(ids[i], f.ID(), fmt.Sprintf("position %d", i))
	}
}
