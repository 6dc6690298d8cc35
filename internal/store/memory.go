package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"flightplanner/internal/domain"
)

// In-memory stores back the test suites and local development. They
// intentionally favor clarity over performance.
type InMemoryAircraftStore struct {
	mu       sync.RWMutex
	aircraft map[uuid.UUID]*domain.Aircraft
}

func NewInMemoryAircraftStore() *InMemoryAircraftStore {
	return &InMemoryAircraftStore{aircraft: make(map[uuid.UUID]*domain.Aircraft)}
}

func (s *InMemoryAircraftStore) FindByID(_ context.Context, id uuid.UUID) (*domain.Aircraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.aircraft[id]; ok {
		return a, nil
	}
	return nil, ErrNotFound
}

func (s *InMemoryAircraftStore) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*domain.Aircraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	found := make([]*domain.Aircraft, 0, len(ids))
	for _, id := range ids {
		if a, ok := s.aircraft[id]; ok {
			found = append(found, a)
		}
	}
	return found, nil
}

func (s *InMemoryAircraftStore) FindByModel(_ context.Context, model string) (*domain.Aircraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.aircraft {
		if a.Model() == model {
			return a, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryAircraftStore) FindAll(_ context.Context) ([]*domain.Aircraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]*domain.Aircraft, 0, len(s.aircraft))
	for _, a := range s.aircraft {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Model() < all[j].Model() })
	return all, nil
}

func (s *InMemoryAircraftStore) Add(_ context.Context, aircraft *domain.Aircraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aircraft[aircraft.ID()] = aircraft
	return nil
}

func (s *InMemoryAircraftStore) Update(_ context.Context, aircraft *domain.Aircraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.aircraft[aircraft.ID()]; ok {
		s.aircraft[aircraft.ID()] = aircraft
	}
	return nil
}

func (s *InMemoryAircraftStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.aircraft[id]; !ok {
		return false, nil
	}
	delete(s.aircraft, id)
	return true, nil
}

type InMemoryAirportStore struct {
	mu       sync.RWMutex
	airports map[uuid.UUID]*domain.Airport
}

func NewInMemoryAirportStore() *InMemoryAirportStore {
	return &InMemoryAirportStore{airports: make(map[uuid.UUID]*domain.Airport)}
}

func (s *InMemoryAirportStore) FindByID(_ context.Context, id uuid.UUID) (*domain.Airport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.airports[id]; ok {
		return a, nil
	}
	return nil, ErrNotFound
}

func (s *InMemoryAirportStore) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*domain.Airport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	found := make([]*domain.Airport, 0, len(ids))
	for _, id := range ids {
		if a, ok := s.airports[id]; ok {
			found = append(found, a)
		}
	}
	return found, nil
}

func (s *InMemoryAirportStore) FindByIata(_ context.Context, iata string) (*domain.Airport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	needle := strings.ToUpper(iata)
	for _, a := range s.airports {
		if a.Iata().String() == needle {
			return a, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryAirportStore) FindAll(_ context.Context) ([]*domain.Airport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked(""), nil
}

func (s *InMemoryAirportStore) Search(_ context.Context, term string, skip, take int) ([]*domain.Airport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := s.sortedLocked(term)
	if skip >= len(matches) {
		return nil, nil
	}
	matches = matches[skip:]
	if take < len(matches) {
		matches = matches[:take]
	}
	return matches, nil
}

func (s *InMemoryAirportStore) Count(_ context.Context, term string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sortedLocked(term)), nil
}

// sortedLocked returns the airports matching term, name-ordered for stable
// pagination. Callers must hold at least a read lock.
func (s *InMemoryAirportStore) sortedLocked(term string) []*domain.Airport {
	needle := strings.ToLower(strings.TrimSpace(term))
	matches := make([]*domain.Airport, 0, len(s.airports))
	for _, a := range s.airports {
		if needle == "" ||
			strings.Contains(strings.ToLower(a.Name()), needle) ||
			strings.Contains(strings.ToLower(a.Iata().String()), needle) {
			matches = append(matches, a)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Name() < matches[j].Name() })
	return matches
}

func (s *InMemoryAirportStore) Add(_ context.Context, airport *domain.Airport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.airports[airport.ID()] = airport
	return nil
}

func (s *InMemoryAirportStore) Update(_ context.Context, airport *domain.Airport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.airports[airport.ID()]; ok {
		s.airports[airport.ID()] = airport
	}
	return nil
}

func (s *InMemoryAirportStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.airports[id]; !ok {
		return false, nil
	}
	delete(s.airports, id)
	return true, nil
}

type InMemoryFlightStore struct {
	mu      sync.RWMutex
	flights map[uuid.UUID]*domain.Flight
	order   []uuid.UUID
}

func NewInMemoryFlightStore() *InMemoryFlightStore {
	return &InMemoryFlightStore{flights: make(map[uuid.UUID]*domain.Flight)}
}

func (s *InMemoryFlightStore) FindByID(_ context.Context, id uuid.UUID) (*domain.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if f, ok := s.flights[id]; ok {
		return f, nil
	}
	return nil, ErrNotFound
}

func (s *InMemoryFlightStore) FindAll(_ context.Context) ([]*domain.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]*domain.Flight, 0, len(s.order))
	for _, id := range s.order {
		all = append(all, s.flights[id])
	}
	return all, nil
}

func (s *InMemoryFlightStore) Add(_ context.Context, flight *domain.Flight) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.flights[flight.ID()]; !ok {
		s.order = append(s.order, flight.ID())
	}
	s.flights[flight.ID()] = flight
	return nil
}

func (s *InMemoryFlightStore) Update(_ context.Context, flight *domain.Flight) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.flights[flight.ID()]; ok {
		s.flights[flight.ID()] = flight
	}
	return nil
}

func (s *InMemoryFlightStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.flights[id]; !ok {
		return false, nil
	}
	delete(s.flights, id)
	for i, fid := range s.order {
		if fid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}
