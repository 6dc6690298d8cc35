// Package store defines the persistence boundary consumed by the services.
// Implementations return sentinel.ErrNotFound for absent records; the
// services decide whether absence is an error or an empty result.
package store

import (
	"context"

	"github.com/google/uuid"

	"flightplanner/internal/domain"
)

// Stores are interface-driven so services stay testable and the in-memory and
// Postgres implementations can be swapped without touching business code.
type AircraftStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Aircraft, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Aircraft, error)
	FindByModel(ctx context.Context, model string) (*domain.Aircraft, error)
	FindAll(ctx context.Context) ([]*domain.Aircraft, error)
	Add(ctx context.Context, aircraft *domain.Aircraft) error
	Update(ctx context.Context, aircraft *domain.Aircraft) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type AirportStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Airport, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Airport, error)
	FindByIata(ctx context.Context, iata string) (*domain.Airport, error)
	FindAll(ctx context.Context) ([]*domain.Airport, error)
	// Search matches the term case-insensitively against name and IATA code;
	// an empty term matches all. Results are offset by skip and capped at take.
	Search(ctx context.Context, term string, skip, take int) ([]*domain.Airport, error)
	Count(ctx context.Context, term string) (int, error)
	Add(ctx context.Context, airport *domain.Airport) error
	Update(ctx context.Context, airport *domain.Airport) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type FlightStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Flight, error)
	FindAll(ctx context.Context) ([]*domain.Flight, error)
	Add(ctx context.Context, flight *domain.Flight) error
	// Update replaces the record keyed by flight.ID() when one exists and is
	// a no-op otherwise. See FlightService.Update for why absence is not an
	// error here.
	Update(ctx context.Context, flight *domain.Flight) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
