package domain

import (
	"strings"

	"github.com/google/uuid"

	dErrors "flightplanner/pkg/domain-errors"
)

// Airport combines an IATA code, a display name, and a location. The IATA code
// and coordinate arrive pre-validated by their own constructors; only the name
// is checked here. IATA uniqueness is enforced at the service layer.
type Airport struct {
	id       uuid.UUID
	iata     IataCode
	name     string
	location GeoCoordinate
}

// NewAirport validates the name and assigns a fresh identity.
func NewAirport(iata IataCode, name string, location GeoCoordinate) (*Airport, error) {
	if strings.TrimSpace(name) == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Name is required.")
	}
	return &Airport{id: uuid.New(), iata: iata, name: name, location: location}, nil
}

// ReconstituteAirport rebuilds an airport with a pre-existing identity. For
// use by the persistence mapping layer and test fixtures only.
func ReconstituteAirport(id uuid.UUID, iata IataCode, name string, location GeoCoordinate) (*Airport, error) {
	if strings.TrimSpace(name) == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Name is required.")
	}
	return &Airport{id: id, iata: iata, name: name, location: location}, nil
}

// Update replaces iata, name, and location together. The name is re-validated
// before any field changes, so a failed update leaves the airport untouched.
func (a *Airport) Update(iata IataCode, name string, location GeoCoordinate) error {
	if strings.TrimSpace(name) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "Name is required.")
	}
	a.iata = iata
	a.name = name
	a.location = location
	return nil
}

func (a *Airport) ID() uuid.UUID {
	return a.id
}

func (a *Airport) Iata() IataCode {
	return a.iata
}

func (a *Airport) Name() string {
	return a.name
}

func (a *Airport) Location() GeoCoordinate {
	return a.location
}
