package domain

import (
	"strings"

	"github.com/google/uuid"

	dErrors "flightplanner/pkg/domain-errors"
)

// Aircraft holds the performance characteristics the fuel estimator needs.
// Immutable after construction; model uniqueness is enforced at the service
// layer, not here.
type Aircraft struct {
	id                uuid.UUID
	model             string
	cruiseSpeedKts    float64
	fuelBurnPerHourKg float64
	takeoffFuelKg     float64
}

// NewAircraft validates the performance fields and assigns a fresh identity.
func NewAircraft(model string, cruiseSpeedKts, fuelBurnPerHourKg, takeoffFuelKg float64) (*Aircraft, error) {
	a, err := newAircraft(model, cruiseSpeedKts, fuelBurnPerHourKg, takeoffFuelKg)
	if err != nil {
		return nil, err
	}
	a.id = uuid.New()
	return a, nil
}

// ReconstituteAircraft rebuilds an aircraft with a pre-existing identity. For
// use by the persistence mapping layer and test fixtures only; the identity of
// a live aircraft is never reassigned.
func ReconstituteAircraft(id uuid.UUID, model string, cruiseSpeedKts, fuelBurnPerHourKg, takeoffFuelKg float64) (*Aircraft, error) {
	a, err := newAircraft(model, cruiseSpeedKts, fuelBurnPerHourKg, takeoffFuelKg)
	if err != nil {
		return nil, err
	}
	a.id = id
	return a, nil
}

func newAircraft(model string, cruiseSpeedKts, fuelBurnPerHourKg, takeoffFuelKg float64) (*Aircraft, error) {
	if strings.TrimSpace(model) == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Model is required.")
	}
	if cruiseSpeedKts <= 0 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Cruise speed must be positive.")
	}
	if fuelBurnPerHourKg <= 0 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Fuel burn must be positive.")
	}
	if takeoffFuelKg < 0 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Takeoff fuel must be non-negative.")
	}
	return &Aircraft{
		model:             model,
		cruiseSpeedKts:    cruiseSpeedKts,
		fuelBurnPerHourKg: fuelBurnPerHourKg,
		takeoffFuelKg:     takeoffFuelKg,
	}, nil
}

func (a *Aircraft) ID() uuid.UUID {
	return a.id
}

func (a *Aircraft) Model() string {
	return a.model
}

func (a *Aircraft) CruiseSpeedKts() float64 {
	return a.cruiseSpeedKts
}

func (a *Aircraft) FuelBurnPerHourKg() float64 {
	return a.fuelBurnPerHourKg
}

func (a *Aircraft) TakeoffFuelKg() float64 {
	return a.takeoffFuelKg
}
