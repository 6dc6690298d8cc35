package planning

import (
	"time"

	"flightplanner/internal/domain"
)

// knotsToKmPerHour is the nautical-mile-to-kilometer factor. Load-bearing:
// estimate parity depends on this exact constant.
const knotsToKmPerHour = 1.852

// SimpleFuelEstimator models fuel burn as cruise burn over the flight time
// plus a fixed takeoff reserve. No climb/descent profile, no wind.
type SimpleFuelEstimator struct{}

func NewSimpleFuelEstimator() SimpleFuelEstimator {
	return SimpleFuelEstimator{}
}

func (SimpleFuelEstimator) Estimate(aircraft *domain.Aircraft, distanceKm float64) (domain.FlightEstimates, error) {
	flightTimeHours := distanceKm / (aircraft.CruiseSpeedKts() * knotsToKmPerHour)
	duration := time.Duration(flightTimeHours * float64(time.Hour))

	fuelKg := flightTimeHours*aircraft.FuelBurnPerHourKg() + aircraft.TakeoffFuelKg()

	return domain.NewFlightEstimates(distanceKm, duration, fuelKg)
}
