package planning_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightplanner/internal/domain"
	"flightplanner/internal/planning"
	dErrors "flightplanner/pkg/domain-errors"
)

func aircraft(t *testing.T, model string, cruise, burn, takeoff float64) *domain.Aircraft {
	t.Helper()
	a, err := domain.NewAircraft(model, cruise, burn, takeoff)
	require.NoError(t, err)
	return a
}

func TestSimpleFuelEstimate(t *testing.T) {
	estimator := planning.NewSimpleFuelEstimator()

	t.Run("known values for a 737 over JFK-LAX distance", func(t *testing.T) {
		b738 := aircraft(t, "Boeing 737-800", 450, 2500, 20000)

		estimates, err := estimator.Estimate(b738, 3974.34)
		require.NoError(t, err)

		// 3974.34 / (450 * 1.852) = 4.7688 h
		assert.InDelta(t, 3974.34, estimates.DistanceKm(), 1e-9)
		assert.InDelta(t, 4.7688, estimates.Duration().Hours(), 0.001)
		assert.InDelta(t, 31922.06, estimates.FuelKg(), 1.0)
	})

	t.Run("fuel and duration grow with distance", func(t *testing.T) {
		a320 := aircraft(t, "A320", 447, 2400, 18000)

		short, err := estimator.Estimate(a320, 500)
		require.NoError(t, err)
		long, err := estimator.Estimate(a320, 1500)
		require.NoError(t, err)

		assert.Less(t, short.FuelKg(), long.FuelKg())
		assert.Less(t, short.Duration(), long.Duration())
	})

	t.Run("thirstier aircraft burns more over equal distance", func(t *testing.T) {
		lean := aircraft(t, "E195", 470, 1800, 9000)
		thirsty := aircraft(t, "B744", 470, 10000, 9000)

		leanEstimates, err := estimator.Estimate(lean, 2000)
		require.NoError(t, err)
		thirstyEstimates, err := estimator.Estimate(thirsty, 2000)
		require.NoError(t, err)

		assert.Greater(t, thirstyEstimates.FuelKg(), leanEstimates.FuelKg())
		assert.Equal(t, leanEstimates.Duration(), thirstyEstimates.Duration(), "same speed, same duration")
	})

	t.Run("takeoff fuel is charged regardless of distance", func(t *testing.T) {
		a := aircraft(t, "ATR72", 248, 600, 500)

		estimates, err := estimator.Estimate(a, 1)
		require.NoError(t, err)
		assert.Greater(t, estimates.FuelKg(), 500.0)
	})

	t.Run("sub-kilometer distance fails estimate construction", func(t *testing.T) {
		a := aircraft(t, "C172", 120, 30, 5)

		_, err := estimator.Estimate(a, 0.4)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	t.Run("duration uses the 1.852 knots conversion", func(t *testing.T) {
		// 1852 km at 1000 kts is exactly one hour.
		a := aircraft(t, "Concorde", 1000, 20000, 1000)

		estimates, err := estimator.Estimate(a, 1852)
		require.NoError(t, err)
		assert.InDelta(t, time.Hour.Hours(), estimates.Duration().Hours(), 1e-9)
	})
}
