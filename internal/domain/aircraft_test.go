package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightplanner/internal/domain"
	dErrors "flightplanner/pkg/domain-errors"
)

func TestNewAircraft(t *testing.T) {
	t.Run("valid aircraft gets a fresh identity", func(t *testing.T) {
		a, err := domain.NewAircraft("Boeing 737-800", 450, 2500, 20000)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, a.ID())
		assert.Equal(t, "Boeing 737-800", a.Model())
		assert.Equal(t, 450.0, a.CruiseSpeedKts())
		assert.Equal(t, 2500.0, a.FuelBurnPerHourKg())
		assert.Equal(t, 20000.0, a.TakeoffFuelKg())
	})

	t.Run("zero takeoff fuel is allowed", func(t *testing.T) {
		_, err := domain.NewAircraft("Glider Tug", 100, 50, 0)
		require.NoError(t, err)
	})

	t.Run("identities are unique per construction", func(t *testing.T) {
		a, err := domain.NewAircraft("A320", 447, 2400, 18000)
		require.NoError(t, err)
		b, err := domain.NewAircraft("A320", 447, 2400, 18000)
		require.NoError(t, err)
		assert.NotEqual(t, a.ID(), b.ID())
	})

	t.Run("field validation", func(t *testing.T) {
		cases := []struct {
			name    string
			model   string
			cruise  float64
			burn    float64
			takeoff float64
			message string
		}{
			{"empty model", "", 450, 2500, 20000, "Model is required."},
			{"whitespace model", "   ", 450, 2500, 20000, "Model is required."},
			{"zero cruise speed", "A320", 0, 2500, 20000, "Cruise speed must be positive."},
			{"negative cruise speed", "A320", -10, 2500, 20000, "Cruise speed must be positive."},
			{"zero fuel burn", "A320", 450, 0, 20000, "Fuel burn must be positive."},
			{"negative fuel burn", "A320", 450, -1, 20000, "Fuel burn must be positive."},
			{"negative takeoff fuel", "A320", 450, 2500, -1, "Takeoff fuel must be non-negative."},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := domain.NewAircraft(tc.model, tc.cruise, tc.burn, tc.takeoff)
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
				assert.Equal(t, tc.message, dErrors.MessageOf(err))
			})
		}
	})
}

func TestReconstituteAircraft(t *testing.T) {
	t.Run("keeps the given identity", func(t *testing.T) {
		id := uuid.New()
		a, err := domain.ReconstituteAircraft(id, "Boeing 777", 490, 6800, 45000)
		require.NoError(t, err)
		assert.Equal(t, id, a.ID())
	})

	t.Run("still validates fields", func(t *testing.T) {
		_, err := domain.ReconstituteAircraft(uuid.New(), "", 490, 6800, 45000)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}
