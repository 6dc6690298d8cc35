package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightplanner/internal/domain"
	dErrors "flightplanner/pkg/domain-errors"
)

func TestNewFlightEstimates(t *testing.T) {
	t.Run("valid estimates", func(t *testing.T) {
		e, err := domain.NewFlightEstimates(3974.3, 4*time.Hour+46*time.Minute, 31922.05)
		require.NoError(t, err)
		assert.Equal(t, 3974.3, e.DistanceKm())
		assert.Equal(t, 4*time.Hour+46*time.Minute, e.Duration())
		assert.Equal(t, 31922.05, e.FuelKg())
	})

	t.Run("exactly 1 km is the minimum", func(t *testing.T) {
		_, err := domain.NewFlightEstimates(1, time.Minute, 10)
		require.NoError(t, err)
	})

	t.Run("rejects sub-kilometer distance", func(t *testing.T) {
		_, err := domain.NewFlightEstimates(0.9, time.Minute, 10)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
		assert.Equal(t, "Distance must be at least 1 km.", dErrors.MessageOf(err))
	})

	t.Run("rejects negative duration", func(t *testing.T) {
		_, err := domain.NewFlightEstimates(100, -time.Second, 10)
		require.Error(t, err)
		assert.Equal(t, "Duration must be positive.", dErrors.MessageOf(err))
	})

	t.Run("rejects negative fuel", func(t *testing.T) {
		_, err := domain.NewFlightEstimates(100, time.Hour, -0.1)
		require.Error(t, err)
		assert.Equal(t, "Fuel must be non-negative.", dErrors.MessageOf(err))
	})

	t.Run("zero fuel is allowed", func(t *testing.T) {
		_, err := domain.NewFlightEstimates(100, time.Hour, 0)
		require.NoError(t, err)
	})
}
