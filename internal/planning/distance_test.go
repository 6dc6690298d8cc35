package planning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightplanner/internal/domain"
	"flightplanner/internal/planning"
)

func coordinate(t *testing.T, lat, lon float64) domain.GeoCoordinate {
	t.Helper()
	c, err := domain.NewGeoCoordinate(lat, lon)
	require.NoError(t, err)
	return c
}

func TestHaversineDistanceKm(t *testing.T) {
	calc := planning.NewHaversineDistanceCalculator()

	t.Run("JFK to LAX", func(t *testing.T) {
		jfk := coordinate(t, 40.6413, -73.7781)
		lax := coordinate(t, 33.9416, -118.4085)
		assert.InDelta(t, 3974.34, calc.DistanceKm(jfk, lax), 0.5)
	})

	t.Run("same point is zero", func(t *testing.T) {
		p := coordinate(t, 51.47, -0.4543)
		assert.Equal(t, 0.0, calc.DistanceKm(p, p))
	})

	t.Run("one degree of longitude on the equator", func(t *testing.T) {
		a := coordinate(t, 0, 0)
		b := coordinate(t, 0, 1)
		assert.InDelta(t, 111.19, calc.DistanceKm(a, b), 0.01)
	})

	t.Run("pole to pole is half the circumference", func(t *testing.T) {
		north := coordinate(t, 90, 0)
		south := coordinate(t, -90, 0)
		assert.InDelta(t, 20015.09, calc.DistanceKm(north, south), 0.01)
	})

	t.Run("symmetric in its arguments", func(t *testing.T) {
		lhr := coordinate(t, 51.47, -0.4543)
		cdg := coordinate(t, 49.0097, 2.5479)
		assert.InDelta(t, calc.DistanceKm(lhr, cdg), calc.DistanceKm(cdg, lhr), 1e-9)
		assert.InDelta(t, 346.96, calc.DistanceKm(lhr, cdg), 0.5)
	})
}
