package geo

import (
	"math"
	"testing"

	domainerrors "nexttoyou/internal/domain/errors"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_SymmetricAndZero(t *testing.T) {
	points := [][2]float64{
		{32.0850, 34.7810},
		{32.0830, 34.7800},
		{-33.8688, 151.2093},
		{51.5074, -0.1278},
		{0, 179.9999},
		{0, -179.9999},
		{89.9, 10},
	}

	for _, a := range points {
		self, err := Distance(a[0], a[1], a[0], a[1])
		require.NoError(t, err)
		assert.Zero(t, self)

		for _, b := range points {
			ab, err := Distance(a[0], a[1], b[0], b[1])
			require.NoError(t, err)
			ba, err := Distance(b[0], b[1], a[0], a[1])
			require.NoError(t, err)

			assert.InDelta(t, ab, ba, 1e-6)
			assert.GreaterOrEqual(t, ab, 0.0)
		}
	}
}

func TestDistance_KnownValues(t *testing.T) {
	tests := []struct {
		name      string
		from, to  [2]float64
		want      float64
		tolerance float64
	}{
		{name: "forty meters east in Tel Aviv", from: [2]float64{32.0800, 34.7804}, to: [2]float64{32.08, 34.78}, want: 37.7, tolerance: 0.5},
		{name: "one degree of latitude", from: [2]float64{0, 0}, to: [2]float64{1, 0}, want: 111195, tolerance: 10},
		{name: "across the antimeridian", from: [2]float64{0, 179.9999}, to: [2]float64{0, -179.9999}, want: 22.24, tolerance: 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Distance(tt.from[0], tt.from[1], tt.to[0], tt.to[1])
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, tt.tolerance)
		})
	}
}

func TestDistance_InvalidCoordinate(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
	}{
		{name: "NaN latitude", lat: math.NaN(), lon: 0},
		{name: "NaN longitude", lat: 0, lon: math.NaN()},
		{name: "infinite latitude", lat: math.Inf(1), lon: 0},
		{name: "latitude above 90", lat: 90.0001, lon: 0},
		{name: "latitude below -90", lat: -91, lon: 0},
		{name: "longitude above 180", lat: 0, lon: 180.5},
		{name: "longitude below -180", lat: 0, lon: -181},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Distance(tt.lat, tt.lon, 0, 0)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)

			_, err = Distance(0, 0, tt.lat, tt.lon)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
		})
	}
}

func TestDistance_BoundaryCoordinatesAreValid(t *testing.T) {
	_, err := Distance(90, 180, -90, -180)
	assert.NoError(t, err)
}

func TestBoundAround_ContainsCircle(t *testing.T) {
	lat, lon := 32.0800, 34.7800
	radius := 200.0
	bound := BoundAround(lat, lon, radius)

	// Walk the circle and check each point sits inside the bound.
	for deg := 0; deg < 360; deg += 15 {
		bearing := float64(deg) * math.Pi / 180
		dLat := radius / EarthRadiusMeters * math.Cos(bearing) * 180 / math.Pi
		dLon := radius / EarthRadiusMeters * math.Sin(bearing) * 180 / math.Pi / math.Cos(lat*math.Pi/180)
		p := orb.Point{lon + dLon*0.999, lat + dLat*0.999}

		assert.True(t, bound.Contains(p), "bearing %d", deg)
	}

	far := orb.Point{lon + 0.01, lat}
	assert.False(t, bound.Contains(far))
}

func TestRoundMeters(t *testing.T) {
	assert.Equal(t, 38, RoundMeters(37.7))
	assert.Equal(t, 37, RoundMeters(37.4))
	assert.Equal(t, 0, RoundMeters(0.2))
}
