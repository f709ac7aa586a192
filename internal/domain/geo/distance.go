// Package geo computes great-circle distances between WGS84 coordinates.
package geo

import (
	"math"

	domainerrors "nexttoyou/internal/domain/errors"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// EarthRadiusMeters is the mean Earth radius used by Distance.
const EarthRadiusMeters = 6371000.0

// boundPadding widens pre-filter bounds; orb/geo uses the equatorial radius, which
// is larger than EarthRadiusMeters and would otherwise trim the edge of the circle.
const boundPadding = 1.01

// ValidateCoordinate rejects NaN, infinite and out-of-range values.
func ValidateCoordinate(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return domainerrors.ErrInvalidCoordinate.WithDetails("coordinate is not a finite number")
	}
	if lat < -90 || lat > 90 {
		return domainerrors.ErrInvalidCoordinate.WithDetails("latitude out of range")
	}
	if lon < -180 || lon > 180 {
		return domainerrors.ErrInvalidCoordinate.WithDetails("longitude out of range")
	}

	return nil
}

// Distance returns the haversine distance in meters between two coordinates.
func Distance(lat1, lon1, lat2, lon2 float64) (float64, error) {
	if err := ValidateCoordinate(lat1, lon1); err != nil {
		return 0, err
	}
	if err := ValidateCoordinate(lat2, lon2); err != nil {
		return 0, err
	}

	return haversine(orb.Point{lon1, lat1}, orb.Point{lon2, lat2}), nil
}

// PointDistance is Distance for orb points ([lon, lat]) that are already validated.
func PointDistance(p1, p2 orb.Point) float64 {
	return haversine(p1, p2)
}

func haversine(p1, p2 orb.Point) float64 {
	lat1 := p1.Lat() * math.Pi / 180
	lat2 := p2.Lat() * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (p2.Lon() - p1.Lon()) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// Rounding can push a slightly past 1 for near-antipodal points.
	a = math.Min(1, math.Max(0, a))

	return EarthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// BoundAround returns a bound containing every point within radiusMeters of
// (lat, lon). It is a coarse pre-filter; callers still apply Distance.
func BoundAround(lat, lon, radiusMeters float64) orb.Bound {
	return orbgeo.NewBoundAroundPoint(orb.Point{lon, lat}, radiusMeters*boundPadding)
}

// RoundMeters rounds a distance to the nearest whole meter.
func RoundMeters(meters float64) int {
	return int(math.Round(meters))
}
