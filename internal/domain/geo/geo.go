// Package geo holds the great-circle helpers used by discovery.
package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// EarthRadiusKm is the mean Earth radius used for every distance computed here.
const EarthRadiusKm = 6371.0

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToDegrees converts radians to degrees.
func ToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// DistanceKm returns the haversine distance in kilometres between two
// coordinates given in degrees. Inputs are not validated.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := ToRadians(lat2 - lat1)
	dLon := ToRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(ToRadians(lat1))*math.Cos(ToRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// PointDistanceKm is DistanceKm for orb points (lon, lat).
func PointDistanceKm(a, b orb.Point) float64 {
	return DistanceKm(a.Lat(), a.Lon(), b.Lat(), b.Lon())
}

// ValidCoordinate reports whether lat and lon are within WGS84 bounds.
func ValidCoordinate(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// BoundAround returns a box that contains every point within radiusKm of
// center, widened by multiplier. It is only a coarse pre-filter: callers must
// still compare DistanceKm against the radius.
//
// Near the antimeridian the box wraps and Min.Lon > Max.Lon; test membership
// with BoundContains, not orb.Bound.Contains.
func BoundAround(center orb.Point, radiusKm, multiplier float64) orb.Bound {
	if multiplier < 1 {
		multiplier = 1
	}

	// orb measures on orb.EarthRadius; scale so the box spans the same angle
	// as radiusKm on EarthRadiusKm.
	meters := radiusKm * multiplier * orb.EarthRadius / EarthRadiusKm
	bound := orbgeo.NewBoundAroundPoint(center, meters)
	if math.IsNaN(bound.Min.Lon()) || math.IsNaN(bound.Max.Lon()) {
		bound.Min[0], bound.Max[0] = -180, 180
	}

	return bound
}

// WrapsAntimeridian reports whether b crosses the 180th meridian.
func WrapsAntimeridian(b orb.Bound) bool {
	return b.Min.Lon() > b.Max.Lon()
}

// BoundContains is orb.Bound.Contains for boxes that may wrap the antimeridian.
func BoundContains(b orb.Bound, p orb.Point) bool {
	if p.Lat() < b.Min.Lat() || p.Lat() > b.Max.Lat() {
		return false
	}
	if WrapsAntimeridian(b) {
		return p.Lon() >= b.Min.Lon() || p.Lon() <= b.Max.Lon()
	}

	return p.Lon() >= b.Min.Lon() && p.Lon() <= b.Max.Lon()
}
