package geo

import (
	"math"

	"routeopt/internal/model"
)

const (
	earthRadiusKm = 6371.0

	// DefaultServiceMinutes applies when a stop has no estimate.
	DefaultServiceMinutes = 10.0
)

// DistanceKm returns the great-circle distance between two stops in
// kilometers using the haversine formula. Symmetric, zero for identical
// coordinates.
func DistanceKm(a, b model.Location) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// ServiceMinutes returns the stop's estimated handling time.
func ServiceMinutes(l model.Location) float64 {
	if l.ServiceMinutes > 0 {
		return l.ServiceMinutes
	}
	return DefaultServiceMinutes
}

// PathDistanceKm sums consecutive pairwise distances along the sequence.
// The first stop carries no leading distance.
func PathDistanceKm(stops []model.Location) float64 {
	total := 0.0
	for i := 1; i < len(stops); i++ {
		total += DistanceKm(stops[i-1], stops[i])
	}
	return total
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
