// Package geo computes great-circle distances between delivery nodes.
package geo

import (
	"math"

	"fleetplan/internal/domain/entity"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two coordinates in kilometres.
func HaversineKm(a, b entity.Coordinate) float64 {
	lat1Rad := a.Lat * math.Pi / 180
	lon1Rad := a.Lon * math.Pi / 180
	lat2Rad := b.Lat * math.Pi / 180
	lon2Rad := b.Lon * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLon := lon2Rad - lon1Rad

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// IsValidCoordinate rejects NaN, infinities and positions outside Earth bounds.
func IsValidCoordinate(coord entity.Coordinate) bool {
	if math.IsNaN(coord.Lat) || math.IsNaN(coord.Lon) ||
		math.IsInf(coord.Lat, 0) || math.IsInf(coord.Lon, 0) {
		return false
	}

	return coord.Lat >= -90 && coord.Lat <= 90 &&
		coord.Lon >= -180 && coord.Lon <= 180
}
