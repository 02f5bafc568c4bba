package services

import "math"

const earthRadiusMeters = 6371000.0

// DistanceMeters returns the great-circle distance between two coordinates
// using the haversine formula.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMeters * c
}

// WithinRadius reports whether the point is no farther than radiusMeters
// from the center.
func WithinRadius(centerLat, centerLng, lat, lng, radiusMeters float64) bool {
	return DistanceMeters(centerLat, centerLng, lat, lng) <= radiusMeters
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
