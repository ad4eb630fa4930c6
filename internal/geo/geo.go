package geo

import "math"

// earthRadiusMeters is the mean Earth radius used for great-circle math.
const earthRadiusMeters = 6371000.0

// Distance returns the haversine distance between two points in meters.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := deg2rad(lat1)
	lat2Rad := deg2rad(lat2)
	dLat := deg2rad(lat2 - lat1)
	dLng := deg2rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// Contains reports whether a point lies within radiusMeters of the center.
// The boundary is inclusive.
func Contains(centerLat, centerLng, radiusMeters, lat, lng float64) bool {
	return Distance(centerLat, centerLng, lat, lng) <= radiusMeters
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
