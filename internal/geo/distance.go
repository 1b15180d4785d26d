package geo

import "math"

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371

// Point is a lat/lon pair in degrees.
type Point struct {
	Lat float64
	Lon float64
}

// DistanceKm returns the great-circle distance between two points in
// kilometers (haversine). Callers that present distances to clients should
// round with RoundKm; filtering and sorting use the raw value so that
// rounding cannot flip a boundary decision.
func DistanceKm(a, b Point) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLon := deg2rad(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// RoundKm rounds a distance to one decimal place for presentation.
func RoundKm(km float64) float64 {
	return math.Round(km*10) / 10
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
