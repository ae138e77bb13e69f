package model

import "math"

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// Coordinate is a WGS-84 latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DistanceKm returns the great-circle distance in kilometers between c and
// other, computed with the haversine formula.
func (c Coordinate) DistanceKm(other Coordinate) float64 {
	dLat := radians(other.Lat - c.Lat)
	dLon := radians(other.Lon - c.Lon)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(c.Lat))*math.Cos(radians(other.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	ch := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * ch
}

func radians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
