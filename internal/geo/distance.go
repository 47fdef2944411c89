package geo

import (
	"fmt"
	"math"
)

const EarthRadiusKm = 6371.0

type Coordinate struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

func (c Coordinate) MapLink() string {
	return fmt.Sprintf("https://www.google.com/maps?q=%f,%f", c.Latitude, c.Longitude)
}

// DistanceKm returns the haversine great-circle distance in kilometres.
func DistanceKm(centerLat, centerLon, pointLat, pointLon float64) float64 {
	dLat := deg2rad(pointLat - centerLat)
	dLon := deg2rad(pointLon - centerLon)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(centerLat))*math.Cos(deg2rad(pointLat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	// rounding can push a just outside [0,1] near coincident or antipodal points
	a = math.Max(0, math.Min(1, a))

	return EarthRadiusKm * 2 * math.Asin(math.Sqrt(a))
}

func Distance(a, b Coordinate) float64 {
	return DistanceKm(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
