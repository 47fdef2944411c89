package location

import (
	"sos-service/internal/geo"
)

// FindWithinRadius scans snapshot and keeps every entry whose distance to
// center is at most radiusKm. The result keeps snapshot order.
func FindWithinRadius(center geo.Coordinate, radiusKm float64, snapshot []UserLocation) []NearbyUser {
	nearby := make([]NearbyUser, 0)
	for _, entry := range snapshot {
		dist := geo.Distance(center, entry.Coordinate)
		if dist <= radiusKm {
			nearby = append(nearby, NearbyUser{
				UserID:     entry.UserID,
				Latitude:   entry.Coordinate.Latitude,
				Longitude:  entry.Coordinate.Longitude,
				DistanceKm: dist,
				UpdatedAt:  entry.UpdatedAt,
			})
		}
	}
	return nearby
}
