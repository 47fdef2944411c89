package location

import (
	"time"

	"sos-service/internal/geo"
)

type UserLocation struct {
	UserID     string         `bson:"_id" json:"userId"`
	Coordinate geo.Coordinate `bson:"coordinate" json:"coordinate"`
	UpdatedAt  time.Time      `bson:"updated_at" json:"updatedAt"`
}

type NearbyUser struct {
	UserID     string    `json:"userId"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	DistanceKm float64   `json:"distanceKm"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
