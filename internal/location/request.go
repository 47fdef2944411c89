package location

type UpdateLocationRequest struct {
	UserID    string   `json:"userId" binding:"required"`
	Latitude  *float64 `json:"latitude" binding:"required,lat"`
	Longitude *float64 `json:"longitude" binding:"required,lng"`
}

type NearbyQuery struct {
	Latitude  *float64 `form:"latitude" binding:"required,lat"`
	Longitude *float64 `form:"longitude" binding:"required,lng"`
	RadiusKm  float64  `form:"radius" binding:"omitempty,radius_km"`
}
