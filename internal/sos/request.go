package sos

type TriggerSosRequest struct {
	UserID    string   `json:"userId" binding:"required"`
	Latitude  *float64 `json:"latitude" binding:"required,lat"`
	Longitude *float64 `json:"longitude" binding:"required,lng"`
}
