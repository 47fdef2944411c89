package location

import (
	"errors"
	"net/http"

	"sos-service/helper"
	"sos-service/internal/geo"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	locationService LocationService
}

func NewLocationHandler(locationService LocationService) *LocationHandler {
	return &LocationHandler{
		locationService: locationService,
	}
}

func (h *LocationHandler) UpdateLocation(c *gin.Context) {

	var req UpdateLocationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendError(c, http.StatusBadRequest, err, helper.ErrInvalidRequest)
		return
	}

	coord := geo.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}

	if err := h.locationService.UpdateLocation(c, req.UserID, coord); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrInvalidCoordinates) {
			status = http.StatusBadRequest
		}
		helper.SendError(c, status, err, helper.ErrInvalidOperation)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "Location updated", nil)
}

func (h *LocationHandler) GetNearby(c *gin.Context) {

	var query NearbyQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		helper.SendError(c, http.StatusBadRequest, err, helper.ErrInvalidRequest)
		return
	}

	center := geo.Coordinate{Latitude: *query.Latitude, Longitude: *query.Longitude}

	users, err := h.locationService.FindNearby(c, center, query.RadiusKm)
	if err != nil {
		helper.SendError(c, http.StatusInternalServerError, err, helper.ErrInvalidOperation)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "success", users)
}
