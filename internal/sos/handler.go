package sos

import (
	"fmt"
	"net/http"

	"sos-service/helper"
	"sos-service/internal/geo"

	"github.com/gin-gonic/gin"
)

type SosHandler struct {
	sosService SosService
}

func NewSosHandler(sosService SosService) *SosHandler {
	return &SosHandler{
		sosService: sosService,
	}
}

func (h *SosHandler) TriggerSos(c *gin.Context) {

	var req TriggerSosRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendError(c, http.StatusBadRequest, err, helper.ErrInvalidRequest)
		return
	}

	coord := geo.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}

	result, err := h.sosService.TriggerSos(c.Request.Context(), req.UserID, coord)
	if err != nil {
		helper.SendError(c, http.StatusInternalServerError, err, helper.ErrInternal)
		return
	}

	helper.SendSuccess(c, http.StatusOK, fmt.Sprintf("SOS sent to %d nearby users", result.Delivered), result)
}
