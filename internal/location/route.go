package location

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, handler *LocationHandler) {
	locationGroup := r.Group("/location")
	{
		locationGroup.POST("", handler.UpdateLocation)
		locationGroup.GET("/nearby", handler.GetNearby)
	}
}
