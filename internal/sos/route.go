package sos

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, handler *SosHandler) {
	sosGroup := r.Group("/sos")
	{
		sosGroup.POST("", handler.TriggerSos)
	}
}
