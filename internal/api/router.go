package api

import (
	"net/http"
	"time"

	"sos-service/config"
	"sos-service/internal/location"
	"sos-service/internal/middleware"
	"sos-service/internal/realtime"
	"sos-service/internal/sos"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	Location *location.LocationHandler
	Sos      *sos.SosHandler
	Hub      *realtime.Hub
}

func NewRouter(cfg *config.Config, logger *zap.SugaredLogger, h Handlers) *gin.Engine {
	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/ws", h.Hub.ServeWS)

	apiGroup := r.Group("/api/v1", middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst, 10*time.Minute))
	{
		location.RegisterRoutes(apiGroup, h.Location)
		sos.RegisterRoutes(apiGroup, h.Sos)
	}

	return r
}
