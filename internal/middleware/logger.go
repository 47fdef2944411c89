package middleware

import (
	"time"

	"sos-service/pkg/constants"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(constants.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(constants.RequestIDKey, id)
		c.Header(constants.RequestIDHeader, id)
		c.Next()
	}
}

func Logger(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []any{
			"request_id", c.GetString(constants.RequestIDKey),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}

		switch {
		case c.Writer.Status() >= 500:
			logger.Errorw("request failed", fields...)
		case c.Writer.Status() >= 400:
			logger.Warnw("request rejected", fields...)
		default:
			logger.Infow("request handled", fields...)
		}
	}
}
