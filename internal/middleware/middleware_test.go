package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sos-service/pkg/constants"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRateLimiter_Allow(t *testing.T) {
	l := newRateLimiter(1, 2, time.Minute)
	now := time.Now()

	assert.True(t, l.allow("1.1.1.1", now))
	assert.True(t, l.allow("1.1.1.1", now))
	assert.False(t, l.allow("1.1.1.1", now))

	// other clients have their own bucket
	assert.True(t, l.allow("2.2.2.2", now))

	// a token refills after a second
	assert.True(t, l.allow("1.1.1.1", now.Add(time.Second)))
}

func TestRateLimiter_ForgetsIdleVisitors(t *testing.T) {
	l := newRateLimiter(1, 1, time.Minute)
	now := time.Now()

	l.allow("1.1.1.1", now)
	l.allow("2.2.2.2", now.Add(2*time.Minute))

	assert.Len(t, l.visitors, 1)
	assert.Contains(t, l.visitors, "2.2.2.2")
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(0.001, 1, time.Minute))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, rr.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRequestIDAndLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)

	r := gin.New()
	r.Use(RequestID(), Logger(zap.New(core).Sugar()))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(constants.RequestIDHeader, "req-42")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, "req-42", rr.Header().Get(constants.RequestIDHeader))

	entries := logs.FilterMessage("request handled").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "req-42", entries[0].ContextMap()["request_id"])
		assert.Equal(t, "/ping", entries[0].ContextMap()["path"])
	}
}
