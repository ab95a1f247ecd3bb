package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Middleware(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(RateLimiterConfig{PerMinute: 60, Burst: 2, CleanupInterval: time.Hour})
	defer rl.Stop()

	router := gin.New()
	router.POST("/bids", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusCreated) })

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/bids", nil)
		req.RemoteAddr = ip + ":5555"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	require.Equal(t, http.StatusCreated, send("10.0.0.1").Code)
	require.Equal(t, http.StatusCreated, send("10.0.0.1").Code)

	limited := send("10.0.0.1")
	require.Equal(t, http.StatusTooManyRequests, limited.Code)
	require.Equal(t, "1", limited.Header().Get("Retry-After"))
	require.Contains(t, limited.Body.String(), "too many requests")

	require.Equal(t, http.StatusCreated, send("10.0.0.2").Code, "budgets are per client")
	require.Equal(t, 2, rl.LimiterCount())
}

func TestRateLimiter_Cleanup(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(RateLimiterConfig{PerMinute: 60, Burst: 1, CleanupInterval: time.Minute})
	defer rl.Stop()

	rl.limiterFor("10.0.0.1")
	rl.limiterFor("10.0.0.2")
	require.Equal(t, 2, rl.LimiterCount())

	rl.cleanup(time.Now().Add(time.Minute))
	require.Equal(t, 2, rl.LimiterCount(), "recently used entries survive")

	rl.cleanup(time.Now().Add(3 * time.Minute))
	require.Equal(t, 0, rl.LimiterCount())
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(RateLimiterConfig{})
	rl.Stop()
	rl.Stop()
}
