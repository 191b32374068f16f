package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{Max: 3, WindowDuration: time.Hour})
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := rl.Allow("1.2.3.4")
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, retryAfter := rl.Allow("1.2.3.4")
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, time.Duration(0))

	// Other clients keep their own budget
	allowed, _ = rl.Allow("5.6.7.8")
	assert.True(t, allowed)
}

func TestRateLimiter_WindowReset(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{Max: 1, WindowDuration: 20 * time.Millisecond})
	defer rl.Stop()

	allowed, _ := rl.Allow("1.2.3.4")
	assert.True(t, allowed)
	allowed, _ = rl.Allow("1.2.3.4")
	assert.False(t, allowed)

	time.Sleep(25 * time.Millisecond)

	allowed, _ = rl.Allow("1.2.3.4")
	assert.True(t, allowed)
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(RateLimitConfig{Max: 2, WindowDuration: time.Hour})
	defer rl.Stop()

	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}
