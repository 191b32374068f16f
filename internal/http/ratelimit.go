package http

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter applies a fixed-window request ceiling per client IP. It is
// in-memory only: restarting the server resets all windows.
type RateLimiter struct {
	mu              sync.Mutex
	windows         map[string]*windowRecord
	max             int
	windowDuration  time.Duration
	cleanupInterval time.Duration
	stopCleanup     chan struct{}
}

type windowRecord struct {
	count       int
	windowStart time.Time
}

// RateLimitConfig contains configuration for the rate limiter.
type RateLimitConfig struct {
	Max             int           // Maximum requests per window (default: 60)
	WindowDuration  time.Duration // Window size (default: 1m)
	CleanupInterval time.Duration // How often to drop idle records (default: 5m)
}

// NewRateLimiter creates a new rate limiter with the given configuration.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.Max <= 0 {
		cfg.Max = 60
	}
	if cfg.WindowDuration <= 0 {
		cfg.WindowDuration = time.Minute
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = 5 * time.Minute
	}

	rl := &RateLimiter{
		windows:         make(map[string]*windowRecord),
		max:             cfg.Max,
		windowDuration:  cfg.WindowDuration,
		cleanupInterval: cfg.CleanupInterval,
		stopCleanup:     make(chan struct{}),
	}

	// Start background cleanup
	go rl.cleanupLoop()

	return rl
}

// Stop stops the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stopCleanup)
}

// Allow records a request for the given client and reports whether it is
// within the window's budget. When denied, retryAfter indicates how long
// until the window resets.
func (rl *RateLimiter) Allow(clientIP string) (bool, time.Duration) {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	record, exists := rl.windows[clientIP]
	if !exists || now.Sub(record.windowStart) >= rl.windowDuration {
		rl.windows[clientIP] = &windowRecord{count: 1, windowStart: now}
		return true, 0
	}

	if record.count < rl.max {
		record.count++
		return true, 0
	}

	return false, record.windowStart.Add(rl.windowDuration).Sub(now)
}

// cleanupLoop periodically removes expired windows.
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCleanup:
			return
		}
	}
}

func (rl *RateLimiter) cleanup() {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, record := range rl.windows {
		if now.Sub(record.windowStart) >= rl.windowDuration {
			delete(rl.windows, ip)
		}
	}
}

// Middleware creates Gin middleware enforcing the request ceiling.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, retryAfter := rl.Allow(c.ClientIP())
		if !allowed {
			seconds := int(math.Ceil(retryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			c.Header("Retry-After", strconv.Itoa(seconds))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
				Error: "Too many requests",
			})
			return
		}
		c.Next()
	}
}
