package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints. The
// returned rate limiter owns a cleanup goroutine; callers stop it on
// shutdown.
func NewRouter(cfg RouterConfig) (*gin.Engine, *RateLimiter) {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Pinger, cfg.Version)
	router.GET("/health", health.Status)

	limiter := NewRateLimiter(RateLimitConfig{
		Max:            cfg.RateLimitMax,
		WindowDuration: time.Duration(cfg.RateLimitWindowMS) * time.Millisecond,
	})

	// Public routes: GET-only CORS, rate-limited
	canvasController := NewCanvasController(cfg.Payloads)
	public := router.Group("/api/canvas")
	public.Use(publicCORS(cfg.CORSOrigin))
	public.Use(limiter.Middleware())
	public.GET("", canvasController.Get)

	// Admin routes: bearer token required before any handler logic
	adminController := NewAdminController(cfg.Hotspots, cfg.Bulk, cfg.Payloads)
	admin := router.Group("/api/admin")
	admin.Use(adminCORS(cfg.CORSOrigin))
	admin.Use(TokenAuthMiddleware(cfg.AdminToken))
	admin.POST("/hotspots", adminController.UpsertHotspot)
	admin.PUT("/hotspots/:id", adminController.UpdateHotspot)
	admin.DELETE("/hotspots/:id", adminController.DeleteHotspot)
	admin.POST("/bulk", adminController.BulkReplace)
	admin.GET("/export", adminController.Export)

	return router, limiter
}

func publicCORS(origin string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: []string{origin},
		AllowMethods: []string{"GET"},
		AllowHeaders: []string{"Content-Type"},
	})
}

func adminCORS(origin string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: []string{origin},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	})
}
