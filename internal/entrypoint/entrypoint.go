package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/project-canvas/backend/internal/config"
	"github.com/project-canvas/backend/internal/database"
	"github.com/project-canvas/backend/internal/database/hotspots"
	"github.com/project-canvas/backend/internal/datasync"
	http_controllers "github.com/project-canvas/backend/internal/http"
	"github.com/project-canvas/backend/internal/scheduler"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM with the configured timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop the snapshot scheduler)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Project Canvas v%s", version)

	if cfg.Auth.AdminToken == "" {
		log.Fatalf("ADMIN_TOKEN is not set. The admin API requires a configured secret.")
		return
	}

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	syncService := datasync.NewService(db.DB)
	hotspotRepo := hotspots.NewRepository(db.DB)

	// Optional periodic JSON snapshot of the store
	var snapshotScheduler *scheduler.SnapshotScheduler
	if cfg.Snapshot.Enabled {
		snapshotScheduler = scheduler.NewSnapshotScheduler(syncService, cfg.Snapshot.Schedule, cfg.Snapshot.Dir)
		if err := snapshotScheduler.Start(); err != nil {
			log.Fatalf("Failed to start snapshot scheduler: %v", err)
		}
	}

	routerCfg := http_controllers.RouterConfig{
		Payloads:          syncService,
		Hotspots:          hotspotRepo,
		Bulk:              syncService,
		Pinger:            db,
		AdminToken:        cfg.Auth.AdminToken,
		CORSOrigin:        cfg.CORS.Origin,
		RateLimitWindowMS: cfg.RateLimit.WindowMS,
		RateLimitMax:      cfg.RateLimit.Max,
		Version:           version,
	}

	router, limiter := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		limiter.Stop()
		if snapshotScheduler != nil {
			snapshotScheduler.Stop()
		}
	}

	Serve(router, cfg, onShutdown)
}
