package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		CORS
		RateLimit
		Auth
		Database
		Global
		Seed
		Snapshot
	}

	HTTP struct {
		Port int32
		Host string
	}
	CORS struct {
		Origin string // Allowed origin for both public and admin routes
	}
	RateLimit struct {
		WindowMS int // Window size in milliseconds for the public endpoint
		Max      int // Max requests per client per window
	}
	Auth struct {
		AdminToken string // Static bearer token guarding the admin API
	}
	Database struct {
		Path string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Seed struct {
		DataPath string // Bundled JSON document read by the seed command
	}
	Snapshot struct {
		Enabled  bool
		Schedule string // Cron format: "0 * * * *" = hourly
		Dir      string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 3001)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("cors_origin", "http://localhost:8000")
	v.SetDefault("rate_limit_window_ms", 60000)
	v.SetDefault("rate_limit_max", 60)
	v.SetDefault("admin_token", "")
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("seed_data_path", DefaultSeedDataPath)

	// Snapshot export defaults
	v.SetDefault("snapshot_enabled", false)
	v.SetDefault("snapshot_schedule", "0 * * * *") // Hourly at :00
	v.SetDefault("snapshot_dir", "./snapshots")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		CORS: CORS{
			Origin: v.GetString("CORS_ORIGIN"),
		},
		RateLimit: RateLimit{
			WindowMS: v.GetInt("RATE_LIMIT_WINDOW_MS"),
			Max:      v.GetInt("RATE_LIMIT_MAX"),
		},
		Auth: Auth{
			AdminToken: v.GetString("ADMIN_TOKEN"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Seed: Seed{
			DataPath: v.GetString("SEED_DATA_PATH"),
		},
		Snapshot: Snapshot{
			Enabled:  v.GetBool("SNAPSHOT_ENABLED"),
			Schedule: v.GetString("SNAPSHOT_SCHEDULE"),
			Dir:      v.GetString("SNAPSHOT_DIR"),
		},
	}
}
