package config

// Default paths used by the server and the one-shot commands
const (
	// DefaultDatabasePath is the default path for the canvas database
	DefaultDatabasePath = "./canvas.db"

	// DefaultSeedDataPath is the bundled JSON document read by the seed command
	DefaultSeedDataPath = "./data/data.json"
)
