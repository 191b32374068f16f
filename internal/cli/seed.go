package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/project-canvas/backend/internal/config"
	"github.com/project-canvas/backend/internal/database"
	"github.com/project-canvas/backend/internal/datasync"
	"github.com/project-canvas/backend/internal/entities"
)

// SeedCommand bootstraps the store from the bundled JSON document. Existing
// hotspots are replaced with the document's set.
type SeedCommand struct {
	DataPath     string
	DatabasePath string
}

func NewSeedCommand() *SeedCommand {
	cfg := config.NewConfig()
	return &SeedCommand{
		DataPath:     cfg.Seed.DataPath,
		DatabasePath: cfg.Database.Path,
	}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Seed the canvas database from %s.\n", cmd.DataPath)
		fmt.Fprintf(os.Stderr, "Override the paths with SEED_DATA_PATH and DATABASE_PATH.\n")
	}

	return fs.Parse(args)
}

func (cmd *SeedCommand) Run() error {
	raw, err := os.ReadFile(cmd.DataPath)
	if err != nil {
		return fmt.Errorf("failed to read seed data %s: %w", cmd.DataPath, err)
	}

	var doc entities.CanvasDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to parse seed data %s: %w", cmd.DataPath, err)
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	result, err := datasync.NewService(db.DB).Import(doc, true)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	fmt.Printf("Seeded: canvas, settings, %d hotspots\n", result.Synced)
	return nil
}
