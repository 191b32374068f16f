package cli

import (
	"flag"
	"fmt"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/project-canvas/backend/internal/config"
	"github.com/project-canvas/backend/internal/entities"
)

// MigrateTypeVideoCommand adds the type and video columns to the hotspots
// table. Both additions are guarded by existence checks so the migration is
// idempotent and safe to re-run; existing rows get the safe defaults
// ('text', '') without backfill.
type MigrateTypeVideoCommand struct {
	DatabasePath string
}

func NewMigrateTypeVideoCommand() *MigrateTypeVideoCommand {
	return &MigrateTypeVideoCommand{}
}

func (cmd *MigrateTypeVideoCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("migrate-add-type-video", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the canvas database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s migrate-add-type-video [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Add the type and video columns to the hotspots table.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *MigrateTypeVideoCommand) Run() error {
	// Open without the auto-migration the server performs: this command is
	// for databases created by earlier schema versions.
	db, err := gorm.Open(sqlite.Open(cmd.DatabasePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	migrator := db.Migrator()
	if !migrator.HasTable(&entities.Hotspot{}) {
		return fmt.Errorf("hotspots table does not exist in %s", cmd.DatabasePath)
	}

	fmt.Println("Adding type and video columns to hotspots table...")

	if migrator.HasColumn(&entities.Hotspot{}, "type") {
		fmt.Println("type column already present")
	} else {
		if err := migrator.AddColumn(&entities.Hotspot{}, "Type"); err != nil {
			return fmt.Errorf("failed to add type column: %w", err)
		}
		fmt.Println("Added type column")
	}

	if migrator.HasColumn(&entities.Hotspot{}, "video") {
		fmt.Println("video column already present")
	} else {
		if err := migrator.AddColumn(&entities.Hotspot{}, "Video"); err != nil {
			return fmt.Errorf("failed to add video column: %w", err)
		}
		fmt.Println("Added video column")
	}

	fmt.Println("Migration complete!")
	return nil
}
