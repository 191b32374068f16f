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

// SyncDataCommand syncs a JSON document into the store or dumps the store
// back to JSON. Exactly one of the two modes applies per invocation.
type SyncDataCommand struct {
	FilePath     string
	Replace      bool
	Export       bool
	OutPath      string
	DatabasePath string
}

func NewSyncDataCommand() *SyncDataCommand {
	return &SyncDataCommand{}
}

func (cmd *SyncDataCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("sync-data", flag.ExitOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to a JSON document to sync into the database")
	fs.BoolVar(&cmd.Replace, "replace", false, "Delete all existing hotspots before inserting the file's set")
	fs.BoolVar(&cmd.Export, "export", false, "Export the database to JSON instead of importing")
	fs.StringVar(&cmd.OutPath, "out", "", "Output path for -export (standard output if omitted)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the canvas database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s sync-data [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Sync a JSON document with the canvas database.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Upsert the document's canvas, settings and hotspots:\n")
		fmt.Fprintf(os.Stderr, "  %s sync-data -file data/data.json\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Replace the whole hotspot set with the document's:\n")
		fmt.Fprintf(os.Stderr, "  %s sync-data -file data/data.json -replace\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Dump the database to a file:\n")
		fmt.Fprintf(os.Stderr, "  %s sync-data -export -out backup.json\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *SyncDataCommand) Run() error {
	if !cmd.Export && cmd.FilePath == "" {
		fmt.Println("Usage:")
		fmt.Println("  -file <path> [-replace]  Sync JSON to DB")
		fmt.Println("  -export [-out <path>]    Export DB to JSON")
		return nil
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	service := datasync.NewService(db.DB)

	if cmd.Export {
		return cmd.runExport(service)
	}
	return cmd.runImport(service)
}

func (cmd *SyncDataCommand) runImport(service *datasync.Service) error {
	raw, err := os.ReadFile(cmd.FilePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", cmd.FilePath, err)
	}

	var doc entities.CanvasDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", cmd.FilePath, err)
	}

	result, err := service.Import(doc, cmd.Replace)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	mode := ""
	if cmd.Replace {
		mode = " (replace mode)"
	}
	fmt.Printf("Synced %d hotspots%s", result.Synced, mode)
	if result.Skipped > 0 {
		fmt.Printf(", skipped %d invalid", result.Skipped)
	}
	fmt.Println()
	fmt.Println("Sync complete.")
	return nil
}

func (cmd *SyncDataCommand) runExport(service *datasync.Service) error {
	doc, err := service.Payload(false)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	if cmd.OutPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(cmd.OutPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cmd.OutPath, err)
	}
	fmt.Printf("Exported to %s\n", cmd.OutPath)
	return nil
}
