// Package scheduler runs the periodic snapshot export: the full canvas
// document is serialized to a timestamped JSON file so content authors keep
// restorable copies outside the live database.
package scheduler

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/project-canvas/backend/internal/entities"
)

// DocumentSource builds the export document.
type DocumentSource interface {
	Payload(enabledOnly bool) (entities.CanvasDocument, error)
}

// SnapshotScheduler manages periodic exports of the data store.
type SnapshotScheduler struct {
	source   DocumentSource
	schedule string
	dir      string

	cron      *cron.Cron
	mu        sync.Mutex
	isRunning bool
}

// NewSnapshotScheduler creates a new scheduler instance.
func NewSnapshotScheduler(source DocumentSource, schedule, dir string) *SnapshotScheduler {
	return &SnapshotScheduler{
		source:   source,
		schedule: schedule,
		dir:      dir,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler.
func (s *SnapshotScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory %s: %w", s.dir, err)
	}

	_, err := s.cron.AddFunc(s.schedule, func() {
		if err := s.runSnapshot(); err != nil {
			log.Printf("Snapshot export failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule snapshot job: %w", err)
	}

	s.cron.Start()
	s.isRunning = true

	log.Printf("Snapshot scheduler: started with schedule '%s', writing to %s", s.schedule, s.dir)
	return nil
}

// Stop gracefully stops the scheduler, waiting for a running job to finish.
func (s *SnapshotScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.isRunning = false

	log.Printf("Snapshot scheduler: stopped")
}

func (s *SnapshotScheduler) runSnapshot() error {
	doc, err := s.source.Payload(false)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	name := fmt.Sprintf("canvas-%s.json", time.Now().Format("20060102-150405"))
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	log.Printf("Snapshot exported to %s", path)
	return nil
}
