// Package datasync assembles the shared canvas document from the data store
// and writes it back. The same code path backs the public API payload, the
// admin export endpoint, the sync-data command and the snapshot scheduler.
package datasync

import (
	"log"

	"gorm.io/gorm"

	"github.com/project-canvas/backend/internal/database/canvas"
	"github.com/project-canvas/backend/internal/database/hotspots"
	"github.com/project-canvas/backend/internal/entities"
)

// Service reads and writes the canvas document against the store.
type Service struct {
	db       *gorm.DB
	canvas   *canvas.Repository
	hotspots *hotspots.Repository
}

// NewService creates a new sync service on top of the given database handle.
func NewService(db *gorm.DB) *Service {
	return &Service{
		db:       db,
		canvas:   canvas.NewRepository(db),
		hotspots: hotspots.NewRepository(db),
	}
}

// Payload builds the full document. When enabledOnly is set, only enabled
// hotspots are included (the public API contract); otherwise every row is
// serialized (the export contract). Missing singleton rows are substituted
// with the rendering defaults in both cases.
func (s *Service) Payload(enabledOnly bool) (entities.CanvasDocument, error) {
	doc := entities.CanvasDocument{
		Canvas: &entities.CanvasDimensions{
			Width:  entities.DefaultCanvasWidth,
			Height: entities.DefaultCanvasHeight,
		},
		Settings: &entities.ZoomDocument{
			ZoomOnClick: entities.DefaultZoomOnClick,
			MinZoom:     entities.DefaultMinZoom,
			MaxZoom:     entities.DefaultMaxZoom,
		},
		Hotspots: []entities.HotspotDocument{},
	}

	cfg, err := s.canvas.GetConfig()
	if err != nil {
		return entities.CanvasDocument{}, err
	}
	if cfg != nil {
		doc.Canvas.Width = cfg.Width
		doc.Canvas.Height = cfg.Height
	}

	settings, err := s.canvas.GetSettings()
	if err != nil {
		return entities.CanvasDocument{}, err
	}
	if settings != nil {
		doc.Settings.ZoomOnClick = settings.ZoomOnClick
		doc.Settings.MinZoom = settings.MinZoom
		doc.Settings.MaxZoom = settings.MaxZoom
	}

	var rows []entities.Hotspot
	if enabledOnly {
		rows, err = s.hotspots.ListEnabled()
	} else {
		rows, err = s.hotspots.ListAll()
	}
	if err != nil {
		return entities.CanvasDocument{}, err
	}

	for _, h := range rows {
		doc.Hotspots = append(doc.Hotspots, h.ToDocument())
	}

	return doc, nil
}

// ImportResult summarizes an import run.
type ImportResult struct {
	Synced  int
	Skipped int
}

// Import upserts the document into the store within a single transaction.
// Canvas and settings are upserted when present. Hotspot entries missing a
// required field are skipped with a warning and do not abort the run. With
// replace set, all existing hotspot rows are deleted before inserting the
// document's set; otherwise it is a pure upsert and rows absent from the
// document are left untouched. On any database error nothing is committed.
func (s *Service) Import(doc entities.CanvasDocument, replace bool) (ImportResult, error) {
	var result ImportResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		canvasRepo := s.canvas.WithTx(tx)
		hotspotRepo := s.hotspots.WithTx(tx)

		if doc.Canvas != nil {
			if err := canvasRepo.UpsertConfig(doc.Canvas.Width, doc.Canvas.Height); err != nil {
				return err
			}
		}
		if doc.Settings != nil {
			if err := canvasRepo.UpsertSettings(doc.Settings.ZoomOnClick, doc.Settings.MinZoom, doc.Settings.MaxZoom); err != nil {
				return err
			}
		}

		if doc.Hotspots == nil {
			return nil
		}

		if replace {
			if err := hotspotRepo.DeleteAll(); err != nil {
				return err
			}
		}

		for _, entry := range doc.Hotspots {
			if !entry.Valid() {
				log.Printf("Skipping invalid hotspot: id=%q name=%q", entry.ID, entry.Name)
				result.Skipped++
				continue
			}
			if err := hotspotRepo.Upsert(entry.ToHotspot()); err != nil {
				return err
			}
			result.Synced++
		}

		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}

	return result, nil
}

// BulkReplace implements the admin bulk operation: within one transaction it
// conditionally upserts canvas and settings, and when the hotspots section is
// present deletes all existing rows and inserts the given set verbatim. No
// per-row validation beyond what the schema enforces; any failure rolls the
// whole transaction back.
func (s *Service) BulkReplace(doc entities.CanvasDocument) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		canvasRepo := s.canvas.WithTx(tx)
		hotspotRepo := s.hotspots.WithTx(tx)

		if doc.Canvas != nil {
			if err := canvasRepo.UpsertConfig(doc.Canvas.Width, doc.Canvas.Height); err != nil {
				return err
			}
		}
		if doc.Settings != nil {
			if err := canvasRepo.UpsertSettings(doc.Settings.ZoomOnClick, doc.Settings.MinZoom, doc.Settings.MaxZoom); err != nil {
				return err
			}
		}

		if doc.Hotspots == nil {
			return nil
		}

		if err := hotspotRepo.DeleteAll(); err != nil {
			return err
		}
		for _, entry := range doc.Hotspots {
			h := entry.ToHotspotLenient()
			if err := tx.Create(&h).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
