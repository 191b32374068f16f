// Package canvas provides database operations for the two singleton tables:
// the canvas configuration and the zoom settings. Both are keyed by the
// fixed id 1 and maintained via upsert so repeated seeding is idempotent.
package canvas

import (
	"errors"

	"gorm.io/gorm"

	"github.com/project-canvas/backend/internal/entities"
)

// Repository handles canvas config and zoom settings database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new canvas repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetConfig retrieves the canvas configuration row, or nil when it has never
// been seeded.
func (r *Repository) GetConfig() (*entities.CanvasConfig, error) {
	var cfg entities.CanvasConfig
	err := r.db.First(&cfg, entities.SingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UpsertConfig creates or updates the canvas configuration row.
func (r *Repository) UpsertConfig(width, height int) error {
	return upsertConfig(r.db, width, height)
}

// GetSettings retrieves the zoom settings row, or nil when absent.
func (r *Repository) GetSettings() (*entities.ZoomSettings, error) {
	var s entities.ZoomSettings
	err := r.db.First(&s, entities.SingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UpsertSettings creates or updates the zoom settings row.
func (r *Repository) UpsertSettings(zoomOnClick, minZoom, maxZoom float64) error {
	return upsertSettings(r.db, zoomOnClick, minZoom, maxZoom)
}

// WithTx returns a repository bound to the given transaction handle.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

func upsertConfig(db *gorm.DB, width, height int) error {
	var existing entities.CanvasConfig
	result := db.First(&existing, entities.SingletonID)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		cfg := entities.CanvasConfig{
			ID:     entities.SingletonID,
			Width:  width,
			Height: height,
		}
		return db.Create(&cfg).Error
	} else if result.Error != nil {
		return result.Error
	}

	existing.Width = width
	existing.Height = height
	return db.Save(&existing).Error
}

func upsertSettings(db *gorm.DB, zoomOnClick, minZoom, maxZoom float64) error {
	var existing entities.ZoomSettings
	result := db.First(&existing, entities.SingletonID)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		s := entities.ZoomSettings{
			ID:          entities.SingletonID,
			ZoomOnClick: zoomOnClick,
			MinZoom:     minZoom,
			MaxZoom:     maxZoom,
		}
		return db.Create(&s).Error
	} else if result.Error != nil {
		return result.Error
	}

	existing.ZoomOnClick = zoomOnClick
	existing.MinZoom = minZoom
	existing.MaxZoom = maxZoom
	return db.Save(&existing).Error
}
