// Package hotspots provides database operations for hotspot records.
//
// # Usage
//
//	repo := hotspots.NewRepository(db)
//	err := repo.Upsert(hotspot)
package hotspots

import (
	"errors"

	"gorm.io/gorm"

	"github.com/project-canvas/backend/internal/entities"
)

// ErrNotFound is returned by update and delete operations when no hotspot
// matches the given id.
var ErrNotFound = errors.New("hotspot not found")

// Patch describes a partial update. Every nil field keeps its stored value;
// coalescing happens at the leaf level so a patch touching content.title
// leaves description, image and the region untouched.
type Patch struct {
	Name     *string
	Enabled  *bool
	Type     *entities.HotspotType
	Region   *RegionPatch
	Content  *ContentPatch
	Sequence *int
}

type RegionPatch struct {
	X      *float64
	Y      *float64
	Width  *float64
	Height *float64
}

type ContentPatch struct {
	Title       *string
	Description *string
	Image       *string
	Video       *string
}

// Repository handles all hotspot database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new hotspot repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the given transaction handle.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// GetByID retrieves a hotspot by its id.
func (r *Repository) GetByID(id string) (*entities.Hotspot, error) {
	var h entities.Hotspot
	err := r.db.First(&h, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// ListEnabled returns all enabled hotspots ordered by ascending sequence.
func (r *Repository) ListEnabled() ([]entities.Hotspot, error) {
	var hs []entities.Hotspot
	err := r.db.Where("enabled = ?", true).Order("sequence ASC").Find(&hs).Error
	return hs, err
}

// ListAll returns every hotspot ordered by ascending sequence.
func (r *Repository) ListAll() ([]entities.Hotspot, error) {
	var hs []entities.Hotspot
	err := r.db.Order("sequence ASC").Find(&hs).Error
	return hs, err
}

// Upsert inserts the hotspot or, when a row with the same id exists,
// overwrites it entirely.
func (r *Repository) Upsert(h entities.Hotspot) error {
	var existing entities.Hotspot
	result := r.db.First(&existing, "id = ?", h.ID)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return r.db.Create(&h).Error
	} else if result.Error != nil {
		return result.Error
	}

	h.CreatedAt = existing.CreatedAt
	return r.db.Save(&h).Error
}

// Update applies a partial patch to the hotspot with the given id. Returns
// ErrNotFound when no row matches.
func (r *Repository) Update(id string, patch Patch) error {
	existing, err := r.GetByID(id)
	if err != nil {
		return err
	}

	if patch.Name != nil {
		existing.Name = *patch.Name
	}
	if patch.Enabled != nil {
		existing.Enabled = *patch.Enabled
	}
	if patch.Type != nil {
		existing.Type = *patch.Type
	}
	if patch.Region != nil {
		if patch.Region.X != nil {
			existing.X = *patch.Region.X
		}
		if patch.Region.Y != nil {
			existing.Y = *patch.Region.Y
		}
		if patch.Region.Width != nil {
			existing.Width = *patch.Region.Width
		}
		if patch.Region.Height != nil {
			existing.Height = *patch.Region.Height
		}
	}
	if patch.Content != nil {
		if patch.Content.Title != nil {
			existing.Title = *patch.Content.Title
		}
		if patch.Content.Description != nil {
			existing.Description = *patch.Content.Description
		}
		if patch.Content.Image != nil {
			existing.Image = *patch.Content.Image
		}
		if patch.Content.Video != nil {
			existing.Video = *patch.Content.Video
		}
	}
	if patch.Sequence != nil {
		existing.Sequence = *patch.Sequence
	}

	// Save writes all columns, so enabled=false sticks
	return r.db.Save(existing).Error
}

// Delete removes the hotspot with the given id. Returns ErrNotFound when no
// row matches.
func (r *Repository) Delete(id string) error {
	result := r.db.Delete(&entities.Hotspot{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAll removes every hotspot row.
func (r *Repository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entities.Hotspot{}).Error
}

// ReplaceAll deletes every hotspot row and inserts the given set within one
// transaction. Any hotspot omitted from the set is permanently removed.
func (r *Repository) ReplaceAll(hs []entities.Hotspot) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		repo := r.WithTx(tx)
		if err := repo.DeleteAll(); err != nil {
			return err
		}
		for i := range hs {
			if err := tx.Create(&hs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
