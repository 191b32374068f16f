package http

import (
	"github.com/project-canvas/backend/internal/database/hotspots"
	"github.com/project-canvas/backend/internal/entities"
)

// This file consolidates the store interfaces used by HTTP controllers.
// Each controller depends only on the operations it needs.

// PayloadReader builds the shared canvas document from the store.
type PayloadReader interface {
	Payload(enabledOnly bool) (entities.CanvasDocument, error)
}

// HotspotWriter provides the single-hotspot admin operations.
type HotspotWriter interface {
	Upsert(h entities.Hotspot) error
	Update(id string, patch hotspots.Patch) error
	Delete(id string) error
}

// BulkWriter applies the transactional bulk replace.
type BulkWriter interface {
	BulkReplace(doc entities.CanvasDocument) error
}

// RouterConfig receives all router dependencies, improving testability and
// reducing parameter count.
type RouterConfig struct {
	Payloads   PayloadReader
	Hotspots   HotspotWriter
	Bulk       BulkWriter
	Pinger     Pinger
	AdminToken string
	CORSOrigin string

	// Rate limiting for the public endpoint
	RateLimitWindowMS int
	RateLimitMax      int

	Version string
}
