package entities

import (
	"time"
)

// HotspotType selects how a hotspot is presented when activated.
type HotspotType string

const (
	HotspotTypeText  HotspotType = "text"
	HotspotTypeImage HotspotType = "image"
	HotspotTypeVideo HotspotType = "video"
)

// SingletonID is the fixed row id of the canvas_config and settings tables.
const SingletonID = 1

// CanvasConfig holds the native pixel dimensions of the background image.
// A single row with id = SingletonID; maintained via upsert, never deleted.
type CanvasConfig struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CanvasConfig) TableName() string {
	return "canvas_config"
}

// ZoomSettings holds the pan-zoom bounds and the target zoom level applied
// when a hotspot is activated. Single row with id = SingletonID.
type ZoomSettings struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	ZoomOnClick float64   `json:"zoom_on_click"`
	MinZoom     float64   `json:"min_zoom"`
	MaxZoom     float64   `json:"max_zoom"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ZoomSettings) TableName() string {
	return "settings"
}

// Hotspot is a clickable rectangular region over the background image. The
// primary key is a user-assigned string id. Region coordinates live in the
// coordinate space of CanvasConfig and are deliberately not validated
// against it.
type Hotspot struct {
	ID   string `gorm:"primaryKey;size:64" json:"id"`
	Name string `gorm:"size:256" json:"name"`
	// No gorm default tag here: with one, GORM omits enabled=false from
	// INSERTs and the row comes back enabled. Defaulting happens in the
	// document conversions instead.
	Enabled     bool        `json:"enabled"`
	Type        HotspotType `gorm:"size:16;default:'text'" json:"type"`
	X           float64     `json:"x"`
	Y           float64     `json:"y"`
	Width       float64     `json:"width"`
	Height      float64     `json:"height"`
	Title       string      `gorm:"size:512" json:"title"`
	Description string      `gorm:"type:text" json:"description"`
	Image       string      `gorm:"size:2048" json:"image"`
	Video       string      `gorm:"size:2048;default:''" json:"video"`
	Sequence    int         `gorm:"index" json:"sequence"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (Hotspot) TableName() string {
	return "hotspots"
}

// Defaults substituted when the singleton rows are absent.
const (
	DefaultCanvasWidth  = 1376
	DefaultCanvasHeight = 768

	DefaultZoomOnClick = 1.5
	DefaultMinZoom     = 0.5
	DefaultMaxZoom     = 3
)
