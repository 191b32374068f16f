// Package viewer holds the client application's state: the normalized
// hotspot list, the sequence-order navigation index, modal content selection
// and the design-mode editing operations. State lives in an explicit App
// object handed to the rendering and event layers; the pan-zoom library sits
// behind the Viewport interface.
package viewer

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/project-canvas/backend/internal/entities"
)

// Hotspot is the viewer's working copy of one hotspot. Geometry is mutated
// in place by design mode; everything else mirrors the stored record.
type Hotspot struct {
	ID          string
	Name        string
	Type        entities.HotspotType
	Rect        Rect
	Title       string
	Description string
	Image       string
	Video       string
	Sequence    int
}

// App is the client application state.
type App struct {
	Canvas   entities.CanvasDimensions
	Settings entities.ZoomDocument

	hotspots []*Hotspot
	order    []string // hotspot ids sorted ascending by sequence
	current  int      // index into order; -1 = unset

	designMode bool
	viewport   Viewport
}

// NewApp normalizes a fetched document into application state. Disabled
// hotspots are discarded and the sequence-order index is built up front.
func NewApp(doc entities.CanvasDocument, viewport Viewport) *App {
	if viewport == nil {
		viewport = NopViewport{}
	}

	app := &App{
		Canvas: entities.CanvasDimensions{
			Width:  entities.DefaultCanvasWidth,
			Height: entities.DefaultCanvasHeight,
		},
		Settings: entities.ZoomDocument{
			ZoomOnClick: entities.DefaultZoomOnClick,
			MinZoom:     entities.DefaultMinZoom,
			MaxZoom:     entities.DefaultMaxZoom,
		},
		current:  -1,
		viewport: viewport,
	}
	if doc.Canvas != nil {
		app.Canvas = *doc.Canvas
	}
	if doc.Settings != nil {
		app.Settings = *doc.Settings
	}

	for _, entry := range doc.Hotspots {
		if !entry.IsEnabled() {
			continue
		}
		h := entry.ToHotspotLenient()
		app.hotspots = append(app.hotspots, &Hotspot{
			ID:          h.ID,
			Name:        h.Name,
			Type:        h.Type,
			Rect:        Rect{X: h.X, Y: h.Y, Width: h.Width, Height: h.Height},
			Title:       h.Title,
			Description: h.Description,
			Image:       h.Image,
			Video:       h.Video,
			Sequence:    h.Sequence,
		})
	}

	app.rebuildOrder()
	return app
}

func (a *App) rebuildOrder() {
	sorted := make([]*Hotspot, len(a.hotspots))
	copy(sorted, a.hotspots)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Sequence < sorted[j].Sequence
	})
	a.order = a.order[:0]
	for _, h := range sorted {
		a.order = append(a.order, h.ID)
	}
}

// Hotspots returns the working hotspot list.
func (a *App) Hotspots() []*Hotspot {
	return a.hotspots
}

// Find returns the hotspot with the given id, or nil.
func (a *App) Find(id string) *Hotspot {
	for _, h := range a.hotspots {
		if h.ID == id {
			return h
		}
	}
	return nil
}

// Open activates a hotspot: the viewport zooms to its center at the
// configured zoom-on-click level and the matching modal content is returned.
func (a *App) Open(h *Hotspot) ModalContent {
	a.viewport.ZoomTo(h.Rect.X+h.Rect.Width/2, h.Rect.Y+h.Rect.Height/2, a.Settings.ZoomOnClick)
	for i, id := range a.order {
		if id == h.ID {
			a.current = i
			break
		}
	}
	return ModalContentFor(h)
}

// Next advances cyclically through the sequence order and returns the
// resulting hotspot; from the unset state it starts at the first. Returns
// nil when there are no hotspots.
func (a *App) Next() *Hotspot {
	if len(a.order) == 0 {
		return nil
	}
	a.current++
	if a.current >= len(a.order) {
		a.current = 0
	}
	return a.Find(a.order[a.current])
}

// Prev steps backwards cyclically; from the unset state it starts at the
// last. Returns nil when there are no hotspots.
func (a *App) Prev() *Hotspot {
	if len(a.order) == 0 {
		return nil
	}
	a.current--
	if a.current < 0 {
		a.current = len(a.order) - 1
	}
	return a.Find(a.order[a.current])
}

// Reset clears the navigation position and recenters the viewport. The
// caller closes any open modal.
func (a *App) Reset() {
	a.current = -1
	a.viewport.ZoomTo(float64(a.Canvas.Width)/2, float64(a.Canvas.Height)/2, 1)
	a.viewport.MoveTo(0, 0)
}

// DesignMode reports whether design mode is active.
func (a *App) DesignMode() bool {
	return a.designMode
}

// EnterDesignMode suspends the pan-zoom viewport and resets the transform so
// pointer deltas map 1:1 to canvas pixels.
func (a *App) EnterDesignMode() {
	if a.designMode {
		return
	}
	a.designMode = true
	a.viewport.Pause()
	a.viewport.ZoomTo(0, 0, 1)
	a.viewport.MoveTo(0, 0)
}

// ExitDesignMode resumes the viewport and recenters.
func (a *App) ExitDesignMode() {
	if !a.designMode {
		return
	}
	a.designMode = false
	a.viewport.Resume()
	a.viewport.ZoomTo(float64(a.Canvas.Width)/2, float64(a.Canvas.Height)/2, 1)
	a.viewport.MoveTo(0, 0)
}

// AddHotspot appends a new hotspot of the given type at the default
// placement and returns it. The id is the next free numeric id; the sequence
// continues after the current set.
func (a *App) AddHotspot(typ entities.HotspotType) *Hotspot {
	if typ == "" {
		typ = entities.HotspotTypeText
	}

	maxID := 0
	for _, h := range a.hotspots {
		if n, err := strconv.Atoi(h.ID); err == nil && n > maxID {
			maxID = n
		}
	}
	newID := strconv.Itoa(maxID + 1)

	h := &Hotspot{
		ID:   newID,
		Name: "New " + newID,
		Type: typ,
		// Visible area, clear of the design panel at the top-left
		Rect:     Rect{X: 250, Y: 250, Width: 120, Height: 60},
		Sequence: len(a.hotspots) + 1,
	}
	a.hotspots = append(a.hotspots, h)
	a.rebuildOrder()
	return h
}

// RenameHotspot changes a hotspot's id. Empty ids and ids already in use are
// rejected.
func (a *App) RenameHotspot(oldID, newID string) error {
	if newID == "" {
		return fmt.Errorf("hotspot id must not be empty")
	}
	if newID == oldID {
		return nil
	}
	if a.Find(newID) != nil {
		return fmt.Errorf("hotspot id %q already in use", newID)
	}
	h := a.Find(oldID)
	if h == nil {
		return fmt.Errorf("no hotspot with id %q", oldID)
	}
	h.ID = newID
	a.rebuildOrder()
	return nil
}

// MoveHotspot applies a drag delta to the hotspot's start rectangle.
func (a *App) MoveHotspot(h *Hotspot, start Rect, dx, dy float64) {
	h.Rect = MoveRect(start, dx, dy)
}

// ResizeHotspot applies a corner-handle delta to the hotspot's start
// rectangle.
func (a *App) ResizeHotspot(h *Hotspot, start Rect, dx, dy float64, corner Corner) {
	h.Rect = ResizeRect(start, dx, dy, corner)
}

// Document serializes the working state back to the shared document shape
// with rounded region coordinates, ready for manual copy-out. Design mode
// never writes to the store itself.
func (a *App) Document() entities.CanvasDocument {
	doc := entities.CanvasDocument{
		Canvas:   &entities.CanvasDimensions{Width: a.Canvas.Width, Height: a.Canvas.Height},
		Settings: &entities.ZoomDocument{ZoomOnClick: a.Settings.ZoomOnClick, MinZoom: a.Settings.MinZoom, MaxZoom: a.Settings.MaxZoom},
		Hotspots: []entities.HotspotDocument{},
	}

	for _, h := range a.hotspots {
		typ := h.Type
		if typ == "" {
			typ = entities.HotspotTypeText
		}
		seq := h.Sequence
		doc.Hotspots = append(doc.Hotspots, entities.HotspotDocument{
			ID:   h.ID,
			Name: h.Name,
			Type: typ,
			Region: &entities.Region{
				X:      math.Round(h.Rect.X),
				Y:      math.Round(h.Rect.Y),
				Width:  math.Round(h.Rect.Width),
				Height: math.Round(h.Rect.Height),
			},
			Content: &entities.Content{
				Title:       h.Title,
				Description: h.Description,
				Image:       h.Image,
				Video:       h.Video,
			},
			Sequence: &seq,
		})
	}

	return doc
}
