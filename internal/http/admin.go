package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/project-canvas/backend/internal/database/hotspots"
	"github.com/project-canvas/backend/internal/entities"
)

// AdminController implements the authenticated CRUD surface over hotspots,
// the transactional bulk replace and the export endpoint.
type AdminController struct {
	hotspots HotspotWriter
	bulk     BulkWriter
	payloads PayloadReader
}

func NewAdminController(writer HotspotWriter, bulk BulkWriter, payloads PayloadReader) *AdminController {
	return &AdminController{
		hotspots: writer,
		bulk:     bulk,
		payloads: payloads,
	}
}

// UpsertHotspot handles POST /api/admin/hotspots. The body is one hotspot in
// the shared shape; id, name, region, content and sequence are required.
func (ctrl *AdminController) UpsertHotspot(c *gin.Context) {
	var req entities.HotspotDocument
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid JSON body")
		return
	}
	if !req.Valid() {
		respondBadRequest(c, "Missing required fields")
		return
	}

	if err := ctrl.hotspots.Upsert(req.ToHotspot()); err != nil {
		respondInternalError(c, err, "upserting hotspot")
		return
	}
	respondOK(c)
}

// Wire shape for partial updates: every field, down to single region
// coordinates and content entries, independently defaults to its stored
// value when omitted.
type hotspotPatchRequest struct {
	Name     *string               `json:"name"`
	Enabled  *bool                 `json:"enabled"`
	Type     *entities.HotspotType `json:"type"`
	Region   *regionPatchRequest   `json:"region"`
	Content  *contentPatchRequest  `json:"content"`
	Sequence *int                  `json:"sequence"`
}

type regionPatchRequest struct {
	X      *float64 `json:"x"`
	Y      *float64 `json:"y"`
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
}

type contentPatchRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Video       *string `json:"video"`
}

func (req hotspotPatchRequest) toPatch() hotspots.Patch {
	patch := hotspots.Patch{
		Name:     req.Name,
		Enabled:  req.Enabled,
		Type:     req.Type,
		Sequence: req.Sequence,
	}
	if req.Region != nil {
		patch.Region = &hotspots.RegionPatch{
			X:      req.Region.X,
			Y:      req.Region.Y,
			Width:  req.Region.Width,
			Height: req.Region.Height,
		}
	}
	if req.Content != nil {
		patch.Content = &hotspots.ContentPatch{
			Title:       req.Content.Title,
			Description: req.Content.Description,
			Image:       req.Content.Image,
			Video:       req.Content.Video,
		}
	}
	return patch
}

// UpdateHotspot handles PUT /api/admin/hotspots/:id.
func (ctrl *AdminController) UpdateHotspot(c *gin.Context) {
	var req hotspotPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid JSON body")
		return
	}

	err := ctrl.hotspots.Update(c.Param("id"), req.toPatch())
	if errors.Is(err, hotspots.ErrNotFound) {
		respondNotFound(c)
		return
	}
	if err != nil {
		respondInternalError(c, err, "updating hotspot")
		return
	}
	respondOK(c)
}

// DeleteHotspot handles DELETE /api/admin/hotspots/:id.
func (ctrl *AdminController) DeleteHotspot(c *gin.Context) {
	err := ctrl.hotspots.Delete(c.Param("id"))
	if errors.Is(err, hotspots.ErrNotFound) {
		respondNotFound(c)
		return
	}
	if err != nil {
		respondInternalError(c, err, "deleting hotspot")
		return
	}
	respondOK(c)
}

// BulkReplace handles POST /api/admin/bulk. Canvas and settings are upserted
// when present; when the hotspots section is present the whole table is
// replaced with the given set in the same transaction. Partial bulk writes
// are never observable.
func (ctrl *AdminController) BulkReplace(c *gin.Context) {
	var doc entities.CanvasDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		respondBadRequest(c, "Invalid JSON body")
		return
	}

	if err := ctrl.bulk.BulkReplace(doc); err != nil {
		respondInternalError(c, err, "bulk update")
		return
	}
	respondOK(c)
}

// Export handles GET /api/admin/export: the full store, disabled rows
// included, in the same shape the sync utility writes.
func (ctrl *AdminController) Export(c *gin.Context) {
	doc, err := ctrl.payloads.Payload(false)
	if err != nil {
		respondInternalError(c, err, "exporting data")
		return
	}
	c.IndentedJSON(http.StatusOK, doc)
}
