package datasync

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/project-canvas/backend/internal/database"
	"github.com/project-canvas/backend/internal/entities"
)

func setupTestService(t *testing.T) (*Service, *gorm.DB, func()) {
	t.Helper()

	dbPath := "./test_datasync_" + t.Name() + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return NewService(db.DB), db.DB, cleanup
}

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

func docHotspot(id string, sequence int) entities.HotspotDocument {
	return entities.HotspotDocument{
		ID:       id,
		Name:     "spot " + id,
		Region:   &entities.Region{X: 1, Y: 2, Width: 3, Height: 4},
		Content:  &entities.Content{Title: "T"},
		Sequence: intPtr(sequence),
	}
}

func TestService_Payload_DefaultsWhenEmpty(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	doc, err := service.Payload(true)
	require.NoError(t, err)

	assert.Equal(t, 1376, doc.Canvas.Width)
	assert.Equal(t, 768, doc.Canvas.Height)
	assert.Equal(t, 1.5, doc.Settings.ZoomOnClick)
	assert.Equal(t, 0.5, doc.Settings.MinZoom)
	assert.Equal(t, 3.0, doc.Settings.MaxZoom)
	assert.Empty(t, doc.Hotspots)
	assert.NotNil(t, doc.Hotspots)
}

func TestService_Import_UpsertsEverything(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	input := entities.CanvasDocument{
		Canvas:   &entities.CanvasDimensions{Width: 1000, Height: 500},
		Settings: &entities.ZoomDocument{ZoomOnClick: 2, MinZoom: 1, MaxZoom: 4},
		Hotspots: []entities.HotspotDocument{docHotspot("a", 1), docHotspot("b", 2)},
	}

	result, err := service.Import(input, false)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Synced)
	assert.Equal(t, 0, result.Skipped)

	doc, err := service.Payload(true)
	require.NoError(t, err)
	assert.Equal(t, 1000, doc.Canvas.Width)
	assert.Equal(t, 2.0, doc.Settings.ZoomOnClick)
	require.Len(t, doc.Hotspots, 2)
	assert.Equal(t, "a", doc.Hotspots[0].ID)
}

func TestService_Import_SkipsInvalidEntries(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	missingName := docHotspot("broken", 9)
	missingName.Name = ""
	missingSequence := docHotspot("nosequence", 0)
	missingSequence.Sequence = nil

	input := entities.CanvasDocument{
		Hotspots: []entities.HotspotDocument{missingName, docHotspot("ok", 1), missingSequence},
	}

	result, err := service.Import(input, false)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Synced)
	assert.Equal(t, 2, result.Skipped)

	doc, err := service.Payload(false)
	require.NoError(t, err)
	require.Len(t, doc.Hotspots, 1)
	assert.Equal(t, "ok", doc.Hotspots[0].ID)
}

func TestService_Import_PureUpsertKeepsOthers(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	_, err := service.Import(entities.CanvasDocument{
		Hotspots: []entities.HotspotDocument{docHotspot("keep", 1)},
	}, false)
	require.NoError(t, err)

	_, err = service.Import(entities.CanvasDocument{
		Hotspots: []entities.HotspotDocument{docHotspot("new", 2)},
	}, false)
	require.NoError(t, err)

	doc, err := service.Payload(false)
	require.NoError(t, err)
	assert.Len(t, doc.Hotspots, 2)
}

func TestService_Import_ReplaceRemovesOthers(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	_, err := service.Import(entities.CanvasDocument{
		Hotspots: []entities.HotspotDocument{docHotspot("gone", 1)},
	}, false)
	require.NoError(t, err)

	_, err = service.Import(entities.CanvasDocument{
		Hotspots: []entities.HotspotDocument{docHotspot("new", 2)},
	}, true)
	require.NoError(t, err)

	doc, err := service.Payload(false)
	require.NoError(t, err)
	require.Len(t, doc.Hotspots, 1)
	assert.Equal(t, "new", doc.Hotspots[0].ID)
}

func TestService_ExportImportRoundTrip(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	disabled := docHotspot("off", 2)
	disabled.Enabled = boolPtr(false)
	video := docHotspot("vid", 3)
	video.Type = entities.HotspotTypeVideo
	video.Content.Video = "https://youtu.be/abc123"

	_, err := service.Import(entities.CanvasDocument{
		Canvas:   &entities.CanvasDimensions{Width: 800, Height: 600},
		Settings: &entities.ZoomDocument{ZoomOnClick: 1.5, MinZoom: 0.5, MaxZoom: 3},
		Hotspots: []entities.HotspotDocument{docHotspot("a", 1), disabled, video},
	}, true)
	require.NoError(t, err)

	exported, err := service.Payload(false)
	require.NoError(t, err)

	// Elision: enabled omitted when true, explicit false kept
	require.Len(t, exported.Hotspots, 3)
	assert.Nil(t, exported.Hotspots[0].Enabled)
	require.NotNil(t, exported.Hotspots[1].Enabled)
	assert.False(t, *exported.Hotspots[1].Enabled)
	assert.Equal(t, entities.HotspotTypeVideo, exported.Hotspots[2].Type)
	assert.Equal(t, "https://youtu.be/abc123", exported.Hotspots[2].Content.Video)

	_, err = service.Import(exported, true)
	require.NoError(t, err)

	again, err := service.Payload(false)
	require.NoError(t, err)
	assert.Equal(t, exported, again)

	// The enabled set and its order survive the round trip
	public, err := service.Payload(true)
	require.NoError(t, err)
	require.Len(t, public.Hotspots, 2)
	assert.Equal(t, "a", public.Hotspots[0].ID)
	assert.Equal(t, "vid", public.Hotspots[1].ID)
}

func TestService_BulkReplace_DisabledRowStaysDisabled(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	disabled := docHotspot("off", 1)
	disabled.Enabled = boolPtr(false)

	err := service.BulkReplace(entities.CanvasDocument{
		Hotspots: []entities.HotspotDocument{disabled, docHotspot("on", 2)},
	})
	require.NoError(t, err)

	public, err := service.Payload(true)
	require.NoError(t, err)
	require.Len(t, public.Hotspots, 1)
	assert.Equal(t, "on", public.Hotspots[0].ID)

	full, err := service.Payload(false)
	require.NoError(t, err)
	require.Len(t, full.Hotspots, 2)
	require.NotNil(t, full.Hotspots[0].Enabled)
	assert.False(t, *full.Hotspots[0].Enabled)
}

func TestService_BulkReplace_EmptyHotspots(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	_, err := service.Import(entities.CanvasDocument{
		Canvas:   &entities.CanvasDimensions{Width: 640, Height: 480},
		Settings: &entities.ZoomDocument{ZoomOnClick: 2, MinZoom: 1, MaxZoom: 5},
		Hotspots: []entities.HotspotDocument{docHotspot("a", 1)},
	}, false)
	require.NoError(t, err)

	err = service.BulkReplace(entities.CanvasDocument{
		Hotspots: []entities.HotspotDocument{},
	})
	require.NoError(t, err)

	doc, err := service.Payload(true)
	require.NoError(t, err)
	assert.Empty(t, doc.Hotspots)
	// Singletons survive
	assert.Equal(t, 640, doc.Canvas.Width)
	assert.Equal(t, 2.0, doc.Settings.ZoomOnClick)
}

func TestService_BulkReplace_NilHotspotsLeavesRows(t *testing.T) {
	service, _, cleanup := setupTestService(t)
	defer cleanup()

	_, err := service.Import(entities.CanvasDocument{
		Hotspots: []entities.HotspotDocument{docHotspot("a", 1)},
	}, false)
	require.NoError(t, err)

	err = service.BulkReplace(entities.CanvasDocument{
		Canvas: &entities.CanvasDimensions{Width: 321, Height: 123},
	})
	require.NoError(t, err)

	doc, err := service.Payload(false)
	require.NoError(t, err)
	assert.Len(t, doc.Hotspots, 1)
	assert.Equal(t, 321, doc.Canvas.Width)
}
