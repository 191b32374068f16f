package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/project-canvas/backend/internal/entities"
)

func writeTestDocument(t *testing.T, dir string, doc entities.CanvasDocument) string {
	t.Helper()

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	path := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

func syncSeq(v int) *int { return &v }

func TestSyncDataCommand_ImportThenExport(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "canvas.db")

	docPath := writeTestDocument(t, dir, entities.CanvasDocument{
		Canvas:   &entities.CanvasDimensions{Width: 800, Height: 600},
		Settings: &entities.ZoomDocument{ZoomOnClick: 2, MinZoom: 1, MaxZoom: 4},
		Hotspots: []entities.HotspotDocument{
			{
				ID:       "a",
				Name:     "spot",
				Region:   &entities.Region{X: 1, Y: 2, Width: 3, Height: 4},
				Content:  &entities.Content{Title: "T"},
				Sequence: syncSeq(1),
			},
		},
	})

	importCmd := NewSyncDataCommand()
	require.NoError(t, importCmd.ParseFlags([]string{"-file", docPath, "-db", dbPath}))
	require.NoError(t, importCmd.Run())

	outPath := filepath.Join(dir, "export.json")
	exportCmd := NewSyncDataCommand()
	require.NoError(t, exportCmd.ParseFlags([]string{"-export", "-out", outPath, "-db", dbPath}))
	require.NoError(t, exportCmd.Run())

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var exported entities.CanvasDocument
	require.NoError(t, json.Unmarshal(raw, &exported))
	assert.Equal(t, 800, exported.Canvas.Width)
	assert.Equal(t, 2.0, exported.Settings.ZoomOnClick)
	require.Len(t, exported.Hotspots, 1)
	assert.Equal(t, "a", exported.Hotspots[0].ID)
}

func TestSyncDataCommand_ReplaceMode(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "canvas.db")

	first := writeTestDocument(t, dir, entities.CanvasDocument{
		Hotspots: []entities.HotspotDocument{
			{
				ID:       "gone",
				Name:     "old",
				Region:   &entities.Region{X: 1, Y: 2, Width: 3, Height: 4},
				Content:  &entities.Content{Title: "T"},
				Sequence: syncSeq(1),
			},
		},
	})

	importCmd := NewSyncDataCommand()
	require.NoError(t, importCmd.ParseFlags([]string{"-file", first, "-db", dbPath}))
	require.NoError(t, importCmd.Run())

	secondDir := t.TempDir()
	second := writeTestDocument(t, secondDir, entities.CanvasDocument{
		Hotspots: []entities.HotspotDocument{
			{
				ID:       "new",
				Name:     "new",
				Region:   &entities.Region{X: 1, Y: 2, Width: 3, Height: 4},
				Content:  &entities.Content{Title: "T"},
				Sequence: syncSeq(1),
			},
		},
	})

	replaceCmd := NewSyncDataCommand()
	require.NoError(t, replaceCmd.ParseFlags([]string{"-file", second, "-replace", "-db", dbPath}))
	require.NoError(t, replaceCmd.Run())

	outPath := filepath.Join(dir, "export.json")
	exportCmd := NewSyncDataCommand()
	require.NoError(t, exportCmd.ParseFlags([]string{"-export", "-out", outPath, "-db", dbPath}))
	require.NoError(t, exportCmd.Run())

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var exported entities.CanvasDocument
	require.NoError(t, json.Unmarshal(raw, &exported))
	require.Len(t, exported.Hotspots, 1)
	assert.Equal(t, "new", exported.Hotspots[0].ID)
}

func TestSyncDataCommand_NoModePrintsUsage(t *testing.T) {
	cmd := NewSyncDataCommand()
	require.NoError(t, cmd.ParseFlags([]string{}))
	assert.NoError(t, cmd.Run())
}
