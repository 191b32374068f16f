package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/project-canvas/backend/internal/entities"
)

// Schema as it existed before the type and video columns were introduced.
const legacyHotspotsSchema = `
CREATE TABLE hotspots (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	enabled NUMERIC DEFAULT true,
	x REAL NOT NULL,
	y REAL NOT NULL,
	width REAL NOT NULL,
	height REAL NOT NULL,
	title TEXT,
	description TEXT,
	image TEXT,
	sequence INTEGER NOT NULL,
	created_at DATETIME,
	updated_at DATETIME
)`

func setupLegacyDB(t *testing.T) (string, func()) {
	t.Helper()

	dbPath := "./test_migrate_" + t.Name() + ".db"
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.Exec(legacyHotspotsSchema).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO hotspots (id, name, enabled, x, y, width, height, title, sequence) `+
			`VALUES ('a', 'legacy spot', true, 1, 2, 3, 4, 'T', 1)`).Error)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	cleanup := func() { os.Remove(dbPath) }
	return dbPath, cleanup
}

func TestMigrateTypeVideo_AddsColumns(t *testing.T) {
	dbPath, cleanup := setupLegacyDB(t)
	defer cleanup()

	cmd := NewMigrateTypeVideoCommand()
	cmd.DatabasePath = dbPath
	require.NoError(t, cmd.Run())

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	defer func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}()

	assert.True(t, db.Migrator().HasColumn(&entities.Hotspot{}, "type"))
	assert.True(t, db.Migrator().HasColumn(&entities.Hotspot{}, "video"))

	// Existing rows survive with the column defaults
	var h entities.Hotspot
	require.NoError(t, db.First(&h, "id = ?", "a").Error)
	assert.Equal(t, "legacy spot", h.Name)
	assert.Equal(t, 1.0, h.X)
}

func TestMigrateTypeVideo_Idempotent(t *testing.T) {
	dbPath, cleanup := setupLegacyDB(t)
	defer cleanup()

	cmd := NewMigrateTypeVideoCommand()
	cmd.DatabasePath = dbPath
	require.NoError(t, cmd.Run())
	require.NoError(t, cmd.Run())
}

func TestMigrateTypeVideo_MissingTable(t *testing.T) {
	dbPath := "./test_migrate_empty_" + t.Name() + ".db"
	defer os.Remove(dbPath)

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, _ := db.DB()
	sqlDB.Close()

	cmd := NewMigrateTypeVideoCommand()
	cmd.DatabasePath = dbPath
	assert.Error(t, cmd.Run())
}
