package database

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huntly/internal/config"
)

func TestInitAndMigrate(t *testing.T) {
	cfg := &config.Config{
		AppName:      "huntly",
		Environment:  config.Test,
		DatabaseName: filepath.Join(t.TempDir(), "huntly-test.db"),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	dm := NewDBManager(cfg, logger)
	require.NoError(t, dm.Init())
	require.NoError(t, dm.MigrateDatabase())

	db := dm.GetConnection()
	require.NotNil(t, db)

	for _, model := range AllModels() {
		assert.True(t, db.Migrator().HasTable(model))
	}
}

func TestMigrateWithoutInitFails(t *testing.T) {
	cfg := &config.Config{AppName: "huntly", Environment: config.Test}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	dm := NewDBManager(cfg, logger)
	assert.Error(t, dm.MigrateDatabase())
}
