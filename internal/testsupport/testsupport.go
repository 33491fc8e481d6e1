// Package testsupport provides shared helpers for package tests.
package testsupport

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"huntly/internal/config"
	"huntly/internal/database"
)

// SetupTestDB opens a named in-memory SQLite database with the full schema
// migrated. Each distinct name is an isolated database; the shared cache
// keeps it alive across connections within the test.
func SetupTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(database.AllModels()...))
	return db
}

// GetLogger returns a logger that discards everything.
func GetLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestConfig returns a standalone test configuration without touching the
// process-wide config singleton.
func TestConfig() *config.Config {
	return &config.Config{
		AppName:               "huntly",
		AppPort:               "0",
		Environment:           config.Test,
		LogLevel:              config.LogLevelError,
		TotalCodes:            18,
		WinnerExclusionWindow: 30,
		JobIntervalSeconds:    120,
	}
}
