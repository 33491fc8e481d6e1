package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetConfigDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	cfg := GetConfig()
	assert.Equal(t, "huntly", cfg.AppName)
	assert.Equal(t, Development, cfg.Environment)
	assert.Equal(t, 18, cfg.TotalCodes)
	assert.Equal(t, 30, cfg.WinnerExclusionWindow)
	assert.Equal(t, 120, cfg.JobIntervalSeconds)
}

func TestGetConfigEnvOverrides(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	t.Setenv("HUNTLY_ENV", Test)
	t.Setenv("HUNTLY_TOTAL_CODES", "24")
	t.Setenv("HUNTLY_WINNER_EXCLUSION_WINDOW", "10")

	cfg := GetConfig()
	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 24, cfg.TotalCodes)
	assert.Equal(t, 10, cfg.WinnerExclusionWindow)
	assert.True(t, cfg.IsTest())
}

func TestDatabasePathDerivation(t *testing.T) {
	cfg := &Config{AppName: "huntly", Environment: Test, DatabasePath: "storage"}
	assert.Equal(t, "storage/huntly-test.db", cfg.GetDatabasePath())
}

func TestConnectionPoolSizing(t *testing.T) {
	cfg := &Config{Environment: Test}
	assert.Equal(t, 1, cfg.GetMaxOpenConns())
	assert.Equal(t, 1, cfg.GetMaxIdleConns())

	cfg = &Config{Environment: Production}
	assert.Equal(t, 10, cfg.GetMaxOpenConns())
	assert.Equal(t, 5, cfg.GetMaxIdleConns())

	cfg = &Config{Environment: Production, DatabaseMaxOpenConns: 25, DatabaseMaxIdleConns: 12}
	assert.Equal(t, 25, cfg.GetMaxOpenConns())
	assert.Equal(t, 12, cfg.GetMaxIdleConns())
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := &Config{Environment: "staging", TotalCodes: 18}
	assert.Error(t, cfg.validate())

	cfg = &Config{Environment: Development, TotalCodes: 0}
	assert.Error(t, cfg.validate())

	cfg = &Config{Environment: Development, TotalCodes: 18, WinnerExclusionWindow: -1}
	assert.Error(t, cfg.validate())
}
