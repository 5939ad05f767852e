package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/wallcalc/pkg/domain/entities"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, "wallcalc", cfg.Redis.Prefix)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, entities.DefaultClimate(), cfg.DefaultClimate())
	assert.Equal(t, 0.13, cfg.Surface.Rsi)
	assert.Equal(t, 0.04, cfg.Surface.Rse)
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
storage:
  driver: sqlite
  dsn: file:walls.db
climate:
  exterior_temperature: -21
`), 0o644))

	t.Setenv("WALLCALC_HTTP_ADDR", ":9090")
	t.Setenv("WALLCALC_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level, "environment overrides the file")
	assert.Equal(t, StorageSQLite, cfg.Storage.Driver)
	assert.Equal(t, "file:walls.db", cfg.Storage.DSN)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, -21.0, cfg.DefaultClimate().ExteriorTemperature)
	assert.Equal(t, 20.0, cfg.DefaultClimate().InteriorTemperature)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("WALLCALC_STORAGE_DRIVER", "mongodb")
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("postgres without dsn", func(t *testing.T) {
		t.Setenv("WALLCALC_STORAGE_DRIVER", "postgres")
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("humidity out of range", func(t *testing.T) {
		t.Setenv("WALLCALC_CLIMATE_INTERIOR_HUMIDITY", "140")
		_, err := Load("")
		assert.ErrorIs(t, err, entities.ErrInvalidClimate)
	})
}
