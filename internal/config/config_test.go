package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.Engine.StartID)
	assert.Equal(t, ".", cfg.Engine.LogDir)
	assert.Equal(t, ".", cfg.Assets.GameRoot)
	assert.Equal(t, 3, cfg.Harness.Ticks)
	assert.Equal(t, "player", cfg.Harness.OwnerID)
	assert.Empty(t, cfg.Redis.URL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("MEGASTONES_START_ID", "7000")
	t.Setenv("MEGASTONES_LOG_DIR", "/tmp/mega")
	t.Setenv("MEGASTONES_CATALOG_PATH", "extra.yaml")
	t.Setenv("MEGASTONES_TICKS", "10")
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Engine.StartID)
	assert.Equal(t, "/tmp/mega", cfg.Engine.LogDir)
	assert.Equal(t, "extra.yaml", cfg.Engine.CatalogPath)
	assert.Equal(t, 10, cfg.Harness.Ticks)
	assert.Equal(t, "redis://localhost:6379/2", cfg.Redis.URL)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("start id not a number", func(t *testing.T) {
		t.Setenv("MEGASTONES_START_ID", "lots")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("start id zero", func(t *testing.T) {
		t.Setenv("MEGASTONES_START_ID", "0")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("no ticks", func(t *testing.T) {
		t.Setenv("MEGASTONES_TICKS", "0")
		_, err := Load()
		assert.Error(t, err)
	})
}
