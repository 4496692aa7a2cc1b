package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 120, cfg.Week.MaxMinutes)
	assert.Equal(t, 3, cfg.Week.MaxModules)
	assert.NotEmpty(t, cfg.DBPath)
	assert.Empty(t, cfg.CatalogPath, "embedded catalog by default")
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("db_path: /tmp/cc.db\ncatalog_path: /tmp/catalog.json\nweek:\n  max_minutes: 90\n  max_modules: 2\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/cc.db", cfg.DBPath)
	assert.Equal(t, "/tmp/catalog.json", cfg.CatalogPath)
	assert.Equal(t, 90, cfg.Week.MaxMinutes)
	assert.Equal(t, 2, cfg.Week.MaxModules)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /tmp/from-file.db\n"), 0o644))

	t.Setenv("CREDITCOACH_DB", "/tmp/from-env.db")
	t.Setenv("CREDITCOACH_WEEK_MINUTES", "60")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/from-env.db", cfg.DBPath)
	assert.Equal(t, 60, cfg.Week.MaxMinutes)
}

func TestLoad_InvalidEnvIgnored(t *testing.T) {
	t.Setenv("CREDITCOACH_WEEK_MODULES", "zero")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Week.MaxModules)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n  - not yaml"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_NonpositiveCapsNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("week:\n  max_minutes: -5\n  max_modules: 0\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Week.MaxMinutes)
	assert.Equal(t, 3, cfg.Week.MaxModules)
}
