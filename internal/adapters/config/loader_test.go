package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/undup/internal/adapters/config"
)

func TestLoadMissingFileIsEmptyConfig(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "undup.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &config.File{}, cfg)
}

func TestLoadFullConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "undup.yaml")
	content := `version: "1"
sources:
  - /data/library
  - /data/archive
targets:
  - /data/downloads
cache:
  enabled: false
  path: /var/cache/undup.json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, []string{"/data/library", "/data/archive"}, cfg.Sources)
	assert.Equal(t, []string{"/data/downloads"}, cfg.Targets)
	require.NotNil(t, cfg.Cache.Enabled)
	assert.False(t, *cfg.Cache.Enabled)
	assert.Equal(t, "/var/cache/undup.json", cfg.Cache.Path)
}

func TestLoadCacheEnabledDefaultsToUnset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "undup.yaml")
	require.NoError(t, os.WriteFile(path, []byte("targets:\n  - /data\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Nil(t, cfg.Cache.Enabled)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "undup.yaml")
	require.NoError(t, os.WriteFile(path, []byte("targets: [unclosed"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
