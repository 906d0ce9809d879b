package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, DefaultMaxTokens, cfg.MaxTokens)
	assert.Equal(t, DefaultScanTimeout, time.Duration(cfg.ScanTimeout))
}

func TestLoadConfigFile(t *testing.T) {
	ws := t.TempDir()
	dir := filepath.Join(ws, ".specmap")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("model: gpt-4o-mini\nscanTimeout: 30s\n"), 0644))

	cfg, err := Load(ws)
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, 30*time.Second, time.Duration(cfg.ScanTimeout))
	assert.Equal(t, ws, cfg.Workspace)
}

func TestEnvOverridesFile(t *testing.T) {
	ws := t.TempDir()
	dir := filepath.Join(ws, ".specmap")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("model: gpt-4o-mini\n"), 0644))

	t.Setenv("SPECMAP_MODEL", "o3-mini")

	cfg, err := Load(ws)
	require.NoError(t, err)
	assert.Equal(t, "o3-mini", cfg.Model)
}

func TestLoadMalformedFile(t *testing.T) {
	ws := t.TempDir()
	dir := filepath.Join(ws, ".specmap")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("model: [unterminated"), 0644))

	_, err := Load(ws)
	assert.Error(t, err)
}
