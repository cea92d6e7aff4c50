package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Missing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveLoad(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := &Config{ServerURL: "http://tales.example:8080", ExportDir: "/tmp/stories"}
	require.NoError(t, cfg.Save())

	_, err := os.Stat(filepath.Join(home, ".config", "taleweaver", "config.yaml"))
	require.NoError(t, err)

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "taleweaver")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server_url: http://remote:3000\n"), 0o600))

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://remote:3000", got.ServerURL)
	assert.Equal(t, ".", got.ExportDir)
}
