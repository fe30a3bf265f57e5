package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_NoConfigFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := New(dir)
	require.NoError(t, err)
	require.Equal(t, dir, cfg.Dir)
	require.Empty(t, cfg.Database)
	require.False(t, cfg.IncludeAll)
}

func TestNew_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "database: /tmp/main.sqlite\ninclude_all: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))

	cfg, err := New(dir)
	require.NoError(t, err)
	require.Equal(t, "/tmp/main.sqlite", cfg.Database)
	require.True(t, cfg.IncludeAll)
}

func TestNew_MalformedConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{unclosed"), 0644))

	_, err := New(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse config file")
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	require.Equal(t, filepath.Join("/tmp/xdg", AppName), DefaultConfigDir())
}
