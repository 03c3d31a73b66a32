package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
version: "1.0"
mode: dev
http:
  addr: ":9090"
database:
  host: 127.0.0.1
  port: 3306
  user: app
  password: secret
  dbname: library
  bootstrap: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Mode)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "127.0.0.1", cfg.DB.Host)
	assert.Equal(t, 3306, cfg.DB.Port)
	assert.Equal(t, "library", cfg.DB.DBName)
	assert.True(t, cfg.DB.Bootstrap)
}

func TestLoadConfigDefaultsAddr(t *testing.T) {
	path := writeConfig(t, `
mode: release
database:
  host: localhost
  port: 3306
  user: app
  password: secret
  dbname: library
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.False(t, cfg.DB.Bootstrap)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := writeConfig(t, "mode: [unclosed")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
