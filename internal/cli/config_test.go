package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/matzehuels/tripgraph/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func captureUI(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := uiOut
	uiOut = &buf
	t.Cleanup(func() { uiOut = prev })
	return &buf
}

func TestLoadConfigMissingDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
	assert.True(t, cfg.UseHeuristic())
}

func TestLoadConfigMissingExplicit(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrCodeFileNotFound))
}

func TestLoadConfigDefaultLocation(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	writeFile(t, xdg, "tripgraph/config.toml", `
map = "/srv/maps/bay.map"
no_cache = true
cache_ttl = "36h"
heuristic = false
`)

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "/srv/maps/bay.map", cfg.Map)
	assert.True(t, cfg.NoCache)
	assert.Equal(t, 36*time.Hour, time.Duration(cfg.CacheTTL))
	assert.False(t, cfg.UseHeuristic())
}

func TestLoadConfigExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := writeFile(t, t.TempDir(), "c.toml", `map = "~/maps/bay.map"`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "maps", "bay.map"), cfg.Map)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", `map = `},
		{"bad duration", `cache_ttl = "soon"`},
		{"negative duration", `cache_ttl = "-1h"`},
		{"wrong type", `no_cache = "yes"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "c.toml", tt.content)
			_, err := loadConfig(path)
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrCodeInvalidInput))
		})
	}
}

func TestLoadConfigWarnsOnUnknownKeys(t *testing.T) {
	out := captureUI(t)
	path := writeFile(t, t.TempDir(), "c.toml", "map = \"a.map\"\ncolour = \"red\"\n")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "a.map", cfg.Map)
	assert.Contains(t, out.String(), "colour")
}
