package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/philipparndt/meshedit/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meshedit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1400, cfg.WindowWidth)
	assert.Equal(t, 900, cfg.WindowHeight)
	assert.Equal(t, mesh.DefaultTolerance, cfg.Tolerance)
	assert.Equal(t, 100*time.Millisecond, cfg.WatchDebounce)
	assert.Equal(t, "box", cfg.Primitive)
	assert.Equal(t, 32, cfg.Segments)
}

func TestLoadKeepsFileValues(t *testing.T) {
	path := writeConfig(t, `
window_width: 800
tolerance: 0.001
watch_debounce: 250ms
primitive: sphere
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.WindowWidth)
	assert.Zero(t, cfg.WindowHeight)

	cfg.Resolve(Flags{})
	assert.Equal(t, 800, cfg.WindowWidth)
	assert.Equal(t, 900, cfg.WindowHeight)
	assert.Equal(t, 0.001, cfg.Tolerance)
	assert.Equal(t, 250*time.Millisecond, cfg.WatchDebounce)
	assert.Equal(t, "sphere", cfg.Primitive)
}

func TestFlagsOverrideFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, "primitive: sphere\nsegments: 12\n"))
	require.NoError(t, err)

	cfg.Resolve(Flags{Primitive: "cylinder", Segments: 6, Width: 640})

	assert.Equal(t, "cylinder", cfg.Primitive)
	assert.Equal(t, 6, cfg.Segments)
	assert.Equal(t, 640, cfg.WindowWidth)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "config: read")

	_, err = Load(writeConfig(t, "window_width: [1, 2"))
	assert.ErrorContains(t, err, "config: parse")
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)

	_, err = LoadOrDefault(writeConfig(t, "segments: nope"))
	assert.Error(t, err)
}
