package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/snake/internal/games/snake"
	"github.com/vovakirdan/snake/internal/render"
)

// isolate points the search path at empty directories.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg := embeddedDefault()
	want := DefaultConfig()

	cfg.Source, want.Source = "", ""
	assert.Equal(t, want, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "embedded", cfg.Source)
	assert.Equal(t, 60*time.Millisecond, cfg.Timing.TickInterval.Std())
}

func TestLoadCustomOverlay(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "timing:\n  tick_interval: 100ms\nrender:\n  clear_on_game_over: false\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, 100*time.Millisecond, cfg.Timing.TickInterval.Std())
	assert.False(t, cfg.Render.ClearOnGameOver)
	// Untouched keys keep their defaults
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, "#ffffff", cfg.Render.Palette.Pickup)
}

func TestLoadCustomErrors(t *testing.T) {
	dir := isolate(t)

	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "window: [\n"},
		{"bad duration", "timing:\n  tick_interval: soon\n"},
		{"unaligned board", "board:\n  cell: 7\n"},
		{"bad colour", "render:\n  palette:\n    head: red\n"},
		{"start above max", "board:\n  start_length: 5\n  max_length: 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			writeFile(t, path, tt.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, filepath.Join(dir, "configs", "snake.yaml"), "window:\n  title: Local\n")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Local", cfg.Window.Title)

	writeFile(t, filepath.Join(home, ".snake", "config.yaml"), "window:\n  title: User\n")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "User", cfg.Window.Title)
}

func TestPaletteResolve(t *testing.T) {
	pal, err := DefaultConfig().Render.Palette.Resolve()
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{A: 255}, pal.Background)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, pal.Head)
	assert.Equal(t, pal.Head, pal.Body)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, pal.Pickup)
	assert.Equal(t, color.RGBA{G: 255, A: 255}, pal.Score)
	assert.Equal(t, render.DefaultPalette(), pal)
}

func TestPickupAtOriginReachesGame(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "origin.yaml")
	writeFile(t, path, "board:\n  pickup_start: {x: 0, y: 0}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	g := snake.New()
	g.Reset(cfg.Runtime(1))
	snap := g.Snapshot()
	assert.Equal(t, 0, snap.PickupX)
	assert.Equal(t, 0, snap.PickupY)
}

func TestRuntime(t *testing.T) {
	rc := DefaultConfig().Runtime(9)

	assert.Equal(t, 640, rc.BoardW)
	assert.Equal(t, 480, rc.BoardH)
	assert.Equal(t, 10, rc.Cell)
	assert.Equal(t, 2, rc.StartLength)
	assert.Equal(t, 1000, rc.MaxLength)
	assert.Equal(t, 50, rc.PickupX)
	assert.Equal(t, 40, rc.PickupY)
	assert.Equal(t, 60*time.Millisecond, rc.TickInterval)
	assert.Equal(t, int64(9), rc.Seed)
}

func TestMarshalWritesDurationString(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, string(data), "tick_interval: 60ms")
	assert.NotContains(t, string(data), "source")
}
