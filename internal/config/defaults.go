package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/snake/internal/render"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultConfig returns the default configuration.
// It matches defaults/snake.yaml and is used when the embedded file cannot
// be parsed.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:     "Snake",
			Width:     640,
			Height:    480,
			TargetFPS: 60,
		},
		Board: BoardConfig{
			Cell:        10,
			StartLength: 2,
			MaxLength:   1000,
			PickupStart: Point{X: 50, Y: 40},
		},
		Timing: TimingConfig{
			TickInterval: Duration(60 * time.Millisecond),
		},
		Fonts: FontConfig{
			Path:       "assets/fonts/lazy.ttf",
			HUDSize:    12,
			BannerSize: 28,
		},
		Render: RenderConfig{
			ClearOnGameOver: true,
			Palette:         paletteConfigOf(render.DefaultPalette()),
		},
		Source: "builtin",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
