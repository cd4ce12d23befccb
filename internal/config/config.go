// Package config provides YAML-based configuration loading for the game
// window, board, timing, fonts and colours.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/snake/internal/core"
	"github.com/vovakirdan/snake/internal/render"
)

// Config contains all configuration for a Snake session.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Fonts  FontConfig   `yaml:"fonts"`
	Render RenderConfig `yaml:"render"`

	// Source names where the configuration was loaded from.
	Source string `yaml:"-"`
}

// WindowConfig defines the window. Width and height are also the board
// size in units.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"` // 0 = unlimited
}

// Point is a board position in units.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// BoardConfig defines the grid and the snake's starting state.
type BoardConfig struct {
	Cell        int   `yaml:"cell"`
	StartLength int   `yaml:"start_length"`
	MaxLength   int   `yaml:"max_length"`
	PickupStart Point `yaml:"pickup_start"`
}

// TimingConfig defines the simulation cadence.
type TimingConfig struct {
	TickInterval Duration `yaml:"tick_interval"`
}

// FontConfig defines the font file and its two sizes.
type FontConfig struct {
	Path       string `yaml:"path"`
	HUDSize    int    `yaml:"hud_size"`
	BannerSize int    `yaml:"banner_size"`
}

// RenderConfig defines drawing options.
type RenderConfig struct {
	ClearOnGameOver bool          `yaml:"clear_on_game_over"`
	Palette         PaletteConfig `yaml:"palette"`
}

// PaletteConfig holds element colours as hex strings ("#rrggbb").
type PaletteConfig struct {
	Background string `yaml:"background"`
	Head       string `yaml:"head"`
	Body       string `yaml:"body"`
	Pickup     string `yaml:"pickup"`
	Score      string `yaml:"score"`
	Banner     string `yaml:"banner"`
}

// Duration is a time.Duration written as a Go duration string in YAML.
type Duration time.Duration

// UnmarshalYAML parses strings like "60ms".
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML writes the duration as a string.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Resolve parses the palette into drawing colours.
func (p PaletteConfig) Resolve() (render.Palette, error) {
	var pal render.Palette
	fields := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"background", p.Background, &pal.Background},
		{"head", p.Head, &pal.Head},
		{"body", p.Body, &pal.Body},
		{"pickup", p.Pickup, &pal.Pickup},
		{"score", p.Score, &pal.Score},
		{"banner", p.Banner, &pal.Banner},
	}
	for _, f := range fields {
		c, err := colorful.Hex(f.hex)
		if err != nil {
			return pal, fmt.Errorf("palette %s: %w", f.name, err)
		}
		r, g, b := c.RGB255()
		*f.dst = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return pal, nil
}

// paletteConfigOf converts resolved colours back into hex strings.
func paletteConfigOf(p render.Palette) PaletteConfig {
	hex := func(c color.RGBA) string {
		cc, _ := colorful.MakeColor(c)
		return cc.Hex()
	}
	return PaletteConfig{
		Background: hex(p.Background),
		Head:       hex(p.Head),
		Body:       hex(p.Body),
		Pickup:     hex(p.Pickup),
		Score:      hex(p.Score),
		Banner:     hex(p.Banner),
	}
}

// Runtime converts the configuration into game parameters.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		BoardW:       c.Window.Width,
		BoardH:       c.Window.Height,
		Cell:         c.Board.Cell,
		StartLength:  c.Board.StartLength,
		MaxLength:    c.Board.MaxLength,
		PickupX:      c.Board.PickupStart.X,
		PickupY:      c.Board.PickupStart.Y,
		TickInterval: c.Timing.TickInterval.Std(),
		Seed:         seed,
	}
}

// Validate reports every inconsistent value at once.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.TargetFPS < 0 {
		errs = append(errs, fmt.Errorf("target_fps %d must not be negative", c.Window.TargetFPS))
	}

	b := c.Board
	switch {
	case b.Cell <= 0:
		errs = append(errs, fmt.Errorf("board cell %d must be positive", b.Cell))
	case c.Window.Width%b.Cell != 0 || c.Window.Height%b.Cell != 0:
		errs = append(errs, fmt.Errorf("window size %dx%d is not a multiple of cell %d",
			c.Window.Width, c.Window.Height, b.Cell))
	case b.PickupStart.X%b.Cell != 0 || b.PickupStart.Y%b.Cell != 0:
		errs = append(errs, fmt.Errorf("pickup_start (%d,%d) is not grid aligned", b.PickupStart.X, b.PickupStart.Y))
	}
	if b.PickupStart.X < 0 || b.PickupStart.X >= c.Window.Width ||
		b.PickupStart.Y < 0 || b.PickupStart.Y >= c.Window.Height {
		errs = append(errs, fmt.Errorf("pickup_start (%d,%d) is off the board", b.PickupStart.X, b.PickupStart.Y))
	}
	if b.StartLength < 1 || b.StartLength > b.MaxLength {
		errs = append(errs, fmt.Errorf("start_length %d must be between 1 and max_length %d", b.StartLength, b.MaxLength))
	}

	if c.Timing.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tick_interval %s must be positive", c.Timing.TickInterval.Std()))
	}
	if c.Fonts.HUDSize <= 0 || c.Fonts.BannerSize <= 0 {
		errs = append(errs, fmt.Errorf("font sizes %d/%d must be positive", c.Fonts.HUDSize, c.Fonts.BannerSize))
	}
	if _, err := c.Render.Palette.Resolve(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
