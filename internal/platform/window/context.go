// Package window runs Snake in a native window using raylib.
//
// raylib must be driven from the OS thread that created the window; the
// raylib package locks the main goroutine to its thread, so Run has to be
// called from main.
package window

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/snake/internal/config"
	"github.com/vovakirdan/snake/internal/core"
)

// Context owns the window, the loaded fonts and the offscreen canvas.
type Context struct {
	width  int32
	height int32
	hud    *Face
	banner *Face
	canvas rl.RenderTexture2D
	log    *log.Logger
	closed bool
}

// Open creates the window and loads the fonts. On error everything
// acquired so far is released.
func Open(cfg config.Config, logger *log.Logger) (*Context, error) {
	if err := checkFont(cfg.Fonts.Path); err != nil {
		return nil, err
	}

	rl.SetTraceLogCallback(traceLogger(logger))
	rl.SetTraceLogLevel(rl.LogInfo)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("window: create %dx%d window: %w", cfg.Window.Width, cfg.Window.Height, core.ErrInit)
	}
	rl.SetTargetFPS(int32(cfg.Window.TargetFPS))

	c := &Context{
		width:  int32(cfg.Window.Width),
		height: int32(cfg.Window.Height),
		log:    logger,
	}

	var err error
	if c.hud, err = loadFace(cfg.Fonts.Path, cfg.Fonts.HUDSize); err != nil {
		c.Close()
		return nil, err
	}
	if c.banner, err = loadFace(cfg.Fonts.Path, cfg.Fonts.BannerSize); err != nil {
		c.Close()
		return nil, err
	}

	c.canvas = rl.LoadRenderTexture(c.width, c.height)
	if c.canvas.ID == 0 {
		c.Close()
		return nil, fmt.Errorf("window: create render target: %w", core.ErrInit)
	}

	logger.Debug("window opened", "width", c.width, "height", c.height, "font", cfg.Fonts.Path)
	return c, nil
}

// traceLogger forwards raylib's own diagnostics to logger instead of
// stdout.
func traceLogger(logger *log.Logger) rl.TraceLogCallbackFun {
	raylib := logger.WithPrefix("raylib")
	return func(level int, msg string) {
		raylib.Log(traceLevel(rl.TraceLogLevel(level)), msg)
	}
}

// traceLevel maps a raylib trace level onto the logger's levels. raylib
// reports every loaded resource at info, which is debug noise here.
func traceLevel(level rl.TraceLogLevel) log.Level {
	switch level {
	case rl.LogWarning:
		return log.WarnLevel
	case rl.LogError, rl.LogFatal:
		return log.ErrorLevel
	default:
		return log.DebugLevel
	}
}

// checkFont verifies the font file exists and parses before the window is
// created, so a missing or corrupt asset does not flash a window. raylib
// silently substitutes its built-in font for files it cannot parse.
func checkFont(path string) error {
	if path == "" {
		return fmt.Errorf("window: no font path configured: %w", core.ErrAssetLoad)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("window: font %s: %w", path, errors.Join(core.ErrAssetLoad, err))
	}
	if info.IsDir() {
		return fmt.Errorf("window: font %s is a directory: %w", path, core.ErrAssetLoad)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("window: read font %s: %w", path, errors.Join(core.ErrAssetLoad, err))
	}
	if _, err := opentype.Parse(data); err != nil {
		return fmt.Errorf("window: parse font %s: %w", path, errors.Join(core.ErrAssetLoad, err))
	}
	return nil
}

// HUD returns the small font used for the score.
func (c *Context) HUD() *Face {
	return c.hud
}

// Banner returns the large font used for the game over text.
func (c *Context) Banner() *Face {
	return c.banner
}

// Device returns a drawing device targeting the offscreen canvas.
func (c *Context) Device() *Device {
	return &Device{canvas: c.canvas}
}

// Blit shows the canvas in the window. The canvas keeps its contents
// between frames, so it can be shown every frame while only redrawn on ticks.
func (c *Context) Blit() {
	src := rl.NewRectangle(0, 0, float32(c.width), -float32(c.height)) // render textures are stored upside down
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	rl.DrawTextureRec(c.canvas.Texture, src, rl.NewVector2(0, 0), rl.White)
	rl.EndDrawing()
}

// Close releases the canvas, the fonts and the window. Safe to call twice.
func (c *Context) Close() {
	if c.closed {
		return
	}
	c.closed = true

	if c.canvas.ID != 0 {
		rl.UnloadRenderTexture(c.canvas)
	}
	if c.banner != nil {
		c.banner.unload()
	}
	if c.hud != nil {
		c.hud.unload()
	}
	rl.CloseWindow()
	c.log.Debug("window closed")
}
