package render

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake/internal/games/snake"
)

const gameOverText = "Game Over"

// Options configures a Renderer.
type Options struct {
	Palette Palette
	HUD     Face // score text
	Banner  Face // game over text
	// ClearOnGameOver clears the frame before drawing the banner. When
	// false the last running frame stays visible behind it.
	ClearOnGameOver bool
	Logger          *log.Logger
}

// Renderer draws game frames onto a device.
type Renderer struct {
	dev    Device
	opts   Options
	log    *log.Logger
	score  *Texture
	banner *Texture

	// Set after the first warning for a failing text, cleared on recovery.
	scoreFailing  bool
	bannerFailing bool
}

// NewRenderer creates a renderer drawing onto dev.
func NewRenderer(dev Device, opts Options) *Renderer {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Renderer{
		dev:    dev,
		opts:   opts,
		log:    logger,
		score:  NewTexture(dev),
		banner: NewTexture(dev),
	}
}

// Draw renders and presents one frame.
// Text failures are logged and the frame is still presented.
func (r *Renderer) Draw(f snake.Frame) {
	pal := r.opts.Palette

	if f.GameOver {
		if err := r.banner.LoadFromText(gameOverText, pal.Banner, r.opts.Banner); err != nil {
			r.warnOnce(&r.bannerFailing, "banner text refresh failed", "err", err)
		}

		r.dev.Begin()
		if r.opts.ClearOnGameOver {
			r.dev.Clear(pal.Background)
		}
		x := f.Board.X + (f.Board.W-r.banner.Width())/2
		y := f.Board.Y + (f.Board.H-r.banner.Height())/2
		if err := r.banner.Render(x, y); err != nil {
			r.warnOnce(&r.bannerFailing, "banner draw skipped", "err", err)
		}
		r.dev.Present()
		return
	}

	// Leaving game over re-arms the banner warning
	r.bannerFailing = false

	if err := r.score.LoadFromText(ScoreText(f.Score), pal.Score, r.opts.HUD); err != nil {
		r.warnOnce(&r.scoreFailing, "score text refresh failed", "score", f.Score, "err", err)
	} else {
		r.scoreFailing = false
	}

	r.dev.Begin()
	r.dev.Clear(pal.Background)
	r.dev.FillRect(f.CellRect(f.Head), pal.Head)
	for _, seg := range f.Body {
		r.dev.FillRect(f.CellRect(seg), pal.Body)
	}
	r.dev.FillRect(f.CellRect(f.Pickup), pal.Pickup)
	if err := r.score.Render(f.Board.X, f.Board.Y); err != nil {
		r.warnOnce(&r.scoreFailing, "score draw skipped", "err", err)
	}
	r.dev.Present()
}

// warnOnce logs a warning unless *failing is already set, then sets it.
func (r *Renderer) warnOnce(failing *bool, msg string, keyvals ...any) {
	if *failing {
		return
	}
	*failing = true
	r.log.Warn(msg, keyvals...)
}

// Close releases the renderer's textures.
func (r *Renderer) Close() {
	r.score.Free()
	r.banner.Free()
}

// ScoreText formats the score overlay.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}
