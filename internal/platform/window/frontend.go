package window

import (
	"context"
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/snake/internal/core"
	"github.com/vovakirdan/snake/internal/registry"
	"github.com/vovakirdan/snake/internal/render"
	"github.com/vovakirdan/snake/internal/session"
)

// ID is the registry identifier of the window frontend.
const ID = "window"

func init() {
	registry.Register(ID, func() registry.Frontend { return Frontend{} })
}

// Frontend plays the game in a native window.
type Frontend struct{}

// ID returns the frontend identifier.
func (Frontend) ID() string {
	return ID
}

// Title returns the display name.
func (Frontend) Title() string {
	return "Native window (raylib)"
}

// Run opens the window and plays until it is closed, Q is pressed or ctx
// is cancelled.
func (Frontend) Run(ctx context.Context, env registry.Env) error {
	pal, err := env.Config.Render.Palette.Resolve()
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}

	wc, err := Open(env.Config, env.Logger)
	if err != nil {
		return err
	}
	defer wc.Close()

	sess := session.New(session.Options{
		Config: env.Config.Runtime(env.Seed),
		Store:  env.Store,
		Logger: env.Logger,
	})

	renderer := render.NewRenderer(wc.Device(), render.Options{
		Palette:         pal,
		HUD:             wc.HUD(),
		Banner:          wc.Banner(),
		ClearOnGameOver: env.Config.Render.ClearOnGameOver,
		Logger:          env.Logger,
	})
	defer renderer.Close()

	env.Logger.Info("playing", "frontend", ID, "seed", sess.Config().Seed, "tick", sess.Config().TickInterval)
	defer func() {
		env.Logger.Info("session ended", "games", sess.Played(), "ticks", sess.Snapshot().Tick)
	}()

	// Show the start position before the first tick
	renderer.Draw(sess.Frame())

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			env.Logger.Info("interrupted")
			return nil
		}

		for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
			action := actionForKey(key)
			if action == core.ActionQuit {
				return nil
			}
			sess.Input(action)
		}

		if _, stepped := sess.Advance(time.Now()); stepped {
			renderer.Draw(sess.Frame())
		}

		wc.Blit()
	}

	return nil
}
