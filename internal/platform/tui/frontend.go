package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake/internal/core"
	"github.com/vovakirdan/snake/internal/registry"
	"github.com/vovakirdan/snake/internal/render"
	"github.com/vovakirdan/snake/internal/session"
)

// ID is the registry identifier of the terminal frontend.
const ID = "tui"

func init() {
	registry.Register(ID, func() registry.Frontend { return Frontend{} })
}

// Frontend plays the game in the terminal.
type Frontend struct{}

// ID returns the frontend identifier.
func (Frontend) ID() string {
	return ID
}

// Title returns the display name.
func (Frontend) Title() string {
	return "Terminal (Bubble Tea)"
}

// Run plays in the alternate screen until the user quits or ctx is cancelled.
func (Frontend) Run(ctx context.Context, env registry.Env) error {
	pal, err := env.Config.Render.Palette.Resolve()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	logger := env.Logger
	if !env.LogToFile {
		// stderr would tear the alternate screen
		logger = log.New(io.Discard)
	}

	rc := env.Config.Runtime(env.Seed)
	cell := max(rc.Cell, 1)
	screen := core.NewScreen(rc.BoardW/cell, rc.BoardH/cell)

	sess := session.New(session.Options{
		Config: rc,
		Store:  env.Store,
		Logger: logger,
	})

	renderer := render.NewRenderer(NewScreenDevice(screen, cell), render.Options{
		Palette:         pal,
		HUD:             &Face{size: env.Config.Fonts.HUDSize},
		Banner:          &Face{size: env.Config.Fonts.BannerSize},
		ClearOnGameOver: env.Config.Render.ClearOnGameOver,
		Logger:          logger,
	})
	defer renderer.Close()

	logger.Info("playing", "frontend", ID, "seed", sess.Config().Seed, "tick", sess.Config().TickInterval)

	p := tea.NewProgram(
		NewModel(sess, renderer, screen),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err = p.Run()
	logger.Info("session ended", "games", sess.Played(), "ticks", sess.Snapshot().Tick)
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			logger.Info("interrupted")
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
