package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake/internal/config"
	"github.com/vovakirdan/snake/internal/registry"
	"github.com/vovakirdan/snake/internal/session"
	"github.com/vovakirdan/snake/internal/storage"
)

var (
	flagFrontend string
	flagFont     string
	flagTick     time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game.

Controls:
  Arrows/WASD  - Steer
  Space/R      - Restart (after game over)
  Q/Esc        - Quit

Examples:
  snake play
  snake play --frontend tui
  snake play --seed 42 --tick 100ms
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "window", "Frontend: window, tui")
	playCmd.Flags().StringVar(&flagFont, "font", "", "Path to a TTF font (overrides config)")
	playCmd.Flags().DurationVar(&flagTick, "tick", 0, "Tick interval (overrides config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	return playFrontend(cmd.Context(), flagFrontend)
}

// playFrontend loads the configuration, opens score storage and runs one
// frontend until it exits.
func playFrontend(ctx context.Context, id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("unknown frontend %q, run 'snake list' to see available frontends", id)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagFont != "" {
		cfg.Fonts.Path = flagFont
	}
	if flagTick != 0 {
		cfg.Timing.TickInterval = config.Duration(flagTick)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := newLogger(flagLogLevel, flagLogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Debug("config loaded", "source", cfg.Source)

	// Open score storage
	var saver session.RunSaver
	if flagDBPath != "" {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			// Continue without storage - game still works
			logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		} else {
			defer store.Close()
			saver = store
		}
	}

	fe, err := registry.Create(id)
	if err != nil {
		return err
	}

	return fe.Run(ctx, registry.Env{
		Config:    cfg,
		Seed:      flagSeed,
		Store:     saver,
		Logger:    logger,
		LogToFile: flagLogFile != "",
	})
}
