package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake/internal/games/snake"
	"github.com/vovakirdan/snake/internal/platform/tui"
	"github.com/vovakirdan/snake/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the start menu",
	Long: `Open the interactive start menu. Pick a frontend to play or browse the
high scores; the menu comes back after each game until you quit.

Running 'snake' with no command in a terminal opens the menu as well.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return cmd.Help()
	}

	for {
		if err := cmd.Context().Err(); err != nil {
			return nil
		}

		width, height := 80, 24 // Defaults
		if w, h, err := term.GetSize(fd); err == nil {
			width, height = w, h
		}

		result, err := tui.RunMenu(bestScore(), width, height)
		if err != nil {
			return err
		}

		switch result.Choice {
		case tui.MenuChoicePlay:
			if err := playFrontend(cmd.Context(), result.FrontendID); err != nil {
				return err
			}
		case tui.MenuChoiceScores:
			if err := browseScores(width, height); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// bestScore reads the stored high score, returning 0 when storage is
// disabled or unavailable.
func bestScore() int {
	if flagDBPath == "" {
		return 0
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return 0
	}
	defer store.Close()

	best, err := store.HighScore(snake.GameID)
	if err != nil {
		return 0
	}
	return best
}

// browseScores opens the interactive scoreboard from the menu.
func browseScores(width, height int) error {
	if flagDBPath == "" {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	return tui.RunScoreboard(store, snake.GameID, width, height)
}
