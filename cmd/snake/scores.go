package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake/internal/games/snake"
	"github.com/vovakirdan/snake/internal/platform/tui"
	"github.com/vovakirdan/snake/internal/storage"
)

var (
	flagLimit int
	flagClear bool
	flagPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs. In a terminal the scores open in an interactive
table; use --plain or pipe the output for a text listing.

Examples:
  snake scores
  snake scores --limit 20 --plain
  snake scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text listing")
}

func runScores(cmd *cobra.Command, args []string) error {
	if flagDBPath == "" {
		return errors.New("scores are disabled (--db is empty)")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(snake.GameID); err != nil {
			return err
		}
		fmt.Println("All runs cleared.")
		return nil
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, snake.GameID, width, height)
	}

	return printScores(store)
}

// printScores writes a plain text table of the best runs.
func printScores(store *storage.Store) error {
	runs, err := store.TopRuns(snake.GameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Snake")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-7s  %s\n", "Rank", "Score", "Length", "Ticks", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-7s  %s\n", "----", "-----", "------", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-6d  %-7d  %s\n", i+1, r.Score, r.Length, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(snake.GameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Average: %.1f  Longest: %d\n",
			stats.HighScore, stats.Runs, stats.AvgScore, stats.MaxLength)
	}
	return nil
}
