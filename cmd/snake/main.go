// snake is a Snake arcade game with a native window and a terminal frontend.
//
// Usage:
//
//	snake                    - Open the start menu (in a terminal)
//	snake menu               - Open the start menu
//	snake play               - Play in a window (or --frontend tui)
//	snake list               - List available frontends
//	snake scores             - Show high scores
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.snake/scores.db, "" disables)
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake/internal/core"

	// Import frontends to register them
	_ "github.com/vovakirdan/snake/internal/platform/tui"
	_ "github.com/vovakirdan/snake/internal/platform/window"
)

// Exit codes
const (
	exitOK         = 0
	exitError      = 1
	exitInitFailed = 2
	exitAssetLoad  = 3
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitCode(err)
	}
	return exitOK
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, core.ErrInit):
		return exitInitFailed
	case errors.Is(err, core.ErrAssetLoad):
		return exitAssetLoad
	default:
		return exitError
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic arcade game",
	Long: `Snake on a 64x48 grid that wraps around at the edges. Eat the white
pickup to grow; running into your own body ends the game.

Available commands:
  menu     - Open the start menu (default in a terminal)
  play     - Play the game
  list     - Show available frontends
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  snake play
  snake play --frontend tui
  snake play --font ./fonts/lazy.ttf --tick 80ms
  snake scores --limit 20`,
	Args:          cobra.NoArgs,
	RunE:          runMenu,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database (empty disables)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. The returned closer releases the
// log file, if any.
func newLogger(level, file string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var w io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           lvl,
	})
	return logger, closer, nil
}
