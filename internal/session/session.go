// Package session runs one player's Snake games for a frontend.
//
// A frontend feeds key actions with Input and asks for steps with Advance
// (wall-clock gated) or Tick (when it owns the cadence itself). The session
// applies at most one input per step, logs game events and records the
// final score of every finished game.
package session

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake/internal/core"
	"github.com/vovakirdan/snake/internal/games/snake"
	"github.com/vovakirdan/snake/internal/storage"
)

// RunSaver persists finished games.
type RunSaver interface {
	SaveRun(r storage.Run) (int64, error)
}

// Options configures a Session.
type Options struct {
	Config core.RuntimeConfig
	Store  RunSaver // nil disables score saving
	Logger *log.Logger
	Start  time.Time // first tick is due one interval after Start
}

// Session owns the game and its pending input.
type Session struct {
	game       *snake.Game
	cfg        core.RuntimeConfig
	input      core.InputFrame
	ticker     *core.Ticker
	store      RunSaver
	log        *log.Logger
	state      core.GameState
	scoreSaved bool // Whether score has been saved for current game over
	played     int
}

// New creates a session and resets its game.
func New(opts Options) *Session {
	cfg := opts.Config
	if cfg == (core.RuntimeConfig{Seed: cfg.Seed}) {
		seed := cfg.Seed
		cfg = core.DefaultConfig()
		cfg.Seed = seed
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultConfig().TickInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	start := opts.Start
	if start.IsZero() {
		start = time.Now()
	}

	g := snake.New()
	g.Reset(cfg)

	logger.Debug("session started", "seed", cfg.Seed, "tick", cfg.TickInterval)

	return &Session{
		game:   g,
		cfg:    cfg,
		input:  core.NewInputFrame(),
		ticker: core.NewTicker(cfg.TickInterval, start),
		store:  opts.Store,
		log:    logger,
		state:  g.State(),
	}
}

// Input records an action for the next step. Quit is a frontend concern
// and is not recorded.
func (s *Session) Input(a core.Action) {
	if a == core.ActionQuit {
		return
	}
	s.input.Set(a)
}

// Advance runs a step if the tick interval has elapsed at now.
func (s *Session) Advance(now time.Time) (core.StepResult, bool) {
	if !s.ticker.Due(now) {
		return core.StepResult{}, false
	}
	return s.Tick(), true
}

// Tick runs one game step with the pending input, then drops it.
func (s *Session) Tick() core.StepResult {
	if n := s.input.Len(); n > 1 {
		s.log.Debug("inputs coalesced", "count", n)
	}
	result := s.game.Step(s.input)
	s.input.Clear()
	s.state = result.State

	for _, ev := range result.Events {
		s.handleEvent(ev)
	}

	// Save score on game over (once)
	if s.state.GameOver && !s.scoreSaved {
		s.saveScore()
		s.scoreSaved = true
	}

	return result
}

func (s *Session) handleEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventPickup:
		s.log.Info("pickup relocated", "x", ev.X, "y", ev.Y, "score", s.state.Score)
	case core.EventGameOver:
		s.played++
		s.log.Info("game over", "score", s.state.Score, "x", ev.X, "y", ev.Y)
		s.log.Debug("final state", "state", s.game.DebugState())
	case core.EventRestart:
		s.scoreSaved = false
		s.log.Info("restart", "games", s.played)
	}
}

func (s *Session) saveScore() {
	if s.store == nil || s.state.Score <= 0 {
		return
	}
	snap := s.game.Snapshot()
	id, err := s.store.SaveRun(storage.Run{
		GameID: s.game.ID(),
		Score:  s.state.Score,
		Length: snap.Length,
		Ticks:  snap.Tick,
		Seed:   s.cfg.Seed,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		s.log.Warn("score not saved", "score", s.state.Score, "err", err)
		return
	}
	s.log.Debug("score saved", "id", id, "score", s.state.Score)
}

// Frame returns the drawable state of the current game.
func (s *Session) Frame() snake.Frame {
	return s.game.Frame()
}

// State returns the state after the last step.
func (s *Session) State() core.GameState {
	return s.state
}

// Snapshot returns the full state of the current game.
func (s *Session) Snapshot() snake.Snapshot {
	return s.game.Snapshot()
}

// Config returns the effective runtime configuration, including the seed.
func (s *Session) Config() core.RuntimeConfig {
	return s.cfg
}

// Played returns the number of games that ended in this session.
func (s *Session) Played() int {
	return s.played
}
