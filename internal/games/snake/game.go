// Package snake implements the Snake game rules: heading changes, the fixed
// tick update, self-collision on a wrap-around board and pickup growth.
// It has no platform dependencies; frontends feed it input frames and draw
// the Frame it exposes.
package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/snake/internal/core"
)

// GameID identifies the game in score storage.
const GameID = "snake"

// Game implements the Snake game.
type Game struct {
	cfg           core.RuntimeConfig
	board         core.Rect
	rng           *rand.Rand
	tick          uint64
	lastInputTick uint64 // Tick at which the last input was applied
	score         int

	// Snake state
	head    Position
	body    Body
	heading Heading

	pickup   Position
	gameOver bool
}

// New creates a Snake game. Call Reset before the first Step.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes the game for a new session.
// A zero cfg (apart from the seed) plays the classic board. Otherwise
// non-positive sizes, lengths and intervals fall back to core.DefaultConfig
// and the pickup start is used as given; (0,0) is a valid cell.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = withDefaults(cfg)
	g.board = core.NewRect(0, 0, g.cfg.BoardW, g.cfg.BoardH)
	g.rng = rand.New(rand.NewSource(g.cfg.Seed))
	g.restart()
}

// withDefaults fills unset fields from core.DefaultConfig. The pickup of a
// non-zero cfg has no unset value and is never replaced.
func withDefaults(cfg core.RuntimeConfig) core.RuntimeConfig {
	def := core.DefaultConfig()
	if cfg == (core.RuntimeConfig{Seed: cfg.Seed}) {
		def.Seed = cfg.Seed
		return def
	}
	if cfg.Cell <= 0 {
		cfg.Cell = def.Cell
	}
	if cfg.BoardW <= 0 {
		cfg.BoardW = def.BoardW
	}
	if cfg.BoardH <= 0 {
		cfg.BoardH = def.BoardH
	}
	if cfg.MaxLength <= 0 {
		cfg.MaxLength = def.MaxLength
	}
	if cfg.StartLength <= 0 {
		cfg.StartLength = def.StartLength
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = def.TickInterval
	}
	return cfg
}

// restart puts every piece of game state back to its initial value.
// The RNG keeps its sequence so consecutive games differ.
func (g *Game) restart() {
	g.tick = 0
	g.lastInputTick = 0
	g.score = 0
	g.head = Position{X: 0, Y: 0}
	g.body = NewBody(g.cfg.StartLength, g.cfg.MaxLength)
	g.heading = HeadingRight
	g.pickup = Position{X: g.cfg.PickupX, Y: g.cfg.PickupY}
	g.gameOver = false
}

// Step advances the game by one tick.
//
// At most one input is applied per tick: the most recently delivered action
// that is relevant in the current state. Heading keys are relevant while
// running, restart only after game over. Everything else in the frame is
// dropped.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if action, ok := input.Latest(g.accepts); ok {
		g.lastInputTick = g.tick
		if action == core.ActionRestart {
			g.restart()
			return core.StepResult{
				State:  g.State(),
				Events: []core.Event{{Kind: core.EventRestart}},
			}
		}
		g.heading, _ = headingFor(action)
	}

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	events := g.advance()
	return core.StepResult{State: g.State(), Events: events}
}

// accepts reports whether an action is relevant in the current state.
func (g *Game) accepts(a core.Action) bool {
	if g.gameOver {
		return a == core.ActionRestart
	}
	return a.IsDirection()
}

// advance runs one movement update: shift, collide, eat, move, wrap.
func (g *Game) advance() []core.Event {
	var events []core.Event

	g.body.Shift(g.head)

	// The head as drawn last frame is checked against the segments drawn last
	// frame, which after the shift sit at 1..length.
	if g.body.Hits(g.head) {
		g.gameOver = true
		return append(events, core.Event{Kind: core.EventGameOver, X: g.head.X, Y: g.head.Y})
	}

	if g.head == g.pickup {
		g.score++
		g.body.Grow() // saturates at MaxLength
		g.pickup = g.relocatePickup()
		events = append(events, core.Event{Kind: core.EventPickup, X: g.pickup.X, Y: g.pickup.Y})
	}

	dx, dy := g.heading.Delta(g.cfg.Cell)
	g.head = g.wrap(Position{X: g.head.X + dx, Y: g.head.Y + dy})

	return events
}

// wrap re-enters a position that left the board from the opposite edge.
func (g *Game) wrap(p Position) Position {
	if g.board.Contains(p.X, p.Y) {
		return p
	}
	if p.X >= g.cfg.BoardW {
		p.X = 0
	}
	if p.X < 0 {
		p.X = g.cfg.BoardW - g.cfg.Cell
	}
	if p.Y >= g.cfg.BoardH {
		p.Y = 0
	}
	if p.Y < 0 {
		p.Y = g.cfg.BoardH - g.cfg.Cell
	}
	return p
}

// relocatePickup picks a random grid-aligned cell not covered by the snake.
// If the snake covers every cell it falls back to any cell.
func (g *Game) relocatePickup() Position {
	cols, rows := g.cfg.Columns(), g.cfg.Rows()

	// Collect all free cells
	free := make([]Position, 0, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p := Position{X: x * g.cfg.Cell, Y: y * g.cfg.Cell}
			if !g.isSnakeAt(p) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		return Position{
			X: g.rng.Intn(cols) * g.cfg.Cell,
			Y: g.rng.Intn(rows) * g.cfg.Cell,
		}
	}
	return free[g.rng.Intn(len(free))]
}

// isSnakeAt checks if the head or a visible segment occupies p.
func (g *Game) isSnakeAt(p Position) bool {
	return g.head == p || g.body.Occupies(p)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

// Frame is a copy of everything the renderer needs for one frame.
type Frame struct {
	Board    core.Rect
	Cell     int
	Head     Position
	Body     []Position
	Pickup   Position
	Score    int
	GameOver bool
}

// CellRect returns the board rectangle covered by the cell at p.
func (f Frame) CellRect(p Position) core.Rect {
	return core.NewRect(p.X, p.Y, f.Cell, f.Cell)
}

// Frame returns a snapshot of the drawable state. The body slice is copied,
// so the frame stays valid after further steps.
func (g *Game) Frame() Frame {
	segs := g.body.Segments()
	body := make([]Position, len(segs))
	copy(body, segs)

	return Frame{
		Board:    g.board,
		Cell:     g.cfg.Cell,
		Head:     g.head,
		Body:     body,
		Pickup:   g.pickup,
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, LastInput: %d\n", g.tick, g.score, g.lastInputTick)
	fmt.Fprintf(&b, "Snake len: %d/%d, Heading: %s\n", g.body.Len(), g.body.Cap(), g.heading)
	fmt.Fprintf(&b, "Head: (%d, %d), Pickup: (%d, %d)\n", g.head.X, g.head.Y, g.pickup.X, g.pickup.Y)
	fmt.Fprintf(&b, "GameOver: %v\n", g.gameOver)
	return b.String()
}
