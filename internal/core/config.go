package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Board dimensions are in board units; the grid cell is Cell units wide.
type RuntimeConfig struct {
	BoardW       int           // Board width in units
	BoardH       int           // Board height in units
	Cell         int           // Grid cell size in units
	StartLength  int           // Body length after Reset
	MaxLength    int           // Body length cap
	PickupX      int           // Pickup position after Reset
	PickupY      int           // Pickup position after Reset
	TickInterval time.Duration // Minimum wall-clock time between ticks
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig matching the classic 640x480 board.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		BoardW:       640,
		BoardH:       480,
		Cell:         10,
		StartLength:  2,
		MaxLength:    1000,
		PickupX:      50,
		PickupY:      40,
		TickInterval: 60 * time.Millisecond,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// Columns returns the number of grid cells across the board.
func (c RuntimeConfig) Columns() int {
	if c.Cell <= 0 {
		return 0
	}
	return c.BoardW / c.Cell
}

// Rows returns the number of grid cells down the board.
func (c RuntimeConfig) Rows() int {
	if c.Cell <= 0 {
		return 0
	}
	return c.BoardH / c.Cell
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventPickup   EventKind = iota + 1 // Pickup consumed and relocated to (X, Y)
	EventGameOver                      // Head ran into the body at (X, Y)
	EventRestart                       // Game state reset after game over
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPickup:
		return "pickup"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is emitted by Game.Step for the platform to log or react to.
type Event struct {
	Kind EventKind
	X, Y int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
