package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StateRunning  GameStateType = "running"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick          uint64
	LastInputTick uint64
	Score         int
	Length        int
	HeadX         int
	HeadY         int
	Heading       Heading
	PickupX       int
	PickupY       int
	State         GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StateRunning
	if g.gameOver {
		state = StateGameOver
	}

	return Snapshot{
		Tick:          g.tick,
		LastInputTick: g.lastInputTick,
		Score:         g.score,
		Length:        g.body.Len(),
		HeadX:         g.head.X,
		HeadY:         g.head.Y,
		Heading:       g.heading,
		PickupX:       g.pickup.X,
		PickupY:       g.pickup.Y,
		State:         state,
	}
}
