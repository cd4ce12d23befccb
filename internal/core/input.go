package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W
	ActionDown           // Down arrow, S
	ActionLeft           // Left arrow, A
	ActionRight          // Right arrow, D
	ActionRestart        // Space - restart after game over
	ActionQuit           // Esc, Q, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action changes the heading.
func (a Action) IsDirection() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// InputFrame collects the actions delivered between two simulation ticks.
// Actions are kept in delivery order so a game can arbitrate between them.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		actions: make([]Action, 0, 4),
	}
}

// Set records an action as delivered during this frame.
// ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Latest returns the most recently delivered action accepted by keep.
func (f InputFrame) Latest(keep func(Action) bool) (Action, bool) {
	for i := len(f.actions) - 1; i >= 0; i-- {
		if keep(f.actions[i]) {
			return f.actions[i], true
		}
	}
	return ActionNone, false
}

// Len returns the number of actions delivered this frame.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
