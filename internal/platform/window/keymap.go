package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/snake/internal/core"
)

// keyActions maps raylib key codes to game actions. Esc closes the window
// through raylib's exit key.
var keyActions = map[int32]core.Action{
	rl.KeyUp:    core.ActionUp,
	rl.KeyW:     core.ActionUp,
	rl.KeyDown:  core.ActionDown,
	rl.KeyS:     core.ActionDown,
	rl.KeyLeft:  core.ActionLeft,
	rl.KeyA:     core.ActionLeft,
	rl.KeyRight: core.ActionRight,
	rl.KeyD:     core.ActionRight,
	rl.KeySpace: core.ActionRestart,
	rl.KeyR:     core.ActionRestart,
	rl.KeyQ:     core.ActionQuit,
}

// actionForKey returns the action bound to key, ActionNone if unbound.
func actionForKey(key int32) core.Action {
	return keyActions[key]
}
