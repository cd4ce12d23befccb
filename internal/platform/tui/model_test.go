package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/snake/internal/core"
	"github.com/vovakirdan/snake/internal/render"
	"github.com/vovakirdan/snake/internal/session"
)

func newTestModel(t *testing.T) (Model, *session.Session, *core.Screen) {
	t.Helper()
	logger := log.New(io.Discard)

	sess := session.New(session.Options{
		Config: core.RuntimeConfig{Seed: 1},
		Logger: logger,
	})
	screen := core.NewScreen(64, 48)
	renderer := render.NewRenderer(NewScreenDevice(screen, 10), render.Options{
		Palette:         render.DefaultPalette(),
		HUD:             &Face{size: 12},
		Banner:          &Face{size: 28},
		ClearOnGameOver: true,
		Logger:          logger,
	})
	t.Cleanup(renderer.Close)

	return NewModel(sess, renderer, screen), sess, screen
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return model, cmd
}

func TestModelInitialFrame(t *testing.T) {
	m, _, screen := newTestModel(t)

	assert.NotNil(t, m.Init(), "Init should start the tick loop")
	assert.True(t, strings.HasPrefix(rowText(screen, 0), "Score: 0"), rowText(screen, 0))
	// Pickup at (50,40) units is cell (5,4)
	assert.Equal(t, core.Cell{Rune: blockRune, Color: "#ffffff"}, screen.GetCell(5, 4))
}

func TestModelTickAppliesInput(t *testing.T) {
	m, sess, screen := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := update(t, m, TickMsg{})
	assert.NotNil(t, cmd, "Tick should schedule the next tick")

	assert.Equal(t, 0, sess.Frame().Head.X)
	assert.Equal(t, 10, sess.Frame().Head.Y)
	assert.Equal(t, blockRune, screen.GetCell(0, 1).Rune, "head not drawn at cell (0,1)")
}

func TestModelQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, cmd := update(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok, "quit should return tea.Quit")
	assert.Empty(t, m.View())
}

func TestModelTooSmall(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	assert.Contains(t, m.View(), "Window too small")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 50})
	view := m.View()
	assert.NotContains(t, view, "Window too small", "board should fit in 80x50")
	assert.Contains(t, view, "Score: 0")
}

func TestModelGameOverBanner(t *testing.T) {
	m, sess, screen := newTestModel(t)

	for i := 0; i < 3; i++ {
		m, _ = update(t, m, TickMsg{})
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	require.True(t, sess.State().GameOver, "reversal should end the game")
	// "Game Over" is 9 cells wide, centred on row 23
	assert.Contains(t, rowText(screen, 23), "Game Over")
	assert.NotContains(t, screenText(screen), "Score:", "game over frame should be cleared")

	m, _ = update(t, m, runeKey(' '))
	update(t, m, TickMsg{})
	assert.False(t, sess.State().GameOver, "space should restart after game over")
}
