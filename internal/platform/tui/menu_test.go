package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuListsFrontends(t *testing.T) {
	m := NewMenuModel(12, 80, 24)

	view := m.View()
	for _, want := range []string{"S N A K E", "Best: 12", "Terminal (Bubble Tea)", "High scores"} {
		assert.Contains(t, view, want)
	}
	assert.Equal(t, MenuChoiceScores, m.items[len(m.items)-1].Choice, "high scores should be the last entry")
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(0, 80, 24)

	// Moving past the end stops on the last entry
	var model tea.Model = m
	for i := 0; i < len(m.items)+2; i++ {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	sel := model.(MenuModel).Selected()
	require.NotNil(t, sel)
	assert.Equal(t, MenuChoiceScores, sel.Choice)

	model = NewMenuModel(0, 80, 24)
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd, "select should quit the menu program")
	sel = model.(MenuModel).Selected()
	require.NotNil(t, sel)
	assert.Equal(t, MenuChoicePlay, sel.Choice)
	assert.NotEmpty(t, sel.FrontendID)
}

func TestMenuQuit(t *testing.T) {
	var model tea.Model = NewMenuModel(0, 80, 24)
	model, _ = model.Update(runeKey('q'))

	assert.Nil(t, model.(MenuModel).Selected(), "quit should not select anything")
	assert.Empty(t, model.View())
}
