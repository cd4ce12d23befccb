package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake/internal/registry"
)

// MenuChoice is what the user picked in the start menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota // quit
	MenuChoicePlay
	MenuChoiceScores
)

// MenuItem represents a selectable menu entry.
type MenuItem struct {
	Label      string
	Choice     MenuChoice
	FrontendID string // set for MenuChoicePlay
}

// MenuKeyMap defines the key bindings for the start menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	highScore int
	keys      MenuKeyMap
	help      help.Model
	selected  *MenuItem // Set when the user picks an entry
	quitting  bool
}

// NewMenuModel creates a start menu listing every registered frontend.
func NewMenuModel(highScore, width, height int) MenuModel {
	frontends := registry.List()
	items := make([]MenuItem, 0, len(frontends)+1)
	for _, f := range frontends {
		items = append(items, MenuItem{
			Label:      "Play - " + f.Title,
			Choice:     MenuChoicePlay,
			FrontendID: f.ID,
		})
	}
	items = append(items, MenuItem{Label: "High scores", Choice: MenuChoiceScores})

	return MenuModel{
		items:     items,
		width:     width,
		height:    height,
		highScore: highScore,
		keys:      DefaultMenuKeyMap(),
		help:      help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.Scores):
		m.selected = &MenuItem{Label: "High scores", Choice: MenuChoiceScores}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  S N A K E  "), m.width))
	b.WriteString("\n\n")

	if m.highScore > 0 {
		b.WriteString(centerText(fmt.Sprintf("Best: %d", m.highScore), m.width))
		b.WriteString("\n\n")
	}

	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	for i, item := range m.items {
		line := "  " + item.Label
		if i == m.cursor {
			line = selectedStyle.Render("> " + item.Label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	FrontendID string
}

// RunMenu runs the start menu and returns the selection.
func RunMenu(highScore, width, height int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(highScore, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Selected() == nil {
		return MenuResult{}, nil
	}

	return MenuResult{
		Choice:     m.Selected().Choice,
		FrontendID: m.Selected().FrontendID,
	}, nil
}
