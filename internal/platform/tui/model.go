package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake/internal/core"
	"github.com/vovakirdan/snake/internal/render"
	"github.com/vovakirdan/snake/internal/session"
)

// footerLines is the number of rows below the board.
const footerLines = 1

// Model is the Bubble Tea model for playing Snake in a terminal.
type Model struct {
	sess     *session.Session
	renderer *render.Renderer
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	width    int // terminal size, 0 until the first WindowSizeMsg
	height   int
	quitting bool
}

// NewModel creates a model for sess. The renderer must draw into screen.
func NewModel(sess *session.Session, renderer *render.Renderer, screen *core.Screen) Model {
	h := help.New()
	h.ShowAll = false

	// Show the start position before the first tick
	renderer.Draw(sess.Frame())

	return Model{
		sess:     sess,
		renderer: renderer,
		screen:   screen,
		keys:     DefaultKeyMap(),
		help:     h,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.sess.Config().TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.sess.Input(action)
	return m, nil
}

// handleTick runs one simulation step and redraws the buffer.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.sess.Tick()
	m.renderer.Draw(m.sess.Frame())
	return m, tickCmd(m.sess.Config().TickInterval)
}

// tooSmall reports whether the terminal cannot hold the board and footer.
// An unknown size is assumed to fit.
func (m Model) tooSmall() bool {
	if m.width == 0 && m.height == 0 {
		return false
	}
	return m.width < m.screen.Width() || m.height < m.screen.Height()+footerLines
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		return renderNotice(m.width, m.height,
			"Window too small",
			fmt.Sprintf("need %dx%d, have %dx%d",
				m.screen.Width(), m.screen.Height()+footerLines, m.width, m.height),
		)
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}
