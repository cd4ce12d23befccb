package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake/internal/core"
)

// styleFor returns the foreground style of a "#rrggbb" colour. An empty
// colour keeps the terminal default.
func styleFor(hex string) lipgloss.Style {
	if hex == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colour share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			runColor := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != runColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(runColor).Render(run.String()))
		}
	}
	return sb.String()
}

// renderNotice centres a message in a width x height area.
func renderNotice(width, height int, lines ...string) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	body := style.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
