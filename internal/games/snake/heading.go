package snake

import "github.com/vovakirdan/snake/internal/core"

// Heading represents the snake's direction of travel.
type Heading int

const (
	HeadingRight Heading = iota
	HeadingDown
	HeadingUp
	HeadingLeft
)

// Delta returns the offset of one step of size cell in this heading.
func (h Heading) Delta(cell int) (dx, dy int) {
	switch h {
	case HeadingRight:
		return cell, 0
	case HeadingDown:
		return 0, cell
	case HeadingUp:
		return 0, -cell
	case HeadingLeft:
		return -cell, 0
	default:
		return 0, 0
	}
}

func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	default:
		return "unknown"
	}
}

// headingFor maps a direction action to its heading.
func headingFor(a core.Action) (Heading, bool) {
	switch a {
	case core.ActionUp:
		return HeadingUp, true
	case core.ActionDown:
		return HeadingDown, true
	case core.ActionLeft:
		return HeadingLeft, true
	case core.ActionRight:
		return HeadingRight, true
	}
	return 0, false
}
