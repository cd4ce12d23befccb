// Package core provides fundamental types and utilities shared by the game,
// the renderer and the frontends. It contains no external dependencies
// (especially no raylib or Bubble Tea) to keep game logic pure and testable.
package core

// Rect represents an axis-aligned rectangle in board units.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Scale divides position and size by unit, rounding the far edges outward so
// a partially covered cell is still included.
func (r Rect) Scale(unit int) Rect {
	if unit <= 1 {
		return r
	}
	x0 := floorDiv(r.X, unit)
	y0 := floorDiv(r.Y, unit)
	x1 := floorDiv(r.Right()+unit-1, unit)
	y1 := floorDiv(r.Bottom()+unit-1, unit)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
