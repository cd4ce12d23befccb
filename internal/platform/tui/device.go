package tui

import (
	"image/color"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/snake/internal/core"
	"github.com/vovakirdan/snake/internal/render"
)

// blockRune fills a board cell on the terminal.
const blockRune = '█'

// Face is a terminal "font". Every glyph is one board cell wide.
type Face struct {
	size int
}

// Size returns the nominal point size it stands in for.
func (f *Face) Size() int {
	return f.size
}

// ScreenDevice draws board-unit geometry into a cell buffer, one terminal
// cell per board cell.
type ScreenDevice struct {
	screen *core.Screen
	cell   int
}

var _ render.Device = (*ScreenDevice)(nil)

// NewScreenDevice creates a device over screen for a board with the given
// cell size.
func NewScreenDevice(screen *core.Screen, cell int) *ScreenDevice {
	return &ScreenDevice{screen: screen, cell: cell}
}

// Begin is a no-op; the buffer keeps the previous frame until cleared.
func (d *ScreenDevice) Begin() {}

// Present is a no-op; the buffer is shown on the next View.
func (d *ScreenDevice) Present() {}

func (d *ScreenDevice) Clear(color.RGBA) {
	d.screen.Clear()
}

func (d *ScreenDevice) FillRect(r core.Rect, c color.RGBA) {
	d.screen.DrawRect(r.Scale(d.cell), core.Cell{Rune: blockRune, Color: hexColor(c)})
}

// TextImage lays text out one rune per cell. The image reports its size in
// board units so it centres like raster text.
func (d *ScreenDevice) TextImage(_ render.Face, text string, c color.RGBA) (render.Image, error) {
	return &textImage{
		dev:   d,
		text:  text,
		color: hexColor(c),
	}, nil
}

type textImage struct {
	dev   *ScreenDevice
	text  string
	color string
}

func (t *textImage) Width() int  { return utf8.RuneCountInString(t.text) * t.dev.cell }
func (t *textImage) Height() int { return t.dev.cell }

func (t *textImage) Draw(x, y int) {
	cell := max(t.dev.cell, 1)
	t.dev.screen.DrawText(x/cell, y/cell, t.text, t.color)
}

func (t *textImage) Release() {}

// hexColor formats c as "#rrggbb" for lipgloss, which reduces it to the
// terminal's colour profile when rendering.
func hexColor(c color.RGBA) string {
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return "" // fully transparent, keep the terminal default
	}
	return cc.Hex()
}
