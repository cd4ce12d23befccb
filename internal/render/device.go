// Package render draws Snake frames onto a Device.
//
// A Device is the drawing surface of a frontend: the raylib window or the
// terminal cell buffer. All coordinates passed to a Device are board units.
package render

import (
	"image/color"

	"github.com/vovakirdan/snake/internal/core"
)

// Face is a loaded font at one size.
// Implementations must be comparable; Texture uses them as cache keys.
type Face interface {
	Size() int
}

// Image is a device resource holding rasterized text.
type Image interface {
	Width() int
	Height() int
	// Draw places the image with its top-left corner at (x, y).
	Draw(x, y int)
	// Release frees the underlying resource. The image is unusable afterwards.
	Release()
}

// Device is an immediate-mode drawing surface.
type Device interface {
	// Begin starts a frame. Nothing is cleared implicitly.
	Begin()
	// Present finishes the frame and shows it.
	Present()
	Clear(c color.RGBA)
	FillRect(r core.Rect, c color.RGBA)
	// TextImage rasterizes text into a new image owned by the caller.
	TextImage(face Face, text string, c color.RGBA) (Image, error)
}

// Palette holds the colours of every drawn element.
type Palette struct {
	Background color.RGBA
	Head       color.RGBA
	Body       color.RGBA
	Pickup     color.RGBA
	Score      color.RGBA
	Banner     color.RGBA
}

// DefaultPalette returns the classic colours: red snake and white pickup on
// black, green text.
func DefaultPalette() Palette {
	red := color.RGBA{R: 255, A: 255}
	green := color.RGBA{G: 255, A: 255}
	return Palette{
		Background: color.RGBA{A: 255},
		Head:       red,
		Body:       red,
		Pickup:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Score:      green,
		Banner:     green,
	}
}
