package render

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrNotLoaded is returned when drawing a texture that holds no image.
var ErrNotLoaded = errors.New("render: texture not loaded")

// Texture holds at most one rasterized text image.
//
// Loading the same text, colour and face again keeps the current image, so
// a caller can refresh every frame and only pay for changes.
type Texture struct {
	dev   Device
	img   Image
	text  string
	color color.RGBA
	face  Face
}

// NewTexture creates an empty texture bound to dev.
func NewTexture(dev Device) *Texture {
	return &Texture{dev: dev}
}

// LoadFromText rasterizes text and replaces the held image.
// On failure the previous image is kept.
func (t *Texture) LoadFromText(text string, c color.RGBA, face Face) error {
	if t.img != nil && t.text == text && t.color == c && t.face == face {
		return nil
	}
	if text == "" {
		return errors.New("render: empty text")
	}
	if face == nil {
		return errors.New("render: nil font face")
	}

	img, err := t.dev.TextImage(face, text, c)
	if err != nil {
		return fmt.Errorf("render: rasterize %q: %w", text, err)
	}

	t.Free()
	t.img = img
	t.text = text
	t.color = c
	t.face = face
	return nil
}

// Render draws the image at its natural size with the top-left at (x, y).
func (t *Texture) Render(x, y int) error {
	if t.img == nil {
		return ErrNotLoaded
	}
	t.img.Draw(x, y)
	return nil
}

// Width returns the natural width of the held image, 0 if none.
func (t *Texture) Width() int {
	if t.img == nil {
		return 0
	}
	return t.img.Width()
}

// Height returns the natural height of the held image, 0 if none.
func (t *Texture) Height() int {
	if t.img == nil {
		return 0
	}
	return t.img.Height()
}

// Free releases the held image. It is safe to call repeatedly.
func (t *Texture) Free() {
	if t.img == nil {
		return
	}
	t.img.Release()
	t.img = nil
	t.text = ""
	t.face = nil
}
