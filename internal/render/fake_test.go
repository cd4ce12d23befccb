package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake/internal/core"
)

type fakeFace struct{ size int }

func (f *fakeFace) Size() int { return f.size }

type fakeImage struct {
	dev      *fakeDevice
	text     string
	w, h     int
	released bool
}

func (i *fakeImage) Width() int  { return i.w }
func (i *fakeImage) Height() int { return i.h }

func (i *fakeImage) Draw(x, y int) {
	i.dev.ops = append(i.dev.ops, fmt.Sprintf("text %q at %d,%d", i.text, x, y))
}

func (i *fakeImage) Release() {
	i.released = true
	i.dev.live--
}

// fakeDevice records every call as a readable op string.
type fakeDevice struct {
	ops     []string
	images  []*fakeImage
	live    int
	failErr error
}

func (d *fakeDevice) Begin()   { d.ops = append(d.ops, "begin") }
func (d *fakeDevice) Present() { d.ops = append(d.ops, "present") }

func (d *fakeDevice) Clear(c color.RGBA) {
	d.ops = append(d.ops, fmt.Sprintf("clear %d,%d,%d", c.R, c.G, c.B))
}

func (d *fakeDevice) FillRect(r core.Rect, c color.RGBA) {
	d.ops = append(d.ops, fmt.Sprintf("fill %d,%d %dx%d %d,%d,%d", r.X, r.Y, r.W, r.H, c.R, c.G, c.B))
}

func (d *fakeDevice) TextImage(face Face, text string, c color.RGBA) (Image, error) {
	if d.failErr != nil {
		return nil, d.failErr
	}
	img := &fakeImage{dev: d, text: text, w: len(text) * face.Size() / 2, h: face.Size()}
	d.images = append(d.images, img)
	d.live++
	return img, nil
}

func (d *fakeDevice) reset() {
	d.ops = nil
}

var errRaster = errors.New("rasterizer offline")

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}
