package window

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/snake/internal/core"
	"github.com/vovakirdan/snake/internal/render"
)

// textSpacing is the gap between glyphs in pixels.
const textSpacing = 1

// Face is a font loaded at one pixel size.
type Face struct {
	font rl.Font
	size int
}

// loadFace loads path at size pixels. Must be called after the window
// exists.
func loadFace(path string, size int) (*Face, error) {
	font := rl.LoadFontEx(path, int32(size), nil)
	if isFallbackFont(font, rl.GetFontDefault()) {
		return nil, fmt.Errorf("window: load font %s at %dpx: %w", path, size, core.ErrAssetLoad)
	}
	return &Face{font: font, size: size}, nil
}

// isFallbackFont reports whether raylib failed to load a font. On a parse
// failure LoadFontEx returns the built-in default font instead of an error.
func isFallbackFont(font, fallback rl.Font) bool {
	if font.Texture.ID == 0 || font.CharsCount == 0 {
		return true
	}
	return font.Texture.ID == fallback.Texture.ID
}

// Size returns the pixel size.
func (f *Face) Size() int {
	return f.size
}

func (f *Face) unload() {
	rl.UnloadFont(f.font)
}

// Device draws into the window's offscreen canvas. Board units map 1:1 to
// pixels.
type Device struct {
	canvas rl.RenderTexture2D
}

var _ render.Device = (*Device)(nil)

// Begin starts drawing into the canvas.
func (d *Device) Begin() {
	rl.BeginTextureMode(d.canvas)
}

// Present finishes drawing into the canvas. The window shows it on the
// next Blit.
func (d *Device) Present() {
	rl.EndTextureMode()
}

func (d *Device) Clear(c color.RGBA) {
	rl.ClearBackground(c)
}

func (d *Device) FillRect(r core.Rect, c color.RGBA) {
	rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), c)
}

// TextImage rasterizes text on the CPU and uploads it as a texture.
func (d *Device) TextImage(face render.Face, text string, c color.RGBA) (render.Image, error) {
	f, ok := face.(*Face)
	if !ok {
		return nil, fmt.Errorf("window: unsupported face %T", face)
	}

	img := rl.ImageTextEx(f.font, text, float32(f.size), textSpacing, c)
	if img == nil || img.Width == 0 || img.Height == 0 {
		return nil, fmt.Errorf("window: rasterize %q failed", text)
	}
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	if tex.ID == 0 {
		return nil, fmt.Errorf("window: upload %q failed", text)
	}

	return &image{tex: tex}, nil
}

// image is a GPU texture holding rendered text.
type image struct {
	tex rl.Texture2D
}

func (i *image) Width() int  { return int(i.tex.Width) }
func (i *image) Height() int { return int(i.tex.Height) }

func (i *image) Draw(x, y int) {
	rl.DrawTexture(i.tex, int32(x), int32(y), rl.White)
}

func (i *image) Release() {
	rl.UnloadTexture(i.tex)
}
