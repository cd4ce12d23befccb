package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var green = color.RGBA{G: 255, A: 255}

func TestTextureEmpty(t *testing.T) {
	tex := NewTexture(&fakeDevice{})

	assert.Equal(t, 0, tex.Width())
	assert.Equal(t, 0, tex.Height())
	assert.ErrorIs(t, tex.Render(0, 0), ErrNotLoaded)

	tex.Free() // no-op
}

func TestTextureLoadReleasesPrevious(t *testing.T) {
	dev := &fakeDevice{}
	face := &fakeFace{size: 12}
	tex := NewTexture(dev)

	require.NoError(t, tex.LoadFromText("Score: 0", green, face))
	require.NoError(t, tex.LoadFromText("Score: 1", green, face))

	require.Len(t, dev.images, 2)
	assert.True(t, dev.images[0].released)
	assert.False(t, dev.images[1].released)
	assert.Equal(t, 1, dev.live)
	assert.Equal(t, 48, tex.Width())
	assert.Equal(t, 12, tex.Height())

	tex.Free()
	assert.Equal(t, 0, dev.live)
	assert.Equal(t, 0, tex.Width())
}

func TestTextureSameContentKeepsImage(t *testing.T) {
	dev := &fakeDevice{}
	face := &fakeFace{size: 12}
	tex := NewTexture(dev)

	for i := 0; i < 5; i++ {
		require.NoError(t, tex.LoadFromText("Score: 3", green, face))
	}
	assert.Len(t, dev.images, 1)

	// A different face or colour is new content
	require.NoError(t, tex.LoadFromText("Score: 3", green, &fakeFace{size: 28}))
	require.NoError(t, tex.LoadFromText("Score: 3", color.RGBA{R: 255, A: 255}, face))
	assert.Len(t, dev.images, 3)
	assert.Equal(t, 1, dev.live)
}

func TestTextureFailureKeepsPrevious(t *testing.T) {
	dev := &fakeDevice{}
	face := &fakeFace{size: 10}
	tex := NewTexture(dev)
	require.NoError(t, tex.LoadFromText("Score: 1", green, face))

	dev.failErr = errRaster
	err := tex.LoadFromText("Score: 2", green, face)
	require.ErrorIs(t, err, errRaster)

	assert.Equal(t, dev.images[0].w, tex.Width(), "previous image should stay loaded")
	assert.False(t, dev.images[0].released)
	require.NoError(t, tex.Render(3, 4))
	assert.Equal(t, []string{`text "Score: 1" at 3,4`}, dev.ops)
}

func TestTextureRejectsBadInput(t *testing.T) {
	tex := NewTexture(&fakeDevice{})

	assert.Error(t, tex.LoadFromText("", green, &fakeFace{size: 12}))
	assert.Error(t, tex.LoadFromText("x", green, nil))
	assert.ErrorIs(t, tex.Render(0, 0), ErrNotLoaded)
}
