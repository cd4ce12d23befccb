package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/snake/internal/core"
	"github.com/vovakirdan/snake/internal/games/snake"
)

func testFrame() snake.Frame {
	return snake.Frame{
		Board:  core.NewRect(0, 0, 640, 480),
		Cell:   10,
		Head:   snake.Position{X: 30, Y: 0},
		Body:   []snake.Position{{X: 20, Y: 0}, {X: 10, Y: 0}},
		Pickup: snake.Position{X: 50, Y: 40},
		Score:  7,
	}
}

func newTestRenderer(dev *fakeDevice, clearOnGameOver bool) *Renderer {
	return NewRenderer(dev, Options{
		Palette:         DefaultPalette(),
		HUD:             &fakeFace{size: 12},
		Banner:          &fakeFace{size: 28},
		ClearOnGameOver: clearOnGameOver,
		Logger:          quietLogger(),
	})
}

func TestDrawRunning(t *testing.T) {
	dev := &fakeDevice{}
	r := newTestRenderer(dev, true)
	defer r.Close()

	r.Draw(testFrame())

	assert.Equal(t, []string{
		"begin",
		"clear 0,0,0",
		"fill 30,0 10x10 255,0,0",
		"fill 20,0 10x10 255,0,0",
		"fill 10,0 10x10 255,0,0",
		"fill 50,40 10x10 255,255,255",
		`text "Score: 7" at 0,0`,
		"present",
	}, dev.ops)
}

func TestDrawScoreRefreshOnlyOnChange(t *testing.T) {
	dev := &fakeDevice{}
	r := newTestRenderer(dev, true)
	defer r.Close()

	f := testFrame()
	r.Draw(f)
	r.Draw(f)
	require.Len(t, dev.images, 1)

	f.Score++
	r.Draw(f)
	require.Len(t, dev.images, 2)
	assert.Equal(t, "Score: 8", dev.images[1].text)
	assert.True(t, dev.images[0].released)
}

func TestDrawGameOverCentered(t *testing.T) {
	dev := &fakeDevice{}
	r := newTestRenderer(dev, true)
	defer r.Close()

	f := testFrame()
	f.GameOver = true
	r.Draw(f)

	// "Game Over" is 9 runes: 9*28/2 = 126 wide, 28 high
	assert.Equal(t, []string{
		"begin",
		"clear 0,0,0",
		`text "Game Over" at 257,226`,
		"present",
	}, dev.ops)
}

func TestDrawGameOverWithoutClear(t *testing.T) {
	dev := &fakeDevice{}
	r := newTestRenderer(dev, false)
	defer r.Close()

	f := testFrame()
	f.GameOver = true
	r.Draw(f)

	assert.NotContains(t, dev.ops, "clear 0,0,0")
	assert.Equal(t, "present", dev.ops[len(dev.ops)-1])
}

func TestDrawSurvivesTextFailure(t *testing.T) {
	dev := &fakeDevice{}
	r := newTestRenderer(dev, true)
	defer r.Close()

	f := testFrame()
	r.Draw(f)

	dev.failErr = errRaster
	dev.reset()
	f.Score = 8
	r.Draw(f)

	// Stale score stays on screen and the frame is still presented
	assert.Contains(t, dev.ops, `text "Score: 7" at 0,0`)
	assert.Equal(t, "present", dev.ops[len(dev.ops)-1])
}

func TestDrawWithoutAnyTextStillPresents(t *testing.T) {
	dev := &fakeDevice{failErr: errRaster}
	r := newTestRenderer(dev, true)

	f := testFrame()
	r.Draw(f)
	f.GameOver = true
	r.Draw(f)

	assert.Equal(t, 2, countOps(dev.ops, "present"))
}

func TestTextFailureWarnsOncePerState(t *testing.T) {
	var buf bytes.Buffer
	dev := &fakeDevice{failErr: errRaster}
	r := NewRenderer(dev, Options{
		Palette: DefaultPalette(),
		HUD:     &fakeFace{size: 12},
		Banner:  &fakeFace{size: 28},
		Logger:  log.New(&buf),
	})

	f := testFrame()
	f.GameOver = true
	for i := 0; i < 20; i++ {
		r.Draw(f)
	}
	assert.Equal(t, 1, strings.Count(buf.String(), "banner text refresh failed"), buf.String())

	// A running frame in between re-arms the banner warning
	f.GameOver = false
	r.Draw(f)
	r.Draw(f)
	assert.Equal(t, 1, strings.Count(buf.String(), "score text refresh failed"), buf.String())

	f.GameOver = true
	r.Draw(f)
	r.Draw(f)
	assert.Equal(t, 2, strings.Count(buf.String(), "banner text refresh failed"), buf.String())
}

func TestScoreText(t *testing.T) {
	assert.Equal(t, "Score: 0", ScoreText(0))
	assert.Equal(t, "Score: 1000", ScoreText(1000))
}

func countOps(ops []string, op string) int {
	n := 0
	for _, o := range ops {
		if o == op {
			n++
		}
	}
	return n
}
