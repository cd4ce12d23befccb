package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyShiftBounded(t *testing.T) {
	b := NewBody(2, 10)
	for i := 0; i < 5; i++ {
		b.Shift(Position{X: i * 10})
	}

	assert.Len(t, b.history, 3, "history should hold length+1 entries")
	require.Equal(t, []Position{{X: 40}, {X: 30}}, b.Segments())
}

func TestBodyHitsSkipsNewest(t *testing.T) {
	b := NewBody(2, 10)
	b.Shift(Position{X: 0})
	b.Shift(Position{X: 10})
	b.Shift(Position{X: 20})

	tests := []struct {
		p    Position
		want bool
	}{
		{Position{X: 20}, false}, // entry 0
		{Position{X: 10}, true},
		{Position{X: 0}, true}, // entry length is still checked
		{Position{X: 30}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.Hits(tt.p), "Hits(%v)", tt.p)
	}
}

func TestBodyGrowCapacity(t *testing.T) {
	b := NewBody(2, 3)
	assert.True(t, b.Grow(), "grow below capacity should succeed")
	assert.False(t, b.Grow(), "grow at capacity should report false")
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, 3, b.Cap())
}

func TestNewBodyClamps(t *testing.T) {
	b := NewBody(5, 0)
	assert.Equal(t, 1, b.Cap())
	assert.Equal(t, 1, b.Len())
}
