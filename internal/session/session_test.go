package session

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/snake/internal/core"
	"github.com/vovakirdan/snake/internal/storage"
)

type fakeStore struct {
	saves []storage.Run
	err   error
}

func (f *fakeStore) SaveRun(r storage.Run) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.saves = append(f.saves, r)
	return int64(len(f.saves)), nil
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newSession(store RunSaver) *Session {
	return New(Options{
		Config: core.RuntimeConfig{Seed: 42}, // classic board
		Store:  store,
		Logger: log.New(io.Discard),
		Start:  epoch,
	})
}

// crash drives the snake into itself: three ticks right, then reverse.
func crash(s *Session) {
	for i := 0; i < 3; i++ {
		s.Tick()
	}
	s.Input(core.ActionLeft)
	s.Tick()
	s.Tick()
}

func TestAdvanceGatesOnInterval(t *testing.T) {
	s := newSession(nil)

	_, ok := s.Advance(epoch.Add(30 * time.Millisecond))
	assert.False(t, ok)

	_, ok = s.Advance(epoch.Add(60 * time.Millisecond))
	assert.True(t, ok)

	_, ok = s.Advance(epoch.Add(100 * time.Millisecond))
	assert.False(t, ok)

	_, ok = s.Advance(epoch.Add(125 * time.Millisecond))
	assert.True(t, ok)

	assert.Equal(t, uint64(2), s.Snapshot().Tick)
}

func TestInputDroppedAfterTick(t *testing.T) {
	s := newSession(nil)

	s.Input(core.ActionDown)
	s.Input(core.ActionQuit)
	s.Input(core.ActionNone)
	s.Tick()
	assert.Equal(t, 10, s.Frame().Head.Y)
	assert.Equal(t, uint64(1), s.Snapshot().LastInputTick)

	// Nothing carries over into the next tick
	s.Tick()
	assert.Equal(t, uint64(1), s.Snapshot().LastInputTick)
}

func TestGameOverLogsFinalState(t *testing.T) {
	var buf bytes.Buffer
	s := New(Options{
		Config: core.RuntimeConfig{Seed: 42},
		Logger: log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}),
		Start:  epoch,
	})

	s.Input(core.ActionUp)
	s.Input(core.ActionRight)
	crash(s)
	require.True(t, s.State().GameOver)

	out := buf.String()
	assert.Contains(t, out, "inputs coalesced")
	assert.Contains(t, out, "game over")
	assert.Contains(t, out, "GameOver: true")
}

func TestScoreSavedOncePerGameOver(t *testing.T) {
	store := &fakeStore{}
	s := newSession(store)

	// Score a point first so there is something to save
	forcePickup(s)
	crash(s)
	require.True(t, s.State().GameOver)

	for i := 0; i < 5; i++ {
		s.Tick()
	}
	require.Len(t, store.saves, 1)
	run := store.saves[0]
	assert.Equal(t, "snake", run.GameID)
	assert.Equal(t, s.State().Score, run.Score)
	assert.Positive(t, run.Score)
	assert.Equal(t, 2+run.Score, run.Length)
	assert.Equal(t, int64(42), run.Seed)
	assert.Equal(t, s.Snapshot().Tick-5, run.Ticks)
	assert.Equal(t, 1, s.Played())

	// Next game saves again
	s.Input(core.ActionRestart)
	res := s.Tick()
	require.Len(t, res.Events, 1)
	assert.Equal(t, core.EventRestart, res.Events[0].Kind)
	assert.False(t, s.State().GameOver)

	forcePickup(s)
	crash(s)
	assert.Len(t, store.saves, 2)
	assert.Equal(t, 2, s.Played())
}

func TestZeroScoreNotSaved(t *testing.T) {
	store := &fakeStore{}
	s := newSession(store)

	crash(s)
	require.True(t, s.State().GameOver)
	assert.Empty(t, store.saves)
}

func TestStoreFailureDoesNotStopGame(t *testing.T) {
	store := &fakeStore{err: errors.New("disk full")}
	s := newSession(store)

	forcePickup(s)
	crash(s)
	require.True(t, s.State().GameOver)

	s.Input(core.ActionRestart)
	s.Tick()
	assert.False(t, s.State().GameOver)
}

func TestSeedFilled(t *testing.T) {
	s := New(Options{Logger: log.New(io.Discard)})
	assert.NotZero(t, s.Config().Seed)
	assert.Equal(t, 60*time.Millisecond, s.Config().TickInterval)
	assert.Equal(t, 50, s.Frame().Pickup.X)
	assert.Equal(t, 40, s.Frame().Pickup.Y)
}

// forcePickup steers into the pickup at (50,40) from a fresh game.
func forcePickup(s *Session) {
	for s.Frame().Head.X != 50 {
		s.Tick()
	}
	s.Input(core.ActionDown)
	for s.State().Score == 0 {
		s.Tick()
	}
	s.Input(core.ActionRight)
	s.Tick()
}
