package core

import "time"

// Ticker gates simulation steps on wall-clock time.
// It does not own a goroutine; the loop asks it on every iteration.
type Ticker struct {
	interval time.Duration
	last     time.Time
}

// NewTicker creates a ticker whose first step is due one interval after start.
func NewTicker(interval time.Duration, start time.Time) *Ticker {
	return &Ticker{interval: interval, last: start}
}

// Due reports whether at least one interval has elapsed since the last step.
// When it returns true the step is considered taken at now.
func (t *Ticker) Due(now time.Time) bool {
	if now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}
