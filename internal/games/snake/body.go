package snake

// Position is a board coordinate in units. Game positions are always
// multiples of the grid cell.
type Position struct {
	X, Y int
}

// Body is the trail of positions the head has left behind, newest first.
//
// The history holds at most length+1 entries: the first length are the
// visible segments, the extra one is the slot a pending growth exposes.
// Entries that have never been written are not part of the history, so a
// freshly reset snake grows out of its start cell instead of reading
// uninitialised segments.
type Body struct {
	history  []Position
	length   int
	capacity int
}

// NewBody creates an empty body with the given length and capacity.
func NewBody(length, capacity int) Body {
	if capacity < 1 {
		capacity = 1
	}
	length = min(max(length, 0), capacity)
	return Body{
		history:  make([]Position, 0, capacity+1),
		length:   length,
		capacity: capacity,
	}
}

// Len returns the current body length.
func (b *Body) Len() int {
	return b.length
}

// Cap returns the maximum body length.
func (b *Body) Cap() int {
	return b.capacity
}

// Grow increases the length by one. It reports false, leaving the length
// unchanged, once the body has reached its capacity.
func (b *Body) Grow() bool {
	if b.length >= b.capacity {
		return false
	}
	b.length++
	return true
}

// Shift records head as the newest position and moves every older entry
// back by one, dropping whatever falls beyond length+1.
func (b *Body) Shift(head Position) {
	n := len(b.history)
	if n < b.length+1 {
		b.history = append(b.history, Position{})
		n++
	} else if n > b.length+1 {
		n = b.length + 1
		b.history = b.history[:n]
	}
	copy(b.history[1:n], b.history[:n-1])
	b.history[0] = head
}

// Hits reports whether p lies on any recorded entry 1..length.
// Entry 0 is skipped because right after a Shift it is the head itself.
func (b *Body) Hits(p Position) bool {
	end := min(len(b.history), b.length+1)
	for i := 1; i < end; i++ {
		if b.history[i] == p {
			return true
		}
	}
	return false
}

// Segments returns the visible segments, newest first. The slice aliases
// the body and is only valid until the next Shift.
func (b *Body) Segments() []Position {
	return b.history[:min(len(b.history), b.length)]
}

// Occupies reports whether p lies on a visible segment.
func (b *Body) Occupies(p Position) bool {
	for _, seg := range b.Segments() {
		if seg == p {
			return true
		}
	}
	return false
}
