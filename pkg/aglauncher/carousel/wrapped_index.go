// Package carousel holds the per-frame state machine behind the launcher:
// the wrapped selection cursor, the slide animation queue, idle/demo and
// session tracking, and the controller that ties them together.
//
// Nothing in this package touches SDL. The renderer reads the state it
// produces and the input layer feeds it one Input per frame.
package carousel

import "errors"

// ErrEmpty is returned when a cursor is built over an empty sequence.
var ErrEmpty = errors.New("carousel: cannot index an empty sequence")

// Wrap returns (p + d) modulo size as a value in [0, size).
// size must be positive.
func Wrap(p, d, size int) int {
	// Reducing d first keeps p+d far from overflow for any d.
	r := (p%size + d%size) % size
	if r < 0 {
		r += size
	}
	return r
}

// WrappedIndex is a cursor over a fixed-size sequence that advances
// cyclically in either direction.
type WrappedIndex struct {
	size     int
	position int
}

// NewWrappedIndex returns a cursor at position 0.
func NewWrappedIndex(size int) (WrappedIndex, error) {
	if size <= 0 {
		return WrappedIndex{}, ErrEmpty
	}
	return WrappedIndex{size: size}, nil
}

// Get returns the current position.
func (w WrappedIndex) Get() int {
	return w.position
}

// Size returns the length of the indexed sequence.
func (w WrappedIndex) Size() int {
	return w.size
}

// Advance moves the cursor by delta, wrapping at both ends.
func (w *WrappedIndex) Advance(delta int) {
	w.position = Wrap(w.position, delta, w.size)
}

// Offset returns the position delta steps away without moving the cursor.
func (w WrappedIndex) Offset(delta int) int {
	return Wrap(w.position, delta, w.size)
}
