package internal

import (
	"time"

	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/constants"
)

// Direction represents a horizontal navigation direction.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

type heldState struct {
	down    bool
	since   time.Time
	clicked bool // pressed since the last Delta call
}

func (h *heldState) set(held bool, now time.Time) {
	if held && !h.down {
		h.since = now
		h.clicked = true
	}
	h.down = held
}

func (h *heldState) fires(now time.Time, delay time.Duration) bool {
	return h.clicked || (h.down && now.Sub(h.since) > delay)
}

// DirectionalInput tracks one direction source (keyboard, pointer, gamepad).
// A direction counts on the frame it is pressed and on every frame after it
// has been held longer than the repeat delay.
type DirectionalInput struct {
	left, right heldState
	repeatDelay time.Duration
}

// NewDirectionalInput creates a DirectionalInput with the default repeat delay.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithDelay(constants.DefaultRepeatDelay)
}

// NewDirectionalInputWithDelay creates a DirectionalInput with a custom repeat delay.
func NewDirectionalInputWithDelay(delay time.Duration) DirectionalInput {
	return DirectionalInput{repeatDelay: delay}
}

// SetHeld updates the held state for a direction based on a virtual button.
// Returns true if the button was a directional button.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool, now time.Time) bool {
	switch button {
	case constants.VirtualButtonLeft:
		d.left.set(held, now)
		return true
	case constants.VirtualButtonRight:
		d.right.set(held, now)
		return true
	}
	return false
}

// IsHeld returns true if any direction is currently held.
func (d *DirectionalInput) IsHeld() bool {
	return d.left.down || d.right.down
}

// HeldDirection returns the currently held direction, preferring left.
func (d *DirectionalInput) HeldDirection() Direction {
	if d.left.down {
		return DirectionLeft
	}
	if d.right.down {
		return DirectionRight
	}
	return DirectionNone
}

// Delta returns this frame's signed contribution and consumes pending clicks.
// Call it once per frame.
func (d *DirectionalInput) Delta(now time.Time) int {
	delta := 0
	if d.left.fires(now, d.repeatDelay) {
		delta--
	}
	if d.right.fires(now, d.repeatDelay) {
		delta++
	}
	d.left.clicked = false
	d.right.clicked = false
	return delta
}

// Reset clears all held directions.
func (d *DirectionalInput) Reset() {
	d.left = heldState{}
	d.right = heldState{}
}

// VirtualButton returns the VirtualButton constant for a Direction.
func (d Direction) VirtualButton() constants.VirtualButton {
	switch d {
	case DirectionLeft:
		return constants.VirtualButtonLeft
	case DirectionRight:
		return constants.VirtualButtonRight
	default:
		return constants.VirtualButtonUnassigned
	}
}

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}
