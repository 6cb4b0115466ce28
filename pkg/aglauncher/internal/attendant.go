package internal

import (
	"errors"
	"io"

	"go.uber.org/atomic"
)

// ErrAttendantUnsupported is returned on platforms without evdev.
var ErrAttendantUnsupported = errors.New("attendant button requires evdev (linux)")

// Attendant latches presses of the staff reset button. Presses arrive on a
// reader goroutine and are taken by the frame loop.
type Attendant struct {
	pressed *atomic.Bool
	closer  io.Closer
}

// NewAttendant returns an attendant without a device. Presses come from Press.
func NewAttendant() *Attendant {
	return &Attendant{pressed: atomic.NewBool(false)}
}

// Press latches a press.
func (a *Attendant) Press() {
	a.pressed.Store(true)
}

// TakePress reports whether a press happened since the last call and clears it.
func (a *Attendant) TakePress() bool {
	return a.pressed.Swap(false)
}

// Close closes the device. A reader blocked on it returns with an error
// once the read fails; Close does not wait for that.
func (a *Attendant) Close() error {
	if a == nil || a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}
