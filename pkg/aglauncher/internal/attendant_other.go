//go:build !linux

package internal

func OpenAttendant(devicePath string, buttonCode uint16) (*Attendant, error) {
	return nil, ErrAttendantUnsupported
}
