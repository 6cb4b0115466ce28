//go:build linux

package internal

import (
	"fmt"

	"github.com/holoplot/go-evdev"
)

// OpenAttendant watches an evdev device for releases of the given key code.
func OpenAttendant(devicePath string, buttonCode uint16) (*Attendant, error) {
	dev, err := evdev.Open(devicePath)
	if err != nil {
		return nil, fmt.Errorf("open attendant device %s: %w", devicePath, err)
	}

	name, _ := dev.Name()
	GetLogger().Info("Attendant button ready", "device", devicePath, "name", name, "code", buttonCode)

	a := NewAttendant()
	a.closer = dev

	go func() {
		for {
			event, err := dev.ReadOne()
			if err != nil {
				GetLogger().Debug("Attendant reader stopped", "error", err)
				return
			}

			if event.Type == evdev.EV_KEY && event.Code == evdev.EvCode(buttonCode) && event.Value == 0 {
				GetLogger().Info("Attendant button pressed")
				a.Press()
			}
		}
	}()

	return a, nil
}
