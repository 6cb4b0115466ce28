package internal

import "github.com/veandco/go-sdl2/sdl"

// WindowOptions selects how the launcher window sits on the booth display.
type WindowOptions struct {
	Fullscreen  bool // fullscreen at desktop resolution
	Borderless  bool
	AlwaysOnTop bool // stays above the desktop and other launchers' dialogs
	Resizable   bool
}

// Windowed returns the options with every kiosk flag dropped, as used in dev mode.
func (wo WindowOptions) Windowed() WindowOptions {
	return WindowOptions{Resizable: true}
}

// Flags converts the options to SDL window flags. The window always allows
// high DPI so the logical surface is scaled from real pixels.
func (wo WindowOptions) Flags() uint32 {
	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_ALLOW_HIGHDPI)

	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	return flags
}
