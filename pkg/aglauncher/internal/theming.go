package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the launcher.
type Theme struct {
	TextColor           sdl.Color // Card titles, counter, stopwatch
	FrameColor          sdl.Color // Frame around the selected card
	LineColor           sdl.Color // Side bars and separator lines
	PanelColor          sdl.Color // Description panel and break screen background
	BackgroundColor     sdl.Color // Screen background when no image is set
	FontPath            string    // Path to the UI font; empty uses the embedded font search list
	BackgroundImagePath string    // Path to the background image
}

var currentTheme Theme

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// WithAlpha returns c with its alpha scaled by a in [0, 1].
func WithAlpha(c sdl.Color, a float64) sdl.Color {
	switch {
	case a <= 0:
		c.A = 0
	case a < 1:
		c.A = uint8(float64(c.A)*a + 0.5)
	}
	return c
}
