// Package constants defines shared constants, types, and layout values
// used throughout the launcher.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables consulted at startup.
const (
	ConfigPathEnvVar   = "AGLAUNCHER_CONFIG"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
// Dev mode opens a small decorated window instead of a full-screen one.
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Logical display surface. Every layout coordinate is a fraction of it.
const (
	LogicalWidth  int32 = 1920
	LogicalHeight int32 = 1080
)

// VirtualButton represents an abstract input button, mapped from physical hardware.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonConfirm
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonConfirm:
		return "Confirm"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonX:
		return "X"
	case VirtualButtonY:
		return "Y"
	default:
		return "Unknown"
	}
}

// IsFaceButton reports whether the button is one of the four gamepad face buttons.
func (vb VirtualButton) IsFaceButton() bool {
	return vb == VirtualButtonA || vb == VirtualButtonB || vb == VirtualButtonX || vb == VirtualButtonY
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Default timing values. All of them can be overridden from the config file.
const (
	DefaultIdleTimeout        = 30 * time.Second
	DefaultSessionLimit       = 30 * time.Minute
	DefaultNavigationDuration = 100 * time.Millisecond
	DefaultDemoDuration       = 8 * time.Second
	DefaultRepeatDelay        = 500 * time.Millisecond
	DefaultErrorBannerTime    = 4 * time.Second
	DefaultFrameDelay         = 16 * time.Millisecond
)

// Font sizes in logical pixels.
const (
	CardFontSize    = 34
	OverlayFontSize = 34
	BreakFontSize   = 40
)
