// Package aglauncher runs the kiosk: an SDL window that browses a game
// catalog as a carousel, launches the chosen game and hands the machine to
// the next person when a session runs out.
//
// Init must be called before NewKiosk, and Close before the program exits.
package aglauncher

import (
	"log/slog"

	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/config"
	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/internal"
)

// Options configures SDL, the window and logging.
type Options struct {
	WindowTitle   string                 // Window title displayed in windowed mode
	WindowOptions internal.WindowOptions // SDL window flags (borderless, fullscreen, etc.)
	Theme         config.Theme           // Colors, font and background image
}

// WindowOptionsFromConfig maps the config window section to SDL flags.
func WindowOptionsFromConfig(w config.Window) internal.WindowOptions {
	return internal.WindowOptions{
		Fullscreen:  w.Fullscreen,
		Borderless:  w.Borderless,
		AlwaysOnTop: w.AlwaysOnTop,
	}
}

// ThemeFromConfig converts the config theme section.
func ThemeFromConfig(t config.Theme) internal.Theme {
	return internal.Theme{
		TextColor:           internal.HexToColor(t.TextColor),
		FrameColor:          internal.HexToColor(t.FrameColor),
		LineColor:           internal.HexToColor(t.LineColor),
		PanelColor:          internal.HexToColor(t.PanelColor),
		BackgroundColor:     internal.HexToColor(t.BackgroundColor),
		FontPath:            t.FontPath,
		BackgroundImagePath: t.BackgroundImage,
	}
}

// Init initializes SDL, the window, fonts and theme.
func Init(options Options) error {
	internal.SetTheme(ThemeFromConfig(options.Theme))

	if err := internal.Init(options.WindowTitle, options.WindowOptions, options.Theme.FontPath); err != nil {
		return NewInfrastructureError("init", err)
	}
	return nil
}

// Close releases all SDL resources and closes the log file.
func Close() {
	internal.SDLCleanup()
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before the first log line to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// ShowError shows a blocking error box. It can be used before Init.
func ShowError(title, message string) {
	internal.ShowMessage(title, message, true)
}
