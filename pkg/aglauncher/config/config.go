// Package config loads the launcher's TOML configuration.
//
// Every field has a compiled-in default, so a missing config file is not an
// error; a config file that exists but cannot be parsed is.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/carousel"
	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/constants"
)

// DefaultPath is used when neither --config nor AGLAUNCHER_CONFIG is set.
const DefaultPath = "aglauncher.toml"

// Duration is a time.Duration written as a Go duration string ("30s", "5m").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the whole launcher configuration.
type Config struct {
	Catalog   string    `toml:"catalog"`
	Language  string    `toml:"language"`
	LockFile  string    `toml:"lock_file"`
	Timing    Timing    `toml:"timing"`
	Window    Window    `toml:"window"`
	Theme     Theme     `toml:"theme"`
	Logging   Logging   `toml:"logging"`
	History   History   `toml:"history"`
	Attendant Attendant `toml:"attendant"`

	// Undecoded lists keys present in the file that no field consumed.
	Undecoded []string `toml:"-"`
}

type Timing struct {
	IdleTimeout        Duration `toml:"idle_timeout"`
	SessionLimit       Duration `toml:"session_limit"`
	NavigationDuration Duration `toml:"navigation_duration"`
	DemoDuration       Duration `toml:"demo_duration"`
	RepeatDelay        Duration `toml:"repeat_delay"`
	ErrorBanner        Duration `toml:"error_banner"`
	ResetSessionOnIdle bool     `toml:"reset_session_on_idle"`
}

type Window struct {
	Title         string `toml:"title"`
	Fullscreen    bool   `toml:"fullscreen"`
	Borderless    bool   `toml:"borderless"`
	AlwaysOnTop   bool   `toml:"always_on_top"`
	MinimizeOnRun bool   `toml:"minimize_on_run"`
}

type Theme struct {
	FontPath        string `toml:"font_path"`
	BackgroundImage string `toml:"background_image"`
	TextColor       uint32 `toml:"text_color"`
	FrameColor      uint32 `toml:"frame_color"`
	LineColor       uint32 `toml:"line_color"`
	PanelColor      uint32 `toml:"panel_color"`
	BackgroundColor uint32 `toml:"background_color"`
}

type Logging struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

type History struct {
	Database string `toml:"database"` // empty disables play history
}

type Attendant struct {
	Device     string `toml:"device"` // evdev device path; empty disables the attendant button
	ButtonCode uint16 `toml:"button_code"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		Catalog:  filepath.Join("games", "games.json"),
		Language: "ja",
		LockFile: filepath.Join(os.TempDir(), "aglauncher.lock"),
		Timing: Timing{
			IdleTimeout:        Duration{constants.DefaultIdleTimeout},
			SessionLimit:       Duration{constants.DefaultSessionLimit},
			NavigationDuration: Duration{constants.DefaultNavigationDuration},
			DemoDuration:       Duration{constants.DefaultDemoDuration},
			RepeatDelay:        Duration{constants.DefaultRepeatDelay},
			ErrorBanner:        Duration{constants.DefaultErrorBannerTime},
		},
		Window: Window{
			Title:         "agLauncher",
			Fullscreen:    true,
			MinimizeOnRun: true,
		},
		Theme: Theme{
			TextColor:       0xD73A59,
			FrameColor:      0xFF7705,
			LineColor:       0x00A29A,
			PanelColor:      0xFFFFFF,
			BackgroundColor: 0x000000,
		},
		Logging: Logging{
			Path:  filepath.Join("logs", "aglauncher.log"),
			Level: "info",
		},
		History: History{
			Database: "~/.aglauncher/history.db",
		},
		Attendant: Attendant{
			ButtonCode: 59, // KEY_F1
		},
	}
}

// Load decodes path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	for _, key := range md.Undecoded() {
		cfg.Undecoded = append(cfg.Undecoded, key.String())
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve picks the config path: the flag value, then the environment, then DefaultPath.
func Resolve(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if env := os.Getenv(constants.ConfigPathEnvVar); env != "" {
		return env
	}
	return DefaultPath
}

// Validate checks values the decoder cannot.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Catalog) == "" {
		return errors.New("catalog path is empty")
	}
	if _, err := language.Parse(c.Language); err != nil {
		return fmt.Errorf("language %q: %w", c.Language, err)
	}

	t := c.Timing
	if t.NavigationDuration.Duration <= 0 {
		return errors.New("timing.navigation_duration must be positive")
	}
	if t.DemoDuration.Duration <= 0 {
		return errors.New("timing.demo_duration must be positive")
	}
	if t.IdleTimeout.Duration < 0 || t.SessionLimit.Duration < 0 || t.RepeatDelay.Duration < 0 {
		return errors.New("timing values must not be negative")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}

	return nil
}

// LanguageTag returns the configured UI language.
func (c Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.Japanese
	}
	return tag
}

// ControllerOptions converts the timing section for the carousel controller.
func (c Config) ControllerOptions() carousel.Options {
	return carousel.Options{
		IdleTimeout:        c.Timing.IdleTimeout.Duration,
		SessionLimit:       c.Timing.SessionLimit.Duration,
		NavigationDuration: c.Timing.NavigationDuration.Duration,
		DemoDuration:       c.Timing.DemoDuration.Duration,
		ResetSessionOnIdle: c.Timing.ResetSessionOnIdle,
	}
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
