package aglauncher

import (
	"errors"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/carousel"
	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/catalog"
	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/constants"
	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/internal"
	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/locale"
	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/router"
)

var errNotInitialized = errors.New("window not initialized")

// History records plays. storage.Store implements it.
type History interface {
	RecordLaunch(sessionID, title, exec string, startedAt time.Time) (int64, error)
	RecordExit(id int64, endedAt time.Time) error
}

// windowControl is the part of the SDL window the kiosk drives while a game runs.
type windowControl interface {
	Minimize()
	Restore()
}

// Screens handled by the kiosk router.
const (
	ScreenCarousel router.Screen = iota
	ScreenBreak
)

// KioskOptions configures a Kiosk.
type KioskOptions struct {
	Catalog         *catalog.Catalog
	Launcher        carousel.Launcher
	Controller      carousel.Options
	RepeatDelay     time.Duration
	ErrorBanner     time.Duration
	MinimizeOnRun   bool
	Messages        *locale.Messages
	History         History       // nil disables play history
	NewSessionID    func() string // nil disables session IDs
	AttendantDevice string        // evdev device of the staff reset button
	AttendantButton uint16        // key code on AttendantDevice
	Logger          *slog.Logger  // nil uses the application logger
}

// Kiosk owns the controller and everything the screens share.
type Kiosk struct {
	opts       KioskOptions
	logger     *slog.Logger
	controller *carousel.Controller

	input     *internal.InputPoller
	attendant *internal.Attendant
	window    windowControl
	thumbs    *internal.TextureCache
	icons     *internal.Icons

	sessionID string
	playID    int64
	playing   bool

	banner      string
	bannerUntil time.Time
}

// NewKiosk builds the kiosk state. It does not touch SDL.
func NewKiosk(opts KioskOptions, now time.Time) (*Kiosk, error) {
	controller, err := carousel.NewController(opts.Catalog, opts.Launcher, opts.Controller, now)
	if err != nil {
		return nil, err
	}

	if opts.RepeatDelay <= 0 {
		opts.RepeatDelay = constants.DefaultRepeatDelay
	}
	if opts.ErrorBanner <= 0 {
		opts.ErrorBanner = constants.DefaultErrorBannerTime
	}

	logger := opts.Logger
	if logger == nil {
		logger = internal.GetLogger()
	}

	k := &Kiosk{
		opts:       opts,
		logger:     logger,
		controller: controller,
		input:      internal.NewInputPoller(opts.RepeatDelay),
		attendant:  internal.NewAttendant(),
	}
	k.newSession()

	return k, nil
}

// Controller returns the carousel state machine.
func (k *Kiosk) Controller() *carousel.Controller {
	return k.controller
}

// SessionID returns the current browsing session identifier.
func (k *Kiosk) SessionID() string {
	return k.sessionID
}

// Banner returns the error banner text if it is still showing at now.
func (k *Kiosk) Banner(now time.Time) string {
	if now.Before(k.bannerUntil) {
		return k.banner
	}
	return ""
}

func (k *Kiosk) newSession() {
	if k.opts.NewSessionID != nil {
		k.sessionID = k.opts.NewSessionID()
	}
}

func (k *Kiosk) text(id string, data map[string]any) string {
	if k.opts.Messages == nil {
		return id
	}
	return k.opts.Messages.Text(id, data)
}

// handle reacts to one tick: logging, play history, window state and the banner.
func (k *Kiosk) handle(res carousel.TickResult, now time.Time) {
	cat := k.controller.Catalog()

	if res.DemoStopped {
		k.logger.Info("Demo mode stopped")
	}
	if res.DemoStarted {
		k.logger.Info("Demo mode started", "session", k.sessionID, "session_elapsed", FormatStopwatch(k.controller.SessionElapsed(now)))
		k.newSession()
	}
	if res.Navigated != 0 {
		k.logger.Debug("Navigated", "delta", res.Navigated, "selected", k.controller.Selected())
	}

	if res.Exited {
		entry := cat.At(res.ExitedEntry)
		k.logger.Info("Game exited", "title", entry.Title, "exec", entry.Exec)
		k.recordExit(now)
		if k.opts.MinimizeOnRun && k.window != nil {
			k.window.Restore()
		}
	}

	if res.LaunchErr != nil {
		k.logger.Error("Launch failed", "error", res.LaunchErr)
		title := ""
		var le *carousel.LaunchError
		if errors.As(res.LaunchErr, &le) {
			title = le.Entry.Title
		}
		k.banner = k.text(locale.LaunchFailed, map[string]any{"Title": title})
		k.bannerUntil = now.Add(k.opts.ErrorBanner)
	}

	if res.Launched {
		entry := cat.At(res.LaunchedEntry)
		k.logger.Info("Game launched", "title", entry.Title, "exec", entry.Exec, "index", res.LaunchedEntry, "session", k.sessionID)
		k.recordLaunch(entry, now)
		k.bannerUntil = time.Time{}
		if k.opts.MinimizeOnRun && k.window != nil {
			k.window.Minimize()
		}
	}

	if res.BreakSuggested {
		k.logger.Info("Session limit reached", "session", k.sessionID, "session_elapsed", FormatStopwatch(k.controller.SessionElapsed(now)))
	}
}

func (k *Kiosk) recordLaunch(entry catalog.Entry, now time.Time) {
	if k.opts.History == nil {
		return
	}
	id, err := k.opts.History.RecordLaunch(k.sessionID, entry.Title, entry.Exec, now)
	if err != nil {
		k.logger.Warn("Failed to record launch", "title", entry.Title, "error", err)
		return
	}
	k.playID = id
	k.playing = true
}

func (k *Kiosk) recordExit(now time.Time) {
	if k.opts.History == nil || !k.playing {
		return
	}
	k.playing = false
	if err := k.opts.History.RecordExit(k.playID, now); err != nil {
		k.logger.Warn("Failed to record exit", "play", k.playID, "error", err)
	}
}

// resume leaves the break screen and starts a new session.
func (k *Kiosk) resume(now time.Time) {
	k.controller.ResetSession(now)
	k.input.Frame(now)
	k.newSession()
	k.logger.Info("Session reset by attendant", "session", k.sessionID)
}

// Run opens input devices and the attendant button, then runs the screens
// until the window is closed. Init must have been called.
func (k *Kiosk) Run() error {
	win := internal.GetWindow()
	if win == nil {
		return NewInfrastructureError("run", errNotInitialized)
	}
	k.window = win

	k.input.OpenConnectedDevices()
	defer k.input.Close()

	if k.opts.AttendantDevice != "" {
		a, err := internal.OpenAttendant(k.opts.AttendantDevice, k.opts.AttendantButton)
		if err != nil {
			k.logger.Warn("Attendant button unavailable; the break screen can only be closed by quitting", "error", err)
		} else {
			k.attendant = a
		}
	}
	defer k.attendant.Close()

	k.thumbs = internal.NewTextureCache()
	defer k.thumbs.Destroy()

	icons, err := internal.LoadIcons(win.Renderer, int(internal.PX(carousel.SideBarW)))
	if err != nil {
		return NewInfrastructureError("load_icons", err)
	}
	k.icons = icons
	defer k.icons.Destroy()

	r := router.New(k.logger)
	r.Register(ScreenCarousel, "carousel", func(any) (any, error) {
		return k.carouselScreen()
	})
	r.Register(ScreenBreak, "break", func(any) (any, error) {
		return k.breakScreen()
	})
	r.OnTransition(func(from router.Screen, result any) (router.Screen, any) {
		switch from {
		case ScreenCarousel:
			if result.(LauncherResult).Action == LauncherActionBreak {
				return ScreenBreak, nil
			}
		case ScreenBreak:
			if result.(BreakResult).Action == BreakActionResume {
				k.resume(time.Now())
				return ScreenCarousel, nil
			}
		}
		return router.ScreenExit, nil
	})

	k.logger.Info("Kiosk started", "entries", k.controller.Catalog().Len(), "session", k.sessionID)
	err = r.Run(ScreenCarousel, nil)
	k.recordExit(time.Now())
	return err
}
