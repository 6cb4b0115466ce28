package aglauncher

import (
	"errors"
	"io"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/carousel"
	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/catalog"
	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/locale"
)

var epoch = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

type fakeProcess struct{ running bool }

func (p *fakeProcess) Running() bool { return p.running }

type fakeLauncher struct {
	proc *fakeProcess
	err  error
}

func (l *fakeLauncher) Launch(catalog.Entry) (carousel.Process, error) {
	if l.err != nil {
		return nil, l.err
	}
	l.proc = &fakeProcess{running: true}
	return l.proc, nil
}

type play struct {
	session, title string
	ended          bool
}

type fakeHistory struct {
	plays []play
}

func (h *fakeHistory) RecordLaunch(sessionID, title, exec string, startedAt time.Time) (int64, error) {
	h.plays = append(h.plays, play{session: sessionID, title: title})
	return int64(len(h.plays)), nil
}

func (h *fakeHistory) RecordExit(id int64, endedAt time.Time) error {
	h.plays[id-1].ended = true
	return nil
}

type fakeWindow struct {
	minimized bool
	restores  int
}

func (w *fakeWindow) Minimize() { w.minimized = true }
func (w *fakeWindow) Restore()  { w.minimized = false; w.restores++ }

type kioskHarness struct {
	t        *testing.T
	kiosk    *Kiosk
	launcher *fakeLauncher
	history  *fakeHistory
	window   *fakeWindow
	now      time.Time
}

func newKioskHarness(t *testing.T, opts carousel.Options) *kioskHarness {
	t.Helper()

	cat, err := catalog.New([]catalog.Entry{
		{Title: "Star Rider", Exec: "games/star.exe"},
		{Title: "Blocks", Exec: "games/blocks.exe"},
		{Title: "Maze", Exec: "games/maze.exe"},
	})
	if err != nil {
		t.Fatalf("catalog.New() failed: %v", err)
	}

	messages, err := locale.New(language.English)
	if err != nil {
		t.Fatalf("locale.New() failed: %v", err)
	}

	h := &kioskHarness{
		t:        t,
		launcher: &fakeLauncher{},
		history:  &fakeHistory{},
		window:   &fakeWindow{},
		now:      epoch,
	}

	sessions := 0
	k, err := NewKiosk(KioskOptions{
		Catalog:       cat,
		Launcher:      h.launcher,
		Controller:    opts,
		MinimizeOnRun: true,
		ErrorBanner:   4 * time.Second,
		Messages:      messages,
		History:       h.history,
		NewSessionID: func() string {
			sessions++
			return "session-" + strconv.Itoa(sessions)
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, epoch)
	if err != nil {
		t.Fatalf("NewKiosk() failed: %v", err)
	}
	k.window = h.window
	h.kiosk = k
	return h
}

func (h *kioskHarness) tick(in carousel.Input) carousel.TickResult {
	h.now = h.now.Add(16 * time.Millisecond)
	res := h.kiosk.controller.Tick(h.now, in)
	h.kiosk.handle(res, h.now)
	return res
}

func defaultOptions() carousel.Options {
	return carousel.Options{
		IdleTimeout:        30 * time.Second,
		NavigationDuration: 100 * time.Millisecond,
		DemoDuration:       8 * time.Second,
	}
}

func TestKioskRecordsPlays(t *testing.T) {
	h := newKioskHarness(t, defaultOptions())

	h.tick(carousel.Input{Active: true}) // wakes from demo
	res := h.tick(carousel.Input{Active: true, Confirm: true})
	if !res.Launched {
		t.Fatalf("confirm did not launch: %+v", res)
	}

	if len(h.history.plays) != 1 || h.history.plays[0].session != "session-1" {
		t.Fatalf("plays = %+v", h.history.plays)
	}
	if !h.window.minimized {
		t.Error("window not minimized while the game runs")
	}

	h.launcher.proc.running = false
	if res := h.tick(carousel.Input{}); !res.Exited {
		t.Fatalf("exit not observed: %+v", res)
	}
	if !h.history.plays[0].ended {
		t.Error("exit not recorded")
	}
	if h.window.minimized || h.window.restores != 1 {
		t.Errorf("window after exit = %+v", h.window)
	}
}

func TestKioskLaunchFailureBanner(t *testing.T) {
	h := newKioskHarness(t, defaultOptions())
	h.launcher.err = errors.New("exec format error")

	h.tick(carousel.Input{Active: true})
	res := h.tick(carousel.Input{Active: true, Confirm: true})
	if res.LaunchErr == nil {
		t.Fatalf("launch error not reported: %+v", res)
	}

	if got := h.kiosk.Banner(h.now); got != `Could not start "Star Rider"` {
		t.Errorf("Banner() = %q", got)
	}
	if got := h.kiosk.Banner(h.now.Add(5 * time.Second)); got != "" {
		t.Errorf("Banner() after it expired = %q", got)
	}
	if len(h.history.plays) != 0 || h.window.minimized {
		t.Error("failed launch touched history or the window")
	}
}

func TestKioskNewSessionOnDemo(t *testing.T) {
	h := newKioskHarness(t, defaultOptions())
	if h.kiosk.SessionID() != "session-1" {
		t.Fatalf("SessionID() = %q", h.kiosk.SessionID())
	}

	h.tick(carousel.Input{Active: true})
	h.now = h.now.Add(31 * time.Second)
	res := h.tick(carousel.Input{})
	if !res.DemoStarted {
		t.Fatalf("demo did not start: %+v", res)
	}
	if h.kiosk.SessionID() != "session-2" {
		t.Errorf("SessionID() after demo = %q, want a new session", h.kiosk.SessionID())
	}
}

func TestKioskResumeAfterBreak(t *testing.T) {
	opts := defaultOptions()
	opts.SessionLimit = time.Minute
	h := newKioskHarness(t, opts)

	h.tick(carousel.Input{Active: true})
	h.tick(carousel.Input{Active: true, Confirm: true})
	h.launcher.proc.running = false
	h.tick(carousel.Input{Active: true})

	h.now = h.now.Add(2 * time.Minute)
	res := h.tick(carousel.Input{Active: true})
	if !res.BreakSuggested || !h.kiosk.controller.OnBreak() {
		t.Fatalf("break not suggested: %+v", res)
	}

	h.kiosk.resume(h.now)
	if h.kiosk.controller.OnBreak() {
		t.Error("still on break after resume")
	}
	if h.kiosk.controller.SessionElapsed(h.now) != 0 {
		t.Error("session stopwatch not reset")
	}
	if h.kiosk.SessionID() != "session-2" {
		t.Errorf("SessionID() after resume = %q", h.kiosk.SessionID())
	}
}

func TestCardAlpha(t *testing.T) {
	tests := []struct {
		name         string
		rel          int
		hover        carousel.Region
		pointerValid bool
		demo         bool
		want         float64
	}{
		{"neighbour", 1, carousel.RegionCenter, true, false, carousel.NeighbourAlpha},
		{"selected", 0, carousel.RegionLeft, true, false, carousel.SelectedAlpha},
		{"hovered", 0, carousel.RegionCenter, true, false, carousel.HoverAlpha},
		{"no pointer", 0, carousel.RegionCenter, false, false, carousel.SelectedAlpha},
		{"demo", 0, carousel.RegionCenter, true, true, carousel.SelectedAlpha},
	}
	for _, tt := range tests {
		if got := cardAlpha(tt.rel, tt.hover, tt.pointerValid, tt.demo); got != tt.want {
			t.Errorf("%s: cardAlpha() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
