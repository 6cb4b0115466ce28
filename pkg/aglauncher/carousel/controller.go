package carousel

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/catalog"
)

// Process is a launched child observed by non-blocking polling.
type Process interface {
	Running() bool
}

// Launcher starts the executable of a catalog entry.
type Launcher interface {
	Launch(entry catalog.Entry) (Process, error)
}

// LaunchError wraps a failed launch. Launch failures never stop the launcher.
type LaunchError struct {
	Entry catalog.Entry
	Err   error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch %q (%s): %v", e.Entry.Title, e.Entry.Exec, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Options configures the controller timings.
type Options struct {
	IdleTimeout        time.Duration // no input for this long starts demo mode; <= 0 disables it
	SessionLimit       time.Duration // session length before the break screen; <= 0 disables it
	NavigationDuration time.Duration
	DemoDuration       time.Duration
	ResetSessionOnIdle bool // entering demo mode zeroes the session stopwatch
}

// TickResult describes what changed during one tick.
type TickResult struct {
	Navigated      int // -1, 0 or +1
	DemoStarted    bool
	DemoStopped    bool
	DemoAdvanced   bool
	Launched       bool
	LaunchedEntry  int
	LaunchErr      error
	Exited         bool
	ExitedEntry    int
	BreakSuggested bool
}

// Controller runs the per-frame launcher state machine.
type Controller struct {
	catalog  *catalog.Catalog
	launcher Launcher
	opts     Options

	index    WrappedIndex
	queue    EffectQueue
	activity *ActivityMonitor
	session  Stopwatch

	process      Process
	processEntry int
	running      bool

	lastTick time.Time
	onBreak  bool
}

// NewController builds a controller over a non-empty catalog, starting at now.
func NewController(c *catalog.Catalog, launcher Launcher, opts Options, now time.Time) (*Controller, error) {
	if c == nil {
		return nil, ErrEmpty
	}

	index, err := NewWrappedIndex(c.Len())
	if err != nil {
		return nil, err
	}

	return &Controller{
		catalog:  c,
		launcher: launcher,
		opts:     opts,
		index:    index,
		activity: NewActivityMonitor(opts.IdleTimeout, now),
		lastTick: now,
	}, nil
}

// Tick advances the state machine by one frame.
func (c *Controller) Tick(now time.Time, in Input) TickResult {
	var res TickResult

	dt := now.Sub(c.lastTick)
	if dt < 0 {
		dt = 0
	}
	c.lastTick = now
	c.queue.Advance(dt)

	c.running = c.pollProcess(&res)

	switch c.activity.Observe(now, in.Active || c.running) {
	case ActivityWoke:
		c.queue.Clear()
		res.DemoStopped = true
	case ActivityIdled:
		res.DemoStarted = true
		if c.opts.ResetSessionOnIdle {
			c.session.Reset()
		}
	}

	if c.onBreak {
		return res
	}

	// The input that wakes the launcher from demo mode is consumed by the wake-up.
	if !c.running && !res.DemoStopped {
		if c.queue.Idle() {
			if d := Clamp(in.Delta); d != 0 {
				c.navigate(d)
				res.Navigated = d
			}
		}

		if c.queue.Idle() && in.Confirm {
			c.launch(now, &res)
		}

		if c.SessionExpired(now) {
			c.onBreak = true
			c.queue.Clear()
			res.BreakSuggested = true
			return res
		}
	}

	if c.queue.Idle() && c.activity.InDemoMode() {
		c.queue.EnqueueShift(SlideDemo, c.index, 1, c.opts.DemoDuration)
		c.index.Advance(1)
		res.DemoAdvanced = true
	}

	return res
}

func (c *Controller) navigate(direction int) {
	c.queue.EnqueueShift(SlideNavigation, c.index, direction, c.opts.NavigationDuration)
	c.index.Advance(direction)
}

func (c *Controller) launch(now time.Time, res *TickResult) {
	selected := c.index.Get()
	entry := c.catalog.At(selected)

	p, err := c.launcher.Launch(entry)
	if err != nil {
		res.LaunchErr = &LaunchError{Entry: entry, Err: err}
		return
	}

	c.process = p
	c.processEntry = selected
	c.session.Start(now)

	res.Launched = true
	res.LaunchedEntry = selected
}

func (c *Controller) pollProcess(res *TickResult) bool {
	if c.process == nil {
		return false
	}
	if c.process.Running() {
		return true
	}

	res.Exited = true
	res.ExitedEntry = c.processEntry
	c.process = nil
	return false
}

// SessionExpired reports whether the session stopwatch passed the session limit.
func (c *Controller) SessionExpired(now time.Time) bool {
	return c.opts.SessionLimit > 0 && c.session.Elapsed(now) >= c.opts.SessionLimit
}

// ResetSession leaves the break screen and starts a fresh browsing session.
func (c *Controller) ResetSession(now time.Time) {
	c.onBreak = false
	c.session.Reset()
	c.queue.Clear()
	c.activity.Touch(now)
	c.lastTick = now
}

// Catalog returns the browsed catalog.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// Index returns the selection cursor.
func (c *Controller) Index() WrappedIndex {
	return c.index
}

// Selected returns the catalog index of the selected entry.
func (c *Controller) Selected() int {
	return c.index.Get()
}

// Slides returns the running slide animations.
func (c *Controller) Slides() []Slide {
	return c.queue.Slides()
}

// QueueState returns the state of the animation queue.
func (c *Controller) QueueState() QueueState {
	return c.queue.State()
}

// InDemoMode reports whether the idle carousel is running.
func (c *Controller) InDemoMode() bool {
	return c.activity.InDemoMode()
}

// ProcessRunning reports whether a launched process was alive at the last tick.
func (c *Controller) ProcessRunning() bool {
	return c.running
}

// OnBreak reports whether the break screen has taken over.
func (c *Controller) OnBreak() bool {
	return c.onBreak
}

// SessionElapsed returns the session stopwatch reading.
func (c *Controller) SessionElapsed(now time.Time) time.Duration {
	return c.session.Elapsed(now)
}
