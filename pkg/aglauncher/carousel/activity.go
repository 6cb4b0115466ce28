package carousel

import "time"

// ActivityTransition is the demo-mode change produced by one observation.
type ActivityTransition int

const (
	ActivityUnchanged ActivityTransition = iota
	ActivityWoke                         // demo mode ended
	ActivityIdled                        // demo mode started
)

// ActivityMonitor tracks the last interaction and derives demo mode from it.
// Demo mode starts on; an idle timeout of zero or less disables it entirely.
type ActivityMonitor struct {
	idleTimeout time.Duration
	lastActive  time.Time
	demo        bool
}

// NewActivityMonitor returns a monitor whose idle clock starts at now.
func NewActivityMonitor(idleTimeout time.Duration, now time.Time) *ActivityMonitor {
	return &ActivityMonitor{
		idleTimeout: idleTimeout,
		lastActive:  now,
		demo:        idleTimeout > 0,
	}
}

// Observe records one tick. active is true when the user touched any input
// or a launched process is still running.
func (m *ActivityMonitor) Observe(now time.Time, active bool) ActivityTransition {
	if active {
		m.lastActive = now
		if m.demo {
			m.demo = false
			return ActivityWoke
		}
		return ActivityUnchanged
	}

	if !m.demo && m.idleTimeout > 0 && now.Sub(m.lastActive) > m.idleTimeout {
		m.demo = true
		return ActivityIdled
	}

	return ActivityUnchanged
}

// InDemoMode reports whether the idle carousel should be running.
func (m *ActivityMonitor) InDemoMode() bool {
	return m.demo
}

// LastActive returns the time of the last observed activity.
func (m *ActivityMonitor) LastActive() time.Time {
	return m.lastActive
}

// Touch marks now as active without reporting a transition.
func (m *ActivityMonitor) Touch(now time.Time) {
	m.lastActive = now
	m.demo = false
}

// Stopwatch measures the play session. It does not run until started.
type Stopwatch struct {
	started time.Time
	running bool
}

// Start begins timing at now. Starting a running stopwatch keeps the original start.
func (s *Stopwatch) Start(now time.Time) {
	if s.running {
		return
	}
	s.started = now
	s.running = true
}

// Reset stops the stopwatch and zeroes it.
func (s *Stopwatch) Reset() {
	s.started = time.Time{}
	s.running = false
}

// Running reports whether the stopwatch has been started.
func (s *Stopwatch) Running() bool {
	return s.running
}

// Elapsed returns the time since Start, or zero when stopped.
func (s *Stopwatch) Elapsed(now time.Time) time.Duration {
	if !s.running {
		return 0
	}
	if d := now.Sub(s.started); d > 0 {
		return d
	}
	return 0
}
