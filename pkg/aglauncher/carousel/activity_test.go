package carousel

import (
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

func TestActivityMonitorStartsInDemoMode(t *testing.T) {
	m := NewActivityMonitor(30*time.Second, epoch)
	if !m.InDemoMode() {
		t.Error("monitor should start in demo mode")
	}
}

func TestActivityMonitorDisabled(t *testing.T) {
	m := NewActivityMonitor(0, epoch)
	if m.InDemoMode() {
		t.Error("zero idle timeout must disable demo mode")
	}
	if tr := m.Observe(epoch.Add(time.Hour), false); tr != ActivityUnchanged || m.InDemoMode() {
		t.Errorf("disabled monitor entered demo mode: %v", tr)
	}
}

func TestActivityMonitorTransitions(t *testing.T) {
	m := NewActivityMonitor(30*time.Second, epoch)

	if tr := m.Observe(epoch.Add(time.Second), true); tr != ActivityWoke {
		t.Fatalf("first activity = %v, want ActivityWoke", tr)
	}
	if tr := m.Observe(epoch.Add(2*time.Second), true); tr != ActivityUnchanged {
		t.Errorf("second activity = %v, want ActivityUnchanged", tr)
	}

	// Exactly at the threshold is not yet idle.
	if tr := m.Observe(epoch.Add(32*time.Second), false); tr != ActivityUnchanged {
		t.Errorf("at threshold = %v, want ActivityUnchanged", tr)
	}
	if tr := m.Observe(epoch.Add(32*time.Second+time.Millisecond), false); tr != ActivityIdled {
		t.Errorf("past threshold = %v, want ActivityIdled", tr)
	}
	if !m.InDemoMode() {
		t.Error("monitor should be in demo mode")
	}
	if tr := m.Observe(epoch.Add(time.Minute), false); tr != ActivityUnchanged {
		t.Errorf("staying idle = %v, want ActivityUnchanged", tr)
	}
}

func TestStopwatch(t *testing.T) {
	var s Stopwatch

	if s.Elapsed(epoch) != 0 || s.Running() {
		t.Fatal("zero stopwatch must be stopped")
	}

	s.Start(epoch)
	s.Start(epoch.Add(time.Minute))
	if got := s.Elapsed(epoch.Add(2 * time.Minute)); got != 2*time.Minute {
		t.Errorf("Elapsed() = %v, want 2m; restart must keep the first start", got)
	}

	s.Reset()
	if s.Running() || s.Elapsed(epoch.Add(time.Hour)) != 0 {
		t.Error("Reset() must stop and zero the stopwatch")
	}
}

func TestClamp(t *testing.T) {
	tests := map[int]int{-5: -1, -1: -1, 0: 0, 1: 1, 3: 1}
	for in, want := range tests {
		if got := Clamp(in); got != want {
			t.Errorf("Clamp(%d) = %d, want %d", in, got, want)
		}
	}
}
