package aglauncher

// LauncherAction is how the carousel screen ended.
type LauncherAction int

const (
	LauncherActionQuit  LauncherAction = iota // Window closed
	LauncherActionBreak                       // Session limit reached
)

// LauncherResult is returned by the carousel screen.
type LauncherResult struct {
	Action         LauncherAction
	SessionElapsed string // MM:SS reading when the screen ended
}

// BreakAction is how the break screen ended.
type BreakAction int

const (
	BreakActionResume BreakAction = iota // Attendant pressed the reset button
	BreakActionQuit                      // Window closed
)

// BreakResult is returned by the break screen.
type BreakResult struct {
	Action BreakAction
}
