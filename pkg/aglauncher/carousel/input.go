package carousel

// Input is one frame of sampled user input.
type Input struct {
	// Delta is the raw sum of every direction source this frame
	// (keys, pointer click zones, gamepad). It is clamped before use.
	Delta int

	// Confirm is set when a confirm action was released this frame.
	Confirm bool

	// Active is set when any input device reported anything this frame,
	// including pointer motion.
	Active bool

	// Hover is the click zone under the pointer.
	Hover Region
}

// Clamp limits a raw delta to a single step so that holding several
// direction sources never skips entries.
func Clamp(delta int) int {
	switch {
	case delta > 0:
		return 1
	case delta < 0:
		return -1
	default:
		return 0
	}
}
