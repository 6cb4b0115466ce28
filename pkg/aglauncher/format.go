package aglauncher

import (
	"fmt"
	"time"
)

// FormatStopwatch renders a duration as MM:SS. Minutes keep growing past 59.
func FormatStopwatch(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FormatCounter renders the 1-based position of index in a catalog of size n.
func FormatCounter(index, n int) string {
	return fmt.Sprintf("%d/%d", index+1, n)
}
