package core

import (
	"fmt"
	"time"
)

// Clock abstracts wall-clock reads so elapsed-time hints are testable.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FormatClock renders a second count as m:ss. Negative values show 0:00.
func FormatClock(seconds int) string {
	seconds = max(seconds, 0)
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
