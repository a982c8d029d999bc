// Package audio describes tone cues and plays them without blocking the
// caller. Actual sound output is delegated to a Sink.
package audio

import (
	"fmt"
	"time"
)

// Wave is the oscillator shape of a tone.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// String returns the wave name.
func (w Wave) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveSquare:
		return "square"
	case WaveTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Tone is one audible cue. Delay is relative to the moment the cue is emitted.
type Tone struct {
	Frequency float64 // Hz
	Duration  time.Duration
	Wave      Wave
	Delay     time.Duration
}

// String renders the tone for logs, e.g. "523Hz sine 200ms +100ms".
func (t Tone) String() string {
	s := fmt.Sprintf("%.0fHz %s %s", t.Frequency, t.Wave, t.Duration)
	if t.Delay > 0 {
		s += fmt.Sprintf(" +%s", t.Delay)
	}
	return s
}
