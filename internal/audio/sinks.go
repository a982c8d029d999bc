package audio

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// BellSink rings the terminal bell once per tone. Terminals cannot vary the
// bell's pitch, so frequency and wave are ignored.
type BellSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBellSink creates a bell sink writing to w (usually stderr).
func NewBellSink(w io.Writer) *BellSink {
	return &BellSink{w: w}
}

// Play writes a BEL character.
func (b *BellSink) Play(Tone) {
	b.mu.Lock()
	defer b.mu.Unlock()
	//nolint:errcheck // Best-effort, a lost bell is harmless
	b.w.Write([]byte{'\a'})
}

// LogSink records tones at debug level.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink creates a sink that logs every tone.
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Play logs the tone parameters.
func (l *LogSink) Play(t Tone) {
	l.logger.Debug("tone",
		"hz", t.Frequency,
		"wave", t.Wave.String(),
		"duration", t.Duration,
		"delay", t.Delay,
	)
}

// MultiSink fans a tone out to several sinks in order.
type MultiSink []Sink

// Play forwards t to every sink.
func (m MultiSink) Play(t Tone) {
	for _, s := range m {
		s.Play(t)
	}
}
