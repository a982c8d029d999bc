package console

import (
	"time"

	"github.com/vovakirdan/number-master/internal/games/guess"
)

var _ guess.Timer = (*TickerTimer)(nil)

// TickerTimer implements the engine's Timer with a time.Ticker. C is nil
// while stopped, so a select on it blocks until the next Start.
type TickerTimer struct {
	interval time.Duration
	ticker   *time.Ticker
}

// NewTickerTimer returns a stopped timer that ticks every interval once
// started.
func NewTickerTimer(interval time.Duration) *TickerTimer {
	return &TickerTimer{interval: interval}
}

// Start begins ticking, replacing any running ticker.
func (t *TickerTimer) Start() {
	t.Stop()
	t.ticker = time.NewTicker(t.interval)
}

// Stop halts ticking.
func (t *TickerTimer) Stop() {
	if t.ticker != nil {
		t.ticker.Stop()
		t.ticker = nil
	}
}

// C returns the current tick channel, or nil when stopped.
func (t *TickerTimer) C() <-chan time.Time {
	if t.ticker == nil {
		return nil
	}
	return t.ticker.C
}
