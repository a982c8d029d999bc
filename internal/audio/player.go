package audio

import (
	"sync/atomic"
	"time"
)

// Sink produces a tone. Implementations may block for the tone's duration;
// the Player always calls them off the emitting goroutine.
type Sink interface {
	Play(t Tone)
}

// Player schedules tones on a Sink. Emit never blocks: every tone runs in its
// own timer goroutine, and tones still pending when the player is muted are
// dropped when they fire.
type Player struct {
	sink    Sink
	enabled atomic.Bool
	after   func(d time.Duration, f func())
}

// NewPlayer creates an enabled player writing to sink.
func NewPlayer(sink Sink) *Player {
	p := &Player{
		sink: sink,
		after: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
	p.enabled.Store(true)
	return p
}

// SetEnabled turns sound on or off.
func (p *Player) SetEnabled(on bool) {
	p.enabled.Store(on)
}

// Enabled reports whether sound is on.
func (p *Player) Enabled() bool {
	return p.enabled.Load()
}

// Emit schedules the tones and returns immediately.
func (p *Player) Emit(tones ...Tone) {
	if p == nil || p.sink == nil || !p.Enabled() {
		return
	}
	for _, t := range tones {
		p.after(t.Delay, func() {
			if p.Enabled() {
				p.sink.Play(t)
			}
		})
	}
}
