package guess

import (
	"time"

	"github.com/vovakirdan/number-master/internal/audio"
)

// ToneEmitter receives audio cues. Emit must return without waiting for the
// tones to play.
type ToneEmitter interface {
	Emit(tones ...audio.Tone)
}

// Timer is the one-second tick source that drives Engine.Tick. The engine
// starts it when a round begins and stops it on every exit from playing.
type Timer interface {
	Start()
	Stop()
}

type nopEmitter struct{}

func (nopEmitter) Emit(...audio.Tone) {}

type nopTimer struct{}

func (nopTimer) Start() {}
func (nopTimer) Stop()  {}

var (
	// victoryCue is C5, E5, G5 fired 100ms apart.
	victoryCue = []audio.Tone{
		{Frequency: 523, Duration: 200 * time.Millisecond, Wave: audio.WaveSine},
		{Frequency: 659, Duration: 200 * time.Millisecond, Wave: audio.WaveSine, Delay: 100 * time.Millisecond},
		{Frequency: 784, Duration: 300 * time.Millisecond, Wave: audio.WaveSine, Delay: 200 * time.Millisecond},
	}

	lossCue = []audio.Tone{
		{Frequency: 150, Duration: 500 * time.Millisecond, Wave: audio.WaveSquare},
	}

	rejectCue = []audio.Tone{
		{Frequency: 200, Duration: 200 * time.Millisecond, Wave: audio.WaveSine},
	}
)
