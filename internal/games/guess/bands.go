package guess

import (
	"time"

	"github.com/vovakirdan/number-master/internal/audio"
	"github.com/vovakirdan/number-master/internal/core"
)

// Band is a proximity classification of a wrong guess.
type Band int

const (
	BandNone Band = iota
	BandVeryHot
	BandHot
	BandWarm
	BandCold
	BandVeryCold
)

// bandLimits are the inclusive upper distance bounds, closest first.
// Distances beyond the last bound are BandVeryCold.
var bandLimits = []struct {
	maxDistance int
	band        Band
}{
	{5, BandVeryHot},
	{10, BandHot},
	{20, BandWarm},
	{50, BandCold},
}

// Classify returns the band for the absolute distance between guess and target.
func Classify(guess, target int) Band {
	d := core.Abs(guess - target)
	for _, l := range bandLimits {
		if d <= l.maxDistance {
			return l.band
		}
	}
	return BandVeryCold
}

// String returns the band label.
func (b Band) String() string {
	switch b {
	case BandVeryHot:
		return "very hot"
	case BandHot:
		return "hot"
	case BandWarm:
		return "warm"
	case BandCold:
		return "cold"
	case BandVeryCold:
		return "very cold"
	default:
		return "none"
	}
}

var bandPitch = map[Band]float64{
	BandVeryHot:  800,
	BandHot:      600,
	BandWarm:     400,
	BandCold:     300,
	BandVeryCold: 200,
}

// Tone returns the cue for the band: closer bands ring higher.
func (b Band) Tone() audio.Tone {
	return audio.Tone{Frequency: bandPitch[b], Duration: 100 * time.Millisecond, Wave: audio.WaveSine}
}

// Direction tells the player which way the target lies.
type Direction int

const (
	DirectionNone   Direction = iota // guess equals target
	DirectionLower                   // guess was too high
	DirectionHigher                  // guess was too low
)

// DirectionOf compares a guess to the target.
func DirectionOf(guess, target int) Direction {
	switch {
	case guess > target:
		return DirectionLower
	case guess < target:
		return DirectionHigher
	default:
		return DirectionNone
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionLower:
		return "lower"
	case DirectionHigher:
		return "higher"
	default:
		return "none"
	}
}
