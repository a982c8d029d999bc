// Package config provides YAML-based difficulty profile loading and
// environment configuration for Number Master.
package config

import (
	"fmt"
	"time"
)

// Difficulty names one of the fixed difficulty levels.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// Profile is the range, guess budget and time budget of one difficulty.
// Profiles are immutable once loaded; rounds hold a copy.
type Profile struct {
	Min              int `yaml:"min"`
	Max              int `yaml:"max"`
	MaxGuesses       int `yaml:"max_guesses"`
	TimeLimitSeconds int `yaml:"time_limit_seconds"`
}

// TimeLimit returns the time budget as a duration.
func (p Profile) TimeLimit() time.Duration {
	return time.Duration(p.TimeLimitSeconds) * time.Second
}

// Contains reports whether n lies in the inclusive range [Min, Max].
func (p Profile) Contains(n int) bool {
	return n >= p.Min && n <= p.Max
}

// RangeLimit bounds both ends of a profile range so the span always fits an
// int, even on 32-bit platforms.
const RangeLimit = 1_000_000_000

// Validate checks the profile's structural invariants.
func (p Profile) Validate() error {
	if p.Min < -RangeLimit || p.Max > RangeLimit {
		return fmt.Errorf("range %d-%d must lie within ±%d", p.Min, p.Max, RangeLimit)
	}
	if p.Min >= p.Max {
		return fmt.Errorf("min %d must be less than max %d", p.Min, p.Max)
	}
	if p.MaxGuesses <= 0 {
		return fmt.Errorf("max_guesses must be positive, got %d", p.MaxGuesses)
	}
	if p.TimeLimitSeconds <= 0 {
		return fmt.Errorf("time_limit_seconds must be positive, got %d", p.TimeLimitSeconds)
	}
	return nil
}

// Profiles maps every difficulty to its profile.
type Profiles map[Difficulty]Profile

// ProfilesFile is the on-disk YAML layout.
type ProfilesFile struct {
	Profiles map[string]Profile `yaml:"profiles"`
}
