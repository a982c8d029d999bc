package config

import (
	"fmt"
	"strings"
)

// Difficulties lists all difficulty levels from easiest to hardest.
var Difficulties = []Difficulty{
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
	DifficultyExpert,
}

// DefaultDifficulty is used when no preference has been saved.
const DefaultDifficulty = DifficultyMedium

// ParseDifficulty converts a user-supplied name into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if d.Valid() {
		return d, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium, hard or expert)", s)
}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	for _, known := range Difficulties {
		if d == known {
			return true
		}
	}
	return false
}

// Next returns the following difficulty, wrapping from expert to easy.
func (d Difficulty) Next() Difficulty {
	for i, known := range Difficulties {
		if d == known {
			return Difficulties[(i+1)%len(Difficulties)]
		}
	}
	return DefaultDifficulty
}

// Title returns the capitalized display name.
func (d Difficulty) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// Describe renders a one-line summary, e.g. "Medium (1-100, 8 guesses, 1.5 min)".
func (p Profile) Describe(d Difficulty) string {
	return fmt.Sprintf("%s (%d-%d, %d guesses, %s)", d.Title(), p.Min, p.Max, p.MaxGuesses, formatLimit(p.TimeLimitSeconds))
}

func formatLimit(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%d sec", seconds)
	}
	if seconds%60 == 0 {
		return fmt.Sprintf("%d min", seconds/60)
	}
	return fmt.Sprintf("%.1f min", float64(seconds)/60)
}

// Get returns the profile for d, falling back to the default difficulty.
func (ps Profiles) Get(d Difficulty) Profile {
	if p, ok := ps[d]; ok {
		return p
	}
	return ps[DefaultDifficulty]
}
