package config

import (
	_ "embed"
)

//go:embed defaults/profiles.yaml
var defaultProfilesYAML []byte

// DefaultProfiles returns the built-in difficulty table.
func DefaultProfiles() Profiles {
	return Profiles{
		DifficultyEasy:   {Min: 1, Max: 50, MaxGuesses: 10, TimeLimitSeconds: 120},
		DifficultyMedium: {Min: 1, Max: 100, MaxGuesses: 8, TimeLimitSeconds: 90},
		DifficultyHard:   {Min: 1, Max: 200, MaxGuesses: 6, TimeLimitSeconds: 60},
		DifficultyExpert: {Min: 1, Max: 500, MaxGuesses: 5, TimeLimitSeconds: 45},
	}
}

// DefaultProfilesYAML returns the embedded default profiles file.
func DefaultProfilesYAML() []byte {
	return defaultProfilesYAML
}
