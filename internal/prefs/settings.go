// Package prefs loads and saves the player's settings as a single record in
// a key-value store.
package prefs

import (
	"fmt"

	"github.com/vovakirdan/number-master/internal/config"
)

// Settings is the persisted preference record.
type Settings struct {
	Difficulty   config.Difficulty `json:"difficulty"`
	SoundEnabled bool              `json:"soundEnabled"`
	DarkMode     bool              `json:"darkMode"`
}

// Default returns the settings used when nothing has been saved.
func Default() Settings {
	return Settings{
		Difficulty:   config.DefaultDifficulty,
		SoundEnabled: true,
		DarkMode:     false,
	}
}

// Normalize replaces an unknown difficulty with the default one.
func (s Settings) Normalize() Settings {
	if !s.Difficulty.Valid() {
		s.Difficulty = config.DefaultDifficulty
	}
	return s
}

// Set updates one field by name from its textual value. Names are
// "difficulty", "sound" and "dark"; booleans accept on/off, true/false, yes/no.
func (s Settings) Set(name, value string) (Settings, error) {
	switch name {
	case "difficulty":
		d, err := config.ParseDifficulty(value)
		if err != nil {
			return s, err
		}
		s.Difficulty = d
	case "sound":
		on, err := parseSwitch(value)
		if err != nil {
			return s, err
		}
		s.SoundEnabled = on
	case "dark":
		on, err := parseSwitch(value)
		if err != nil {
			return s, err
		}
		s.DarkMode = on
	default:
		return s, fmt.Errorf("prefs: unknown setting %q (want difficulty, sound or dark)", name)
	}
	return s, nil
}

func parseSwitch(v string) (bool, error) {
	switch v {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("prefs: invalid switch value %q (want on or off)", v)
}

// OnOff renders a boolean setting for display.
func OnOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
