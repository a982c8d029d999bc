package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/number-master/internal/config"
	"github.com/vovakirdan/number-master/internal/prefs"
)

const settingLabelWidth = 18

// renderSettings draws the settings panel body.
func renderSettings(t Theme, s prefs.Settings, profiles config.Profiles, keys KeyMap) string {
	label := t.SettingLabel.Width(settingLabelWidth)
	keyHint := func(b key.Binding) string { return t.Range.Render("[" + b.Help().Key + "]") }

	desc := profiles.Get(s.Difficulty).Describe(s.Difficulty)
	rows := []string{
		t.Title.Render("Settings"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			label.Render("Difficulty Level"),
			t.difficultyStyle(s.Difficulty).Render("‹ "+desc+" ›"), " ", keyHint(keys.Difficulty)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			label.Render("Sound Effects"),
			switchStyle(t, s.SoundEnabled).Render(switchLabel(s.SoundEnabled, "🔊 on", "🔇 off")), " ", keyHint(keys.Sound)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			label.Render("Dark Mode"),
			switchStyle(t, s.DarkMode).Render(switchLabel(s.DarkMode, "🌙 on", "☀ off")), " ", keyHint(keys.Dark)),
		"",
		t.Subtitle.Render("Difficulty changes apply to the next round."),
	}
	return strings.Join(rows, "\n")
}

func switchStyle(t Theme, on bool) lipgloss.Style {
	if on {
		return t.SettingOn
	}
	return t.SettingOff
}

func switchLabel(on bool, onText, offText string) string {
	if on {
		return onText
	}
	return offText
}
