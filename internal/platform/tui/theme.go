package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/number-master/internal/config"
)

// Theme contains the visual styles for one color scheme.
type Theme struct {
	// Header
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Game panel
	Panel       lipgloss.Style
	Info        lipgloss.Style
	Range       lipgloss.Style
	Timer       lipgloss.Style
	TimerUrgent lipgloss.Style
	Hint        lipgloss.Style
	Prompt      lipgloss.Style
	Status      lipgloss.Style

	// Previous guesses
	GuessLabel lipgloss.Style
	GuessLow   lipgloss.Style // target is higher
	GuessHigh  lipgloss.Style // target is lower
	GuessHit   lipgloss.Style

	// Settings panel
	SettingLabel lipgloss.Style
	SettingValue lipgloss.Style
	SettingOn    lipgloss.Style
	SettingOff   lipgloss.Style

	Difficulty map[config.Difficulty]lipgloss.Style
}

// urgentSeconds is the remaining time at which the clock turns red.
const urgentSeconds = 10

// LightTheme returns the default theme.
func LightTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("56")).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2),
		Info:        lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Bold(true),
		Range:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Timer:       lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Bold(true),
		TimerUrgent: lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true).Blink(true),
		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color("54")).
			Bold(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderLeft(true).
			BorderForeground(lipgloss.Color("62")).
			PaddingLeft(1),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Italic(true),

		GuessLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Bold(true),
		GuessLow:   lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Background(lipgloss.Color("153")).Padding(0, 1),
		GuessHigh:  lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Background(lipgloss.Color("224")).Padding(0, 1),
		GuessHit:   lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("35")).Bold(true).Padding(0, 1),

		SettingLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Bold(true),
		SettingValue: lipgloss.NewStyle().Foreground(lipgloss.Color("54")),
		SettingOn:    lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("62")).Padding(0, 1),
		SettingOff:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Background(lipgloss.Color("252")).Padding(0, 1),

		Difficulty: map[config.Difficulty]lipgloss.Style{
			config.DifficultyEasy:   lipgloss.NewStyle().Foreground(lipgloss.Color("29")).Bold(true),
			config.DifficultyMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("136")).Bold(true),
			config.DifficultyHard:   lipgloss.NewStyle().Foreground(lipgloss.Color("166")).Bold(true),
			config.DifficultyExpert: lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		},
	}
}

// DarkTheme returns the theme used when dark mode is on.
func DarkTheme() Theme {
	theme := LightTheme()
	theme.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true)
	theme.Subtitle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.Panel = theme.Panel.BorderForeground(lipgloss.Color("60"))
	theme.Info = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	theme.Range = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	theme.Timer = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	theme.TimerUrgent = theme.TimerUrgent.Foreground(lipgloss.Color("203"))
	theme.Hint = theme.Hint.Foreground(lipgloss.Color("189")).BorderForeground(lipgloss.Color("99"))
	theme.Prompt = theme.Prompt.Foreground(lipgloss.Color("99"))
	theme.Status = theme.Status.Foreground(lipgloss.Color("203"))

	theme.GuessLabel = theme.GuessLabel.Foreground(lipgloss.Color("252"))
	theme.GuessLow = theme.GuessLow.Foreground(lipgloss.Color("153")).Background(lipgloss.Color("18"))
	theme.GuessHigh = theme.GuessHigh.Foreground(lipgloss.Color("217")).Background(lipgloss.Color("52"))

	theme.SettingLabel = theme.SettingLabel.Foreground(lipgloss.Color("252"))
	theme.SettingValue = theme.SettingValue.Foreground(lipgloss.Color("189"))
	theme.SettingOff = theme.SettingOff.Foreground(lipgloss.Color("250")).Background(lipgloss.Color("238"))

	theme.Difficulty = map[config.Difficulty]lipgloss.Style{
		config.DifficultyEasy:   lipgloss.NewStyle().Foreground(lipgloss.Color("48")).Bold(true),
		config.DifficultyMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("221")).Bold(true),
		config.DifficultyHard:   lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		config.DifficultyExpert: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	}
	return theme
}

var (
	lightTheme = LightTheme()
	darkTheme  = DarkTheme()
)

// ThemeFor picks the theme for the dark mode setting.
func ThemeFor(dark bool) Theme {
	if dark {
		return darkTheme
	}
	return lightTheme
}

// difficultyStyle returns the label style for d, falling back to Info.
func (t Theme) difficultyStyle(d config.Difficulty) lipgloss.Style {
	if s, ok := t.Difficulty[d]; ok {
		return s
	}
	return t.Info
}
