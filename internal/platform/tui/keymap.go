package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/number-master/internal/core"
)

// KeyMap defines the key bindings for the game and settings panels.
// Plain letters are reserved for the guess input, so game bindings use
// control keys; the settings panel has no input and takes letters.
type KeyMap struct {
	Submit     key.Binding
	NewGame    key.Binding
	Settings   key.Binding
	Back       key.Binding
	Difficulty key.Binding
	Sound      key.Binding
	Dark       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NewGame, k.Settings, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.NewGame, k.Settings},
		{k.Difficulty, k.Sound, k.Dark},
		{k.Back, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "guess / start"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("ctrl+n", "ctrl+r"),
			key.WithHelp("ctrl+n", "new game"),
		),
		Settings: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "settings"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Difficulty: key.NewBinding(
			key.WithKeys("d", "right", "l"),
			key.WithHelp("d/→", "difficulty"),
		),
		Sound: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sound"),
		),
		Dark: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "dark mode"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1", "?"),
			key.WithHelp("f1/?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Action translates a key message to an action for the given panel.
// ActionNone means the key is not bound there; in the game panel such keys
// go to the guess input.
func (k KeyMap) Action(msg tea.KeyMsg, p panel) core.Action {
	if key.Matches(msg, k.Quit) {
		return core.ActionQuit
	}

	if p == panelSettings {
		switch {
		case key.Matches(msg, k.Difficulty):
			return core.ActionCycleDifficulty
		case key.Matches(msg, k.Sound):
			return core.ActionToggleSound
		case key.Matches(msg, k.Dark):
			return core.ActionToggleDarkMode
		case key.Matches(msg, k.Back), key.Matches(msg, k.Settings), key.Matches(msg, k.Submit):
			return core.ActionBack
		case key.Matches(msg, k.Help):
			return core.ActionHelp
		}
		return core.ActionNone
	}

	switch {
	case key.Matches(msg, k.Submit):
		return core.ActionSubmit
	case key.Matches(msg, k.NewGame):
		return core.ActionNewGame
	case key.Matches(msg, k.Settings):
		return core.ActionSettings
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case msg.String() == "f1":
		// "?" stays typeable in the game panel
		return core.ActionHelp
	}
	return core.ActionNone
}
