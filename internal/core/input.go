package core

// Action represents a semantic user action, abstracted from physical key
// presses or typed console commands. Both drivers translate their input into
// actions so the session handles them in one place.
type Action int

const (
	ActionNone            Action = iota
	ActionSubmit                 // Enter - submit the typed guess
	ActionNewGame                // Start a new round (or play again)
	ActionSettings               // Open/close the settings panel
	ActionBack                   // Escape - close panels
	ActionCycleDifficulty        // Select the next difficulty
	ActionToggleSound            // Turn sound cues on/off
	ActionToggleDarkMode         // Switch between light and dark themes
	ActionHelp                   // Show extended help
	ActionQuit                   // Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSubmit:
		return "Submit"
	case ActionNewGame:
		return "NewGame"
	case ActionSettings:
		return "Settings"
	case ActionBack:
		return "Back"
	case ActionCycleDifficulty:
		return "CycleDifficulty"
	case ActionToggleSound:
		return "ToggleSound"
	case ActionToggleDarkMode:
		return "ToggleDarkMode"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ChangesSettings reports whether the action mutates persisted preferences.
func (a Action) ChangesSettings() bool {
	switch a {
	case ActionCycleDifficulty, ActionToggleSound, ActionToggleDarkMode:
		return true
	}
	return false
}
