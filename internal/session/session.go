// Package session binds the guessing engine to the player's preferences,
// audio output and logging. Both the TUI and the console driver talk to a
// Session rather than to the engine directly.
package session

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/number-master/internal/audio"
	"github.com/vovakirdan/number-master/internal/config"
	"github.com/vovakirdan/number-master/internal/core"
	"github.com/vovakirdan/number-master/internal/games/guess"
	"github.com/vovakirdan/number-master/internal/logging"
	"github.com/vovakirdan/number-master/internal/prefs"
)

// PreferenceStore persists Settings.
type PreferenceStore interface {
	Load() (prefs.Settings, error)
	Save(prefs.Settings) error
}

// Deps are the collaborators a Session needs. Player, Logger, Timer and
// Clock are optional.
type Deps struct {
	Runtime  core.RuntimeConfig
	Profiles config.Profiles
	Store    PreferenceStore
	Player   *audio.Player
	Logger   *log.Logger
	Timer    guess.Timer
	Clock    core.Clock
}

// Session is one player's game plus settings. Like the engine it wraps, it is
// driven from a single goroutine.
type Session struct {
	engine   *guess.Engine
	profiles config.Profiles
	store    PreferenceStore
	player   *audio.Player
	logger   *log.Logger
	settings prefs.Settings
}

// New loads the saved settings and builds a session in the not-started
// state. A settings load failure is logged and the defaults are used.
func New(d Deps) *Session {
	logger := d.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	profiles := d.Profiles
	if profiles == nil {
		profiles = config.DefaultProfiles()
	}

	settings, err := d.Store.Load()
	if err != nil {
		logger.Warn("using default settings", "error", err)
	}

	var opts []guess.Option
	if d.Player != nil {
		d.Player.SetEnabled(settings.SoundEnabled)
		opts = append(opts, guess.WithTones(d.Player))
	}
	if d.Timer != nil {
		opts = append(opts, guess.WithTimer(d.Timer))
	}
	if d.Clock != nil {
		opts = append(opts, guess.WithClock(d.Clock))
	}

	return &Session{
		engine:   guess.New(d.Runtime, opts...),
		profiles: profiles,
		store:    d.Store,
		player:   d.Player,
		logger:   logger,
		settings: settings,
	}
}

// StartNewGame begins a round with the currently selected difficulty.
func (s *Session) StartNewGame() string {
	p := s.Profile()
	hint := s.engine.StartNewGame(p)
	s.logger.Info("round started",
		"round", s.engine.Snapshot().RoundID,
		"difficulty", s.settings.Difficulty,
		"min", p.Min, "max", p.Max,
		"guesses", p.MaxGuesses, "seconds", p.TimeLimitSeconds)
	return hint
}

// Submit evaluates raw as a guess.
func (s *Session) Submit(raw string) guess.Result {
	res := s.engine.SubmitGuess(raw)
	round := s.engine.Snapshot().RoundID

	switch {
	case !res.Accepted:
		s.logger.Debug("guess rejected", "round", round, "input", raw, "reason", res.Rejection)
	case res.Status == guess.StatusWon:
		s.logger.Info("round won", "round", round, "guesses", len(res.Guesses),
			"elapsed", s.engine.Snapshot().Elapsed)
	case res.Status == guess.StatusLost:
		s.logger.Info("round lost", "round", round, "guesses", len(res.Guesses))
	default:
		s.logger.Debug("guess accepted", "round", round, "band", res.Band, "direction", res.Direction)
	}
	return res
}

// Tick forwards one timer tick and reports whether it ended the round.
func (s *Session) Tick() bool {
	expired := s.engine.Tick()
	if expired {
		s.logger.Info("round timed out", "round", s.engine.Snapshot().RoundID)
	}
	return expired
}

// Snapshot returns the current round view.
func (s *Session) Snapshot() guess.Snapshot {
	return s.engine.Snapshot()
}

// Status returns the current round status.
func (s *Session) Status() guess.Status {
	return s.engine.Status()
}

// Settings returns the current preferences.
func (s *Session) Settings() prefs.Settings {
	return s.settings
}

// Profile returns the profile of the selected difficulty. A running round
// keeps the profile it started with.
func (s *Session) Profile() config.Profile {
	return s.profiles.Get(s.settings.Difficulty)
}

// Profiles returns the loaded difficulty table.
func (s *Session) Profiles() config.Profiles {
	return s.profiles
}

// SetDifficulty selects d for the next round and saves the settings.
func (s *Session) SetDifficulty(d config.Difficulty) error {
	d, err := config.ParseDifficulty(string(d))
	if err != nil {
		return err
	}
	next := s.settings
	next.Difficulty = d
	return s.apply(next)
}

// CycleDifficulty selects the next difficulty in order.
func (s *Session) CycleDifficulty() error {
	return s.SetDifficulty(s.settings.Difficulty.Next())
}

// ToggleSound switches sound cues on or off.
func (s *Session) ToggleSound() error {
	next := s.settings
	next.SoundEnabled = !next.SoundEnabled
	return s.apply(next)
}

// ToggleDarkMode switches the theme.
func (s *Session) ToggleDarkMode() error {
	next := s.settings
	next.DarkMode = !next.DarkMode
	return s.apply(next)
}

// Handle performs a settings action. Actions that do not change settings
// belong to the driver and are ignored.
func (s *Session) Handle(a core.Action) error {
	switch a {
	case core.ActionCycleDifficulty:
		return s.CycleDifficulty()
	case core.ActionToggleSound:
		return s.ToggleSound()
	case core.ActionToggleDarkMode:
		return s.ToggleDarkMode()
	}
	return nil
}

// apply makes next current and saves it in full. The in-memory change stays
// even when saving fails.
func (s *Session) apply(next prefs.Settings) error {
	s.settings = next
	if s.player != nil {
		s.player.SetEnabled(next.SoundEnabled)
	}
	s.logger.Info("settings changed",
		"difficulty", next.Difficulty,
		"sound", prefs.OnOff(next.SoundEnabled),
		"dark", prefs.OnOff(next.DarkMode))

	if err := s.store.Save(next); err != nil {
		s.logger.Error("cannot save settings", "error", err)
		return err
	}
	return nil
}
