package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/number-master/internal/core"
	"github.com/vovakirdan/number-master/internal/games/guess"
	"github.com/vovakirdan/number-master/internal/session"
)

// panel is the screen currently on top.
type panel int

const (
	panelGame panel = iota
	panelSettings
)

// confettiRows is the height of each celebration strip.
const confettiRows = 3

// Model is the Bubble Tea model for Number Master.
type Model struct {
	session  *session.Session
	timer    *Timer
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	input    textinput.Model
	confetti *Celebration
	panel    panel
	width    int
	height   int
	status   string // last settings error, cleared on the next change
	sparkGen int
	quitting bool
}

// NewModel creates the model. timer must be the Timer the session's engine
// was built with.
func NewModel(sess *session.Session, timer *Timer, cfg core.RuntimeConfig) Model {
	input := textinput.New()
	input.CharLimit = 8
	input.Width = 20
	input.Prompt = "› "
	input.Focus()

	p := sess.Profile()
	input.Placeholder = fmt.Sprintf("Enter number (%d-%d)", p.Min, p.Max)

	return Model{
		session:  sess,
		timer:    timer,
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		input:    input,
		confetti: NewCelebration(cfg.ScreenW, confettiRows, cfg.FrameRate, cfg.ResolvedSeed()),
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.confetti.Resize(msg.Width, confettiRows)

	case countdownMsg:
		if !m.timer.accept(msg) {
			return m, nil
		}
		if !m.session.Tick() {
			m.timer.rearm()
		}

	case sparkleMsg:
		if msg.gen != m.sparkGen || m.session.Status() != guess.StatusWon {
			return m, nil
		}
		m.confetti.Step()
		cmd = sparkleCmd(m.sparkGen, m.config.FrameRate)

	default:
		m.input, cmd = m.input.Update(msg)
	}

	// Engine calls during this update may have armed the timer
	return m, tea.Batch(cmd, m.timer.take())
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	action := m.keys.Action(msg, m.panel)

	if action.ChangesSettings() {
		m.status = ""
		if err := m.session.Handle(action); err != nil {
			m.status = "⚠ " + err.Error()
		}
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.timer.Stop()
		return m, tea.Quit

	case core.ActionSettings:
		m.panel = panelSettings
	case core.ActionBack:
		m.panel = panelGame
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionNewGame:
		return m.startRound()

	case core.ActionSubmit:
		if m.session.Status() != guess.StatusPlaying {
			return m.startRound()
		}
		return m.submit()

	case core.ActionNone:
		if m.panel == panelGame && m.session.Status() == guess.StatusPlaying {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// startRound begins a new round and clears leftovers from the last one.
func (m Model) startRound() (Model, tea.Cmd) {
	m.session.StartNewGame()
	m.sparkGen++
	m.panel = panelGame

	p := m.session.Snapshot().Profile
	m.input.Reset()
	m.input.Placeholder = fmt.Sprintf("Enter number (%d-%d)", p.Min, p.Max)
	return m, nil
}

// submit sends the typed text to the engine.
func (m Model) submit() (Model, tea.Cmd) {
	res := m.session.Submit(m.input.Value())
	if res.Accepted {
		m.input.Reset()
	}

	if res.Status == guess.StatusWon {
		m.sparkGen++
		m.confetti.Scatter()
		return m, sparkleCmd(m.sparkGen, m.config.FrameRate)
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	settings := m.session.Settings()
	t := ThemeFor(settings.DarkMode)
	snap := m.session.Snapshot()
	celebrating := snap.Status == guess.StatusWon

	var b strings.Builder

	if celebrating {
		b.WriteString(m.confetti.Render())
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
	}

	b.WriteString(centerText(t.Title.Render("N U M B E R   M A S T E R"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(t.Subtitle.Render("The ultimate number guessing challenge"), m.width))
	b.WriteString("\n\n")

	difficulty := t.difficultyStyle(settings.Difficulty).Render("🎯 " + strings.ToUpper(string(settings.Difficulty)))
	b.WriteString(centerText(difficulty, m.width))
	b.WriteString("\n\n")

	var body string
	if m.panel == panelSettings {
		body = renderSettings(t, settings, m.session.Profiles(), m.keys)
	} else {
		body = m.renderGame(t, snap)
	}
	panelWidth := core.Clamp(m.width-4, 20, 72)
	for _, line := range strings.Split(t.Panel.Width(panelWidth).Render(body), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(centerText(t.Status.Render(m.status), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))

	if celebrating {
		b.WriteString("\n")
		b.WriteString(m.confetti.Render())
	}

	return b.String()
}

// renderGame draws the game panel body.
func (m Model) renderGame(t Theme, snap guess.Snapshot) string {
	if snap.Status == guess.StatusNotStarted {
		return lipgloss.JoinVertical(lipgloss.Center,
			"🏆",
			"",
			t.Title.Render("Ready to Play?"),
			t.Subtitle.Render("Challenge yourself with the ultimate number guessing game!"),
			"",
			t.Prompt.Render("▶ Press enter to start a new game"),
		)
	}

	var rows []string

	clock := t.Timer
	if snap.Status == guess.StatusPlaying && snap.RemainingSeconds <= urgentSeconds {
		clock = t.TimerUrgent
	}
	info := fmt.Sprintf("%s   %s",
		clock.Render("⏱ "+core.FormatClock(snap.RemainingSeconds)),
		t.Info.Render(fmt.Sprintf("🎯 %d guesses left", snap.GuessesLeft)))
	rng := t.Range.Render(fmt.Sprintf("Range: %d - %d", snap.Profile.Min, snap.Profile.Max))
	rows = append(rows, info+"   "+rng, "")

	rows = append(rows, t.Hint.Render(snap.Hint), "")

	if snap.Status == guess.StatusPlaying {
		rows = append(rows, m.input.View(), "")
	}

	if len(snap.Attempts) > 0 {
		rows = append(rows, t.GuessLabel.Render(fmt.Sprintf("Previous Guesses (%d)", len(snap.Attempts))))
		chips := make([]string, len(snap.Attempts))
		for i, a := range snap.Attempts {
			chips[i] = guessStyle(t, a.Direction).Render(fmt.Sprint(a.Value))
		}
		rows = append(rows, strings.Join(chips, " "), "")
	}

	if snap.Status.Terminal() {
		rows = append(rows, t.Prompt.Render("↻ Press enter to play again"))
	}

	return strings.Join(rows, "\n")
}

// guessStyle colors a previous guess by where the target lies from it.
func guessStyle(t Theme, d guess.Direction) lipgloss.Style {
	switch d {
	case guess.DirectionHigher:
		return t.GuessLow
	case guess.DirectionLower:
		return t.GuessHigh
	default:
		return t.GuessHit
	}
}

// Run starts the Bubble Tea program for sess. timer must be the Timer the
// session was built with.
func Run(sess *session.Session, timer *Timer, cfg core.RuntimeConfig) error {
	model := NewModel(sess, timer, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
