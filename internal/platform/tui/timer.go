package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/number-master/internal/games/guess"
)

var _ guess.Timer = (*Timer)(nil)

// Timer is the engine's tick source under Bubble Tea. Start and Stop only
// record intent; the model collects the follow-up command with take after
// every update, since commands must be returned from Update.
//
// Every Start and Stop bumps the generation, so a tick scheduled for an
// earlier round no longer matches and is dropped.
type Timer struct {
	gen     int
	running bool
	pending bool
}

// NewTimer creates a stopped timer.
func NewTimer() *Timer {
	return &Timer{}
}

// Start arms the timer for a new round.
func (t *Timer) Start() {
	t.gen++
	t.running = true
	t.pending = true
}

// Stop cancels any scheduled tick.
func (t *Timer) Stop() {
	t.gen++
	t.running = false
	t.pending = false
}

// accept reports whether msg belongs to the current run.
func (t *Timer) accept(msg countdownMsg) bool {
	return t.running && msg.gen == t.gen
}

// rearm requests the next tick of the current run.
func (t *Timer) rearm() {
	t.pending = t.running
}

// take returns the pending tick command, if any, and clears it.
func (t *Timer) take() tea.Cmd {
	if !t.pending {
		return nil
	}
	t.pending = false
	return countdownCmd(t.gen)
}
