// Package tui provides the Bubble Tea front end for Number Master.
// It maps keys to actions, drives the countdown, and renders the game and
// settings panels.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// countdownMsg is one second of the round clock. gen ties it to the Start
// call that scheduled it.
type countdownMsg struct {
	gen int
}

// sparkleMsg advances the win celebration by one frame.
type sparkleMsg struct {
	gen int
}

// countdownCmd returns a command that delivers a countdownMsg after one second.
func countdownCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return countdownMsg{gen: gen}
	})
}

// sparkleCmd schedules the next celebration frame at the given rate.
func sparkleCmd(gen, frameRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(frameRate, 1))
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return sparkleMsg{gen: gen}
	})
}
