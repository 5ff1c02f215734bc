// Package tui provides the Bubble Tea front end for the flyer.
// It handles the terminal UI loop, input mapping, and the round history screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
// Round is the engine round that scheduled it; ticks from an older round are dropped.
type TickMsg struct {
	Round int
	Time  time.Time
}

// tickCmd schedules a single tick. The model arms the next one only after
// handling this one, so ticks never pile up.
func tickCmd(interval time.Duration, round int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Round: round, Time: t}
	})
}
