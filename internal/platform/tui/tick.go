// Package tui provides the Bubble Tea host for flapfish.
// It handles the terminal UI loop, input mapping, and world projection.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// frameDelta returns the time between two ticks. The first tick, and any tick
// whose clock went backwards, counts as one nominal interval.
func frameDelta(last, now time.Time, tickRate int) time.Duration {
	if last.IsZero() || !now.After(last) {
		return tickInterval(tickRate)
	}
	return now.Sub(last)
}
