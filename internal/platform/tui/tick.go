// Package tui provides terminal presentation for patrol maps: lipgloss
// styling of rendered layouts and a Bubble Tea viewer that walks the guard
// one step per tick.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Tick rate bounds for the viewer, in steps per second.
const (
	minTickRate = 1
	maxTickRate = 240
)

// TickMsg is sent to trigger a patrol step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// clampTickRate keeps rate within the supported range.
func clampTickRate(rate int) int {
	return max(minTickRate, min(rate, maxTickRate))
}
