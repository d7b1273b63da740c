package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clockInterval is how often the session timer on screen refreshes.
const clockInterval = 100 * time.Millisecond

// TickMsg is sent to refresh the session timer.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after the interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
