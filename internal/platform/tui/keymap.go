package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/button-maze/internal/core"
)

// KeyMap binds keyboard keys to the four maze buttons.
// Arrows, WASD and the digits 1-4 all work, so the hardware numbering
// (button 1 = Easy/up ... button 4 = Records/right) carries over.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "1"),
			key.WithHelp("1/↑", "easy · up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "2"),
			key.WithHelp("2/↓", "normal · down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "3"),
			key.WithHelp("3/←", "hard · left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "4"),
			key.WithHelp("4/→", "records · right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Button translates a key message to a button.
// Returns the button (may be ButtonNone) and whether it's a quit request.
func (k KeyMap) Button(msg tea.KeyMsg) (b core.Button, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ButtonNone, true
	case key.Matches(msg, k.Up):
		return core.ButtonUp, false
	case key.Matches(msg, k.Down):
		return core.ButtonDown, false
	case key.Matches(msg, k.Left):
		return core.ButtonLeft, false
	case key.Matches(msg, k.Right):
		return core.ButtonRight, false
	}
	return core.ButtonNone, false
}
