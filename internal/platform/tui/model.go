package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/button-maze/internal/core"
	"github.com/vovakirdan/button-maze/internal/feedback"
	"github.com/vovakirdan/button-maze/internal/maze"
	"github.com/vovakirdan/button-maze/internal/records"
)

// Messages sent by the frontend into the running program.
type (
	selectionMsg struct{ choices []maze.Choice }
	frameMsg     struct{ frame maze.Frame }
	outcomeMsg   struct{ outcome maze.Outcome }
	resultMsg    struct{ result maze.Result }
	recordsMsg   struct{ records []records.Record }
	errorMsg     struct{ err error }

	// cueMsg lights an indicator and shows the note being played.
	// A zero kind turns the indicator off.
	cueMsg struct {
		kind indicator
		note feedback.Note
	}
)

type indicator int

const (
	indicatorOff indicator = iota
	indicatorSuccess
	indicatorFailure
)

type screen int

const (
	screenSelection screen = iota
	screenPlay
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	boardStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// Model is the Bubble Tea model of the maze frontend. It only mirrors what
// the engine sends; game state lives in the engine.
type Model struct {
	keys    KeyMap
	help    help.Model
	presses chan<- core.Button
	palette core.Palette

	screen      screen
	choices     []maze.Choice
	frame       maze.Frame
	outcome     string
	notice      string
	noticeIsErr bool

	records     []records.Record
	table       table.Model
	showRecords bool

	light indicator
	note  feedback.Note

	startedAt time.Time
	now       time.Time
	width     int
	quitting  bool
}

// NewModel creates a model that hands button presses to presses.
func NewModel(presses chan<- core.Button, palette core.Palette) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		keys:    DefaultKeyMap(),
		help:    h,
		presses: presses,
		palette: palette,
		table:   newRecordsTable(nil),
	}
}

// Init starts the session timer.
func (m Model) Init() tea.Cmd {
	return tickCmd(clockInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.now = time.Time(msg)
		return m, tickCmd(clockInterval)

	case selectionMsg:
		m.screen = screenSelection
		m.choices = msg.choices
		return m, nil

	case frameMsg:
		if m.screen != screenPlay {
			// First frame of a new session
			m.screen = screenPlay
			m.startedAt = time.Now()
			m.now = m.startedAt
			m.outcome = ""
			m.notice = ""
			m.showRecords = false
		}
		m.frame = msg.frame
		return m, nil

	case outcomeMsg:
		m.outcome = msg.outcome.String()
		return m, nil

	case resultMsg:
		m.notice, m.noticeIsErr = resultText(msg.result), false
		return m, nil

	case recordsMsg:
		m.records = msg.records
		m.table = newRecordsTable(msg.records)
		m.showRecords = true
		return m, nil

	case errorMsg:
		m.notice, m.noticeIsErr = msg.err.Error(), true
		return m, nil

	case cueMsg:
		m.light, m.note = msg.kind, msg.note
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b, isQuit := m.keys.Button(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if b == core.ButtonNone {
		return m, nil
	}

	// Hand the press to the engine if it is waiting; otherwise keep at most
	// one press queued and drop the rest. The frontend discards a queued
	// press when the selection menu opens.
	select {
	case m.presses <- b:
	default:
	}
	return m, nil
}

func resultText(r maze.Result) string {
	if r.Won() {
		return fmt.Sprintf("You made it! %s in %.2fs with %d bonus.",
			r.Difficulty.Title(), r.ElapsedSeconds(), r.BonusCollected)
	}
	return fmt.Sprintf("Out of moves after %d steps. Try again!", r.MovesUsed)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("BUTTON MAZE"))
	b.WriteString("\n")

	switch m.screen {
	case screenPlay:
		b.WriteString(m.viewPlay())
	default:
		b.WriteString(m.viewSelection())
	}

	if light := m.viewIndicator(); light != "" {
		b.WriteString("\n")
		b.WriteString(light)
	}

	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) viewSelection() string {
	var b strings.Builder

	if m.notice != "" {
		style := successStyle
		if m.noticeIsErr {
			style = errorStyle
		}
		b.WriteString(style.Render(m.notice))
		b.WriteString("\n\n")
	}

	b.WriteString("Choose a difficulty:\n")
	for _, c := range m.choices {
		line := fmt.Sprintf("  [%d] %-7s", c.Button.Number(), c.Label)
		if c.Difficulty != "" {
			line += dimStyle.Render(fmt.Sprintf(" %d moves, %d walls", c.Level.MoveLimit, c.Level.Obstacles))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.showRecords {
		b.WriteString("\n")
		b.WriteString(renderRecords(m.table, m.records))
	}
	return b.String()
}

func (m Model) viewPlay() string {
	var b strings.Builder
	f := m.frame

	b.WriteString(boardStyle.Render(RenderBoard(f.Board, m.palette)))
	b.WriteString("\n")

	elapsed := m.now.Sub(m.startedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf("%s · Moves remaining: %d · Bonus: %d (%d left) · %.1fs",
		f.Difficulty.Title(), f.MovesRemaining, f.BonusCollected, f.BonusLeft, elapsed.Seconds())))

	if m.outcome != "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(m.outcome))
	}
	return b.String()
}

func (m Model) viewIndicator() string {
	var label string
	var style lipgloss.Style
	switch m.light {
	case indicatorSuccess:
		label, style = "● SUCCESS", successStyle
	case indicatorFailure:
		label, style = "● FAILURE", errorStyle
	default:
		return ""
	}
	if m.note.Hz > 0 {
		label += fmt.Sprintf("  ♪ %d Hz", m.note.Hz)
	}
	return style.Render(label)
}
