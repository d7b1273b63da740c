package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/button-maze/internal/records"
)

// Records layout constants
const (
	maxRecordRows = 10 // Rows visible in the records table
)

// newRecordsTable creates the records table with its rows.
func newRecordsTable(rs []records.Record) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Difficulty", Width: 10},
		{Title: "Time", Width: 9},
		{Title: "Bonus", Width: 6},
		{Title: "Finished", Width: 14},
	}

	rows := make([]table.Row, len(rs))
	for i, r := range rs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Difficulty.Title(),
			fmt.Sprintf("%.2fs", r.ElapsedSeconds),
			fmt.Sprintf("%d", r.BonusCount),
			r.CompletedAt.Format("Jan 02 15:04"),
		}
	}

	// Header plus its bottom border take two lines
	height := min(len(rows), maxRecordRows) + 2
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// renderRecords renders the records table, or an empty message, and the
// per-difficulty summary beneath it.
func renderRecords(t table.Model, rs []records.Record) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(rs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		return boxStyle.Render(emptyStyle.Render("No records yet.\nReach the $ to set one!"))
	}

	var b strings.Builder
	b.WriteString(t.View())

	summaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	for _, s := range records.Summarize(rs) {
		b.WriteString("\n")
		b.WriteString(summaryStyle.Render(fmt.Sprintf("%-7s %d wins, best %.2fs, most bonus %d",
			s.Difficulty.Title(), s.Count, s.BestSeconds, s.MostBonus)))
	}
	return boxStyle.Render(b.String())
}
