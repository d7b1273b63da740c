package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/button-maze/internal/core"
)

// symbolStyles maps board symbols to lipgloss styles.
var symbolStyles = map[core.Symbol]lipgloss.Style{
	core.SymbolPath:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.SymbolWall:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.SymbolBonus:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.SymbolStart:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.SymbolEnd:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.SymbolPlayer: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true),
}

// RenderBoard converts a symbol grid to a styled string for display.
// Groups adjacent cells with the same symbol to minimize ANSI escape sequences.
func RenderBoard(g core.SymbolGrid, p core.Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(g.Width()*g.Height()*2 + g.Height())

	for row := range g.Height() {
		if row > 0 {
			sb.WriteRune('\n')
		}

		cells := g.Row(row)
		col := 0
		for col < len(cells) {
			start := cells[col]

			// Collect consecutive cells with the same symbol
			var run strings.Builder
			for col < len(cells) && cells[col] == start {
				run.WriteRune(p.Glyph(start))
				col++
			}

			style, ok := symbolStyles[start]
			if !ok {
				style = lipgloss.NewStyle()
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
