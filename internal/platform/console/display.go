// Package console provides a plain terminal frontend: single key presses
// read in raw mode, and a colored board printed line by line.
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/vovakirdan/button-maze/internal/core"
	"github.com/vovakirdan/button-maze/internal/maze"
	"github.com/vovakirdan/button-maze/internal/records"
)

var (
	titleColor   = color.New(color.FgYellow, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
	warnColor    = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen, color.Bold)
	failureColor = color.New(color.FgRed, color.Bold)
)

// symbolColors maps board symbols to terminal colors.
var symbolColors = map[core.Symbol]*color.Color{
	core.SymbolPath:   color.New(color.FgHiBlack),
	core.SymbolWall:   color.New(color.FgRed, color.Bold),
	core.SymbolBonus:  color.New(color.FgYellow, color.Bold),
	core.SymbolStart:  color.New(color.FgBlue),
	core.SymbolEnd:    color.New(color.FgGreen, color.Bold),
	core.SymbolPlayer: color.New(color.FgCyan, color.Bold),
}

// Display prints engine state to a writer. Safe for concurrent use.
type Display struct {
	mu      sync.Mutex
	w       io.Writer
	eol     string
	palette core.Palette
}

// NewDisplay creates a display. Use "\r\n" as eol when the terminal is in
// raw mode, "\n" otherwise.
func NewDisplay(w io.Writer, palette core.Palette, eol string) *Display {
	if eol == "" {
		eol = "\n"
	}
	return &Display{w: w, eol: eol, palette: palette}
}

func (d *Display) println(lines ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, line := range lines {
		fmt.Fprint(d.w, line, d.eol)
	}
}

// ShowSelection prints the button menu.
func (d *Display) ShowSelection(choices []maze.Choice) {
	lines := []string{"", titleColor.Sprint("Select difficulty:")}
	for _, c := range choices {
		line := fmt.Sprintf("  %d) %-7s", c.Button.Number(), c.Label)
		if c.Difficulty != "" {
			line += dimColor.Sprintf(" %d moves, %d walls", c.Level.MoveLimit, c.Level.Obstacles)
		}
		lines = append(lines, line)
	}
	d.println(lines...)
}

// ShowFrame prints the board and the move counter.
func (d *Display) ShowFrame(f maze.Frame) {
	lines := []string{""}
	lines = append(lines, d.boardLines(f.Board)...)
	lines = append(lines, fmt.Sprintf("Moves remaining: %d   Bonus: %d (%d left)",
		f.MovesRemaining, f.BonusCollected, f.BonusLeft))
	d.println(lines...)
}

func (d *Display) boardLines(g core.SymbolGrid) []string {
	lines := make([]string, g.Height())
	for row := range g.Height() {
		var b strings.Builder
		for _, s := range g.Row(row) {
			glyph := string(d.palette.Glyph(s))
			if c, ok := symbolColors[s]; ok {
				glyph = c.Sprint(glyph)
			}
			b.WriteString(glyph)
		}
		lines[row] = b.String()
	}
	return lines
}

// ShowOutcome prints rejected moves and bonus pickups. Plain moves are
// visible on the next board.
func (d *Display) ShowOutcome(o maze.Outcome) {
	switch {
	case !o.Accepted():
		d.println(warnColor.Sprint(o.String()))
	case o.Bonus:
		d.println(successColor.Sprint(o.String()))
	}
}

// ShowResult prints the end of a session.
func (d *Display) ShowResult(r maze.Result) {
	if r.Won() {
		d.println(successColor.Sprintf("You win! Time: %.2fs  Bonus: %d", r.ElapsedSeconds(), r.BonusCollected))
		return
	}
	d.println(failureColor.Sprint("Out of moves! Game over."))
}

// ShowRecords prints the sorted records.
func (d *Display) ShowRecords(rs []records.Record) {
	lines := []string{"", titleColor.Sprint("Records:")}
	if len(rs) == 0 {
		lines = append(lines, dimColor.Sprint("  No records yet."))
	}
	for i, r := range rs {
		lines = append(lines, fmt.Sprintf("  %2d. %-7s %7.2fs  bonus %d",
			i+1, r.Difficulty.Title(), r.ElapsedSeconds, r.BonusCount))
	}
	d.println(lines...)
}

// ShowError prints an error.
func (d *Display) ShowError(err error) {
	d.println(failureColor.Sprint("Error: ") + err.Error())
}

// ShowText prints a plain line.
func (d *Display) ShowText(s string) {
	d.println(s)
}
