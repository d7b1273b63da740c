package core

import (
	"strings"
)

// Symbol is the logical content of one rendered grid cell.
type Symbol uint8

const (
	SymbolPath Symbol = iota
	SymbolWall
	SymbolBonus
	SymbolStart
	SymbolEnd
	SymbolPlayer
)

// Symbols lists every symbol in stamping order.
var Symbols = []Symbol{SymbolPath, SymbolWall, SymbolBonus, SymbolStart, SymbolEnd, SymbolPlayer}

// String returns the symbol name.
func (s Symbol) String() string {
	switch s {
	case SymbolPath:
		return "path"
	case SymbolWall:
		return "wall"
	case SymbolBonus:
		return "bonus"
	case SymbolStart:
		return "start"
	case SymbolEnd:
		return "end"
	case SymbolPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// Palette maps symbols to the glyphs a renderer prints.
type Palette map[Symbol]rune

// DefaultPalette returns the classic console glyphs.
func DefaultPalette() Palette {
	return Palette{
		SymbolPath:   '*',
		SymbolWall:   'X',
		SymbolBonus:  '#',
		SymbolStart:  'S',
		SymbolEnd:    '$',
		SymbolPlayer: '@',
	}
}

// Glyph returns the rune for s, falling back to '?' for unmapped symbols.
func (p Palette) Glyph(s Symbol) rune {
	if r, ok := p[s]; ok {
		return r
	}
	return '?'
}

// SymbolGrid is a 2D buffer of symbols.
// It decouples the logical board from how a frontend draws it.
type SymbolGrid struct {
	width  int
	height int
	cells  [][]Symbol
}

// NewSymbolGrid creates a grid of the given dimensions filled with SymbolPath.
func NewSymbolGrid(width, height int) SymbolGrid {
	g := SymbolGrid{width: width, height: height}
	g.cells = make([][]Symbol, height)
	for row := range g.cells {
		g.cells[row] = make([]Symbol, width)
	}
	return g
}

// Width returns the number of columns.
func (g SymbolGrid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g SymbolGrid) Height() int {
	return g.height
}

// Fill sets every cell to s.
func (g SymbolGrid) Fill(s Symbol) {
	for row := range g.cells {
		for col := range g.cells[row] {
			g.cells[row][col] = s
		}
	}
}

// Set places a symbol at c.
// Out-of-bounds coordinates are silently ignored.
func (g SymbolGrid) Set(c Coord, s Symbol) {
	if !c.In(g.width, g.height) {
		return
	}
	g.cells[c.Row][c.Col] = s
}

// Get returns the symbol at c, or SymbolPath when out of bounds.
func (g SymbolGrid) Get(c Coord) Symbol {
	if !c.In(g.width, g.height) {
		return SymbolPath
	}
	return g.cells[c.Row][c.Col]
}

// Row returns a copy of one row.
func (g SymbolGrid) Row(row int) []Symbol {
	if row < 0 || row >= g.height {
		return nil
	}
	out := make([]Symbol, g.width)
	copy(out, g.cells[row])
	return out
}

// Clone returns a deep copy of the grid.
func (g SymbolGrid) Clone() SymbolGrid {
	out := NewSymbolGrid(g.width, g.height)
	for row := range g.cells {
		copy(out.cells[row], g.cells[row])
	}
	return out
}

// Lines renders each row as a string using the palette.
func (g SymbolGrid) Lines(p Palette) []string {
	lines := make([]string, g.height)
	var sb strings.Builder
	for row := range g.cells {
		sb.Reset()
		sb.Grow(g.width)
		for _, s := range g.cells[row] {
			sb.WriteRune(p.Glyph(s))
		}
		lines[row] = sb.String()
	}
	return lines
}

// String renders the grid with the default palette, one row per line.
func (g SymbolGrid) String() string {
	return strings.Join(g.Lines(DefaultPalette()), "\n")
}
