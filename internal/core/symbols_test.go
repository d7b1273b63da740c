package core

import (
	"strings"
	"testing"
)

func TestNewSymbolGrid(t *testing.T) {
	g := NewSymbolGrid(20, 10)

	if g.Width() != 20 {
		t.Errorf("Width() = %d, expected 20", g.Width())
	}
	if g.Height() != 10 {
		t.Errorf("Height() = %d, expected 10", g.Height())
	}

	// A new grid is all path
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if s := g.Get(C(row, col)); s != SymbolPath {
				t.Fatalf("new grid should be path, got %v at (%d, %d)", s, row, col)
			}
		}
	}
}

func TestSymbolGridSetGet(t *testing.T) {
	g := NewSymbolGrid(5, 5)

	g.Set(C(2, 3), SymbolWall)
	if g.Get(C(2, 3)) != SymbolWall {
		t.Errorf("Get(2, 3) = %v, expected wall", g.Get(C(2, 3)))
	}

	// Out of bounds should be silent
	g.Set(C(-1, 0), SymbolWall)
	g.Set(C(0, 99), SymbolWall)

	if g.Get(C(-1, 0)) != SymbolPath {
		t.Error("out of bounds Get should return path")
	}
}

func TestSymbolGridLines(t *testing.T) {
	g := NewSymbolGrid(3, 2)
	g.Set(C(0, 0), SymbolStart)
	g.Set(C(0, 1), SymbolWall)
	g.Set(C(1, 1), SymbolBonus)
	g.Set(C(1, 2), SymbolEnd)

	lines := g.Lines(DefaultPalette())
	expected := []string{"SX*", "*#$"}

	if len(lines) != len(expected) {
		t.Fatalf("Lines() returned %d rows, expected %d", len(lines), len(expected))
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("line %d = %q, expected %q", i, lines[i], expected[i])
		}
	}

	if g.String() != strings.Join(expected, "\n") {
		t.Errorf("String() = %q", g.String())
	}
}

func TestSymbolGridClone(t *testing.T) {
	g := NewSymbolGrid(3, 3)
	clone := g.Clone()
	clone.Set(C(1, 1), SymbolPlayer)

	if g.Get(C(1, 1)) != SymbolPath {
		t.Error("Clone() should not share cells with the original")
	}

	row := clone.Row(1)
	row[0] = SymbolWall
	if clone.Get(C(1, 0)) != SymbolPath {
		t.Error("Row() should return a copy")
	}
}

func TestPaletteGlyph(t *testing.T) {
	p := Palette{SymbolPath: '.'}
	if p.Glyph(SymbolPath) != '.' {
		t.Errorf("Glyph(path) = %q, expected '.'", p.Glyph(SymbolPath))
	}
	if p.Glyph(SymbolWall) != '?' {
		t.Errorf("Glyph of unmapped symbol = %q, expected '?'", p.Glyph(SymbolWall))
	}
}
