package maze

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/button-maze/internal/core"
)

// Grid is the layout of one session. Obstacles are fixed for the session;
// bonuses shrink as they are collected.
type Grid struct {
	Width     int
	Height    int
	Start     core.Coord
	End       core.Coord
	Obstacles core.CoordSet
	Bonuses   core.CoordSet
}

// NewGrid generates obstacles for lvl and then the rule's bonuses.
// Neither set touches start, end or each other.
func NewGrid(r Rules, lvl Level, rng *rand.Rand) (*Grid, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	reserved := core.NewCoordSet(r.Start, r.End)
	obstacles, err := GeneratePositions(rng, reserved, lvl.Obstacles, r.Width, r.Height)
	if err != nil {
		return nil, fmt.Errorf("maze: cannot place %d obstacles: %w", lvl.Obstacles, err)
	}

	bonuses, err := GeneratePositions(rng, reserved.Union(obstacles), r.BonusCount, r.Width, r.Height)
	if err != nil {
		return nil, fmt.Errorf("maze: cannot place %d bonuses: %w", r.BonusCount, err)
	}

	return &Grid{
		Width:     r.Width,
		Height:    r.Height,
		Start:     r.Start,
		End:       r.End,
		Obstacles: obstacles,
		Bonuses:   bonuses,
	}, nil
}

// NewGridWithCells builds a grid with a fixed layout.
func NewGridWithCells(r Rules, obstacles, bonuses []core.Coord) (*Grid, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	g := &Grid{
		Width:     r.Width,
		Height:    r.Height,
		Start:     r.Start,
		End:       r.End,
		Obstacles: core.NewCoordSet(obstacles...),
		Bonuses:   core.NewCoordSet(bonuses...),
	}

	reserved := core.NewCoordSet(r.Start, r.End)
	for _, set := range []core.CoordSet{g.Obstacles, g.Bonuses} {
		for c := range set {
			if !g.InBounds(c) {
				return nil, fmt.Errorf("maze: cell %v outside %dx%d grid", c, g.Width, g.Height)
			}
		}
		if !set.Disjoint(reserved) {
			return nil, fmt.Errorf("maze: start and end must stay free")
		}
	}
	if !g.Obstacles.Disjoint(g.Bonuses) {
		return nil, fmt.Errorf("maze: a bonus overlaps an obstacle")
	}
	return g, nil
}

// InBounds reports whether c lies on the grid.
func (g *Grid) InBounds(c core.Coord) bool {
	return c.In(g.Width, g.Height)
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	clone := *g
	clone.Obstacles = g.Obstacles.Clone()
	clone.Bonuses = g.Bonuses.Clone()
	return &clone
}

// Render draws the grid. Layers, bottom to top: path, walls, bonuses,
// start and end, then the player if showPlayer is set.
func (g *Grid) Render(position core.Coord, showPlayer bool) core.SymbolGrid {
	out := core.NewSymbolGrid(g.Width, g.Height)
	for c := range g.Obstacles {
		out.Set(c, core.SymbolWall)
	}
	for c := range g.Bonuses {
		out.Set(c, core.SymbolBonus)
	}
	out.Set(g.Start, core.SymbolStart)
	out.Set(g.End, core.SymbolEnd)
	if showPlayer {
		out.Set(position, core.SymbolPlayer)
	}
	return out
}
