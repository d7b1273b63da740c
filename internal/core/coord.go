// Package core provides the fundamental value types shared by the maze engine
// and its frontends. It has no external dependencies so game logic stays pure
// and testable.
package core

import (
	"fmt"
	"sort"
)

// Coord is a cell position on the grid.
// Row increases downward, Col increases to the right.
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns a new Coord offset by (dRow, dCol).
func (c Coord) Add(dRow, dCol int) Coord {
	return Coord{Row: c.Row + dRow, Col: c.Col + dCol}
}

// Step returns the neighbouring Coord in the given direction.
func (c Coord) Step(d Direction) Coord {
	dRow, dCol := d.Delta()
	return c.Add(dRow, dCol)
}

// In reports whether the coordinate lies inside a width x height grid.
func (c Coord) In(width, height int) bool {
	return c.Row >= 0 && c.Row < height && c.Col >= 0 && c.Col < width
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	return Abs(c.Row-other.Row) + Abs(c.Col-other.Col)
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// CoordSet is an unordered set of coordinates.
type CoordSet map[Coord]struct{}

// NewCoordSet creates a set holding the given coordinates.
func NewCoordSet(coords ...Coord) CoordSet {
	s := make(CoordSet, len(coords))
	for _, c := range coords {
		s[c] = struct{}{}
	}
	return s
}

// Has reports whether c is in the set. A nil set is empty.
func (s CoordSet) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Add inserts c into the set.
func (s CoordSet) Add(c Coord) {
	s[c] = struct{}{}
}

// Remove deletes c from the set and reports whether it was present.
func (s CoordSet) Remove(c Coord) bool {
	if _, ok := s[c]; !ok {
		return false
	}
	delete(s, c)
	return true
}

// Len returns the number of coordinates in the set.
func (s CoordSet) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set.
func (s CoordSet) Clone() CoordSet {
	out := make(CoordSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Union returns a new set containing the members of both sets.
func (s CoordSet) Union(other CoordSet) CoordSet {
	out := s.Clone()
	for c := range other {
		out[c] = struct{}{}
	}
	return out
}

// Disjoint reports whether the two sets share no coordinate.
func (s CoordSet) Disjoint(other CoordSet) bool {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for c := range small {
		if large.Has(c) {
			return false
		}
	}
	return true
}

// Sorted returns the members in row-major order.
func (s CoordSet) Sorted() []Coord {
	out := make([]Coord, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
