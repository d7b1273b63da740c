package maze

import (
	"fmt"

	"github.com/vovakirdan/button-maze/internal/core"
)

// OutcomeKind classifies a resolved move.
type OutcomeKind int

const (
	OutcomeRejected OutcomeKind = iota
	OutcomeMoved
	OutcomeGoal
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeRejected:
		return "rejected"
	case OutcomeMoved:
		return "moved"
	case OutcomeGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// Reason explains a rejected move.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonOutOfBounds
	ReasonBlocked
	ReasonSessionOver
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonOutOfBounds:
		return "out of bounds"
	case ReasonBlocked:
		return "blocked"
	case ReasonSessionOver:
		return "session over"
	default:
		return "unknown"
	}
}

// Outcome is the result of resolving one requested move.
type Outcome struct {
	Kind      OutcomeKind
	Reason    Reason
	Direction core.Direction
	From      core.Coord
	To        core.Coord // Equals From when rejected
	Bonus     bool       // The destination held a bonus
}

// Accepted reports whether the move changed position.
func (o Outcome) Accepted() bool {
	return o.Kind != OutcomeRejected
}

// BudgetDelta returns the net change to the move budget: 0 when rejected,
// -1 for an accepted move, increment-1 for a bonus move.
func (o Outcome) BudgetDelta(increment int) int {
	if !o.Accepted() {
		return 0
	}
	if o.Bonus {
		return increment - 1
	}
	return -1
}

// String returns a short message for display.
func (o Outcome) String() string {
	switch {
	case o.Kind == OutcomeRejected && o.Reason == ReasonBlocked:
		return fmt.Sprintf("Blocked! Can't move %s.", o.Direction)
	case o.Kind == OutcomeRejected && o.Reason == ReasonOutOfBounds:
		return fmt.Sprintf("Edge of the maze, can't move %s.", o.Direction)
	case o.Kind == OutcomeRejected:
		return "The session is over."
	case o.Kind == OutcomeGoal:
		return "You reached the end!"
	case o.Bonus:
		return "Bonus collected!"
	default:
		return fmt.Sprintf("Moved %s.", o.Direction)
	}
}

// Resolve decides what happens when the player at position moves in d.
// It does not modify the grid.
func Resolve(g *Grid, position core.Coord, d core.Direction) Outcome {
	candidate := position.Step(d)
	o := Outcome{
		Kind:      OutcomeRejected,
		Direction: d,
		From:      position,
		To:        position,
	}

	switch {
	case !g.InBounds(candidate):
		o.Reason = ReasonOutOfBounds
	case g.Obstacles.Has(candidate):
		o.Reason = ReasonBlocked
	default:
		o.To = candidate
		o.Bonus = g.Bonuses.Has(candidate)
		o.Kind = OutcomeMoved
		if candidate == g.End {
			o.Kind = OutcomeGoal
		}
	}
	return o
}
