package maze

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/button-maze/internal/core"
)

func TestResolve(t *testing.T) {
	g, err := NewGridWithCells(smallRules(),
		[]core.Coord{core.C(0, 1)},
		[]core.Coord{core.C(1, 0)})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		from     core.Coord
		dir      core.Direction
		wantKind OutcomeKind
		wantWhy  Reason
		wantTo   core.Coord
		bonus    bool
	}{
		{"off the top", core.C(0, 0), core.DirUp, OutcomeRejected, ReasonOutOfBounds, core.C(0, 0), false},
		{"off the left", core.C(0, 0), core.DirLeft, OutcomeRejected, ReasonOutOfBounds, core.C(0, 0), false},
		{"off the right", core.C(1, 2), core.DirRight, OutcomeRejected, ReasonOutOfBounds, core.C(1, 2), false},
		{"off the bottom", core.C(2, 0), core.DirDown, OutcomeRejected, ReasonOutOfBounds, core.C(2, 0), false},
		{"into a wall", core.C(0, 0), core.DirRight, OutcomeRejected, ReasonBlocked, core.C(0, 0), false},
		{"onto a bonus", core.C(0, 0), core.DirDown, OutcomeMoved, ReasonNone, core.C(1, 0), true},
		{"plain move", core.C(1, 1), core.DirRight, OutcomeMoved, ReasonNone, core.C(1, 2), false},
		{"goal", core.C(2, 1), core.DirRight, OutcomeGoal, ReasonNone, core.C(2, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Resolve(g, tt.from, tt.dir)
			if o.Kind != tt.wantKind || o.Reason != tt.wantWhy {
				t.Errorf("got %s/%s, expected %s/%s", o.Kind, o.Reason, tt.wantKind, tt.wantWhy)
			}
			if o.To != tt.wantTo {
				t.Errorf("To = %v, expected %v", o.To, tt.wantTo)
			}
			if o.From != tt.from || o.Direction != tt.dir {
				t.Errorf("From/Direction = %v/%v", o.From, o.Direction)
			}
			if o.Bonus != tt.bonus {
				t.Errorf("Bonus = %v, expected %v", o.Bonus, tt.bonus)
			}
		})
	}

	// Resolve is pure.
	if !g.Bonuses.Has(core.C(1, 0)) {
		t.Error("Resolve() removed a bonus")
	}
}

func TestResolveNeverLeavesGrid(t *testing.T) {
	rules := DefaultRules()
	for _, d := range core.Difficulties {
		lvl, _ := rules.Level(d)
		g, err := NewGrid(rules, lvl, rand.New(rand.NewSource(7)))
		if err != nil {
			t.Fatal(err)
		}
		for row := 0; row < g.Height; row++ {
			for col := 0; col < g.Width; col++ {
				for _, dir := range core.Directions {
					o := Resolve(g, core.C(row, col), dir)
					if !g.InBounds(o.To) {
						t.Fatalf("%s from %v: landed on %v", dir, core.C(row, col), o.To)
					}
					if o.Accepted() && g.Obstacles.Has(o.To) {
						t.Fatalf("%s from %v: moved into a wall", dir, core.C(row, col))
					}
				}
			}
		}
	}
}

func TestBudgetDelta(t *testing.T) {
	tests := []struct {
		name string
		o    Outcome
		want int
	}{
		{"rejected", Outcome{Kind: OutcomeRejected, Reason: ReasonBlocked}, 0},
		{"moved", Outcome{Kind: OutcomeMoved}, -1},
		{"goal", Outcome{Kind: OutcomeGoal}, -1},
		{"bonus", Outcome{Kind: OutcomeMoved, Bonus: true}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.o.BudgetDelta(5); got != tt.want {
				t.Errorf("BudgetDelta(5) = %d, expected %d", got, tt.want)
			}
		})
	}
}

func TestOutcomeString(t *testing.T) {
	blocked := Outcome{Kind: OutcomeRejected, Reason: ReasonBlocked, Direction: core.DirLeft}
	if got := blocked.String(); got != "Blocked! Can't move left." {
		t.Errorf("String() = %q", got)
	}
	if got := (Outcome{Kind: OutcomeGoal}).String(); got != "You reached the end!" {
		t.Errorf("String() = %q", got)
	}
}
