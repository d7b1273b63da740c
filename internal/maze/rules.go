package maze

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/button-maze/internal/config"
	"github.com/vovakirdan/button-maze/internal/core"
)

// Level is the fixed move budget and obstacle count of one difficulty.
type Level struct {
	MoveLimit int
	Obstacles int
}

// Rules is the immutable game table shared by every session.
type Rules struct {
	Width              int
	Height             int
	Start              core.Coord
	End                core.Coord
	BonusCount         int
	BonusMoveIncrement int
	Levels             map[core.Difficulty]Level
}

// DefaultRules returns the standard 20x10 table.
func DefaultRules() Rules {
	return Rules{
		Width:              20,
		Height:             10,
		Start:              core.C(0, 0),
		End:                core.C(9, 19),
		BonusCount:         3,
		BonusMoveIncrement: 5,
		Levels: map[core.Difficulty]Level{
			core.Easy:   {MoveLimit: 30, Obstacles: 5},
			core.Normal: {MoveLimit: 20, Obstacles: 10},
			core.Hard:   {MoveLimit: 15, Obstacles: 15},
		},
	}
}

// RulesFromConfig builds rules from a loaded configuration.
func RulesFromConfig(cfg config.Config) (Rules, error) {
	if err := cfg.Validate(); err != nil {
		return Rules{}, fmt.Errorf("maze: invalid config: %w", err)
	}

	r := Rules{
		Width:              cfg.Grid.Width,
		Height:             cfg.Grid.Height,
		Start:              cfg.Grid.Start.Coord(),
		End:                cfg.Grid.End.Coord(),
		BonusCount:         cfg.Bonus.Count,
		BonusMoveIncrement: cfg.Bonus.MoveIncrement,
		Levels:             make(map[core.Difficulty]Level, len(core.Difficulties)),
	}
	for _, d := range core.Difficulties {
		dc, _ := cfg.Difficulty(d)
		r.Levels[d] = Level{MoveLimit: dc.MoveLimit, Obstacles: dc.Obstacles}
	}
	return r, r.Validate()
}

// Level returns the level for d.
func (r Rules) Level(d core.Difficulty) (Level, error) {
	lvl, ok := r.Levels[d]
	if !ok {
		return Level{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, d)
	}
	return lvl, nil
}

// Validate checks the structural invariants of the table.
// Capacity is checked by the generator when a session is set up.
func (r Rules) Validate() error {
	var errs []error
	if r.Width <= 0 || r.Height <= 0 {
		errs = append(errs, fmt.Errorf("maze: grid size %dx%d must be positive", r.Width, r.Height))
	}
	if !r.Start.In(r.Width, r.Height) || !r.End.In(r.Width, r.Height) {
		errs = append(errs, fmt.Errorf("maze: start %v and end %v must lie inside the grid", r.Start, r.End))
	}
	if r.Start == r.End {
		errs = append(errs, fmt.Errorf("maze: start and end are both %v", r.Start))
	}
	if r.BonusCount < 0 || r.BonusMoveIncrement < 0 {
		errs = append(errs, fmt.Errorf("maze: bonus count and increment must not be negative"))
	}
	for d, lvl := range r.Levels {
		if lvl.MoveLimit <= 0 {
			errs = append(errs, fmt.Errorf("maze: %s move limit %d must be positive", d, lvl.MoveLimit))
		}
		if lvl.Obstacles < 0 {
			errs = append(errs, fmt.Errorf("maze: %s obstacle count %d is negative", d, lvl.Obstacles))
		}
	}
	return errors.Join(errs...)
}

// Choice is one entry of the difficulty selection screen.
type Choice struct {
	Button core.Button
	Label  string

	// Difficulty is empty for the records entry.
	Difficulty core.Difficulty
	Level      Level
}

// Choices lists what each button does in selection mode, in button order.
func (r Rules) Choices() []Choice {
	choices := make([]Choice, 0, len(core.Buttons))
	for _, b := range core.Buttons {
		if d, ok := b.Difficulty(); ok {
			choices = append(choices, Choice{
				Button:     b,
				Label:      d.Title(),
				Difficulty: d,
				Level:      r.Levels[d],
			})
			continue
		}
		if b.ViewsRecords() {
			choices = append(choices, Choice{Button: b, Label: "Records"})
		}
	}
	return choices
}
