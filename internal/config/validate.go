package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/button-maze/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid value")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate reports structural problems in the configuration.
// Whether obstacles and bonuses fit on the grid is checked when a session is set up.
func (c Config) Validate() error {
	var errs []error

	g := c.Grid
	if g.Width <= 0 || g.Height <= 0 {
		errs = append(errs, invalid("grid size %dx%d must be positive", g.Width, g.Height))
	} else {
		if !g.Start.Coord().In(g.Width, g.Height) {
			errs = append(errs, invalid("grid start %v outside %dx%d", g.Start.Coord(), g.Width, g.Height))
		}
		if !g.End.Coord().In(g.Width, g.Height) {
			errs = append(errs, invalid("grid end %v outside %dx%d", g.End.Coord(), g.Width, g.Height))
		}
	}
	if g.Start == g.End {
		errs = append(errs, invalid("grid start and end are both %v", g.Start.Coord()))
	}

	if c.Bonus.Count < 0 {
		errs = append(errs, invalid("bonus count %d is negative", c.Bonus.Count))
	}
	if c.Bonus.MoveIncrement < 0 {
		errs = append(errs, invalid("bonus move increment %d is negative", c.Bonus.MoveIncrement))
	}

	for _, d := range core.Difficulties {
		dc, ok := c.Difficulty(d)
		if !ok {
			errs = append(errs, invalid("difficulty %q is missing", d))
			continue
		}
		if dc.MoveLimit <= 0 {
			errs = append(errs, invalid("difficulty %q move limit %d must be positive", d, dc.MoveLimit))
		}
		if dc.Obstacles < 0 {
			errs = append(errs, invalid("difficulty %q obstacle count %d is negative", d, dc.Obstacles))
		}
	}
	for name := range c.Difficulties {
		d, err := core.ParseDifficulty(name)
		switch {
		case err != nil:
			errs = append(errs, invalid("unknown difficulty %q", name))
		case string(d) != name:
			// Rows are looked up by their exact key.
			errs = append(errs, invalid("difficulty %q must be written as %q", name, d))
		}
	}

	errs = append(errs, c.Symbols.validate()...)

	f := c.Feedback
	for i, hz := range f.SuccessNotes {
		if hz <= 0 {
			errs = append(errs, invalid("success note %d frequency %d must be positive", i, hz))
		}
	}
	if f.NoteMillis < 0 || f.WarningMillis < 0 {
		errs = append(errs, invalid("feedback durations must not be negative"))
	}
	if f.WarningHz <= 0 {
		errs = append(errs, invalid("warning frequency %d must be positive", f.WarningHz))
	}

	if c.GPIO.PollMillis <= 0 {
		errs = append(errs, invalid("gpio poll interval %dms must be positive", c.GPIO.PollMillis))
	}

	return errors.Join(errs...)
}

func (s SymbolConfig) validate() []error {
	var errs []error
	seen := make(map[rune]core.Symbol)
	for _, sym := range core.Symbols {
		glyph := s.bySymbol()[sym]
		if utf8.RuneCountInString(glyph) != 1 {
			errs = append(errs, invalid("symbol %s glyph %q must be a single character", sym, glyph))
			continue
		}
		r, _ := utf8.DecodeRuneInString(glyph)
		if other, dup := seen[r]; dup {
			errs = append(errs, invalid("symbols %s and %s share glyph %q", other, sym, glyph))
			continue
		}
		seen[r] = sym
	}
	return errs
}
