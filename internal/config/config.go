// Package config provides YAML-based configuration loading for the maze:
// grid layout, difficulty table, glyphs, feedback cues and GPIO wiring.
package config

import (
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/button-maze/internal/core"
)

// Config contains the full maze configuration.
type Config struct {
	Grid         GridConfig                  `yaml:"grid"`
	Bonus        BonusConfig                 `yaml:"bonus"`
	Difficulties map[string]DifficultyConfig `yaml:"difficulties"`
	Symbols      SymbolConfig                `yaml:"symbols"`
	Feedback     FeedbackConfig              `yaml:"feedback"`
	GPIO         GPIOConfig                  `yaml:"gpio"`
}

// CellConfig is a grid coordinate in YAML form.
type CellConfig struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Coord converts the cell to a core.Coord.
func (c CellConfig) Coord() core.Coord {
	return core.C(c.Row, c.Col)
}

// GridConfig defines the board dimensions and fixed endpoints.
type GridConfig struct {
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Start  CellConfig `yaml:"start"`
	End    CellConfig `yaml:"end"`
}

// BonusConfig defines the collectible bonus cells.
type BonusConfig struct {
	Count         int `yaml:"count"`          // Bonus cells generated per session
	MoveIncrement int `yaml:"move_increment"` // Moves granted per collected bonus
}

// DifficultyConfig is one row of the difficulty table.
type DifficultyConfig struct {
	MoveLimit int `yaml:"move_limit"`
	Obstacles int `yaml:"obstacles"`
}

// SymbolConfig holds the single-character glyph for each board symbol.
type SymbolConfig struct {
	Path   string `yaml:"path"`
	Wall   string `yaml:"wall"`
	Bonus  string `yaml:"bonus"`
	Start  string `yaml:"start"`
	End    string `yaml:"end"`
	Player string `yaml:"player"`
}

// Palette converts the glyph strings to a core.Palette.
// Empty strings fall back to the default glyph for that symbol.
func (s SymbolConfig) Palette() core.Palette {
	p := core.DefaultPalette()
	for sym, glyph := range s.bySymbol() {
		if r, size := utf8.DecodeRuneInString(glyph); size > 0 && r != utf8.RuneError {
			p[sym] = r
		}
	}
	return p
}

func (s SymbolConfig) bySymbol() map[core.Symbol]string {
	return map[core.Symbol]string{
		core.SymbolPath:   s.Path,
		core.SymbolWall:   s.Wall,
		core.SymbolBonus:  s.Bonus,
		core.SymbolStart:  s.Start,
		core.SymbolEnd:    s.End,
		core.SymbolPlayer: s.Player,
	}
}

// FeedbackConfig defines the success melody and failure warning tone.
type FeedbackConfig struct {
	SuccessNotes  []int `yaml:"success_notes_hz"` // Played in order, ascending
	NoteMillis    int   `yaml:"note_ms"`          // Duration of each success note
	WarningHz     int   `yaml:"warning_hz"`
	WarningMillis int   `yaml:"warning_ms"`
}

// NoteDuration returns the length of one success note.
func (f FeedbackConfig) NoteDuration() time.Duration {
	return time.Duration(f.NoteMillis) * time.Millisecond
}

// WarningDuration returns the length of the failure tone.
func (f FeedbackConfig) WarningDuration() time.Duration {
	return time.Duration(f.WarningMillis) * time.Millisecond
}

// GPIOConfig maps the hardware frontend onto Raspberry Pi pins (periph names).
type GPIOConfig struct {
	Buttons    ButtonPins `yaml:"buttons"`
	GreenLED   string     `yaml:"green_led"`
	RedLED     string     `yaml:"red_led"`
	Buzzer     string     `yaml:"buzzer"`
	PollMillis int        `yaml:"poll_ms"`
}

// ButtonPins names the pin of each of the four buttons.
type ButtonPins struct {
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// ByButton returns the pin name for every button.
func (b ButtonPins) ByButton() map[core.Button]string {
	return map[core.Button]string{
		core.ButtonUp:    b.Up,
		core.ButtonDown:  b.Down,
		core.ButtonLeft:  b.Left,
		core.ButtonRight: b.Right,
	}
}

// PollInterval returns the button sampling interval.
func (g GPIOConfig) PollInterval() time.Duration {
	return time.Duration(g.PollMillis) * time.Millisecond
}

// Difficulty returns the table row for d.
func (c Config) Difficulty(d core.Difficulty) (DifficultyConfig, bool) {
	dc, ok := c.Difficulties[string(d)]
	return dc, ok
}
