package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/button-maze/internal/core"
)

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded defaults differ from Default():\n%+v\n%+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded defaults are invalid: %v", err)
	}
}

func TestDefaultDifficultyTable(t *testing.T) {
	cfg := Default()
	tests := []struct {
		difficulty core.Difficulty
		moveLimit  int
		obstacles  int
	}{
		{core.Easy, 30, 5},
		{core.Normal, 20, 10},
		{core.Hard, 15, 15},
	}

	for _, tt := range tests {
		t.Run(string(tt.difficulty), func(t *testing.T) {
			dc, ok := cfg.Difficulty(tt.difficulty)
			if !ok {
				t.Fatalf("difficulty %s missing", tt.difficulty)
			}
			if dc.MoveLimit != tt.moveLimit || dc.Obstacles != tt.obstacles {
				t.Errorf("got (%d, %d), expected (%d, %d)",
					dc.MoveLimit, dc.Obstacles, tt.moveLimit, tt.obstacles)
			}
		})
	}
}

func TestLoadCustomPathKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.yaml")
	data := []byte("bonus:\n  count: 4\nsymbols:\n  wall: \"#\"\n  bonus: \"+\"\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Bonus.Count != 4 {
		t.Errorf("bonus count = %d, expected 4", cfg.Bonus.Count)
	}
	if cfg.Bonus.MoveIncrement != 5 {
		t.Errorf("move increment = %d, expected default 5", cfg.Bonus.MoveIncrement)
	}
	if cfg.Grid.Width != 20 || cfg.Grid.Height != 10 {
		t.Errorf("grid = %dx%d, expected default 20x10", cfg.Grid.Width, cfg.Grid.Height)
	}

	p := cfg.Symbols.Palette()
	if p.Glyph(core.SymbolWall) != '#' || p.Glyph(core.SymbolBonus) != '+' {
		t.Errorf("palette not overridden: wall=%q bonus=%q", p.Glyph(core.SymbolWall), p.Glyph(core.SymbolBonus))
	}
	if p.Glyph(core.SymbolPlayer) != '@' {
		t.Errorf("player glyph = %q, expected default '@'", p.Glyph(core.SymbolPlayer))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yaml")
	data := []byte("grid:\n  end: { row: 0, col: 0 }\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestLoadRejectsCapitalizedDifficulty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caps.yaml")
	data := []byte("difficulties:\n  Easy: { move_limit: 99, obstacles: 0 }\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for a row that would be ignored, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero width", func(c *Config) { c.Grid.Width = 0 }, "must be positive"},
		{"start outside", func(c *Config) { c.Grid.Start = CellConfig{Row: -1, Col: 0} }, "grid start"},
		{"end outside", func(c *Config) { c.Grid.End = CellConfig{Row: 10, Col: 19} }, "grid end"},
		{"start equals end", func(c *Config) { c.Grid.End = c.Grid.Start }, "both"},
		{"negative bonus", func(c *Config) { c.Bonus.Count = -1 }, "bonus count"},
		{"missing difficulty", func(c *Config) { delete(c.Difficulties, "hard") }, "missing"},
		{"zero move limit", func(c *Config) { c.Difficulties["easy"] = DifficultyConfig{MoveLimit: 0} }, "move limit"},
		{"unknown difficulty", func(c *Config) { c.Difficulties["nightmare"] = DifficultyConfig{MoveLimit: 1} }, "unknown"},
		{"capitalized difficulty", func(c *Config) { c.Difficulties["Easy"] = DifficultyConfig{MoveLimit: 99} }, `must be written as "easy"`},
		{"duplicate glyph", func(c *Config) { c.Symbols.Bonus = "X" }, "share glyph"},
		{"multi-rune glyph", func(c *Config) { c.Symbols.Path = ".." }, "single character"},
		{"bad poll", func(c *Config) { c.GPIO.PollMillis = 0 }, "poll interval"},
		// Capacity is a session-setup concern, not a structural one.
		{"too many obstacles", func(c *Config) { c.Difficulties["hard"] = DifficultyConfig{MoveLimit: 5, Obstacles: 500} }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.want == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.want)
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid: %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "move_limit: 30") {
		t.Errorf("marshalled config missing easy move limit:\n%s", data)
	}
}

func TestDurations(t *testing.T) {
	cfg := Default()
	if cfg.Feedback.NoteDuration().Milliseconds() != 300 {
		t.Errorf("NoteDuration() = %v", cfg.Feedback.NoteDuration())
	}
	if cfg.Feedback.WarningDuration().Seconds() != 1 {
		t.Errorf("WarningDuration() = %v", cfg.Feedback.WarningDuration())
	}
	if cfg.GPIO.PollInterval().Milliseconds() != 100 {
		t.Errorf("PollInterval() = %v", cfg.GPIO.PollInterval())
	}
}
