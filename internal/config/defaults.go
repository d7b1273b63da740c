package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/maze.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  20,
			Height: 10,
			Start:  CellConfig{Row: 0, Col: 0},
			End:    CellConfig{Row: 9, Col: 19},
		},
		Bonus: BonusConfig{
			Count:         3,
			MoveIncrement: 5,
		},
		Difficulties: map[string]DifficultyConfig{
			"easy":   {MoveLimit: 30, Obstacles: 5},
			"normal": {MoveLimit: 20, Obstacles: 10},
			"hard":   {MoveLimit: 15, Obstacles: 15},
		},
		Symbols: SymbolConfig{
			Path:   "*",
			Wall:   "X",
			Bonus:  "#",
			Start:  "S",
			End:    "$",
			Player: "@",
		},
		Feedback: FeedbackConfig{
			SuccessNotes:  []int{261, 294, 329, 349},
			NoteMillis:    300,
			WarningHz:     1000,
			WarningMillis: 1000,
		},
		GPIO: GPIOConfig{
			Buttons: ButtonPins{
				Up:    "GPIO25",
				Down:  "GPIO5",
				Left:  "GPIO12",
				Right: "GPIO20",
			},
			GreenLED:   "GPIO24",
			RedLED:     "GPIO18",
			Buzzer:     "GPIO14",
			PollMillis: 100,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMazeYAML
}
