package core

import (
	"fmt"
	"strings"
)

// Difficulty is a named difficulty level.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Normal Difficulty = "normal"
	Hard   Difficulty = "hard"
)

// Difficulties lists the levels in menu order.
var Difficulties = []Difficulty{Easy, Normal, Hard}

// ParseDifficulty converts a case-insensitive name into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case Easy, Normal, Hard:
		return d, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	return d == Easy || d == Normal || d == Hard
}

// Title returns the capitalized display name.
func (d Difficulty) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// Button returns the selection button for the difficulty.
func (d Difficulty) Button() Button {
	switch d {
	case Easy:
		return ButtonUp
	case Normal:
		return ButtonDown
	case Hard:
		return ButtonLeft
	default:
		return ButtonNone
	}
}
