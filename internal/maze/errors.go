package maze

import "errors"

var (
	// ErrNotEnoughCells means obstacles or bonuses do not fit on the grid.
	// It is a configuration error surfaced at session setup.
	ErrNotEnoughCells = errors.New("maze: not enough free cells")

	// ErrInputUnavailable means the input source failed. It is fatal.
	ErrInputUnavailable = errors.New("maze: input unavailable")

	// ErrRecordNotSaved means a won session could not be appended to the store.
	ErrRecordNotSaved = errors.New("maze: record not saved")

	// ErrUnknownDifficulty means the rules have no level for a difficulty.
	ErrUnknownDifficulty = errors.New("maze: unknown difficulty")
)
