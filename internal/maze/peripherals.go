package maze

import (
	"context"
	"fmt"

	"github.com/vovakirdan/button-maze/internal/core"
	"github.com/vovakirdan/button-maze/internal/records"
)

// Input blocks until the next button press. It reports presses, not held
// levels, and returns ctx.Err() when cancelled.
type Input interface {
	Next(ctx context.Context) (core.Button, error)
}

// Display presents engine state. It holds no game state of its own.
type Display interface {
	ShowSelection(choices []Choice)
	ShowFrame(f Frame)
	ShowOutcome(o Outcome)
	ShowResult(r Result)
	ShowRecords(rs []records.Record)
	ShowError(err error)
}

// Feedback plays the end-of-session cues. Calls block until the cue
// finishes or ctx is done.
type Feedback interface {
	Success(ctx context.Context)
	Failure(ctx context.Context)
}

// Peripherals bundles the collaborators the engine drives.
type Peripherals struct {
	Input    Input
	Display  Display
	Feedback Feedback
}

// Frame is what the display shows while a session runs.
type Frame struct {
	Board          core.SymbolGrid
	Difficulty     core.Difficulty
	MovesRemaining int
	MovesUsed      int
	BonusCollected int
	BonusLeft      int
}

// awaitButton waits for a press. Failures other than cancellation are
// reported as ErrInputUnavailable.
func awaitButton(ctx context.Context, in Input) (core.Button, error) {
	b, err := in.Next(ctx)
	if err == nil {
		return b, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return core.ButtonNone, ctxErr
	}
	return core.ButtonNone, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
}
