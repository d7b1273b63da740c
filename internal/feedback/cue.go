// Package feedback describes the tone cues played when a session ends.
// Frontends decide how a note is voiced (buzzer, bell, indicator); the
// timing of a cue lives here so every frontend plays it the same way.
package feedback

import (
	"context"
	"time"

	"github.com/vovakirdan/button-maze/internal/config"
)

// Note is a single tone. Hz 0 is a rest.
type Note struct {
	Hz       int
	Duration time.Duration
}

// Cue is a sequence of notes played in order.
type Cue []Note

// SuccessCue returns the ascending melody played on a win.
func SuccessCue(cfg config.FeedbackConfig) Cue {
	cue := make(Cue, 0, len(cfg.SuccessNotes))
	for _, hz := range cfg.SuccessNotes {
		cue = append(cue, Note{Hz: hz, Duration: cfg.NoteDuration()})
	}
	return cue
}

// FailureCue returns the single warning tone played when moves run out.
func FailureCue(cfg config.FeedbackConfig) Cue {
	return Cue{{Hz: cfg.WarningHz, Duration: cfg.WarningDuration()}}
}

// Duration returns the total length of the cue.
func (c Cue) Duration() time.Duration {
	var total time.Duration
	for _, n := range c {
		total += n.Duration
	}
	return total
}

// Play calls voice at the start of each note and holds it for the note's
// duration. It returns ctx.Err() if cancelled mid-cue.
func (c Cue) Play(ctx context.Context, voice func(Note)) error {
	for _, n := range c {
		if err := ctx.Err(); err != nil {
			return err
		}
		if voice != nil {
			voice(n)
		}
		if err := Hold(ctx, n.Duration); err != nil {
			return err
		}
	}
	return nil
}

// Hold blocks for d or until ctx is done.
func Hold(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
