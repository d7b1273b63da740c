package console

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/button-maze/internal/config"
	"github.com/vovakirdan/button-maze/internal/feedback"
)

// bell is the terminal bell, rung once per note.
const bell = "\a"

// Feedback prints an indicator and rings the terminal bell for each note
// of a cue.
type Feedback struct {
	d      *Display
	cfg    config.FeedbackConfig
	logger *log.Logger
	bell   io.Writer
}

// NewFeedback creates cue feedback on top of d. A nil bell writer keeps the
// terminal quiet.
func NewFeedback(d *Display, cfg config.FeedbackConfig, bellOut io.Writer, logger *log.Logger) *Feedback {
	if bellOut == nil {
		bellOut = io.Discard
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Feedback{d: d, cfg: cfg, logger: logger, bell: bellOut}
}

// Success plays the ascending melody.
func (f *Feedback) Success(ctx context.Context) {
	f.play(ctx, successColor.Sprint("● SUCCESS"), feedback.SuccessCue(f.cfg))
}

// Failure plays the warning tone.
func (f *Feedback) Failure(ctx context.Context) {
	f.play(ctx, failureColor.Sprint("● FAILURE"), feedback.FailureCue(f.cfg))
}

func (f *Feedback) play(ctx context.Context, label string, cue feedback.Cue) {
	notes := make([]string, len(cue))
	for i, n := range cue {
		notes[i] = fmt.Sprintf("%d", n.Hz)
	}
	f.d.ShowText(label + dimColor.Sprintf("  ♪ %s Hz", strings.Join(notes, " ")))

	err := cue.Play(ctx, func(feedback.Note) {
		fmt.Fprint(f.bell, bell)
	})
	if err != nil {
		f.logger.Debug("cue interrupted", "error", err)
	}
}
