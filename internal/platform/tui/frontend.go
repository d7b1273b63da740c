// Package tui provides the Bubble Tea frontend of the maze.
// Keyboard keys stand in for the four buttons, the board is drawn with
// lipgloss, and cues light an on-screen indicator.
package tui

import (
	"context"
	"errors"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/button-maze/internal/config"
	"github.com/vovakirdan/button-maze/internal/core"
	"github.com/vovakirdan/button-maze/internal/feedback"
	"github.com/vovakirdan/button-maze/internal/maze"
	"github.com/vovakirdan/button-maze/internal/records"
	"github.com/vovakirdan/button-maze/internal/registry"
)

// ErrNotTerminal is returned when stdout is not a terminal.
var ErrNotTerminal = errors.New("tui: stdout is not a terminal")

func init() {
	registry.Register("tui", "Terminal UI (Bubble Tea)", func(env registry.Env) (registry.Frontend, error) {
		return New(env)
	})
}

// Frontend runs a Bubble Tea program in the background and bridges it to
// the engine's blocking calls.
type Frontend struct {
	cfg     config.FeedbackConfig
	logger  *log.Logger
	send    func(tea.Msg)
	presses chan core.Button

	program *tea.Program
	done    chan struct{}
	runErr  error

	closeOnce sync.Once
}

var _ registry.Frontend = (*Frontend)(nil)

// New starts the terminal UI on the alternate screen.
func New(env registry.Env) (*Frontend, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, ErrNotTerminal
	}

	f := newFrontend(env.Config.Feedback, env.Logger)
	model := NewModel(f.presses, env.Config.Symbols.Palette())

	f.program = tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)
	f.send = f.program.Send

	go func() {
		defer close(f.done)
		if _, err := f.program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			f.runErr = err
			f.logger.Error("terminal UI stopped", "error", err)
		}
	}()

	return f, nil
}

// newFrontend wires everything except the program, so tests can capture
// messages with their own send func.
func newFrontend(cfg config.FeedbackConfig, logger *log.Logger) *Frontend {
	if logger == nil {
		logger = log.Default()
	}
	return &Frontend{
		cfg:     cfg,
		logger:  logger,
		send:    func(tea.Msg) {},
		presses: make(chan core.Button, 1),
		done:    make(chan struct{}),
	}
}

// Next waits for a key press mapped to a button.
func (f *Frontend) Next(ctx context.Context) (core.Button, error) {
	select {
	case <-ctx.Done():
		return core.ButtonNone, ctx.Err()
	case b := <-f.presses:
		return b, nil
	case <-f.done:
		if f.runErr != nil {
			return core.ButtonNone, f.runErr
		}
		// The user quit; the caller cancels ctx when Done closes.
		<-ctx.Done()
		return core.ButtonNone, ctx.Err()
	}
}

// Done is closed when the program exits, normally because the user pressed q.
func (f *Frontend) Done() <-chan struct{} {
	return f.done
}

func (f *Frontend) ShowFrame(fr maze.Frame) { f.send(frameMsg{frame: fr}) }
func (f *Frontend) ShowOutcome(o maze.Outcome) { f.send(outcomeMsg{outcome: o}) }
func (f *Frontend) ShowResult(r maze.Result) { f.send(resultMsg{result: r}) }
func (f *Frontend) ShowRecords(rs []records.Record) { f.send(recordsMsg{records: rs}) }
func (f *Frontend) ShowError(err error) { f.send(errorMsg{err: err}) }

// ShowSelection opens the difficulty menu. A press queued while the engine
// was busy with the last cue is discarded so it cannot pick a difficulty.
func (f *Frontend) ShowSelection(choices []maze.Choice) {
	f.discardPresses()
	f.send(selectionMsg{choices: choices})
}

func (f *Frontend) discardPresses() {
	for {
		select {
		case <-f.presses:
		default:
			return
		}
	}
}

// Success lights the success indicator while the melody plays.
func (f *Frontend) Success(ctx context.Context) {
	f.play(ctx, indicatorSuccess, feedback.SuccessCue(f.cfg))
}

// Failure lights the failure indicator while the warning tone plays.
func (f *Frontend) Failure(ctx context.Context) {
	f.play(ctx, indicatorFailure, feedback.FailureCue(f.cfg))
}

func (f *Frontend) play(ctx context.Context, kind indicator, cue feedback.Cue) {
	defer f.send(cueMsg{kind: indicatorOff})

	err := cue.Play(ctx, func(n feedback.Note) {
		f.send(cueMsg{kind: kind, note: n})
	})
	if err != nil {
		f.logger.Debug("cue interrupted", "error", err)
	}
}

// Close stops the program and restores the terminal.
func (f *Frontend) Close() error {
	f.closeOnce.Do(func() {
		if f.program != nil {
			f.program.Quit()
			<-f.done
		}
	})
	return f.runErr
}
