// Package rpi drives the maze from a Raspberry Pi: four push buttons,
// a green and a red LED and a passive buzzer. The board itself is printed
// to stdout.
package rpi

import (
	"context"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"periph.io/x/conn/v3/gpio"

	"github.com/vovakirdan/button-maze/internal/config"
	"github.com/vovakirdan/button-maze/internal/feedback"
	"github.com/vovakirdan/button-maze/internal/maze"
	"github.com/vovakirdan/button-maze/internal/platform/console"
	"github.com/vovakirdan/button-maze/internal/registry"
)

func init() {
	registry.Register("gpio", "Raspberry Pi buttons, LEDs and buzzer", func(env registry.Env) (registry.Frontend, error) {
		return New(env)
	})
}

// Frontend reads the buttons and plays cues on the LEDs and buzzer.
type Frontend struct {
	*Poller
	*console.Display

	board  *board
	cfg    config.FeedbackConfig
	logger *log.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
	done   chan struct{}

	closeOnce sync.Once
	closeErr  error
}

var _ registry.Frontend = (*Frontend)(nil)

// New claims the configured pins and starts polling the buttons.
func New(env registry.Env) (*Frontend, error) {
	b, err := openBoard(env.Config.GPIO)
	if err != nil {
		return nil, err
	}
	d := console.NewDisplay(os.Stdout, env.Config.Symbols.Palette(), "\n")
	return start(b, d, env), nil
}

func start(b *board, d *console.Display, env registry.Env) *Frontend {
	logger := env.Logger
	if logger == nil {
		logger = log.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	f := &Frontend{
		Poller:  NewPoller(b.buttons, env.Config.GPIO.PollInterval()),
		Display: d,
		board:   b,
		cfg:     env.Config.Feedback,
		logger:  logger,
		cancel:  cancel,
		done:    make(chan struct{}),
	}

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		f.Run(ctx)
	}()
	return f
}

// ShowSelection prints the menu after discarding any press made during the
// last cue, so it cannot pick a difficulty.
func (f *Frontend) ShowSelection(choices []maze.Choice) {
	f.Discard()
	f.Display.ShowSelection(choices)
}

// Success lights the green LED while the melody plays.
func (f *Frontend) Success(ctx context.Context) {
	f.play(ctx, f.board.green, feedback.SuccessCue(f.cfg))
}

// Failure lights the red LED while the warning tone plays.
func (f *Frontend) Failure(ctx context.Context) {
	f.play(ctx, f.board.red, feedback.FailureCue(f.cfg))
}

func (f *Frontend) play(ctx context.Context, led lightPin, cue feedback.Cue) {
	if err := led.Out(gpio.High); err != nil {
		f.logger.Warn("cannot light led", "error", err)
	}
	defer func() {
		if err := f.board.tone(0); err != nil {
			f.logger.Warn("cannot silence buzzer", "error", err)
		}
		if err := led.Out(gpio.Low); err != nil {
			f.logger.Warn("cannot turn off led", "error", err)
		}
	}()

	err := cue.Play(ctx, func(n feedback.Note) {
		if err := f.board.tone(n.Hz); err != nil {
			f.logger.Warn("cannot play note", "hz", n.Hz, "error", err)
		}
	})
	if err != nil {
		f.logger.Debug("cue interrupted", "error", err)
	}
}

// Done is closed by Close. The buttons have no quit gesture; stop the
// program with a signal.
func (f *Frontend) Done() <-chan struct{} {
	return f.done
}

// Close stops polling, turns every output off and releases the pins.
func (f *Frontend) Close() error {
	f.closeOnce.Do(func() {
		f.cancel()
		f.wg.Wait()
		f.closeErr = f.board.off()
		close(f.done)
	})
	return f.closeErr
}
