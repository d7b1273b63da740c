package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/button-maze/internal/registry"
)

func init() {
	registry.Register("console", "Plain console (raw keys, colored text)", func(env registry.Env) (registry.Frontend, error) {
		return New(env)
	})
}

// Frontend reads keys from stdin and prints to stdout.
type Frontend struct {
	*Keys
	*Display
	*Feedback

	logger  *log.Logger
	restore func() error

	closeOnce sync.Once
	closeErr  error
}

var _ registry.Frontend = (*Frontend)(nil)

// New puts stdin in raw mode when it is a terminal, so single key presses
// arrive without Enter. Piped input is read as is, which allows scripted play.
func New(env registry.Env) (*Frontend, error) {
	fd := int(os.Stdin.Fd())
	restore := func() error { return nil }
	eol := "\n"

	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return nil, fmt.Errorf("console: cannot enter raw mode: %w", err)
		}
		restore = func() error { return term.Restore(fd, oldState) }
		eol = "\r\n"
	}

	f := newFrontend(env, os.Stdin, os.Stdout, os.Stdout, eol)
	f.restore = restore
	f.ShowText("Keys: 1-4, wasd or arrows. q quits.")
	return f, nil
}

func newFrontend(env registry.Env, in io.Reader, out, bellOut io.Writer, eol string) *Frontend {
	logger := env.Logger
	if logger == nil {
		logger = log.Default()
	}
	d := NewDisplay(out, env.Config.Symbols.Palette(), eol)
	return &Frontend{
		Keys:     NewKeys(in),
		Display:  d,
		Feedback: NewFeedback(d, env.Config.Feedback, bellOut, logger),
		logger:   logger,
		restore:  func() error { return nil },
	}
}

// Close restores the terminal mode.
func (f *Frontend) Close() error {
	f.closeOnce.Do(func() {
		if err := f.restore(); err != nil {
			f.closeErr = fmt.Errorf("console: cannot restore terminal: %w", err)
		}
	})
	return f.closeErr
}
