// Package maze implements the button maze engine: grid generation, move
// resolution, the per-session controller and the selection/play loop.
// It drives its peripherals through narrow interfaces and never knows
// whether buttons are keys, GPIO pins or a test script.
package maze

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/button-maze/internal/core"
	"github.com/vovakirdan/button-maze/internal/records"
)

// Mode is the top-level state of the machine.
type Mode int

const (
	ModeDifficultySelection Mode = iota
	ModeGamePlay
)

func (m Mode) String() string {
	switch m {
	case ModeDifficultySelection:
		return "difficulty selection"
	case ModeGamePlay:
		return "game play"
	default:
		return "unknown"
	}
}

// Machine alternates between difficulty selection and game play until its
// context is cancelled.
type Machine struct {
	rules  Rules
	io     Peripherals
	store  records.Store
	rng    *rand.Rand
	now    func() time.Time
	logger *log.Logger

	mode     Mode
	sessions int

	cleanups    []func() error
	releaseOnce sync.Once
	releaseErr  error
}

// Option configures a Machine.
type Option func(*Machine)

// WithSeed seeds the grid generator. 0 means time based.
func WithSeed(seed int64) Option {
	return func(m *Machine) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand sets the random source used for grid generation.
func WithRand(rng *rand.Rand) Option {
	return func(m *Machine) { m.rng = rng }
}

// WithClock sets the clock used to time sessions.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) { m.now = now }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) { m.logger = l }
}

// WithCleanup registers fn to run when Run returns. Cleanups run once,
// last registered first.
func WithCleanup(fn func() error) Option {
	return func(m *Machine) { m.cleanups = append(m.cleanups, fn) }
}

// NewMachine creates a machine in difficulty selection mode.
func NewMachine(rules Rules, p Peripherals, store records.Store, opts ...Option) *Machine {
	m := &Machine{
		rules: rules,
		io:    p,
		store: store,
		now:   time.Now,
		mode:  ModeDifficultySelection,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	return m
}

// Mode returns the current mode. Like every Machine method it belongs to the
// goroutine that calls Run.
func (m *Machine) Mode() Mode {
	return m.mode
}

// Sessions returns the number of sessions started.
func (m *Machine) Sessions() int {
	return m.sessions
}

func (m *Machine) setMode(mode Mode) {
	m.mode = mode
}

// Run loops until ctx is cancelled or the input fails. Cancellation is a
// clean exit and returns nil; an input failure returns ErrInputUnavailable.
// Registered cleanups run on every exit path.
func (m *Machine) Run(ctx context.Context) (err error) {
	defer func() {
		err = errors.Join(err, m.release())
	}()

	m.logger.Info("maze started", "mode", m.Mode())
	for {
		d, selErr := m.selectDifficulty(ctx)
		if selErr != nil {
			return m.exit(ctx, selErr)
		}
		if playErr := m.play(ctx, d); playErr != nil {
			return m.exit(ctx, playErr)
		}
	}
}

// selectDifficulty blocks until a difficulty button is pressed. The records
// button shows the sorted records and keeps waiting.
func (m *Machine) selectDifficulty(ctx context.Context) (core.Difficulty, error) {
	m.setMode(ModeDifficultySelection)
	choices := m.rules.Choices()

	for {
		m.io.Display.ShowSelection(choices)

		b, err := awaitButton(ctx, m.io.Input)
		if err != nil {
			return "", err
		}
		if b.ViewsRecords() {
			m.showRecords()
			continue
		}
		if d, ok := b.Difficulty(); ok {
			return d, nil
		}
	}
}

func (m *Machine) showRecords() {
	rs, err := m.store.Sorted()
	if err != nil {
		m.logger.Error("cannot read records", "error", err)
		m.io.Display.ShowError(err)
		return
	}
	m.logger.Debug("showing records", "count", len(rs))
	m.io.Display.ShowRecords(rs)
}

// play runs one session. Setup errors and unsaved records are reported and
// the machine goes back to selection; only input failures and cancellation
// are returned.
func (m *Machine) play(ctx context.Context, d core.Difficulty) error {
	m.setMode(ModeGamePlay)
	defer m.setMode(ModeDifficultySelection)

	s, err := NewSession(m.rules, d, m.rng, m.now)
	if err != nil {
		m.logger.Error("cannot start session", "difficulty", d, "error", err)
		m.io.Display.ShowError(err)
		return nil
	}

	m.sessions++

	lvl, _ := m.rules.Level(d)
	m.logger.Info("session started",
		"session", s.ID,
		"difficulty", d,
		"moves", lvl.MoveLimit,
		"obstacles", lvl.Obstacles)

	res, err := s.Run(ctx, m.io, m.store)
	switch {
	case errors.Is(err, ErrRecordNotSaved):
		m.logger.Warn("record not saved", "session", s.ID, "error", err)
		m.io.Display.ShowError(err)
	case err != nil:
		m.logger.Info("session abandoned", "session", s.ID, "moves_used", res.MovesUsed)
		return err
	}

	m.logger.Info("session finished",
		"session", s.ID,
		"difficulty", d,
		"state", res.State,
		"moves_used", res.MovesUsed,
		"bonus", res.BonusCollected,
		"elapsed", res.ElapsedSeconds())
	return nil
}

func (m *Machine) exit(ctx context.Context, err error) error {
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		m.logger.Info("maze shutting down", "sessions", m.Sessions())
		return nil
	}
	m.logger.Error("maze stopped", "error", err)
	return err
}

// release runs the cleanups once, last registered first.
func (m *Machine) release() error {
	m.releaseOnce.Do(func() {
		var errs []error
		for i := len(m.cleanups) - 1; i >= 0; i-- {
			if err := m.cleanups[i](); err != nil {
				m.logger.Warn("cleanup failed", "error", err)
				errs = append(errs, err)
			}
		}
		m.releaseErr = errors.Join(errs...)
	})
	return m.releaseErr
}
