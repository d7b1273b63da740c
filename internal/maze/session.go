package maze

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/button-maze/internal/core"
	"github.com/vovakirdan/button-maze/internal/records"
)

// State is the lifecycle state of a session.
type State int

const (
	StateRunning State = iota
	StateWon
	StateLostOutOfMoves
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateWon:
		return "won"
	case StateLostOutOfMoves:
		return "out of moves"
	default:
		return "unknown"
	}
}

// Session is one play-through of a single difficulty.
// It is owned by whoever created it and is not safe for concurrent use.
type Session struct {
	ID         string
	Difficulty core.Difficulty

	rules Rules
	grid  *Grid
	now   func() time.Time

	position       core.Coord
	movesRemaining int
	movesUsed      int
	bonusCollected int
	startedAt      time.Time
	finishedAt     time.Time
	state          State
}

// NewSession generates a grid for d and starts the clock.
// now may be nil to use time.Now.
func NewSession(r Rules, d core.Difficulty, rng *rand.Rand, now func() time.Time) (*Session, error) {
	lvl, err := r.Level(d)
	if err != nil {
		return nil, err
	}
	g, err := NewGrid(r, lvl, rng)
	if err != nil {
		return nil, err
	}
	return newSession(r, d, lvl, g, now), nil
}

// NewSessionWithGrid starts a session on a fixed grid.
func NewSessionWithGrid(r Rules, d core.Difficulty, g *Grid, now func() time.Time) (*Session, error) {
	lvl, err := r.Level(d)
	if err != nil {
		return nil, err
	}
	return newSession(r, d, lvl, g.Clone(), now), nil
}

func newSession(r Rules, d core.Difficulty, lvl Level, g *Grid, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{
		ID:             uuid.NewString(),
		Difficulty:     d,
		rules:          r,
		grid:           g,
		now:            now,
		position:       g.Start,
		movesRemaining: lvl.MoveLimit,
		startedAt:      now(),
		state:          StateRunning,
	}
}

// Position returns the player's cell.
func (s *Session) Position() core.Coord { return s.position }

// MovesRemaining returns the move budget.
func (s *Session) MovesRemaining() int { return s.movesRemaining }

// MovesUsed returns the number of accepted moves.
func (s *Session) MovesUsed() int { return s.movesUsed }

// BonusCollected returns the number of bonuses picked up.
func (s *Session) BonusCollected() int { return s.bonusCollected }

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Grid returns a copy of the current layout.
func (s *Session) Grid() *Grid { return s.grid.Clone() }

// Elapsed returns the time from start to the end of the session, or to now while
// running. A session ends at its terminal move; Run extends a win through the
// success cue.
func (s *Session) Elapsed() time.Duration {
	if s.state == StateRunning {
		return s.now().Sub(s.startedAt)
	}
	return s.finishedAt.Sub(s.startedAt)
}

// Move applies one requested move. An accepted move costs one unit of budget
// before any bonus refund. Moves after the session ended are rejected.
func (s *Session) Move(d core.Direction) Outcome {
	if s.state != StateRunning {
		return Outcome{
			Kind:      OutcomeRejected,
			Reason:    ReasonSessionOver,
			Direction: d,
			From:      s.position,
			To:        s.position,
		}
	}

	o := Resolve(s.grid, s.position, d)
	if !o.Accepted() {
		return o
	}

	s.position = o.To
	s.movesUsed++
	s.movesRemaining--
	if o.Bonus {
		s.grid.Bonuses.Remove(o.To)
		s.bonusCollected++
		s.movesRemaining += s.rules.BonusMoveIncrement
	}

	switch {
	case o.Kind == OutcomeGoal:
		s.finish(StateWon)
	case s.movesRemaining <= 0:
		s.finish(StateLostOutOfMoves)
	}
	return o
}

func (s *Session) finish(state State) {
	s.state = state
	s.finishedAt = s.now()
}

// Frame returns the current display state.
func (s *Session) Frame() Frame {
	return Frame{
		Board:          s.grid.Render(s.position, true),
		Difficulty:     s.Difficulty,
		MovesRemaining: s.movesRemaining,
		MovesUsed:      s.movesUsed,
		BonusCollected: s.bonusCollected,
		BonusLeft:      s.grid.Bonuses.Len(),
	}
}

// Record returns the record of a won session.
func (s *Session) Record() (records.Record, bool) {
	if s.state != StateWon {
		return records.Record{}, false
	}
	return records.Record{
		SessionID:      s.ID,
		Difficulty:     s.Difficulty,
		ElapsedSeconds: records.RoundSeconds(s.Elapsed()),
		BonusCount:     s.bonusCollected,
		CompletedAt:    s.finishedAt,
	}, true
}

// Result summarizes a session for display and logging.
type Result struct {
	SessionID      string
	Difficulty     core.Difficulty
	State          State
	MovesUsed      int
	MovesRemaining int
	BonusCollected int
	Elapsed        time.Duration
}

// Won reports whether the session reached the end.
func (r Result) Won() bool { return r.State == StateWon }

// ElapsedSeconds returns the elapsed time rounded to hundredths.
func (r Result) ElapsedSeconds() float64 { return records.RoundSeconds(r.Elapsed) }

// Result returns the current summary.
func (s *Session) Result() Result {
	return Result{
		SessionID:      s.ID,
		Difficulty:     s.Difficulty,
		State:          s.state,
		MovesUsed:      s.movesUsed,
		MovesRemaining: s.movesRemaining,
		BonusCollected: s.bonusCollected,
		Elapsed:        s.Elapsed(),
	}
}

// Run plays the session to a terminal state: show the board, wait for a
// button, move, repeat. A win plays the success cue and appends exactly one
// record, timed until the cue has finished; running out of moves plays the
// failure cue and records nothing.
//
// Cancellation returns ctx.Err() and leaves the store untouched unless the
// session had already been won. A failed append returns ErrRecordNotSaved
// together with the final result.
func (s *Session) Run(ctx context.Context, p Peripherals, store records.Store) (Result, error) {
	for s.state == StateRunning {
		p.Display.ShowFrame(s.Frame())

		b, err := awaitButton(ctx, p.Input)
		if err != nil {
			return s.Result(), err
		}
		d, ok := b.Direction()
		if !ok {
			continue
		}
		p.Display.ShowOutcome(s.Move(d))
	}

	p.Display.ShowFrame(s.Frame())

	switch s.state {
	case StateWon:
		p.Feedback.Success(ctx)
		// A record's time runs until the success cue has played.
		s.finishedAt = s.now()
		res := s.Result()
		p.Display.ShowResult(res)
		rec, _ := s.Record()
		if err := store.Append(rec); err != nil {
			return res, fmt.Errorf("%w: %w", ErrRecordNotSaved, err)
		}
		return res, nil
	case StateLostOutOfMoves:
		p.Feedback.Failure(ctx)
		p.Display.ShowResult(s.Result())
	}
	return s.Result(), nil
}
