package maze

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vovakirdan/button-maze/internal/core"
	"github.com/vovakirdan/button-maze/internal/records"
)

// scriptedInput replays a fixed list of presses. When the script runs out it
// calls onExhausted (usually a context cancel) and waits for ctx.
type scriptedInput struct {
	buttons     []core.Button
	err         error
	onExhausted func()
}

func (in *scriptedInput) Next(ctx context.Context) (core.Button, error) {
	if len(in.buttons) == 0 {
		if in.err != nil {
			return core.ButtonNone, in.err
		}
		if in.onExhausted != nil {
			in.onExhausted()
		}
		<-ctx.Done()
		return core.ButtonNone, ctx.Err()
	}
	b := in.buttons[0]
	in.buttons = in.buttons[1:]
	return b, nil
}

// advancingInput replays presses, advancing a fake clock by step before each.
type advancingInput struct {
	clock   *fakeClock
	step    time.Duration
	buttons []core.Button
}

func (in *advancingInput) Next(ctx context.Context) (core.Button, error) {
	if len(in.buttons) == 0 {
		<-ctx.Done()
		return core.ButtonNone, ctx.Err()
	}
	in.clock.Advance(in.step)
	b := in.buttons[0]
	in.buttons = in.buttons[1:]
	return b, nil
}

func press(dirs ...core.Direction) []core.Button {
	out := make([]core.Button, len(dirs))
	for i, d := range dirs {
		out[i] = core.ButtonFor(d)
	}
	return out
}

func repeat(d core.Direction, n int) []core.Direction {
	out := make([]core.Direction, n)
	for i := range out {
		out[i] = d
	}
	return out
}

type recordingDisplay struct {
	mu         sync.Mutex
	selections int
	frames     []Frame
	outcomes   []Outcome
	results    []Result
	records    [][]records.Record
	errs       []error
}

func (d *recordingDisplay) ShowSelection([]Choice) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selections++
}

func (d *recordingDisplay) ShowFrame(f Frame) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frames = append(d.frames, f)
}

func (d *recordingDisplay) ShowOutcome(o Outcome) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.outcomes = append(d.outcomes, o)
}

func (d *recordingDisplay) ShowResult(r Result) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.results = append(d.results, r)
}

func (d *recordingDisplay) ShowRecords(rs []records.Record) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.records = append(d.records, rs)
}

func (d *recordingDisplay) ShowError(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.errs = append(d.errs, err)
}

type countingFeedback struct {
	success int
	failure int
}

func (f *countingFeedback) Success(context.Context) { f.success++ }
func (f *countingFeedback) Failure(context.Context) { f.failure++ }

// cueFeedback advances a fake clock by the length of each cue.
type cueFeedback struct {
	clock   *fakeClock
	success time.Duration
	failure time.Duration
}

func (f *cueFeedback) Success(context.Context) { f.clock.Advance(f.success) }
func (f *cueFeedback) Failure(context.Context) { f.clock.Advance(f.failure) }

type failingStore struct{}

func (failingStore) Append(records.Record) error { return errors.New("disk full") }
func (failingStore) Sorted() ([]records.Record, error) { return nil, nil }

// fakeClock returns a fixed time that tests advance by hand.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newPeripherals(in Input) (Peripherals, *recordingDisplay, *countingFeedback) {
	display := &recordingDisplay{}
	fb := &countingFeedback{}
	return Peripherals{Input: in, Display: display, Feedback: fb}, display, fb
}
