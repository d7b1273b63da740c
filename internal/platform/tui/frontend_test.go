package tui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/button-maze/internal/config"
	"github.com/vovakirdan/button-maze/internal/core"
	"github.com/vovakirdan/button-maze/internal/maze"
)

type captured struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (c *captured) send(msg tea.Msg) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, msg)
}

func fastFeedback() config.FeedbackConfig {
	return config.FeedbackConfig{
		SuccessNotes:  []int{261, 294, 329, 349},
		NoteMillis:    1,
		WarningHz:     1000,
		WarningMillis: 1,
	}
}

func TestFrontendNext(t *testing.T) {
	f := newFrontend(fastFeedback(), nil)
	f.presses <- core.ButtonLeft

	b, err := f.Next(context.Background())
	if err != nil || b != core.ButtonLeft {
		t.Errorf("Next() = %s, %v", b, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := f.Next(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Next() on cancelled ctx = %v", err)
	}
}

func TestFrontendNextAfterQuitWaitsForCancel(t *testing.T) {
	f := newFrontend(fastFeedback(), nil)
	close(f.done)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := f.Next(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Next() after quit = %v, expected ctx error", err)
	}
}

func TestFrontendNextAfterProgramFailure(t *testing.T) {
	f := newFrontend(fastFeedback(), nil)
	f.runErr = errors.New("tty lost")
	close(f.done)

	if _, err := f.Next(context.Background()); err == nil || err.Error() != "tty lost" {
		t.Errorf("Next() = %v, expected program error", err)
	}
}

func TestFrontendDisplaySendsMessages(t *testing.T) {
	c := &captured{}
	f := newFrontend(fastFeedback(), nil)
	f.send = c.send

	f.ShowSelection(nil)
	f.ShowFrame(maze.Frame{})
	f.ShowOutcome(maze.Outcome{})
	f.ShowResult(maze.Result{})
	f.ShowRecords(nil)
	f.ShowError(errors.New("x"))

	if len(c.msgs) != 6 {
		t.Fatalf("sent %d messages, expected 6", len(c.msgs))
	}
	if _, ok := c.msgs[0].(selectionMsg); !ok {
		t.Errorf("first message = %T", c.msgs[0])
	}
	if _, ok := c.msgs[5].(errorMsg); !ok {
		t.Errorf("last message = %T", c.msgs[5])
	}
}

func TestFrontendSuccessCue(t *testing.T) {
	c := &captured{}
	f := newFrontend(fastFeedback(), nil)
	f.send = c.send

	f.Success(context.Background())

	// Four notes, then the indicator goes off.
	if len(c.msgs) != 5 {
		t.Fatalf("sent %d messages, expected 5", len(c.msgs))
	}
	for i, hz := range []int{261, 294, 329, 349} {
		msg := c.msgs[i].(cueMsg)
		if msg.kind != indicatorSuccess || msg.note.Hz != hz {
			t.Errorf("message %d = %+v", i, msg)
		}
	}
	if last := c.msgs[4].(cueMsg); last.kind != indicatorOff {
		t.Errorf("last message = %+v, expected indicator off", last)
	}
}

func TestFrontendFailureCueCancelled(t *testing.T) {
	c := &captured{}
	f := newFrontend(config.FeedbackConfig{WarningHz: 1000, WarningMillis: 60_000}, nil)
	f.send = c.send

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	f.Failure(ctx)
	if time.Since(start) > 5*time.Second {
		t.Fatal("Failure() did not stop on cancellation")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if last := c.msgs[len(c.msgs)-1].(cueMsg); last.kind != indicatorOff {
		t.Error("indicator left on after cancellation")
	}
}

func TestFrontendCloseWithoutProgram(t *testing.T) {
	f := newFrontend(fastFeedback(), nil)
	if err := f.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
}

func TestFrontendSelectionDiscardsQueuedPress(t *testing.T) {
	c := &captured{}
	f := newFrontend(fastFeedback(), nil)
	f.send = c.send

	// Pressed while the success cue was playing.
	f.presses <- core.ButtonUp
	f.ShowSelection(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if b, err := f.Next(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Next() = %s, %v, expected the stale press to be discarded", b, err)
	}
	if len(c.msgs) != 1 {
		t.Errorf("%d messages sent, expected the selection", len(c.msgs))
	}
}
