package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/vovakirdan/button-maze/internal/core"
)

// ErrInputClosed is returned once the key source reaches EOF.
var ErrInputClosed = errors.New("console: input closed")

// Key bytes outside the printable range.
const (
	keyCtrlC = 0x03
	keyCtrlD = 0x04
	keyEsc   = 0x1b
)

// keyParser turns a byte stream into buttons. Arrow keys arrive as the
// three-byte sequences ESC [ A..D.
type keyParser struct {
	state int // 0 idle, 1 after ESC, 2 after ESC [
}

// feed consumes one byte. It returns the button completed by the byte, if
// any, and whether the byte asks to quit.
func (p *keyParser) feed(c byte) (core.Button, bool) {
	switch p.state {
	case 1:
		if c == '[' || c == 'O' {
			p.state = 2
			return core.ButtonNone, false
		}
		p.state = 0
	case 2:
		p.state = 0
		switch c {
		case 'A':
			return core.ButtonUp, false
		case 'B':
			return core.ButtonDown, false
		case 'C':
			return core.ButtonRight, false
		case 'D':
			return core.ButtonLeft, false
		}
		return core.ButtonNone, false
	}

	switch c {
	case keyEsc:
		p.state = 1
	case keyCtrlC, keyCtrlD, 'q', 'Q':
		return core.ButtonNone, true
	case '1', 'w', 'W', 'k':
		return core.ButtonUp, false
	case '2', 's', 'S', 'j':
		return core.ButtonDown, false
	case '3', 'a', 'A', 'h':
		return core.ButtonLeft, false
	case '4', 'd', 'D', 'l':
		return core.ButtonRight, false
	}
	return core.ButtonNone, false
}

// Keys reads buttons from a byte stream in the background.
// A blocked read cannot be interrupted, so the reader goroutine lives until
// the stream ends or the user quits.
type Keys struct {
	presses chan core.Button
	quit    chan struct{}
	ended   chan struct{}
	err     error

	quitOnce sync.Once
}

// NewKeys starts reading r.
func NewKeys(r io.Reader) *Keys {
	k := &Keys{
		presses: make(chan core.Button),
		quit:    make(chan struct{}),
		ended:   make(chan struct{}),
	}
	go k.read(bufio.NewReader(r))
	return k
}

func (k *Keys) read(r *bufio.Reader) {
	defer close(k.ended)

	var p keyParser
	for {
		c, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				k.err = ErrInputClosed
			} else {
				k.err = fmt.Errorf("console: cannot read keys: %w", err)
			}
			return
		}

		b, isQuit := p.feed(c)
		if isQuit {
			k.quitOnce.Do(func() { close(k.quit) })
			return
		}
		if b == core.ButtonNone {
			continue
		}

		// Typed-ahead keys are delivered in order.
		k.presses <- b
	}
}

// Next waits for the next button.
func (k *Keys) Next(ctx context.Context) (core.Button, error) {
	select {
	case <-ctx.Done():
		return core.ButtonNone, ctx.Err()
	case b := <-k.presses:
		return b, nil
	case <-k.ended:
	}

	if k.err != nil {
		return core.ButtonNone, k.err
	}
	// The user quit; the caller cancels ctx when Done closes.
	<-ctx.Done()
	return core.ButtonNone, ctx.Err()
}

// Done is closed when the user presses q or ctrl+c.
func (k *Keys) Done() <-chan struct{} {
	return k.quit
}
