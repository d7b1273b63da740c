package rpi

import (
	"context"
	"time"

	"periph.io/x/conn/v3/gpio"

	"github.com/vovakirdan/button-maze/internal/core"
)

// Poller samples the buttons at a fixed interval and reports presses on the
// falling edge. Holding a button yields a single press.
type Poller struct {
	pins     map[core.Button]buttonPin
	interval time.Duration
	presses  chan core.Button
	held     map[core.Button]bool
}

// NewPoller creates a poller. The current levels count as already seen,
// so a button held at startup is not reported until it is released.
func NewPoller(pins map[core.Button]buttonPin, interval time.Duration) *Poller {
	p := &Poller{
		pins:     pins,
		interval: interval,
		presses:  make(chan core.Button, 1),
		held:     make(map[core.Button]bool, len(pins)),
	}
	for b, pin := range pins {
		p.held[b] = pin.Read() == gpio.Low
	}
	return p
}

// sample reads every button once and returns the ones newly pressed,
// in button order.
func (p *Poller) sample() []core.Button {
	var pressed []core.Button
	for _, b := range core.Buttons {
		pin, ok := p.pins[b]
		if !ok {
			continue
		}
		down := pin.Read() == gpio.Low
		if down && !p.held[b] {
			pressed = append(pressed, b)
		}
		p.held[b] = down
	}
	return pressed
}

// Run polls until ctx is done.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		for _, b := range p.sample() {
			// At most one press waits for the engine; later ones are dropped.
			select {
			case p.presses <- b:
			default:
			}
		}
	}
}

// Discard drops a press that is waiting for the engine.
func (p *Poller) Discard() {
	for {
		select {
		case <-p.presses:
		default:
			return
		}
	}
}

// Next waits for the next press.
func (p *Poller) Next(ctx context.Context) (core.Button, error) {
	select {
	case <-ctx.Done():
		return core.ButtonNone, ctx.Err()
	case b := <-p.presses:
		return b, nil
	}
}
