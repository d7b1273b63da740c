package rpi

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/vovakirdan/button-maze/internal/config"
	"github.com/vovakirdan/button-maze/internal/core"
)

// ErrUnknownPin is returned when a configured pin name is not registered.
var ErrUnknownPin = errors.New("gpio: unknown pin")

// buttonPin is a pulled-up input; a pressed button reads Low.
type buttonPin interface {
	Read() gpio.Level
}

// lightPin drives an LED.
type lightPin interface {
	Out(l gpio.Level) error
}

// tonePin drives a passive buzzer with a square wave.
type tonePin interface {
	Out(l gpio.Level) error
	PWM(duty gpio.Duty, f physic.Frequency) error
}

// board holds every pin the frontend uses.
type board struct {
	buttons map[core.Button]buttonPin
	green   lightPin
	red     lightPin
	buzzer  tonePin

	halt []func() error
}

// openBoard initializes the host drivers and claims the configured pins.
func openBoard(cfg config.GPIOConfig) (_ *board, err error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("gpio: cannot initialize host: %w", err)
	}

	b := &board{buttons: make(map[core.Button]buttonPin, len(core.Buttons))}
	defer func() {
		if err != nil {
			for _, h := range b.halt {
				_ = h()
			}
		}
	}()

	for _, btn := range core.Buttons {
		name := cfg.Buttons.ByButton()[btn]
		p, err := lookup(name)
		if err != nil {
			return nil, err
		}
		if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("gpio: cannot configure button %s on %s: %w", btn, name, err)
		}
		b.buttons[btn] = p
		b.halt = append(b.halt, p.Halt)
	}

	outputs := []struct {
		name string
		set  func(gpio.PinIO)
	}{
		{cfg.GreenLED, func(p gpio.PinIO) { b.green = p }},
		{cfg.RedLED, func(p gpio.PinIO) { b.red = p }},
		{cfg.Buzzer, func(p gpio.PinIO) { b.buzzer = p }},
	}
	for _, o := range outputs {
		p, err := lookup(o.name)
		if err != nil {
			return nil, err
		}
		if err := p.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("gpio: cannot configure output %s: %w", o.name, err)
		}
		o.set(p)
		b.halt = append(b.halt, p.Halt)
	}
	return b, nil
}

func lookup(name string) (gpio.PinIO, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownPin, name)
	}
	return p, nil
}

// tone starts a square wave at hz, or silences the buzzer for hz <= 0.
func (b *board) tone(hz int) error {
	if hz <= 0 {
		return b.buzzer.Out(gpio.Low)
	}
	return b.buzzer.PWM(gpio.DutyHalf, physic.Frequency(hz)*physic.Hertz)
}

// off drives every output low and releases all pins.
func (b *board) off() error {
	errs := []error{
		b.buzzer.Out(gpio.Low),
		b.green.Out(gpio.Low),
		b.red.Out(gpio.Low),
	}
	for _, h := range b.halt {
		errs = append(errs, h())
	}
	return errors.Join(errs...)
}
