// Package cdev exposes Linux GPIO character device lines as periph.io
// gpio.PinOut pins.
//
// It exists for platforms that expose their GPIO controller only
// through /dev/gpiochip* (such as the Raspberry Pi 5), where the
// memory-mapped backends behind periph.io's host registry are not
// available. Lines opened here plug straight into tm1637.New.
package cdev

import (
	"errors"
	"fmt"

	"github.com/warthog618/go-gpiocdev"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

const consumer = "tm1637"

// Pin is an output line requested from a GPIO character device. It
// implements gpio.PinOut.
type Pin struct {
	line   *gpiocdev.Line
	chip   string
	offset int
}

// OpenPin requests the line with the given offset as an output with
// initial level low, scanning the system's GPIO chips in order and
// using the first one that carries the offset.
func OpenPin(offset int) (*Pin, error) {
	for _, name := range gpiocdev.Chips() {
		c, err := gpiocdev.NewChip(name)
		if err != nil {
			continue
		}
		lines := c.Lines()
		c.Close()
		if offset < lines {
			return OpenPinOnChip(name, offset)
		}
	}
	return nil, fmt.Errorf("cdev: no gpiochip with line offset %d", offset)
}

// OpenPinOnChip requests the line with the given offset on a specific
// chip, e.g. "gpiochip0", as an output with initial level low.
func OpenPinOnChip(chip string, offset int) (*Pin, error) {
	l, err := gpiocdev.RequestLine(chip, offset,
		gpiocdev.AsOutput(0),
		gpiocdev.WithConsumer(consumer))
	if err != nil {
		return nil, fmt.Errorf("cdev: requesting %s line %d: %w", chip, offset, err)
	}
	return &Pin{line: l, chip: chip, offset: offset}, nil
}

// Name returns the chip-qualified line name.
func (p *Pin) Name() string {
	return fmt.Sprintf("%s/%d", p.chip, p.offset)
}

// Number returns the line offset on its chip.
func (p *Pin) Number() int {
	return p.offset
}

func (p *Pin) String() string {
	return fmt.Sprintf("cdev.Pin{%s}", p.Name())
}

// Function returns the pin function, always "Out".
func (p *Pin) Function() string {
	return "Out"
}

// Out sets the line level. The character device write is synchronous;
// the level is applied before Out returns.
func (p *Pin) Out(l gpio.Level) error {
	v := 0
	if l {
		v = 1
	}
	return p.line.SetValue(v)
}

// PWM is not supported on character device lines.
func (p *Pin) PWM(gpio.Duty, physic.Frequency) error {
	return errors.New("cdev: pwm not supported")
}

// Halt drives the line low.
func (p *Pin) Halt() error {
	return p.Out(gpio.Low)
}

// Close releases the line back to the kernel. The Pin must not be
// used afterwards.
func (p *Pin) Close() error {
	return p.line.Close()
}

var _ gpio.PinOut = &Pin{}
