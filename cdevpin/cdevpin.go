// Package cdevpin drives a GPIO output through the Linux GPIO character
// device (/dev/gpiochipN).
//
// Use it for the D/C and RST lines on boards where periph.io cannot reach
// the GPIO registers, such as the Raspberry Pi 5.
package cdevpin

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
	"periph.io/x/conn/v3/gpio"
)

// Consumer is the label the requested lines are registered under.
const Consumer = "ist7920"

// line is the part of *gpiocdev.Line used by Pin.
type line interface {
	SetValue(value int) error
	Close() error
}

// Pin is a single output line.
type Pin struct {
	l      line
	chip   string
	offset int
}

// Open requests the line at offset on chip (e.g. "gpiochip0") as an output
// driven to initial.
func Open(chip string, offset int, initial gpio.Level) (*Pin, error) {
	l, err := gpiocdev.RequestLine(chip, offset,
		gpiocdev.AsOutput(levelValue(initial)),
		gpiocdev.WithConsumer(Consumer))
	if err != nil {
		return nil, fmt.Errorf("cdevpin: failed to request %s:%d: %w", chip, offset, err)
	}
	return &Pin{l: l, chip: chip, offset: offset}, nil
}

// Out drives the line to l.
func (p *Pin) Out(l gpio.Level) error {
	return p.l.SetValue(levelValue(l))
}

// Close releases the line.
func (p *Pin) Close() error {
	return p.l.Close()
}

func (p *Pin) String() string {
	return fmt.Sprintf("%s:%d", p.chip, p.offset)
}

func levelValue(l gpio.Level) int {
	if l == gpio.High {
		return 1
	}
	return 0
}
