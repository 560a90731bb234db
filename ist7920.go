// Package ist7920 controls an IST7920 monochrome LCD controller.
//
// The IST7920 drives a 128x128 dot matrix with one bit per pixel. Pixel RAM
// is organized in 16 bands of 8 rows; each data byte fills one column of a
// band, least significant bit on top.
//
// See the examples for how to use this package.
package ist7920

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/flavioheleno/ist7920/image1bit"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// Display geometry in pixels.
const (
	Width  = 128
	Height = 128

	// bufferSize is the size of a full frame: one bit per pixel.
	bufferSize = Width * Height / 8
)

// Transport carries bytes to the controller.
//
// The controller tells instructions and pixel data apart by the D/C line;
// implementations drive it accordingly. A Transport may also implement
// conn.Limits to report the largest single data transfer it supports.
type Transport interface {
	SendCommands(cmds []byte) error
	SendData(data []byte) error
}

// OutputPin is a digital output. periph.io gpio.PinOut implementations
// satisfy it.
type OutputPin interface {
	Out(l gpio.Level) error
}

// Delayer blocks the caller for the given duration.
type Delayer interface {
	Delay(d time.Duration)
}

// DelayFunc adapts a function to the Delayer interface.
type DelayFunc func(d time.Duration)

// Delay calls f(d).
func (f DelayFunc) Delay(d time.Duration) {
	f(d)
}

// SleepDelay sleeps the calling goroutine.
var SleepDelay Delayer = DelayFunc(time.Sleep)

// PinError is returned by Reset when the reset pin fails to change level.
type PinError struct {
	Level gpio.Level // Level that was being driven
	Err   error      // Error reported by the pin
}

func (e *PinError) Error() string {
	return fmt.Sprintf("ist7920: failed to drive RST %s: %v", e.Level, e.Err)
}

func (e *PinError) Unwrap() error {
	return e.Err
}

var errHalted = errors.New("ist7920: halted")

// Dev is the device handle for the IST7920 display.
//
// Dev is not safe for concurrent use. The controller protocol is a strict
// sequence of commands, so callers sharing a Dev must serialize access.
type Dev struct {
	t      Transport
	halted bool
}

// New returns a handle talking to the controller through t.
//
// The controller is not touched; call Reset and Init before drawing.
func New(t Transport) *Dev {
	return &Dev{t: t}
}

// Reset pulses the hardware reset line: high, 1ms, low, 10ms, high, 20ms.
// These are the minimum pulse widths of the controller's reset circuit.
func (d *Dev) Reset(rst OutputPin, delay Delayer) error {
	steps := []struct {
		level gpio.Level
		wait  time.Duration
	}{
		{gpio.High, 1 * time.Millisecond},
		{gpio.Low, 10 * time.Millisecond},
		{gpio.High, 20 * time.Millisecond},
	}
	for _, s := range steps {
		if err := rst.Out(s.level); err != nil {
			return &PinError{Level: s.level, Err: err}
		}
		delay.Delay(s.wait)
	}
	return nil
}

// initStep is one entry of the power-up sequence: a command, or a wait
// when cmd is nil.
type initStep struct {
	cmd  Command
	wait time.Duration
}

// initSequence brings up the charge pump and bias generator in stages.
// Each wait is the settling time the following stage depends on.
var initSequence = []initStep{
	{cmd: SWReset{}},
	{wait: 50 * time.Millisecond},
	{cmd: DisplayOn(false)},
	{cmd: Duty(128)},
	{cmd: Bias(16)},
	{cmd: VoltageClock(0x3F)},
	{cmd: PowerControl(0x20)},
	{wait: 100 * time.Millisecond},
	{cmd: PowerControl(0x2C)},
	{wait: 100 * time.Millisecond},
	{cmd: VddX3},
	{wait: 100 * time.Millisecond},
	{cmd: PowerControl(0x2F)},
	{wait: 200 * time.Millisecond},
	{cmd: DisplayControl{SHL: false, ADC: true, EON: false, REV: false}},
	{cmd: AYWindow{Start: 0, End: 0x0F}},
	{cmd: AXWindow{Start: 0, End: 0x7F}},
	{cmd: StartLine(64)},
	{cmd: AYAddress(0)},
	{cmd: AXAddress(0)},
	{cmd: Contrast(110)},
	{cmd: DisplayOn(true)},
}

// Init sends the power-up sequence and turns the display on.
//
// The first failing command aborts the sequence and its error is returned.
// The controller is then in an undefined state; run Reset and Init again.
func (d *Dev) Init(delay Delayer) error {
	for _, s := range initSequence {
		if s.cmd == nil {
			delay.Delay(s.wait)
			continue
		}
		if err := Send(d.t, s.cmd); err != nil {
			return err
		}
	}
	d.halted = false
	return nil
}

// Write sends raw pixel data to the display RAM at the current cursor.
//
// The bytes are not interpreted. Configure the window with SetDrawArea first.
func (d *Dev) Write(p []byte) (int, error) {
	if d.halted {
		return 0, errHalted
	}
	if err := d.t.SendData(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// SetDisplayOn turns the display on or off. The display can be drawn to and
// retains all of its memory even while off.
func (d *Dev) SetDisplayOn(on bool) error {
	return Send(d.t, DisplayOn(on))
}

// SetDrawArea limits where the following Write calls land and moves the
// write cursor to its start.
//
// Rows are addressed in bands of 8 pixels. The window is set before the
// cursor, since some firmware revisions clamp a cursor outside the window.
func (d *Dev) SetDrawArea(start, end image.Point) error {
	if d.halted {
		return errHalted
	}
	cmds := []Command{
		AYWindow{Start: byte(start.X / 8), End: byte(end.X / 8)},
		AXWindow{Start: byte(start.X), End: byte(end.X)},
		AXAddress(start.Y),
		AYAddress(start.X / 8),
	}
	for _, c := range cmds {
		if err := Send(d.t, c); err != nil {
			return err
		}
	}
	return nil
}

// Clear blanks the whole display RAM by writing zeros over it.
func (d *Dev) Clear() error {
	if err := d.SetDrawArea(image.Point{}, image.Pt(Width-1, Height-1)); err != nil {
		return err
	}
	return d.writeChunks(make([]byte, bufferSize))
}

// writeChunks sends p in pieces no larger than the transport accepts.
func (d *Dev) writeChunks(p []byte) error {
	size := d.chunkSize()
	for len(p) > 0 {
		n := min(size, len(p))
		if _, err := d.Write(p[:n]); err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}

// DefaultChunkSize is the data transfer size used when the transport does
// not report its own limit.
const DefaultChunkSize = 64

func (d *Dev) chunkSize() int {
	if l, ok := d.t.(conn.Limits); ok {
		if n := l.MaxTxSize(); n > 0 {
			return n
		}
	}
	return DefaultChunkSize
}

// SetContrast sets the reference voltage (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return errHalted
	}
	return Send(d.t, Contrast(contrast))
}

// Invert shows lit dots as blank and vice versa. The scan direction set by
// Init is kept.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errHalted
	}
	return Send(d.t, DisplayControl{ADC: true, REV: invert})
}

// SetStartLine sets the RAM line shown at the top of the panel. Changing it
// scrolls the picture vertically without rewriting RAM.
func (d *Dev) SetStartLine(line byte) error {
	if d.halted {
		return errHalted
	}
	return Send(d.t, StartLine(line))
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

// Halt turns the display off.
// After calling Halt, drawing fails until Init is called again.
func (d *Dev) Halt() error {
	d.halted = true
	return Send(d.t, DisplayOn(false))
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ist7920.Dev{%dx%d}", Width, Height)
}

// Buffered switches the handle to buffered drawing: pixels are set in
// memory and sent with Flush.
func (d *Dev) Buffered() *Buffered {
	return &Buffered{
		Dev: d,
		img: image1bit.NewVerticalLSB(d.Bounds()),
	}
}
