package ist7920

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Opts is the configuration for an IST7920 connected over SPI.
type Opts struct {
	// SPI clock (default: 8MHz)
	Hz physic.Frequency

	// Optional hardware reset pin
	RST OutputPin // Reset pin (optional, nil if not used)

	// Blocking delay used during reset and power-up (default: SleepDelay)
	Delay Delayer
}

// NewSPI creates a new IST7920 device connected via SPI and initializes it.
//
// The SPI port is configured for Mode0 (CPOL=0, CPHA=0), 8-bit transfers.
// The dc (Data/Command) GPIO pin must be provided and configured as an output.
//
// opts can be nil to use defaults.
func NewSPI(p spi.Port, dc OutputPin, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	hz := opts.Hz
	if hz == 0 {
		hz = 8 * physic.MegaHertz
	}
	delay := opts.Delay
	if delay == nil {
		delay = SleepDelay
	}

	c, err := p.Connect(hz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ist7920: failed to connect SPI: %w", err)
	}

	d := New(NewSPITransport(c, dc))
	if opts.RST != nil {
		if err := d.Reset(opts.RST, delay); err != nil {
			return nil, err
		}
	}
	if err := d.Init(delay); err != nil {
		return nil, err
	}
	return d, nil
}

// SPITransport sends commands and data over a SPI connection, selecting
// between them with the D/C pin: low for commands, high for data.
type SPITransport struct {
	c  conn.Conn
	dc OutputPin
}

// NewSPITransport returns a Transport writing to c.
func NewSPITransport(c conn.Conn, dc OutputPin) *SPITransport {
	return &SPITransport{c: c, dc: dc}
}

// SendCommands sends instruction bytes.
func (s *SPITransport) SendCommands(cmds []byte) error {
	if err := s.dc.Out(gpio.Low); err != nil {
		return err
	}
	return s.c.Tx(cmds, nil)
}

// SendData sends pixel data bytes.
func (s *SPITransport) SendData(data []byte) error {
	if err := s.dc.Out(gpio.High); err != nil {
		return err
	}
	return s.c.Tx(data, nil)
}

// MaxTxSize returns the largest transfer the underlying connection accepts,
// or 0 when it does not say.
func (s *SPITransport) MaxTxSize() int {
	if l, ok := s.c.(conn.Limits); ok {
		return l.MaxTxSize()
	}
	return 0
}

func (s *SPITransport) String() string {
	return fmt.Sprintf("ist7920.SPITransport{%s}", s.c)
}
