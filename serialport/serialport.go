// Package serialport implements the nixie.Transport on a real serial
// device, 115200 8N1 by default to match the tube controller firmware.
package serialport

import (
	"fmt"

	"go.bug.st/serial"

	"github.com/coreman2200/funtimes-nixiechain/nixie"
)

// DefaultBaudRate matches the controller firmware.
const DefaultBaudRate = 115200

// Port is an open serial device. It satisfies nixie.Transport.
type Port struct {
	p    serial.Port
	name string
}

// Option adjusts the serial mode before the port is opened.
type Option func(*serial.Mode)

// WithBaudRate overrides the default baud rate.
func WithBaudRate(baud int) Option {
	return func(m *serial.Mode) {
		m.BaudRate = baud
	}
}

// Open opens the named serial device (e.g. /dev/ttyUSB0). An empty
// name or an open failure reports nixie.ErrTransportUnavailable.
func Open(name string, opts ...Option) (*Port, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: no serial port specified", nixie.ErrTransportUnavailable)
	}
	mode := &serial.Mode{
		BaudRate: DefaultBaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	for _, opt := range opts {
		opt(mode)
	}
	p, err := serial.Open(name, mode)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", nixie.ErrTransportUnavailable, name, err)
	}
	return &Port{p: p, name: name}, nil
}

// Flush discards anything buffered in either direction so the next
// frame starts clean.
func (p *Port) Flush() error {
	if err := p.p.ResetOutputBuffer(); err != nil {
		return err
	}
	return p.p.ResetInputBuffer()
}

// Write delivers raw bytes to the device.
func (p *Port) Write(b []byte) (int, error) {
	return p.p.Write(b)
}

// Close releases the device.
func (p *Port) Close() error {
	return p.p.Close()
}

func (p *Port) String() string {
	return p.name
}
