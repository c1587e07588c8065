package serialport

import (
	"fmt"
	"io"

	"github.com/ib-77/sansio/internal/config"
	"go.bug.st/serial"
)

// Port is what the driver needs from a serial port.
type Port interface {
	io.ReadWriter
	io.Closer
}

// Opener opens a serial port. Replaced in tests.
type Opener func(path string, mode *serial.Mode) (Port, error)

func openSerial(path string, mode *serial.Mode) (Port, error) {
	return serial.Open(path, mode)
}

// Mode converts normalized options into the go.bug.st/serial mode.
func Mode(opts config.Serial) (*serial.Mode, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return nil, err
	}

	mode := &serial.Mode{
		BaudRate: opts.BaudRate,
		DataBits: opts.DataBits,
	}

	switch opts.StopBits {
	case 1:
		mode.StopBits = serial.OneStopBit
	case 2:
		mode.StopBits = serial.TwoStopBits
	default:
		return nil, fmt.Errorf("unsupported stop bits %d", opts.StopBits)
	}

	switch opts.Parity {
	case "N":
		mode.Parity = serial.NoParity
	case "E":
		mode.Parity = serial.EvenParity
	case "O":
		mode.Parity = serial.OddParity
	default:
		return nil, fmt.Errorf("unsupported parity %q", opts.Parity)
	}

	return mode, nil
}

// Open opens the port described by opts with open, or with go.bug.st/serial
// when open is nil.
func Open(opts config.Serial, open Opener) (Port, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("serial port path is empty")
	}

	mode, err := Mode(opts)
	if err != nil {
		return nil, err
	}

	if open == nil {
		open = openSerial
	}

	port, err := open(opts.Path, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", opts.Path, err)
	}
	return port, nil
}
