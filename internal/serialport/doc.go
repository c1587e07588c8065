// Package serialport opens serial ports for the doubler binary using
// go.bug.st/serial.
package serialport
