package serialport

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ib-77/sansio/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.bug.st/serial"
)

type mockPort struct {
	bytes.Buffer
	closed bool
}

func (m *mockPort) Close() error {
	m.closed = true
	return nil
}

func TestMode(t *testing.T) {
	t.Parallel()

	mode, err := Mode(config.Serial{BaudRate: 9600, StopBits: 2, Parity: "E"})
	require.NoError(t, err)

	assert.Equal(t, &serial.Mode{
		BaudRate: 9600,
		DataBits: 8,
		StopBits: serial.TwoStopBits,
		Parity:   serial.EvenParity,
	}, mode)

	mode, err = Mode(config.Serial{})
	require.NoError(t, err)
	assert.Equal(t, serial.OneStopBit, mode.StopBits)
	assert.Equal(t, serial.NoParity, mode.Parity)

	_, err = Mode(config.Serial{Parity: "x"})
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	t.Parallel()

	port := &mockPort{}
	var gotPath string
	var gotMode *serial.Mode

	p, err := Open(config.Serial{Path: "/dev/ttyFAKE", BaudRate: 115200}, func(path string, mode *serial.Mode) (Port, error) {
		gotPath, gotMode = path, mode
		return port, nil
	})
	require.NoError(t, err)

	assert.Same(t, port, p)
	assert.Equal(t, "/dev/ttyFAKE", gotPath)
	assert.Equal(t, 115200, gotMode.BaudRate)
}

func TestOpen_Errors(t *testing.T) {
	t.Parallel()

	_, err := Open(config.Serial{}, nil)
	assert.Error(t, err)

	boom := errors.New("busy")
	_, err = Open(config.Serial{Path: "/dev/ttyFAKE"}, func(string, *serial.Mode) (Port, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}
