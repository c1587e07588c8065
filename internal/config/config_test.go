package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, byte('\n'), cfg.SeparatorByte())
	assert.Equal(t, 100, cfg.ReadSize)
	assert.Equal(t, 0, cfg.MaxLineLength)
	assert.Equal(t, "", cfg.Serial.Path)
	assert.Equal(t, 19200, cfg.Serial.BaudRate)
	assert.Equal(t, "N", cfg.Serial.Parity)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
separator: ";"
maxLineLength: 64
trimCR: true
readSize: 16
metricsAddr: ":9100"
serial:
  path: /dev/ttyUSB0
  baudRate: 9600
  parity: even
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, byte(';'), cfg.SeparatorByte())
	assert.Equal(t, 64, cfg.MaxLineLength)
	assert.True(t, cfg.TrimCR)
	assert.Equal(t, 16, cfg.ReadSize)
	assert.Equal(t, ":9100", cfg.MetricsAddr)
	assert.Equal(t, "/dev/ttyUSB0", cfg.Serial.Path)
	assert.Equal(t, 9600, cfg.Serial.BaudRate)
	assert.Equal(t, 8, cfg.Serial.DataBits)
	assert.Equal(t, 1, cfg.Serial.StopBits)
	assert.Equal(t, "E", cfg.Serial.Parity)
}

func TestLoad_EscapedSeparator(t *testing.T) {
	path := writeConfig(t, `separator: '\r'`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, byte('\r'), cfg.SeparatorByte())
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "readSize: 16\n")
	t.Setenv("SANSIO_READ_SIZE", "32")
	t.Setenv("SANSIO_SERIAL_PATH", "/dev/ttyACM0")
	t.Setenv("SANSIO_SERIAL_BAUD", "not-a-number")
	t.Setenv("SANSIO_DEBUG", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 32, cfg.ReadSize)
	assert.Equal(t, "/dev/ttyACM0", cfg.Serial.Path)
	assert.Equal(t, 19200, cfg.Serial.BaudRate)
	assert.True(t, cfg.Debug)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "readSize: [1"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "separator: ab"))
	assert.ErrorContains(t, err, "single byte")

	_, err = Load(writeConfig(t, "maxLineLength: -1"))
	assert.Error(t, err)
}

func TestSerial_Normalize(t *testing.T) {
	t.Parallel()

	s, err := Serial{}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, Serial{BaudRate: 19200, DataBits: 8, StopBits: 1, Parity: "N"}, s)

	_, err = Serial{DataBits: 9}.Normalize()
	assert.Error(t, err)

	_, err = Serial{StopBits: 3}.Normalize()
	assert.Error(t, err)

	_, err = Serial{Parity: "mark"}.Normalize()
	assert.Error(t, err)

	s, err = Serial{Parity: "odd", StopBits: 2}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "O", s.Parity)
	assert.Equal(t, 2, s.StopBits)
}
