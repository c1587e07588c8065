package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config describes how the doubler binary builds and drives its pipe.
type Config struct {
	// Separator is the single byte terminating a line.
	Separator     string `yaml:"separator"`
	MaxLineLength int    `yaml:"maxLineLength"`
	TrimCR        bool   `yaml:"trimCR"`
	ReadSize      int    `yaml:"readSize"`
	MetricsAddr   string `yaml:"metricsAddr"`
	Debug         bool   `yaml:"debug"`
	Serial        Serial `yaml:"serial"`
}

// Serial selects a serial port instead of stdin/stdout when Path is set.
type Serial struct {
	Path     string `yaml:"path"`
	BaudRate int    `yaml:"baudRate"`
	DataBits int    `yaml:"dataBits"`
	StopBits int    `yaml:"stopBits"`
	Parity   string `yaml:"parity"`
}

func Default() Config {
	return Config{
		Separator: "\n",
		ReadSize:  100,
		Serial: Serial{
			BaudRate: 19200,
			DataBits: 8,
			StopBits: 1,
			Parity:   "N",
		},
	}
}

// Load reads the YAML file at path over the defaults, applies SANSIO_*
// environment overrides and validates the result. An empty path skips the
// file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	ApplyEnvOverrides(&cfg)
	return cfg.Normalize()
}

func ApplyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv("SANSIO_SEPARATOR"); ok && v != "" {
		cfg.Separator = v
	}
	if v := strings.TrimSpace(os.Getenv("SANSIO_METRICS_ADDR")); v != "" {
		cfg.MetricsAddr = v
	}
	if v := strings.TrimSpace(os.Getenv("SANSIO_SERIAL_PATH")); v != "" {
		cfg.Serial.Path = v
	}
	if n, ok := envInt("SANSIO_READ_SIZE"); ok {
		cfg.ReadSize = n
	}
	if n, ok := envInt("SANSIO_MAX_LINE_LENGTH"); ok {
		cfg.MaxLineLength = n
	}
	if n, ok := envInt("SANSIO_SERIAL_BAUD"); ok {
		cfg.Serial.BaudRate = n
	}
	if v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv("SANSIO_DEBUG"))); err == nil {
		cfg.Debug = v
	}
}

func envInt(key string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Normalize validates the config and fills unset values with defaults.
func (c Config) Normalize() (Config, error) {
	cfg := c
	def := Default()

	sep, err := unescape(cfg.Separator)
	if err != nil {
		return cfg, err
	}
	cfg.Separator = sep

	if cfg.ReadSize <= 0 {
		cfg.ReadSize = def.ReadSize
	}
	if cfg.MaxLineLength < 0 {
		return cfg, fmt.Errorf("invalid maxLineLength %d: must not be negative", cfg.MaxLineLength)
	}

	serial, err := cfg.Serial.Normalize()
	if err != nil {
		return cfg, err
	}
	cfg.Serial = serial

	return cfg, nil
}

// SeparatorByte returns the line separator. Valid after Normalize.
func (c Config) SeparatorByte() byte {
	if c.Separator == "" {
		return '\n'
	}
	return c.Separator[0]
}

// unescape accepts a single byte or one of the escapes \n, \r, \t, \0.
func unescape(sep string) (string, error) {
	switch sep {
	case "":
		return "\n", nil
	case `\n`:
		return "\n", nil
	case `\r`:
		return "\r", nil
	case `\t`:
		return "\t", nil
	case `\0`:
		return "\x00", nil
	}
	if len(sep) != 1 {
		return sep, fmt.Errorf("invalid separator %q: must be a single byte", sep)
	}
	return sep, nil
}

// Normalize validates the serial options and applies defaults for unset
// values.
func (s Serial) Normalize() (Serial, error) {
	opts := s

	if opts.BaudRate <= 0 {
		opts.BaudRate = 19200
	}

	if opts.DataBits == 0 {
		opts.DataBits = 8
	}
	if opts.DataBits < 5 || opts.DataBits > 8 {
		return opts, fmt.Errorf("invalid data bits %d: must be between 5 and 8", opts.DataBits)
	}

	if opts.StopBits == 0 {
		opts.StopBits = 1
	}
	if opts.StopBits != 1 && opts.StopBits != 2 {
		return opts, fmt.Errorf("invalid stop bits %d: supported values are 1 or 2", opts.StopBits)
	}

	parity := strings.TrimSpace(strings.ToUpper(opts.Parity))
	switch parity {
	case "", "N", "NONE":
		parity = "N"
	case "E", "EVEN":
		parity = "E"
	case "O", "ODD":
		parity = "O"
	default:
		return opts, fmt.Errorf("unsupported parity %q: expected N, E, or O", opts.Parity)
	}
	opts.Parity = parity

	return opts, nil
}
