package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/ib-77/sansio/internal/config"
	"github.com/ib-77/sansio/internal/serialport"
	"github.com/ib-77/sansio/pkg/pipe"
	"github.com/ib-77/sansio/pkg/pipe/drive"
	"github.com/ib-77/sansio/pkg/pipe/lines"
	"github.com/ib-77/sansio/pkg/pipe/number"
	"github.com/ib-77/sansio/pkg/pipe/observe"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	configPath  string
	serialPath  string
	baudRate    int
	metricsAddr string
	debug       bool
}

func rootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "doubler",
		Short: "Read numbers line by line and write them back doubled",
		Long: `doubler reads newline separated integers from stdin (or a serial port),
writes each one doubled to stdout and reports unparsable lines on stderr.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, stdin, stdout, stderr)
		},
	}

	cmd.Flags().StringVar(&f.configPath, "config", "", "path to a YAML config file (optional)")
	cmd.Flags().StringVar(&f.serialPath, "serial", "", "serial port to use instead of stdin/stdout")
	cmd.Flags().IntVar(&f.baudRate, "baud", 0, "serial port baud rate")
	cmd.Flags().StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "log every message crossing a stage boundary")
	return cmd
}

// loadConfig applies explicitly set flags over the file and environment.
func loadConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("serial") {
		cfg.Serial.Path = f.serialPath
	}
	if cmd.Flags().Changed("baud") {
		cfg.Serial.BaudRate = f.baudRate
	}
	if cmd.Flags().Changed("metrics-addr") {
		cfg.MetricsAddr = f.metricsAddr
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = f.debug
	}
	return cfg.Normalize()
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(ctx context.Context, cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := newLogger(stderr, cfg.Debug)

	reg := prometheus.NewRegistry()
	metrics, err := observe.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	if cfg.MetricsAddr != "" {
		stopMetrics := serveMetrics(cfg.MetricsAddr, reg, logger)
		defer stopMetrics()
	}

	src, out := stdin, stdout
	if cfg.Serial.Path != "" {
		port, err := serialport.Open(cfg.Serial, nil)
		if err != nil {
			return err
		}
		defer port.Close()
		src, out = port, port
		logger.Info("serial port opened", "path", cfg.Serial.Path, "baud", cfg.Serial.BaudRate)
	}

	codec := lines.New(lineOptions(cfg)...)
	stage, err := pipe.Fuse(
		observe.Logged("lines", observe.Metered("lines", lines.Stage(codec), metrics), logger),
		observe.Logged("number", observe.Metered("number", number.Stage(number.New()), metrics), logger))
	if err != nil {
		return err
	}

	err = drive.Loop(drive.WithReadSize(ctx, cfg.ReadSize), stage, src, drive.Handlers[pipe.Result[[]byte], int, int]{
		Logic: drive.Doubler,
		Emit:  drive.Route(out, stderr),
		OnEOF: func(context.Context) { codec.Finish() },
	})
	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted")
		return nil
	}
	return err
}

func lineOptions(cfg config.Config) []lines.Option {
	opts := []lines.Option{lines.WithSeparator(cfg.SeparatorByte())}
	if cfg.MaxLineLength > 0 {
		opts = append(opts, lines.WithMaxLineLength(cfg.MaxLineLength))
	}
	if cfg.TrimCR {
		opts = append(opts, lines.WithTrimCR())
	}
	return opts
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "error", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
