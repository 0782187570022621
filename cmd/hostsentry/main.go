// Package main is the entry point for the hostsentry resource monitor.
// It parses the command surface, wires up the sampler, evaluator and alert
// sinks, and drives the requested run mode with graceful signal handling.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hostsentry/hostsentry/internal/collector"
	"github.com/hostsentry/hostsentry/internal/config"
	"github.com/hostsentry/hostsentry/internal/monitor"
	"github.com/hostsentry/hostsentry/internal/report"
	"github.com/hostsentry/hostsentry/internal/runner"
)

var (
	// version is set at build time via -ldflags.
	version = "dev"

	cfgPath       string
	logOnly       bool
	continuousArg string
)

func main() {
	cfg, err := config.Load(os.Getenv("HS_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:     "hostsentry [interval]",
		Short:   "Single-host resource monitor with threshold alerts",
		Long:    usageLong(cfg),
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg, args)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&cfgPath, "config", "", "path to configuration file")
	rootCmd.Flags().BoolVarP(&logOnly, "log", "l", false, "sample once, dispatch alerts, no report")
	rootCmd.Flags().StringVarP(&continuousArg, "continuous", "c", "", "run continuously, sampling every N seconds (default 60)")
	rootCmd.Flags().Lookup("continuous").NoOptDefVal = "default"

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func usageLong(cfg *config.Config) string {
	return fmt.Sprintf(`hostsentry samples CPU, memory, swap, disk and temperature, compares them
against configured thresholds and raises alerts on the console, in a
persistent log and as desktop notifications.

Thresholds: cpu %d%%, ram %d%%, disk %d%%, swap warn %d%%
Alert log:  %s`,
		cfg.Thresholds.CPULimit,
		cfg.Thresholds.RAMLimit,
		cfg.Thresholds.DiskLimit,
		cfg.Thresholds.SwapWarnLimit,
		cfg.Logging.AlertLog)
}

func run(cfg *config.Config, args []string) error {
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	mode, interval, err := resolveMode(cfg, args)
	if err != nil {
		return err
	}

	// Dependency check happens before any sampling.
	if err := collector.Preflight(); err != nil {
		return err
	}

	logger := initLogger(cfg)
	defer logger.Sync()

	sampler := collector.NewSampler(logger)
	sampler.Register(collector.NewCPUCollector())
	sampler.Register(collector.NewMemoryCollector())
	sampler.Register(collector.NewDiskCollector())
	sampler.Register(collector.NewTemperatureCollector())
	sampler.Register(collector.NewNetworkCollector())
	sampler.Register(collector.NewSyslogCollector())
	sampler.Register(collector.NewHostCollector())
	sampler.Register(collector.NewLatencyCollector(cfg.Monitor.PingTarget))

	logSink := monitor.NewLogSink(cfg.Logging.AlertLog)
	if !logSink.Writable() {
		logger.Warn("Alert log directory not writable; alerts will be lost from the log sink",
			zap.String("path", cfg.Logging.AlertLog))
	}

	dispatcher := monitor.NewDispatcher(logger)
	dispatcher.AddSink(monitor.NewConsoleSink(os.Stderr))
	dispatcher.AddSink(logSink)
	if monitor.DesktopAvailable() {
		dispatcher.AddSink(monitor.NewDesktopSink())
	}

	renderer := report.New(os.Stdout, cfg)
	r := runner.New(cfg, sampler, dispatcher, renderer, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Debug("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	return r.Run(ctx, mode, interval)
}

// resolveMode maps the flag surface onto a run mode. The continuous flag
// takes its interval either inline (--continuous=30) or from a trailing
// argument (--continuous 30); a bare --continuous uses the configured
// default. Non-numeric or non-positive intervals are rejected before any
// sampling happens.
func resolveMode(cfg *config.Config, args []string) (runner.Mode, time.Duration, error) {
	if logOnly {
		return runner.ModeLogOnly, 0, nil
	}
	if continuousArg == "" {
		return runner.ModeSnapshot, 0, nil
	}

	raw := continuousArg
	if raw == "default" {
		if len(args) > 0 {
			raw = args[0]
		} else {
			return runner.ModeContinuous, cfg.Monitor.Interval.Duration, nil
		}
	}

	interval, err := parseInterval(raw)
	if err != nil {
		return 0, 0, err
	}
	return runner.ModeContinuous, interval, nil
}

// parseInterval validates a user-supplied interval in whole seconds.
func parseInterval(raw string) (time.Duration, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid interval %q: must be a positive integer (seconds)", raw)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid interval %d: must be positive", n)
	}
	return time.Duration(n) * time.Second, nil
}

// initLogger creates a zap logger for internal diagnostics. It writes
// human-readable output to stderr and, when configured, structured JSON to
// a file. The alert log sink is separate and keeps its own plain format.
func initLogger(cfg *config.Config) *zap.Logger {
	var level zapcore.Level
	switch cfg.Logging.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		level,
	)

	cores := []zapcore.Core{consoleCore}

	if cfg.Logging.File != "" {
		file, err := os.OpenFile(cfg.Logging.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
		if err == nil {
			cores = append(cores, zapcore.NewCore(
				zapcore.NewJSONEncoder(encoderConfig),
				zapcore.AddSync(file),
				level,
			))
		}
	}

	return zap.New(zapcore.NewTee(cores...))
}
