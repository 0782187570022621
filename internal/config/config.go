// Package config handles configuration loading from YAML files, an optional
// .env file and environment variables.
// Configuration precedence: environment variables > .env > config file > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Duration is a wrapper around time.Duration that supports YAML unmarshaling
// from human-readable strings like "30s", "1m".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements the yaml.Unmarshaler interface for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("unsupported duration format: %v", value.Kind)
	}
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	d.Duration = parsed
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface for Duration.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Config holds all monitor configuration. It is constructed once at startup
// and treated as read-only afterwards; components receive it by reference.
type Config struct {
	Thresholds ThresholdConfig `yaml:"thresholds"`
	Monitor    MonitorConfig   `yaml:"monitor"`
	Logging    LoggingConfig   `yaml:"logging"`
}

// ThresholdConfig holds the alerting limits, all in whole percent.
type ThresholdConfig struct {
	CPULimit      int `yaml:"cpu_limit"`
	RAMLimit      int `yaml:"ram_limit"`
	DiskLimit     int `yaml:"disk_limit"`
	SwapWarnLimit int `yaml:"swap_warn_limit"`
}

// MonitorConfig holds sampling settings.
type MonitorConfig struct {
	Interval     Duration `yaml:"interval"`
	TopProcesses int      `yaml:"top_processes"`
	PingTarget   string   `yaml:"ping_target"`
}

// LoggingConfig holds diagnostic-log and alert-log settings.
type LoggingConfig struct {
	Level    string `yaml:"level"`
	File     string `yaml:"file"`
	AlertLog string `yaml:"alert_log"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Thresholds: ThresholdConfig{
			CPULimit:      80,
			RAMLimit:      85,
			DiskLimit:     90,
			SwapWarnLimit: 50,
		},
		Monitor: MonitorConfig{
			Interval:     Duration{60 * time.Second},
			TopProcesses: 5,
			PingTarget:   "1.1.1.1",
		},
		Logging: LoggingConfig{
			Level:    "info",
			File:     "",
			AlertLog: DefaultAlertLogPath(),
		},
	}
}

// DefaultAlertLogPath returns the alert log location under the user's home
// directory, falling back to the working directory when home is unknown.
func DefaultAlertLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "hostsentry-alerts.log"
	}
	return filepath.Join(home, ".hostsentry", "alerts.log")
}

// Load reads configuration from a YAML file and merges with defaults.
// If path is empty or the file does not exist, only defaults, .env and
// environment variables are used.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	// A local .env is a convenience layer below real environment variables.
	_ = godotenv.Load()

	applyEnvOverrides(cfg)

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Environment variables have the highest precedence.
func applyEnvOverrides(cfg *Config) {
	if level := os.Getenv("HS_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if path := os.Getenv("HS_ALERT_LOG"); path != "" {
		cfg.Logging.AlertLog = path
	}
	if target := os.Getenv("HS_PING_TARGET"); target != "" {
		cfg.Monitor.PingTarget = target
	}
	if raw := os.Getenv("HS_INTERVAL_SECONDS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.Monitor.Interval = Duration{time.Duration(n) * time.Second}
		}
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	limits := []struct {
		name  string
		value int
	}{
		{"cpu_limit", c.Thresholds.CPULimit},
		{"ram_limit", c.Thresholds.RAMLimit},
		{"disk_limit", c.Thresholds.DiskLimit},
		{"swap_warn_limit", c.Thresholds.SwapWarnLimit},
	}
	for _, l := range limits {
		if l.value < 1 || l.value > 100 {
			return fmt.Errorf("%s must be in [1,100], got %d", l.name, l.value)
		}
	}
	if c.Monitor.Interval.Duration <= 0 {
		return fmt.Errorf("interval must be positive, got %v", c.Monitor.Interval.Duration)
	}
	if c.Monitor.TopProcesses < 1 {
		return fmt.Errorf("top_processes must be at least 1, got %d", c.Monitor.TopProcesses)
	}
	if c.Logging.AlertLog == "" {
		return fmt.Errorf("alert_log path is required")
	}
	return nil
}
