package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// EnvPrefix prefixes every environment override, e.g. DRIVESIM_SYSTEM_LOG_LEVEL.
const EnvPrefix = "DRIVESIM_"

// Config holds all configuration settings for drivesim.
type Config struct {
	System     SystemConfig     `json:"system" envPrefix:"SYSTEM_"`
	Scheduler  SchedulerConfig  `json:"scheduler" envPrefix:"SCHEDULER_"`
	Experiment ExperimentConfig `json:"experiment" envPrefix:"EXPERIMENT_"`
	EventBus   EventBusConfig   `json:"eventBus" envPrefix:"EVENTBUS_"`
}

// SystemConfig holds general system settings.
type SystemConfig struct {
	LogLevel      string `json:"logLevel" env:"LOG_LEVEL"`           // trace, debug, info, warn, error
	LogFormat     string `json:"logFormat" env:"LOG_FORMAT"`         // console or json
	StatsInterval int    `json:"statsInterval" env:"STATS_INTERVAL"` // Wall clock ms between stats logs, 0 disables
}

// SchedulerConfig holds settings for the run loop.
type SchedulerConfig struct {
	FrameworkUpdateRate int `json:"frameworkUpdateRate" env:"UPDATE_RATE"` // Framework tick and horizon window in ms
}

// ExperimentConfig describes the invocations of one experiment.
type ExperimentConfig struct {
	StartTime   int    `json:"startTime" env:"START_TIME"`     // ms
	EndTime     int    `json:"endTime" env:"END_TIME"`         // ms
	Invocations int    `json:"invocations" env:"INVOCATIONS"`  // Number of runs
	RandomSeed  int64  `json:"randomSeed" env:"RANDOM_SEED"`   // Seed of the first run, incremented per run
	Parallelism int    `json:"parallelism" env:"PARALLELISM"`  // Runs executed at once
	TrafficFile string `json:"trafficFile" env:"TRAFFIC_FILE"` // YAML traffic description
}

// EventBusConfig holds settings for the event bus.
type EventBusConfig struct {
	DefaultBufferSize int `json:"defaultBufferSize" env:"BUFFER_SIZE"` // Default buffer size for subscribers
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		System: SystemConfig{
			LogLevel:  "info",
			LogFormat: "console",
		},
		Scheduler: SchedulerConfig{
			FrameworkUpdateRate: 100,
		},
		Experiment: ExperimentConfig{
			StartTime:   0,
			EndTime:     30000,
			Invocations: 1,
			Parallelism: 1,
		},
		EventBus: EventBusConfig{
			DefaultBufferSize: 16,
		},
	}
}

// LoadFromFile loads configuration from a JSON file on top of the defaults.
// A missing file yields the defaults.
func LoadFromFile(filePath string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := json.Unmarshal(data, cfg, json.RejectUnknownMembers(true)); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	return cfg, nil
}

// SaveToFile saves the configuration to a JSON file.
func (c *Config) SaveToFile(filePath string) error {
	data, err := json.Marshal(c, jsontext.WithIndent("  "))
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

// ApplyEnv overrides settings from DRIVESIM_* environment variables.
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("error reading environment: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Scheduler.FrameworkUpdateRate < 1 {
		return fmt.Errorf("frameworkUpdateRate must be at least 1")
	}

	if c.Experiment.StartTime < 0 {
		return fmt.Errorf("startTime cannot be negative")
	}
	if c.Experiment.EndTime < c.Experiment.StartTime {
		return fmt.Errorf("endTime must be greater than or equal to startTime")
	}
	if c.Experiment.Invocations < 1 {
		return fmt.Errorf("invocations must be at least 1")
	}
	if c.Experiment.Parallelism < 1 {
		return fmt.Errorf("parallelism must be at least 1")
	}

	if c.System.StatsInterval < 0 {
		return fmt.Errorf("statsInterval cannot be negative")
	}
	switch c.System.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("logFormat must be console or json, got %q", c.System.LogFormat)
	}

	if c.EventBus.DefaultBufferSize < 1 {
		return fmt.Errorf("defaultBufferSize must be at least 1")
	}

	return nil
}
