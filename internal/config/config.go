package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "DASHBOARD_"

type Config struct {
	Port     string `koanf:"port"`
	LogLevel string `koanf:"log_level"`

	// Seed of zero means a time-based seed is picked at startup.
	Seed           int64         `koanf:"seed"`
	BackingSetSize int           `koanf:"backing_set_size"`
	LatencyMin     time.Duration `koanf:"latency_min"`
	LatencyMax     time.Duration `koanf:"latency_max"`
	FailureRate    float64       `koanf:"failure_rate"`

	CopyAckTimeout time.Duration `koanf:"copy_ack_timeout"`
	// Clipboard is "memory" (acknowledge without touching the host) or
	// "system" (write to the host clipboard).
	Clipboard string `koanf:"clipboard"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"port":             "9446",
		"log_level":        "info",
		"seed":             0,
		"backing_set_size": 20,
		"latency_min":      "300ms",
		"latency_max":      "800ms",
		"failure_rate":     0.0,
		"copy_ack_timeout": "1500ms",
		"clipboard":        "memory",
	}
}

// ProcessEnvironmentVariables builds the config from defaults, an optional YAML
// file named by DASHBOARD_CONFIG_FILE and DASHBOARD_* environment variables, in
// that order. A .env file in the working directory is loaded first if present.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	return Load(os.Getenv(envPrefix + "CONFIG_FILE"))
}

// Load is ProcessEnvironmentVariables without the .env step.
func Load(configFile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: defaults: %w", err)
	}

	if len(configFile) != 0 {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", configFile, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("config: env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.BackingSetSize < 1 {
		return fmt.Errorf("config: backing_set_size must be at least 1, got %d", c.BackingSetSize)
	}
	if c.LatencyMin < 0 || c.LatencyMax < c.LatencyMin {
		return fmt.Errorf("config: invalid latency range [%v, %v]", c.LatencyMin, c.LatencyMax)
	}
	if c.FailureRate < 0 || c.FailureRate > 1 {
		return fmt.Errorf("config: failure_rate must be within [0, 1], got %v", c.FailureRate)
	}
	if c.Clipboard != "memory" && c.Clipboard != "system" {
		return fmt.Errorf("config: clipboard must be memory or system, got %q", c.Clipboard)
	}
	if c.CopyAckTimeout <= 0 {
		return fmt.Errorf("config: copy_ack_timeout must be positive, got %v", c.CopyAckTimeout)
	}
	return nil
}
