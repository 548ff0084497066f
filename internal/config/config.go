// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Env string `mapstructure:"APP_ENV"`
	// LatencyScale multiplies every simulated per-call delay. 1.0 mirrors the
	// original round-trip timings; 0 disables delays entirely (tests).
	LatencyScale float64 `mapstructure:"LATENCY_SCALE"`
	// CurrentUsername is the sentinel username identifying the active session
	// user in the dataset.
	CurrentUsername string `mapstructure:"CURRENT_USERNAME"`
	LogLevel        string `mapstructure:"LOG_LEVEL"`
	TracingEnabled  bool   `mapstructure:"TRACING_ENABLED"`
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The config file is optional; defaults cover development.
	_ = viper.ReadInConfig()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LATENCY_SCALE", 1.0)
	viper.SetDefault("CURRENT_USERNAME", "current_user")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("TRACING_ENABLED", false)

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate ensures that required configuration values are present.
func (c *Config) Validate() error {
	if c.CurrentUsername == "" {
		return errors.New("CURRENT_USERNAME is required")
	}
	if c.LatencyScale < 0 {
		return errors.New("LATENCY_SCALE must not be negative")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", c.LogLevel)
	}
	return nil
}
