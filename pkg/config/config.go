// Package config loads the lab service configuration from a YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level service configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Sessions SessionsConfig `yaml:"sessions"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// SessionsConfig configures session issuance. SessionTTL bounds how long an
// abandoned session holds a slot; zero disables expiry.
type SessionsConfig struct {
	TokenSecret   string        `yaml:"token_secret"`
	TokenDuration time.Duration `yaml:"token_duration"`
	MaxSessions   int           `yaml:"max_sessions"`
	SessionTTL    time.Duration `yaml:"session_ttl"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ShutdownTimeout: 30 * time.Second,
		},
		Sessions: SessionsConfig{
			TokenDuration: 4 * time.Hour,
			MaxSessions:   1000,
			SessionTTL:    8 * time.Hour,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config file, applying defaults for anything unset.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration invariants.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive")
	}
	if c.Sessions.TokenSecret != "" && len(c.Sessions.TokenSecret) < 32 {
		return fmt.Errorf("sessions.token_secret must be at least 32 characters")
	}
	if c.Sessions.TokenDuration <= 0 {
		return fmt.Errorf("sessions.token_duration must be positive")
	}
	if c.Sessions.MaxSessions < 1 {
		return fmt.Errorf("sessions.max_sessions must be at least 1")
	}
	if c.Sessions.SessionTTL < 0 {
		return fmt.Errorf("sessions.session_ttl must not be negative")
	}
	return nil
}
