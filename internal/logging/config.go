package logging

import (
	"fmt"
)

// Config holds logging-related configuration
type Config struct {
	Level      string `json:"level"`       // debug, info, warn, error
	File       string `json:"file"`        // Path to log file, empty logs to stdout only
	MaxSize    int    `json:"max_size"`    // Max size in MB
	MaxBackups int    `json:"max_backups"` // Number of backups to keep
	MaxAge     int    `json:"max_age"`     // Max age in days
	// LogRequests enables the per-request access log line
	LogRequests bool `json:"log_requests"`
}

// DefaultConfig returns the rotation settings used by the server binary
func DefaultConfig() *Config {
	return &Config{
		Level:      LevelInfo,
		File:       "./logs/api.log",
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}
}

// Validate checks if the configuration is valid
func (l *Config) Validate() error {
	if _, ok := levelRank[l.Level]; !ok {
		return fmt.Errorf("invalid log level: %s", l.Level)
	}

	if l.File != "" && l.MaxSize <= 0 {
		return fmt.Errorf("max_size must be positive")
	}

	if l.MaxBackups < 0 {
		return fmt.Errorf("max_backups must be non-negative")
	}

	if l.MaxAge < 0 {
		return fmt.Errorf("max_age must be non-negative")
	}

	return nil
}
