// ============================================================================
// FadeBasic toolchain
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration strings
// Author:      msto63
// Created:     2025-12-06
// Modified:    2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	mdwlog "github.com/cdhanna/fadebasic-sub000/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name, usually the binary or subcommand
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format
	Format string // "json", "text" or "console" (default: text)

	// Primary output (default: stderr)
	Output io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// NewLogger creates a new Foundation logger
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  parseLevel(cfg.Level),
		Format: parseFormat(cfg.Format),
		Output: output,
		Name:   cfg.Name,
	})
}

// parseLevel converts a string level to mdwlog.Level, falling back to warn
func parseLevel(level string) mdwlog.Level {
	parsed, err := mdwlog.ParseLevel(level)
	if err != nil {
		return mdwlog.LevelWarn
	}
	return parsed
}

// parseFormat converts a string format to mdwlog.Format, falling back to text
func parseFormat(format string) mdwlog.Format {
	parsed, err := mdwlog.ParseFormat(format)
	if err != nil {
		return mdwlog.FormatText
	}
	return parsed
}
