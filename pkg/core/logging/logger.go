// ============================================================================
// FadeBasic toolchain
// ============================================================================
//
// Package:     logging
// Description: Builds the command line logger from the loaded configuration
// Author:      msto63
// Created:     2025-12-06
// Modified:    2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"io"

	mdwlog "github.com/cdhanna/fadebasic-sub000/foundation/core/log"
	"github.com/cdhanna/fadebasic-sub000/pkg/core/config"
)

// FromConfig creates the logger for a command line run. Verbose raises the
// level to at least debug.
func FromConfig(name string, general config.GeneralConfig, verbose bool, output io.Writer) *mdwlog.Logger {
	cfg := DefaultLoggerConfig(name)
	if general.LogLevel != "" {
		cfg.Level = general.LogLevel
	}
	if general.LogFormat != "" {
		cfg.Format = general.LogFormat
	}
	cfg.Output = output

	logger := NewLogger(cfg)
	if verbose && !logger.IsLevelEnabled(mdwlog.LevelDebug) {
		logger = logger.WithLevel(mdwlog.LevelDebug)
	}
	return logger
}
