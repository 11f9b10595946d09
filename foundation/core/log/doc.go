// Package log provides structured logging for the FadeBasic toolchain.
//
// Package: log
// Title: Structured Logging
// Description: This package implements a small structured logging system with
//              contextual fields, JSON/text/console output formats, log levels,
//              and integration with the mDW error package. Command line tools log
//              to stderr so that tokenizer and parser output on stdout stays clean.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Trimmed to the needs of the lexer/parser toolchain, stderr default
//
// Usage:
//
//	logger := log.New().
//	  WithLevel(log.LevelDebug).
//	  WithName("basic-lexer")
//
//	logger.Debug("tokenized source", log.Fields{"tokens": 42})
//
//	timer := logger.StartTimer("parse")
//	// ... parse a program
//	timer.Stop()
package log
