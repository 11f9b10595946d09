// File: timer.go
// Title: Performance Timer
// Description: Provides timing functionality for measuring lexer and parser
//              phases and logging their duration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2026-10-19 v0.2.0: Durations reported on the entry, checkpoints removed

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
	}
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the elapsed time at debug level. A stopped
// timer returns 0.
func (t *Timer) Stop() time.Duration {
	return t.finish(t.operation+" completed", nil)
}

// Fail stops the timer and logs err at debug level. The caller reports the
// failure itself.
func (t *Timer) Fail(err error) time.Duration {
	t.fields["success"] = false
	return t.finish(t.operation+" failed", err)
}

func (t *Timer) finish(message string, err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()

	if t.logger == nil {
		return elapsed
	}

	if !t.logger.IsLevelEnabled(LevelDebug) {
		return elapsed
	}

	entry := NewEntry(LevelDebug, message)
	entry.Duration = elapsed
	entry.Error = err
	t.fields["operation"] = t.operation
	t.logger.write(entry, t.fields)

	return elapsed
}
