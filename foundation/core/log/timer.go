// File: timer.go
// Title: Operation Timer
// Description: Measures an operation and logs its duration through the
//              owning logger when stopped.
// Author: templa authors
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2026-10-19 v0.2.0: Single stop path, duration carried in fields

package log

import (
	"time"
)

// Timer measures one operation. It is not safe for concurrent use.
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// WithLevel sets the level of the completion entry (default: debug)
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to the completion entry
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop logs "<operation> completed" and returns the elapsed time.
// Only the first Stop or StopWithError logs; later calls return zero.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()
	t.logger.log(t.level, t.operation+" completed", nil, t.timing(elapsed))
	return elapsed
}

// StopWithError logs "<operation> failed" with err at warn level
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()
	t.logger.log(LevelWarn, t.operation+" failed", err, t.timing(elapsed))
	return elapsed
}

func (t *Timer) timing(elapsed time.Duration) Fields {
	return t.fields.with(Fields{
		"operation":   t.operation,
		"duration_ms": float64(elapsed.Microseconds()) / 1000,
	})
}
