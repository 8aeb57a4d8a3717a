// File: logger.go
// Title: Core Logger Implementation
// Description: Immutable leveled logger carrying the component and source
//              being processed, a per-parse request ID and persistent
//              fields. Maps coded errors to levels by their severity.
// Author: templa authors
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-19 v0.2.0: Immutable loggers, component/source context,
//                      synchronous writes, atomic default logger

package log

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	mdwerror "github.com/templa-lang/templa/foundation/core/error"
)

// Logger writes structured entries at or above its level. A Logger is
// never modified after construction; With* methods return copies.
type Logger struct {
	level     Level
	formatter Formatter
	out       *sink

	name      string
	component string
	source    string
	requestID string
	fields    Fields
	caller    bool
}

// sink serializes writes of all loggers derived from one root
type sink struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *sink) write(p []byte) {
	s.mu.Lock()
	_, _ = s.w.Write(p)
	s.mu.Unlock()
}

// Config configures a root logger
type Config struct {
	Level        Level
	Format       Format
	Output       io.Writer // default: stderr
	Name         string
	EnableCaller bool
}

// New returns a text logger at warn level writing to stderr
func New() *Logger {
	return NewWithConfig(Config{Level: LevelWarn, Format: FormatText})
}

// NewWithConfig creates a root logger
func NewWithConfig(config Config) *Logger {
	w := config.Output
	if w == nil {
		w = os.Stderr
	}
	return &Logger{
		level:     config.Level,
		formatter: NewFormatter(config.Format),
		out:       &sink{w: w},
		name:      config.Name,
		caller:    config.EnableCaller,
	}
}

// NewNop returns a logger that discards everything
func NewNop() *Logger {
	return NewWithConfig(Config{Level: LevelOff, Output: io.Discard})
}

func (l *Logger) clone() *Logger {
	c := *l
	return &c
}

// WithLevel returns a copy with a different minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	c := l.clone()
	c.level = level
	return c
}

// WithOutput returns a copy writing to w
func (l *Logger) WithOutput(w io.Writer) *Logger {
	c := l.clone()
	c.out = &sink{w: w}
	return c
}

// WithName returns a copy with a different logger name
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	c.name = name
	return c
}

// WithComponent returns a copy tagged with the emitting component,
// e.g. "parser" or "engine"
func (l *Logger) WithComponent(component string) *Logger {
	c := l.clone()
	c.component = component
	return c
}

// WithSource returns a copy tagged with the source being processed,
// usually a file name or "stdin"
func (l *Logger) WithSource(source string) *Logger {
	c := l.clone()
	c.source = source
	return c
}

// WithRequestID returns a copy tagged with a request ID
func (l *Logger) WithRequestID(requestID string) *Logger {
	c := l.clone()
	c.requestID = requestID
	return c
}

// WithField returns a copy with a persistent field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(Fields{key: value})
}

// WithFields returns a copy with persistent fields
func (l *Logger) WithFields(fields Fields) *Logger {
	c := l.clone()
	c.fields = l.fields.with(fields)
	return c
}

// WithCaller returns a copy that records the calling file and line
func (l *Logger) WithCaller() *Logger {
	c := l.clone()
	c.caller = true
	return c
}

func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// LogErr logs message with err attached at the given level
func (l *Logger) LogErr(level Level, message string, err error, fields ...Fields) {
	l.log(level, message, err, fields...)
}

// LogError logs err on its own. Coded errors are logged at a level derived
// from their severity, with code, operation and details as fields.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var coded *mdwerror.Error
	if !errors.As(err, &coded) {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     coded.Code().String(),
		"error_severity": coded.Severity().String(),
	}
	if op := coded.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range coded.Details() {
		fields["error_"+k] = v
	}

	level := LevelError
	switch coded.Severity() {
	case mdwerror.SeverityLow:
		level = LevelInfo
	case mdwerror.SeverityMedium:
		level = LevelWarn
	}
	l.log(level, err.Error(), err, fields)
}

// StartTimer starts timing operation; see Timer
func (l *Logger) StartTimer(operation string) *Timer {
	return &Timer{
		logger:    l,
		operation: operation,
		start:     time.Now(),
		fields:    Fields{},
		level:     LevelDebug,
	}
}

// Enabled reports whether entries at level are written
func (l *Logger) Enabled(level Level) bool {
	return level.Enabled(l.level)
}

// GetLevel returns the minimum level
func (l *Logger) GetLevel() Level {
	return l.level
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// Component returns the component tag
func (l *Logger) Component() string {
	return l.component
}

// log must be called directly from an exported method so that the caller
// frame is at a fixed depth
func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	if !level.Enabled(l.level) {
		return
	}

	entry := &Entry{
		Time:      time.Now(),
		Level:     level,
		Message:   message,
		Logger:    l.name,
		Component: l.component,
		Source:    l.source,
		RequestID: l.requestID,
		Fields:    l.fields.with(fields...),
		Err:       err,
	}
	if l.caller {
		// log, exported method, user code
		if _, file, line, ok := runtime.Caller(2); ok {
			entry.Caller = filepath.Base(file) + ":" + strconv.Itoa(line)
		}
	}

	formatted, ferr := l.formatter.Format(entry)
	if ferr != nil {
		return
	}
	l.out.write(formatted)
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New())
}

// GetDefault returns the process-wide default logger
func GetDefault() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the default logger; nil is ignored
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger.Store(logger)
	}
}
