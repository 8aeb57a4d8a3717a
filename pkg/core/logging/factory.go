// ============================================================================
// templa - language front end
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration
// Author:      templa authors
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"path/filepath"

	mdwerror "github.com/templa-lang/templa/foundation/core/error"
	mdwlog "github.com/templa-lang/templa/foundation/core/log"
	"github.com/templa-lang/templa/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format (json, text, console, logfmt; default: text)
	Format string

	// Primary output (default: stderr)
	Output io.Writer

	// Additional outputs (besides the primary output)
	AdditionalOutputs []io.Writer

	// Include caller information in entries
	EnableCaller bool
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
	// Build output writer
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	// Add additional outputs if specified
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:        parseLevel(cfg.Level),
		Format:       parseFormat(cfg.Format),
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.EnableCaller,
	})
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

// FromConfig creates the application logger described by cfg. When a log
// file is configured, entries go to stderr and the file; the returned
// closer releases the file and is never nil.
func FromConfig(cfg *config.Config, verbose bool) (*mdwlog.Logger, io.Closer, error) {
	lc := DefaultLoggerConfig(cfg.General.Name)
	lc.Level = cfg.General.LogLevel
	lc.Format = cfg.General.LogFormat
	if verbose {
		lc.Level = "debug"
		lc.EnableCaller = true
	}

	var closer io.Closer = nopCloser{}
	if cfg.General.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.General.LogFile), 0o755); err != nil {
			return nil, nil, mdwerror.Wrap(err, "failed to create log directory").
				WithCode(mdwerror.CodeConfigError).
				WithDetail("path", cfg.General.LogFile)
		}
		f, err := os.OpenFile(cfg.General.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, mdwerror.Wrap(err, "failed to open log file").
				WithCode(mdwerror.CodeConfigError).
				WithDetail("path", cfg.General.LogFile)
		}
		lc.AdditionalOutputs = append(lc.AdditionalOutputs, f)
		closer = f
	}

	return NewLogger(lc), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// parseLevel converts a string level to mdwlog.Level, falling back to info
func parseLevel(level string) mdwlog.Level {
	l, err := mdwlog.ParseLevel(level)
	if err != nil {
		return mdwlog.LevelInfo
	}
	return l
}

// parseFormat converts a string format to mdwlog.Format, falling back to text
func parseFormat(format string) mdwlog.Format {
	f, err := mdwlog.ParseFormat(format)
	if err != nil {
		return mdwlog.FormatText
	}
	return f
}
