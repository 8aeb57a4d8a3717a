// File: level.go
// Title: Log Levels
// Description: Severity levels used to filter log output, with their
//              names, short tags and console colors.
// Author: templa authors
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-19 v0.2.0: Table-driven levels; off level replaces fatal

package log

import (
	"fmt"
	"strings"
)

// Level is the severity of a log entry
type Level int

const (
	// LevelTrace traces individual grammar rules
	LevelTrace Level = iota

	// LevelDebug reports parse starts, completions and timings
	LevelDebug

	// LevelInfo reports rejected input
	LevelInfo

	// LevelWarn reports slow or degraded operation
	LevelWarn

	// LevelError reports internal failures
	LevelError

	// LevelOff as minimum level disables all output
	LevelOff
)

type levelInfo struct {
	name  string
	short string
	color string
}

var levels = [...]levelInfo{
	LevelTrace: {"trace", "TRC", "\033[37m"},
	LevelDebug: {"debug", "DBG", "\033[36m"},
	LevelInfo:  {"info", "INF", "\033[32m"},
	LevelWarn:  {"warn", "WRN", "\033[33m"},
	LevelError: {"error", "ERR", "\033[31m"},
	LevelOff:   {"off", "OFF", ""},
}

var levelAliases = map[string]Level{
	"trc":     LevelTrace,
	"dbg":     LevelDebug,
	"inf":     LevelInfo,
	"wrn":     LevelWarn,
	"warning": LevelWarn,
	"err":     LevelError,
	"none":    LevelOff,
}

const colorReset = "\033[0m"

func (l Level) info() levelInfo {
	if l < LevelTrace || l > LevelOff {
		return levelInfo{"unknown", "???", colorReset}
	}
	return levels[l]
}

// String returns the level name, e.g. "warn"
func (l Level) String() string {
	return l.info().name
}

// ShortString returns the three-letter tag, e.g. "WRN"
func (l Level) ShortString() string {
	return l.info().short
}

// Enabled reports whether an entry at l passes the minimum level min.
// Nothing passes LevelOff.
func (l Level) Enabled(min Level) bool {
	return l >= min && l < LevelOff
}

// ParseLevel parses a level name or one of its aliases, ignoring case
func ParseLevel(s string) (Level, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, li := range levels {
		if li.name == key {
			return Level(i), nil
		}
	}
	if l, ok := levelAliases[key]; ok {
		return l, nil
	}
	return LevelInfo, &ValueError{Kind: "level", Input: s}
}

// AllLevels returns the levels from most to least verbose, LevelOff last
func AllLevels() []Level {
	all := make([]Level, len(levels))
	for i := range levels {
		all[i] = Level(i)
	}
	return all
}

// ValueError reports an unknown level or format name
type ValueError struct {
	Kind  string
	Input string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid log %s %q", e.Kind, e.Input)
}
