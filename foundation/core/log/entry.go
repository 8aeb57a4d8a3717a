// File: entry.go
// Title: Log Entry Structure
// Description: A single log record and the structured fields attached to it.
// Author: templa authors
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured fields
// - 2026-10-19 v0.2.0: Component and source context, caller as file:line

package log

import (
	"sort"
	"time"
)

// Entry is one log record as handed to a Formatter
type Entry struct {
	Time    time.Time
	Level   Level
	Message string

	// Context copied from the logger
	Logger    string
	Component string
	Source    string
	RequestID string

	// Caller is "file.go:line", empty unless caller reporting is enabled
	Caller string

	Fields Fields
	Err    error
}

// Fields are structured key-value pairs attached to an entry
type Fields map[string]interface{}

// Keys returns the field names in sorted order
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// with returns a copy of f extended by the given field sets; later sets win
func (f Fields) with(sets ...Fields) Fields {
	n := len(f)
	for _, s := range sets {
		n += len(s)
	}
	out := make(Fields, n)
	for k, v := range f {
		out[k] = v
	}
	for _, s := range sets {
		for k, v := range s {
			out[k] = v
		}
	}
	return out
}
