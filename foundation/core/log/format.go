// File: format.go
// Title: Log Output Formatters
// Description: Render entries as plain text, colored console lines, JSON
//              objects or logfmt pairs. Context and fields always appear
//              in the same order so output can be compared in tests.
// Author: templa authors
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with JSON and text formats
// - 2026-10-19 v0.2.0: Ordered JSON keys, shared context ordering

package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Format selects a Formatter
type Format int

const (
	// FormatText is a human-readable line: time, level, component, message, pairs
	FormatText Format = iota

	// FormatJSON is one JSON object per line
	FormatJSON

	// FormatConsole is FormatText with a colored level tag
	FormatConsole

	// FormatLogfmt is key=value pairs
	FormatLogfmt
)

var formatNames = [...]string{
	FormatText:    "text",
	FormatJSON:    "json",
	FormatConsole: "console",
	FormatLogfmt:  "logfmt",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat parses a format name, ignoring case
func ParseFormat(s string) (Format, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range formatNames {
		if name == key {
			return Format(i), nil
		}
	}
	return FormatText, &ValueError{Kind: "format", Input: s}
}

// Formatter renders an entry, including the trailing newline
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// NewFormatter returns the formatter for format; unknown formats get text
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{TimestampFormat: time.RFC3339Nano}
	case FormatConsole:
		return &TextFormatter{TimestampFormat: "15:04:05", Color: true}
	case FormatLogfmt:
		return &LogfmtFormatter{TimestampFormat: time.RFC3339}
	default:
		return &TextFormatter{TimestampFormat: "15:04:05"}
	}
}

type pair struct {
	key   string
	value interface{}
}

// contextPairs lists the non-empty logger context in output order
func contextPairs(e *Entry) []pair {
	var ps []pair
	add := func(key, value string) {
		if value != "" {
			ps = append(ps, pair{key, value})
		}
	}
	add("logger", e.Logger)
	add("component", e.Component)
	add("source", e.Source)
	add("request_id", e.RequestID)
	add("caller", e.Caller)
	return ps
}

// fieldPairs lists the entry fields sorted by key, errors as their message
func fieldPairs(e *Entry) []pair {
	ps := make([]pair, 0, len(e.Fields))
	for _, k := range e.Fields.Keys() {
		v := e.Fields[k]
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		ps = append(ps, pair{k, v})
	}
	return ps
}

// JSONFormatter writes one JSON object per entry with keys in a fixed order:
// timestamp, level, message, context, fields, error. Fields named like a
// fixed key get a "field_" prefix.
type JSONFormatter struct {
	TimestampFormat string
}

var reservedJSONKeys = map[string]bool{
	"timestamp": true, "level": true, "message": true, "logger": true,
	"component": true, "source": true, "request_id": true, "caller": true,
	"error": true, "error_details": true,
}

func (f *JSONFormatter) Format(e *Entry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	write := func(key string, value interface{}) {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, _ := json.Marshal(key)
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(value)
		if err != nil {
			v, _ = json.Marshal(fmt.Sprint(value))
		}
		buf.Write(v)
	}

	write("timestamp", e.Time.Format(f.TimestampFormat))
	write("level", e.Level.String())
	write("message", e.Message)
	for _, p := range contextPairs(e) {
		write(p.key, p.value)
	}
	for _, p := range fieldPairs(e) {
		key := p.key
		if reservedJSONKeys[key] {
			key = "field_" + key
		}
		write(key, p.value)
	}
	if e.Err != nil {
		write("error", e.Err.Error())
		// coded errors carry their own JSON form
		if m, ok := e.Err.(json.Marshaler); ok {
			if details, err := m.MarshalJSON(); err == nil && json.Valid(details) {
				write("error_details", json.RawMessage(details))
			}
		}
	}

	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// TextFormatter writes "15:04:05 WRN parser: message key=value error=..."
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool

	// Color wraps the level tag in ANSI color codes
	Color bool
}

func (f *TextFormatter) Format(e *Entry) ([]byte, error) {
	var b strings.Builder
	if !f.DisableTimestamp {
		b.WriteString(e.Time.Format(f.TimestampFormat))
		b.WriteByte(' ')
	}

	if f.Color {
		b.WriteString(e.Level.info().color)
		b.WriteString(e.Level.ShortString())
		b.WriteString(colorReset)
	} else {
		b.WriteString(e.Level.ShortString())
	}
	b.WriteByte(' ')

	if e.Component != "" {
		b.WriteString(e.Component)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)

	for _, p := range contextPairs(e) {
		if p.key == "component" {
			continue
		}
		fmt.Fprintf(&b, " %s=%v", p.key, p.value)
	}
	for _, p := range fieldPairs(e) {
		fmt.Fprintf(&b, " %s=%v", p.key, p.value)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, " error=%q", e.Err.Error())
	}

	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// LogfmtFormatter writes space separated key=value pairs, quoting values
// that contain blanks, quotes or '='
type LogfmtFormatter struct {
	TimestampFormat string
}

func (f *LogfmtFormatter) Format(e *Entry) ([]byte, error) {
	var b strings.Builder
	write := func(key string, value interface{}) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(logfmtValue(fmt.Sprint(value)))
	}

	write("time", e.Time.Format(f.TimestampFormat))
	write("level", e.Level.String())
	write("msg", e.Message)
	for _, p := range contextPairs(e) {
		write(p.key, p.value)
	}
	for _, p := range fieldPairs(e) {
		write(p.key, p.value)
	}
	if e.Err != nil {
		write("error", e.Err.Error())
	}

	b.WriteByte('\n')
	return []byte(b.String()), nil
}

func logfmtValue(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\r\"=") {
		return strconv.Quote(s)
	}
	return s
}
