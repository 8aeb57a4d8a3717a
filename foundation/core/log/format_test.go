// File: format_test.go
// Title: Log Formatter Tests
// Description: Tests for the text, console, JSON and logfmt renderings.
// Author: templa authors
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial formatter tests
// - 2026-10-19 v0.2.0: Exact output for ordered context and fields

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/templa-lang/templa/foundation/core/error"
)

func testEntry() *Entry {
	return &Entry{
		Time:      time.Date(2026, 10, 19, 14, 30, 5, 0, time.UTC),
		Level:     LevelWarn,
		Message:   "slow parse",
		Component: "engine",
		Source:    "prog.tpl",
		RequestID: "req-1",
		Fields:    Fields{"length": 42, "decls": 3},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" console", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatText, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	if Format(9).String() != "unknown" {
		t.Errorf("Format(9).String() = %q", Format(9).String())
	}
}

func TestTextFormatter(t *testing.T) {
	f := &TextFormatter{TimestampFormat: "15:04:05"}
	out, err := f.Format(testEntry())
	if err != nil {
		t.Fatal(err)
	}

	want := "14:30:05 WRN engine: slow parse source=prog.tpl request_id=req-1 decls=3 length=42\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}

	f.DisableTimestamp = true
	e := testEntry()
	e.Component = ""
	e.Source = ""
	e.RequestID = ""
	e.Fields = Fields{}
	e.Err = errors.New("boom")
	out, _ = f.Format(e)
	if string(out) != "WRN slow parse error=\"boom\"\n" {
		t.Errorf("Format() = %q", out)
	}
}

func TestConsoleFormatter(t *testing.T) {
	out, err := NewFormatter(FormatConsole).Format(testEntry())
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	if !strings.Contains(s, "\033[33mWRN\033[0m") {
		t.Errorf("level tag not colored: %q", s)
	}
	if !strings.HasSuffix(s, "engine: slow parse source=prog.tpl request_id=req-1 decls=3 length=42\n") {
		t.Errorf("Format() = %q", s)
	}
}

func TestJSONFormatter(t *testing.T) {
	e := testEntry()
	e.Fields["level"] = "shadowed"
	e.Err = mdwerror.New("too large").WithCode(mdwerror.CodeInputTooLarge)

	out, err := (&JSONFormatter{TimestampFormat: time.RFC3339}).Format(e)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(out), `{"timestamp":"2026-10-19T14:30:05Z","level":"warn","message":"slow parse","component":"engine"`) {
		t.Errorf("key order = %s", out)
	}

	var m map[string]interface{}
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("invalid JSON %s: %v", out, err)
	}
	if m["level"] != "warn" || m["field_level"] != "shadowed" {
		t.Errorf("reserved key handling: %v", m)
	}
	if m["source"] != "prog.tpl" || m["request_id"] != "req-1" || m["length"] != float64(42) {
		t.Errorf("context/fields = %v", m)
	}
	details, ok := m["error_details"].(map[string]interface{})
	if !ok || details["code"] != "INPUT_TOO_LARGE" {
		t.Errorf("error_details = %v", m["error_details"])
	}
}

func TestJSONFormatterUnmarshalableField(t *testing.T) {
	e := testEntry()
	e.Fields = Fields{"fn": func() {}, "err": errors.New("plain")}

	out, err := (&JSONFormatter{TimestampFormat: time.RFC3339}).Format(e)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("invalid JSON %s: %v", out, err)
	}
	if _, ok := m["fn"].(string); !ok {
		t.Errorf("fn = %v, want string fallback", m["fn"])
	}
	if m["err"] != "plain" {
		t.Errorf("err = %v", m["err"])
	}
}

func TestLogfmtFormatter(t *testing.T) {
	e := testEntry()
	e.Fields = Fields{"expected": "'=', NAME", "line": 2}
	e.Err = errors.New("bad input")

	out, err := (&LogfmtFormatter{TimestampFormat: time.RFC3339}).Format(e)
	if err != nil {
		t.Fatal(err)
	}
	want := `time=2026-10-19T14:30:05Z level=warn msg="slow parse" component=engine source=prog.tpl request_id=req-1 expected="'=', NAME" line=2 error="bad input"` + "\n"
	if string(out) != want {
		t.Errorf("Format() =\n%s\nwant\n%s", out, want)
	}
}

func TestLogfmtValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"", `""`},
		{"a b", `"a b"`},
		{"k=v", `"k=v"`},
		{`say "x"`, `"say \"x\""`},
	}
	for _, tt := range tests {
		if got := logfmtValue(tt.in); got != tt.want {
			t.Errorf("logfmtValue(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestNewFormatter(t *testing.T) {
	if _, ok := NewFormatter(FormatJSON).(*JSONFormatter); !ok {
		t.Error("FormatJSON did not yield *JSONFormatter")
	}
	if _, ok := NewFormatter(FormatLogfmt).(*LogfmtFormatter); !ok {
		t.Error("FormatLogfmt did not yield *LogfmtFormatter")
	}
	if tf, ok := NewFormatter(FormatText).(*TextFormatter); !ok || tf.Color {
		t.Error("FormatText did not yield a plain *TextFormatter")
	}
	if tf, ok := NewFormatter(Format(9)).(*TextFormatter); !ok || tf.Color {
		t.Error("unknown format did not fall back to text")
	}
}
