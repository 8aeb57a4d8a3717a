// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              serialization.
// Author: templa authors
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-19 v0.2.0: Front-end codes, chain lookups through fmt wrapping

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}
	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("line %d, column %d", 3, 7)
	if err.Error() != "line 3, column 7" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap coded error",
			err:     New("unexpected token").WithCode(CodeSyntax),
			message: "parse failed",
			wantMsg: "parse failed: unexpected token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}
			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}
			if !errors.Is(wrapped, tt.err) {
				t.Error("errors.Is should find the wrapped cause")
			}
		})
	}
}

func TestWrapInheritsClassification(t *testing.T) {
	inner := New("bad token").WithCode(CodeSyntax).WithDetail("line", 2).WithRequestID("req-1")
	outer := Wrap(inner, "parse failed")

	if outer.Code() != CodeSyntax {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeSyntax)
	}
	if outer.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", outer.Severity(), SeverityLow)
	}
	if outer.Details()["line"] != 2 {
		t.Errorf("details not inherited: %v", outer.Details())
	}
	if outer.RequestID() != "req-1" {
		t.Errorf("RequestID() = %q", outer.RequestID())
	}
	if outer.Message() != "parse failed" {
		t.Errorf("Message() = %q", outer.Message())
	}
}

func TestWrapTruncatesDeepChains(t *testing.T) {
	var err error = errors.New("root")
	for i := 0; i < MaxErrorChainDepth+5; i++ {
		err = Wrap(err, fmt.Sprintf("level %d", i))
	}

	coded := err.(*Error)
	if coded.Details()["truncated"] != true {
		t.Error("deep chain should be truncated")
	}
	if !strings.Contains(coded.Error(), "root") {
		t.Errorf("truncated message should keep the root cause: %q", coded.Error())
	}
}

func TestWithCode(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeSyntax, SeverityLow},
		{CodeInvalidInput, SeverityLow},
		{CodeNotFound, SeverityHigh},
		{CodeInvalidConfig, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", err.Code(), tt.code)
			}
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}
}

func TestWithSeverityIsNotOverridden(t *testing.T) {
	err := New("x").WithSeverity(SeverityCritical).WithCode(CodeSyntax)
	if err.Severity() != SeverityCritical {
		t.Errorf("explicit severity overridden: %v", err.Severity())
	}
}

func TestWithDetails(t *testing.T) {
	err := New("x").WithDetail("a", 1).WithDetails(map[string]interface{}{"b": "two"})

	details := err.Details()
	if details["a"] != 1 || details["b"] != "two" {
		t.Errorf("Details() = %v", details)
	}

	details["a"] = 99
	if err.Details()["a"] != 1 {
		t.Error("Details() must return a copy")
	}
}

func TestHasCode(t *testing.T) {
	syntax := New("bad").WithCode(CodeSyntax)

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct", syntax, CodeSyntax, true},
		{"other code", syntax, CodeNotFound, false},
		{"wrapped by fmt", fmt.Errorf("context: %w", syntax), CodeSyntax, true},
		{"inner code under different outer", Wrap(syntax, "outer").WithCode(CodeInternal), CodeSyntax, true},
		{"plain error", errors.New("plain"), CodeSyntax, false},
		{"nil", nil, CodeSyntax, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCodeAndSeverity(t *testing.T) {
	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Errorf("GetCode(plain) = %v", got)
	}
	if got := GetSeverity(errors.New("plain")); got != SeverityMedium {
		t.Errorf("GetSeverity(plain) = %v", got)
	}

	err := fmt.Errorf("ctx: %w", New("x").WithCode(CodeNotFound))
	if got := GetCode(err); got != CodeNotFound {
		t.Errorf("GetCode() = %v", got)
	}
	if got := GetSeverity(err); got != SeverityHigh {
		t.Errorf("GetSeverity() = %v", got)
	}
}

func TestCodeExitCode(t *testing.T) {
	if CodeSyntax.ExitCode() != 1 {
		t.Errorf("syntax exit code = %d", CodeSyntax.ExitCode())
	}
	if CodeUnknown.ExitCode() != 70 {
		t.Errorf("unknown exit code = %d", CodeUnknown.ExitCode())
	}
	if !CodeSyntax.IsValid() || Code("NOPE").IsValid() {
		t.Error("IsValid() mismatch")
	}
}

func TestString(t *testing.T) {
	err := New("broken").
		WithCode(CodeSyntax).
		WithOperation("parse").
		WithRequestID("req-9").
		WithDetail("line", 1).
		WithDetail("column", 6)

	s := err.String()
	for _, want := range []string{"Error: broken", "Code: TEMPLA_SYNTAX", "Operation: parse", "RequestID: req-9", "Details: {column=6, line=1}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("cause"), "outer").WithCode(CodeSyntax).WithOperation("parse")

	data, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatalf("MarshalJSON() error = %v", jsonErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("invalid JSON: %v", jsonErr)
	}
	if decoded["code"] != "TEMPLA_SYNTAX" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["cause"] != "cause" {
		t.Errorf("cause = %v", decoded["cause"])
	}
	if decoded["severity"] != "low" {
		t.Errorf("severity = %v", decoded["severity"])
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("root")
	err := Wrap(Wrap(root, "middle"), "outer")
	if err.RootCause() != root {
		t.Errorf("RootCause() = %v", err.RootCause())
	}
}
