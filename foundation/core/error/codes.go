// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the templa front end so
//              that callers can classify failures without inspecting messages.
// Author: templa authors
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Reduced to front-end codes, added TEMPLA_SYNTAX

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeNotFound     Code = "NOT_FOUND"

	// Source handling
	CodeInputTooLarge Code = "INPUT_TOO_LARGE"
	CodeSyntax        Code = "TEMPLA_SYNTAX"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput, CodeNotFound,
		CodeInputTooLarge, CodeSyntax,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// ExitCode maps an error code to a process exit status for the CLI.
// Syntax errors use 1 so that scripts can tell them apart from usage
// or environment problems.
func (c Code) ExitCode() int {
	switch c {
	case CodeSyntax:
		return 1
	case CodeInvalidInput, CodeInputTooLarge:
		return 2
	case CodeNotFound:
		return 3
	case CodeConfigError, CodeInvalidConfig:
		return 4
	default:
		return 70
	}
}
