// File: errors.go
// Title: templa Parse Errors
// Description: Syntax error value reported when a source text does not
//              match the grammar. Carries the farthest failure position
//              and the terminals that would have been accepted there.
// Author: templa authors
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: ParseError with message and token
// - 2026-10-19 v0.2.0: Expected-set reporting at the farthest failure

package parser

import (
	"fmt"
	"strings"
)

// ParseError represents a syntax error with position information
type ParseError struct {
	Line     int
	Column   int
	Offset   int
	Expected []string
	Found    string
}

func (pe *ParseError) Error() string {
	var want string
	switch len(pe.Expected) {
	case 0:
		want = "valid input"
	case 1:
		want = pe.Expected[0]
	default:
		want = "one of " + strings.Join(pe.Expected, ", ")
	}
	if pe.Found == "" {
		return fmt.Sprintf("syntax error at line %d, column %d: expected %s",
			pe.Line, pe.Column, want)
	}
	return fmt.Sprintf("syntax error at line %d, column %d: expected %s, found %s",
		pe.Line, pe.Column, want, pe.Found)
}

// Expects reports whether what is among the expected terminals
func (pe *ParseError) Expects(what string) bool {
	for _, e := range pe.Expected {
		if e == what {
			return true
		}
	}
	return false
}

func (s *scanner) parseError() *ParseError {
	offset := s.farthest
	if offset < 0 {
		offset = s.cursor
	}
	pos := s.position(offset)
	return &ParseError{
		Line:     pos.Line,
		Column:   pos.Column,
		Offset:   offset,
		Expected: s.expectedAtFarthest(),
		Found:    s.found(offset),
	}
}
