// File: lexer.go
// Title: templa Scanner Primitives
// Description: Scannerless token recognizers used by the recursive-descent
//              parser. Each recognizer skips blanks and tries to match one
//              terminal at the cursor. On a mismatch it stops in front of
//              the offending text and records what was expected there.
// Author: templa authors
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial lexer implementation
// - 2026-10-19 v0.2.0: Cursor-based recognizers with farthest-failure tracking

package parser

import (
	"sort"
	"strconv"

	mdwast "github.com/templa-lang/templa/foundation/templa/ast"
)

// Expected descriptions for terminal classes
const (
	ExpectName    = "NAME"
	ExpectInteger = "INTEGER"
	ExpectChar    = "CHAR"
	ExpectString  = "STRING"
	ExpectNewline = "newline"
	ExpectEOF     = "end of input"
)

// Keywords are reserved and never match NAME
var Keywords = []string{"let", "in", "if", "then", "else", "case", "otherwise", "true", "false"}

var keywordSet = func() map[string]bool {
	m := make(map[string]bool, len(Keywords))
	for _, k := range Keywords {
		m[k] = true
	}
	return m
}()

// multi-character symbols; a shorter symbol never matches where one of
// these starts
var longSymbols = []string{"::", "..", "==", "!=", "<=", ">=", "||", "&&"}

// IsKeyword reports whether word is reserved
func IsKeyword(word string) bool {
	return keywordSet[word]
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || isDigit(c)
}

func quote(s string) string {
	return "'" + s + "'"
}

// scanner holds the cursor over one source text. It is created per parse.
type scanner struct {
	src    string
	cursor int

	// byte offsets at which each line starts
	lines []int

	farthest int
	expected map[string]struct{}
}

func newScanner(src string) *scanner {
	lines := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &scanner{
		src:      src,
		lines:    lines,
		farthest: -1,
		expected: make(map[string]struct{}),
	}
}

// position converts a byte offset to a 1-based line and column
func (s *scanner) position(offset int) mdwast.Position {
	line := sort.Search(len(s.lines), func(i int) bool { return s.lines[i] > offset }) - 1
	if line < 0 {
		line = 0
	}
	return mdwast.Position{
		Line:   line + 1,
		Column: offset - s.lines[line] + 1,
		Offset: offset,
	}
}

func (s *scanner) mark() int {
	return s.cursor
}

func (s *scanner) reset(m int) {
	s.cursor = m
}

func (s *scanner) skipBlanks() {
	for s.cursor < len(s.src) && isBlank(s.src[s.cursor]) {
		s.cursor++
	}
}

// here skips blanks and returns the position of the next token
func (s *scanner) here() mdwast.Position {
	s.skipBlanks()
	return s.position(s.cursor)
}

// fail records that what was expected at offset
func (s *scanner) fail(offset int, what string) {
	switch {
	case offset > s.farthest:
		s.farthest = offset
		s.expected = map[string]struct{}{what: {}}
	case offset == s.farthest:
		s.expected[what] = struct{}{}
	}
}

// expectedAtFarthest returns the sorted expectations at the farthest failure
func (s *scanner) expectedAtFarthest() []string {
	out := make([]string, 0, len(s.expected))
	for e := range s.expected {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

// found describes the text at offset for error messages
func (s *scanner) found(offset int) string {
	if offset >= len(s.src) {
		return ExpectEOF
	}
	c := s.src[offset]
	switch {
	case c == '\n':
		return ExpectNewline
	case isIdentChar(c):
		end := offset
		for end < len(s.src) && isIdentChar(s.src[end]) {
			end++
		}
		return quote(s.src[offset:end])
	default:
		return quote(s.src[offset : offset+1])
	}
}

// symbol matches a fixed punctuation or operator token
func (s *scanner) symbol(text string) bool {
	s.skipBlanks()
	start := s.cursor
	if !hasPrefixAt(s.src, start, text) {
		s.fail(start, quote(text))
		return false
	}
	for _, long := range longSymbols {
		if len(long) > len(text) && long[:len(text)] == text && hasPrefixAt(s.src, start, long) {
			s.fail(start, quote(text))
			return false
		}
	}
	s.cursor += len(text)
	return true
}

// keyword matches a reserved word ending on a word boundary
func (s *scanner) keyword(word string) bool {
	s.skipBlanks()
	start := s.cursor
	end := start + len(word)
	if !hasPrefixAt(s.src, start, word) || end < len(s.src) && isIdentChar(s.src[end]) {
		s.fail(start, quote(word))
		return false
	}
	s.cursor = end
	return true
}

// name matches an identifier that is not a keyword
func (s *scanner) name() (string, bool) {
	s.skipBlanks()
	start := s.cursor
	if start >= len(s.src) || !isLetter(s.src[start]) {
		s.fail(start, ExpectName)
		return "", false
	}
	end := start + 1
	for end < len(s.src) && isIdentChar(s.src[end]) {
		end++
	}
	word := s.src[start:end]
	if keywordSet[word] {
		s.fail(start, ExpectName)
		return "", false
	}
	s.cursor = end
	return word, true
}

// integer matches an optionally signed decimal integer
func (s *scanner) integer() (int, bool) {
	s.skipBlanks()
	start := s.cursor
	end := start
	if end < len(s.src) && (s.src[end] == '+' || s.src[end] == '-') {
		end++
	}
	digits := end
	for end < len(s.src) && isDigit(s.src[end]) {
		end++
	}
	if end == digits {
		s.fail(start, ExpectInteger)
		return 0, false
	}
	v, err := strconv.Atoi(s.src[start:end])
	if err != nil {
		// out of range for int
		s.fail(start, ExpectInteger)
		return 0, false
	}
	s.cursor = end
	return v, true
}

// char matches a quoted character literal 'c'
func (s *scanner) char() (byte, bool) {
	s.skipBlanks()
	start := s.cursor
	if start >= len(s.src) || s.src[start] != '\'' {
		s.fail(start, ExpectChar)
		return 0, false
	}
	if start+1 >= len(s.src) || s.src[start+1] == '\'' || s.src[start+1] == '\n' {
		s.fail(start+1, "character")
		return 0, false
	}
	if start+2 >= len(s.src) || s.src[start+2] != '\'' {
		s.fail(start+2, quote("'"))
		return 0, false
	}
	s.cursor = start + 3
	return s.src[start+1], true
}

// rangeChar matches a range bound in a character list: a quoted
// character or a single bare byte
func (s *scanner) rangeChar() (byte, bool) {
	if c, ok := s.char(); ok {
		return c, true
	}
	start := s.cursor
	if start >= len(s.src) {
		return 0, false
	}
	c := s.src[start]
	if c == '\n' || c == '\'' || c == '.' || isBlank(c) {
		return 0, false
	}
	s.cursor++
	return c, true
}

// str matches a double-quoted string literal without escapes
func (s *scanner) str() (string, bool) {
	s.skipBlanks()
	start := s.cursor
	if start >= len(s.src) || s.src[start] != '"' {
		s.fail(start, ExpectString)
		return "", false
	}
	end := start + 1
	for end < len(s.src) && s.src[end] != '"' {
		end++
	}
	if end >= len(s.src) {
		s.fail(end, quote(`"`))
		return "", false
	}
	s.cursor = end + 1
	return s.src[start+1 : end], true
}

// newline matches a single line break
func (s *scanner) newline() bool {
	s.skipBlanks()
	if s.cursor < len(s.src) && s.src[s.cursor] == '\n' {
		s.cursor++
		return true
	}
	s.fail(s.cursor, ExpectNewline)
	return false
}

// newlines matches zero or more line breaks
func (s *scanner) newlines() {
	for s.newline() {
	}
}

// optNewline matches at most one line break
func (s *scanner) optNewline() {
	s.newline()
}

// eof matches the end of the input
func (s *scanner) eof() bool {
	s.skipBlanks()
	if s.cursor >= len(s.src) {
		return true
	}
	s.fail(s.cursor, ExpectEOF)
	return false
}

func hasPrefixAt(src string, offset int, prefix string) bool {
	return offset <= len(src) && len(src)-offset >= len(prefix) && src[offset:offset+len(prefix)] == prefix
}
