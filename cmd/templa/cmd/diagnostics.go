package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	mdwparser "github.com/templa-lang/templa/foundation/templa/parser"
)

// reportedError marks an error whose diagnostic was already printed
type reportedError struct {
	err error
}

func (r reportedError) Error() string { return r.err.Error() }
func (r reportedError) Unwrap() error { return r.err }

func reported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}

// excerpt returns the source line containing offset and the padding that
// puts a caret under offset. Tabs in front of offset are kept in the
// padding so the caret lines up.
func excerpt(source string, offset int) (text, pad string) {
	if offset > len(source) {
		offset = len(source)
	}
	if offset < 0 {
		offset = 0
	}

	start := strings.LastIndexByte(source[:offset], '\n') + 1
	end := len(source)
	if i := strings.IndexByte(source[offset:], '\n'); i >= 0 {
		end = offset + i
	}
	text = strings.TrimSuffix(source[start:end], "\r")

	var b strings.Builder
	for _, r := range source[start:offset] {
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	return text, b.String()
}

// writeSyntaxError prints a syntax error with the offending source line
//
//	prog.tpl:1:6: error: expected '=', found '1'
//	   1 | f(x) 1
//	     |      ^
func writeSyntaxError(w io.Writer, p palette, name, source string, perr *mdwparser.ParseError) {
	loc := fmt.Sprintf("%s:%d:%d:", name, perr.Line, perr.Column)
	msg := perr.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		msg = msg[i+2:]
	}
	fmt.Fprintf(w, "%s %s %s\n", p.render(p.location, loc), p.render(p.errorLabel, "error:"), msg)

	text, pad := excerpt(source, perr.Offset)
	num := fmt.Sprintf("%4d |", perr.Line)
	bar := strings.Repeat(" ", len(num)-1) + "|"
	fmt.Fprintf(w, "%s %s\n", p.render(p.gutter, num), text)
	fmt.Fprintf(w, "%s %s%s\n", p.render(p.gutter, bar), pad, p.render(p.caret, "^"))
}
