package cmd

import (
	"bytes"
	"strings"
	"testing"

	mdwparser "github.com/templa-lang/templa/foundation/templa/parser"
)

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name   string
		source string
		offset int
		text   string
		pad    string
	}{
		{"first line", "f(x) 1\n", 5, "f(x) 1", "     "},
		{"second line", "f = 1\ng = [\n", 11, "g = [", "     "},
		{"tabs kept", "g = 1\n\tx y\n", 9, "\tx y", "\t  "},
		{"crlf", "f = 1\r\nbad\r\n", 7, "bad", ""},
		{"end of input", "f = \n", 5, "", ""},
		{"no trailing newline", "f = ", 4, "f = ", "    "},
		{"offset past end", "f", 10, "f", " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, pad := excerpt(tt.source, tt.offset)
			if text != tt.text || pad != tt.pad {
				t.Errorf("excerpt() = (%q, %q), want (%q, %q)", text, pad, tt.text, tt.pad)
			}
		})
	}
}

func TestWriteSyntaxError(t *testing.T) {
	source := "f = 1\n\tg(x) 2\n"
	_, err := mdwparser.Parse(source)
	perr, ok := err.(*mdwparser.ParseError)
	if !ok {
		t.Fatalf("Parse() error = %v, want *ParseError", err)
	}

	var buf bytes.Buffer
	writeSyntaxError(&buf, newPalette(false), "prog.tpl", source, perr)

	lines := strings.Split(buf.String(), "\n")
	if len(lines) != 4 || lines[3] != "" {
		t.Fatalf("output =\n%s", buf.String())
	}
	if !strings.HasPrefix(lines[0], "prog.tpl:2:") || !strings.Contains(lines[0], "error: expected") {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "   2 | \tg(x) 2" {
		t.Errorf("source line = %q", lines[1])
	}
	if lines[2] != "     | \t     ^" {
		t.Errorf("marker line = %q", lines[2])
	}
}

func TestPalette(t *testing.T) {
	plain := newPalette(false)
	if got := plain.render(plain.errorLabel, "error:"); got != "error:" {
		t.Errorf("disabled palette styled text: %q", got)
	}

	colored := newPalette(true)
	if got := colored.render(colored.errorLabel, "error:"); !strings.Contains(got, "error:") {
		t.Errorf("enabled palette lost text: %q", got)
	}
	if got := colored.render(colored.label, ""); got != "" {
		t.Errorf("empty text rendered as %q", got)
	}
}

func TestColorizeDump(t *testing.T) {
	dump := "PROGRAM\n DECL_FUNC\n  FUNC_NAME: f\n"

	a := &app{palette: newPalette(false)}
	if got := a.colorizeDump(dump); got != dump {
		t.Errorf("colorizeDump() without color = %q", got)
	}

	a.palette = newPalette(true)
	got := a.colorizeDump(dump)
	if strings.Count(got, "\n") != 3 {
		t.Errorf("line structure changed: %q", got)
	}
	for _, want := range []string{"PROGRAM", "DECL_FUNC", "FUNC_NAME", ": ", "f"} {
		if !strings.Contains(got, want) {
			t.Errorf("colorized dump lacks %q: %q", want, got)
		}
	}
}
