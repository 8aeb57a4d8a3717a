package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwast "github.com/templa-lang/templa/foundation/templa/ast"
	mdwparser "github.com/templa-lang/templa/foundation/templa/parser"
)

// stdinName is the file argument that reads from stdin
const stdinName = "-"

// load parses the program at path. Syntax errors are printed with a
// source excerpt and returned as reportedError.
func (a *app) load(cmd *cobra.Command, path string) (*mdwast.AST, error) {
	var (
		tree *mdwast.AST
		err  error
		seen bytes.Buffer
	)
	if path == stdinName {
		tree, err = a.engine.ParseReader(io.TeeReader(cmd.InOrStdin(), &seen), "stdin")
	} else {
		tree, err = a.engine.ParseFile(path)
	}
	if err == nil {
		return tree, nil
	}

	var perr *mdwparser.ParseError
	if !errors.As(err, &perr) {
		return nil, err
	}

	name, source := "stdin", seen.String()
	if path != stdinName {
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			return nil, err
		}
		name, source = path, string(data)
	}
	writeSyntaxError(cmd.ErrOrStderr(), a.palette, name, source, perr)
	return nil, reportedError{err}
}
