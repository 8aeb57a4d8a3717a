// File: templa.go
// Title: templa Engine
// Description: High-level entry point of the templa front end. Wires the
//              parser, logger and dump options together and converts parse
//              failures into coded errors carrying position details.
// Author: templa authors
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial engine implementation
// - 2026-10-19 v0.2.0: templa parse, dump, equal and stats facade
// - 2026-10-19 v0.2.1: Blank input reported as a positioned syntax error

package templa

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/templa-lang/templa/foundation/core/error"
	mdwlog "github.com/templa-lang/templa/foundation/core/log"
	mdwast "github.com/templa-lang/templa/foundation/templa/ast"
	mdwparser "github.com/templa-lang/templa/foundation/templa/parser"
)

// Engine coordinates parsing and the operations on parsed trees
type Engine struct {
	parser  *mdwparser.Parser
	logger  *mdwlog.Logger
	options Options
}

// Options configures the templa engine
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *mdwlog.Logger

	// MaxInputLength limits the source size in bytes (default: 1 MiB)
	MaxInputLength int

	// DumpOptions controls Dump output (default: one space per level)
	DumpOptions mdwast.DumpOptions

	// SlowThreshold logs a warning for parses taking longer (0 disables)
	SlowThreshold time.Duration
}

// Stats summarizes a parsed program
type Stats struct {
	Decls int
	Nodes int
	Depth int
	Kinds map[mdwast.Kind]int
}

// New creates a new templa engine with the specified options
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = mdwparser.DefaultMaxInputLength
	}
	if opts.DumpOptions.Indent == "" {
		opts.DumpOptions = mdwast.DefaultDumpOptions()
	}

	logger := opts.Logger.WithComponent("templa-engine")

	p, err := mdwparser.New(mdwparser.Options{
		Logger:         opts.Logger,
		MaxInputLength: opts.MaxInputLength,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to initialize templa parser").
			WithOperation("templa.New")
	}

	logger.Debug("templa engine initialized", mdwlog.Fields{
		"maxInputLength": opts.MaxInputLength,
	})

	return &Engine{
		parser:  p,
		logger:  logger,
		options: opts,
	}, nil
}

// Parse parses a templa program. Syntax errors are returned as
// *mdwerror.Error with code TEMPLA_SYNTAX wrapping a *parser.ParseError.
func (e *Engine) Parse(source string) (*mdwast.AST, error) {
	return e.parse(source, "")
}

// parse tags logs with name when it is not empty
func (e *Engine) parse(source, name string) (*mdwast.AST, error) {
	requestID := uuid.NewString()
	logger := e.logger.WithRequestID(requestID)
	if name != "" {
		logger = logger.WithSource(name)
	}

	timer := logger.StartTimer("templa_parse").WithField("length", len(source))

	tree, err := e.parser.Parse(source)
	if err != nil {
		err = wrapParseError(err, requestID)
		timer.StopWithError(err)
		return nil, err
	}

	if errs := mdwast.ValidateAST(tree.Root()); len(errs) > 0 {
		err := mdwerror.Wrap(errors.Join(errs...), "parser produced an inconsistent tree").
			WithCode(mdwerror.CodeInternal).
			WithOperation("templa.Parse").
			WithRequestID(requestID)
		timer.StopWithError(err)
		logger.LogError(err)
		return nil, err
	}

	elapsed := timer.WithField("decls", len(tree.Root().Decls())).Stop()
	if e.options.SlowThreshold > 0 && elapsed > e.options.SlowThreshold {
		logger.Warn("slow templa parse", mdwlog.Fields{
			"length":    len(source),
			"elapsed":   elapsed.String(),
			"threshold": e.options.SlowThreshold.String(),
		})
	}
	return tree, nil
}

// ParseReader reads all of r and parses it. name labels the source in
// error details.
func (e *Engine) ParseReader(r io.Reader, name string) (*mdwast.AST, error) {
	// one byte over the limit is enough to trigger the size check
	data, err := io.ReadAll(io.LimitReader(r, int64(e.options.MaxInputLength)+1))
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read source").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("templa.ParseReader").
			WithDetail("source", name)
	}

	tree, err := e.parse(string(data), name)
	if err != nil {
		var merr *mdwerror.Error
		if errors.As(err, &merr) {
			merr.WithDetail("source", name)
		}
		return nil, err
	}
	return tree, nil
}

// ParseFile reads and parses the file at path
func (e *Engine) ParseFile(path string) (*mdwast.AST, error) {
	f, err := os.Open(path)
	if err != nil {
		code := mdwerror.CodeInvalidInput
		if errors.Is(err, os.ErrNotExist) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "failed to open source file").
			WithCode(code).
			WithOperation("templa.ParseFile").
			WithDetail("source", path)
	}
	defer f.Close()

	return e.ParseReader(f, path)
}

// Validate reports whether source is a syntactically valid program
func (e *Engine) Validate(source string) error {
	_, err := e.Parse(source)
	return err
}

// Dump renders tree with the engine's dump options
func (e *Engine) Dump(tree *mdwast.AST) string {
	return mdwast.DumpWith(tree.Root(), e.options.DumpOptions)
}

// Equal compares two trees structurally
func (e *Engine) Equal(a, b *mdwast.AST) bool {
	return a.Equal(b)
}

// Stats counts the nodes of tree
func (e *Engine) Stats(tree *mdwast.AST) Stats {
	root := tree.Root()
	stats := Stats{Kinds: mdwast.CountKinds(root)}
	if root == nil {
		return stats
	}

	stats.Decls = len(root.Decls())
	for _, n := range stats.Kinds {
		stats.Nodes += n
	}
	mdwast.Walk(depthVisitor{max: &stats.Depth}, root)
	return stats
}

type depthVisitor struct {
	depth int
	max   *int
}

func (v depthVisitor) Visit(node mdwast.Node) mdwast.Visitor {
	if node == nil {
		return nil
	}
	d := v.depth + 1
	if d > *v.max {
		*v.max = d
	}
	return depthVisitor{depth: d, max: v.max}
}

// wrapParseError attaches position details to syntax errors
func wrapParseError(err error, requestID string) error {
	var perr *mdwparser.ParseError
	if errors.As(err, &perr) {
		return mdwerror.Wrap(perr, "parse failed").
			WithCode(mdwerror.CodeSyntax).
			WithOperation("templa.Parse").
			WithRequestID(requestID).
			WithDetail("line", perr.Line).
			WithDetail("column", perr.Column).
			WithDetail("expected", perr.Expected)
	}

	var merr *mdwerror.Error
	if errors.As(err, &merr) {
		return merr.WithRequestID(requestID)
	}
	return mdwerror.Wrap(err, "parse failed").
		WithCode(mdwerror.CodeInternal).
		WithRequestID(requestID)
}
