// File: doc.go
// Title: templa Package Documentation
// Description: Documents the templa engine: the high-level entry point for
//              parsing templa programs and working with their syntax trees.
// Author: templa authors
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial package documentation
// - 2026-10-19 v0.2.0: templa engine

/*
Package templa is the front end of the templa language.

The Engine parses source text into an ast.AST and offers the operations
defined on trees: structural comparison, dumping and statistics. The
language itself lives in the subpackages:

  - ast: node types, Equal, Dump, Walk
  - parser: the grammar and its syntax errors

Errors returned by the engine are *error.Error values from
foundation/core/error. A syntax error has code TEMPLA_SYNTAX and details
"line", "column" and "expected"; the underlying *parser.ParseError stays
reachable through errors.As.

Example:

	engine, err := templa.New(templa.Options{})
	if err != nil {
		return err
	}
	tree, err := engine.ParseFile("main.tpl")
	if err != nil {
		return err
	}
	fmt.Print(engine.Dump(tree))
*/
package templa
