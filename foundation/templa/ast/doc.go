// File: doc.go
// Title: templa Abstract Syntax Tree Package Documentation
// Description: Defines the syntax tree produced by the templa parser and
//              the operations on it: structural equality, dumping and
//              traversal.
// Author: templa authors
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial AST implementation
// - 2026-10-19 v0.2.0: templa node kinds, equality and dumper

/*
Package ast defines the Abstract Syntax Tree of templa programs.

Every node implements Node and reports one of 25 kinds. Nodes are created
through their NewXxx constructors and cannot be changed afterwards, so a
tree may be shared between goroutines without locking. Constructors for
operator chains and non-empty lists return an error when their operand
and operator counts do not fit.

Operations:
  - Equal compares two trees structurally, ignoring source positions
  - Dump renders a tree as an indented trace of kind symbols
  - Walk and Inspect traverse a tree in source order
  - ValidateAST checks the invariants of trees built by hand

Example:

	tree, err := parser.Parse("f = 1 + 2 * 3\n")
	if err != nil {
		return err
	}
	fmt.Print(ast.Dump(tree))
*/
package ast
