// File: visitor.go
// Title: templa AST Traversal
// Description: Depth-first traversal of syntax trees in source order,
//              plus a collecting visitor and a structural validator used by
//              the engine and the stats command.
// Author: templa authors
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial visitor pattern implementation
// - 2026-10-19 v0.2.0: Single Visit method, Children in source order

package ast

import (
	"fmt"
)

// Visitor is invoked for each node encountered by Walk. If the result w
// is not nil, Walk visits each child of node with w, followed by a call of
// w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses the tree rooted at node depth-first in source order
func Walk(v Visitor, node Node) {
	if isNil(node) {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}
	for _, child := range Children(node) {
		Walk(v, child)
	}
	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect calls f for every node in source order. Children of a node are
// skipped when f returns false for it. f is called with nil after the
// children of a node have been visited.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

// Children returns the direct children of node in source order. Operators
// appear between their operands; absent optional children are omitted.
func Children(node Node) []Node {
	var out []Node
	add := func(n Node) {
		if !isNil(n) {
			out = append(out, n)
		}
	}

	switch x := node.(type) {
	case *Program:
		for _, d := range x.decls {
			add(d)
		}
	case *DeclFunc:
		add(x.params)
		add(x.body)
	case *DeclParams:
		for _, p := range x.params {
			add(p)
		}
	case *DeclParam:
		add(x.pattern)
	case *Expression:
		add(x.value)
	case *LetExpression:
		for _, d := range x.decls {
			add(d)
		}
		add(x.body)
	case *IfExpression:
		add(x.cond)
		add(x.then)
		add(x.elseE)
	case *CaseExpression:
		for _, w := range x.whens {
			add(w)
		}
		add(x.otherwise)
	case *CaseWhen:
		add(x.cond)
		add(x.then)
	case *PrimaryExpression:
		for i, f := range x.formulae {
			if i > 0 && i-1 < len(x.operators) {
				add(x.operators[i-1])
			}
			add(f)
		}
	case *Formula:
		for i, t := range x.terms {
			if i > 0 && i-1 < len(x.operators) {
				add(x.operators[i-1])
			}
			add(t)
		}
	case *Term:
		for i, f := range x.factors {
			if i > 0 && i-1 < len(x.operators) {
				add(x.operators[i-1])
			}
			add(f)
		}
	case *Factor:
		add(x.value)
	case *Constant:
		if x.typ == ConstList {
			add(x.list)
		}
	case *List:
		add(x.value)
	case *EnumList:
		for _, e := range x.elements {
			add(e)
		}
	case *FuncCall:
		add(x.args)
	case *CallArgs:
		for _, a := range x.args {
			add(a)
		}
	}
	return out
}

// CollectorVisitor collects nodes of selected kinds in source order
type CollectorVisitor struct {
	kinds map[Kind]bool
	Nodes []Node
}

// NewCollectorVisitor creates a collector for the given kinds; no kinds
// means every node is collected
func NewCollectorVisitor(kinds ...Kind) *CollectorVisitor {
	cv := &CollectorVisitor{Nodes: make([]Node, 0)}
	if len(kinds) > 0 {
		cv.kinds = make(map[Kind]bool, len(kinds))
		for _, k := range kinds {
			cv.kinds[k] = true
		}
	}
	return cv
}

// Visit implements Visitor
func (cv *CollectorVisitor) Visit(node Node) Visitor {
	if node == nil {
		return nil
	}
	if cv.kinds == nil || cv.kinds[node.Kind()] {
		cv.Nodes = append(cv.Nodes, node)
	}
	return cv
}

// Reset clears all collected nodes
func (cv *CollectorVisitor) Reset() {
	cv.Nodes = cv.Nodes[:0]
}

// Collect returns the nodes of the given kinds under node, in source order
func Collect(node Node, kinds ...Kind) []Node {
	cv := NewCollectorVisitor(kinds...)
	Walk(cv, node)
	return cv.Nodes
}

// CountKinds returns how many nodes of each kind appear under node
func CountKinds(node Node) map[Kind]int {
	counts := make(map[Kind]int)
	Inspect(node, func(n Node) bool {
		if n != nil {
			counts[n.Kind()]++
		}
		return true
	})
	return counts
}

// ValidationVisitor checks the structural invariants of hand-built trees:
// required children present, non-empty sequences, operator counts one
// less than operand counts, non-empty names.
type ValidationVisitor struct {
	errors []error
}

// NewValidationVisitor creates a new validation visitor
func NewValidationVisitor() *ValidationVisitor {
	return &ValidationVisitor{errors: make([]error, 0)}
}

// Errors returns all validation errors found
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

// HasErrors returns true if validation errors were found
func (vv *ValidationVisitor) HasErrors() bool {
	return len(vv.errors) > 0
}

func (vv *ValidationVisitor) addError(n Node, format string, args ...interface{}) {
	vv.errors = append(vv.errors, fmt.Errorf("%s at %s: %s", n.Kind().Symbol(), n.Pos(), fmt.Sprintf(format, args...)))
}

// Visit implements Visitor
func (vv *ValidationVisitor) Visit(node Node) Visitor {
	if node == nil {
		return nil
	}

	switch x := node.(type) {
	case *Program:
		if len(x.decls) == 0 {
			vv.addError(x, "no declarations")
		}
	case *DeclFunc:
		if x.name == "" {
			vv.addError(x, "empty function name")
		}
		if isNil(x.body) {
			vv.addError(x, "missing body")
		}
	case *DeclParams:
		if len(x.params) == 0 {
			vv.addError(x, "empty parameter list")
		}
	case *DeclParam:
		if isNil(x.pattern) && x.name == "" {
			vv.addError(x, "neither pattern nor name")
		}
	case *ListMatch:
		if len(x.elements) == 0 || x.rest == "" {
			vv.addError(x, "needs at least one element name and a rest name")
		}
	case *TypeMatch:
		if x.paramName == "" || x.typeName == "" {
			vv.addError(x, "empty parameter or type name")
		}
	case *Expression:
		if isNil(x.value) {
			vv.addError(x, "empty expression")
		}
	case *LetExpression:
		if len(x.decls) == 0 {
			vv.addError(x, "no bindings")
		}
		if isNil(x.body) {
			vv.addError(x, "missing body")
		}
	case *IfExpression:
		if isNil(x.cond) || isNil(x.then) || isNil(x.elseE) {
			vv.addError(x, "missing branch")
		}
	case *CaseExpression:
		if isNil(x.otherwise) {
			vv.addError(x, "missing otherwise branch")
		}
	case *CaseWhen:
		if isNil(x.cond) || isNil(x.then) {
			vv.addError(x, "missing guard or branch")
		}
	case *PrimaryExpression:
		vv.checkChain(x, len(x.formulae), len(x.operators))
	case *Formula:
		vv.checkChain(x, len(x.terms), len(x.operators))
	case *Term:
		vv.checkChain(x, len(x.factors), len(x.operators))
	case *Factor:
		if isNil(x.value) {
			vv.addError(x, "missing operand")
		} else if _, inner := x.value.(*Factor); inner != x.negated {
			vv.addError(x, "only a negated factor may wrap another factor")
		}
	case *Constant:
		if x.typ == ConstList && isNil(x.list) {
			vv.addError(x, "missing list")
		}
	case *List:
		if isNil(x.value) {
			vv.addError(x, "missing list body")
		}
	case *EnumList:
		if len(x.elements) == 0 {
			vv.addError(x, "empty enumeration")
		}
	case *FuncCall:
		if x.name == "" {
			vv.addError(x, "empty function name")
		}
	case *CallArgs:
		if len(x.args) == 0 {
			vv.addError(x, "empty argument list")
		}
	}
	return vv
}

func (vv *ValidationVisitor) checkChain(n Node, operands, operators int) {
	if operands == 0 {
		vv.addError(n, "no operands")
		return
	}
	if operators != operands-1 {
		vv.addError(n, "%d operands need %d operators, got %d", operands, operands-1, operators)
	}
}

// ValidateAST validates an AST node and returns any validation errors
func ValidateAST(node Node) []error {
	visitor := NewValidationVisitor()
	Walk(visitor, node)
	return visitor.Errors()
}
