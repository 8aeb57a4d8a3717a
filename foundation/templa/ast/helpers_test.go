// File: helpers_test.go
// Title: AST Test Builders
// Description: Small constructors for assembling test trees by hand.
// Author: templa authors
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test helpers
// - 2026-10-19 v0.2.0: templa node builders

package ast

import (
	"testing"
)

// must unwraps a constructor result in fixtures known to be well formed
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func at(line, col int) Position {
	return Position{Line: line, Column: col}
}

func mustRel(t *testing.T, pos Position, op string) *RelationalOperator {
	t.Helper()
	o, err := NewRelationalOperator(pos, op)
	if err != nil {
		t.Fatal(err)
	}
	return o
}

func mustAdd(t *testing.T, pos Position, op string) *AdditiveOperator {
	t.Helper()
	o, err := NewAdditiveOperator(pos, op)
	if err != nil {
		t.Fatal(err)
	}
	return o
}

func mustMul(t *testing.T, pos Position, op string) *MultOperator {
	t.Helper()
	o, err := NewMultOperator(pos, op)
	if err != nil {
		t.Fatal(err)
	}
	return o
}

func intFactor(pos Position, v int) *Factor {
	return NewFactor(pos, NewIntConstant(pos, v))
}

func callFactor(pos Position, name string) *Factor {
	return NewFactor(pos, NewFuncCall(pos, name, nil))
}

// single wraps one factor into the primary -> formula -> term chain
func single(f *Factor) *PrimaryExpression {
	pos := f.Pos()
	term := must(NewTerm(pos, []*Factor{f}, nil))
	form := must(NewFormula(pos, SignNone, []*Term{term}, nil))
	return must(NewPrimaryExpression(pos, []*Formula{form}, nil))
}

func exprOf(v ExprNode) *Expression {
	return NewExpression(v.Pos(), v)
}

// precedenceTree builds "f = 1 + 2 * 3" with positions shifted by col
func precedenceTree(t *testing.T, col int) *AST {
	t.Helper()
	c := func(n int) Position { return at(1, n+col) }

	t1 := must(NewTerm(c(5), []*Factor{intFactor(c(5), 1)}, nil))
	t2 := must(NewTerm(c(9),
		[]*Factor{intFactor(c(9), 2), intFactor(c(13), 3)},
		[]*MultOperator{mustMul(t, c(11), "*")}))
	form := must(NewFormula(c(5), SignNone, []*Term{t1, t2}, []*AdditiveOperator{mustAdd(t, c(7), "+")}))
	primary := must(NewPrimaryExpression(c(5), []*Formula{form}, nil))
	decl := NewDeclFunc(c(1), "f", nil, exprOf(primary))
	return NewAST(NewProgram(c(1), []*DeclFunc{decl}))
}

// ifTree builds "g(h1:h2:rest) = if x > 0 then 1 else 0"
func ifTree(t *testing.T) *AST {
	t.Helper()
	cond := must(NewPrimaryExpression(at(1, 19),
		[]*Formula{single(callFactor(at(1, 19), "x")).Formulae()[0], single(intFactor(at(1, 23), 0)).Formulae()[0]},
		[]*RelationalOperator{mustRel(t, at(1, 21), ">")}))
	ifExpr := NewIfExpression(at(1, 16),
		exprOf(cond),
		exprOf(single(intFactor(at(1, 30), 1))),
		exprOf(single(intFactor(at(1, 37), 0))))
	param := NewDeclParamPattern(at(1, 3), NewListMatch(at(1, 3), []string{"h1", "h2"}, "rest"))
	params := must(NewDeclParams(at(1, 3), []*DeclParam{param}))
	decl := NewDeclFunc(at(1, 1), "g", params, exprOf(ifExpr))
	return NewAST(NewProgram(at(1, 1), []*DeclFunc{decl}))
}
