// File: equal.go
// Title: Structural Equality
// Description: Deep structural comparison of syntax trees. Positions are not
//              compared; nodes of different kinds are never equal.
// Author: templa authors
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Initial implementation

package ast

import (
	"reflect"
)

// Equal reports whether a and b are structurally equal
func (a *AST) Equal(b *AST) bool {
	if a == nil || b == nil {
		return a == b
	}
	return Equal(a.root, b.root)
}

// NotEqual is the negation of Equal
func NotEqual(a, b Node) bool {
	return !Equal(a, b)
}

// Equal reports whether two nodes have the same kind and recursively equal
// fields. Source positions are ignored. A nil node only equals another nil.
func Equal(a, b Node) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}

	switch x := a.(type) {
	case *Program:
		y, ok := b.(*Program)
		return ok && equalSlices(x.decls, y.decls)
	case *DeclFunc:
		y, ok := b.(*DeclFunc)
		return ok && x.name == y.name && Equal(x.params, y.params) && Equal(x.body, y.body)
	case *DeclParams:
		y, ok := b.(*DeclParams)
		return ok && equalSlices(x.params, y.params)
	case *DeclParam:
		y, ok := b.(*DeclParam)
		return ok && x.name == y.name && Equal(x.pattern, y.pattern)
	case *ListMatch:
		y, ok := b.(*ListMatch)
		return ok && x.rest == y.rest && equalStrings(x.elements, y.elements)
	case *TypeMatch:
		y, ok := b.(*TypeMatch)
		return ok && x.paramName == y.paramName && x.typeName == y.typeName
	case *Expression:
		y, ok := b.(*Expression)
		return ok && Equal(x.value, y.value)
	case *LetExpression:
		y, ok := b.(*LetExpression)
		return ok && equalSlices(x.decls, y.decls) && Equal(x.body, y.body)
	case *IfExpression:
		y, ok := b.(*IfExpression)
		return ok && Equal(x.cond, y.cond) && Equal(x.then, y.then) && Equal(x.elseE, y.elseE)
	case *CaseExpression:
		y, ok := b.(*CaseExpression)
		return ok && equalSlices(x.whens, y.whens) && Equal(x.otherwise, y.otherwise)
	case *CaseWhen:
		y, ok := b.(*CaseWhen)
		return ok && Equal(x.cond, y.cond) && Equal(x.then, y.then)
	case *PrimaryExpression:
		y, ok := b.(*PrimaryExpression)
		return ok && equalSlices(x.formulae, y.formulae) && equalSlices(x.operators, y.operators)
	case *Formula:
		y, ok := b.(*Formula)
		return ok && x.sign == y.sign && equalSlices(x.terms, y.terms) && equalSlices(x.operators, y.operators)
	case *Term:
		y, ok := b.(*Term)
		return ok && equalSlices(x.factors, y.factors) && equalSlices(x.operators, y.operators)
	case *Factor:
		y, ok := b.(*Factor)
		return ok && x.negated == y.negated && Equal(x.value, y.value)
	case *RelationalOperator:
		y, ok := b.(*RelationalOperator)
		return ok && x.op == y.op
	case *AdditiveOperator:
		y, ok := b.(*AdditiveOperator)
		return ok && x.op == y.op
	case *MultOperator:
		y, ok := b.(*MultOperator)
		return ok && x.op == y.op
	case *Constant:
		y, ok := b.(*Constant)
		return ok && equalConstants(x, y)
	case *List:
		y, ok := b.(*List)
		return ok && Equal(x.value, y.value)
	case *EnumList:
		y, ok := b.(*EnumList)
		return ok && equalSlices(x.elements, y.elements)
	case *IntList:
		y, ok := b.(*IntList)
		return ok && x.min == y.min && x.max == y.max
	case *CharList:
		y, ok := b.(*CharList)
		return ok && x.begin == y.begin && x.end == y.end
	case *FuncCall:
		y, ok := b.(*FuncCall)
		return ok && x.name == y.name && Equal(x.args, y.args)
	case *CallArgs:
		y, ok := b.(*CallArgs)
		return ok && equalSlices(x.args, y.args)
	default:
		return false
	}
}

func equalConstants(x, y *Constant) bool {
	if x.typ != y.typ {
		return false
	}
	switch x.typ {
	case ConstInt:
		return x.i == y.i
	case ConstChar:
		return x.c == y.c
	case ConstBool:
		return x.b == y.b
	case ConstString:
		return x.s == y.s
	case ConstList:
		return Equal(x.list, y.list)
	default:
		return false
	}
}

func equalSlices[T Node](xs, ys []T) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if !Equal(xs[i], ys[i]) {
			return false
		}
	}
	return true
}

func equalStrings(xs, ys []string) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if xs[i] != ys[i] {
			return false
		}
	}
	return true
}

// isNil catches both a nil interface and a typed nil pointer held in one,
// as happens for absent optional children such as DeclFunc.Params.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
