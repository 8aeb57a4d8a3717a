// File: dump.go
// Title: Tree Dumper
// Description: Renders a syntax tree as an indented symbolic trace, one node
//              symbol or LABEL: value leaf per line. Output depends only on
//              structure and literal values.
// Author: templa authors
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Indented StringVisitor output
// - 2026-10-19 v0.2.0: Exhaustive kind switch, configurable indent unit
// - 2026-10-19 v0.2.1: Operator lookups in chains are bounds checked

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// DumpOptions controls dump rendering
type DumpOptions struct {
	// Indent is written once per depth level; defaults to a single space
	Indent string
}

// DefaultDumpOptions returns the default options
func DefaultDumpOptions() DumpOptions {
	return DumpOptions{Indent: " "}
}

// Dump renders a whole tree with the default options
func Dump(tree *AST) string {
	return DumpNode(tree.Root())
}

// DumpNode renders the subtree rooted at node with the default options
func DumpNode(node Node) string {
	return DumpWith(node, DefaultDumpOptions())
}

// DumpWith renders the subtree rooted at node. The result ends with a
// newline unless node is nil, in which case it is empty.
func DumpWith(node Node, opts DumpOptions) string {
	if isNil(node) {
		return ""
	}
	if opts.Indent == "" {
		opts.Indent = " "
	}
	d := &dumper{indent: opts.Indent}
	d.node(node, 0)
	return d.buf.String()
}

type dumper struct {
	buf    strings.Builder
	indent string
}

func (d *dumper) line(depth int, text string) {
	for i := 0; i < depth; i++ {
		d.buf.WriteString(d.indent)
	}
	d.buf.WriteString(text)
	d.buf.WriteByte('\n')
}

func (d *dumper) leaf(depth int, label, value string) {
	d.line(depth, label+": "+value)
}

func (d *dumper) node(n Node, depth int) {
	if isNil(n) {
		return
	}
	switch x := n.(type) {
	case *Program:
		d.line(depth, x.Kind().Symbol())
		for _, decl := range x.decls {
			d.node(decl, depth+1)
		}

	case *DeclFunc:
		d.line(depth, x.Kind().Symbol())
		d.leaf(depth+1, "FUNC_NAME", x.name)
		if x.params != nil {
			d.node(x.params, depth+1)
		}
		d.node(x.body, depth+1)

	case *DeclParams:
		d.line(depth, x.Kind().Symbol())
		for _, p := range x.params {
			d.node(p, depth+1)
		}

	case *DeclParam:
		if x.pattern == nil {
			d.leaf(depth, x.Kind().Symbol(), x.name)
			return
		}
		d.line(depth, x.Kind().Symbol())
		d.node(x.pattern, depth+1)

	case *ListMatch:
		d.line(depth, x.Kind().Symbol())
		for _, e := range x.elements {
			d.leaf(depth+1, "ELEM_NAME", e)
		}
		d.leaf(depth+1, "REST_ELEMS_NAME", x.rest)

	case *TypeMatch:
		d.line(depth, x.Kind().Symbol())
		d.leaf(depth+1, "PARAM_NAME", x.paramName)
		d.leaf(depth+1, "TYPE_NAME", x.typeName)

	case *Expression:
		d.line(depth, x.Kind().Symbol())
		d.node(x.value, depth+1)

	case *LetExpression:
		d.line(depth, x.Kind().Symbol())
		for _, decl := range x.decls {
			d.node(decl, depth+1)
		}
		d.node(x.body, depth+1)

	case *IfExpression:
		d.line(depth, x.Kind().Symbol())
		d.node(x.cond, depth+1)
		d.node(x.then, depth+1)
		d.node(x.elseE, depth+1)

	case *CaseExpression:
		d.line(depth, x.Kind().Symbol())
		for _, w := range x.whens {
			d.node(w, depth+1)
		}
		d.node(x.otherwise, depth+1)

	case *CaseWhen:
		d.line(depth, x.Kind().Symbol())
		d.node(x.cond, depth+1)
		d.node(x.then, depth+1)

	case *PrimaryExpression:
		d.line(depth, x.Kind().Symbol())
		for i, f := range x.formulae {
			if i > 0 && i <= len(x.operators) {
				d.node(x.operators[i-1], depth+1)
			}
			d.node(f, depth+1)
		}

	case *Formula:
		d.line(depth, x.Kind().Symbol())
		if x.sign != SignNone {
			d.leaf(depth+1, "SIGN", x.sign.String())
		}
		for i, t := range x.terms {
			if i > 0 && i <= len(x.operators) {
				d.node(x.operators[i-1], depth+1)
			}
			d.node(t, depth+1)
		}

	case *Term:
		d.line(depth, x.Kind().Symbol())
		for i, f := range x.factors {
			if i > 0 && i <= len(x.operators) {
				d.node(x.operators[i-1], depth+1)
			}
			d.node(f, depth+1)
		}

	case *Factor:
		d.line(depth, x.Kind().Symbol())
		if x.negated {
			d.leaf(depth+1, "NOT", "!")
		}
		d.node(x.value, depth+1)

	case *RelationalOperator:
		d.leaf(depth, x.Kind().Symbol(), x.op)

	case *AdditiveOperator:
		d.leaf(depth, x.Kind().Symbol(), x.op)

	case *MultOperator:
		d.leaf(depth, x.Kind().Symbol(), x.op)

	case *Constant:
		d.line(depth, x.Kind().Symbol())
		switch x.typ {
		case ConstInt:
			d.leaf(depth+1, x.typ.String(), strconv.Itoa(x.i))
		case ConstChar:
			d.leaf(depth+1, x.typ.String(), string([]byte{x.c}))
		case ConstBool:
			d.leaf(depth+1, x.typ.String(), strconv.FormatBool(x.b))
		case ConstString:
			d.leaf(depth+1, x.typ.String(), x.s)
		case ConstList:
			d.node(x.list, depth+1)
		}

	case *List:
		d.line(depth, x.Kind().Symbol())
		d.node(x.value, depth+1)

	case *EnumList:
		d.line(depth, x.Kind().Symbol())
		for _, e := range x.elements {
			d.node(e, depth+1)
		}

	case *IntList:
		d.line(depth, x.Kind().Symbol())
		d.leaf(depth+1, "LIST_MIN", strconv.Itoa(x.min))
		d.leaf(depth+1, "LIST_MAX", strconv.Itoa(x.max))

	case *CharList:
		d.line(depth, x.Kind().Symbol())
		d.leaf(depth+1, "CHAR_BEGIN", string([]byte{x.begin}))
		d.leaf(depth+1, "CHAR_END", string([]byte{x.end}))

	case *FuncCall:
		d.line(depth, x.Kind().Symbol())
		d.leaf(depth+1, "FUNC_NAME", x.name)
		if x.args != nil {
			d.node(x.args, depth+1)
		}

	case *CallArgs:
		d.line(depth, x.Kind().Symbol())
		for _, a := range x.args {
			d.node(a, depth+1)
		}

	default:
		panic(fmt.Sprintf("ast: dump of unknown node type %T", n))
	}
}
