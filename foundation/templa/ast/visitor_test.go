// File: visitor_test.go
// Title: templa AST Traversal Tests
// Description: Tests for Walk, Inspect, Children, the collector and the
//              structural validator.
// Author: templa authors
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial comprehensive visitor test suite
// - 2026-10-19 v0.2.0: Source-order traversal tests

package ast

import (
	"strings"
	"testing"
)

func TestChildrenSourceOrder(t *testing.T) {
	tree := precedenceTree(t, 0)
	form := tree.Root().Decls()[0].Body().Value().(*PrimaryExpression).Formulae()[0]

	var kinds []string
	for _, c := range Children(form) {
		kinds = append(kinds, c.Kind().Symbol())
	}
	want := "TERM,ADDITIVE_OP,TERM"
	if got := strings.Join(kinds, ","); got != want {
		t.Errorf("Children(FORM) = %s, want %s", got, want)
	}

	if len(Children(NewIntList(at(1, 1), 1, 2))) != 0 {
		t.Error("leaf nodes have no children")
	}
	if len(Children(NewFuncCall(at(1, 1), "f", nil))) != 0 {
		t.Error("absent optional children must be omitted")
	}
}

func TestWalkMatchesDumpOrder(t *testing.T) {
	tree := ifTree(t)

	var symbols []string
	Inspect(tree.Root(), func(n Node) bool {
		if n != nil {
			symbols = append(symbols, n.Kind().Symbol())
		}
		return true
	})

	var dumped []string
	for _, line := range strings.Split(strings.TrimSpace(Dump(tree)), "\n") {
		line = strings.TrimSpace(line)
		if idx := strings.Index(line, ":"); idx >= 0 {
			label := line[:idx]
			// leaf labels that are not node kinds
			switch label {
			case "FUNC_NAME", "ELEM_NAME", "REST_ELEMS_NAME", "INT", "NOT", "SIGN",
				"PARAM_NAME", "TYPE_NAME", "CHAR", "BOOL", "STRING",
				"LIST_MIN", "LIST_MAX", "CHAR_BEGIN", "CHAR_END":
				continue
			}
			line = label
		}
		dumped = append(dumped, line)
	}

	if strings.Join(symbols, ",") != strings.Join(dumped, ",") {
		t.Errorf("walk order\n%v\ndiffers from dump order\n%v", symbols, dumped)
	}
}

func TestInspectPrunes(t *testing.T) {
	tree := precedenceTree(t, 0)
	count := 0
	Inspect(tree.Root(), func(n Node) bool {
		if n == nil {
			return false
		}
		count++
		return n.Kind() != KindDeclFunc
	})
	if count != 2 {
		t.Errorf("visited %d nodes, want 2 (PROGRAM, DECL_FUNC)", count)
	}
}

func TestCollect(t *testing.T) {
	tree := precedenceTree(t, 0)

	consts := Collect(tree.Root(), KindConstant)
	if len(consts) != 3 {
		t.Fatalf("Collect(CONSTANT) returned %d nodes", len(consts))
	}
	for i, want := range []int{1, 2, 3} {
		if got := consts[i].(*Constant).Int(); got != want {
			t.Errorf("constant %d = %d, want %d", i, got, want)
		}
	}

	ops := Collect(tree.Root(), KindAdditiveOperator, KindMultOperator)
	if len(ops) != 2 || ops[0].Kind() != KindAdditiveOperator || ops[1].Kind() != KindMultOperator {
		t.Errorf("Collect(ops) = %v", ops)
	}

	all := Collect(tree.Root())
	if len(all) != 15 {
		t.Errorf("Collect() returned %d nodes, want 15", len(all))
	}
}

func TestCollectorReset(t *testing.T) {
	cv := NewCollectorVisitor(KindTerm)
	Walk(cv, precedenceTree(t, 0).Root())
	if len(cv.Nodes) != 2 {
		t.Fatalf("collected %d terms", len(cv.Nodes))
	}
	cv.Reset()
	if len(cv.Nodes) != 0 {
		t.Error("Reset() should clear nodes")
	}
}

func TestCountKinds(t *testing.T) {
	counts := CountKinds(ifTree(t).Root())

	tests := []struct {
		kind Kind
		want int
	}{
		{KindProgram, 1},
		{KindIfExpression, 1},
		{KindExpression, 4},
		{KindPrimaryExpression, 3},
		{KindFormula, 4},
		{KindRelationalOperator, 1},
		{KindListMatch, 1},
		{KindFuncCall, 1},
		{KindConstant, 3},
		{KindCaseExpression, 0},
	}
	for _, tt := range tests {
		if got := counts[tt.kind]; got != tt.want {
			t.Errorf("count[%s] = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestValidateAST(t *testing.T) {
	pos := at(1, 1)
	one := intFactor(pos, 1)

	tests := []struct {
		name    string
		node    Node
		wantErr string
	}{
		{"valid precedence tree", precedenceTree(t, 0).Root(), ""},
		{"valid if tree", ifTree(t).Root(), ""},
		{"empty program", NewProgram(pos, nil), "no declarations"},
		{"missing body", NewDeclFunc(pos, "f", nil, nil), "missing body"},
		{"operator count", &Term{base: base{pos}, factors: []*Factor{one, one}}, "2 operands need 1 operators, got 0"},
		{"empty params", &DeclParams{base: base{pos}}, "empty parameter list"},
		{"empty args", &CallArgs{base: base{pos}}, "empty argument list"},
		{"factor wraps factor", NewFactor(pos, one), "only a negated factor"},
		{"if branch", NewIfExpression(pos, exprOf(single(one)), nil, nil), "missing branch"},
		{"list match", NewListMatch(pos, nil, "r"), "at least one element"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateAST(tt.node)
			if tt.wantErr == "" {
				if len(errs) != 0 {
					t.Errorf("unexpected errors: %v", errs)
				}
				return
			}
			found := false
			for _, err := range errs {
				if strings.Contains(err.Error(), tt.wantErr) {
					found = true
				}
			}
			if !found {
				t.Errorf("errors %v do not mention %q", errs, tt.wantErr)
			}
		})
	}
}
