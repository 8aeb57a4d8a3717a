// File: dump_test.go
// Title: Tree Dumper Tests
// Description: Golden-output tests for the tree dumper.
// Author: templa authors
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: StringVisitor output tests
// - 2026-10-19 v0.2.0: templa dump format

package ast

import (
	"testing"
)

func TestDumpPrecedence(t *testing.T) {
	want := `PROGRAM
 DECL_FUNC
  FUNC_NAME: f
  EXPR
   PRIMARY_EXPR
    FORM
     TERM
      FACT
       CONSTANT
        INT: 1
     ADDITIVE_OP: +
     TERM
      FACT
       CONSTANT
        INT: 2
      MULT_OP: *
      FACT
       CONSTANT
        INT: 3
`
	if got := Dump(precedenceTree(t, 0)); got != want {
		t.Errorf("Dump() =\n%s\nwant\n%s", got, want)
	}
}

func TestDumpIfWithListMatch(t *testing.T) {
	want := `PROGRAM
 DECL_FUNC
  FUNC_NAME: g
  DECL_PARAMS
   DECL_PARAM
    LIST_MATCH
     ELEM_NAME: h1
     ELEM_NAME: h2
     REST_ELEMS_NAME: rest
  EXPR
   IF_EXPR
    EXPR
     PRIMARY_EXPR
      FORM
       TERM
        FACT
         FUNC_CALL
          FUNC_NAME: x
      RELATIONAL_OP: >
      FORM
       TERM
        FACT
         CONSTANT
          INT: 0
    EXPR
     PRIMARY_EXPR
      FORM
       TERM
        FACT
         CONSTANT
          INT: 1
    EXPR
     PRIMARY_EXPR
      FORM
       TERM
        FACT
         CONSTANT
          INT: 0
`
	if got := Dump(ifTree(t)); got != want {
		t.Errorf("Dump() =\n%s\nwant\n%s", got, want)
	}
}

func TestDumpLeaves(t *testing.T) {
	pos := at(1, 1)

	tests := []struct {
		name string
		node Node
		want string
	}{
		{"plain param", NewDeclParamName(pos, "x"), "DECL_PARAM: x\n"},
		{"type match", NewTypeMatch(pos, "x", "Int"), "TYPE_MATCH\n PARAM_NAME: x\n TYPE_NAME: Int\n"},
		{"char", NewCharConstant(pos, 'a'), "CONSTANT\n CHAR: a\n"},
		{"bool", NewBoolConstant(pos, false), "CONSTANT\n BOOL: false\n"},
		{"string", NewStringConstant(pos, "hi"), "CONSTANT\n STRING: hi\n"},
		{"negative int", NewIntConstant(pos, -3), "CONSTANT\n INT: -3\n"},
		{"int list", NewListConstant(pos, NewList(pos, NewIntList(pos, 1, 5))), "CONSTANT\n LIST\n  INT_LIST\n   LIST_MIN: 1\n   LIST_MAX: 5\n"},
		{"char list", NewList(pos, NewCharList(pos, 'a', 'z')), "LIST\n CHAR_LIST\n  CHAR_BEGIN: a\n  CHAR_END: z\n"},
		{"relational", mustRel(t, pos, "<="), "RELATIONAL_OP: <=\n"},
		{"negated", NewNegatedFactor(pos, intFactor(pos, 1)), "FACT\n NOT: !\n FACT\n  CONSTANT\n   INT: 1\n"},
		{"signed", must(NewFormula(pos, SignMinus, []*Term{must(NewTerm(pos, []*Factor{callFactor(pos, "x")}, nil))}, nil)), "FORM\n SIGN: -\n TERM\n  FACT\n   FUNC_CALL\n    FUNC_NAME: x\n"},
		{"call args", NewFuncCall(pos, "g", must(NewCallArgs(pos, []*PrimaryExpression{single(intFactor(pos, 1))}))), "FUNC_CALL\n FUNC_NAME: g\n CALL_ARGS\n  PRIMARY_EXPR\n   FORM\n    TERM\n     FACT\n      CONSTANT\n       INT: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DumpNode(tt.node); got != tt.want {
				t.Errorf("DumpNode() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestDumpCaseAndLet(t *testing.T) {
	pos := at(1, 1)
	when := NewCaseWhen(pos, exprOf(single(callFactor(pos, "a"))), exprOf(single(intFactor(pos, 1))))
	caseExpr := NewCaseExpression(pos, []*CaseWhen{when}, exprOf(single(intFactor(pos, 2))))
	local := NewDeclFunc(pos, "y", nil, exprOf(single(intFactor(pos, 3))))
	let := NewLetExpression(pos, []*DeclFunc{local}, exprOf(caseExpr))

	want := `LET_EXPR
 DECL_FUNC
  FUNC_NAME: y
  EXPR
   PRIMARY_EXPR
    FORM
     TERM
      FACT
       CONSTANT
        INT: 3
 EXPR
  CASE_EXPR
   CASE_WHEN
    EXPR
     PRIMARY_EXPR
      FORM
       TERM
        FACT
         FUNC_CALL
          FUNC_NAME: a
    EXPR
     PRIMARY_EXPR
      FORM
       TERM
        FACT
         CONSTANT
          INT: 1
   EXPR
    PRIMARY_EXPR
     FORM
      TERM
       FACT
        CONSTANT
         INT: 2
`
	if got := DumpNode(let); got != want {
		t.Errorf("DumpNode() =\n%s\nwant\n%s", got, want)
	}
}

func TestDumpWithIndent(t *testing.T) {
	got := DumpWith(NewTypeMatch(at(1, 1), "x", "T"), DumpOptions{Indent: "\t"})
	want := "TYPE_MATCH\n\tPARAM_NAME: x\n\tTYPE_NAME: T\n"
	if got != want {
		t.Errorf("DumpWith() = %q, want %q", got, want)
	}

	if DumpWith(NewTypeMatch(at(1, 1), "x", "T"), DumpOptions{}) != DumpNode(NewTypeMatch(at(1, 1), "x", "T")) {
		t.Error("empty indent should fall back to the default")
	}
}

func TestDumpStableAndPositionFree(t *testing.T) {
	a := precedenceTree(t, 0)
	first := Dump(a)
	for i := 0; i < 5; i++ {
		if Dump(a) != first {
			t.Fatal("Dump() output changed between calls")
		}
	}
	if Dump(precedenceTree(t, 7)) != first {
		t.Error("Dump() output depends on positions")
	}
}

func TestDumpMalformedChain(t *testing.T) {
	pos := at(1, 1)
	one := intFactor(pos, 1)
	term := &Term{base: base{pos}, factors: []*Factor{one, one}}

	want := "TERM\n FACT\n  CONSTANT\n   INT: 1\n FACT\n  CONSTANT\n   INT: 1\n"
	if got := DumpNode(term); got != want {
		t.Errorf("DumpNode() =\n%s\nwant\n%s", got, want)
	}
}

func TestDumpNil(t *testing.T) {
	if DumpNode(nil) != "" {
		t.Error("DumpNode(nil) should be empty")
	}
	var tree *AST
	if Dump(tree) != "" {
		t.Error("Dump(nil) should be empty")
	}
}
