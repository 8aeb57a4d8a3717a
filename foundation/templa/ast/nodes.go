// File: nodes.go
// Title: templa AST Node Definitions
// Description: Defines the 25 node kinds of the templa syntax tree, their
//              constructors and read-only accessors. Nodes are immutable once
//              built; slice accessors hand out copies.
// Author: templa authors
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial AST node definitions
// - 2026-10-19 v0.2.0: templa node kinds, sealed interfaces, unexported fields
// - 2026-10-19 v0.2.1: Chain and sequence constructors validate their input

package ast

import (
	"fmt"
)

// Position represents a position in the source code
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

// String returns the position as line:column
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position has been set
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Kind identifies the variant of a node
type Kind int

const (
	KindProgram Kind = iota
	KindDeclFunc
	KindDeclParams
	KindDeclParam
	KindListMatch
	KindTypeMatch
	KindExpression
	KindLetExpression
	KindIfExpression
	KindCaseExpression
	KindCaseWhen
	KindPrimaryExpression
	KindFormula
	KindTerm
	KindFactor
	KindRelationalOperator
	KindAdditiveOperator
	KindMultOperator
	KindConstant
	KindList
	KindEnumList
	KindIntList
	KindCharList
	KindFuncCall
	KindCallArgs

	kindCount
)

var kindSymbols = [kindCount]string{
	KindProgram:            "PROGRAM",
	KindDeclFunc:           "DECL_FUNC",
	KindDeclParams:         "DECL_PARAMS",
	KindDeclParam:          "DECL_PARAM",
	KindListMatch:          "LIST_MATCH",
	KindTypeMatch:          "TYPE_MATCH",
	KindExpression:         "EXPR",
	KindLetExpression:      "LET_EXPR",
	KindIfExpression:       "IF_EXPR",
	KindCaseExpression:     "CASE_EXPR",
	KindCaseWhen:           "CASE_WHEN",
	KindPrimaryExpression:  "PRIMARY_EXPR",
	KindFormula:            "FORM",
	KindTerm:               "TERM",
	KindFactor:             "FACT",
	KindRelationalOperator: "RELATIONAL_OP",
	KindAdditiveOperator:   "ADDITIVE_OP",
	KindMultOperator:       "MULT_OP",
	KindConstant:           "CONSTANT",
	KindList:               "LIST",
	KindEnumList:           "ENUM_LIST",
	KindIntList:            "INT_LIST",
	KindCharList:           "CHAR_LIST",
	KindFuncCall:           "FUNC_CALL",
	KindCallArgs:           "CALL_ARGS",
}

// Symbol returns the fixed dump symbol of the kind
func (k Kind) Symbol() string {
	if k < 0 || k >= kindCount {
		return "UNKNOWN"
	}
	return kindSymbols[k]
}

// String returns the dump symbol
func (k Kind) String() string {
	return k.Symbol()
}

// AllKinds returns every node kind in declaration order
func AllKinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Node is implemented by every syntax tree node.
// The interface is sealed; only this package defines node types.
type Node interface {
	// Kind returns the variant kind of the node
	Kind() Kind

	// Pos returns the source position of the node's first token
	Pos() Position

	node()
}

// Pattern is a structured parameter pattern: *ListMatch, *TypeMatch or *Constant
type Pattern interface {
	Node
	patternNode()
}

// ExprNode is the payload of an Expression: *LetExpression, *IfExpression,
// *CaseExpression or *PrimaryExpression
type ExprNode interface {
	Node
	exprNode()
}

// Operand is the payload of a Factor: *Factor (negated), *PrimaryExpression
// (parenthesized), *Constant or *FuncCall
type Operand interface {
	Node
	operandNode()
}

// ListBody is the payload of a List: *EnumList, *IntList or *CharList
type ListBody interface {
	Node
	listBodyNode()
}

type base struct {
	pos Position
}

func (b base) Pos() Position { return b.pos }
func (base) node()           {}

// AST wraps the root of a parsed program
type AST struct {
	root *Program
}

// NewAST creates an AST around the given program
func NewAST(root *Program) *AST {
	return &AST{root: root}
}

// Root returns the program node
func (a *AST) Root() *Program {
	if a == nil {
		return nil
	}
	return a.root
}

// Program is an ordered sequence of function declarations
type Program struct {
	base
	decls []*DeclFunc
}

// NewProgram creates a program node
func NewProgram(pos Position, decls []*DeclFunc) *Program {
	return &Program{base: base{pos}, decls: append([]*DeclFunc(nil), decls...)}
}

func (*Program) Kind() Kind { return KindProgram }

// Decls returns the top-level declarations
func (p *Program) Decls() []*DeclFunc { return append([]*DeclFunc(nil), p.decls...) }

// DeclFunc declares a named function with optional parameters and a body
type DeclFunc struct {
	base
	name   string
	params *DeclParams
	body   *Expression
}

// NewDeclFunc creates a function declaration; params may be nil
func NewDeclFunc(pos Position, name string, params *DeclParams, body *Expression) *DeclFunc {
	return &DeclFunc{base: base{pos}, name: name, params: params, body: body}
}

func (*DeclFunc) Kind() Kind { return KindDeclFunc }

// Name returns the function name
func (d *DeclFunc) Name() string { return d.name }

// Params returns the parameter list or nil
func (d *DeclFunc) Params() *DeclParams { return d.params }

// Body returns the function body
func (d *DeclFunc) Body() *Expression { return d.body }

// DeclParams is the non-empty parameter list of a declaration
type DeclParams struct {
	base
	params []*DeclParam
}

// NewDeclParams creates a parameter list; params must not be empty
func NewDeclParams(pos Position, params []*DeclParam) (*DeclParams, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("empty parameter list")
	}
	return &DeclParams{base: base{pos}, params: append([]*DeclParam(nil), params...)}, nil
}

func (*DeclParams) Kind() Kind { return KindDeclParams }

// Params returns the parameters in order
func (d *DeclParams) Params() []*DeclParam { return append([]*DeclParam(nil), d.params...) }

// DeclParam is a single parameter: a pattern or a plain name
type DeclParam struct {
	base
	pattern Pattern
	name    string
}

// NewDeclParamPattern creates a parameter bound by a pattern
func NewDeclParamPattern(pos Position, pattern Pattern) *DeclParam {
	return &DeclParam{base: base{pos}, pattern: pattern}
}

// NewDeclParamName creates a parameter bound to a plain name
func NewDeclParamName(pos Position, name string) *DeclParam {
	return &DeclParam{base: base{pos}, name: name}
}

func (*DeclParam) Kind() Kind { return KindDeclParam }

// Pattern returns the pattern, or nil for a plain name
func (d *DeclParam) Pattern() Pattern { return d.pattern }

// Name returns the plain parameter name, or "" for a pattern
func (d *DeclParam) Name() string { return d.name }

// IsName reports whether the parameter is a plain name
func (d *DeclParam) IsName() bool { return d.pattern == nil }

// ListMatch destructures a list into leading element names and a rest name
type ListMatch struct {
	base
	elements []string
	rest     string
}

// NewListMatch creates a list destructuring pattern
func NewListMatch(pos Position, elements []string, rest string) *ListMatch {
	return &ListMatch{base: base{pos}, elements: append([]string(nil), elements...), rest: rest}
}

func (*ListMatch) Kind() Kind   { return KindListMatch }
func (*ListMatch) patternNode() {}

// Elements returns the head element names
func (l *ListMatch) Elements() []string { return append([]string(nil), l.elements...) }

// Rest returns the name bound to the remaining elements
func (l *ListMatch) Rest() string { return l.rest }

// TypeMatch binds a parameter name under an expected type tag
type TypeMatch struct {
	base
	paramName string
	typeName  string
}

// NewTypeMatch creates a typed parameter pattern
func NewTypeMatch(pos Position, paramName, typeName string) *TypeMatch {
	return &TypeMatch{base: base{pos}, paramName: paramName, typeName: typeName}
}

func (*TypeMatch) Kind() Kind   { return KindTypeMatch }
func (*TypeMatch) patternNode() {}

// ParamName returns the bound parameter name
func (t *TypeMatch) ParamName() string { return t.paramName }

// TypeName returns the expected type tag
func (t *TypeMatch) TypeName() string { return t.typeName }

// Expression wraps one of the four expression forms
type Expression struct {
	base
	value ExprNode
}

// NewExpression creates an expression node
func NewExpression(pos Position, value ExprNode) *Expression {
	return &Expression{base: base{pos}, value: value}
}

func (*Expression) Kind() Kind { return KindExpression }

// Value returns the wrapped expression form
func (e *Expression) Value() ExprNode { return e.value }

// LetExpression scopes local declarations to a body
type LetExpression struct {
	base
	decls []*DeclFunc
	body  *Expression
}

// NewLetExpression creates a let expression
func NewLetExpression(pos Position, decls []*DeclFunc, body *Expression) *LetExpression {
	return &LetExpression{base: base{pos}, decls: append([]*DeclFunc(nil), decls...), body: body}
}

func (*LetExpression) Kind() Kind { return KindLetExpression }
func (*LetExpression) exprNode()  {}

// Decls returns the local declarations
func (l *LetExpression) Decls() []*DeclFunc { return append([]*DeclFunc(nil), l.decls...) }

// Body returns the expression the declarations are scoped to
func (l *LetExpression) Body() *Expression { return l.body }

// IfExpression is a two-way conditional
type IfExpression struct {
	base
	cond  *Expression
	then  *Expression
	elseE *Expression
}

// NewIfExpression creates a conditional
func NewIfExpression(pos Position, cond, then, elseExpr *Expression) *IfExpression {
	return &IfExpression{base: base{pos}, cond: cond, then: then, elseE: elseExpr}
}

func (*IfExpression) Kind() Kind { return KindIfExpression }
func (*IfExpression) exprNode()  {}

// Cond returns the condition
func (i *IfExpression) Cond() *Expression { return i.cond }

// Then returns the true branch
func (i *IfExpression) Then() *Expression { return i.then }

// Else returns the false branch
func (i *IfExpression) Else() *Expression { return i.elseE }

// CaseExpression is a multi-way conditional with a mandatory otherwise branch
type CaseExpression struct {
	base
	whens     []*CaseWhen
	otherwise *Expression
}

// NewCaseExpression creates a case expression; whens may be empty
func NewCaseExpression(pos Position, whens []*CaseWhen, otherwise *Expression) *CaseExpression {
	return &CaseExpression{base: base{pos}, whens: append([]*CaseWhen(nil), whens...), otherwise: otherwise}
}

func (*CaseExpression) Kind() Kind { return KindCaseExpression }
func (*CaseExpression) exprNode()  {}

// Whens returns the guarded branches in order
func (c *CaseExpression) Whens() []*CaseWhen { return append([]*CaseWhen(nil), c.whens...) }

// Otherwise returns the fallback branch
func (c *CaseExpression) Otherwise() *Expression { return c.otherwise }

// CaseWhen is one guarded branch of a case expression
type CaseWhen struct {
	base
	cond *Expression
	then *Expression
}

// NewCaseWhen creates a guarded branch
func NewCaseWhen(pos Position, cond, then *Expression) *CaseWhen {
	return &CaseWhen{base: base{pos}, cond: cond, then: then}
}

func (*CaseWhen) Kind() Kind { return KindCaseWhen }

// Cond returns the guard
func (c *CaseWhen) Cond() *Expression { return c.cond }

// Then returns the branch taken when the guard holds
func (c *CaseWhen) Then() *Expression { return c.then }

// PrimaryExpression is a flat chain of formulas joined by relational operators.
// len(Operators()) == len(Formulae()) - 1.
type PrimaryExpression struct {
	base
	formulae  []*Formula
	operators []*RelationalOperator
}

// NewPrimaryExpression creates a relational chain
func NewPrimaryExpression(pos Position, formulae []*Formula, operators []*RelationalOperator) (*PrimaryExpression, error) {
	if err := checkChain(len(formulae), len(operators)); err != nil {
		return nil, err
	}
	return &PrimaryExpression{
		base:      base{pos},
		formulae:  append([]*Formula(nil), formulae...),
		operators: append([]*RelationalOperator(nil), operators...),
	}, nil
}

func (*PrimaryExpression) Kind() Kind   { return KindPrimaryExpression }
func (*PrimaryExpression) exprNode()    {}
func (*PrimaryExpression) operandNode() {}

// Formulae returns the operands of the chain
func (p *PrimaryExpression) Formulae() []*Formula { return append([]*Formula(nil), p.formulae...) }

// Operators returns the relational operators between the formulae
func (p *PrimaryExpression) Operators() []*RelationalOperator {
	return append([]*RelationalOperator(nil), p.operators...)
}

// Sign is the optional unary sign of a formula
type Sign int

const (
	SignNone Sign = iota
	SignPlus
	SignMinus
)

// String returns the sign token, or "" for SignNone
func (s Sign) String() string {
	switch s {
	case SignPlus:
		return "+"
	case SignMinus:
		return "-"
	default:
		return ""
	}
}

// Formula is an optionally signed chain of terms joined by additive operators
type Formula struct {
	base
	sign      Sign
	terms     []*Term
	operators []*AdditiveOperator
}

// NewFormula creates an additive chain
func NewFormula(pos Position, sign Sign, terms []*Term, operators []*AdditiveOperator) (*Formula, error) {
	if err := checkChain(len(terms), len(operators)); err != nil {
		return nil, err
	}
	return &Formula{
		base:      base{pos},
		sign:      sign,
		terms:     append([]*Term(nil), terms...),
		operators: append([]*AdditiveOperator(nil), operators...),
	}, nil
}

func (*Formula) Kind() Kind { return KindFormula }

// Sign returns the leading sign
func (f *Formula) Sign() Sign { return f.sign }

// Terms returns the operands of the chain
func (f *Formula) Terms() []*Term { return append([]*Term(nil), f.terms...) }

// Operators returns the additive operators between the terms
func (f *Formula) Operators() []*AdditiveOperator {
	return append([]*AdditiveOperator(nil), f.operators...)
}

// Term is a chain of factors joined by multiplicative operators
type Term struct {
	base
	factors   []*Factor
	operators []*MultOperator
}

// NewTerm creates a multiplicative chain
func NewTerm(pos Position, factors []*Factor, operators []*MultOperator) (*Term, error) {
	if err := checkChain(len(factors), len(operators)); err != nil {
		return nil, err
	}
	return &Term{
		base:      base{pos},
		factors:   append([]*Factor(nil), factors...),
		operators: append([]*MultOperator(nil), operators...),
	}, nil
}

// checkChain enforces n operands joined by n-1 operators, n >= 1
func checkChain(operands, operators int) error {
	if operands == 0 {
		return fmt.Errorf("chain has no operands")
	}
	if operators != operands-1 {
		return fmt.Errorf("%d operands need %d operators, got %d", operands, operands-1, operators)
	}
	return nil
}

func (*Term) Kind() Kind { return KindTerm }

// Factors returns the operands of the chain
func (t *Term) Factors() []*Factor { return append([]*Factor(nil), t.factors...) }

// Operators returns the multiplicative operators between the factors
func (t *Term) Operators() []*MultOperator { return append([]*MultOperator(nil), t.operators...) }

// Factor is an atomic operand, possibly negated with '!'
type Factor struct {
	base
	negated bool
	value   Operand
}

// NewFactor creates a factor around a constant, call or parenthesized expression
func NewFactor(pos Position, value Operand) *Factor {
	return &Factor{base: base{pos}, value: value}
}

// NewNegatedFactor creates '!' applied to another factor
func NewNegatedFactor(pos Position, inner *Factor) *Factor {
	return &Factor{base: base{pos}, negated: true, value: inner}
}

func (*Factor) Kind() Kind   { return KindFactor }
func (*Factor) operandNode() {}

// Negated reports whether the factor is a '!' negation
func (f *Factor) Negated() bool { return f.negated }

// Value returns the operand; a *Factor when negated
func (f *Factor) Value() Operand { return f.value }

// RelationalOperator is one of == != < > <= >=
type RelationalOperator struct {
	base
	op string
}

// RelationalOperators lists the accepted relational tokens, longest first
var RelationalOperators = []string{"==", "!=", "<=", ">=", "<", ">"}

// NewRelationalOperator creates a relational operator node
func NewRelationalOperator(pos Position, op string) (*RelationalOperator, error) {
	if !contains(RelationalOperators, op) {
		return nil, fmt.Errorf("invalid relational operator %q", op)
	}
	return &RelationalOperator{base: base{pos}, op: op}, nil
}

func (*RelationalOperator) Kind() Kind { return KindRelationalOperator }

// Op returns the operator token
func (o *RelationalOperator) Op() string { return o.op }

// AdditiveOperator is one of + - | ||
type AdditiveOperator struct {
	base
	op string
}

// AdditiveOperators lists the accepted additive tokens, longest first
var AdditiveOperators = []string{"||", "+", "-", "|"}

// NewAdditiveOperator creates an additive operator node
func NewAdditiveOperator(pos Position, op string) (*AdditiveOperator, error) {
	if !contains(AdditiveOperators, op) {
		return nil, fmt.Errorf("invalid additive operator %q", op)
	}
	return &AdditiveOperator{base: base{pos}, op: op}, nil
}

func (*AdditiveOperator) Kind() Kind { return KindAdditiveOperator }

// Op returns the operator token
func (o *AdditiveOperator) Op() string { return o.op }

// MultOperator is one of * / % & &&
type MultOperator struct {
	base
	op string
}

// MultOperators lists the accepted multiplicative tokens, longest first
var MultOperators = []string{"&&", "*", "/", "%", "&"}

// NewMultOperator creates a multiplicative operator node
func NewMultOperator(pos Position, op string) (*MultOperator, error) {
	if !contains(MultOperators, op) {
		return nil, fmt.Errorf("invalid multiplicative operator %q", op)
	}
	return &MultOperator{base: base{pos}, op: op}, nil
}

func (*MultOperator) Kind() Kind { return KindMultOperator }

// Op returns the operator token
func (o *MultOperator) Op() string { return o.op }

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// ConstantType tells which literal a Constant holds
type ConstantType int

const (
	ConstInt ConstantType = iota
	ConstChar
	ConstBool
	ConstString
	ConstList
)

// String returns the dump label of the literal type
func (t ConstantType) String() string {
	switch t {
	case ConstInt:
		return "INT"
	case ConstChar:
		return "CHAR"
	case ConstBool:
		return "BOOL"
	case ConstString:
		return "STRING"
	case ConstList:
		return "LIST"
	default:
		return "UNKNOWN"
	}
}

// Constant is a literal value
type Constant struct {
	base
	typ  ConstantType
	i    int
	c    byte
	b    bool
	s    string
	list *List
}

// NewIntConstant creates an integer literal
func NewIntConstant(pos Position, v int) *Constant {
	return &Constant{base: base{pos}, typ: ConstInt, i: v}
}

// NewCharConstant creates a character literal
func NewCharConstant(pos Position, v byte) *Constant {
	return &Constant{base: base{pos}, typ: ConstChar, c: v}
}

// NewBoolConstant creates a boolean literal
func NewBoolConstant(pos Position, v bool) *Constant {
	return &Constant{base: base{pos}, typ: ConstBool, b: v}
}

// NewStringConstant creates a string literal
func NewStringConstant(pos Position, v string) *Constant {
	return &Constant{base: base{pos}, typ: ConstString, s: v}
}

// NewListConstant creates a list literal
func NewListConstant(pos Position, v *List) *Constant {
	return &Constant{base: base{pos}, typ: ConstList, list: v}
}

func (*Constant) Kind() Kind   { return KindConstant }
func (*Constant) patternNode() {}
func (*Constant) operandNode() {}

// Type returns which literal the constant holds
func (c *Constant) Type() ConstantType { return c.typ }

// Int returns the integer value; valid when Type() == ConstInt
func (c *Constant) Int() int { return c.i }

// Char returns the character value; valid when Type() == ConstChar
func (c *Constant) Char() byte { return c.c }

// Bool returns the boolean value; valid when Type() == ConstBool
func (c *Constant) Bool() bool { return c.b }

// Str returns the string value; valid when Type() == ConstString
func (c *Constant) Str() string { return c.s }

// List returns the list value; valid when Type() == ConstList
func (c *Constant) List() *List { return c.list }

// List wraps one of the three list literal forms
type List struct {
	base
	value ListBody
}

// NewList creates a list node
func NewList(pos Position, value ListBody) *List {
	return &List{base: base{pos}, value: value}
}

func (*List) Kind() Kind { return KindList }

// Value returns the list form
func (l *List) Value() ListBody { return l.value }

// EnumList enumerates its elements literally: [a, b, c]
type EnumList struct {
	base
	elements []*PrimaryExpression
}

// NewEnumList creates an enumerated list; elements must not be empty
func NewEnumList(pos Position, elements []*PrimaryExpression) (*EnumList, error) {
	if len(elements) == 0 {
		return nil, fmt.Errorf("empty enumeration")
	}
	return &EnumList{base: base{pos}, elements: append([]*PrimaryExpression(nil), elements...)}, nil
}

func (*EnumList) Kind() Kind    { return KindEnumList }
func (*EnumList) listBodyNode() {}

// Elements returns the list elements in order
func (e *EnumList) Elements() []*PrimaryExpression {
	return append([]*PrimaryExpression(nil), e.elements...)
}

// IntList is an inclusive integer range: [min..max]
type IntList struct {
	base
	min int
	max int
}

// NewIntList creates an integer range
func NewIntList(pos Position, min, max int) *IntList {
	return &IntList{base: base{pos}, min: min, max: max}
}

func (*IntList) Kind() Kind    { return KindIntList }
func (*IntList) listBodyNode() {}

// Min returns the lower bound
func (l *IntList) Min() int { return l.min }

// Max returns the upper bound
func (l *IntList) Max() int { return l.max }

// CharList is an inclusive character range: ['a'..'z']
type CharList struct {
	base
	begin byte
	end   byte
}

// NewCharList creates a character range
func NewCharList(pos Position, begin, end byte) *CharList {
	return &CharList{base: base{pos}, begin: begin, end: end}
}

func (*CharList) Kind() Kind    { return KindCharList }
func (*CharList) listBodyNode() {}

// Begin returns the first character
func (l *CharList) Begin() byte { return l.begin }

// End returns the last character
func (l *CharList) End() byte { return l.end }

// FuncCall references a function, with optional arguments
type FuncCall struct {
	base
	name string
	args *CallArgs
}

// NewFuncCall creates a call; args may be nil
func NewFuncCall(pos Position, name string, args *CallArgs) *FuncCall {
	return &FuncCall{base: base{pos}, name: name, args: args}
}

func (*FuncCall) Kind() Kind   { return KindFuncCall }
func (*FuncCall) operandNode() {}

// Name returns the called function name
func (f *FuncCall) Name() string { return f.name }

// Args returns the argument list or nil
func (f *FuncCall) Args() *CallArgs { return f.args }

// CallArgs is the non-empty argument list of a call
type CallArgs struct {
	base
	args []*PrimaryExpression
}

// NewCallArgs creates an argument list; args must not be empty
func NewCallArgs(pos Position, args []*PrimaryExpression) (*CallArgs, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("empty argument list")
	}
	return &CallArgs{base: base{pos}, args: append([]*PrimaryExpression(nil), args...)}, nil
}

func (*CallArgs) Kind() Kind { return KindCallArgs }

// Args returns the arguments in order
func (c *CallArgs) Args() []*PrimaryExpression { return append([]*PrimaryExpression(nil), c.args...) }
