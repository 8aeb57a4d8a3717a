// File: parser.go
// Title: templa Recursive Descent Parser
// Description: Parses templa source text into an AST. Each grammar rule
//              is one method; alternatives are tried in order and a rule
//              that fails restores the cursor, so choice is ordered and
//              backtracking. On failure the farthest position reached is
//              reported together with everything expected there.
// Author: templa authors
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2026-10-19 v0.2.0: templa grammar with ordered choice and backtracking
// - 2026-10-19 v0.2.1: Adapted to validating node constructors

package parser

import (
	"strings"

	mdwerror "github.com/templa-lang/templa/foundation/core/error"
	mdwlog "github.com/templa-lang/templa/foundation/core/log"
	mdwast "github.com/templa-lang/templa/foundation/templa/ast"
)

// DefaultMaxInputLength bounds the source size accepted by Parse
const DefaultMaxInputLength = 1 << 20

// Parser parses templa programs. It holds configuration only and is safe
// for concurrent use; every call to Parse gets its own cursor.
type Parser struct {
	logger  *mdwlog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger         *mdwlog.Logger
	MaxInputLength int
}

// New creates a new templa parser with the given options
func New(opts Options) (*Parser, error) {
	if opts.MaxInputLength < 0 {
		return nil, mdwerror.Newf("invalid maximum input length: %d", opts.MaxInputLength).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("parser.New")
	}

	// Set defaults
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}

	return &Parser{
		logger:  opts.Logger.WithComponent("templa-parser"),
		options: opts,
	}, nil
}

var quiet = &Parser{
	logger:  mdwlog.NewNop(),
	options: Options{MaxInputLength: DefaultMaxInputLength},
}

// Parse parses source with default options and no logging
func Parse(source string) (*mdwast.AST, error) {
	return quiet.Parse(source)
}

// Parse parses a complete program. A syntax error is returned as
// *ParseError; oversized input is rejected before parsing starts.
func (p *Parser) Parse(source string) (*mdwast.AST, error) {
	if len(source) > p.options.MaxInputLength {
		return nil, mdwerror.Newf("input exceeds maximum length: %d > %d",
			len(source), p.options.MaxInputLength).
			WithCode(mdwerror.CodeInputTooLarge).
			WithOperation("parser.Parse").
			WithDetail("length", len(source)).
			WithDetail("limit", p.options.MaxInputLength)
	}

	p.logger.Debug("Starting templa parsing", mdwlog.Fields{
		"length": len(source),
	})

	g := &grammar{scanner: newScanner(source)}
	prog, ok := g.program()
	if !ok {
		perr := g.parseError()
		p.logger.Info("templa parsing failed", mdwlog.Fields{
			"line":     perr.Line,
			"column":   perr.Column,
			"expected": strings.Join(perr.Expected, ", "),
		})
		return nil, perr
	}

	p.logger.Debug("templa parsing completed successfully", mdwlog.Fields{
		"length": len(source),
		"decls":  len(prog.Decls()),
	})

	return mdwast.NewAST(prog), nil
}

// grammar holds one rule method per production
type grammar struct {
	*scanner
}

// sepBy parses item (sep item)*; at least one item is required
func sepBy[T any](s *scanner, item func() (T, bool), sep func() bool) ([]T, bool) {
	first, ok := item()
	if !ok {
		return nil, false
	}
	items := []T{first}
	for {
		save := s.mark()
		if !sep() {
			s.reset(save)
			break
		}
		next, ok := item()
		if !ok {
			s.reset(save)
			break
		}
		items = append(items, next)
	}
	return items, true
}

// chain parses operand (operator operand)* and keeps the operators
func chain[T, O any](s *scanner, operand func() (T, bool), operator func() (O, bool)) ([]T, []O, bool) {
	first, ok := operand()
	if !ok {
		return nil, nil, false
	}
	operands := []T{first}
	var operators []O
	for {
		save := s.mark()
		op, ok := operator()
		if !ok {
			s.reset(save)
			break
		}
		next, ok := operand()
		if !ok {
			s.reset(save)
			break
		}
		operators = append(operators, op)
		operands = append(operands, next)
	}
	return operands, operators, true
}

func (g *grammar) comma() bool {
	return g.symbol(",")
}

// program := NL* decl_func (NL+ decl_func)* NL* EOF
func (g *grammar) program() (*mdwast.Program, bool) {
	g.newlines()
	pos := g.here()

	first, ok := g.declFunc()
	if !ok {
		return nil, false
	}
	decls := []*mdwast.DeclFunc{first}
	for {
		save := g.mark()
		if !g.newline() {
			break
		}
		g.newlines()
		next, ok := g.declFunc()
		if !ok {
			g.reset(save)
			break
		}
		decls = append(decls, next)
	}

	g.newlines()
	if !g.eof() {
		return nil, false
	}
	return mdwast.NewProgram(pos, decls), true
}

// decl_func := NAME ('(' decl_params ')')? '=' expression
func (g *grammar) declFunc() (*mdwast.DeclFunc, bool) {
	start := g.mark()
	pos := g.here()

	name, ok := g.name()
	if !ok {
		return nil, false
	}

	var params *mdwast.DeclParams
	save := g.mark()
	if g.symbol("(") {
		if ps, ok := g.declParams(); ok && g.symbol(")") {
			params = ps
		} else {
			g.reset(save)
		}
	}

	if !g.symbol("=") {
		g.reset(start)
		return nil, false
	}
	body, ok := g.expression()
	if !ok {
		g.reset(start)
		return nil, false
	}
	return mdwast.NewDeclFunc(pos, name, params, body), true
}

func (g *grammar) declParams() (*mdwast.DeclParams, bool) {
	pos := g.here()
	params, ok := sepBy(g.scanner, g.declParam, g.comma)
	if !ok {
		return nil, false
	}
	d, err := mdwast.NewDeclParams(pos, params)
	return d, err == nil
}

// decl_param := list_match | type_match | constant | NAME
func (g *grammar) declParam() (*mdwast.DeclParam, bool) {
	pos := g.here()
	if lm, ok := g.listMatch(); ok {
		return mdwast.NewDeclParamPattern(pos, lm), true
	}
	if tm, ok := g.typeMatch(); ok {
		return mdwast.NewDeclParamPattern(pos, tm), true
	}
	if c, ok := g.constant(); ok {
		return mdwast.NewDeclParamPattern(pos, c), true
	}
	if name, ok := g.name(); ok {
		return mdwast.NewDeclParamName(pos, name), true
	}
	return nil, false
}

// list_match := (NAME ':')+ NAME
func (g *grammar) listMatch() (*mdwast.ListMatch, bool) {
	start := g.mark()
	pos := g.here()

	var elements []string
	for {
		save := g.mark()
		name, ok := g.name()
		if !ok {
			break
		}
		if !g.symbol(":") {
			g.reset(save)
			break
		}
		elements = append(elements, name)
	}
	if len(elements) == 0 {
		g.reset(start)
		return nil, false
	}

	rest, ok := g.name()
	if !ok {
		g.reset(start)
		return nil, false
	}
	return mdwast.NewListMatch(pos, elements, rest), true
}

// type_match := NAME '::' NAME
func (g *grammar) typeMatch() (*mdwast.TypeMatch, bool) {
	start := g.mark()
	pos := g.here()

	param, ok := g.name()
	if !ok {
		return nil, false
	}
	if !g.symbol("::") {
		g.reset(start)
		return nil, false
	}
	typ, ok := g.name()
	if !ok {
		g.reset(start)
		return nil, false
	}
	return mdwast.NewTypeMatch(pos, param, typ), true
}

// expression := let | if | case | primary
func (g *grammar) expression() (*mdwast.Expression, bool) {
	pos := g.here()
	if e, ok := g.letExpression(); ok {
		return mdwast.NewExpression(pos, e), true
	}
	if e, ok := g.ifExpression(); ok {
		return mdwast.NewExpression(pos, e), true
	}
	if e, ok := g.caseExpression(); ok {
		return mdwast.NewExpression(pos, e), true
	}
	if e, ok := g.primaryExpression(); ok {
		return mdwast.NewExpression(pos, e), true
	}
	return nil, false
}

// let := 'let' NL? decl_func % NL NL? 'in' NL? expression
func (g *grammar) letExpression() (*mdwast.LetExpression, bool) {
	start := g.mark()
	pos := g.here()

	if !g.keyword("let") {
		return nil, false
	}
	g.optNewline()

	decls, ok := sepBy(g.scanner, g.declFunc, g.newline)
	if !ok {
		g.reset(start)
		return nil, false
	}
	g.optNewline()
	if !g.keyword("in") {
		g.reset(start)
		return nil, false
	}
	g.optNewline()

	body, ok := g.expression()
	if !ok {
		g.reset(start)
		return nil, false
	}
	return mdwast.NewLetExpression(pos, decls, body), true
}

// if := 'if' expression 'then' NL? expression NL? 'else' NL? expression
func (g *grammar) ifExpression() (*mdwast.IfExpression, bool) {
	start := g.mark()
	pos := g.here()

	if !g.keyword("if") {
		return nil, false
	}
	cond, ok := g.expression()
	if !ok || !g.keyword("then") {
		g.reset(start)
		return nil, false
	}
	g.optNewline()

	then, ok := g.expression()
	if !ok {
		g.reset(start)
		return nil, false
	}
	g.optNewline()
	if !g.keyword("else") {
		g.reset(start)
		return nil, false
	}
	g.optNewline()

	elseExpr, ok := g.expression()
	if !ok {
		g.reset(start)
		return nil, false
	}
	return mdwast.NewIfExpression(pos, cond, then, elseExpr), true
}

// case := 'case' NL? (case_when NL?)* '|' 'otherwise' NL? expression
func (g *grammar) caseExpression() (*mdwast.CaseExpression, bool) {
	start := g.mark()
	pos := g.here()

	if !g.keyword("case") {
		return nil, false
	}
	g.optNewline()

	var whens []*mdwast.CaseWhen
	for {
		when, ok := g.caseWhen()
		if !ok {
			break
		}
		whens = append(whens, when)
		g.optNewline()
	}

	if !g.symbol("|") || !g.keyword("otherwise") {
		g.reset(start)
		return nil, false
	}
	g.optNewline()

	otherwise, ok := g.expression()
	if !ok {
		g.reset(start)
		return nil, false
	}
	return mdwast.NewCaseExpression(pos, whens, otherwise), true
}

// case_when := '|' expression NL? 'then' NL? expression
func (g *grammar) caseWhen() (*mdwast.CaseWhen, bool) {
	start := g.mark()
	pos := g.here()

	if !g.symbol("|") {
		return nil, false
	}
	cond, ok := g.expression()
	if !ok {
		g.reset(start)
		return nil, false
	}
	g.optNewline()
	if !g.keyword("then") {
		g.reset(start)
		return nil, false
	}
	g.optNewline()

	then, ok := g.expression()
	if !ok {
		g.reset(start)
		return nil, false
	}
	return mdwast.NewCaseWhen(pos, cond, then), true
}

func (g *grammar) primaryExpression() (*mdwast.PrimaryExpression, bool) {
	pos := g.here()
	formulae, ops, ok := chain(g.scanner, g.formula, g.relationalOperator)
	if !ok {
		return nil, false
	}
	p, err := mdwast.NewPrimaryExpression(pos, formulae, ops)
	return p, err == nil
}

// formula := ('+'|'-')? term % additive_operator
func (g *grammar) formula() (*mdwast.Formula, bool) {
	start := g.mark()
	pos := g.here()

	sign := mdwast.SignNone
	switch {
	case g.symbol("+"):
		sign = mdwast.SignPlus
	case g.symbol("-"):
		sign = mdwast.SignMinus
	}

	terms, ops, ok := chain(g.scanner, g.term, g.additiveOperator)
	if !ok {
		g.reset(start)
		return nil, false
	}
	f, err := mdwast.NewFormula(pos, sign, terms, ops)
	return f, err == nil
}

func (g *grammar) term() (*mdwast.Term, bool) {
	pos := g.here()
	factors, ops, ok := chain(g.scanner, g.factor, g.multOperator)
	if !ok {
		return nil, false
	}
	t, err := mdwast.NewTerm(pos, factors, ops)
	return t, err == nil
}

// factor := '!' factor | '(' primary ')' | constant | func_call
func (g *grammar) factor() (*mdwast.Factor, bool) {
	start := g.mark()
	pos := g.here()

	if g.symbol("!") {
		if inner, ok := g.factor(); ok {
			return mdwast.NewNegatedFactor(pos, inner), true
		}
		g.reset(start)
	}
	if g.symbol("(") {
		if inner, ok := g.primaryExpression(); ok && g.symbol(")") {
			return mdwast.NewFactor(pos, inner), true
		}
		g.reset(start)
	}
	if c, ok := g.constant(); ok {
		return mdwast.NewFactor(pos, c), true
	}
	if call, ok := g.funcCall(); ok {
		return mdwast.NewFactor(pos, call), true
	}
	return nil, false
}

func (g *grammar) relationalOperator() (*mdwast.RelationalOperator, bool) {
	pos := g.here()
	for _, op := range mdwast.RelationalOperators {
		if g.symbol(op) {
			o, err := mdwast.NewRelationalOperator(pos, op)
			return o, err == nil
		}
	}
	return nil, false
}

func (g *grammar) additiveOperator() (*mdwast.AdditiveOperator, bool) {
	pos := g.here()
	for _, op := range mdwast.AdditiveOperators {
		if g.symbol(op) {
			o, err := mdwast.NewAdditiveOperator(pos, op)
			return o, err == nil
		}
	}
	return nil, false
}

func (g *grammar) multOperator() (*mdwast.MultOperator, bool) {
	pos := g.here()
	for _, op := range mdwast.MultOperators {
		if g.symbol(op) {
			o, err := mdwast.NewMultOperator(pos, op)
			return o, err == nil
		}
	}
	return nil, false
}

// constant := INTEGER | CHAR | BOOL | STRING | list
func (g *grammar) constant() (*mdwast.Constant, bool) {
	pos := g.here()
	if v, ok := g.integer(); ok {
		return mdwast.NewIntConstant(pos, v), true
	}
	if v, ok := g.char(); ok {
		return mdwast.NewCharConstant(pos, v), true
	}
	if g.keyword("true") {
		return mdwast.NewBoolConstant(pos, true), true
	}
	if g.keyword("false") {
		return mdwast.NewBoolConstant(pos, false), true
	}
	if v, ok := g.str(); ok {
		return mdwast.NewStringConstant(pos, v), true
	}
	if l, ok := g.list(); ok {
		return mdwast.NewListConstant(pos, l), true
	}
	return nil, false
}

// list := enum_list | int_list | char_list
func (g *grammar) list() (*mdwast.List, bool) {
	pos := g.here()
	if l, ok := g.enumList(); ok {
		return mdwast.NewList(pos, l), true
	}
	if l, ok := g.intList(); ok {
		return mdwast.NewList(pos, l), true
	}
	if l, ok := g.charList(); ok {
		return mdwast.NewList(pos, l), true
	}
	return nil, false
}

func (g *grammar) enumList() (*mdwast.EnumList, bool) {
	start := g.mark()
	pos := g.here()

	if !g.symbol("[") {
		return nil, false
	}
	elements, ok := sepBy(g.scanner, g.primaryExpression, g.comma)
	if !ok || !g.symbol("]") {
		g.reset(start)
		return nil, false
	}
	l, err := mdwast.NewEnumList(pos, elements)
	return l, err == nil
}

func (g *grammar) intList() (*mdwast.IntList, bool) {
	start := g.mark()
	pos := g.here()

	if !g.symbol("[") {
		return nil, false
	}
	lo, ok := g.integer()
	if !ok || !g.symbol("..") {
		g.reset(start)
		return nil, false
	}
	hi, ok := g.integer()
	if !ok || !g.symbol("]") {
		g.reset(start)
		return nil, false
	}
	return mdwast.NewIntList(pos, lo, hi), true
}

func (g *grammar) charList() (*mdwast.CharList, bool) {
	start := g.mark()
	pos := g.here()

	if !g.symbol("[") {
		return nil, false
	}
	begin, ok := g.rangeChar()
	if !ok || !g.symbol("..") {
		g.reset(start)
		return nil, false
	}
	end, ok := g.rangeChar()
	if !ok || !g.symbol("]") {
		g.reset(start)
		return nil, false
	}
	return mdwast.NewCharList(pos, begin, end), true
}

// func_call := NAME ('(' call_args ')')?
func (g *grammar) funcCall() (*mdwast.FuncCall, bool) {
	pos := g.here()
	name, ok := g.name()
	if !ok {
		return nil, false
	}

	var args *mdwast.CallArgs
	save := g.mark()
	if g.symbol("(") {
		argPos := g.here()
		list, ok := sepBy(g.scanner, g.primaryExpression, g.comma)
		if ok && g.symbol(")") {
			args, _ = mdwast.NewCallArgs(argPos, list)
		}
		if args == nil {
			g.reset(save)
		}
	}
	return mdwast.NewFuncCall(pos, name, args), true
}
