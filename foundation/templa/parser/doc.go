// File: doc.go
// Title: templa Parser Package Documentation
// Description: Documents the templa grammar accepted by the parser and
//              the shape of its syntax errors.
// Author: templa authors
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser documentation
// - 2026-10-19 v0.2.0: templa grammar

/*
Package parser turns templa source text into an ast.AST.

A program is a newline separated list of function declarations:

	program        := NL* decl_func (NL+ decl_func)* NL* EOF
	decl_func      := NAME ('(' decl_params ')')? '=' expression
	decl_param     := list_match | type_match | constant | NAME
	list_match     := (NAME ':')+ NAME
	type_match     := NAME '::' NAME
	expression     := let | if | case | primary
	let            := 'let' NL? decl_func % NL NL? 'in' NL? expression
	if             := 'if' expression 'then' NL? expression NL? 'else' NL? expression
	case           := 'case' NL? (case_when NL?)* '|' 'otherwise' NL? expression
	case_when      := '|' expression NL? 'then' NL? expression
	primary        := formula % ('==' | '!=' | '<=' | '>=' | '<' | '>')
	formula        := ('+' | '-')? term % ('||' | '+' | '-' | '|')
	term           := factor % ('&&' | '*' | '/' | '%' | '&')
	factor         := '!' factor | '(' primary ')' | constant | func_call
	constant       := INTEGER | CHAR | BOOL | STRING | list
	list           := '[' primary % ',' ']' | '[' INTEGER '..' INTEGER ']' | '[' CHAR '..' CHAR ']'
	func_call      := NAME ('(' primary % ',' ')')?

Spaces, tabs and carriage returns separate tokens anywhere; line breaks
are significant. Alternatives are tried in the order written and the first
one that matches wins.

When the input does not match, Parse returns a *ParseError holding the
farthest position the parser reached and the terminals it would have
accepted there:

	_, err := parser.Parse("f(x) 1\n")
	// syntax error at line 1, column 6: expected '=', found '1'
*/
package parser
