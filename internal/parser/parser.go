// Package parser implements Lift's parser using Pratt (precedence
// climbing) parsing over the token stream from internal/lexer.
//
// Key patterns mirrored from the ambient style:
//   - prefixParseFn/infixParseFn tables keyed by token type, registered
//     in New so every parse* method stays a standalone, testable unit.
//   - cur/peek with a single-token lookahead buffer; no
//     backtracking is needed since Lift's grammar has no speculative
//     forms (every keyword is unambiguous on its leading token).
//   - errors accumulate in p.errors rather than panicking, so a REPL-style
//     caller can report every syntax error found in one top-level
//     expression instead of stopping at the first.
package parser

import (
	"fmt"

	"github.com/ccdavis/lift-lang/internal/ast"
	"github.com/ccdavis/lift-lang/internal/lexer"
)

// Precedence levels, lowest to highest. `..` sits "at arithmetic level"
// per the grammar summary; it is placed just above comparisons and below
// `+`/`-` so `1..n+1` parses as `1..(n+1)`.
const (
	_ int = iota
	LOWEST
	ASSIGN      // :=
	OR          // or
	AND         // and
	EQUALS      // = <>
	LESSGREATER // < <= > >=
	RANGEPREC   // ..
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // unary - not
	POSTFIX     // . [...] (...)
)

var precedences = map[lexer.TokenType]int{
	lexer.ASSIGN:      ASSIGN,
	lexer.OR:          OR,
	lexer.AND:         AND,
	lexer.EQ:          EQUALS,
	lexer.NOT_EQ:      EQUALS,
	lexer.LESS:        LESSGREATER,
	lexer.LESS_EQ:     LESSGREATER,
	lexer.GREATER:     LESSGREATER,
	lexer.GREATER_EQ:  LESSGREATER,
	lexer.DOTDOT:      RANGEPREC,
	lexer.PLUS:        SUM,
	lexer.MINUS:       SUM,
	lexer.ASTERISK:    PRODUCT,
	lexer.SLASH:       PRODUCT,
	lexer.DOT:         POSTFIX,
	lexer.LBRACK:      POSTFIX,
	lexer.LPAREN:      POSTFIX,
}

type prefixParseFn func() ast.Expression
type infixParseFn func(left ast.Expression) ast.Expression

// Parser converts a lexer's token stream into an *ast.Program.
type Parser struct {
	l    *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn

	errors []string
}

// New constructs a Parser reading from l and primes the two-token
// lookahead buffer.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[lexer.TokenType]prefixParseFn{
		lexer.IDENT:    p.parseIdentifier,
		lexer.INT:      p.parseIntLiteral,
		lexer.FLOAT:    p.parseFltLiteral,
		lexer.STRING:   p.parseStrLiteral,
		lexer.TRUE:     p.parseBoolLiteral,
		lexer.FALSE:    p.parseBoolLiteral,
		lexer.MINUS:    p.parseUnaryExpr,
		lexer.NOT:      p.parseUnaryExpr,
		lexer.LPAREN:   p.parseGroupedExpr,
		lexer.LBRACK:   p.parseListLiteral,
		lexer.HASHBRACE: p.parseMapLiteral,
		lexer.LBRACE:   p.parseBlockExpr,
		lexer.IF:       p.parseIf,
		lexer.WHILE:    p.parseWhile,
		lexer.LET:      p.parseLetBinding,
		lexer.FUNCTION:  p.parseFunctionOrLambda,
		lexer.TYPE:     p.parseTypeDef,
		lexer.OUTPUT:   p.parseOutput,
		lexer.SELF:     p.parseIdentifier,
	}

	p.infixParseFns = map[lexer.TokenType]infixParseFn{
		lexer.PLUS:       p.parseBinaryExpr,
		lexer.MINUS:      p.parseBinaryExpr,
		lexer.ASTERISK:   p.parseBinaryExpr,
		lexer.SLASH:      p.parseBinaryExpr,
		lexer.EQ:         p.parseBinaryExpr,
		lexer.NOT_EQ:     p.parseBinaryExpr,
		lexer.LESS:       p.parseBinaryExpr,
		lexer.LESS_EQ:    p.parseBinaryExpr,
		lexer.GREATER:    p.parseBinaryExpr,
		lexer.GREATER_EQ: p.parseBinaryExpr,
		lexer.AND:        p.parseBinaryExpr,
		lexer.OR:         p.parseBinaryExpr,
		lexer.DOTDOT:     p.parseRangeLiteral,
		lexer.DOT:        p.parseDotPostfix,
		lexer.LBRACK:     p.parseIndexExpr,
		lexer.LPAREN:     p.parseCallExpr,
		lexer.ASSIGN:     p.parseAssignExpr,
	}

	p.nextToken()
	p.nextToken()
	return p
}

// Errors reports every syntax error accumulated so far.
func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) nextToken() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) curIs(t lexer.TokenType) bool  { return p.cur.Type == t }
func (p *Parser) peekIs(t lexer.TokenType) bool { return p.peek.Type == t }

func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t lexer.TokenType) {
	p.errors = append(p.errors, fmt.Sprintf("expected next token to be %s, got %s instead at %s", t, p.peek.Type, p.peek.Pos))
}

func (p *Parser) errorf(pos lexer.Position, format string, args ...interface{}) {
	p.errors = append(p.errors, fmt.Sprintf("%s at %s", fmt.Sprintf(format, args...), pos))
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peek.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.cur.Type]; ok {
		return prec
	}
	return LOWEST
}

// ParseProgram parses the whole token stream: a sequence of top-level
// expressions separated by `;`.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curIs(lexer.EOF) {
		expr := p.parseExpression(LOWEST)
		if expr != nil {
			program.Expressions = append(program.Expressions, expr)
		}
		if p.peekIs(lexer.SEMICOLON) {
			p.nextToken()
		}
		p.nextToken()
	}
	return program
}

// parseExpression is the Pratt core: parse one prefix term, then repeatedly
// extend it with infix/postfix operators whose precedence exceeds prec.
func (p *Parser) parseExpression(prec int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.cur.Type]
	if !ok {
		p.errorf(p.cur.Pos, "unexpected token %s (%q): no prefix parse function", p.cur.Type, p.cur.Literal)
		return nil
	}
	left := prefix()

	for !p.peekIs(lexer.SEMICOLON) && prec < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peek.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}
