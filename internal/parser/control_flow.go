package parser

import (
	"github.com/ccdavis/lift-lang/internal/ast"
	"github.com/ccdavis/lift-lang/internal/lexer"
)

// parseBlockExpr parses `{ expr1; expr2; ... }`. Entry: p.cur is '{'.
// The trailing semicolon, if any, is recorded: a block with no trailing
// `;` yields its last expression's value, one with a trailing `;`
// yields Unit.
func (p *Parser) parseBlockExpr() ast.Expression {
	return p.parseBlock()
}

func (p *Parser) parseBlock() *ast.Block {
	tok := p.cur // '{'
	block := &ast.Block{Token: tok}

	p.nextToken()
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		expr := p.parseExpression(LOWEST)
		if expr != nil {
			block.Expressions = append(block.Expressions, expr)
		}
		block.TrailingSemicolon = false
		if p.peekIs(lexer.SEMICOLON) {
			p.nextToken()
			block.TrailingSemicolon = true
		}
		p.nextToken()
	}
	// curIs(RBRACE) now; ParseExpression's caller advances past it via
	// the normal Pratt loop since '}' carries no infix entry.
	return block
}

// parseIf parses `if cond { ... } else { ... }` (else optional).
func (p *Parser) parseIf() ast.Expression {
	tok := p.cur // 'if'
	p.nextToken()
	cond := p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	then := p.parseBlock()

	expr := &ast.If{Token: tok, Condition: cond, Then: then}

	if p.peekIs(lexer.ELSE) {
		p.nextToken()
		if !p.expectPeek(lexer.LBRACE) {
			return nil
		}
		expr.Else = p.parseBlock()
	}
	return expr
}

// parseWhile parses `while cond { body }`.
func (p *Parser) parseWhile() ast.Expression {
	tok := p.cur // 'while'
	p.nextToken()
	cond := p.parseExpression(LOWEST)

	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	body := p.parseBlock()

	return &ast.While{Token: tok, Condition: cond, Body: body}
}
