package parser

import (
	"github.com/ccdavis/lift-lang/internal/ast"
	"github.com/ccdavis/lift-lang/internal/lexer"
)

// parseListLiteral parses `[a, b, c]`.
func (p *Parser) parseListLiteral() ast.Expression {
	tok := p.cur // '['
	lit := &ast.ListLiteral{Token: tok}

	if p.peekIs(lexer.RBRACK) {
		p.nextToken()
		return lit
	}

	p.nextToken()
	lit.Elements = append(lit.Elements, p.parseExpression(LOWEST))
	for p.peekIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		lit.Elements = append(lit.Elements, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(lexer.RBRACK) {
		return nil
	}
	return lit
}

// parseMapLiteral parses `#{k: v, k2: v2}`. The lexer emits `#{` as a
// single HASHBRACE token, closed by an ordinary '}'.
func (p *Parser) parseMapLiteral() ast.Expression {
	tok := p.cur // '#{'
	lit := &ast.MapLiteral{Token: tok}

	if p.peekIs(lexer.RBRACE) {
		p.nextToken()
		return lit
	}

	p.nextToken()
	lit.Entries = append(lit.Entries, p.parseMapEntry())
	for p.peekIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		lit.Entries = append(lit.Entries, p.parseMapEntry())
	}

	if !p.expectPeek(lexer.RBRACE) {
		return nil
	}
	return lit
}

func (p *Parser) parseMapEntry() ast.MapEntry {
	key := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.COLON) {
		return ast.MapEntry{Key: key}
	}
	p.nextToken()
	value := p.parseExpression(LOWEST)
	return ast.MapEntry{Key: key, Value: value}
}

// parseRangeLiteral handles the infix `..` operator: `start..end`.
func (p *Parser) parseRangeLiteral(left ast.Expression) ast.Expression {
	tok := p.cur // '..'
	prec := p.curPrecedence()
	p.nextToken()
	end := p.parseExpression(prec)
	return &ast.RangeLiteral{Token: tok, Start: left, End: end}
}
