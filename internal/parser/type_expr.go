package parser

import (
	"strconv"

	"github.com/ccdavis/lift-lang/internal/ast"
	"github.com/ccdavis/lift-lang/internal/lexer"
)

// parseTypeExpr parses a type annotation or the right-hand side of a
// `type T = ...` definition. Entry: p.cur is the first token of the type.
// Exit: p.cur is the last token consumed.
func (p *Parser) parseTypeExpr() *ast.TypeExpr {
	switch {
	case p.curIs(lexer.LIST):
		return p.parseListOfType()
	case p.curIs(lexer.MAP):
		return p.parseMapOfType()
	case p.curIs(lexer.STRUCT):
		return p.parseStructType()
	case p.curIs(lexer.LPAREN):
		return p.parseEnumType()
	case p.curIs(lexer.INT):
		return p.parseRangeType()
	case p.curIs(lexer.IDENT):
		return &ast.TypeExpr{Token: p.cur, Name: p.cur.Literal}
	default:
		p.errorf(p.cur.Pos, "expected a type, got %s", p.cur.Type)
		return nil
	}
}

func (p *Parser) parseListOfType() *ast.TypeExpr {
	tok := p.cur // 'List'
	if !p.expectPeek(lexer.OF) {
		return nil
	}
	p.nextToken()
	elem := p.parseTypeExpr()
	return &ast.TypeExpr{Token: tok, Kind: "List", Elem: elem}
}

func (p *Parser) parseMapOfType() *ast.TypeExpr {
	tok := p.cur // 'Map'
	if !p.expectPeek(lexer.OF) {
		return nil
	}
	p.nextToken()
	key := p.parseTypeExpr()
	if !p.expectPeek(lexer.TO) {
		return nil
	}
	p.nextToken()
	value := p.parseTypeExpr()
	return &ast.TypeExpr{Token: tok, Key: key, Value: value}
}

func (p *Parser) parseStructType() *ast.TypeExpr {
	tok := p.cur // 'struct'
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	typ := &ast.TypeExpr{Token: tok}

	if p.peekIs(lexer.RPAREN) {
		p.nextToken()
		return typ
	}

	p.nextToken()
	typ.Fields = append(typ.Fields, p.parseFieldSpec())
	for p.peekIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		typ.Fields = append(typ.Fields, p.parseFieldSpec())
	}

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return typ
}

func (p *Parser) parseFieldSpec() ast.FieldSpec {
	name := p.cur.Literal
	if !p.expectPeek(lexer.COLON) {
		return ast.FieldSpec{Name: name}
	}
	p.nextToken()
	return ast.FieldSpec{Name: name, Type: p.parseTypeExpr()}
}

// parseEnumType parses `(Tag, Tag, ...)`.
func (p *Parser) parseEnumType() *ast.TypeExpr {
	tok := p.cur // '('
	typ := &ast.TypeExpr{Token: tok}

	if p.peekIs(lexer.RPAREN) {
		p.nextToken()
		return typ
	}

	p.nextToken()
	typ.Variants = append(typ.Variants, p.cur.Literal)
	for p.peekIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		typ.Variants = append(typ.Variants, p.cur.Literal)
	}

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return typ
}

// parseRangeType parses `N to M`.
func (p *Parser) parseRangeType() *ast.TypeExpr {
	tok := p.cur
	from, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.errorf(tok.Pos, "could not parse %q as an integer", tok.Literal)
	}
	if !p.expectPeek(lexer.TO) {
		return nil
	}
	if !p.expectPeek(lexer.INT) {
		return nil
	}
	to, err := strconv.ParseInt(p.cur.Literal, 10, 64)
	if err != nil {
		p.errorf(p.cur.Pos, "could not parse %q as an integer", p.cur.Literal)
	}
	return &ast.TypeExpr{Token: tok, HasRangeBounds: true, RangeFrom: from, RangeTo: to}
}
