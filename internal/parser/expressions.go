package parser

import (
	"strconv"

	"github.com/ccdavis/lift-lang/internal/ast"
	"github.com/ccdavis/lift-lang/internal/lexer"
)

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.cur, Value: p.cur.Literal}
}

func (p *Parser) parseIntLiteral() ast.Expression {
	tok := p.cur
	v, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.errorf(tok.Pos, "could not parse %q as an integer", tok.Literal)
		return nil
	}
	return &ast.IntLiteral{Token: tok, Value: v}
}

func (p *Parser) parseFltLiteral() ast.Expression {
	tok := p.cur
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.errorf(tok.Pos, "could not parse %q as a float", tok.Literal)
		return nil
	}
	return &ast.FltLiteral{Token: tok, Value: v}
}

func (p *Parser) parseStrLiteral() ast.Expression {
	return &ast.StrLiteral{Token: p.cur, Value: p.cur.Literal}
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	return &ast.BoolLiteral{Token: p.cur, Value: p.curIs(lexer.TRUE)}
}

func (p *Parser) parseUnaryExpr() ast.Expression {
	tok := p.cur
	op := tok.Literal
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	return &ast.UnaryExpr{Token: tok, Operator: op, Operand: operand}
}

func (p *Parser) parseBinaryExpr(left ast.Expression) ast.Expression {
	tok := p.cur
	op := tok.Literal
	prec := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(prec)
	return &ast.BinaryExpr{Token: tok, Left: left, Operator: op, Right: right}
}

func (p *Parser) parseGroupedExpr() ast.Expression {
	p.nextToken() // consume '('
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseAssignExpr(left ast.Expression) ast.Expression {
	tok := p.cur // ':='
	p.nextToken()
	value := p.parseExpression(ASSIGN)

	switch target := left.(type) {
	case *ast.Identifier:
		return &ast.Assign{Token: tok, Name: target.Value, Value: value}
	case *ast.FieldAccess:
		return &ast.FieldAssign{Token: tok, Receiver: target.Receiver, Field: target.Field, Value: value}
	default:
		p.errorf(tok.Pos, "invalid assignment target %s", left.String())
		return nil
	}
}
