package parser

import (
	"github.com/ccdavis/lift-lang/internal/ast"
	"github.com/ccdavis/lift-lang/internal/lexer"
)

// parseDotPostfix handles `receiver.field` and `receiver.method(args)`.
// The grammar gives both the same leading `.`; which one it is depends
// on whether `(` follows the name.
func (p *Parser) parseDotPostfix(receiver ast.Expression) ast.Expression {
	tok := p.cur // '.'
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	name := p.cur.Literal

	if p.peekIs(lexer.LPAREN) {
		p.nextToken() // move to '('
		args := p.parseArgs()
		return &ast.MethodCall{Token: tok, Receiver: receiver, Method: name, Args: args}
	}
	return &ast.FieldAccess{Token: tok, Receiver: receiver, Field: name}
}

// parseCallExpr handles `name(args)`. The callee must be a plain
// identifier; call targets are names, never arbitrary expressions.
func (p *Parser) parseCallExpr(left ast.Expression) ast.Expression {
	tok := p.cur // '('
	ident, ok := left.(*ast.Identifier)
	if !ok {
		p.errorf(tok.Pos, "cannot call %s: call targets must be a name", left.String())
		return nil
	}
	args := p.parseArgs()
	return &ast.Call{Token: tok, Callee: ident.Value, Args: args}
}

// parseArgs parses a keyword-only argument list. Entry: p.cur is '('.
// Exit: p.cur is ')'.
func (p *Parser) parseArgs() []ast.Arg {
	var args []ast.Arg

	if p.peekIs(lexer.RPAREN) {
		p.nextToken()
		return args
	}

	p.nextToken()
	args = append(args, p.parseArg())
	for p.peekIs(lexer.COMMA) {
		p.nextToken() // consume ','
		p.nextToken() // move to next arg
		args = append(args, p.parseArg())
	}

	if !p.expectPeek(lexer.RPAREN) {
		return args
	}
	return args
}

func (p *Parser) parseArg() ast.Arg {
	if !p.curIs(lexer.IDENT) && !p.curIs(lexer.SELF) {
		p.errorf(p.cur.Pos, "expected argument name, got %s", p.cur.Type)
		return ast.Arg{}
	}
	name := p.cur.Literal
	if !p.expectPeek(lexer.COLON) {
		return ast.Arg{Name: name}
	}
	p.nextToken()
	value := p.parseExpression(LOWEST)
	return ast.Arg{Name: name, Value: value}
}

// parseIndexExpr handles `receiver[index]`.
func (p *Parser) parseIndexExpr(receiver ast.Expression) ast.Expression {
	tok := p.cur // '['
	p.nextToken()
	index := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RBRACK) {
		return nil
	}
	return &ast.IndexExpr{Token: tok, Receiver: receiver, Index: index}
}
