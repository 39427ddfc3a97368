package parser

import (
	"github.com/ccdavis/lift-lang/internal/ast"
	"github.com/ccdavis/lift-lang/internal/lexer"
)

// parseLetBinding parses `let name [: T] = expr` and `let var name [: T] = expr`.
func (p *Parser) parseLetBinding() ast.Expression {
	tok := p.cur // 'let'
	binding := &ast.LetBinding{Token: tok}

	if p.peekIs(lexer.VAR) {
		p.nextToken()
		binding.Mutable = true
	}

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	binding.Name = p.cur.Literal

	if p.peekIs(lexer.COLON) {
		p.nextToken() // ':'
		p.nextToken()
		binding.DeclaredType = p.parseTypeExpr()
	}

	if !p.expectPeek(lexer.EQ) {
		return nil
	}
	p.nextToken()
	binding.Value = p.parseExpression(LOWEST)
	return binding
}

// parseOutput parses `output(a, b, c)`.
func (p *Parser) parseOutput() ast.Expression {
	tok := p.cur // 'output'
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	out := &ast.Output{Token: tok}

	if p.peekIs(lexer.RPAREN) {
		p.nextToken()
		return out
	}

	p.nextToken()
	out.Args = append(out.Args, p.parseExpression(LOWEST))
	for p.peekIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		out.Args = append(out.Args, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return out
}

// parseFunctionOrLambda parses `function [Receiver.]name(params): RET BODY`
// or, when no name follows `function`, an anonymous lambda.
func (p *Parser) parseFunctionOrLambda() ast.Expression {
	tok := p.cur // 'function'

	if p.peekIs(lexer.LPAREN) {
		return p.parseLambdaTail(tok)
	}

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	receiver := ""
	name := p.cur.Literal
	if p.peekIs(lexer.DOT) {
		p.nextToken() // '.'
		if !p.expectPeek(lexer.IDENT) {
			return nil
		}
		receiver = name
		name = p.cur.Literal
	}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	params := p.parseParamList()

	if !p.expectPeek(lexer.COLON) {
		return nil
	}
	p.nextToken()
	retTy := p.parseTypeExpr()

	body := p.parseFunctionBody()
	return &ast.FunctionDef{Token: tok, Receiver: receiver, Name: name, Params: params, ReturnTy: retTy, Body: body}
}

func (p *Parser) parseLambdaTail(tok lexer.Token) ast.Expression {
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	params := p.parseParamList()

	if !p.expectPeek(lexer.COLON) {
		return nil
	}
	p.nextToken()
	retTy := p.parseTypeExpr()

	body := p.parseFunctionBody()
	return &ast.Lambda{Token: tok, Params: params, ReturnTy: retTy, Body: body}
}

// parseFunctionBody parses either a `{ ... }` block body or a `= expr`
// single-expression body, normalizing the latter into a one-expression
// block with no trailing `;` (so its value is the expression's value).
func (p *Parser) parseFunctionBody() *ast.Block {
	if p.peekIs(lexer.LBRACE) {
		p.nextToken()
		return p.parseBlock()
	}
	if !p.expectPeek(lexer.EQ) {
		return nil
	}
	tok := p.cur
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	return &ast.Block{Token: tok, Expressions: []ast.Expression{expr}}
}

// parseParamList parses `(name: Type, cpy name2: Type2, ...)`. Entry:
// p.cur is '('. Exit: p.cur is ')'.
func (p *Parser) parseParamList() []ast.Param {
	var params []ast.Param

	if p.peekIs(lexer.RPAREN) {
		p.nextToken()
		return params
	}

	p.nextToken()
	params = append(params, p.parseParam())
	for p.peekIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, p.parseParam())
	}

	p.expectPeek(lexer.RPAREN)
	return params
}

func (p *Parser) parseParam() ast.Param {
	param := ast.Param{}
	if p.curIs(lexer.CPY) {
		param.Copy = true
		p.nextToken()
	}
	param.Name = p.cur.Literal
	if !p.expectPeek(lexer.COLON) {
		return param
	}
	p.nextToken()
	param.Type = p.parseTypeExpr()
	return param
}

// parseTypeDef parses `type T = ...`.
func (p *Parser) parseTypeDef() ast.Expression {
	tok := p.cur // 'type'
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	name := p.cur.Literal

	if !p.expectPeek(lexer.EQ) {
		return nil
	}
	p.nextToken()
	expr := p.parseTypeExpr()

	return &ast.TypeDef{Token: tok, Name: name, Expr: expr}
}
