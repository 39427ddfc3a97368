package ast

import "github.com/ccdavis/lift-lang/internal/lexer"

// BinaryExpr is a two-operand operator application: arithmetic,
// comparison, logical, or range construction (`a..b`).
type BinaryExpr struct {
	Token    lexer.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
	Annotation
}

func (b *BinaryExpr) expressionNode()      {}
func (b *BinaryExpr) TokenLiteral() string { return b.Token.Literal }
func (b *BinaryExpr) Pos() lexer.Position  { return b.Token.Pos }
func (b *BinaryExpr) String() string {
	return "(" + b.Left.String() + " " + b.Operator + " " + b.Right.String() + ")"
}

// UnaryExpr is unary negation (`-x`) or logical not (`not x`).
type UnaryExpr struct {
	Token    lexer.Token
	Operator string
	Operand  Expression
	Annotation
}

func (u *UnaryExpr) expressionNode()      {}
func (u *UnaryExpr) TokenLiteral() string { return u.Token.Literal }
func (u *UnaryExpr) Pos() lexer.Position  { return u.Token.Pos }
func (u *UnaryExpr) String() string {
	if u.Operator == "not" {
		return "(" + u.Operator + " " + u.Operand.String() + ")"
	}
	return "(" + u.Operator + u.Operand.String() + ")"
}
