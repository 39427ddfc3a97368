package ast

import "github.com/ccdavis/lift-lang/internal/lexer"

// IntLiteral is an integer literal, e.g. 123.
type IntLiteral struct {
	Token lexer.Token
	Value int64
	Annotation
}

func (l *IntLiteral) expressionNode()      {}
func (l *IntLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *IntLiteral) String() string       { return l.Token.Literal }
func (l *IntLiteral) Pos() lexer.Position  { return l.Token.Pos }

// FltLiteral is a floating-point literal, e.g. 1.5.
type FltLiteral struct {
	Token lexer.Token
	Value float64
	Annotation
}

func (l *FltLiteral) expressionNode()      {}
func (l *FltLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *FltLiteral) String() string       { return l.Token.Literal }
func (l *FltLiteral) Pos() lexer.Position  { return l.Token.Pos }

// StrLiteral is a single-quoted string literal. Value retains the
// surrounding quotes, as on the token; Stripped() returns the unquoted
// contents, which is what the interpreter stores in a runtime.Str.
type StrLiteral struct {
	Token lexer.Token
	Value string
	Annotation
}

func (l *StrLiteral) expressionNode()      {}
func (l *StrLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *StrLiteral) String() string       { return l.Value }
func (l *StrLiteral) Pos() lexer.Position  { return l.Token.Pos }

// Stripped returns the string contents without the surrounding quotes.
func (l *StrLiteral) Stripped() string {
	if len(l.Value) >= 2 && l.Value[0] == '\'' && l.Value[len(l.Value)-1] == '\'' {
		return l.Value[1 : len(l.Value)-1]
	}
	return l.Value
}

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	Token lexer.Token
	Value bool
	Annotation
}

func (l *BoolLiteral) expressionNode()      {}
func (l *BoolLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *BoolLiteral) String() string       { return l.Token.Literal }
func (l *BoolLiteral) Pos() lexer.Position  { return l.Token.Pos }

// UnitLiteral is the empty value `()`, also the implicit value of a
// `;`-terminated block.
type UnitLiteral struct {
	Token lexer.Token
	Annotation
}

func (l *UnitLiteral) expressionNode()      {}
func (l *UnitLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *UnitLiteral) String() string       { return "()" }
func (l *UnitLiteral) Pos() lexer.Position  { return l.Token.Pos }
