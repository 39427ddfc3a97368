package ast

import (
	"strings"

	"github.com/ccdavis/lift-lang/internal/lexer"
)

// StructLiteral constructs a value of a named struct type. The parser
// always emits a Call; the analyzer rewrites it to a StructLiteral once
// the callee name is found to resolve to a struct type (symbol insertion
// pass, see internal/semantic).
type StructLiteral struct {
	Token     lexer.Token
	TypeName  string
	Fields    []Arg // reuse Arg's Name/Value shape for field: value pairs
	Annotation
}

func (s *StructLiteral) expressionNode()      {}
func (s *StructLiteral) TokenLiteral() string { return s.Token.Literal }
func (s *StructLiteral) Pos() lexer.Position  { return s.Token.Pos }
func (s *StructLiteral) String() string {
	parts := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		parts = append(parts, f.String())
	}
	return s.TypeName + "(" + strings.Join(parts, ", ") + ")"
}

// FieldAccess is `receiver.field`.
type FieldAccess struct {
	Token    lexer.Token // '.'
	Receiver Expression
	Field    string
	Annotation
}

func (f *FieldAccess) expressionNode()      {}
func (f *FieldAccess) TokenLiteral() string { return f.Token.Literal }
func (f *FieldAccess) Pos() lexer.Position  { return f.Token.Pos }
func (f *FieldAccess) String() string       { return f.Receiver.String() + "." + f.Field }

// FieldAssign is `receiver.field := value`. Valid only when Receiver
// resolves to a mutable-bound struct variable.
type FieldAssign struct {
	Token    lexer.Token // ':='
	Receiver Expression
	Field    string
	Value    Expression
	Annotation
}

func (f *FieldAssign) expressionNode()      {}
func (f *FieldAssign) TokenLiteral() string { return f.Token.Literal }
func (f *FieldAssign) Pos() lexer.Position  { return f.Token.Pos }
func (f *FieldAssign) String() string {
	return f.Receiver.String() + "." + f.Field + " := " + f.Value.String()
}
