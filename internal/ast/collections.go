package ast

import (
	"strings"

	"github.com/ccdavis/lift-lang/internal/lexer"
)

// ListLiteral is `[a, b, c]`. The analyzer records the literal's List
// type in the embedded Annotation once the element type is known; it
// rejects an empty literal.
type ListLiteral struct {
	Token    lexer.Token // '['
	Elements []Expression
	Annotation
}

func (l *ListLiteral) expressionNode()      {}
func (l *ListLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *ListLiteral) Pos() lexer.Position  { return l.Token.Pos }
func (l *ListLiteral) String() string {
	parts := make([]string, 0, len(l.Elements))
	for _, e := range l.Elements {
		parts = append(parts, e.String())
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// MapEntry is one `key: value` pair of a map literal.
type MapEntry struct {
	Key   Expression
	Value Expression
}

// MapLiteral is `#{k: v, ...}`.
type MapLiteral struct {
	Token   lexer.Token // '#{'
	Entries []MapEntry
	Annotation
}

func (m *MapLiteral) expressionNode()      {}
func (m *MapLiteral) TokenLiteral() string { return m.Token.Literal }
func (m *MapLiteral) Pos() lexer.Position  { return m.Token.Pos }
func (m *MapLiteral) String() string {
	parts := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		parts = append(parts, e.Key.String()+":"+e.Value.String())
	}
	return "#{" + strings.Join(parts, ",") + "}"
}

// RangeLiteral is `start..end`; both endpoints must be Int.
type RangeLiteral struct {
	Token lexer.Token // '..'
	Start Expression
	End   Expression
	Annotation
}

func (r *RangeLiteral) expressionNode()      {}
func (r *RangeLiteral) TokenLiteral() string { return r.Token.Literal }
func (r *RangeLiteral) Pos() lexer.Position  { return r.Token.Pos }
func (r *RangeLiteral) String() string       { return r.Start.String() + ".." + r.End.String() }

// IndexExpr is `receiver[index]`: List element access by Int index, or
// Map value access by key.
type IndexExpr struct {
	Token    lexer.Token // '['
	Receiver Expression
	Index    Expression
	Annotation
}

func (i *IndexExpr) expressionNode()      {}
func (i *IndexExpr) TokenLiteral() string { return i.Token.Literal }
func (i *IndexExpr) Pos() lexer.Position  { return i.Token.Pos }
func (i *IndexExpr) String() string       { return i.Receiver.String() + "[" + i.Index.String() + "]" }
