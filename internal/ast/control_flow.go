package ast

import (
	"strings"

	"github.com/ccdavis/lift-lang/internal/lexer"
)

// Block is a brace-delimited sequence of expressions separated by ';'.
// Its value is the value of the last expression, or Unit if the last
// expression was ';'-terminated (TrailingSemicolon).
type Block struct {
	Token             lexer.Token // '{'
	Expressions       []Expression
	TrailingSemicolon bool

	// ScopeID (from the embedded Annotation) is the block's own child
	// scope, set by the analyzer's symbol-insertion pass.
	Annotation
}

func (b *Block) expressionNode()      {}
func (b *Block) TokenLiteral() string { return b.Token.Literal }
func (b *Block) Pos() lexer.Position  { return b.Token.Pos }
func (b *Block) String() string {
	parts := make([]string, 0, len(b.Expressions))
	for _, e := range b.Expressions {
		parts = append(parts, e.String())
	}
	out := "{ " + strings.Join(parts, "; ")
	if b.TrailingSemicolon {
		out += ";"
	}
	return out + " }"
}

// If is a conditional expression. Else may be nil, in which case the
// expression yields Unit when Condition is false.
type If struct {
	Token     lexer.Token
	Condition Expression
	Then      *Block
	Else      *Block
	Annotation
}

func (i *If) expressionNode()      {}
func (i *If) TokenLiteral() string { return i.Token.Literal }
func (i *If) Pos() lexer.Position  { return i.Token.Pos }
func (i *If) String() string {
	out := "if " + i.Condition.String() + " " + i.Then.String()
	if i.Else != nil {
		out += " else " + i.Else.String()
	}
	return out
}

// While is a condition-checked loop. Its value is always Unit; the body's
// value is discarded each iteration.
type While struct {
	Token     lexer.Token
	Condition Expression
	Body      *Block
	Annotation
}

func (w *While) expressionNode()      {}
func (w *While) TokenLiteral() string { return w.Token.Literal }
func (w *While) Pos() lexer.Position  { return w.Token.Pos }
func (w *While) String() string {
	return "while " + w.Condition.String() + " " + w.Body.String()
}
