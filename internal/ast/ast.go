// Package ast defines the Lift abstract syntax tree: one Go type per node
// kind (a tagged-union in spirit, dispatched by type switch rather than a
// Kind field) sharing a common Annotation for the symbol indices and
// resolved types the semantic analyzer fills in. Lift is expression
// oriented, so every node is an Expression - there is no separate
// statement hierarchy.
package ast

import (
	"bytes"
	"strings"

	"github.com/ccdavis/lift-lang/internal/lexer"
	"github.com/ccdavis/lift-lang/internal/types"
)

// Node is the base interface every AST node satisfies.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() lexer.Position
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Annotation holds the mutable, analyzer-populated state every node that
// resolves to a symbol or a type carries: a stable (scope, index) pair
// instead of a pointer, and the resolved static type. Embedding this
// struct is how the AST stays "indices, not pointers" for symbol
// references while remaining a plain Go value type.
type Annotation struct {
	ScopeID  int
	Index    int
	Resolved bool
	Type     *types.Type
}

// SetRef records the resolved (scope, index) pair for a name reference.
func (a *Annotation) SetRef(scopeID, index int) {
	a.ScopeID, a.Index, a.Resolved = scopeID, index, true
}

// SetType records the resolved static type of the expression.
func (a *Annotation) SetType(t *types.Type) { a.Type = t }

// GetType returns the resolved static type, or nil before analysis.
func (a *Annotation) GetType() *types.Type { return a.Type }

// Program is the root node: a sequence of top-level expressions separated
// by ';'. Unlike a Block, it records no trailing ';' and has no single
// value of its own; the interpreter returns one value per expression.
type Program struct {
	Expressions []Expression
}

func (p *Program) TokenLiteral() string {
	if len(p.Expressions) > 0 {
		return p.Expressions[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	parts := make([]string, 0, len(p.Expressions))
	for _, e := range p.Expressions {
		parts = append(parts, e.String())
	}
	out.WriteString(strings.Join(parts, "; "))
	return out.String()
}

func (p *Program) Pos() lexer.Position {
	if len(p.Expressions) > 0 {
		return p.Expressions[0].Pos()
	}
	return lexer.Position{Line: 1, Column: 1}
}

// Identifier is a variable reference.
type Identifier struct {
	Token lexer.Token
	Value string
	Annotation
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }
func (i *Identifier) Pos() lexer.Position  { return i.Token.Pos }
