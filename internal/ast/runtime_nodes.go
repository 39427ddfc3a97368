package ast

import (
	"github.com/ccdavis/lift-lang/internal/lexer"
	"github.com/ccdavis/lift-lang/internal/runtime"
)

// RuntimeValue and ResolvedVar are the two runtime-only AST variants the
// data model sets aside: the parser never emits either, and no code in
// this repository constructs them.

// RuntimeValue wraps an already-computed value as an expression. The
// interpreter evaluates it to its wrapped Value.
type RuntimeValue struct {
	Token lexer.Token
	Value runtime.Value
	Annotation
}

func (r *RuntimeValue) expressionNode()      {}
func (r *RuntimeValue) TokenLiteral() string { return r.Token.Literal }
func (r *RuntimeValue) Pos() lexer.Position  { return r.Token.Pos }
func (r *RuntimeValue) String() string       { return r.Value.String() }

// ResolvedVar is a variable reference pre-resolved to its (scope, index)
// pair, bypassing name lookup entirely. The interpreter has no case for
// it and reports an internal error if it meets one.
type ResolvedVar struct {
	Token   lexer.Token
	ScopeID int
	Index   int
	Annotation
}

func (r *ResolvedVar) expressionNode()      {}
func (r *ResolvedVar) TokenLiteral() string { return r.Token.Literal }
func (r *ResolvedVar) Pos() lexer.Position  { return r.Token.Pos }
func (r *ResolvedVar) String() string       { return r.Token.Literal }
