package ast

import "github.com/ccdavis/lift-lang/internal/lexer"

// TypeExpr is the syntactic form of a type annotation, as written in
// source. The analyzer resolves it to a types.Type, following TypeRef
// names transitively through the symbol table.
type TypeExpr struct {
	Token lexer.Token

	// Name is set for a bare name: a primitive (Int, Flt, Str, Bool) or
	// an alias to resolve via the symbol table.
	Name string

	// Elem is set for "List of T" / "Set of T".
	Elem *TypeExpr
	Kind string // "List" or "Set", when Elem != nil

	// Key/Value are set for "Map of K to V".
	Key   *TypeExpr
	Value *TypeExpr

	// Fields is set for "struct(name: T, ...)".
	Fields []FieldSpec

	// Variants is set for "(Tag, Tag, ...)" enums.
	Variants []string

	// HasRangeBounds, RangeFrom and RangeTo are set for "N to M" range
	// type declarations.
	HasRangeBounds bool
	RangeFrom      int64
	RangeTo        int64
}

// FieldSpec is one field of a struct type expression.
type FieldSpec struct {
	Name string
	Type *TypeExpr
}

func (t *TypeExpr) TokenLiteral() string { return t.Token.Literal }
func (t *TypeExpr) Pos() lexer.Position  { return t.Token.Pos }

func (t *TypeExpr) String() string {
	switch {
	case t.Elem != nil:
		return t.Kind + " of " + t.Elem.String()
	case t.Key != nil:
		return "Map of " + t.Key.String() + " to " + t.Value.String()
	case t.Fields != nil:
		return "struct(...)"
	case t.Variants != nil:
		return "(...)"
	case t.HasRangeBounds:
		return "range"
	default:
		return t.Name
	}
}
