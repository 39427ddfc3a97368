// Package types implements Lift's static data-type model: a tagged sum
// with one variant per shape the type checker reasons about. Composite
// variants (List, Map, Set, Struct, Enum, TypeRef) carry their own payload
// rather than subclassing, so the whole model is comparable by value.
package types

import (
	"fmt"
	"sort"
	"strings"
)

// Kind discriminates the Type variants.
type Kind int

const (
	// Unsolved marks a type the analyzer could not determine; it is what
	// resolving a missing (nil) type expression yields.
	Unsolved Kind = iota
	Int
	Flt
	Str
	Bool
	Unit
	Range
	List
	Map
	Set
	Struct
	Enum
	// TypeRef is a named alias; it is resolved through the symbol table
	// to its underlying type for every operation. It is never stripped
	// from a binding's declared type, only from operation positions.
	TypeRef
)

// Field describes one member of a Struct type, in declaration order.
type Field struct {
	Name string
	Type *Type
}

// Type is the tagged-union Lift data type. Only the fields relevant to
// Kind are populated; see the New* constructors below.
type Type struct {
	Kind Kind

	// List/Set element type.
	Elem *Type
	// Map key/value types.
	Key   *Type
	Value *Type

	// Struct/Enum/TypeRef name.
	Name string
	// Struct field list, declaration order.
	Fields []Field
	// Enum variant tags, declaration order.
	Variants []string
}

var (
	IntType   = &Type{Kind: Int}
	FltType   = &Type{Kind: Flt}
	StrType   = &Type{Kind: Str}
	BoolType  = &Type{Kind: Bool}
	UnitType  = &Type{Kind: Unit}
	RangeType = &Type{Kind: Range}
)

// NewList returns the type "List of elem".
func NewList(elem *Type) *Type { return &Type{Kind: List, Elem: elem} }

// NewSet returns the type "Set of elem".
func NewSet(elem *Type) *Type { return &Type{Kind: Set, Elem: elem} }

// NewMap returns the type "Map of key to value".
func NewMap(key, value *Type) *Type { return &Type{Kind: Map, Key: key, Value: value} }

// NewStruct returns a named struct type with the given fields.
func NewStruct(name string, fields []Field) *Type {
	return &Type{Kind: Struct, Name: name, Fields: fields}
}

// NewEnum returns a named enum type with the given variant tags.
func NewEnum(name string, variants []string) *Type {
	return &Type{Kind: Enum, Name: name, Variants: variants}
}

// NewTypeRef returns an unresolved reference to the named alias.
func NewTypeRef(name string) *Type { return &Type{Kind: TypeRef, Name: name} }

// Field looks up a struct field by name.
func (t *Type) Field(name string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// IsNumeric reports whether t is Int or Flt.
func (t *Type) IsNumeric() bool {
	return t.Kind == Int || t.Kind == Flt
}

// IsValidKey reports whether t may be a Map or Set key: Int, Str, or Bool,
// never Flt.
func (t *Type) IsValidKey() bool {
	switch t.Kind {
	case Int, Str, Bool:
		return true
	default:
		return false
	}
}

// Equals reports structural equality. TypeRef compares by name only; the
// caller is expected to have resolved aliases before comparing operation
// operands (see symtable.Table.ResolveTypeAlias).
func (t *Type) Equals(other *Type) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case Int, Flt, Str, Bool, Unit, Range, Unsolved:
		return true
	case List, Set:
		return t.Elem.Equals(other.Elem)
	case Map:
		return t.Key.Equals(other.Key) && t.Value.Equals(other.Value)
	case Struct, Enum, TypeRef:
		return t.Name == other.Name
	}
	return false
}

// String renders the type the way Lift source would spell it.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case Unsolved:
		return "<unsolved>"
	case Int:
		return "Int"
	case Flt:
		return "Flt"
	case Str:
		return "Str"
	case Bool:
		return "Bool"
	case Unit:
		return "Unit"
	case Range:
		return "Range"
	case List:
		return fmt.Sprintf("List of %s", t.Elem)
	case Set:
		return fmt.Sprintf("Set of %s", t.Elem)
	case Map:
		return fmt.Sprintf("Map of %s to %s", t.Key, t.Value)
	case Struct:
		names := make([]string, 0, len(t.Fields))
		for _, f := range t.Fields {
			names = append(names, f.Name+": "+f.Type.String())
		}
		sort.Strings(names)
		return fmt.Sprintf("struct(%s)", strings.Join(names, ", "))
	case Enum:
		return fmt.Sprintf("(%s)", strings.Join(t.Variants, ", "))
	case TypeRef:
		return t.Name
	}
	return "<invalid>"
}
