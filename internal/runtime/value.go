// Package runtime is the support library both execution backends link
// against: the heap-backed value representations (string, list, map,
// range, struct), output formatting, structural equality, and the
// built-in method implementations. The JIT backend's obligation (see
// internal/jit) is to produce native code that calls into exactly this
// library, so that its observable output matches the interpreter's.
package runtime

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ccdavis/lift-lang/internal/types"
)

// Value is any runtime value the interpreter or JIT-generated code can
// hold. Implementations never mutate their own substructure: every
// operation that looks like mutation (struct field assignment, for
// instance) produces a new Value and replaces the holding slot instead.
type Value interface {
	Type() *types.Type
	String() string
}

// Int is a 64-bit machine integer.
type Int struct{ Value int64 }

func (i Int) Type() *types.Type { return types.IntType }
func (i Int) String() string    { return strconv.FormatInt(i.Value, 10) }

// Flt is a 64-bit IEEE-754 float, always displayed with a fractional part.
type Flt struct{ Value float64 }

func (f Flt) Type() *types.Type { return types.FltType }
func (f Flt) String() string {
	s := strconv.FormatFloat(f.Value, 'f', -1, 64)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return s
		}
	}
	return s + ".0"
}

// Bool is a boolean.
type Bool struct{ Value bool }

func (b Bool) Type() *types.Type { return types.BoolType }
func (b Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Str is a heap string. Contents are stored without the surrounding
// quotes; String() re-wraps them. The lexer token and ast.StrLiteral
// keep the source quotes, which the interpreter strips when it builds a
// Str (see DESIGN.md's note on the §9 open question).
type Str struct{ Value string }

func (s Str) Type() *types.Type { return types.StrType }
func (s Str) String() string    { return "'" + s.Value + "'" }

// Unit is the single-valued empty type.
type Unit struct{}

func (Unit) Type() *types.Type { return types.UnitType }
func (Unit) String() string    { return "" }

// Range is a half-open-at-use Int range `start..end`.
type Range struct {
	Start int64
	End   int64
}

func (r Range) Type() *types.Type { return types.RangeType }
func (r Range) String() string {
	return strconv.FormatInt(r.Start, 10) + ".." + strconv.FormatInt(r.End, 10)
}

// List is an ordered, homogeneous sequence. Elem is carried so that
// generic built-ins (first, reverse, ...) can report a precise element
// type without re-inspecting every element.
type List struct {
	Elements []Value
	Elem     *types.Type
}

func (l *List) Type() *types.Type { return types.NewList(l.Elem) }
func (l *List) String() string {
	var b []byte
	b = append(b, '[')
	for i, e := range l.Elements {
		if i > 0 {
			b = append(b, ',')
		}
		b = append(b, e.String()...)
	}
	b = append(b, ']')
	return string(b)
}

// Map is a key -> value associative container. Display and enumeration
// order is by key, computed on demand rather than maintained on writes
// (see SortedKeys), so that a hash-map-backed implementation still
// satisfies the spec's "sorted by key" requirement at the boundary.
type Map struct {
	Entries map[Value]Value
	KeyType *types.Type
	ValType *types.Type
}

func NewMap(key, val *types.Type) *Map {
	return &Map{Entries: make(map[Value]Value), KeyType: key, ValType: val}
}

func (m *Map) Type() *types.Type { return types.NewMap(m.KeyType, m.ValType) }

func (m *Map) String() string {
	keys := SortedKeys(m)
	var b []byte
	b = append(b, '{')
	for i, k := range keys {
		if i > 0 {
			b = append(b, ',')
		}
		b = append(b, k.String()...)
		b = append(b, ':')
		b = append(b, m.Entries[k].String()...)
	}
	b = append(b, '}')
	return string(b)
}

// Struct is a named record of field values. Mutation is implemented by
// whole-value replacement: WithField returns a new *Struct, never
// touching the receiver, which is what gives aliases of a
// pre-mutation struct value semantics (see internal/interp's handling of
// FieldAssign).
type Struct struct {
	TypeName string
	Fields   map[string]Value
	// FieldOrder preserves declaration order for iteration that doesn't
	// need the sorted-by-name order display uses.
	FieldOrder []string
}

func (s *Struct) Type() *types.Type {
	fields := make([]types.Field, 0, len(s.FieldOrder))
	for _, name := range s.FieldOrder {
		fields = append(fields, types.Field{Name: name, Type: s.Fields[name].Type()})
	}
	return types.NewStruct(s.TypeName, fields)
}

// WithField returns a new Struct identical to s except field name is
// bound to value. s itself is never modified.
func (s *Struct) WithField(name string, value Value) *Struct {
	fields := make(map[string]Value, len(s.Fields))
	for k, v := range s.Fields {
		fields[k] = v
	}
	fields[name] = value
	return &Struct{TypeName: s.TypeName, Fields: fields, FieldOrder: s.FieldOrder}
}

// String renders "Name {f1:v1,f2:v2}" with fields sorted by name, so
// output is deterministic regardless of the map's own iteration order.
func (s *Struct) String() string {
	names := make([]string, 0, len(s.Fields))
	for name := range s.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(s.TypeName)
	b.WriteString(" {")
	for i, name := range names {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(s.Fields[name].String())
	}
	b.WriteByte('}')
	return b.String()
}
