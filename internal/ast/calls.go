package ast

import (
	"strings"

	"github.com/ccdavis/lift-lang/internal/lexer"
)

// Arg is one keyword argument at a call site: `name: expr`. Order at the
// call site is source order, not necessarily parameter order - binding
// is by name.
type Arg struct {
	Name  string
	Value Expression
}

func (a Arg) String() string { return a.Name + ": " + a.Value.String() }

// Call is a function call or a struct-literal call before the analyzer
// promotes it (see StructLiteral). Callee is the function name.
type Call struct {
	Token  lexer.Token // '('
	Callee string
	Args   []Arg
	Annotation
}

func (c *Call) expressionNode()      {}
func (c *Call) TokenLiteral() string { return c.Token.Literal }
func (c *Call) Pos() lexer.Position  { return c.Token.Pos }
func (c *Call) String() string {
	parts := make([]string, 0, len(c.Args))
	for _, a := range c.Args {
		parts = append(parts, a.String())
	}
	return c.Callee + "(" + strings.Join(parts, ", ") + ")"
}

// MethodCall is `receiver.name(args)`. UFCS form `name(self: receiver,
// ...)` is rewritten to this shape by the analyzer so the interpreter
// only ever sees one representation.
type MethodCall struct {
	Token    lexer.Token // '.'
	Receiver Expression
	Method   string
	Args     []Arg

	// IsBuiltin and Builtin are set by the analyzer when Method resolves
	// to a registered built-in rather than a user-defined method.
	IsBuiltin bool
	Builtin   BuiltinMethod
	Annotation
}

func (m *MethodCall) expressionNode()      {}
func (m *MethodCall) TokenLiteral() string { return m.Token.Literal }
func (m *MethodCall) Pos() lexer.Position  { return m.Token.Pos }
func (m *MethodCall) String() string {
	parts := make([]string, 0, len(m.Args))
	for _, a := range m.Args {
		parts = append(parts, a.String())
	}
	return m.Receiver.String() + "." + m.Method + "(" + strings.Join(parts, ", ") + ")"
}

// BuiltinMethod is the closed enum of built-in methods. The analyzer
// tags a MethodCall with the matching variant so both the interpreter and
// the JIT backend dispatch by integer tag instead of string-matching the
// method name at run time.
type BuiltinMethod int

const (
	NotBuiltin BuiltinMethod = iota

	StrUpper
	StrLower
	StrSubstring
	StrContains
	StrTrim
	StrSplit
	StrReplace
	StrStartsWith
	StrEndsWith
	StrIsEmpty

	ListFirst
	ListLast
	ListContains
	ListSlice
	ListReverse
	ListJoin
	ListIsEmpty

	MapKeys
	MapValues
	MapContainsKey
	MapIsEmpty
)
