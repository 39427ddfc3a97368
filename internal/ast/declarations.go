package ast

import (
	"strings"

	"github.com/ccdavis/lift-lang/internal/lexer"
)

// LetBinding is `let name [: T] = expr` or, with Mutable set, `let var
// name [: T] = expr`. A binding without Mutable may never be the target
// of `:=` or field assignment; the analyzer enforces this statically.
type LetBinding struct {
	Token        lexer.Token // 'let'
	Name         string
	Mutable      bool
	DeclaredType *TypeExpr // nil when inferred from Value
	Value        Expression
	Annotation
}

func (l *LetBinding) expressionNode()      {}
func (l *LetBinding) TokenLiteral() string { return l.Token.Literal }
func (l *LetBinding) Pos() lexer.Position  { return l.Token.Pos }
func (l *LetBinding) String() string {
	kw := "let "
	if l.Mutable {
		kw += "var "
	}
	return kw + l.Name + " = " + l.Value.String()
}

// Assign is `name := expr`. Valid only when name resolves to a mutable
// binding.
type Assign struct {
	Token lexer.Token // ':='
	Name  string
	Value Expression
	Annotation
}

func (a *Assign) expressionNode()      {}
func (a *Assign) TokenLiteral() string { return a.Token.Literal }
func (a *Assign) Pos() lexer.Position  { return a.Token.Pos }
func (a *Assign) String() string       { return a.Name + " := " + a.Value.String() }

// Param is one function parameter. Copy marks a `cpy name: T` parameter:
// pass-by-value, but locally mutable, unlike a plain parameter which is
// pass-by-value and locally immutable.
type Param struct {
	Name string
	Type *TypeExpr
	Copy bool
}

func (p Param) String() string {
	if p.Copy {
		return "cpy " + p.Name + ": " + p.Type.String()
	}
	return p.Name + ": " + p.Type.String()
}

// FunctionDef is `function name(params): RET { body }` (or `= expr`).
// Receiver is non-empty for a method definition `function Type.method(...)`.
type FunctionDef struct {
	Token    lexer.Token // 'function'
	Receiver string      // "" for a free function
	Name     string
	Params   []Param
	ReturnTy *TypeExpr
	Body     *Block

	// ParamScopeID is the scope holding this function's parameter (and,
	// for a method, `self`) bindings, set by the analyzer. The
	// interpreter resolves argument slots there at every call.
	ParamScopeID int
	Annotation
}

func (f *FunctionDef) expressionNode()      {}
func (f *FunctionDef) TokenLiteral() string { return f.Token.Literal }
func (f *FunctionDef) Pos() lexer.Position  { return f.Token.Pos }
func (f *FunctionDef) String() string {
	parts := make([]string, 0, len(f.Params))
	for _, p := range f.Params {
		parts = append(parts, p.String())
	}
	name := f.Name
	if f.Receiver != "" {
		name = f.Receiver + "." + f.Name
	}
	return "function " + name + "(" + strings.Join(parts, ", ") + "): " + f.ReturnTy.String() + " " + f.Body.String()
}

// IsMethod reports whether this definition has a receiver type.
func (f *FunctionDef) IsMethod() bool { return f.Receiver != "" }

// Lambda is an anonymous function value. The analyzer resolves names in
// its body through the enclosing scopes like any block's and does not
// restrict free variables to parameters; the interpreter evaluates a
// lambda to Unit and never runs its body.
type Lambda struct {
	Token    lexer.Token // 'function' or a dedicated lambda token
	Params   []Param
	ReturnTy *TypeExpr
	Body     *Block

	// ParamScopeID is the scope holding this lambda's parameter bindings.
	ParamScopeID int
	Annotation
}

func (l *Lambda) expressionNode()      {}
func (l *Lambda) TokenLiteral() string { return l.Token.Literal }
func (l *Lambda) Pos() lexer.Position  { return l.Token.Pos }
func (l *Lambda) String() string {
	parts := make([]string, 0, len(l.Params))
	for _, p := range l.Params {
		parts = append(parts, p.String())
	}
	return "lambda(" + strings.Join(parts, ", ") + "): " + l.ReturnTy.String() + " " + l.Body.String()
}

// TypeDef is `type T = ...`: an alias, a List/Map/Set of, a struct, an
// enum, or a range.
type TypeDef struct {
	Token lexer.Token // 'type'
	Name  string
	Expr  *TypeExpr
	Annotation
}

func (t *TypeDef) expressionNode()      {}
func (t *TypeDef) TokenLiteral() string { return t.Token.Literal }
func (t *TypeDef) Pos() lexer.Position  { return t.Token.Pos }
func (t *TypeDef) String() string       { return "type " + t.Name + " = " + t.Expr.String() }

// Output is the `output(a, b, c)` primitive.
type Output struct {
	Token lexer.Token // 'output'
	Args  []Expression
	Annotation
}

func (o *Output) expressionNode()      {}
func (o *Output) TokenLiteral() string { return o.Token.Literal }
func (o *Output) Pos() lexer.Position  { return o.Token.Pos }
func (o *Output) String() string {
	parts := make([]string, 0, len(o.Args))
	for _, a := range o.Args {
		parts = append(parts, a.String())
	}
	return "output(" + strings.Join(parts, ", ") + ")"
}
