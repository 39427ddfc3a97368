// Package semantic implements Lift's analyzer: symbol insertion, type
// checking, and annotation, combined into one traversal where the
// grammar's own ordering lets it (per the design's "three conceptual
// passes, implemented as one traversal where order permits"). A
// pre-declaration sweep over each block's top-level function and type
// definitions stands in for a dedicated late-resolution pass: by the time
// a function body is analyzed, every sibling function and type defined
// in the same block is already in scope, which is what makes mutually
// recursive functions resolve without a third tree walk.
package semantic

import (
	"fmt"

	"github.com/ccdavis/lift-lang/internal/ast"
	liftErrors "github.com/ccdavis/lift-lang/internal/errors"
	"github.com/ccdavis/lift-lang/internal/lexer"
	"github.com/ccdavis/lift-lang/internal/symtable"
	"github.com/ccdavis/lift-lang/internal/types"
)

// Analyzer holds the shared, read-mostly symbol table and the source
// text needed to format diagnostics.
type Analyzer struct {
	Table  *symtable.Table
	Source string
	File   string
}

// New creates an Analyzer over a fresh symbol table.
func New(source, file string) *Analyzer {
	return &Analyzer{Table: symtable.New(), Source: source, File: file}
}

// abort is raised internally to unwind to the enclosing top-level
// expression on the first error, per §7: "Name and type errors abort the
// enclosing top-level expression."
type abort struct{ err *liftErrors.LiftError }

func (a *Analyzer) fail(kind liftErrors.Kind, pos lexer.Position, format string, args ...interface{}) {
	panic(abort{liftErrors.New(kind, pos, fmt.Sprintf(format, args...), a.Source, a.File)})
}

// Analyze walks every top-level expression. Each one is analyzed under a
// symbol-table checkpoint; an error rolls that expression's declarations
// back so a failed analysis never pollutes bindings made by earlier,
// successful ones (required for the REPL case, harmless for a whole-file
// run).
func (a *Analyzer) Analyze(prog *ast.Program) (*ast.Program, []*liftErrors.LiftError) {
	var errs []*liftErrors.LiftError
	root := a.Table.Root()

	a.predeclare(root, prog.Expressions)

	for i, expr := range prog.Expressions {
		cp := a.Table.Mark()
		result, err := a.analyzeTopLevel(root, expr)
		if err != nil {
			a.Table.Rollback(cp)
			errs = append(errs, err)
			continue
		}
		prog.Expressions[i] = result
	}
	return prog, errs
}

func (a *Analyzer) analyzeTopLevel(scope *symtable.Scope, expr ast.Expression) (result ast.Expression, err *liftErrors.LiftError) {
	defer func() {
		if r := recover(); r != nil {
			if ab, ok := r.(abort); ok {
				err = ab.err
				return
			}
			panic(r)
		}
	}()
	result, _ = a.analyzeExpr(scope, expr)
	return result, nil
}

// predeclare registers every function and type definition in exprs into
// scope before any body is analyzed, so forward and mutually recursive
// references resolve. It does not descend into nested blocks: each block
// predeclares its own contents when it is analyzed.
func (a *Analyzer) predeclare(scope *symtable.Scope, exprs []ast.Expression) {
	for _, e := range exprs {
		switch n := e.(type) {
		case *ast.TypeDef:
			a.declareType(scope, n)
		}
	}
	for _, e := range exprs {
		switch n := e.(type) {
		case *ast.FunctionDef:
			a.declareFunctionSignature(scope, n)
		}
	}
}

func (a *Analyzer) declareType(scope *symtable.Scope, def *ast.TypeDef) {
	resolved := a.resolveTypeExprShallow(def.Expr)
	if resolved.Kind == types.Struct || resolved.Kind == types.Enum {
		resolved.Name = def.Name
	}
	if _, err := a.Table.AddSymbol(scope, def.Name, symtable.KindType, def, resolved, false); err != nil {
		a.fail(liftErrors.KindName, def.Pos(), "%s", err)
	}
}

func (a *Analyzer) declareFunctionSignature(scope *symtable.Scope, def *ast.FunctionDef) {
	sig := a.functionType(scope, def)
	var err error
	if def.IsMethod() {
		_, err = a.Table.DefineMethod(scope, def.Receiver, def.Name, def, sig)
	} else {
		_, err = a.Table.AddSymbol(scope, def.Name, symtable.KindFunction, def, sig, false)
	}
	if err != nil {
		a.fail(liftErrors.KindName, def.Pos(), "%s", err)
	}
}

// functionType returns a function's resolved return type, which is what
// its symbol entry records as its static type; parameter checking re-derives argument types
// from def.Params directly at each call site rather than from this type,
// since Lift has no first-class function type syntax to render it in.
func (a *Analyzer) functionType(scope *symtable.Scope, def *ast.FunctionDef) *types.Type {
	return a.resolveTypeExprShallow(def.ReturnTy)
}

// resolveTypeExprShallow resolves a type expression to a types.Type
// without following TypeRef aliases - named references become
// types.NewTypeRef(name) and are resolved lazily by underlying().
func (a *Analyzer) resolveTypeExprShallow(t *ast.TypeExpr) *types.Type {
	if t == nil {
		return &types.Type{Kind: types.Unsolved}
	}
	switch {
	case t.Elem != nil:
		return types.NewList(a.resolveTypeExprShallow(t.Elem))
	case t.Key != nil:
		return types.NewMap(a.resolveTypeExprShallow(t.Key), a.resolveTypeExprShallow(t.Value))
	case t.HasRangeBounds:
		return types.RangeType
	case len(t.Fields) > 0:
		fields := make([]types.Field, 0, len(t.Fields))
		for _, f := range t.Fields {
			fields = append(fields, types.Field{Name: f.Name, Type: a.resolveTypeExprShallow(f.Type)})
		}
		return types.NewStruct("", fields)
	case len(t.Variants) > 0:
		return types.NewEnum("", t.Variants)
	default:
		switch t.Name {
		case "Int":
			return types.IntType
		case "Flt":
			return types.FltType
		case "Str":
			return types.StrType
		case "Bool":
			return types.BoolType
		case "Unit":
			return types.UnitType
		case "Range":
			return types.RangeType
		default:
			return types.NewTypeRef(t.Name)
		}
	}
}

// underlying follows a TypeRef to its non-TypeRef shape via the symbol
// table, starting lookup from scope (aliases may be block-local).
func (a *Analyzer) underlying(scope *symtable.Scope, t *types.Type) *types.Type {
	for t != nil && t.Kind == types.TypeRef {
		resolved, ok := a.Table.ResolveTypeAlias(scope, t.Name)
		if !ok {
			return t
		}
		t = resolved
	}
	return t
}

// assignable reports whether a value of type from may be used where decl
// is expected, applying Int->Flt promotion.
func (a *Analyzer) assignable(from, decl *types.Type) bool {
	if decl.Equals(from) {
		return true
	}
	if decl.Kind == types.Flt && from.Kind == types.Int {
		return true
	}
	return false
}

// unifyNumeric returns the promoted type of a binary arithmetic/comparison
// operation between two numeric operands, or nil if they don't unify.
func unifyNumeric(l, r *types.Type) *types.Type {
	switch {
	case l.Kind == types.Int && r.Kind == types.Int:
		return types.IntType
	case l.Kind == types.Flt && r.Kind == types.Flt:
		return types.FltType
	case l.Kind == types.Int && r.Kind == types.Flt, l.Kind == types.Flt && r.Kind == types.Int:
		return types.FltType
	default:
		return nil
	}
}
