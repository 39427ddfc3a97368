package semantic

import (
	"github.com/ccdavis/lift-lang/internal/ast"
	liftErrors "github.com/ccdavis/lift-lang/internal/errors"
	"github.com/ccdavis/lift-lang/internal/lexer"
	"github.com/ccdavis/lift-lang/internal/symtable"
	"github.com/ccdavis/lift-lang/internal/types"
)

// analyzeCall handles every syntactic call `name(args)`: the parser emits
// this same node for a struct literal, a plain function call, and the
// UFCS form `method(self: recv, ...)` - this is where the three are told
// apart. A struct literal becomes a StructLiteral and the UFCS form a
// MethodCall; a plain function call stays a Call.
func (a *Analyzer) analyzeCall(scope *symtable.Scope, n *ast.Call) (ast.Expression, *types.Type) {
	if ref, ok := a.Table.FindReachable(scope, n.Callee); ok {
		entry := a.Table.Entry(ref)
		switch {
		case entry.Kind == symtable.KindType && a.underlying(scope, entry.StaticType).Kind == types.Struct:
			lit := &ast.StructLiteral{Token: n.Token, TypeName: n.Callee, Fields: n.Args, Annotation: n.Annotation}
			return a.analyzeStructLiteral(scope, lit)
		case entry.Kind == symtable.KindBuiltinFunc && n.Callee == "len":
			return a.analyzeLenCall(scope, n)
		case entry.Kind == symtable.KindFunction:
			return a.analyzeFunctionCall(scope, n, ref, entry)
		}
	}

	if len(n.Args) > 0 && n.Args[0].Name == "self" {
		mc := &ast.MethodCall{Token: n.Token, Receiver: n.Args[0].Value, Method: n.Callee, Args: n.Args[1:], Annotation: n.Annotation}
		return a.analyzeMethodCall(scope, mc)
	}

	a.fail(liftErrors.KindName, n.Pos(), "undeclared function '%s'", n.Callee)
	return nil, nil
}

func (a *Analyzer) analyzeLenCall(scope *symtable.Scope, n *ast.Call) (ast.Expression, *types.Type) {
	if len(n.Args) != 1 {
		a.fail(liftErrors.KindType, n.Pos(), "'len' takes exactly one argument")
	}
	value, vt := a.analyzeExpr(scope, n.Args[0].Value)
	n.Args[0].Value = value
	switch a.underlying(scope, vt).Kind {
	case types.Str, types.List, types.Map, types.Set:
	default:
		a.fail(liftErrors.KindType, n.Pos(), "'len' is not defined for %s", vt)
	}
	n.SetType(types.IntType)
	return n, types.IntType
}

func (a *Analyzer) analyzeFunctionCall(scope *symtable.Scope, n *ast.Call, ref symtable.Ref, entry *symtable.Entry) (ast.Expression, *types.Type) {
	def, ok := entry.Decl.(*ast.FunctionDef)
	if !ok {
		a.fail(liftErrors.KindType, n.Pos(), "'%s' is not callable", n.Callee)
	}
	a.checkArgs(scope, n.Pos(), n.Args, def.Params, n.Callee)
	n.SetRef(ref.ScopeID, ref.Index)
	retTy := entry.StaticType
	n.SetType(retTy)
	return n, retTy
}

// checkArgs validates that args is an exact, by-name match for params,
// analyzing each argument's value expression and checking assignability
// in place.
func (a *Analyzer) checkArgs(scope *symtable.Scope, pos lexer.Position, args []ast.Arg, params []ast.Param, name string) {
	if len(args) != len(params) {
		a.fail(liftErrors.KindType, pos, "'%s' expects %d argument(s), got %d", name, len(params), len(args))
	}
	byName := make(map[string]*ast.TypeExpr, len(params))
	for _, p := range params {
		byName[p.Name] = p.Type
	}
	seen := make(map[string]bool, len(args))
	for i := range args {
		pt, ok := byName[args[i].Name]
		if !ok {
			a.fail(liftErrors.KindType, pos, "'%s' has no parameter named '%s'", name, args[i].Name)
		}
		if seen[args[i].Name] {
			a.fail(liftErrors.KindType, pos, "argument '%s' specified more than once", args[i].Name)
		}
		seen[args[i].Name] = true

		value, vt := a.analyzeExpr(scope, args[i].Value)
		args[i].Value = value
		declared := a.resolveTypeExprShallow(pt)
		if !a.assignable(a.underlying(scope, vt), a.underlying(scope, declared)) {
			a.fail(liftErrors.KindType, pos, "argument '%s' to '%s': cannot use %s as %s", args[i].Name, name, vt, declared)
		}
	}
}

// resolveMethod implements the method resolution order: a TypeRef's own
// method namespace first, then the namespace of the type the alias chain
// finally resolves to: a built-in shape (Str, List, Map) or a struct's
// own name. Intermediate aliases in a longer chain are not searched.
func (a *Analyzer) resolveMethod(scope *symtable.Scope, recvTy *types.Type, method string) (symtable.Ref, bool) {
	if recvTy.Kind == types.TypeRef {
		if ref, ok := a.Table.LookupMethod(scope, recvTy.Name, method); ok {
			return ref, true
		}
		underlying, ok := a.Table.ResolveTypeAlias(scope, recvTy.Name)
		if !ok {
			return symtable.Ref{}, false
		}
		return a.resolveMethod(scope, underlying, method)
	}
	name := builtinTypeName(recvTy)
	if name == "" {
		return symtable.Ref{}, false
	}
	return a.Table.LookupMethod(scope, name, method)
}

func (a *Analyzer) analyzeMethodCall(scope *symtable.Scope, n *ast.MethodCall) (ast.Expression, *types.Type) {
	receiver, recvTy := a.analyzeExpr(scope, n.Receiver)
	n.Receiver = receiver

	ref, ok := a.resolveMethod(scope, recvTy, n.Method)
	if !ok {
		a.fail(liftErrors.KindName, n.Pos(), "%s has no method '%s'", recvTy, n.Method)
	}
	entry := a.Table.Entry(ref)
	n.SetRef(ref.ScopeID, ref.Index)

	if entry.Kind == symtable.KindBuiltinMethod {
		sig, known := builtinSigs[entry.Builtin]
		if !known {
			a.fail(liftErrors.KindType, n.Pos(), "internal error: unregistered builtin method '%s'", n.Method)
		}
		if len(n.Args) != len(sig.argNames) {
			a.fail(liftErrors.KindType, n.Pos(), "'%s' expects %d argument(s), got %d", n.Method, len(sig.argNames), len(n.Args))
		}
		expected := make(map[string]bool, len(sig.argNames))
		for _, name := range sig.argNames {
			expected[name] = true
		}
		for i := range n.Args {
			if !expected[n.Args[i].Name] {
				a.fail(liftErrors.KindType, n.Pos(), "'%s' has no parameter named '%s'", n.Method, n.Args[i].Name)
			}
			value, _ := a.analyzeExpr(scope, n.Args[i].Value)
			n.Args[i].Value = value
		}
		n.IsBuiltin = true
		n.Builtin = entry.Builtin
		underlyingRecv := a.underlying(scope, recvTy)
		if n.Builtin == ast.ListJoin {
			elem := a.underlying(scope, underlyingRecv.Elem)
			if elem == nil || elem.Kind != types.Str {
				a.fail(liftErrors.KindType, n.Pos(), "'join' requires a List of Str receiver, got %s", recvTy)
			}
		}
		retTy := sig.ret(underlyingRecv)
		n.SetType(retTy)
		return n, retTy
	}

	def, ok := entry.Decl.(*ast.FunctionDef)
	if !ok {
		a.fail(liftErrors.KindType, n.Pos(), "'%s' is not a method", n.Method)
	}
	a.checkArgs(scope, n.Pos(), n.Args, def.Params, n.Method)
	retTy := entry.StaticType
	n.SetType(retTy)
	return n, retTy
}

func (a *Analyzer) analyzeStructLiteral(scope *symtable.Scope, n *ast.StructLiteral) (ast.Expression, *types.Type) {
	ref, ok := a.Table.FindReachable(scope, n.TypeName)
	if !ok {
		a.fail(liftErrors.KindName, n.Pos(), "undeclared type '%s'", n.TypeName)
	}
	entry := a.Table.Entry(ref)
	structTy := a.underlying(scope, entry.StaticType)
	if structTy.Kind != types.Struct {
		a.fail(liftErrors.KindType, n.Pos(), "'%s' is not a struct type", n.TypeName)
	}
	if len(n.Fields) != len(structTy.Fields) {
		a.fail(liftErrors.KindType, n.Pos(), "struct %s has %d field(s), got %d", n.TypeName, len(structTy.Fields), len(n.Fields))
	}

	seen := make(map[string]bool, len(n.Fields))
	for i, f := range n.Fields {
		field, ok := structTy.Field(f.Name)
		if !ok {
			a.fail(liftErrors.KindType, n.Pos(), "struct %s has no field '%s'", n.TypeName, f.Name)
		}
		if seen[f.Name] {
			a.fail(liftErrors.KindType, n.Pos(), "field '%s' specified more than once", f.Name)
		}
		seen[f.Name] = true

		value, vt := a.analyzeExpr(scope, f.Value)
		n.Fields[i].Value = value
		if !a.assignable(a.underlying(scope, vt), a.underlying(scope, field.Type)) {
			a.fail(liftErrors.KindType, n.Pos(), "field '%s': cannot use %s as %s", f.Name, vt, field.Type)
		}
	}

	n.SetType(entry.StaticType)
	return n, entry.StaticType
}

func (a *Analyzer) analyzeFieldAccess(scope *symtable.Scope, n *ast.FieldAccess) (ast.Expression, *types.Type) {
	receiver, recvTy := a.analyzeExpr(scope, n.Receiver)
	n.Receiver = receiver

	structTy := a.underlying(scope, recvTy)
	if structTy.Kind != types.Struct {
		a.fail(liftErrors.KindType, n.Pos(), "'%s' is not a struct", recvTy)
	}
	field, ok := structTy.Field(n.Field)
	if !ok {
		a.fail(liftErrors.KindName, n.Pos(), "struct %s has no field '%s'", structTy.Name, n.Field)
	}
	n.SetType(field.Type)
	return n, field.Type
}
