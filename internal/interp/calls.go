package interp

import (
	"github.com/ccdavis/lift-lang/internal/ast"
	"github.com/ccdavis/lift-lang/internal/runtime"
	"github.com/ccdavis/lift-lang/internal/symtable"
)

func (ip *Interp) evalCall(n *ast.Call) runtime.Value {
	if n.Callee == "len" {
		return ip.evalLen(n)
	}
	ref := symtable.Ref{ScopeID: n.ScopeID, Index: n.Index}
	def := ip.Table.Entry(ref).Decl.(*ast.FunctionDef)
	return ip.callFunction(def, n.Args, nil)
}

func (ip *Interp) evalLen(n *ast.Call) runtime.Value {
	v := ip.eval(n.Args[0].Value)
	switch x := v.(type) {
	case runtime.Str:
		return runtime.Int{Value: int64(len(x.Value))}
	case *runtime.List:
		return runtime.Int{Value: int64(len(x.Elements))}
	case *runtime.Map:
		return runtime.Int{Value: int64(len(x.Entries))}
	default:
		ip.fail(n.Pos(), "internal error: 'len' on a value with no length")
		return nil
	}
}

// callFunction evaluates args in the caller's current bindings, snapshots
// every entry's runtime value, binds the callee's parameters (and self,
// for a method) in its param scope, evaluates its body, and restores the
// snapshot - undoing whatever the call (and anything it recursively
// called) wrote, so the caller's own bindings are exactly as it left them.
func (ip *Interp) callFunction(def *ast.FunctionDef, args []ast.Arg, selfVal runtime.Value) runtime.Value {
	argVals := make(map[string]runtime.Value, len(args))
	for _, a := range args {
		argVals[a.Name] = ip.eval(a.Value)
	}

	snap := ip.Table.SnapshotValues()
	defer ip.Table.RestoreValues(snap)

	paramScope := ip.Table.ScopeByID(def.ParamScopeID)
	if def.IsMethod() {
		if ref, ok := ip.Table.FindReachable(paramScope, "self"); ok {
			ip.Table.UpdateRuntimeValue(ref, selfVal)
		}
	}
	for _, p := range def.Params {
		if ref, ok := ip.Table.FindReachable(paramScope, p.Name); ok {
			ip.Table.UpdateRuntimeValue(ref, argVals[p.Name])
		}
	}
	return ip.eval(def.Body)
}

func (ip *Interp) evalMethodCall(n *ast.MethodCall) runtime.Value {
	recv := ip.eval(n.Receiver)
	if n.IsBuiltin {
		return ip.evalBuiltinMethod(n, recv)
	}
	ref := symtable.Ref{ScopeID: n.ScopeID, Index: n.Index}
	def := ip.Table.Entry(ref).Decl.(*ast.FunctionDef)
	return ip.callFunction(def, n.Args, recv)
}

func argValue(ip *Interp, args []ast.Arg, name string) runtime.Value {
	for _, a := range args {
		if a.Name == name {
			return ip.eval(a.Value)
		}
	}
	return nil
}

// evalBuiltinMethod dispatches by the integer tag the analyzer attached,
// never by re-matching the method name, and calls straight into
// internal/runtime's pure implementations.
func (ip *Interp) evalBuiltinMethod(n *ast.MethodCall, recv runtime.Value) runtime.Value {
	switch n.Builtin {
	case ast.StrUpper:
		return runtime.StrUpper(recv.(runtime.Str))
	case ast.StrLower:
		return runtime.StrLower(recv.(runtime.Str))
	case ast.StrSubstring:
		start := argValue(ip, n.Args, "start").(runtime.Int).Value
		end := argValue(ip, n.Args, "end").(runtime.Int).Value
		v, err := runtime.StrSubstring(recv.(runtime.Str), start, end)
		if err != nil {
			ip.fail(n.Pos(), "%s", err)
		}
		return v
	case ast.StrContains:
		return runtime.StrContains(recv.(runtime.Str), argValue(ip, n.Args, "substring").(runtime.Str))
	case ast.StrTrim:
		return runtime.StrTrim(recv.(runtime.Str))
	case ast.StrSplit:
		return runtime.StrSplit(recv.(runtime.Str), argValue(ip, n.Args, "delimiter").(runtime.Str))
	case ast.StrReplace:
		return runtime.StrReplace(recv.(runtime.Str), argValue(ip, n.Args, "old").(runtime.Str), argValue(ip, n.Args, "new").(runtime.Str))
	case ast.StrStartsWith:
		return runtime.StrStartsWith(recv.(runtime.Str), argValue(ip, n.Args, "prefix").(runtime.Str))
	case ast.StrEndsWith:
		return runtime.StrEndsWith(recv.(runtime.Str), argValue(ip, n.Args, "suffix").(runtime.Str))
	case ast.StrIsEmpty:
		return runtime.StrIsEmpty(recv.(runtime.Str))

	case ast.ListFirst:
		v, err := runtime.ListFirst(recv.(*runtime.List))
		if err != nil {
			ip.fail(n.Pos(), "%s", err)
		}
		return v
	case ast.ListLast:
		v, err := runtime.ListLast(recv.(*runtime.List))
		if err != nil {
			ip.fail(n.Pos(), "%s", err)
		}
		return v
	case ast.ListContains:
		return runtime.ListContains(recv.(*runtime.List), argValue(ip, n.Args, "item"))
	case ast.ListSlice:
		start := argValue(ip, n.Args, "start").(runtime.Int).Value
		end := argValue(ip, n.Args, "end").(runtime.Int).Value
		v, err := runtime.ListSlice(recv.(*runtime.List), start, end)
		if err != nil {
			ip.fail(n.Pos(), "%s", err)
		}
		return v
	case ast.ListReverse:
		return runtime.ListReverse(recv.(*runtime.List))
	case ast.ListJoin:
		return runtime.ListJoin(recv.(*runtime.List), argValue(ip, n.Args, "separator").(runtime.Str))
	case ast.ListIsEmpty:
		return runtime.ListIsEmpty(recv.(*runtime.List))

	case ast.MapKeys:
		return runtime.MapKeys(recv.(*runtime.Map))
	case ast.MapValues:
		return runtime.MapValues(recv.(*runtime.Map))
	case ast.MapContainsKey:
		return runtime.MapContainsKey(recv.(*runtime.Map), argValue(ip, n.Args, "key"))
	case ast.MapIsEmpty:
		return runtime.MapIsEmpty(recv.(*runtime.Map))

	default:
		ip.fail(n.Pos(), "internal error: unhandled builtin method %d", n.Builtin)
		return nil
	}
}

func (ip *Interp) evalStructLiteral(n *ast.StructLiteral) runtime.Value {
	fields := make(map[string]runtime.Value, len(n.Fields))
	order := make([]string, len(n.Fields))
	for i, f := range n.Fields {
		fields[f.Name] = ip.eval(f.Value)
		order[i] = f.Name
	}
	return &runtime.Struct{TypeName: n.TypeName, Fields: fields, FieldOrder: order}
}

func (ip *Interp) evalFieldAccess(n *ast.FieldAccess) runtime.Value {
	recv := ip.eval(n.Receiver).(*runtime.Struct)
	v, ok := recv.Fields[n.Field]
	if !ok {
		ip.fail(n.Pos(), "struct %s has no field '%s'", recv.TypeName, n.Field)
	}
	return v
}
