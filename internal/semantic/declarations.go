package semantic

import (
	"github.com/ccdavis/lift-lang/internal/ast"
	liftErrors "github.com/ccdavis/lift-lang/internal/errors"
	"github.com/ccdavis/lift-lang/internal/symtable"
	"github.com/ccdavis/lift-lang/internal/types"
)

func (a *Analyzer) analyzeLetBinding(scope *symtable.Scope, n *ast.LetBinding) (ast.Expression, *types.Type) {
	value, valueTy := a.analyzeExpr(scope, n.Value)
	n.Value = value

	declared := valueTy
	if n.DeclaredType != nil {
		declared = a.resolveTypeExprShallow(n.DeclaredType)
		if !a.assignable(a.underlying(scope, valueTy), a.underlying(scope, declared)) {
			a.fail(liftErrors.KindType, n.Pos(), "cannot assign %s to '%s' declared as %s", valueTy, n.Name, declared)
		}
	}

	idx, err := a.Table.AddSymbol(scope, n.Name, symtable.KindLet, n, declared, n.Mutable)
	if err != nil {
		a.fail(liftErrors.KindName, n.Pos(), "%s", err)
	}
	n.SetRef(scope.ID(), idx)
	n.SetType(types.UnitType)
	return n, types.UnitType
}

func (a *Analyzer) analyzeAssign(scope *symtable.Scope, n *ast.Assign) (ast.Expression, *types.Type) {
	ref, ok := a.Table.FindReachable(scope, n.Name)
	if !ok {
		a.fail(liftErrors.KindName, n.Pos(), "undeclared name '%s'", n.Name)
	}
	entry := a.Table.Entry(ref)
	if !entry.Mutable {
		a.fail(liftErrors.KindType, n.Pos(), "cannot assign to immutable variable '%s'", n.Name)
	}

	value, valueTy := a.analyzeExpr(scope, n.Value)
	n.Value = value

	declared := a.Table.GetStaticType(ref)
	if !a.assignable(a.underlying(scope, valueTy), a.underlying(scope, declared)) {
		a.fail(liftErrors.KindType, n.Pos(), "cannot assign %s to '%s' of type %s", valueTy, n.Name, declared)
	}
	n.SetRef(ref.ScopeID, ref.Index)
	n.SetType(types.UnitType)
	return n, types.UnitType
}

func (a *Analyzer) analyzeFieldAssign(scope *symtable.Scope, n *ast.FieldAssign) (ast.Expression, *types.Type) {
	receiver, recvTy := a.analyzeExpr(scope, n.Receiver)
	n.Receiver = receiver

	id, ok := receiver.(*ast.Identifier)
	if !ok {
		a.fail(liftErrors.KindType, n.Pos(), "field assignment target must be a variable")
	}
	ref := symtable.Ref{ScopeID: id.ScopeID, Index: id.Index}
	entry := a.Table.Entry(ref)
	if entry == nil || !entry.Mutable {
		a.fail(liftErrors.KindType, n.Pos(), "cannot assign to a field of immutable variable '%s'", id.Value)
	}

	structTy := a.underlying(scope, recvTy)
	if structTy.Kind != types.Struct {
		a.fail(liftErrors.KindType, n.Pos(), "'%s' is not a struct", id.Value)
	}
	field, ok := structTy.Field(n.Field)
	if !ok {
		a.fail(liftErrors.KindType, n.Pos(), "struct %s has no field '%s'", structTy.Name, n.Field)
	}

	value, valueTy := a.analyzeExpr(scope, n.Value)
	n.Value = value
	if !a.assignable(a.underlying(scope, valueTy), a.underlying(scope, field.Type)) {
		a.fail(liftErrors.KindType, n.Pos(), "cannot assign %s to field '%s' of type %s", valueTy, n.Field, field.Type)
	}
	n.SetType(types.UnitType)
	return n, types.UnitType
}

func (a *Analyzer) analyzeFunctionDef(scope *symtable.Scope, n *ast.FunctionDef) (ast.Expression, *types.Type) {
	var ref symtable.Ref
	var ok bool
	if n.IsMethod() {
		ref, ok = a.Table.LookupMethod(scope, n.Receiver, n.Name)
	} else {
		ref, ok = a.Table.FindReachable(scope, n.Name)
	}
	if !ok {
		// Not pre-declared (e.g. a lambda-like nested function form);
		// declare it now so recursive calls within its own body resolve.
		a.declareFunctionSignature(scope, n)
		if n.IsMethod() {
			ref, _ = a.Table.LookupMethod(scope, n.Receiver, n.Name)
		} else {
			ref, _ = a.Table.FindReachable(scope, n.Name)
		}
	}
	retTy := a.Table.GetStaticType(ref)

	bodyScope := a.Table.CreateScope(scope)
	n.ParamScopeID = bodyScope.ID()
	if n.IsMethod() {
		a.Table.AddSymbol(bodyScope, "self", symtable.KindParam, nil, types.NewTypeRef(n.Receiver), false)
	}
	for _, param := range n.Params {
		paramTy := a.resolveTypeExprShallow(param.Type)
		a.Table.AddSymbol(bodyScope, param.Name, symtable.KindParam, nil, paramTy, param.Copy)
	}

	_, bodyTy := a.analyzeExpr(bodyScope, n.Body)
	if !a.assignable(a.underlying(bodyScope, bodyTy), a.underlying(bodyScope, retTy)) {
		a.fail(liftErrors.KindType, n.Pos(), "function '%s' declared to return %s but body evaluates to %s", n.Name, retTy, bodyTy)
	}

	n.SetRef(ref.ScopeID, ref.Index)
	n.SetType(types.UnitType)
	return n, types.UnitType
}

func (a *Analyzer) analyzeLambda(scope *symtable.Scope, n *ast.Lambda) (ast.Expression, *types.Type) {
	bodyScope := a.Table.CreateScope(scope)
	n.ParamScopeID = bodyScope.ID()
	for _, param := range n.Params {
		paramTy := a.resolveTypeExprShallow(param.Type)
		a.Table.AddSymbol(bodyScope, param.Name, symtable.KindParam, nil, paramTy, param.Copy)
	}
	retTy := a.resolveTypeExprShallow(n.ReturnTy)
	_, bodyTy := a.analyzeExpr(bodyScope, n.Body)
	if !a.assignable(a.underlying(bodyScope, bodyTy), a.underlying(bodyScope, retTy)) {
		a.fail(liftErrors.KindType, n.Pos(), "lambda declared to return %s but body evaluates to %s", retTy, bodyTy)
	}
	n.SetType(retTy)
	return n, retTy
}

func (a *Analyzer) analyzeTypeDef(scope *symtable.Scope, n *ast.TypeDef) (ast.Expression, *types.Type) {
	if _, ok := a.Table.FindReachable(scope, n.Name); !ok {
		a.declareType(scope, n)
	}
	n.SetType(types.UnitType)
	return n, types.UnitType
}

func (a *Analyzer) analyzeOutput(scope *symtable.Scope, n *ast.Output) (ast.Expression, *types.Type) {
	for i, arg := range n.Args {
		analyzed, _ := a.analyzeExpr(scope, arg)
		n.Args[i] = analyzed
	}
	n.SetType(types.UnitType)
	return n, types.UnitType
}
