package semantic

import (
	"github.com/ccdavis/lift-lang/internal/ast"
	liftErrors "github.com/ccdavis/lift-lang/internal/errors"
	"github.com/ccdavis/lift-lang/internal/symtable"
	"github.com/ccdavis/lift-lang/internal/types"
)

// analyzeListLiteral unifies every element's type. An empty list has no
// element to infer from and is always a type error, not Unsolved
// silently flowing onward; a surrounding `let` type annotation is not
// consulted, so an annotated empty list is rejected too.
func (a *Analyzer) analyzeListLiteral(scope *symtable.Scope, n *ast.ListLiteral) (ast.Expression, *types.Type) {
	if len(n.Elements) == 0 {
		a.fail(liftErrors.KindType, n.Pos(), "empty list literal requires a type annotation")
	}

	var elemTy *types.Type
	for i, e := range n.Elements {
		value, t := a.analyzeExpr(scope, e)
		n.Elements[i] = value
		ut := a.underlying(scope, t)
		if elemTy == nil {
			elemTy = t
			continue
		}
		uElem := a.underlying(scope, elemTy)
		if unified := unifyNumeric(uElem, ut); unified != nil {
			if unified.Kind == types.Flt {
				elemTy = types.FltType
			}
			continue
		}
		if !elemTy.Equals(t) {
			a.fail(liftErrors.KindType, n.Pos(), "list elements must share a type: %s and %s", elemTy, t)
		}
	}

	result := types.NewList(elemTy)
	n.SetType(result)
	return n, result
}

// analyzeMapLiteral unifies key and value types across entries. Map keys
// must be Int, Str, or Bool - never Flt (see types.Type.IsValidKey).
func (a *Analyzer) analyzeMapLiteral(scope *symtable.Scope, n *ast.MapLiteral) (ast.Expression, *types.Type) {
	if len(n.Entries) == 0 {
		a.fail(liftErrors.KindType, n.Pos(), "empty map literal requires a type annotation")
	}

	var keyTy, valTy *types.Type
	for i, entry := range n.Entries {
		k, kt := a.analyzeExpr(scope, entry.Key)
		v, vt := a.analyzeExpr(scope, entry.Value)
		n.Entries[i].Key = k
		n.Entries[i].Value = v

		if !a.underlying(scope, kt).IsValidKey() {
			a.fail(liftErrors.KindType, n.Pos(), "%s is not a valid map key type", kt)
		}
		if keyTy == nil {
			keyTy, valTy = kt, vt
			continue
		}
		if !keyTy.Equals(kt) {
			a.fail(liftErrors.KindType, n.Pos(), "map keys must share a type: %s and %s", keyTy, kt)
		}
		uVal := a.underlying(scope, valTy)
		uVt := a.underlying(scope, vt)
		if unified := unifyNumeric(uVal, uVt); unified != nil {
			if unified.Kind == types.Flt {
				valTy = types.FltType
			}
			continue
		}
		if !valTy.Equals(vt) {
			a.fail(liftErrors.KindType, n.Pos(), "map values must share a type: %s and %s", valTy, vt)
		}
	}

	result := types.NewMap(keyTy, valTy)
	n.SetType(result)
	return n, result
}

// analyzeRangeLiteral requires both endpoints to be Int; Lift ranges
// iterate by integer step, so a Flt bound has no defined stepping.
func (a *Analyzer) analyzeRangeLiteral(scope *symtable.Scope, n *ast.RangeLiteral) (ast.Expression, *types.Type) {
	start, st := a.analyzeExpr(scope, n.Start)
	end, et := a.analyzeExpr(scope, n.End)
	n.Start, n.End = start, end

	if a.underlying(scope, st).Kind != types.Int || a.underlying(scope, et).Kind != types.Int {
		a.fail(liftErrors.KindType, n.Pos(), "range bounds must be Int, got %s..%s", st, et)
	}
	n.SetType(types.RangeType)
	return n, types.RangeType
}

// analyzeIndexExpr handles `recv[idx]`: List indexed by Int yields the
// element type, Map indexed by its key type yields the value type.
func (a *Analyzer) analyzeIndexExpr(scope *symtable.Scope, n *ast.IndexExpr) (ast.Expression, *types.Type) {
	receiver, recvTy := a.analyzeExpr(scope, n.Receiver)
	n.Receiver = receiver
	index, idxTy := a.analyzeExpr(scope, n.Index)
	n.Index = index

	underlyingRecv := a.underlying(scope, recvTy)
	var result *types.Type
	switch underlyingRecv.Kind {
	case types.List:
		if a.underlying(scope, idxTy).Kind != types.Int {
			a.fail(liftErrors.KindType, n.Pos(), "list index must be Int, got %s", idxTy)
		}
		result = underlyingRecv.Elem
	case types.Map:
		if !a.underlying(scope, idxTy).Equals(a.underlying(scope, underlyingRecv.Key)) {
			a.fail(liftErrors.KindType, n.Pos(), "map key must be %s, got %s", underlyingRecv.Key, idxTy)
		}
		result = underlyingRecv.Value
	default:
		a.fail(liftErrors.KindType, n.Pos(), "%s is not indexable", recvTy)
	}
	n.SetType(result)
	return n, result
}
