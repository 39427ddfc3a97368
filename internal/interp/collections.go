package interp

import (
	"github.com/ccdavis/lift-lang/internal/ast"
	"github.com/ccdavis/lift-lang/internal/runtime"
	"github.com/ccdavis/lift-lang/internal/types"
)

func (ip *Interp) evalListLiteral(n *ast.ListLiteral) runtime.Value {
	elems := make([]runtime.Value, len(n.Elements))
	for i, e := range n.Elements {
		elems[i] = ip.eval(e)
	}
	elemTy := n.GetType().Elem
	if elemTy != nil && elemTy.Kind == types.Flt {
		promoteIntsToFlt(elems)
	}
	return &runtime.List{Elements: elems, Elem: elemTy}
}

func (ip *Interp) evalMapLiteral(n *ast.MapLiteral) runtime.Value {
	mapTy := n.GetType()
	m := runtime.NewMap(mapTy.Key, mapTy.Value)
	for _, e := range n.Entries {
		k := ip.eval(e.Key)
		v := ip.eval(e.Value)
		if mapTy.Value.Kind == types.Flt {
			if iv, ok := v.(runtime.Int); ok {
				v = runtime.Flt{Value: float64(iv.Value)}
			}
		}
		m.Entries[k] = v
	}
	return m
}

func (ip *Interp) evalRangeLiteral(n *ast.RangeLiteral) runtime.Value {
	start := ip.eval(n.Start).(runtime.Int)
	end := ip.eval(n.End).(runtime.Int)
	return runtime.Range{Start: start.Value, End: end.Value}
}

func (ip *Interp) evalIndexExpr(n *ast.IndexExpr) runtime.Value {
	recv := ip.eval(n.Receiver)
	idx := ip.eval(n.Index)
	switch r := recv.(type) {
	case *runtime.List:
		i := idx.(runtime.Int).Value
		if i < 0 || i >= int64(len(r.Elements)) {
			ip.fail(n.Pos(), "list index %d out of bounds (length %d)", i, len(r.Elements))
		}
		return r.Elements[i]
	case *runtime.Map:
		v, ok := r.Entries[idx]
		if !ok {
			ip.fail(n.Pos(), "map has no key %s", idx.String())
		}
		return v
	default:
		ip.fail(n.Pos(), "internal error: index on a non-indexable value")
		return nil
	}
}

func promoteIntsToFlt(vs []runtime.Value) {
	for i, v := range vs {
		if iv, ok := v.(runtime.Int); ok {
			vs[i] = runtime.Flt{Value: float64(iv.Value)}
		}
	}
}
