package symtable

import (
	"testing"

	"github.com/ccdavis/lift-lang/internal/runtime"
	"github.com/ccdavis/lift-lang/internal/types"
)

func TestRootHasBuiltins(t *testing.T) {
	tbl := New()
	if _, ok := tbl.FindReachable(tbl.Root(), "output"); !ok {
		t.Fatal("expected 'output' to be registered in the root scope")
	}
	if _, ok := tbl.FindReachable(tbl.Root(), "len"); !ok {
		t.Fatal("expected 'len' to be registered in the root scope")
	}
	ref, ok := tbl.LookupMethod(tbl.Root(), "Str", "upper")
	if !ok {
		t.Fatal("expected 'Str.upper' to be registered")
	}
	entry := tbl.Entry(ref)
	if entry.Kind != KindBuiltinMethod || entry.Builtin == 0 {
		t.Errorf("Str.upper entry = %+v, want a tagged builtin method", entry)
	}
}

func TestShadowingInNestedScope(t *testing.T) {
	tbl := New()
	outer := tbl.CreateScope(tbl.Root())
	tbl.AddSymbol(outer, "x", KindLet, nil, types.IntType, false)

	inner := tbl.CreateScope(outer)
	tbl.AddSymbol(inner, "x", KindLet, nil, types.StrType, false)

	ref, ok := tbl.FindReachable(inner, "x")
	if !ok {
		t.Fatal("expected 'x' to resolve from inner scope")
	}
	if got := tbl.GetStaticType(ref); !got.Equals(types.StrType) {
		t.Errorf("inner 'x' resolved to %s, want Str", got)
	}

	outerRef, ok := tbl.FindReachable(outer, "x")
	if !ok {
		t.Fatal("expected 'x' to still resolve from outer scope")
	}
	if got := tbl.GetStaticType(outerRef); !got.Equals(types.IntType) {
		t.Errorf("outer 'x' resolved to %s, want Int", got)
	}
}

func TestRedeclareLetInSameScopeShadowsPreviousEntry(t *testing.T) {
	tbl := New()
	scope := tbl.CreateScope(tbl.Root())
	tbl.AddSymbol(scope, "x", KindLet, nil, types.IntType, false)
	tbl.AddSymbol(scope, "x", KindLet, nil, types.IntType, false)

	ref, _ := tbl.FindReachable(scope, "x")
	if ref.Index != 1 {
		t.Errorf("expected the second declaration (index 1) to win, got index %d", ref.Index)
	}
}

func TestRebindingFunctionInSameScopeIsRejected(t *testing.T) {
	tbl := New()
	scope := tbl.CreateScope(tbl.Root())
	if _, err := tbl.AddSymbol(scope, "f", KindFunction, nil, types.UnitType, false); err != nil {
		t.Fatalf("unexpected error on first declaration: %v", err)
	}
	if _, err := tbl.AddSymbol(scope, "f", KindFunction, nil, types.UnitType, false); err == nil {
		t.Fatal("expected an error rebinding a function in the same scope")
	}
}

func TestRuntimeValueSlotRoundTrips(t *testing.T) {
	tbl := New()
	scope := tbl.CreateScope(tbl.Root())
	idx, _ := tbl.AddSymbol(scope, "x", KindLet, nil, types.IntType, true)
	ref := Ref{ScopeID: scope.ID(), Index: idx}

	tbl.UpdateRuntimeValue(ref, runtime.Int{Value: 5})
	if got := tbl.BorrowRuntimeValue(ref); got.(runtime.Int).Value != 5 {
		t.Errorf("BorrowRuntimeValue() = %v, want Int{5}", got)
	}

	tbl.UpdateRuntimeValue(ref, runtime.Int{Value: 9})
	if got := tbl.BorrowRuntimeValue(ref); got.(runtime.Int).Value != 9 {
		t.Errorf("BorrowRuntimeValue() = %v, want Int{9} after update", got)
	}
}

func TestResolveTypeAlias(t *testing.T) {
	tbl := New()
	scope := tbl.CreateScope(tbl.Root())
	tbl.AddSymbol(scope, "UserId", KindType, nil, types.IntType, false)
	tbl.AddSymbol(scope, "Id", KindType, nil, types.NewTypeRef("UserId"), false)

	resolved, ok := tbl.ResolveTypeAlias(scope, "Id")
	if !ok {
		t.Fatal("expected alias resolution to succeed")
	}
	if !resolved.Equals(types.IntType) {
		t.Errorf("ResolveTypeAlias() = %s, want Int", resolved)
	}
}

func TestCheckpointRollback(t *testing.T) {
	tbl := New()
	cp := tbl.Mark()

	scope := tbl.CreateScope(tbl.Root())
	tbl.AddSymbol(scope, "x", KindLet, nil, types.IntType, false)

	tbl.Rollback(cp)
	if _, ok := tbl.FindReachable(tbl.Root(), "x"); ok {
		t.Fatal("expected rollback to discard the scope created after the checkpoint")
	}
}
