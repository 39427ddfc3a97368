// Package symtable implements Lift's symbol table: a forest of scopes
// where every binding resolves to a stable (scope_id, entry_index) pair
// rather than a pointer. The pair survives AST cloning and stays valid
// for the lifetime of the table, which is why the semantic analyzer
// annotates AST nodes with it instead of retaining a reference to the
// declaring scope.
//
// Each entry carries two independent pieces of state: a compile-time
// declaration (name, AST node, static type) and a separate runtime value
// slot. Keeping them disjoint is what lets the interpreter update a
// variable's value without ever touching the analyzer's view of its
// type, and it's why a REPL session can roll back a failed top-level
// expression without corrupting bindings made by earlier ones (see
// Table.Mark/Rollback).
package symtable

import (
	"fmt"
	"strings"

	"github.com/ccdavis/lift-lang/internal/ast"
	"github.com/ccdavis/lift-lang/internal/runtime"
	"github.com/ccdavis/lift-lang/internal/types"
)

// EntryKind distinguishes how a symbol table entry came to exist, which
// governs whether it may be rebound in its own scope.
type EntryKind int

const (
	KindLet EntryKind = iota
	KindParam
	KindFunction
	KindType
	KindBuiltinFunc
	KindBuiltinMethod
)

// Entry is one symbol table binding.
type Entry struct {
	Name       string
	Kind       EntryKind
	Decl       ast.Node // nil for built-ins
	StaticType *types.Type
	Mutable    bool

	// Builtin is populated when Kind is KindBuiltinMethod.
	Builtin ast.BuiltinMethod

	// Value is the runtime slot. It starts nil (unset) and is populated
	// by Let/Assign/parameter binding during interpretation.
	Value runtime.Value
}

// Scope is one node of the scope forest.
type Scope struct {
	id      int
	parent  *Scope
	entries []*Entry
	byName  map[string][]int // name -> indices into entries, declaration order
}

// ID returns the scope's stable identifier.
func (s *Scope) ID() int { return s.id }

// Table owns every scope created during analysis of one program (or, for
// a REPL, one long-lived session).
type Table struct {
	scopes  []*Scope
	nextID  int
	root    *Scope
}

// New creates a table with an empty global scope, pre-populated with the
// built-ins registered by RegisterBuiltins.
func New() *Table {
	t := &Table{}
	t.root = t.newScope(nil)
	RegisterBuiltins(t, t.root)
	return t
}

// Root returns the global scope.
func (t *Table) Root() *Scope { return t.root }

func (t *Table) newScope(parent *Scope) *Scope {
	s := &Scope{id: t.nextID, parent: parent, byName: make(map[string][]int)}
	t.nextID++
	t.scopes = append(t.scopes, s)
	return s
}

// CreateScope creates a new child scope of parent and returns it.
func (t *Table) CreateScope(parent *Scope) *Scope {
	return t.newScope(parent)
}

// scopeByID finds a scope by its stable id. Lookup is linear, which is
// fine: scope counts are bounded by the program's nesting, not its
// runtime iteration count.
func (t *Table) scopeByID(id int) *Scope {
	for _, s := range t.scopes {
		if s.id == id {
			return s
		}
	}
	return nil
}

// AddSymbol inserts a new entry into scope and returns its stable index.
// Rebinding a function or type name already declared in the same scope is
// rejected; `let`/`let var` bindings may always be added, shadowing any
// earlier entry of the same name in the same or an outer scope - this is
// what makes a `let` re-declared in a loop body's scope safe to
// re-execute every iteration without growing the table (see
// internal/interp's loop evaluation, which reuses the one static entry).
func (t *Table) AddSymbol(scope *Scope, name string, kind EntryKind, decl ast.Node, static *types.Type, mutable bool) (int, error) {
	if kind == KindFunction || kind == KindType {
		if indices, exists := scope.byName[name]; exists {
			for _, idx := range indices {
				if scope.entries[idx].Kind == kind {
					return 0, fmt.Errorf("'%s' is already declared in this scope", name)
				}
			}
		}
	}

	entry := &Entry{Name: name, Kind: kind, Decl: decl, StaticType: static, Mutable: mutable}
	idx := len(scope.entries)
	scope.entries = append(scope.entries, entry)
	scope.byName[name] = append(scope.byName[name], idx)
	return idx, nil
}

// Ref is a resolved (scope, entry) pair.
type Ref struct {
	ScopeID int
	Index   int
}

// FindReachable looks up name starting at scope and walking the parent
// chain outward, returning the innermost (i.e. most recently declared
// within the nearest matching scope) binding.
func (t *Table) FindReachable(scope *Scope, name string) (Ref, bool) {
	for s := scope; s != nil; s = s.parent {
		if indices, ok := s.byName[name]; ok && len(indices) > 0 {
			return Ref{ScopeID: s.id, Index: indices[len(indices)-1]}, true
		}
	}
	return Ref{}, false
}

// Entry returns the entry a Ref points to.
func (t *Table) Entry(ref Ref) *Entry {
	s := t.scopeByID(ref.ScopeID)
	if s == nil || ref.Index < 0 || ref.Index >= len(s.entries) {
		return nil
	}
	return s.entries[ref.Index]
}

// GetStaticType returns the declared/inferred type of the entry ref
// points to.
func (t *Table) GetStaticType(ref Ref) *types.Type {
	if e := t.Entry(ref); e != nil {
		return e.StaticType
	}
	return nil
}

// BorrowRuntimeValue returns the current value held in the entry's
// runtime slot, without cloning.
func (t *Table) BorrowRuntimeValue(ref Ref) runtime.Value {
	if e := t.Entry(ref); e != nil {
		return e.Value
	}
	return nil
}

// UpdateRuntimeValue overwrites the entry's runtime slot. Because Value
// types never share mutable substructure (see internal/runtime's
// whole-value struct replacement), this never aliases a previous
// observation of the slot.
func (t *Table) UpdateRuntimeValue(ref Ref, v runtime.Value) {
	if e := t.Entry(ref); e != nil {
		e.Value = v
	}
}

// ResolveTypeAlias follows a TypeRef through scope, starting at scope and
// walking outward, until it reaches a non-TypeRef type. Aliases can be
// declared in nested blocks and are visible only within them, so
// resolution must start from the use site's scope, not the global one.
func (t *Table) ResolveTypeAlias(scope *Scope, name string) (*types.Type, bool) {
	ref, ok := t.FindReachable(scope, name)
	if !ok {
		return nil, false
	}
	entry := t.Entry(ref)
	if entry == nil || entry.Kind != KindType {
		return nil, false
	}
	resolved := entry.StaticType
	seen := map[string]bool{name: true}
	for resolved != nil && resolved.Kind == types.TypeRef {
		if seen[resolved.Name] {
			return nil, false // alias cycle
		}
		seen[resolved.Name] = true
		next, ok := t.FindReachable(scope, resolved.Name)
		if !ok {
			return nil, false
		}
		nextEntry := t.Entry(next)
		if nextEntry == nil {
			return nil, false
		}
		resolved = nextEntry.StaticType
	}
	return resolved, resolved != nil
}

// LookupMethod resolves "TypeName.method" in scope, the composite key
// under which both user-defined and built-in methods are registered
// (see §4.2: "every built-in method under its receiver type's
// namespace").
func (t *Table) LookupMethod(scope *Scope, typeName, method string) (Ref, bool) {
	return t.FindReachable(scope, methodKey(typeName, method))
}

func methodKey(typeName, method string) string {
	return typeName + "." + method
}

// DefineMethod registers a user-defined method under "TypeName.method".
func (t *Table) DefineMethod(scope *Scope, typeName, method string, decl ast.Node, static *types.Type) (int, error) {
	return t.AddSymbol(scope, methodKey(typeName, method), KindFunction, decl, static, false)
}

// Checkpoint captures the table's current entry counts per scope, so a
// shell session can stage a top-level expression's declarations and
// discard them if analysis fails without disturbing earlier ones.
type Checkpoint struct {
	scopeCounts map[int]int
	scopeList   int
}

// Mark returns a Checkpoint of the table's current size.
func (t *Table) Mark() Checkpoint {
	counts := make(map[int]int, len(t.scopes))
	for _, s := range t.scopes {
		counts[s.id] = len(s.entries)
	}
	return Checkpoint{scopeCounts: counts, scopeList: len(t.scopes)}
}

// Rollback discards every scope and entry added after cp was taken.
func (t *Table) Rollback(cp Checkpoint) {
	t.scopes = t.scopes[:cp.scopeList]
	for _, s := range t.scopes {
		if n, ok := cp.scopeCounts[s.id]; ok && n < len(s.entries) {
			for _, e := range s.entries[n:] {
				kept := s.byName[e.Name][:0]
				for _, idx := range s.byName[e.Name] {
					if idx < n {
						kept = append(kept, idx)
					}
				}
				if len(kept) == 0 {
					delete(s.byName, e.Name)
				} else {
					s.byName[e.Name] = kept
				}
			}
			s.entries = s.entries[:n]
		}
	}
}

// ScopeByID exposes scopeByID for callers outside the package (the
// interpreter resolves a function's parameter scope by the id the
// analyzer recorded on its FunctionDef/Lambda node).
func (t *Table) ScopeByID(id int) *Scope { return t.scopeByID(id) }

// ValueSnapshot is one entry's runtime value at the moment a snapshot was
// taken.
type ValueSnapshot struct {
	ref   Ref
	value runtime.Value
}

// SnapshotValues captures every entry's current runtime value across the
// whole table. The interpreter takes one of these before entering a
// function call and restores it on return, which is what makes recursion
// safe despite each parameter having exactly one static value slot: a
// call's writes to its own parameters (and any locals it declares) are
// undone the moment it returns, so an in-progress outer call never sees
// an inner call's bindings.
func (t *Table) SnapshotValues() []ValueSnapshot {
	var snap []ValueSnapshot
	for _, s := range t.scopes {
		for i, e := range s.entries {
			snap = append(snap, ValueSnapshot{ref: Ref{ScopeID: s.id, Index: i}, value: e.Value})
		}
	}
	return snap
}

// RestoreValues writes every captured value back to its entry.
func (t *Table) RestoreValues(snap []ValueSnapshot) {
	for _, vs := range snap {
		t.UpdateRuntimeValue(vs.ref, vs.value)
	}
}

// DebugDump renders the table for troubleshooting. No command in this
// repository calls it.
func (t *Table) DebugDump() string {
	var b strings.Builder
	for _, s := range t.scopes {
		parent := -1
		if s.parent != nil {
			parent = s.parent.id
		}
		fmt.Fprintf(&b, "scope %d (parent %d):\n", s.id, parent)
		for i, e := range s.entries {
			fmt.Fprintf(&b, "  [%d] %s : %s\n", i, e.Name, e.StaticType)
		}
	}
	return b.String()
}
