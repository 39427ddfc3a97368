// Package jit defines the contract a native code generation backend must
// satisfy to stand in for internal/interp. Nothing in this package lowers
// AST to machine code; it pins down the interface and the value
// representation a conforming backend would target, so that a future
// backend (and internal/interp, as the reference backend) both honour the
// same observable-output guarantee.
//
// No backend is implemented here. `lift run --compile` reports an
// unimplemented error (see cmd/lift/cmd/run.go) rather than silently
// falling back to the interpreter - a stub that pretended to compile would
// hide the gap this package exists to document.
package jit

import (
	"github.com/ccdavis/lift-lang/internal/ast"
	liftErrors "github.com/ccdavis/lift-lang/internal/errors"
	"github.com/ccdavis/lift-lang/internal/runtime"
	"github.com/ccdavis/lift-lang/internal/symtable"
)

// Backend lowers a fully annotated program to native code and runs it.
// A conforming implementation must produce output byte-for-byte identical
// to internal/interp.Interp.Run for every program that type-checks; see
// the package doc and ValueRepr below for the obligations that make that
// possible.
type Backend interface {
	// Name identifies the backend, e.g. "amd64-sysv" or "arm64-aapcs64".
	Name() string

	// Compile lowers prog against table to a Program ready to run. It does
	// not execute anything; compilation errors are reported the same way
	// analyzer/interpreter errors are, tagged liftErrors.KindRuntime since
	// they can only arise from constructs the analyzer already accepted.
	Compile(prog *ast.Program, table *symtable.Table) (Program, []*liftErrors.LiftError)
}

// Program is compiled, runnable native code produced by a Backend.
type Program interface {
	// Run executes the compiled program, writing output through out
	// exactly as internal/interp.Interp.Run would. It returns the runtime
	// errors raised during execution, at the same per-top-level-expression
	// isolation interp.Run uses.
	Run(out *runtime.Output) []*liftErrors.LiftError
}

// ValueRepr documents the native representation a Backend must use for
// each runtime.Value kind, per spec §4.8. It is not consumed by any code
// in this repository - it exists so a Backend author has one place that
// states the ABI it must match to stay output-compatible with interp.
type ValueRepr struct {
	// Int is a 64-bit two's-complement machine integer.
	Int string
	// Flt is 64-bit IEEE-754.
	Flt string
	// Bool is represented zero/non-zero in a machine word.
	Bool string
	// Str, List, Map, Range, and Struct are opaque heap handles; a
	// conforming backend owns their layout, but every one of them must
	// round-trip through the runtime support library's output and
	// equality entry points below rather than be formatted or compared
	// inline, so interpreter and JIT output can never drift independently.
}

// RuntimeSupport is the minimum surface a Backend's generated code must be
// able to call into. internal/runtime already implements every one of
// these operations for the interpreter; a Backend links against the same
// package rather than reimplementing string/list/map/struct semantics in
// native code, so the two backends share one source of truth for
// built-in behaviour and only diverge in how they reach it.
type RuntimeSupport interface {
	// String allocation. The Str built-in methods have no entry point in
	// this interface; they are the functions in internal/runtime's
	// str_builtins.go.
	AllocStr(s string) runtime.Value

	// List and Map constructors. Their built-in methods have no entry
	// point in this interface; they are the functions in
	// internal/runtime's list_builtins.go and map_builtins.go.
	AllocList(elems []runtime.Value) runtime.Value
	AllocMap() runtime.Value

	// Range construction; ranges have no methods, only output formatting.
	AllocRange(start, end int64) runtime.Value

	// Struct allocation and structural equality (field read and write
	// have no entry point in this interface), the latter delegated to a
	// single entry point that takes
	// two struct handles - spec §4.8 requires this be one call site, not
	// inlined per-field comparison, so the JIT's equality semantics can
	// never silently diverge from runtime.Equals.
	AllocStruct(typeName string, fields map[string]runtime.Value, order []string) runtime.Value
	StructEquals(a, b runtime.Value) bool

	// Output writes one output(...) call's values; a Backend's generated
	// code calls this once per output(...) call with all of its arguments
	// in source order, exactly as Interp.evalOutput does, so separator and
	// newline behaviour can never drift between backends.
	Output(out *runtime.Output, values ...runtime.Value)
}
