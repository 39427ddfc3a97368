// Package interp implements Lift's tree-walking evaluator: it consumes
// the AST exactly as internal/semantic annotated it (every Identifier,
// Call, and MethodCall already carrying a resolved symtable.Ref or
// ast.BuiltinMethod tag) and never re-resolves a name or re-checks a
// type. Values are the internal/runtime representations; evaluation
// panics internally on a runtime error (index out of bounds, missing map
// key, division by zero) and is recovered at the same top-level-
// expression granularity the analyzer uses, so one bad statement in a
// REPL session doesn't abort the whole one.
package interp

import (
	"fmt"

	"github.com/ccdavis/lift-lang/internal/ast"
	liftErrors "github.com/ccdavis/lift-lang/internal/errors"
	"github.com/ccdavis/lift-lang/internal/lexer"
	"github.com/ccdavis/lift-lang/internal/runtime"
	"github.com/ccdavis/lift-lang/internal/symtable"
	"github.com/ccdavis/lift-lang/internal/types"
)

// Interp holds the symbol table produced by semantic analysis (shared,
// not copied - its value slots are what evaluation reads and writes) and
// the output sink `output(...)` writes to.
type Interp struct {
	Table  *symtable.Table
	Out    *runtime.Output
	Source string
	File   string
}

// New creates an Interp over an already-analyzed table.
func New(table *symtable.Table, out *runtime.Output, source, file string) *Interp {
	return &Interp{Table: table, Out: out, Source: source, File: file}
}

type abort struct{ err *liftErrors.LiftError }

func (ip *Interp) fail(pos lexer.Position, format string, args ...interface{}) {
	panic(abort{liftErrors.New(liftErrors.KindRuntime, pos, fmt.Sprintf(format, args...), ip.Source, ip.File)})
}

// Run evaluates every top-level expression in program order, under the
// same per-expression error isolation the analyzer uses. It returns the
// value of each successfully evaluated expression and every error
// encountered (an expression that fails contributes no value).
func (ip *Interp) Run(prog *ast.Program) ([]runtime.Value, []*liftErrors.LiftError) {
	var values []runtime.Value
	var errs []*liftErrors.LiftError
	for _, expr := range prog.Expressions {
		v, err := ip.evalTopLevel(expr)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		values = append(values, v)
	}
	return values, errs
}

func (ip *Interp) evalTopLevel(expr ast.Expression) (result runtime.Value, err *liftErrors.LiftError) {
	defer func() {
		if r := recover(); r != nil {
			if ab, ok := r.(abort); ok {
				err = ab.err
				return
			}
			panic(r)
		}
	}()
	return ip.eval(expr), nil
}

// eval is the single recursive evaluator. It assumes expr has already
// been through semantic analysis: every name reference carries a valid
// Ref, every Call/MethodCall is fully resolved, and there is no type
// error left to discover.
func (ip *Interp) eval(expr ast.Expression) runtime.Value {
	switch n := expr.(type) {
	case *ast.IntLiteral:
		return runtime.Int{Value: n.Value}
	case *ast.FltLiteral:
		return runtime.Flt{Value: n.Value}
	case *ast.StrLiteral:
		return runtime.Str{Value: n.Stripped()}
	case *ast.BoolLiteral:
		return runtime.Bool{Value: n.Value}
	case *ast.UnitLiteral:
		return runtime.Unit{}
	case *ast.RuntimeValue:
		return n.Value
	case *ast.Identifier:
		return ip.evalIdentifier(n)
	case *ast.LetBinding:
		return ip.evalLetBinding(n)
	case *ast.Assign:
		return ip.evalAssign(n)
	case *ast.FieldAssign:
		return ip.evalFieldAssign(n)
	case *ast.BinaryExpr:
		return ip.evalBinaryExpr(n)
	case *ast.UnaryExpr:
		return ip.evalUnaryExpr(n)
	case *ast.Block:
		return ip.evalBlock(n)
	case *ast.If:
		return ip.evalIf(n)
	case *ast.While:
		return ip.evalWhile(n)
	case *ast.Call:
		return ip.evalCall(n)
	case *ast.MethodCall:
		return ip.evalMethodCall(n)
	case *ast.StructLiteral:
		return ip.evalStructLiteral(n)
	case *ast.FieldAccess:
		return ip.evalFieldAccess(n)
	case *ast.ListLiteral:
		return ip.evalListLiteral(n)
	case *ast.MapLiteral:
		return ip.evalMapLiteral(n)
	case *ast.RangeLiteral:
		return ip.evalRangeLiteral(n)
	case *ast.IndexExpr:
		return ip.evalIndexExpr(n)
	case *ast.FunctionDef:
		// A function/type definition evaluates to Unit; its effect (the
		// symbol table entry) was already established by the analyzer.
		return runtime.Unit{}
	case *ast.Lambda:
		return runtime.Unit{}
	case *ast.TypeDef:
		return runtime.Unit{}
	case *ast.Output:
		return ip.evalOutput(n)
	default:
		ip.fail(expr.Pos(), "internal error: unhandled node type %T", expr)
		return nil
	}
}

func (ip *Interp) evalIdentifier(n *ast.Identifier) runtime.Value {
	v := ip.Table.BorrowRuntimeValue(symtable.Ref{ScopeID: n.ScopeID, Index: n.Index})
	if v == nil {
		ip.fail(n.Pos(), "'%s' used before being assigned a value", n.Value)
	}
	return v
}

func (ip *Interp) evalLetBinding(n *ast.LetBinding) runtime.Value {
	v := ip.eval(n.Value)
	ref := symtable.Ref{ScopeID: n.ScopeID, Index: n.Index}
	if t := ip.Table.GetStaticType(ref); t != nil && t.Kind == types.Flt {
		if iv, ok := v.(runtime.Int); ok {
			v = runtime.Flt{Value: float64(iv.Value)}
		}
	}
	ip.Table.UpdateRuntimeValue(ref, v)
	return runtime.Unit{}
}

func (ip *Interp) evalAssign(n *ast.Assign) runtime.Value {
	v := ip.eval(n.Value)
	ip.Table.UpdateRuntimeValue(symtable.Ref{ScopeID: n.ScopeID, Index: n.Index}, v)
	return runtime.Unit{}
}

func (ip *Interp) evalFieldAssign(n *ast.FieldAssign) runtime.Value {
	id := n.Receiver.(*ast.Identifier)
	ref := symtable.Ref{ScopeID: id.ScopeID, Index: id.Index}
	current := ip.Table.BorrowRuntimeValue(ref).(*runtime.Struct)
	v := ip.eval(n.Value)
	ip.Table.UpdateRuntimeValue(ref, current.WithField(n.Field, v))
	return runtime.Unit{}
}

func (ip *Interp) evalBlock(n *ast.Block) runtime.Value {
	var last runtime.Value = runtime.Unit{}
	for _, e := range n.Expressions {
		last = ip.eval(e)
	}
	if n.TrailingSemicolon || len(n.Expressions) == 0 {
		return runtime.Unit{}
	}
	return last
}

func (ip *Interp) evalIf(n *ast.If) runtime.Value {
	cond := ip.eval(n.Condition).(runtime.Bool)
	if cond.Value {
		return ip.eval(n.Then)
	}
	if n.Else != nil {
		return ip.eval(n.Else)
	}
	return runtime.Unit{}
}

func (ip *Interp) evalWhile(n *ast.While) runtime.Value {
	for {
		cond := ip.eval(n.Condition).(runtime.Bool)
		if !cond.Value {
			break
		}
		ip.eval(n.Body)
	}
	return runtime.Unit{}
}

func (ip *Interp) evalOutput(n *ast.Output) runtime.Value {
	values := make([]runtime.Value, len(n.Args))
	for i, a := range n.Args {
		values[i] = ip.eval(a)
	}
	ip.Out.Write(values...)
	return runtime.Unit{}
}
