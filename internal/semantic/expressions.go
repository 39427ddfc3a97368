package semantic

import (
	"github.com/ccdavis/lift-lang/internal/ast"
	liftErrors "github.com/ccdavis/lift-lang/internal/errors"
	"github.com/ccdavis/lift-lang/internal/symtable"
	"github.com/ccdavis/lift-lang/internal/types"
)

// analyzeExpr is the single recursive-descent dispatcher. It returns the
// (possibly rewritten - see Call's struct-literal promotion) expression
// and its resolved type, and annotates the node in place via its embedded
// Annotation wherever one exists.
func (a *Analyzer) analyzeExpr(scope *symtable.Scope, expr ast.Expression) (ast.Expression, *types.Type) {
	switch n := expr.(type) {
	case *ast.IntLiteral:
		n.SetType(types.IntType)
		return n, types.IntType
	case *ast.FltLiteral:
		n.SetType(types.FltType)
		return n, types.FltType
	case *ast.StrLiteral:
		n.SetType(types.StrType)
		return n, types.StrType
	case *ast.BoolLiteral:
		n.SetType(types.BoolType)
		return n, types.BoolType
	case *ast.UnitLiteral:
		n.SetType(types.UnitType)
		return n, types.UnitType
	case *ast.Identifier:
		return a.analyzeIdentifier(scope, n)
	case *ast.LetBinding:
		return a.analyzeLetBinding(scope, n)
	case *ast.Assign:
		return a.analyzeAssign(scope, n)
	case *ast.FieldAssign:
		return a.analyzeFieldAssign(scope, n)
	case *ast.BinaryExpr:
		return a.analyzeBinaryExpr(scope, n)
	case *ast.UnaryExpr:
		return a.analyzeUnaryExpr(scope, n)
	case *ast.Block:
		return a.analyzeBlock(scope, n)
	case *ast.If:
		return a.analyzeIf(scope, n)
	case *ast.While:
		return a.analyzeWhile(scope, n)
	case *ast.Call:
		return a.analyzeCall(scope, n)
	case *ast.MethodCall:
		return a.analyzeMethodCall(scope, n)
	case *ast.StructLiteral:
		return a.analyzeStructLiteral(scope, n)
	case *ast.FieldAccess:
		return a.analyzeFieldAccess(scope, n)
	case *ast.ListLiteral:
		return a.analyzeListLiteral(scope, n)
	case *ast.MapLiteral:
		return a.analyzeMapLiteral(scope, n)
	case *ast.RangeLiteral:
		return a.analyzeRangeLiteral(scope, n)
	case *ast.IndexExpr:
		return a.analyzeIndexExpr(scope, n)
	case *ast.FunctionDef:
		return a.analyzeFunctionDef(scope, n)
	case *ast.Lambda:
		return a.analyzeLambda(scope, n)
	case *ast.TypeDef:
		return a.analyzeTypeDef(scope, n)
	case *ast.Output:
		return a.analyzeOutput(scope, n)
	case *ast.RuntimeValue:
		n.SetType(n.Value.Type())
		return n, n.Value.Type()
	default:
		a.fail(liftErrors.KindType, expr.Pos(), "internal error: unhandled node type %T", expr)
		return nil, nil
	}
}

func (a *Analyzer) analyzeIdentifier(scope *symtable.Scope, id *ast.Identifier) (ast.Expression, *types.Type) {
	ref, ok := a.Table.FindReachable(scope, id.Value)
	if !ok {
		a.fail(liftErrors.KindName, id.Pos(), "undeclared name '%s'", id.Value)
	}
	id.SetRef(ref.ScopeID, ref.Index)
	t := a.Table.GetStaticType(ref)
	id.SetType(t)
	return id, t
}

func (a *Analyzer) analyzeBinaryExpr(scope *symtable.Scope, b *ast.BinaryExpr) (ast.Expression, *types.Type) {
	left, lt := a.analyzeExpr(scope, b.Left)
	right, rt := a.analyzeExpr(scope, b.Right)
	b.Left, b.Right = left, right
	lt, rt = a.underlying(scope, lt), a.underlying(scope, rt)

	var result *types.Type
	switch b.Operator {
	case "+":
		if lt.Kind == types.Str && rt.Kind == types.Str {
			result = types.StrType
		} else {
			result = unifyNumeric(lt, rt)
		}
	case "-", "*", "/":
		result = unifyNumeric(lt, rt)
	case "<", "<=", ">", ">=":
		if unifyNumeric(lt, rt) == nil {
			a.fail(liftErrors.KindType, b.Pos(), "'%s' requires numeric operands, got %s and %s", b.Operator, lt, rt)
		}
		result = types.BoolType
	case "=", "<>":
		if !a.equalityComparable(lt, rt) {
			a.fail(liftErrors.KindType, b.Pos(), "cannot compare %s and %s", lt, rt)
		}
		result = types.BoolType
	case "and", "or":
		if lt.Kind != types.Bool || rt.Kind != types.Bool {
			a.fail(liftErrors.KindType, b.Pos(), "'%s' requires Bool operands, got %s and %s", b.Operator, lt, rt)
		}
		result = types.BoolType
	default:
		a.fail(liftErrors.KindType, b.Pos(), "internal error: unknown operator %q", b.Operator)
	}
	if result == nil {
		a.fail(liftErrors.KindType, b.Pos(), "'%s' is not defined for %s and %s", b.Operator, lt, rt)
	}
	b.SetType(result)
	return b, result
}

func (a *Analyzer) equalityComparable(l, r *types.Type) bool {
	if unifyNumeric(l, r) != nil {
		return true
	}
	if l.Kind == types.Struct && r.Kind == types.Struct {
		return l.Name == r.Name
	}
	return l.Equals(r)
}

func (a *Analyzer) analyzeUnaryExpr(scope *symtable.Scope, u *ast.UnaryExpr) (ast.Expression, *types.Type) {
	operand, t := a.analyzeExpr(scope, u.Operand)
	u.Operand = operand
	underlying := a.underlying(scope, t)

	var result *types.Type
	switch u.Operator {
	case "not":
		if underlying.Kind != types.Bool {
			a.fail(liftErrors.KindType, u.Pos(), "'not' requires a Bool operand, got %s", t)
		}
		result = types.BoolType
	case "-":
		if !underlying.IsNumeric() {
			a.fail(liftErrors.KindType, u.Pos(), "unary '-' requires Int or Flt, got %s", t)
		}
		result = underlying
	default:
		a.fail(liftErrors.KindType, u.Pos(), "internal error: unknown unary operator %q", u.Operator)
	}
	u.SetType(result)
	return u, result
}

func (a *Analyzer) analyzeBlock(parent *symtable.Scope, b *ast.Block) (ast.Expression, *types.Type) {
	scope := a.Table.CreateScope(parent)
	b.ScopeID = scope.ID()

	a.predeclare(scope, b.Expressions)

	var last *types.Type = types.UnitType
	for i, e := range b.Expressions {
		analyzed, t := a.analyzeExpr(scope, e)
		b.Expressions[i] = analyzed
		last = t
	}
	if b.TrailingSemicolon || len(b.Expressions) == 0 {
		last = types.UnitType
	}
	b.SetType(last)
	return b, last
}

func (a *Analyzer) analyzeIf(scope *symtable.Scope, n *ast.If) (ast.Expression, *types.Type) {
	cond, ct := a.analyzeExpr(scope, n.Condition)
	n.Condition = cond
	if a.underlying(scope, ct).Kind != types.Bool {
		a.fail(liftErrors.KindType, n.Pos(), "'if' condition must be Bool, got %s", ct)
	}

	_, thenTy := a.analyzeExpr(scope, n.Then)
	result := thenTy
	if n.Else != nil {
		_, elseTy := a.analyzeExpr(scope, n.Else)
		if !thenTy.Equals(elseTy) && unifyNumeric(thenTy, elseTy) == nil {
			result = types.UnitType
		}
	} else {
		result = types.UnitType
	}
	n.SetType(result)
	return n, result
}

func (a *Analyzer) analyzeWhile(scope *symtable.Scope, n *ast.While) (ast.Expression, *types.Type) {
	cond, ct := a.analyzeExpr(scope, n.Condition)
	n.Condition = cond
	if a.underlying(scope, ct).Kind != types.Bool {
		a.fail(liftErrors.KindType, n.Pos(), "'while' condition must be Bool, got %s", ct)
	}
	a.analyzeExpr(scope, n.Body)
	n.SetType(types.UnitType)
	return n, types.UnitType
}
