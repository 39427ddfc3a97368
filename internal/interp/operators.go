package interp

import (
	"github.com/ccdavis/lift-lang/internal/ast"
	"github.com/ccdavis/lift-lang/internal/runtime"
)

func (ip *Interp) evalBinaryExpr(n *ast.BinaryExpr) runtime.Value {
	switch n.Operator {
	case "and":
		l := ip.eval(n.Left).(runtime.Bool)
		if !l.Value {
			return runtime.Bool{Value: false}
		}
		r := ip.eval(n.Right).(runtime.Bool)
		return r
	case "or":
		l := ip.eval(n.Left).(runtime.Bool)
		if l.Value {
			return runtime.Bool{Value: true}
		}
		r := ip.eval(n.Right).(runtime.Bool)
		return r
	}

	left := ip.eval(n.Left)
	right := ip.eval(n.Right)

	switch n.Operator {
	case "+":
		if ls, ok := left.(runtime.Str); ok {
			return runtime.Str{Value: ls.Value + right.(runtime.Str).Value}
		}
		return numericOp(left, right,
			func(a, b int64) int64 { return a + b },
			func(a, b float64) float64 { return a + b })
	case "-":
		return numericOp(left, right,
			func(a, b int64) int64 { return a - b },
			func(a, b float64) float64 { return a - b })
	case "*":
		return numericOp(left, right,
			func(a, b int64) int64 { return a * b },
			func(a, b float64) float64 { return a * b })
	case "/":
		return ip.evalDivide(n, left, right)
	case "<":
		return runtime.Bool{Value: compareNumeric(left, right) < 0}
	case "<=":
		return runtime.Bool{Value: compareNumeric(left, right) <= 0}
	case ">":
		return runtime.Bool{Value: compareNumeric(left, right) > 0}
	case ">=":
		return runtime.Bool{Value: compareNumeric(left, right) >= 0}
	case "=":
		return runtime.Bool{Value: runtime.Equals(left, right)}
	case "<>":
		return runtime.Bool{Value: !runtime.Equals(left, right)}
	default:
		ip.fail(n.Pos(), "internal error: unknown operator %q", n.Operator)
		return nil
	}
}

func (ip *Interp) evalDivide(n *ast.BinaryExpr, left, right runtime.Value) runtime.Value {
	li, lIsInt := left.(runtime.Int)
	ri, rIsInt := right.(runtime.Int)
	if lIsInt && rIsInt {
		if ri.Value == 0 {
			ip.fail(n.Pos(), "division by zero")
		}
		return runtime.Int{Value: li.Value / ri.Value}
	}
	rf := asFloat(right)
	if rf == 0 {
		ip.fail(n.Pos(), "division by zero")
	}
	return runtime.Flt{Value: asFloat(left) / rf}
}

func numericOp(l, r runtime.Value, intOp func(a, b int64) int64, fltOp func(a, b float64) float64) runtime.Value {
	li, lIsInt := l.(runtime.Int)
	ri, rIsInt := r.(runtime.Int)
	if lIsInt && rIsInt {
		return runtime.Int{Value: intOp(li.Value, ri.Value)}
	}
	return runtime.Flt{Value: fltOp(asFloat(l), asFloat(r))}
}

func compareNumeric(l, r runtime.Value) int {
	lf, rf := asFloat(l), asFloat(r)
	switch {
	case lf < rf:
		return -1
	case lf > rf:
		return 1
	default:
		return 0
	}
}

func asFloat(v runtime.Value) float64 {
	switch x := v.(type) {
	case runtime.Int:
		return float64(x.Value)
	case runtime.Flt:
		return x.Value
	default:
		return 0
	}
}

func (ip *Interp) evalUnaryExpr(n *ast.UnaryExpr) runtime.Value {
	v := ip.eval(n.Operand)
	switch n.Operator {
	case "not":
		return runtime.Bool{Value: !v.(runtime.Bool).Value}
	case "-":
		switch x := v.(type) {
		case runtime.Int:
			return runtime.Int{Value: -x.Value}
		case runtime.Flt:
			return runtime.Flt{Value: -x.Value}
		}
	}
	ip.fail(n.Pos(), "internal error: unknown unary operator %q", n.Operator)
	return nil
}
