package semantic

import (
	"testing"

	"github.com/ccdavis/lift-lang/internal/ast"
	liftErrors "github.com/ccdavis/lift-lang/internal/errors"
	"github.com/ccdavis/lift-lang/internal/lexer"
	"github.com/ccdavis/lift-lang/internal/parser"
)

func analyzeSource(t *testing.T, src string) (*ast.Program, []*liftErrors.LiftError, *Analyzer) {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l)
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parser errors for %q: %v", src, errs)
	}
	a := New(src, "test.lift")
	out, errs := a.Analyze(prog)
	return out, errs, a
}

func requireNoErrors(t *testing.T, errs []*liftErrors.LiftError) {
	t.Helper()
	if len(errs) != 0 {
		for _, e := range errs {
			t.Errorf("unexpected error: %s", e.Error())
		}
		t.FailNow()
	}
}

func requireSingleError(t *testing.T, errs []*liftErrors.LiftError, kind liftErrors.Kind) *liftErrors.LiftError {
	t.Helper()
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %d: %v", len(errs), errs)
	}
	if errs[0].Kind != kind {
		t.Fatalf("expected error kind %s, got %s (%s)", kind, errs[0].Kind, errs[0].Error())
	}
	return errs[0]
}

func TestLetBindingInfersType(t *testing.T) {
	_, errs, _ := analyzeSource(t, `let x = 5;`)
	requireNoErrors(t, errs)
}

func TestLetBindingTypeMismatchIsTypeError(t *testing.T) {
	_, errs, _ := analyzeSource(t, `let x: Str = 5;`)
	requireSingleError(t, errs, liftErrors.KindType)
}

func TestUndeclaredNameIsNameError(t *testing.T) {
	_, errs, _ := analyzeSource(t, `output(x);`)
	requireSingleError(t, errs, liftErrors.KindName)
}

func TestIntPromotesToFlt(t *testing.T) {
	_, errs, _ := analyzeSource(t, `let x: Flt = 5;`)
	requireNoErrors(t, errs)
}

func TestAssignToImmutableIsTypeError(t *testing.T) {
	_, errs, _ := analyzeSource(t, `
		let x = 5;
		x := 6;
	`)
	requireSingleError(t, errs, liftErrors.KindType)
}

func TestAssignToMutableSucceeds(t *testing.T) {
	_, errs, _ := analyzeSource(t, `
		let var x = 5;
		x := 6;
	`)
	requireNoErrors(t, errs)
}

func TestFieldAssignRequiresMutableReceiver(t *testing.T) {
	_, errs, _ := analyzeSource(t, `
		type Point = struct(x: Int, y: Int);
		let p = Point(x: 1, y: 2);
		p.x := 9;
	`)
	requireSingleError(t, errs, liftErrors.KindType)
}

func TestFieldAssignOnMutableReceiverSucceeds(t *testing.T) {
	_, errs, _ := analyzeSource(t, `
		type Point = struct(x: Int, y: Int);
		let var p = Point(x: 1, y: 2);
		p.x := 9;
	`)
	requireNoErrors(t, errs)
}

func TestStructLiteralPromotionFromCall(t *testing.T) {
	_, errs, a := analyzeSource(t, `
		type Point = struct(x: Int, y: Int);
		let p = Point(x: 1, y: 2);
	`)
	requireNoErrors(t, errs)
	if a == nil {
		t.Fatal("expected analyzer instance")
	}
}

func TestStructLiteralMissingFieldIsTypeError(t *testing.T) {
	_, errs, _ := analyzeSource(t, `
		type Point = struct(x: Int, y: Int);
		let p = Point(x: 1);
	`)
	requireSingleError(t, errs, liftErrors.KindType)
}

func TestStructLiteralUnknownFieldIsRejected(t *testing.T) {
	_, errs, _ := analyzeSource(t, `
		type Point = struct(x: Int, y: Int);
		let p = Point(x: 1, y: 2, z: 3);
	`)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %d: %v", len(errs), errs)
	}
}

func TestFieldAccess(t *testing.T) {
	_, errs, _ := analyzeSource(t, `
		type Point = struct(x: Int, y: Int);
		let p = Point(x: 1, y: 2);
		output(p.x);
	`)
	requireNoErrors(t, errs)
}

func TestMutuallyRecursiveFunctionsResolve(t *testing.T) {
	_, errs, _ := analyzeSource(t, `
		function is_even(n: Int): Bool {
			if n = 0 { true } else { is_odd(n: n - 1) }
		}
		function is_odd(n: Int): Bool {
			if n = 0 { false } else { is_even(n: n - 1) }
		}
	`)
	requireNoErrors(t, errs)
}

func TestFunctionReturnTypeMismatchIsTypeError(t *testing.T) {
	_, errs, _ := analyzeSource(t, `
		function bad(): Int = 'not an int';
	`)
	requireSingleError(t, errs, liftErrors.KindType)
}

func TestBuiltinStrMethodCall(t *testing.T) {
	_, errs, _ := analyzeSource(t, `
		let s = 'hello';
		output(s.upper());
	`)
	requireNoErrors(t, errs)
}

func TestBuiltinMethodWrongArgCountIsTypeError(t *testing.T) {
	_, errs, _ := analyzeSource(t, `
		let s = 'hello';
		output(s.contains());
	`)
	requireSingleError(t, errs, liftErrors.KindType)
}

func TestUFCSRewritesToMethodCall(t *testing.T) {
	_, errs, _ := analyzeSource(t, `
		let s = 'hello';
		output(upper(self: s));
	`)
	requireNoErrors(t, errs)
}

func TestUserDefinedMethodResolution(t *testing.T) {
	_, errs, _ := analyzeSource(t, `
		type Point = struct(x: Int, y: Int);
		function Point.sum(): Int = self.x + self.y;
		let p = Point(x: 1, y: 2);
		output(p.sum());
	`)
	requireNoErrors(t, errs)
}

func TestListLiteralElementUnification(t *testing.T) {
	_, errs, _ := analyzeSource(t, `let xs = [1, 2, 3];`)
	requireNoErrors(t, errs)
}

func TestListLiteralMixedTypesIsTypeError(t *testing.T) {
	_, errs, _ := analyzeSource(t, `let xs = [1, 'two', 3];`)
	requireSingleError(t, errs, liftErrors.KindType)
}

func TestEmptyListRequiresAnnotation(t *testing.T) {
	_, errs, _ := analyzeSource(t, `let xs = [];`)
	requireSingleError(t, errs, liftErrors.KindType)
}

func TestListIndexing(t *testing.T) {
	_, errs, _ := analyzeSource(t, `
		let xs = [1, 2, 3];
		output(xs[0]);
	`)
	requireNoErrors(t, errs)
}

func TestMapLiteralAndIndexing(t *testing.T) {
	_, errs, _ := analyzeSource(t, `
		let m = #{'a': 1, 'b': 2};
		output(m['a']);
	`)
	requireNoErrors(t, errs)
}

func TestMapFltKeyIsTypeError(t *testing.T) {
	_, errs, _ := analyzeSource(t, `let m = #{1.5: 'x'};`)
	requireSingleError(t, errs, liftErrors.KindType)
}

func TestRangeLiteralRequiresIntBounds(t *testing.T) {
	_, errs, _ := analyzeSource(t, `let r = 1..5;`)
	requireNoErrors(t, errs)
}

func TestRangeLiteralFltBoundIsTypeError(t *testing.T) {
	_, errs, _ := analyzeSource(t, `let r = 1.0..5;`)
	requireSingleError(t, errs, liftErrors.KindType)
}

func TestLenBuiltinOnStr(t *testing.T) {
	_, errs, _ := analyzeSource(t, `
		let s = 'hello';
		output(len(value: s));
	`)
	requireNoErrors(t, errs)
}

func TestFailedTopLevelExpressionDoesNotPolluteLaterOnes(t *testing.T) {
	_, errs, a := analyzeSource(t, `
		let x: Str = 5;
		let y = 10;
	`)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %d", len(errs))
	}
	if _, ok := a.Table.FindReachable(a.Table.Root(), "x"); ok {
		t.Error("expected failed binding 'x' to be rolled back")
	}
	if _, ok := a.Table.FindReachable(a.Table.Root(), "y"); !ok {
		t.Error("expected later successful binding 'y' to still be present")
	}
}
