package interp

import (
	"bytes"
	"strings"
	"testing"

	liftErrors "github.com/ccdavis/lift-lang/internal/errors"
	"github.com/ccdavis/lift-lang/internal/lexer"
	"github.com/ccdavis/lift-lang/internal/parser"
	"github.com/ccdavis/lift-lang/internal/runtime"
	"github.com/ccdavis/lift-lang/internal/semantic"
)

func run(t *testing.T, src string) (string, []*liftErrors.LiftError) {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l)
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parser errors for %q: %v", src, errs)
	}

	a := semantic.New(src, "test.lift")
	prog, analysisErrs := a.Analyze(prog)
	if len(analysisErrs) > 0 {
		t.Fatalf("analysis errors for %q: %v", src, analysisErrs)
	}

	var buf bytes.Buffer
	out := runtime.NewOutput(&buf)
	ip := New(a.Table, out, src, "test.lift")
	_, errs := ip.Run(prog)
	out.Flush()
	return buf.String(), errs
}

func requireNoRuntimeErrors(t *testing.T, errs []*liftErrors.LiftError) {
	t.Helper()
	if len(errs) != 0 {
		for _, e := range errs {
			t.Errorf("unexpected runtime error: %s", e.Error())
		}
		t.FailNow()
	}
}

func TestOutputLiterals(t *testing.T) {
	out, errs := run(t, `output(1, 'two', true, 3.5);`)
	requireNoRuntimeErrors(t, errs)
	if out != "1 'two' true 3.5\n" {
		t.Errorf("got %q", out)
	}
}

func TestArithmeticAndPromotion(t *testing.T) {
	out, errs := run(t, `
		let x: Flt = 5;
		output(x + 1);
	`)
	requireNoRuntimeErrors(t, errs)
	if strings.TrimSpace(out) != "6.0" {
		t.Errorf("got %q", out)
	}
}

func TestIfElse(t *testing.T) {
	out, errs := run(t, `
		let x = 5;
		output(if x > 3 { 'big' } else { 'small' });
	`)
	requireNoRuntimeErrors(t, errs)
	if strings.TrimSpace(out) != "'big'" {
		t.Errorf("got %q", out)
	}
}

func TestWhileLoopAndMutableAssign(t *testing.T) {
	out, errs := run(t, `
		let var i = 0;
		let var total = 0;
		while i < 5 {
			total := total + i;
			i := i + 1;
		};
		output(total);
	`)
	requireNoRuntimeErrors(t, errs)
	if strings.TrimSpace(out) != "10" {
		t.Errorf("got %q", out)
	}
}

func TestFactorialRecursion(t *testing.T) {
	out, errs := run(t, `
		function factorial(n: Int): Int {
			if n <= 1 { 1 } else { n * factorial(n: n - 1) }
		}
		output(factorial(n: 5));
	`)
	requireNoRuntimeErrors(t, errs)
	if strings.TrimSpace(out) != "120" {
		t.Errorf("got %q", out)
	}
}

func TestMutualRecursionDoesNotCorruptCallerState(t *testing.T) {
	out, errs := run(t, `
		function is_even(n: Int): Bool {
			if n = 0 { true } else { is_odd(n: n - 1) }
		}
		function is_odd(n: Int): Bool {
			if n = 0 { false } else { is_even(n: n - 1) }
		}
		output(is_even(n: 10), is_odd(n: 10));
	`)
	requireNoRuntimeErrors(t, errs)
	if strings.TrimSpace(out) != "true false" {
		t.Errorf("got %q", out)
	}
}

func TestStructFieldAssignReplacesValue(t *testing.T) {
	out, errs := run(t, `
		type Point = struct(x: Int, y: Int);
		let var p = Point(x: 1, y: 2);
		p.x := 9;
		output(p.x, p.y);
	`)
	requireNoRuntimeErrors(t, errs)
	if strings.TrimSpace(out) != "9 2" {
		t.Errorf("got %q", out)
	}
}

func TestUserDefinedMethodCall(t *testing.T) {
	out, errs := run(t, `
		type Point = struct(x: Int, y: Int);
		function Point.sum(): Int = self.x + self.y;
		let p = Point(x: 3, y: 4);
		output(p.sum());
	`)
	requireNoRuntimeErrors(t, errs)
	if strings.TrimSpace(out) != "7" {
		t.Errorf("got %q", out)
	}
}

func TestBuiltinStrMethods(t *testing.T) {
	out, errs := run(t, `
		let s = 'Hello';
		output(s.upper(), s.lower(), s.is_empty());
	`)
	requireNoRuntimeErrors(t, errs)
	if strings.TrimSpace(out) != "'HELLO' 'hello' false" {
		t.Errorf("got %q", out)
	}
}

func TestUFCSCallEquivalence(t *testing.T) {
	out, errs := run(t, `
		let s = 'Hello';
		output(upper(self: s));
	`)
	requireNoRuntimeErrors(t, errs)
	if strings.TrimSpace(out) != "'HELLO'" {
		t.Errorf("got %q", out)
	}
}

func TestListIndexingAndBuiltins(t *testing.T) {
	out, errs := run(t, `
		let xs = [3, 1, 2];
		output(xs[0], xs.first(), xs.last(), xs.is_empty());
	`)
	requireNoRuntimeErrors(t, errs)
	if strings.TrimSpace(out) != "3 3 2 false" {
		t.Errorf("got %q", out)
	}
}

func TestListIndexOutOfBoundsIsRuntimeError(t *testing.T) {
	_, errs := run(t, `
		let xs = [1, 2, 3];
		output(xs[10]);
	`)
	if len(errs) != 1 || errs[0].Kind != liftErrors.KindRuntime {
		t.Fatalf("expected one runtime error, got %v", errs)
	}
}

func TestMapIndexing(t *testing.T) {
	out, errs := run(t, `
		let m = #{'a': 1, 'b': 2};
		output(m['a'], m.contains_key(key: 'c'));
	`)
	requireNoRuntimeErrors(t, errs)
	if strings.TrimSpace(out) != "1 false" {
		t.Errorf("got %q", out)
	}
}

func TestDivisionByZeroIsRuntimeError(t *testing.T) {
	_, errs := run(t, `
		let x = 1;
		let y = 0;
		output(x / y);
	`)
	if len(errs) != 1 || errs[0].Kind != liftErrors.KindRuntime {
		t.Fatalf("expected one runtime error, got %v", errs)
	}
}

func TestShortCircuitAnd(t *testing.T) {
	out, errs := run(t, `
		let x = false;
		output(x and (1 / 0 = 0));
	`)
	requireNoRuntimeErrors(t, errs)
	if strings.TrimSpace(out) != "false" {
		t.Errorf("got %q", out)
	}
}
