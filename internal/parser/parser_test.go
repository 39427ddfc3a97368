package parser

import (
	"testing"

	"github.com/ccdavis/lift-lang/internal/ast"
	"github.com/ccdavis/lift-lang/internal/lexer"
)

func testParser(input string) *Parser {
	return New(lexer.New(input))
}

func checkParserErrors(t *testing.T, p *Parser) {
	t.Helper()
	errs := p.Errors()
	if len(errs) == 0 {
		return
	}
	t.Errorf("parser has %d errors", len(errs))
	for _, msg := range errs {
		t.Errorf("parser error: %s", msg)
	}
}

func parseSingle(t *testing.T, input string) ast.Expression {
	t.Helper()
	p := testParser(input)
	program := p.ParseProgram()
	checkParserErrors(t, p)
	if len(program.Expressions) != 1 {
		t.Fatalf("program has %d expressions, want 1", len(program.Expressions))
	}
	return program.Expressions[0]
}

func TestLiterals(t *testing.T) {
	intLit, ok := parseSingle(t, "5;").(*ast.IntLiteral)
	if !ok || intLit.Value != 5 {
		t.Fatalf("got %#v, want IntLiteral{5}", intLit)
	}

	fltLit, ok := parseSingle(t, "1.5;").(*ast.FltLiteral)
	if !ok || fltLit.Value != 1.5 {
		t.Fatalf("got %#v, want FltLiteral{1.5}", fltLit)
	}

	strLit, ok := parseSingle(t, "'hi';").(*ast.StrLiteral)
	if !ok || strLit.Stripped() != "hi" {
		t.Fatalf("got %#v, want StrLiteral whose Stripped() is 'hi'", strLit)
	}

	boolLit, ok := parseSingle(t, "true;").(*ast.BoolLiteral)
	if !ok || boolLit.Value != true {
		t.Fatalf("got %#v, want BoolLiteral{true}", boolLit)
	}
}

func TestBinaryPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3;", "(1 + (2 * 3))"},
		{"1 + 2 + 3;", "((1 + 2) + 3)"},
		{"a = b and c = d;", "((a = b) and (c = d))"},
		{"not a and b;", "((not a) and b)"},
		{"-1 + 2;", "((-1) + 2)"},
	}

	for _, tt := range tests {
		expr := parseSingle(t, tt.input)
		if got := expr.String(); got != tt.want {
			t.Errorf("%s => %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestLetBinding(t *testing.T) {
	expr := parseSingle(t, "let x = 5;")
	let, ok := expr.(*ast.LetBinding)
	if !ok {
		t.Fatalf("got %T, want *ast.LetBinding", expr)
	}
	if let.Mutable {
		t.Error("expected immutable binding")
	}
	if let.Name != "x" {
		t.Errorf("Name = %q, want x", let.Name)
	}
}

func TestLetVarBindingWithTypeAnnotation(t *testing.T) {
	expr := parseSingle(t, "let var x: Int = 5;")
	let, ok := expr.(*ast.LetBinding)
	if !ok {
		t.Fatalf("got %T, want *ast.LetBinding", expr)
	}
	if !let.Mutable {
		t.Error("expected mutable binding")
	}
	if let.DeclaredType == nil || let.DeclaredType.Name != "Int" {
		t.Errorf("DeclaredType = %v, want Int", let.DeclaredType)
	}
}

func TestAssign(t *testing.T) {
	expr := parseSingle(t, "x := 9;")
	assign, ok := expr.(*ast.Assign)
	if !ok {
		t.Fatalf("got %T, want *ast.Assign", expr)
	}
	if assign.Name != "x" {
		t.Errorf("Name = %q, want x", assign.Name)
	}
}

func TestFieldAssign(t *testing.T) {
	expr := parseSingle(t, "p.x := 9;")
	fa, ok := expr.(*ast.FieldAssign)
	if !ok {
		t.Fatalf("got %T, want *ast.FieldAssign", expr)
	}
	if fa.Field != "x" {
		t.Errorf("Field = %q, want x", fa.Field)
	}
}

func TestIfElse(t *testing.T) {
	expr := parseSingle(t, "if x < 1 { 1 } else { 2 };")
	ifExpr, ok := expr.(*ast.If)
	if !ok {
		t.Fatalf("got %T, want *ast.If", expr)
	}
	if ifExpr.Else == nil {
		t.Fatal("expected an else branch")
	}
}

func TestWhile(t *testing.T) {
	expr := parseSingle(t, "while c < 3 { c := c + 1 };")
	if _, ok := expr.(*ast.While); !ok {
		t.Fatalf("got %T, want *ast.While", expr)
	}
}

func TestBlockTrailingSemicolonYieldsUnit(t *testing.T) {
	expr := parseSingle(t, "{ 1; 2; };")
	block, ok := expr.(*ast.Block)
	if !ok {
		t.Fatalf("got %T, want *ast.Block", expr)
	}
	if !block.TrailingSemicolon {
		t.Error("expected TrailingSemicolon to be true")
	}
	if len(block.Expressions) != 2 {
		t.Errorf("got %d expressions, want 2", len(block.Expressions))
	}
}

func TestBlockNoTrailingSemicolonYieldsLastValue(t *testing.T) {
	expr := parseSingle(t, "{ 1; 2 };")
	block, ok := expr.(*ast.Block)
	if !ok {
		t.Fatalf("got %T, want *ast.Block", expr)
	}
	if block.TrailingSemicolon {
		t.Error("expected TrailingSemicolon to be false")
	}
}

func TestFunctionDef(t *testing.T) {
	expr := parseSingle(t, "function fact(n: Int): Int { if n <= 1 { 1 } else { n * fact(n: n - 1) } };")
	fn, ok := expr.(*ast.FunctionDef)
	if !ok {
		t.Fatalf("got %T, want *ast.FunctionDef", expr)
	}
	if fn.Name != "fact" || len(fn.Params) != 1 || fn.Params[0].Name != "n" {
		t.Fatalf("got %+v", fn)
	}
	if fn.ReturnTy.Name != "Int" {
		t.Errorf("ReturnTy = %v, want Int", fn.ReturnTy)
	}
}

func TestMethodDef(t *testing.T) {
	expr := parseSingle(t, "function Shape.area(): Flt { 0.0 };")
	fn, ok := expr.(*ast.FunctionDef)
	if !ok {
		t.Fatalf("got %T, want *ast.FunctionDef", expr)
	}
	if !fn.IsMethod() || fn.Receiver != "Shape" {
		t.Errorf("got Receiver=%q, want Shape", fn.Receiver)
	}
}

func TestCpyParam(t *testing.T) {
	expr := parseSingle(t, "function f(cpy n: Int): Int = n;")
	fn := expr.(*ast.FunctionDef)
	if !fn.Params[0].Copy {
		t.Error("expected the parameter to be marked cpy")
	}
}

func TestCallWithKeywordArgs(t *testing.T) {
	expr := parseSingle(t, "fact(n: 5);")
	call, ok := expr.(*ast.Call)
	if !ok {
		t.Fatalf("got %T, want *ast.Call", expr)
	}
	if call.Callee != "fact" || len(call.Args) != 1 || call.Args[0].Name != "n" {
		t.Fatalf("got %+v", call)
	}
}

func TestMethodCall(t *testing.T) {
	expr := parseSingle(t, "'Hello World'.upper().replace(old: 'WORLD', new: 'Lift');")
	outer, ok := expr.(*ast.MethodCall)
	if !ok {
		t.Fatalf("got %T, want *ast.MethodCall", expr)
	}
	if outer.Method != "replace" || len(outer.Args) != 2 {
		t.Fatalf("got %+v", outer)
	}
	inner, ok := outer.Receiver.(*ast.MethodCall)
	if !ok || inner.Method != "upper" {
		t.Fatalf("receiver = %#v, want MethodCall{upper}", outer.Receiver)
	}
}

func TestFieldAccess(t *testing.T) {
	expr := parseSingle(t, "p.x;")
	fa, ok := expr.(*ast.FieldAccess)
	if !ok || fa.Field != "x" {
		t.Fatalf("got %#v, want FieldAccess{x}", expr)
	}
}

func TestStructLiteralParsesAsCall(t *testing.T) {
	expr := parseSingle(t, "P(x: 1, y: 2);")
	call, ok := expr.(*ast.Call)
	if !ok {
		t.Fatalf("got %T, want *ast.Call (promoted to a struct literal later by the analyzer)", expr)
	}
	if call.Callee != "P" || len(call.Args) != 2 {
		t.Fatalf("got %+v", call)
	}
}

func TestListLiteral(t *testing.T) {
	expr := parseSingle(t, "[1, 2, 3];")
	list, ok := expr.(*ast.ListLiteral)
	if !ok || len(list.Elements) != 3 {
		t.Fatalf("got %#v, want a 3-element ListLiteral", expr)
	}
}

func TestMapLiteral(t *testing.T) {
	expr := parseSingle(t, "#{'A': 1, 'B': 2};")
	m, ok := expr.(*ast.MapLiteral)
	if !ok || len(m.Entries) != 2 {
		t.Fatalf("got %#v, want a 2-entry MapLiteral", expr)
	}
}

func TestRangeLiteral(t *testing.T) {
	expr := parseSingle(t, "1..4;")
	r, ok := expr.(*ast.RangeLiteral)
	if !ok {
		t.Fatalf("got %T, want *ast.RangeLiteral", expr)
	}
	if r.Start.(*ast.IntLiteral).Value != 1 || r.End.(*ast.IntLiteral).Value != 4 {
		t.Fatalf("got %+v", r)
	}
}

func TestIndexExpr(t *testing.T) {
	expr := parseSingle(t, "xs[0];")
	idx, ok := expr.(*ast.IndexExpr)
	if !ok {
		t.Fatalf("got %T, want *ast.IndexExpr", expr)
	}
	if idx.Index.(*ast.IntLiteral).Value != 0 {
		t.Fatalf("got %+v", idx)
	}
}

func TestTypeDefAlias(t *testing.T) {
	expr := parseSingle(t, "type UserId = Int;")
	td, ok := expr.(*ast.TypeDef)
	if !ok || td.Expr.Name != "Int" {
		t.Fatalf("got %#v, want TypeDef aliasing Int", expr)
	}
}

func TestTypeDefListOf(t *testing.T) {
	expr := parseSingle(t, "type Names = List of Str;")
	td := expr.(*ast.TypeDef)
	if td.Expr.Elem == nil || td.Expr.Elem.Name != "Str" {
		t.Fatalf("got %#v, want List of Str", td.Expr)
	}
}

func TestTypeDefMapOf(t *testing.T) {
	expr := parseSingle(t, "type Ages = Map of Str to Int;")
	td := expr.(*ast.TypeDef)
	if td.Expr.Key == nil || td.Expr.Key.Name != "Str" || td.Expr.Value.Name != "Int" {
		t.Fatalf("got %#v, want Map of Str to Int", td.Expr)
	}
}

func TestTypeDefStruct(t *testing.T) {
	expr := parseSingle(t, "type P = struct(x: Int, y: Int);")
	td := expr.(*ast.TypeDef)
	if len(td.Expr.Fields) != 2 || td.Expr.Fields[0].Name != "x" {
		t.Fatalf("got %#v", td.Expr.Fields)
	}
}

func TestTypeDefEnum(t *testing.T) {
	expr := parseSingle(t, "type Color = (Red, Green, Blue);")
	td := expr.(*ast.TypeDef)
	if len(td.Expr.Variants) != 3 || td.Expr.Variants[1] != "Green" {
		t.Fatalf("got %#v", td.Expr.Variants)
	}
}

func TestTypeDefRange(t *testing.T) {
	expr := parseSingle(t, "type Digit = 0 to 9;")
	td := expr.(*ast.TypeDef)
	if !td.Expr.HasRangeBounds || td.Expr.RangeFrom != 0 || td.Expr.RangeTo != 9 {
		t.Fatalf("got %#v", td.Expr)
	}
}

func TestOutputCall(t *testing.T) {
	expr := parseSingle(t, "output(x, y);")
	out, ok := expr.(*ast.Output)
	if !ok || len(out.Args) != 2 {
		t.Fatalf("got %#v, want Output with 2 args", expr)
	}
}

func TestLambda(t *testing.T) {
	expr := parseSingle(t, "let sq = function(n: Int): Int = n * n;")
	let := expr.(*ast.LetBinding)
	lambda, ok := let.Value.(*ast.Lambda)
	if !ok {
		t.Fatalf("got %T, want *ast.Lambda", let.Value)
	}
	if len(lambda.Params) != 1 || lambda.Params[0].Name != "n" {
		t.Fatalf("got %+v", lambda.Params)
	}
}

func TestParenthesizedGrouping(t *testing.T) {
	expr := parseSingle(t, "(1 + 2) * 3;")
	if got, want := expr.String(), "((1 + 2) * 3)"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestFactorialProgram(t *testing.T) {
	p := testParser("function fact(n: Int): Int { if n <= 1 { 1 } else { n * fact(n: n - 1) } }; output(fact(n: 5));")
	program := p.ParseProgram()
	checkParserErrors(t, p)
	if len(program.Expressions) != 2 {
		t.Fatalf("got %d top-level expressions, want 2", len(program.Expressions))
	}
}

func TestSyntaxErrorIsReported(t *testing.T) {
	p := testParser("let = 5;")
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatal("expected a parse error for a missing binding name")
	}
}
