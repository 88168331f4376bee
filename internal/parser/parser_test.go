package parser

import (
	"testing"

	"circuitlint/internal/ast"
)

func parseOneFunction(t *testing.T, src string) *ast.Function {
	t.Helper()
	prog, errs := ParseSource("test.circuit", 0, src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	if len(prog.Functions) != 1 {
		t.Fatalf("expected exactly one function, got %d", len(prog.Functions))
	}
	return prog.Functions[0]
}

func TestParseEmptyFunction(t *testing.T) {
	fn := parseOneFunction(t, "function f() { }")
	if fn.Name != "f" {
		t.Errorf("expected name 'f', got %q", fn.Name)
	}
	if len(fn.Body.Stmts) != 0 {
		t.Errorf("expected empty body, got %d statements", len(fn.Body.Stmts))
	}
}

func TestParseParams(t *testing.T) {
	fn := parseOneFunction(t, "function f(a, b, c) { }")
	if got := fn.GetNameOfParams(); len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("expected params [a b c], got %v", got)
	}
}

func TestParseVarDeclarationDesugarsToInitializationBlock(t *testing.T) {
	fn := parseOneFunction(t, "function f() { var x = 1; }")
	if len(fn.Body.Stmts) != 1 {
		t.Fatalf("expected one statement, got %d", len(fn.Body.Stmts))
	}
	ib, ok := fn.Body.Stmts[0].(*ast.InitializationBlock)
	if !ok {
		t.Fatalf("expected *ast.InitializationBlock, got %T", fn.Body.Stmts[0])
	}
	if len(ib.Stmts) != 2 {
		t.Fatalf("expected declaration+substitution, got %d statements", len(ib.Stmts))
	}
	decl, ok := ib.Stmts[0].(*ast.Declaration)
	if !ok || decl.Name != "x" || decl.Kind != ast.VarType {
		t.Fatalf("expected Declaration(x, VarType), got %#v", ib.Stmts[0])
	}
	sub, ok := ib.Stmts[1].(*ast.Substitution)
	if !ok || sub.Var != "x" || sub.IsArtificial {
		t.Fatalf("expected non-artificial Substitution(x), got %#v", ib.Stmts[1])
	}
}

func TestParseBareDeclarationNoInitializer(t *testing.T) {
	fn := parseOneFunction(t, "function f() { signal s; }")
	decl, ok := fn.Body.Stmts[0].(*ast.Declaration)
	if !ok || decl.Name != "s" || decl.Kind != ast.SignalType {
		t.Fatalf("expected Declaration(s, SignalType), got %#v", fn.Body.Stmts[0])
	}
}

func TestParseAssignment(t *testing.T) {
	fn := parseOneFunction(t, "function f() { var x; x = 2; }")
	sub, ok := fn.Body.Stmts[1].(*ast.Substitution)
	if !ok || sub.Var != "x" || sub.IsArtificial {
		t.Fatalf("expected non-artificial Substitution(x), got %#v", fn.Body.Stmts[1])
	}
	num, ok := sub.Rhe.(*ast.Number)
	if !ok || num.Value != "2" {
		t.Fatalf("expected Number(2) rhe, got %#v", sub.Rhe)
	}
}

func TestParseUnderscoreAssignment(t *testing.T) {
	fn := parseOneFunction(t, "function f() { var x; _ = x; }")
	us, ok := fn.Body.Stmts[1].(*ast.UnderscoreSubstitution)
	if !ok {
		t.Fatalf("expected *ast.UnderscoreSubstitution, got %#v", fn.Body.Stmts[1])
	}
	v, ok := us.Rhe.(*ast.Variable)
	if !ok || v.Name != "x" {
		t.Fatalf("expected rhe Variable(x), got %#v", us.Rhe)
	}
}

func TestParseAssignmentWithAccessPath(t *testing.T) {
	fn := parseOneFunction(t, "function f() { var x; x[0].field = 1; }")
	sub, ok := fn.Body.Stmts[1].(*ast.Substitution)
	if !ok {
		t.Fatalf("expected *ast.Substitution, got %#v", fn.Body.Stmts[1])
	}
	if len(sub.Access) != 2 {
		t.Fatalf("expected a two-element access path, got %d", len(sub.Access))
	}
	if _, ok := sub.Access[0].(*ast.ArrayAccess); !ok {
		t.Errorf("expected first access to be ArrayAccess, got %#v", sub.Access[0])
	}
	if fa, ok := sub.Access[1].(*ast.ComponentAccess); !ok || fa.Field != "field" {
		t.Errorf("expected second access to be ComponentAccess(field), got %#v", sub.Access[1])
	}
}

func TestParseConstraintEquality(t *testing.T) {
	fn := parseOneFunction(t, "function f() { var a; var b; a === b; }")
	ce, ok := fn.Body.Stmts[2].(*ast.ConstraintEquality)
	if !ok {
		t.Fatalf("expected *ast.ConstraintEquality, got %#v", fn.Body.Stmts[2])
	}
	if _, ok := ce.Lhe.(*ast.Variable); !ok {
		t.Errorf("expected lhe Variable, got %#v", ce.Lhe)
	}
}

func TestParseIfElse(t *testing.T) {
	fn := parseOneFunction(t, "function f() { if (1) { var x; } else { var y; } }")
	ite, ok := fn.Body.Stmts[0].(*ast.IfThenElse)
	if !ok {
		t.Fatalf("expected *ast.IfThenElse, got %#v", fn.Body.Stmts[0])
	}
	if ite.Else == nil {
		t.Fatal("expected a non-nil else branch")
	}
}

func TestParseIfWithoutElse(t *testing.T) {
	fn := parseOneFunction(t, "function f() { if (1) { var x; } }")
	ite := fn.Body.Stmts[0].(*ast.IfThenElse)
	if ite.Else != nil {
		t.Errorf("expected nil else branch, got %#v", ite.Else)
	}
}

func TestParseWhile(t *testing.T) {
	fn := parseOneFunction(t, "function f() { while (1) { var x; } }")
	w, ok := fn.Body.Stmts[0].(*ast.While)
	if !ok {
		t.Fatalf("expected *ast.While, got %#v", fn.Body.Stmts[0])
	}
	if _, ok := w.Body.(*ast.Block); !ok {
		t.Errorf("expected block body, got %#v", w.Body)
	}
}

func TestParseReturn(t *testing.T) {
	fn := parseOneFunction(t, "function f() { return 1; }")
	r, ok := fn.Body.Stmts[0].(*ast.Return)
	if !ok || r.Value == nil {
		t.Fatalf("expected *ast.Return with a value, got %#v", fn.Body.Stmts[0])
	}
}

func TestParseReturnWithoutValue(t *testing.T) {
	fn := parseOneFunction(t, "function f() { return; }")
	r := fn.Body.Stmts[0].(*ast.Return)
	if r.Value != nil {
		t.Errorf("expected nil return value, got %#v", r.Value)
	}
}

func TestParseLogCallMixedArgs(t *testing.T) {
	fn := parseOneFunction(t, `function f() { var x; log("value is", x); }`)
	lc, ok := fn.Body.Stmts[1].(*ast.LogCall)
	if !ok || len(lc.Args) != 2 {
		t.Fatalf("expected LogCall with two args, got %#v", fn.Body.Stmts[1])
	}
	if _, ok := lc.Args[0].(ast.LogStr); !ok {
		t.Errorf("expected first arg to be LogStr, got %#v", lc.Args[0])
	}
	if _, ok := lc.Args[1].(ast.LogExpr); !ok {
		t.Errorf("expected second arg to be LogExpr, got %#v", lc.Args[1])
	}
}

func TestParseAssert(t *testing.T) {
	fn := parseOneFunction(t, "function f() { var x; assert(x); }")
	a, ok := fn.Body.Stmts[1].(*ast.Assert)
	if !ok {
		t.Fatalf("expected *ast.Assert, got %#v", fn.Body.Stmts[1])
	}
	if _, ok := a.Arg.(*ast.Variable); !ok {
		t.Errorf("expected Variable arg, got %#v", a.Arg)
	}
}

func TestParseTemplate(t *testing.T) {
	prog, errs := ParseSource("test.circuit", 0, "template T(n) { signal s; }")
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	if len(prog.Templates) != 1 || prog.Templates[0].Name != "T" {
		t.Fatalf("expected one template named T, got %#v", prog.Templates)
	}
}

func TestParseExpressionPrecedence(t *testing.T) {
	fn := parseOneFunction(t, "function f() { var x; x = 1 + 2 * 3; }")
	sub := fn.Body.Stmts[1].(*ast.Substitution)
	infix, ok := sub.Rhe.(*ast.InfixOp)
	if !ok || infix.Op != "+" {
		t.Fatalf("expected top-level '+', got %#v", sub.Rhe)
	}
	rhs, ok := infix.Rhe.(*ast.InfixOp)
	if !ok || rhs.Op != "*" {
		t.Fatalf("expected '*' to bind tighter on the right, got %#v", infix.Rhe)
	}
}

func TestParsePowerIsRightAssociative(t *testing.T) {
	fn := parseOneFunction(t, "function f() { var x; x = 2 ** 3 ** 2; }")
	sub := fn.Body.Stmts[1].(*ast.Substitution)
	top, ok := sub.Rhe.(*ast.InfixOp)
	if !ok || top.Op != "**" {
		t.Fatalf("expected top-level '**', got %#v", sub.Rhe)
	}
	if _, ok := top.Rhe.(*ast.InfixOp); !ok {
		t.Fatalf("expected right-associative nesting on the rhe, got %#v", top.Rhe)
	}
	if _, ok := top.Lhe.(*ast.Number); !ok {
		t.Fatalf("expected a bare literal on the lhe, got %#v", top.Lhe)
	}
}

func TestParseTernary(t *testing.T) {
	fn := parseOneFunction(t, "function f() { var x; x = 1 ? 2 : 3; }")
	sub := fn.Body.Stmts[1].(*ast.Substitution)
	sw, ok := sub.Rhe.(*ast.InlineSwitchOp)
	if !ok {
		t.Fatalf("expected *ast.InlineSwitchOp, got %#v", sub.Rhe)
	}
	if _, ok := sw.IfTrue.(*ast.Number); !ok {
		t.Errorf("expected literal if-true branch, got %#v", sw.IfTrue)
	}
}

func TestParseParallelOp(t *testing.T) {
	fn := parseOneFunction(t, "function f() { var x; x = @y; }")
	sub := fn.Body.Stmts[1].(*ast.Substitution)
	if _, ok := sub.Rhe.(*ast.ParallelOp); !ok {
		t.Fatalf("expected *ast.ParallelOp, got %#v", sub.Rhe)
	}
}

func TestParseArrayLiteral(t *testing.T) {
	fn := parseOneFunction(t, "function f() { var x; x = [1, 2, 3]; }")
	sub := fn.Body.Stmts[1].(*ast.Substitution)
	arr, ok := sub.Rhe.(*ast.ArrayInLine)
	if !ok || len(arr.Values) != 3 {
		t.Fatalf("expected a three-element array literal, got %#v", sub.Rhe)
	}
}

func TestParseUniformArray(t *testing.T) {
	fn := parseOneFunction(t, "function f() { var x; x = [0; 4]; }")
	sub := fn.Body.Stmts[1].(*ast.Substitution)
	arr, ok := sub.Rhe.(*ast.UniformArray)
	if !ok {
		t.Fatalf("expected *ast.UniformArray, got %#v", sub.Rhe)
	}
	if _, ok := arr.Dimension.(*ast.Number); !ok {
		t.Errorf("expected numeric dimension, got %#v", arr.Dimension)
	}
}

func TestParseTuple(t *testing.T) {
	fn := parseOneFunction(t, "function f() { var x; x = (1, 2); }")
	sub := fn.Body.Stmts[1].(*ast.Substitution)
	tup, ok := sub.Rhe.(*ast.Tuple)
	if !ok || len(tup.Values) != 2 {
		t.Fatalf("expected a two-element tuple, got %#v", sub.Rhe)
	}
}

func TestParseParenthesizedExpressionIsNotATuple(t *testing.T) {
	fn := parseOneFunction(t, "function f() { var x; x = (1); }")
	sub := fn.Body.Stmts[1].(*ast.Substitution)
	if _, ok := sub.Rhe.(*ast.Tuple); ok {
		t.Fatalf("expected a bare literal, not a tuple, got %#v", sub.Rhe)
	}
}

func TestParseCallExpression(t *testing.T) {
	fn := parseOneFunction(t, "function f() { var x; x = helper(1, 2); }")
	sub := fn.Body.Stmts[1].(*ast.Substitution)
	call, ok := sub.Rhe.(*ast.Call)
	if !ok || call.Name != "helper" || len(call.Args) != 2 {
		t.Fatalf("expected Call(helper, 2 args), got %#v", sub.Rhe)
	}
}

func TestParseAnonymousComponentInstantiation(t *testing.T) {
	fn := parseOneFunction(t, "function f() { var x; x = Tmpl(1)(2, 3); }")
	sub := fn.Body.Stmts[1].(*ast.Substitution)
	comp, ok := sub.Rhe.(*ast.AnonymousComp)
	if !ok || comp.Name != "Tmpl" || len(comp.Params) != 1 || len(comp.Signals) != 2 {
		t.Fatalf("expected AnonymousComp(Tmpl, 1 param, 2 signals), got %#v", sub.Rhe)
	}
}

func TestParseConstVar(t *testing.T) {
	fn := parseOneFunction(t, "function f() { const var x = 1; }")
	ib := fn.Body.Stmts[0].(*ast.InitializationBlock)
	decl := ib.Stmts[0].(*ast.Declaration)
	if !decl.IsConstant {
		t.Errorf("expected IsConstant true, got %#v", decl)
	}
}

func TestParseMalformedTopLevelRecovers(t *testing.T) {
	prog, errs := ParseSource("test.circuit", 0, "garbage tokens here function f() { }")
	if len(errs) == 0 {
		t.Fatal("expected at least one parse error")
	}
	if len(prog.Functions) != 1 {
		t.Fatalf("expected parser to recover and still find the function, got %#v", prog.Functions)
	}
}
