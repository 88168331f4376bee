package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"circuitlint/internal/ast"
)

func varRef(name string) *ast.Variable { return &ast.Variable{Name: name} }

func TestFunctionPrintsEmptyBody(t *testing.T) {
	fn := &ast.Function{
		Name:   "f",
		Params: []ast.Ident{{Name: "a"}, {Name: "b"}},
		Body:   &ast.Block{},
	}
	assert.Equal(t, "function f(a, b) {\n}", Function(fn))
}

func TestTemplatePrintsParallelKeyword(t *testing.T) {
	tmpl := &ast.Template{
		Name:       "T",
		Params:     []ast.Ident{{Name: "n"}},
		Body:       &ast.Block{},
		IsParallel: true,
	}
	assert.Equal(t, "parallel template T(n) {\n}", Template(tmpl))
}

func TestStatementPrintsDeclarationAndSubstitution(t *testing.T) {
	blk := &ast.Block{Stmts: []ast.Statement{
		&ast.Declaration{Name: "x", Kind: ast.VarType},
		&ast.Substitution{Var: "x", Rhe: &ast.Number{Value: "1"}},
	}}
	out := Block(blk, 0)
	assert.Contains(t, out, "    var x;\n")
	assert.Contains(t, out, "    x = 1;\n")
}

func TestStatementSkipsEliminatedSubstitution(t *testing.T) {
	// After dead-store rewriting, Stmts simply omits the removed node -
	// the printer has nothing special to do, it just prints what's left.
	blk := &ast.Block{Stmts: []ast.Statement{
		&ast.Declaration{Name: "x", Kind: ast.VarType},
	}}
	out := Block(blk, 0)
	assert.Equal(t, "{\n    var x;\n}", out)
}

func TestInitializationBlockFlattensToTwoLines(t *testing.T) {
	blk := &ast.Block{Stmts: []ast.Statement{
		&ast.InitializationBlock{Stmts: []ast.Statement{
			&ast.Declaration{Name: "x", Kind: ast.VarType},
			&ast.Substitution{Var: "x", Rhe: &ast.Number{Value: "0"}, IsArtificial: true},
		}},
	}}
	out := Block(blk, 0)
	assert.Equal(t, "{\n    var x;\n    x = 0;\n}", out)
}

func TestIfThenElsePrints(t *testing.T) {
	s := &ast.IfThenElse{
		Cond: varRef("cond"),
		Then: &ast.Block{Stmts: []ast.Statement{&ast.Return{Value: &ast.Number{Value: "1"}}}},
		Else: &ast.Block{Stmts: []ast.Statement{&ast.Return{Value: &ast.Number{Value: "2"}}}},
	}
	out := Statement(s, 0)
	assert.Contains(t, out, "if (cond) {\n")
	assert.Contains(t, out, "else {\n")
}

func TestAccessPathRendersSuffixes(t *testing.T) {
	sub := &ast.Substitution{
		Var: "arr",
		Access: []ast.Access{
			&ast.ArrayAccess{Index: &ast.Number{Value: "0"}},
			&ast.ComponentAccess{Field: "out"},
		},
		Rhe: &ast.Number{Value: "5"},
	}
	assert.Equal(t, "arr[0].out = 5;\n", Statement(sub, 0))
}

func TestExprPrecedenceParensAreExplicit(t *testing.T) {
	e := &ast.InfixOp{
		Op:  "+",
		Lhe: varRef("a"),
		Rhe: &ast.InfixOp{Op: "*", Lhe: varRef("b"), Rhe: varRef("c")},
	}
	assert.Equal(t, "(a + (b * c))", Expr(e))
}

func TestLogCallMixesStringAndExprArgs(t *testing.T) {
	call := &ast.LogCall{Args: []ast.LogArgument{
		ast.LogStr{Value: "x ="},
		ast.LogExpr{Value: varRef("x")},
	}}
	assert.Equal(t, `log("x =", x);`, logCall(call))
}

func TestAnonymousComponentInstantiation(t *testing.T) {
	c := &ast.AnonymousComp{
		Name:    "Tmpl",
		Params:  []ast.Expr{&ast.Number{Value: "1"}},
		Signals: []ast.Expr{varRef("s")},
	}
	assert.Equal(t, "Tmpl(1)(s)", Expr(c))
}

func TestUniformArrayAndTuple(t *testing.T) {
	ua := &ast.UniformArray{Value: &ast.Number{Value: "0"}, Dimension: &ast.Number{Value: "4"}}
	assert.Equal(t, "[0; 4]", Expr(ua))

	tup := &ast.Tuple{Values: []ast.Expr{&ast.Number{Value: "1"}, &ast.Number{Value: "2"}}}
	assert.Equal(t, "(1, 2)", Expr(tup))
}
