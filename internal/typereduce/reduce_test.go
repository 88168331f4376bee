package typereduce

import (
	"testing"

	"circuitlint/internal/ast"

	"github.com/stretchr/testify/assert"
)

type stubDescriptor struct {
	body   ast.Statement
	params []string
}

func (d *stubDescriptor) GetMutBody() ast.Statement { return d.body }
func (d *stubDescriptor) GetNameOfParams() []string { return d.params }
func (d *stubDescriptor) GetName() string           { return "stub" }

func TestReduceStampsDeclaredKinds(t *testing.T) {
	sigDecl := &ast.Declaration{Name: "s", Kind: ast.SignalType}
	varDecl := &ast.Declaration{Name: "t", Kind: ast.VarType}
	use := &ast.Variable{Name: "s"}
	sub := &ast.Substitution{Var: "t", Rhe: use}

	body := &ast.Block{Stmts: []ast.Statement{sigDecl, varDecl, sub}}

	diags := Reduce(&stubDescriptor{body: body}, "t.circ", 0)

	assert.Empty(t, diags)
	assert.Equal(t, ast.ReducesToSignal, use.Meta.TypeReduction)
	assert.Equal(t, ast.ReducesToVariable, sub.Meta.TypeReduction)
}

func TestReduceReportsUndefinedIdentifier(t *testing.T) {
	use := &ast.Variable{Name: "missing"}
	body := &ast.Block{Stmts: []ast.Statement{
		&ast.Return{Value: use},
	}}

	diags := Reduce(&stubDescriptor{body: body}, "t.circ", 0)

	assert.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "missing")
}

func TestReduceScopeShadowing(t *testing.T) {
	outer := &ast.Declaration{Name: "t", Kind: ast.VarType}
	innerDecl := &ast.Declaration{Name: "t", Kind: ast.SignalType}
	innerUse := &ast.Variable{Name: "t"}
	inner := &ast.Block{Stmts: []ast.Statement{innerDecl, &ast.Return{Value: innerUse}}}
	outerUse := &ast.Variable{Name: "t"}

	body := &ast.Block{Stmts: []ast.Statement{outer, inner, &ast.Return{Value: outerUse}}}

	diags := Reduce(&stubDescriptor{body: body}, "t.circ", 0)

	assert.Empty(t, diags)
	assert.Equal(t, ast.ReducesToSignal, innerUse.Meta.TypeReduction)
	assert.Equal(t, ast.ReducesToVariable, outerUse.Meta.TypeReduction)
}
