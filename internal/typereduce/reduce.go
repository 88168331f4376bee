package typereduce

import (
	"circuitlint/internal/ast"
	cerrors "circuitlint/internal/errors"
)

// BodyDescriptor mirrors internal/deadstore's descriptor contract: this
// pass and the dead-store pass run over the same Function/Template shapes,
// but type-reduction runs first and only needs mutable access to the body
// it stamps.
type BodyDescriptor interface {
	GetMutBody() ast.Statement
	GetNameOfParams() []string
	GetName() string
}

// Reducer walks a function or template body once, stamping every Variable
// occurrence's Meta.TypeReduction according to the declaration that bound
// its name, and reports any identifier with no enclosing declaration.
type Reducer struct {
	scope    *symbolTable
	filename string
	fileID   int
}

// NewReducer returns a reducer reporting undefined identifiers against the
// given file.
func NewReducer(filename string, fileID int) *Reducer {
	return &Reducer{filename: filename, fileID: fileID}
}

// ReduceBody seeds a root scope with paramNames (as plain variables — the
// language's templates declare signal/component parameters explicitly as
// Declaration statements inside the body, not via the parameter list) and
// stamps every Variable and Substitution it finds. It returns one
// CompilerError per identifier that resolves to no enclosing declaration.
func (r *Reducer) ReduceBody(body ast.Statement, paramNames []string) []cerrors.CompilerError {
	r.scope = newSymbolTable(nil)
	for _, name := range paramNames {
		r.scope.define(name, ast.ReducesToVariable)
	}
	var diags []cerrors.CompilerError
	r.walkStatement(body, &diags)
	return diags
}

func (r *Reducer) pushScope() { r.scope = newSymbolTable(r.scope) }
func (r *Reducer) popScope()  { r.scope = r.scope.parent }

func (r *Reducer) walkStatement(stmt ast.Statement, diags *[]cerrors.CompilerError) {
	switch s := stmt.(type) {
	case *ast.Block:
		r.pushScope()
		for _, child := range s.Stmts {
			r.walkStatement(child, diags)
		}
		r.popScope()

	case *ast.IfThenElse:
		r.walkExpr(s.Cond, diags)
		r.walkStatement(s.Then, diags)
		if s.Else != nil {
			r.walkStatement(s.Else, diags)
		}

	case *ast.While:
		r.walkExpr(s.Cond, diags)
		r.walkStatement(s.Body, diags)

	case *ast.Return:
		if s.Value != nil {
			r.walkExpr(s.Value, diags)
		}

	case *ast.InitializationBlock:
		for _, child := range s.Stmts {
			switch c := child.(type) {
			case *ast.Declaration:
				r.declare(c)
			case *ast.Substitution:
				r.stampSubstitution(c, diags)
			}
		}

	case *ast.Declaration:
		r.declare(s)

	case *ast.Substitution:
		r.stampSubstitution(s, diags)

	case *ast.UnderscoreSubstitution:
		r.walkExpr(s.Rhe, diags)

	case *ast.ConstraintEquality:
		r.walkExpr(s.Lhe, diags)
		r.walkExpr(s.Rhe, diags)

	case *ast.LogCall:
		for _, arg := range s.Args {
			if le, ok := arg.(ast.LogExpr); ok {
				r.walkExpr(le.Value, diags)
			}
		}

	case *ast.Assert:
		r.walkExpr(s.Arg, diags)
	}
}

func (r *Reducer) declare(decl *ast.Declaration) {
	r.scope.define(decl.Name, declKindToReduction(decl.Kind))
}

func (r *Reducer) stampSubstitution(sub *ast.Substitution, diags *[]cerrors.CompilerError) {
	r.walkExpr(sub.Rhe, diags)
	for _, acc := range sub.Access {
		if arr, ok := acc.(*ast.ArrayAccess); ok {
			r.walkExpr(arr.Index, diags)
		}
	}

	kind, ok := r.scope.lookup(sub.Var)
	if !ok {
		*diags = append(*diags, cerrors.UndefinedIdentifier(sub.Var, sub.Meta.Pos, nil))
		return
	}
	sub.Meta.TypeReduction = kind
}

func (r *Reducer) walkExpr(e ast.Expr, diags *[]cerrors.CompilerError) {
	if e == nil {
		return
	}
	switch n := e.(type) {
	case *ast.Variable:
		kind, ok := r.scope.lookup(n.Name)
		if !ok {
			*diags = append(*diags, cerrors.UndefinedIdentifier(n.Name, n.Meta.Pos, nil))
		} else {
			n.Meta.TypeReduction = kind
		}
		for _, acc := range n.Access {
			if a, ok := acc.(*ast.ArrayAccess); ok {
				r.walkExpr(a.Index, diags)
			}
		}
	case *ast.InfixOp:
		r.walkExpr(n.Lhe, diags)
		r.walkExpr(n.Rhe, diags)
	case *ast.PrefixOp:
		r.walkExpr(n.Rhe, diags)
	case *ast.ParallelOp:
		r.walkExpr(n.Rhe, diags)
	case *ast.InlineSwitchOp:
		r.walkExpr(n.Cond, diags)
		r.walkExpr(n.IfTrue, diags)
		r.walkExpr(n.IfFalse, diags)
	case *ast.Call:
		for _, arg := range n.Args {
			r.walkExpr(arg, diags)
		}
	case *ast.AnonymousComp:
		for _, p := range n.Params {
			r.walkExpr(p, diags)
		}
		for _, sg := range n.Signals {
			r.walkExpr(sg, diags)
		}
	case *ast.ArrayInLine:
		for _, v := range n.Values {
			r.walkExpr(v, diags)
		}
	case *ast.Tuple:
		for _, v := range n.Values {
			r.walkExpr(v, diags)
		}
	case *ast.UniformArray:
		r.walkExpr(n.Value, diags)
		r.walkExpr(n.Dimension, diags)
	case *ast.Number:
		// literal, nothing to resolve
	}
}

// Reduce runs type-reduction over a descriptor's body, seeding the scope
// with its parameter names.
func Reduce(d BodyDescriptor, filename string, fileID int) []cerrors.CompilerError {
	r := NewReducer(filename, fileID)
	return r.ReduceBody(d.GetMutBody(), d.GetNameOfParams())
}

var (
	_ BodyDescriptor = (*ast.Function)(nil)
	_ BodyDescriptor = (*ast.Template)(nil)
)
