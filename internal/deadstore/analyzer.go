package deadstore

import "circuitlint/internal/ast"

// Analyzer walks one function or template body and produces a Registry
// whose final Useless set names every dead substitution.
//
// Env and the variable-id counter are owned by the Analyzer and are never
// cloned, even across IfThenElse branches or While unrollings: only the
// Registry's three-set state is cloned at a branch point. Each branch's own
// Block already pushes and pops its own frame, so the environment returns
// to its pre-branch bindings once a branch finishes; re-visiting the same
// Declaration on a second loop unrolling allocates a fresh variable-id,
// which is harmless because Registry dedups by elem_id, not by variable-id.
type Analyzer struct {
	env       *Env
	nextVarID int
}

// NewAnalyzer returns an analyzer with a single root environment frame.
func NewAnalyzer() *Analyzer {
	return &Analyzer{env: NewEnv()}
}

func (a *Analyzer) allocVarID() int {
	id := a.nextVarID
	a.nextVarID++
	return id
}

// AnalyzeBody seeds a dedicated frame with paramNames and walks body,
// returning the registry whose Useless set is the final answer. The
// parameter frame is popped (and scope-exited) after body has been walked,
// so a dead store to a parameter itself - e.g. `function f(n) { n = 5;
// return 0; }` - is retired into Useless like any other out-of-scope
// variable, instead of lingering Unknown past the end of the analysis.
func (a *Analyzer) AnalyzeBody(body ast.Statement, paramNames []string) *Registry {
	a.env.Push()
	for _, name := range paramNames {
		a.env.Add(name, a.allocVarID())
	}
	reg := NewRegistry()
	a.analyzeStatement(body, reg)
	ids := a.env.Pop()
	reg.ScopeExit(ids)
	return reg
}

func (a *Analyzer) analyzeStatement(stmt ast.Statement, reg *Registry) {
	switch s := stmt.(type) {
	case *ast.Block:
		a.env.Push()
		for _, child := range s.Stmts {
			a.analyzeStatement(child, reg)
		}
		ids := a.env.Pop()
		reg.ScopeExit(ids)

	case *ast.IfThenElse:
		reg.RecordRead(a.env, ReadSet(s.Cond))

		sElse := reg.Clone()
		a.analyzeStatement(s.Then, reg)
		if s.Else != nil {
			a.analyzeStatement(s.Else, sElse)
		}
		reg.Merge(sElse)

	case *ast.While:
		reg.RecordRead(a.env, ReadSet(s.Cond))

		s1 := reg.Clone()
		a.analyzeStatement(s.Body, s1)
		s1.RecordRead(a.env, ReadSet(s.Cond))

		s2 := s1.Clone()
		a.analyzeStatement(s.Body, s2)
		s2.RecordRead(a.env, ReadSet(s.Cond))

		reg.Merge(s1)
		reg.Merge(s2)

	case *ast.Return:
		if s.Value != nil {
			reg.RecordRead(a.env, ReadSet(s.Value))
		}

	case *ast.InitializationBlock:
		constants := make(map[string]bool)
		for _, child := range s.Stmts {
			if decl, ok := child.(*ast.Declaration); ok && decl.IsConstant {
				constants[decl.Name] = true
			}
		}
		for _, child := range s.Stmts {
			switch c := child.(type) {
			case *ast.Declaration:
				a.analyzeDeclaration(c)
			case *ast.Substitution:
				a.analyzeSubstitution(c, reg, constants[c.Var])
			default:
				panic("deadstore: InitializationBlock contains a statement that is neither Declaration nor Substitution")
			}
		}

	case *ast.Declaration:
		a.analyzeDeclaration(s)

	case *ast.Substitution:
		// a bare statement-level Substitution (outside an InitializationBlock)
		// was not declared constant by anything.
		a.analyzeSubstitution(s, reg, false)

	case *ast.UnderscoreSubstitution:
		// no elimination effect, the rhs is intentionally not scanned.

	case *ast.ConstraintEquality:
		reg.RecordRead(a.env, ReadSet(s.Lhe))
		reg.RecordRead(a.env, ReadSet(s.Rhe))

	case *ast.LogCall:
		for _, arg := range s.Args {
			if le, ok := arg.(ast.LogExpr); ok {
				reg.RecordRead(a.env, ReadSet(le.Value))
			}
		}

	case *ast.Assert:
		reg.RecordRead(a.env, ReadSet(s.Arg))

	default:
		// unrecognized statement kinds are silently ignored.
	}
}

func (a *Analyzer) analyzeDeclaration(decl *ast.Declaration) {
	if decl.Kind == ast.VarType {
		a.env.Add(decl.Name, a.allocVarID())
	}
}

// analyzeSubstitution scans the right-hand side (and any access-path
// indices) for reads, then records a full assignment when the substitution
// targets a plain variable with no access path. isConstant comes from the
// InitializationBlock that contains it, or false for a bare statement-level
// Substitution.
func (a *Analyzer) analyzeSubstitution(sub *ast.Substitution, reg *Registry, isConstant bool) {
	reg.RecordRead(a.env, ReadSet(sub.Rhe))
	for _, acc := range sub.Access {
		if arr, ok := acc.(*ast.ArrayAccess); ok {
			reg.RecordRead(a.env, ReadSet(arr.Index))
		}
	}

	if sub.Meta.TypeReduction != ast.ReducesToVariable || len(sub.Access) != 0 {
		return
	}

	varID, ok := a.env.Lookup(sub.Var)
	if !ok {
		panic("deadstore: substitution target '" + sub.Var + "' did not resolve in the environment")
	}

	reg.RecordAssignment(&AssignInfo{
		ID:             sub.Meta.ElemID,
		Var:            varID,
		VarName:        sub.Var,
		Location:       sub.Meta.Pos,
		FileID:         sub.Meta.FileID,
		ContainsSignal: ContainsSignal(sub.Rhe),
		IsArtificial:   sub.IsArtificial,
		IsConstant:     isConstant,
	})
}
