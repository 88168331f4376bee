package deadstore

import "circuitlint/internal/ast"

// ReadSet collects every Variable{name} subterm whose type-reduction is
// ReducesToVariable, recursing through all subexpressions. ArrayAccess
// indices are traversed too, so an index counts as a read of whatever it
// names.
func ReadSet(e ast.Expr) map[string]bool {
	names := make(map[string]bool)
	walkExpr(e, names)
	return names
}

func walkExpr(e ast.Expr, names map[string]bool) {
	if e == nil {
		return
	}
	switch n := e.(type) {
	case *ast.Variable:
		if n.Meta.TypeReduction == ast.ReducesToVariable {
			names[n.Name] = true
		}
		for _, acc := range n.Access {
			if a, ok := acc.(*ast.ArrayAccess); ok {
				walkExpr(a.Index, names)
			}
		}
	case *ast.InfixOp:
		walkExpr(n.Lhe, names)
		walkExpr(n.Rhe, names)
	case *ast.PrefixOp:
		walkExpr(n.Rhe, names)
	case *ast.ParallelOp:
		walkExpr(n.Rhe, names)
	case *ast.InlineSwitchOp:
		walkExpr(n.Cond, names)
		walkExpr(n.IfTrue, names)
		walkExpr(n.IfFalse, names)
	case *ast.Call:
		for _, arg := range n.Args {
			walkExpr(arg, names)
		}
	case *ast.AnonymousComp:
		for _, p := range n.Params {
			walkExpr(p, names)
		}
		for _, s := range n.Signals {
			walkExpr(s, names)
		}
	case *ast.ArrayInLine:
		for _, v := range n.Values {
			walkExpr(v, names)
		}
	case *ast.Tuple:
		for _, v := range n.Values {
			walkExpr(v, names)
		}
	case *ast.UniformArray:
		walkExpr(n.Value, names)
		walkExpr(n.Dimension, names)
	case *ast.Number:
		// no subterms
	}
}

// ContainsSignal reports whether any Variable subterm has type-reduction
// ReducesToSignal, short-circuiting on the first hit.
func ContainsSignal(e ast.Expr) bool {
	if e == nil {
		return false
	}
	switch n := e.(type) {
	case *ast.Variable:
		if n.Meta.TypeReduction == ast.ReducesToSignal {
			return true
		}
		for _, acc := range n.Access {
			if a, ok := acc.(*ast.ArrayAccess); ok && ContainsSignal(a.Index) {
				return true
			}
		}
		return false
	case *ast.InfixOp:
		return ContainsSignal(n.Lhe) || ContainsSignal(n.Rhe)
	case *ast.PrefixOp:
		return ContainsSignal(n.Rhe)
	case *ast.ParallelOp:
		return ContainsSignal(n.Rhe)
	case *ast.InlineSwitchOp:
		return ContainsSignal(n.Cond) || ContainsSignal(n.IfTrue) || ContainsSignal(n.IfFalse)
	case *ast.Call:
		for _, arg := range n.Args {
			if ContainsSignal(arg) {
				return true
			}
		}
		return false
	case *ast.AnonymousComp:
		for _, p := range n.Params {
			if ContainsSignal(p) {
				return true
			}
		}
		for _, s := range n.Signals {
			if ContainsSignal(s) {
				return true
			}
		}
		return false
	case *ast.ArrayInLine:
		for _, v := range n.Values {
			if ContainsSignal(v) {
				return true
			}
		}
		return false
	case *ast.Tuple:
		for _, v := range n.Values {
			if ContainsSignal(v) {
				return true
			}
		}
		return false
	case *ast.UniformArray:
		return ContainsSignal(n.Value) || ContainsSignal(n.Dimension)
	case *ast.Number:
		return false
	default:
		return false
	}
}
