package deadstore

import (
	"circuitlint/internal/ast"
	cerrors "circuitlint/internal/errors"
)

// BuildWarnings constructs the diagnostic list for a final Useless set.
// Artificial, non-signal assignments are deleted but produce no warning.
func BuildWarnings(useless map[int]*AssignInfo) []cerrors.CompilerError {
	var warnings []cerrors.CompilerError
	for _, info := range useless {
		if info.ContainsSignal {
			warnings = append(warnings, cerrors.UselessSubstitution(info.VarName, info.Location, true, info.IsArtificial, info.IsConstant))
		}
		if !info.IsArtificial {
			warnings = append(warnings, cerrors.UselessSubstitution(info.VarName, info.Location, false, false, info.IsConstant))
		}
	}
	return warnings
}

// Rewrite deletes every Substitution in body whose elem_id is in useless.
// IfThenElse, While, and InitializationBlock recurse into their children but
// are never themselves dropped; Block retains only the children that
// survive rewrite.
func Rewrite(body ast.Statement, useless map[int]*AssignInfo) {
	rewriteStatement(body, useless)
}

// rewriteStatement returns false if stmt itself should be dropped by its
// parent Block, true otherwise. Only a Substitution can ever be dropped.
func rewriteStatement(stmt ast.Statement, useless map[int]*AssignInfo) bool {
	switch s := stmt.(type) {
	case *ast.Block:
		kept := s.Stmts[:0]
		for _, child := range s.Stmts {
			if rewriteStatement(child, useless) {
				kept = append(kept, child)
			}
		}
		s.Stmts = kept
		return true

	case *ast.IfThenElse:
		rewriteStatement(s.Then, useless)
		if s.Else != nil {
			rewriteStatement(s.Else, useless)
		}
		return true

	case *ast.While:
		rewriteStatement(s.Body, useless)
		return true

	case *ast.InitializationBlock:
		kept := s.Stmts[:0]
		for _, child := range s.Stmts {
			if rewriteStatement(child, useless) {
				kept = append(kept, child)
			}
		}
		s.Stmts = kept
		return true

	case *ast.Substitution:
		if len(s.Access) != 0 {
			return true
		}
		_, dead := useless[s.Meta.ElemID]
		return !dead

	default:
		return true
	}
}
