package deadstore

import "circuitlint/internal/ast"

// BodyDescriptor lets AnalyzeFunction/AnalyzeTemplate take mutable access to
// a descriptor rather than a bare AST node, so the same pass works over
// Function and Template without caring which one it got.
type BodyDescriptor interface {
	GetBody() ast.Statement
	GetMutBody() ast.Statement
	GetNameOfParams() []string
	GetName() string
}

var (
	_ BodyDescriptor = (*ast.Function)(nil)
	_ BodyDescriptor = (*ast.Template)(nil)
)
