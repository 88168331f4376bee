// Package program wires the front end together: scan, parse, stamp
// type-reductions, then run the dead-store pass over every function and
// template body, the way internal/semantic.Analyzer drives kanso's front end
// end to end.
package program

import (
	"circuitlint/internal/ast"
	"circuitlint/internal/deadstore"
	cerrors "circuitlint/internal/errors"
	"circuitlint/internal/parser"
	"circuitlint/internal/typereduce"
)

// Circuit is one compiled source file: its function and template
// declarations, after type-reduction stamping and dead-store rewriting.
type Circuit struct {
	Filename  string
	Functions []*ast.Function
	Templates []*ast.Template
}

// Result bundles a compiled Circuit with every diagnostic (parse errors,
// undefined-identifier errors, dead-store warnings) the pipeline produced.
type Result struct {
	Circuit     *Circuit
	Diagnostics []cerrors.CompilerError
}

// Compile runs the full front end over one named source file.
func Compile(filename string, fileID int, source string) *Result {
	prog, parseErrs := parser.ParseSource(filename, fileID, source)

	res := &Result{Circuit: &Circuit{Filename: filename, Functions: prog.Functions, Templates: prog.Templates}}
	for _, pe := range parseErrs {
		res.Diagnostics = append(res.Diagnostics, cerrors.NewSemanticError(cerrors.ErrorUnexpectedToken, pe.Message, pe.Position).Build())
	}

	for _, fn := range prog.Functions {
		res.Diagnostics = append(res.Diagnostics, compileBody(fn, filename, fileID)...)
	}
	for _, tmpl := range prog.Templates {
		res.Diagnostics = append(res.Diagnostics, compileBody(tmpl, filename, fileID)...)
	}

	return res
}

// bodyDescriptor is satisfied by both typereduce.BodyDescriptor and
// deadstore.BodyDescriptor: every circuit body shape the pipeline stages
// walk needs exactly this much of *ast.Function / *ast.Template.
type bodyDescriptor interface {
	GetBody() ast.Statement
	GetMutBody() ast.Statement
	GetNameOfParams() []string
	GetName() string
}

func compileBody(d bodyDescriptor, filename string, fileID int) []cerrors.CompilerError {
	typeDiags := typereduce.Reduce(d, filename, fileID)
	if len(typeDiags) > 0 {
		// An unresolved identifier leaves its Substitution/Variable stamped
		// with the zero-value TypeReduction (ReducesToVariable) despite never
		// having been declared, so the dead-store pass's own environment
		// would not recognize it either. That mismatch is exactly the
		// internal-inconsistency condition analyzeSubstitution asserts on;
		// running it over a body type-reduction already flagged as broken
		// would turn an ordinary undefined-identifier error into a panic, so
		// skip the dead-store pass and report only the type-reduction error.
		return typeDiags
	}

	return append(typeDiags, deadstoreAnalyze(d)...)
}

func deadstoreAnalyze(d bodyDescriptor) []cerrors.CompilerError {
	switch node := d.(type) {
	case *ast.Function:
		return deadstore.AnalyzeFunction(node)
	case *ast.Template:
		return deadstore.AnalyzeTemplate(node)
	default:
		return nil
	}
}
