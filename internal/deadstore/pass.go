package deadstore

import (
	cerrors "circuitlint/internal/errors"
)

// AnalyzeFunction runs the dead-store pass over a function body: it
// computes the Useless set, deletes those substitutions from the mutable
// body, and returns the warnings the elimination produced.
func AnalyzeFunction(fn BodyDescriptor) []cerrors.CompilerError {
	return analyzeDescriptor(fn)
}

// AnalyzeTemplate is AnalyzeFunction's template counterpart; the pass itself
// does not distinguish the two beyond the descriptor they provide.
func AnalyzeTemplate(tmpl BodyDescriptor) []cerrors.CompilerError {
	return analyzeDescriptor(tmpl)
}

func analyzeDescriptor(d BodyDescriptor) []cerrors.CompilerError {
	analyzer := NewAnalyzer()
	reg := analyzer.AnalyzeBody(d.GetBody(), d.GetNameOfParams())

	if !reg.UnknownEmpty() {
		panic("deadstore: " + d.GetName() + " has an assignment left Unknown at top-level body end")
	}

	useless := reg.Useless()
	Rewrite(d.GetMutBody(), useless)
	return BuildWarnings(useless)
}
