package errors

import (
	"fmt"
	"strings"

	"circuitlint/internal/ast"
)

// SemanticErrorBuilder provides a fluent interface for building diagnostics
// with suggestions and notes attached.
type SemanticErrorBuilder struct {
	err CompilerError
}

// NewSemanticError starts a new error-level diagnostic.
func NewSemanticError(code, message string, pos ast.Position) *SemanticErrorBuilder {
	return &SemanticErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// NewSemanticWarning starts a new warning-level diagnostic.
func NewSemanticWarning(code, message string, pos ast.Position) *SemanticErrorBuilder {
	return &SemanticErrorBuilder{
		err: CompilerError{
			Level:    Warning,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

func (b *SemanticErrorBuilder) WithLength(length int) *SemanticErrorBuilder {
	b.err.Length = length
	return b
}

func (b *SemanticErrorBuilder) WithSuggestion(message string) *SemanticErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

func (b *SemanticErrorBuilder) WithNote(note string) *SemanticErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

func (b *SemanticErrorBuilder) WithHelp(help string) *SemanticErrorBuilder {
	b.err.HelpText = help
	return b
}

func (b *SemanticErrorBuilder) Build() CompilerError {
	return b.err
}

// UndefinedIdentifier reports a name with no binding in any enclosing scope.
func UndefinedIdentifier(name string, pos ast.Position, similarNames []string) CompilerError {
	builder := NewSemanticError(ErrorUndefinedIdentifier, fmt.Sprintf("undefined identifier '%s'", name), pos).
		WithLength(len(name))

	if len(similarNames) > 0 {
		if len(similarNames) == 1 {
			builder = builder.WithSuggestion(fmt.Sprintf("did you mean '%s'?", similarNames[0]))
		} else {
			builder = builder.WithSuggestion(fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similarNames, "', '")))
		}
	} else {
		builder = builder.WithNote("variables, signals, components, and tags must be declared before use")
	}

	return builder.Build()
}

// DuplicateDeclaration reports a name already bound in the same scope.
func DuplicateDeclaration(name string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorDuplicateDeclaration, fmt.Sprintf("duplicate declaration: %s", name), pos).
		WithSuggestion(fmt.Sprintf("rename the duplicate '%s' to a unique name", name)).
		WithNote("identifiers must be unique within their scope").
		Build()
}

// ExpectedToken reports a parse-time expectation mismatch.
func ExpectedToken(expected, found string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorExpectedToken, fmt.Sprintf("expected %s, found %s", expected, found), pos).
		Build()
}

// UselessSubstitution reports a Substitution whose value is never read
// before being overwritten or falling out of scope.
//
// signalContent, artificial, and isConstant independently control which
// notes are attached; a single assignment can earn more than one. isConstant
// only affects wording when artificial is false: a constant that was never
// read still gets the "However, it is a constant" suffix on its
// not-artificial note.
func UselessSubstitution(varName string, pos ast.Position, signalContent, artificial, isConstant bool) CompilerError {
	builder := NewSemanticWarning(CodeUselessSubstitution,
		fmt.Sprintf("value assigned to '%s' is never used", varName), pos).
		WithLength(len(varName)).
		WithSuggestion("remove this assignment if the value is unused").
		WithSuggestion(fmt.Sprintf("prefix the left-hand side with an underscore: '_ = %s'", varName))

	if signalContent {
		builder = builder.WithNote("the discarded value is computed from a signal; removing it does not change which constraints are emitted")
	}
	if !artificial {
		note := "this assignment was written in the source, not synthesized by the compiler"
		if isConstant {
			note += ". However, it is a constant"
		}
		builder = builder.WithNote(note)
	}

	return builder.WithHelp("dead assignments are removed by the compiler before constraint generation").Build()
}
