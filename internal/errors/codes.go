package errors

// Error codes used across the toolchain in error messages and documentation.
//
// Error code ranges:
// E0001-E0099: Lexer/parser errors
// E0100-E0199: Type-reduction errors
// W0001-W0099: Warning codes

const (
	// E0001: Unexpected token / malformed source
	ErrorUnexpectedToken = "E0001"

	// E0002: Unterminated string or comment
	ErrorUnterminatedLiteral = "E0002"

	// E0003: Malformed number literal
	ErrorMalformedNumber = "E0003"

	// E0004: Expected a specific token, found another
	ErrorExpectedToken = "E0004"

	// E0005: Duplicate declaration in the same scope
	ErrorDuplicateDeclaration = "E0005"

	// E0100: Identifier used but never declared in any enclosing scope
	ErrorUndefinedIdentifier = "E0100"

	// Warning codes (W-prefixed, reserved range W0001-W0099)

	// W0001: A local-variable assignment is never read on any path before
	// the variable goes out of scope or is reassigned
	CodeUselessSubstitution = "W0001"
)

// GetErrorDescription returns a human-readable description of the error code.
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnexpectedToken:
		return "Unexpected token while scanning source"
	case ErrorUnterminatedLiteral:
		return "String or comment literal was never closed"
	case ErrorMalformedNumber:
		return "Number literal could not be parsed"
	case ErrorExpectedToken:
		return "Parser expected a different token here"
	case ErrorDuplicateDeclaration:
		return "Duplicate declaration in the same scope"
	case ErrorUndefinedIdentifier:
		return "Identifier is used but not declared in any enclosing scope"
	case CodeUselessSubstitution:
		return "Assignment is never read before being overwritten or leaving scope"
	default:
		return "Unknown error code"
	}
}

// IsWarning returns true if the error code represents a warning rather than
// an error.
func IsWarning(code string) bool {
	return len(code) > 0 && code[0] == 'W'
}

// GetErrorCategory returns the category of the error based on its code.
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0001" && code < "E0100":
		return "Lexer/Parser"
	case code >= "E0100" && code < "E0200":
		return "Type Reduction"
	case len(code) > 0 && code[0] == 'W':
		return "Warning"
	default:
		return "Unknown"
	}
}
