package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	cerrors "circuitlint/internal/errors"
)

// ConvertDiagnostics transforms the pipeline's CompilerErrors (parse errors,
// undefined-identifier errors, dead-store warnings) into LSP diagnostics.
func ConvertDiagnostics(diags []cerrors.CompilerError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, d := range diags {
		length := d.Length
		if length <= 0 {
			length = 1
		}

		diagnostic := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(max0(d.Position.Line - 1)),
					Character: uint32(max0(d.Position.Column - 1)),
				},
				End: protocol.Position{
					Line:      uint32(max0(d.Position.Line - 1)),
					Character: uint32(max0(d.Position.Column - 1 + length)),
				},
			},
			Severity: ptrSeverity(severityOf(d.Level)),
			Source:   ptrString("circuit-deadstore"),
			Message:  codePrefix(d.Code) + d.Message,
		}
		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

func severityOf(level cerrors.ErrorLevel) protocol.DiagnosticSeverity {
	switch level {
	case cerrors.Warning:
		return protocol.DiagnosticSeverityWarning
	case cerrors.Note:
		return protocol.DiagnosticSeverityInformation
	case cerrors.Help:
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityError
	}
}

func codePrefix(code string) string {
	if code == "" {
		return ""
	}
	return "[" + code + "] "
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
