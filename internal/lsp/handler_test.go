package lsp_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"circuitlint/internal/lsp"
)

func writeTempCircuit(t *testing.T, source string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.circuit")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func TestTextDocumentDidOpenReportsDeadStoreWarning(t *testing.T) {
	source := `function f(a) {
    var x = a;
    x = a + 1;
    return x;
}
`
	path := writeTempCircuit(t, source)
	uri := "file://" + filepath.ToSlash(path)

	handler := lsp.NewCircuitHandler()

	var published []protocol.Diagnostic
	ctx := &glsp.Context{
		Notify: func(method string, params any) {
			if p, ok := params.(*protocol.PublishDiagnosticsParams); ok {
				published = p.Diagnostics
			}
		},
	}

	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri},
	})
	require.NoError(t, err)
	require.NotEmpty(t, published, "expected a dead-store warning diagnostic")
	require.Equal(t, protocol.DiagnosticSeverityWarning, *published[0].Severity)
}

func TestTextDocumentDidCloseClearsCachedCircuit(t *testing.T) {
	path := writeTempCircuit(t, "function f() {\n    return;\n}\n")
	uri := "file://" + filepath.ToSlash(path)

	handler := lsp.NewCircuitHandler()
	ctx := &glsp.Context{Notify: func(string, any) {}}

	require.NoError(t, handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri},
	}))

	err := handler.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
}
