package lsp

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"circuitlint/internal/program"
)

// CircuitHandler implements the LSP server handlers for the circuit language,
// surfacing dead-store warnings (and parse/type errors) as diagnostics on
// every open or change notification.
type CircuitHandler struct {
	mu       sync.RWMutex
	content  map[string]string
	circuits map[string]*program.Circuit
}

// NewCircuitHandler creates and returns a new CircuitHandler instance.
func NewCircuitHandler() *CircuitHandler {
	return &CircuitHandler{
		content:  make(map[string]string),
		circuits: make(map[string]*program.Circuit),
	}
}

// Initialize responds to the LSP client's initialize request and advertises
// the server's capabilities.
func (h *CircuitHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("circuit-deadstore-lsp Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
		},
	}, nil
}

// Initialized is called after the client completes initialization.
func (h *CircuitHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("circuit-deadstore-lsp Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request.
func (h *CircuitHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("circuit-deadstore-lsp Shutdown")
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor.
func (h *CircuitHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("opened file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.recompile(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to compile: %w", err)
	}

	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor.
func (h *CircuitHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("closed file: %s\n", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	delete(h.circuits, path)

	return nil
}

// TextDocumentDidChange handles file change notifications from the editor.
func (h *CircuitHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("changed file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.recompile(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to compile: %w", err)
	}

	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// recompile reads the file from disk, runs the full pipeline, caches the
// resulting Circuit, and returns the diagnostics the client should see. The
// editor's in-memory buffer is not tracked separately: TextDocumentDidChange
// is registered Full, so the client always sends the complete text, and this
// handler re-reads the saved file rather than threading buffer contents
// through the notification (kept deliberately simple: this server has no
// unsaved-buffer story, matching the rest of this pipeline's file-based
// entry points).
func (h *CircuitHandler) recompile(rawURI protocol.DocumentUri) ([]protocol.Diagnostic, error) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	result := program.Compile(path, 0, string(content))

	h.mu.Lock()
	h.content[path] = string(content)
	h.circuits[path] = result.Circuit
	h.mu.Unlock()

	return ConvertDiagnostics(result.Diagnostics), nil
}

func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
