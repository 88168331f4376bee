package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"circuitlint/internal/lsp"
)

const lsName = "circuit-deadstore"

var (
	version = "0.1.0"
	handler protocol.Handler
)

func main() {
	commonlog.Configure(1, nil)

	circuitHandler := lsp.NewCircuitHandler()

	handler = protocol.Handler{
		Initialize:            circuitHandler.Initialize,
		Initialized:           circuitHandler.Initialized,
		Shutdown:              circuitHandler.Shutdown,
		TextDocumentDidOpen:   circuitHandler.TextDocumentDidOpen,
		TextDocumentDidClose:  circuitHandler.TextDocumentDidClose,
		TextDocumentDidChange: circuitHandler.TextDocumentDidChange,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("starting circuit-deadstore LSP server", version)

	if err := s.RunStdio(); err != nil {
		log.Println("error starting circuit-deadstore LSP server:", err)
		os.Exit(1)
	}
}
