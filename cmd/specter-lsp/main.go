// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"specter/internal/lsp"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "specter" // Name identifier for the language server

var (
	version = "0.0.1"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	specterHandler := lsp.NewSpecterHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     specterHandler.Initialize,
		Initialized:                    specterHandler.Initialized,
		Shutdown:                       specterHandler.Shutdown,
		SetTrace:                       specterHandler.SetTrace,
		TextDocumentDidOpen:            specterHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           specterHandler.TextDocumentDidClose,
		TextDocumentDidChange:          specterHandler.TextDocumentDidChange,
		TextDocumentCompletion:         specterHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: specterHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Printf("Starting Specter LSP server %s...\n", version)

	// Serve over standard input/output (used by most editors for LSP)
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting Specter LSP server:", err)
		os.Exit(1)
	}
}
