// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"deadstore/internal/lsp"
)

const lsName = "deadstore" // Name identifier for the language server

var handler protocol.Handler // Protocol handler instance (wired up below)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	deadstoreHandler := lsp.NewHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     deadstoreHandler.Initialize,
		Initialized:                    deadstoreHandler.Initialized,
		Shutdown:                       deadstoreHandler.Shutdown,
		SetTrace:                       deadstoreHandler.SetTrace,
		TextDocumentDidOpen:            deadstoreHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           deadstoreHandler.TextDocumentDidClose,
		TextDocumentDidChange:          deadstoreHandler.TextDocumentDidChange,
		TextDocumentSemanticTokensFull: deadstoreHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting deadstore LSP server...")

	// Editors talk to the server over stdin/stdout
	if err := s.RunStdio(); err != nil {
		log.Println("Error starting deadstore LSP server:", err)
		os.Exit(1)
	}
}
