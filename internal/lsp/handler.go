package lsp

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"deadstore/internal/ast"
	"deadstore/internal/driver"
	"deadstore/internal/parser"
)

// Define the set of supported semantic token types (as required by the LSP spec)
var SemanticTokenTypes = []string{
	"function",
	"variable",
	"parameter",
	"number",
	"string",
	"keyword",
}

// Define the set of supported semantic token modifiers. Dead stores carry
// "deprecated" so editors strike them through.
var SemanticTokenModifiers = []string{
	"declaration",
	"modification",
	"deprecated",
}

// analysisTimeout bounds one analysis triggered by an edit.
const analysisTimeout = 5 * time.Second

type document struct {
	program *ast.Program
	result  *driver.Result
}

// Handler implements the LSP server handlers for dead-store analysis
type Handler struct {
	mu        sync.RWMutex
	documents map[string]*document
	driver    *driver.Driver
	log       commonlog.Logger
}

// NewHandler creates a handler that analyzes documents with a driver built
// from opts. Same-value findings are enabled unless opts turn them off.
func NewHandler(opts ...driver.Option) *Handler {
	log := commonlog.GetLogger("deadstore.lsp")
	opts = append([]driver.Option{driver.WithValueTracking(true), driver.WithLogger(log)}, opts...)
	return &Handler{
		documents: make(map[string]*document),
		driver:    driver.New(opts...),
		log:       log,
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	h.log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true), // notify on open/close events
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true), // support full-document semantic token requests
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	h.log.Info("initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *Handler) Shutdown(ctx *glsp.Context) error {
	h.log.Info("shutdown")
	return nil
}

func (h *Handler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	h.log.Debugf("trace set to %s", params.Value)
	return nil
}

// TextDocumentDidOpen analyzes the opened document and publishes its diagnostics
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	h.log.Debugf("opened %s", params.TextDocument.URI)

	diagnostics, err := h.update(params.TextDocument.URI, params.TextDocument.Text)
	if err != nil {
		return err
	}
	h.publish(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidChange re-analyzes the document on every full-text change
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	h.log.Debugf("changed %s", params.TextDocument.URI)

	text, ok := lastText(params.ContentChanges)
	if !ok {
		return nil
	}
	diagnostics, err := h.update(params.TextDocument.URI, text)
	if err != nil {
		return err
	}
	h.publish(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidClose forgets the document and clears its diagnostics
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	h.log.Debugf("closed %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.documents, params.TextDocument.URI)
	h.mu.Unlock()

	h.publish(ctx, params.TextDocument.URI, nil)
	return nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *Handler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	h.mu.RLock()
	doc, ok := h.documents[params.TextDocument.URI]
	h.mu.RUnlock()
	if !ok {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}

	tokens := collectSemanticTokens(doc.program, doc.result.Entries)

	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32

	// Encode tokens into LSP wire format (using delta-line, delta-start compression)
	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{
		Data: data,
	}, nil
}

// update parses and analyzes text. Syntax errors are returned as
// diagnostics without running the analysis.
func (h *Handler) update(rawURI protocol.DocumentUri, text string) ([]protocol.Diagnostic, error) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	program, parseErrs, scanErrs := parser.ParseSource(path, text)
	if len(parseErrs) > 0 || len(scanErrs) > 0 {
		diagnostics := append(ConvertScanErrors(scanErrs), ConvertParseErrors(parseErrs)...)
		return diagnostics, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), analysisTimeout)
	defer cancel()

	result, err := h.driver.Run(ctx, program)
	if err != nil {
		h.log.Errorf("analysis of %s failed: %s", path, err)
		return []protocol.Diagnostic{makeDiagnostic(1, 1, 1, protocol.DiagnosticSeverityError, "", err.Error())}, nil
	}

	h.mu.Lock()
	h.documents[rawURI] = &document{program: program, result: result}
	h.mu.Unlock()

	return ConvertResult(result), nil
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) to get C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	// Normalize to platform-specific separators
	return filepath.FromSlash(path), nil
}

// lastText returns the document text after a full-sync change.
func lastText(changes []any) (string, bool) {
	for i := len(changes) - 1; i >= 0; i-- {
		switch c := changes[i].(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			return c.Text, true
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				return c.Text, true
			}
		}
	}
	return "", false
}

func (h *Handler) publish(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	h.log.Debugf("publishing %d diagnostics for %s", len(diagnostics), uri)

	if ctx == nil || ctx.Notify == nil {
		return
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
