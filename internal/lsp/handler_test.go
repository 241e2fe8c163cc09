package lsp_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"deadstore/internal/diag"
	"deadstore/internal/lsp"
	"deadstore/internal/samples"
)

const uri = "file:///work/test.js"

type published struct {
	params []*protocol.PublishDiagnosticsParams
}

func (p *published) context() *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if method == protocol.ServerTextDocumentPublishDiagnostics {
				p.params = append(p.params, params.(*protocol.PublishDiagnosticsParams))
			}
		},
	}
}

func (p *published) last(t *testing.T) []protocol.Diagnostic {
	t.Helper()
	require.NotEmpty(t, p.params, "no diagnostics were published")
	return p.params[len(p.params)-1].Diagnostics
}

func open(t *testing.T, handler *lsp.Handler, ctx *glsp.Context, text string) {
	t.Helper()
	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "javascript", Text: text},
	})
	require.NoError(t, err)
}

func TestDidOpenPublishesDeadStores(t *testing.T) {
	handler := lsp.NewHandler()
	sink := &published{}

	src, err := samples.Source("5.js")
	require.NoError(t, err)
	open(t, handler, sink.context(), src)

	var warnings, infos []protocol.Diagnostic
	for _, d := range sink.last(t) {
		switch *d.Severity {
		case protocol.DiagnosticSeverityWarning:
			warnings = append(warnings, d)
		case protocol.DiagnosticSeverityInformation:
			infos = append(infos, d)
		}
	}

	require.Len(t, warnings, 4)
	assert.Equal(t, diag.WarningDeadStore, warnings[0].Code.Value)
	assert.True(t, strings.HasPrefix(warnings[0].Message, "value assigned to 'fib1' is never read"))
	assert.Equal(t, protocol.UInteger(4), warnings[0].Range.Start.Line)

	require.Len(t, infos, 1)
	assert.Equal(t, "identifier y always has the same value: 7", infos[0].Message)
}

func TestSyntaxErrorsArePublished(t *testing.T) {
	handler := lsp.NewHandler()
	sink := &published{}

	open(t, handler, sink.context(), "let = 1")

	diagnostics := sink.last(t)
	require.NotEmpty(t, diagnostics)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diagnostics[0].Severity)
	assert.Equal(t, "deadstore", *diagnostics[0].Source)
}

func TestDidChangeAndClose(t *testing.T) {
	handler := lsp.NewHandler()
	sink := &published{}
	ctx := sink.context()

	open(t, handler, ctx, "let a = 1\na = 2\nprint(a)")
	assert.Empty(t, sink.last(t))

	err := handler.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "let a = 1\na = 2"}},
	})
	require.NoError(t, err)
	require.Len(t, sink.last(t), 1)

	err = handler.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	assert.NotNil(t, sink.last(t))
	assert.Empty(t, sink.last(t))
}

func TestFailedVectorsArePublished(t *testing.T) {
	handler := lsp.NewHandler()
	sink := &published{}

	open(t, handler, sink.context(), "let a = 1\nif (a) {\n  print(missing)\n}")

	var errs []protocol.Diagnostic
	for _, d := range sink.last(t) {
		if *d.Severity == protocol.DiagnosticSeverityError {
			errs = append(errs, d)
		}
	}
	require.Len(t, errs, 1)
	assert.Equal(t, diag.ErrorUndeclaredVariable, errs[0].Code.Value)
	assert.Equal(t, protocol.UInteger(2), errs[0].Range.Start.Line)
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	handler := lsp.NewHandler()
	sink := &published{}
	ctx := sink.context()

	open(t, handler, ctx, "let a = 1\nlet b = a")

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err, "TextDocumentSemanticTokensFull returned error")
	require.NotNil(t, tokens, "Returned tokens should not be nil")

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err, "Failed to decode semantic tokens")
	require.Len(t, decoded, 4)

	assertToken(t, &decoded[0], 1, 5, 1, "variable", []string{"declaration"})
	assertToken(t, &decoded[1], 1, 9, 1, "number", nil)
	assertToken(t, &decoded[2], 2, 5, 1, "variable", []string{"declaration", "deprecated"})
	assertToken(t, &decoded[3], 2, 9, 1, "variable", nil)
}

func TestSemanticTokensForUnknownDocument(t *testing.T) {
	handler := lsp.NewHandler()
	tokens, err := handler.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///nowhere.js"},
	})
	require.NoError(t, err)
	assert.Empty(t, tokens.Data)
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1, // LSP uses 0-based indexing
			Char:      char + 1, // LSP uses 0-based indexing
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	require.Equal(t, expectedLine, token.Line, "line mismatch (expected line %d)", expectedLine)
	require.Equal(t, expectedChar, token.Char, "char mismatch (expected char %d)", expectedChar)
	require.Equal(t, expectedLength, token.Length, "length mismatch")
	require.Equal(t, expectedType, token.Type, "type mismatch")
	require.ElementsMatch(t, expectedModifiers, token.Modifiers, "modifiers mismatch")
}
