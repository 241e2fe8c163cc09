package parser

import (
	"fmt"
	"os"
	"strings"

	"deadstore/internal/ast"
)

// ParseSource scans and parses a script. The returned program is never nil;
// callers decide what to do when either error slice is non-empty.
func ParseSource(path string, source string) (*ast.Program, []ParseError, []ScanError) {
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()

	parser := NewParser(path, tokens)
	program := parser.ParseProgram()
	program.Comments = parser.makeComments(scanner.Comments())

	return program, parser.errors, scanner.errors
}

// ParseFile reads path and parses its contents.
func ParseFile(path string) (*ast.Program, []ParseError, []ScanError, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read file: %w", err)
	}
	program, parseErrs, scanErrs := ParseSource(path, string(source))
	return program, parseErrs, scanErrs, nil
}

func (p *Parser) makeComments(tokens []Token) []*ast.Comment {
	comments := make([]*ast.Comment, 0, len(tokens))
	for _, tok := range tokens {
		end := p.makeEndPos(tok)
		if n := strings.Count(tok.Lexeme, "\n"); n > 0 {
			end.Line += n
			end.Column = len(tok.Lexeme) - strings.LastIndex(tok.Lexeme, "\n")
		}
		comments = append(comments, &ast.Comment{
			Pos:    p.makePos(tok),
			EndPos: end,
			Text:   tok.Lexeme,
		})
	}
	return comments
}
