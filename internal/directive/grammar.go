package directive

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Grammar for the comment body after the comment markers are stripped:
//
//	deadstore:ignore
//	deadstore:ignore d, fib1 -- kept for the debugger
//	deadstore:ignore-file tmp
type Comment struct {
	Pos    lexer.Position
	Tool   string   `@"deadstore" ":"`
	Verb   string   `@"ignore" ( @"-" @"file" )?`
	Names  []string `( @Ident ( ","? @Ident )* )?`
	Reason string   `@Reason?`
}

var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Reason", Pattern: `--[^\n]*`},
	{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z0-9_$]*`},
	{Name: "Punct", Pattern: `[:,\-]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var parser = buildParser()

func buildParser() *participle.Parser[Comment] {
	return participle.MustBuild[Comment](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
}
