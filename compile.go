package main

import (
	"fmt"
	"io"
	"os"

	"yalcc/ast"
	"yalcc/collector"
	"yalcc/emitter"
	"yalcc/lexer"
	"yalcc/parser"
	"yalcc/token"
)

// compile runs the full pipeline — lexer, parser, collector, emitter —
// over the source file at path, writing the resulting IR module to out.
// Any failure returns a single error; the caller is responsible for
// printing it to stderr and choosing the exit status.
func compile(path string, out io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	program, err := parseSource(string(data))
	if err != nil {
		return err
	}

	vars := collector.Collect(program)
	return emitter.Emit(out, program, vars)
}

// parseSource runs the lexer then the parser over source, returning the
// parsed top-level block.
func parseSource(source string) (*ast.Block, error) {
	lex := lexer.New(source)
	tokens, err := lex.Scan()
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens)
}

// scanSource runs only the lexer, for the tokens dev verb.
func scanSource(source string) ([]token.Token, error) {
	lex := lexer.New(source)
	return lex.Scan()
}
