package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"

	"yalcc/ast"
	"yalcc/collector"
	"yalcc/emitter"
	"yalcc/parser"
	"yalcc/token"
)

// replCmd is an interactive preview loop: the user types one or more
// YALCC instructions, and once the input is syntactically complete the
// loop wraps it in a throwaway program and prints the IR it lowers to.
// It plays the same role as the teacher's cmd_repl_compiled.go buffered
// multi-line loop (brace-balance tracking via isInputReady,
// allParseErrorsAtEOF-style "still typing" detection), but is rebuilt
// against github.com/chzyer/readline instead of bufio.Scanner: the
// teacher's go.mod already declares readline as a dependency, but no
// retrieved teacher source actually calls into it.
type replCmd struct{}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "Interactively preview IR for YALCC instructions" }
func (*replCmd) Usage() string {
	return `repl:
  Start an interactive session previewing IR for typed instructions.
`
}
func (*replCmd) SetFlags(f *flag.FlagSet) {}

func (*replCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rl, err := readline.New(">>> ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer rl.Close()

	var buffer strings.Builder
	for {
		if buffer.Len() == 0 {
			rl.SetPrompt(">>> ")
		} else {
			rl.SetPrompt("... ")
		}

		line, err := rl.Readline()
		if err != nil {
			return subcommands.ExitSuccess
		}
		if strings.TrimSpace(line) == "exit" && buffer.Len() == 0 {
			return subcommands.ExitSuccess
		}

		if buffer.Len() > 0 {
			buffer.WriteString("\n")
		}
		buffer.WriteString(line)
		source := buffer.String()

		tokens, err := scanSource(source)
		if err != nil {
			fmt.Println(err)
			buffer.Reset()
			continue
		}

		if !isInputReady(tokens) {
			continue
		}

		wrapped := "Prog repl Is " + source + " End"
		program, err := parseSource(wrapped)
		if err != nil {
			if wrappedTokens, scanErr := scanSource(wrapped); scanErr == nil && isAtEOF(err, wrappedTokens) {
				continue
			}
			fmt.Println(err)
			buffer.Reset()
			continue
		}

		printIR(program)
		buffer.Reset()
	}
}

func printIR(program *ast.Block) {
	vars := collector.Collect(program)
	var out strings.Builder
	if err := emitter.Emit(&out, program, vars); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Print(out.String())
}

// isInputReady reports whether tokens form a syntactically complete unit
// the REPL should try to parse now: braces balanced and the last
// non-EOS token isn't one that obviously expects more input.
func isInputReady(tokens []token.Token) bool {
	balance := 0
	for _, tok := range tokens {
		switch tok.Kind {
		case token.LBRACK:
			balance++
		case token.RBRACK:
			balance--
		}
	}
	if balance > 0 {
		return false
	}

	last := lastNonEOS(tokens)
	if last == nil {
		return true
	}

	switch last.Kind {
	case token.ASSIGN, token.PLUS, token.MINUS, token.TIMES, token.DIVIDE,
		token.EQUAL, token.SMALEQ, token.SMALLER, token.IMPLIES,
		token.LPAREN, token.LBRACK, token.IF, token.ELSE, token.WHILE,
		token.THEN, token.DO, token.PRINT, token.INPUT, token.PIPE:
		return false
	}
	return true
}

func lastNonEOS(tokens []token.Token) *token.Token {
	for i := len(tokens) - 1; i >= 0; i-- {
		if tokens[i].Kind != token.EOS {
			return &tokens[i]
		}
	}
	return nil
}

// isAtEOF reports whether err is a SyntaxError positioned at the EOS of
// tokens, the token stream of the wrapped program that was parsed — a
// sign the user simply hasn't finished typing rather than having made a
// mistake.
func isAtEOF(err error, tokens []token.Token) bool {
	syntaxErr, ok := err.(parser.SyntaxError)
	if !ok {
		return false
	}
	eos := tokens[len(tokens)-1]
	return syntaxErr.Line == eos.Line && syntaxErr.Column == eos.Column
}
