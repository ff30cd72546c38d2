package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// tokensCmd dumps the token stream a source file lexes to, one token per
// line. It is this repository's analogue of the teacher's "emit" verb:
// introspection tooling over an intermediate pipeline stage, never part
// of the compile contract itself.
type tokensCmd struct{}

func (*tokensCmd) Name() string     { return "tokens" }
func (*tokensCmd) Synopsis() string { return "Dump the token stream for a source file" }
func (*tokensCmd) Usage() string {
	return `tokens <file>:
  Lex a source file and print its token stream.
`
}
func (*tokensCmd) SetFlags(f *flag.FlagSet) {}

func (*tokensCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "file not provided")
		return subcommands.ExitUsageError
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		return subcommands.ExitFailure
	}
	tokens, err := scanSource(string(data))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	for _, tok := range tokens {
		fmt.Printf("%-10s line=%-4d column=%-4d %v\n", tok.Kind, tok.Line, tok.Column, tok.Value)
	}
	return subcommands.ExitSuccess
}
