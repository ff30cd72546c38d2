// Command yalcc is a one-shot compiler: it reads one YALCC source file
// and emits a semantically equivalent LLVM IR textual module on standard
// output, with diagnostics on standard error and a non-zero exit on any
// failure (spec §6.2). Bare invocation, `yalcc <path>`, is the whole
// contract; a handful of additional subcommands (tokens, ast, repl),
// built with github.com/google/subcommands the same way the teacher
// package wires its own verbs, exist only for development introspection
// and are never required to satisfy the CLI contract.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// devVerbs are the registered subcommand names. Any other first argument
// is treated as the bare `<path>` contract's positional source path,
// never as an unknown verb.
var devVerbs = map[string]bool{
	"tokens":   true,
	"ast":      true,
	"repl":     true,
	"help":     true,
	"commands": true,
	"flags":    true,
}

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&tokensCmd{}, "")
	subcommands.Register(&astCmd{}, "")
	subcommands.Register(&replCmd{}, "")

	if len(os.Args) >= 2 && devVerbs[os.Args[1]] {
		flag.Parse()
		os.Exit(int(subcommands.Execute(context.Background())))
	}

	os.Exit(runCompile(os.Args[1:]))
}

// runCompile implements the bare CLI contract: exactly one positional
// argument, the source path. It emits IR to stdout, diagnostics to
// stderr, and returns 0 on success or 1 on any error.
func runCompile(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: yalcc <path>")
		return 1
	}
	if err := compile(args[0], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
