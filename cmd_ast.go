package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"yalcc/ast"
)

// astCmd dumps a parsed program's AST as JSON. It plays the same role as
// the teacher's Visitor-based astPrinter, adapted to walk the closed
// tagged-union AST with a type switch instead of Accept/Visit
// double-dispatch, since there is no Visitor machinery left to call
// into.
type astCmd struct {
	out string
}

func (*astCmd) Name() string     { return "ast" }
func (*astCmd) Synopsis() string { return "Dump the parsed AST for a source file as JSON" }
func (*astCmd) Usage() string {
	return `ast <file>:
  Parse a source file and print its AST as JSON.
`
}

func (cmd *astCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.out, "out", "", "write the JSON to this file instead of stdout")
}

func (cmd *astCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	program, err := parseSource(string(data))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tree := blockToJSON(program)
	encoded, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode AST: %v\n", err)
		return subcommands.ExitFailure
	}

	if cmd.out == "" {
		fmt.Println(string(encoded))
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(cmd.out, encoded, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write AST file: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func blockToJSON(block *ast.Block) map[string]any {
	if block == nil {
		return nil
	}
	stmts := make([]map[string]any, 0, len(block.Statements))
	for _, stmt := range block.Statements {
		stmts = append(stmts, stmtToJSON(stmt))
	}
	return map[string]any{"type": "Block", "statements": stmts}
}

func stmtToJSON(stmt ast.Stmt) map[string]any {
	switch s := stmt.(type) {
	case *ast.Assign:
		return map[string]any{"type": "Assign", "name": s.Name, "expr": exprToJSON(s.Expr)}
	case *ast.If:
		node := map[string]any{"type": "If", "cond": exprToJSON(s.Cond), "then": blockToJSON(s.Then)}
		if s.Else != nil {
			node["else"] = blockToJSON(s.Else)
		}
		return node
	case *ast.While:
		return map[string]any{"type": "While", "cond": exprToJSON(s.Cond), "body": blockToJSON(s.Body)}
	case *ast.Print:
		return map[string]any{"type": "Print", "name": s.Name}
	case *ast.Input:
		return map[string]any{"type": "Input", "name": s.Name}
	case *ast.Block:
		return blockToJSON(s)
	default:
		return map[string]any{"type": "Unknown"}
	}
}

func exprToJSON(expr ast.Expr) map[string]any {
	switch e := expr.(type) {
	case *ast.Number:
		return map[string]any{"type": "Number", "value": e.Value}
	case *ast.VarRef:
		return map[string]any{"type": "VarRef", "name": e.Name}
	case *ast.BinOp:
		return map[string]any{
			"type":  "BinOp",
			"op":    string(e.Op),
			"left":  exprToJSON(e.Left),
			"right": exprToJSON(e.Right),
		}
	default:
		return map[string]any{"type": "Unknown"}
	}
}
