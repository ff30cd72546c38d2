// Package collector implements the pre-pass that discovers every
// variable name assigned or read anywhere in a program, so the emitter
// can allocate every storage slot in the function prologue before any
// use. LLVM requires every alloca to dominate its uses; emitting all
// allocas in the entry block ahead of any control flow is the simplest
// way to satisfy dominance without tracking definition sites.
package collector

import "yalcc/ast"

// Collect performs a single structured descent over block and returns
// the set of variable names it assigns or reads. Insertion order is
// irrelevant; only membership matters, so the result is a set rather
// than a slice.
func Collect(block *ast.Block) map[string]struct{} {
	vars := make(map[string]struct{})
	collectBlock(block, vars)
	return vars
}

func collectBlock(block *ast.Block, vars map[string]struct{}) {
	if block == nil {
		return
	}
	for _, stmt := range block.Statements {
		collectStmt(stmt, vars)
	}
}

func collectStmt(stmt ast.Stmt, vars map[string]struct{}) {
	switch s := stmt.(type) {
	case *ast.Block:
		collectBlock(s, vars)
	case *ast.Assign:
		vars[s.Name] = struct{}{}
		collectExpr(s.Expr, vars)
	case *ast.If:
		collectExpr(s.Cond, vars)
		collectBlock(s.Then, vars)
		collectBlock(s.Else, vars)
	case *ast.While:
		collectExpr(s.Cond, vars)
		collectBlock(s.Body, vars)
	case *ast.Print:
		vars[s.Name] = struct{}{}
	case *ast.Input:
		vars[s.Name] = struct{}{}
	}
}

func collectExpr(expr ast.Expr, vars map[string]struct{}) {
	switch e := expr.(type) {
	case *ast.VarRef:
		vars[e.Name] = struct{}{}
	case *ast.BinOp:
		collectExpr(e.Left, vars)
		collectExpr(e.Right, vars)
	case *ast.Number:
		// no variable reference
	}
}
