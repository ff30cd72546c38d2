// Package emitter lowers a parsed, collected AST to a complete LLVM IR
// textual module. It is a single pass over the AST, owning the
// monotonically increasing SSA register counter and label counter as an
// explicit, single-owned context value threaded through recursive
// lowering — not as mutable fields on a long-lived object — so the same
// Emit call never shares state across compiles.
package emitter

import (
	"fmt"
	"io"
	"sort"

	"yalcc/ast"
)

// SinkError wraps a failure writing to the output sink. The emitter is
// otherwise total: given a well-formed AST (only ever built by the
// parser), it cannot fail for any other reason.
type SinkError struct {
	Err error
}

func (e SinkError) Error() string {
	return fmt.Sprintf("failed writing IR output: %v", e.Err)
}

func (e SinkError) Unwrap() error { return e.Err }

// context carries the Emitter's per-compile mutable state: the shared
// register and label counters and the output sink. A fresh context is
// constructed for every call to Emit; nothing here is reused across
// compiles or shared globally.
type context struct {
	out      io.Writer
	register int
	label    int
	err      error
}

func (c *context) freshRegister() string {
	c.register++
	return fmt.Sprintf("%%%d", c.register)
}

func (c *context) freshLabel() string {
	c.label++
	return fmt.Sprintf("label_%d", c.label)
}

// writef writes to the sink, latching the first error encountered so
// callers can keep the recursive lowering code free of error-threading
// boilerplate and check once at the end.
func (c *context) writef(format string, args ...any) {
	if c.err != nil {
		return
	}
	if _, err := fmt.Fprintf(c.out, format, args...); err != nil {
		c.err = SinkError{Err: err}
	}
}

// Emit writes a complete, self-contained LLVM IR module for program to
// out. vars is the variable set the collector discovered; program is the
// parsed top-level block.
func Emit(out io.Writer, program *ast.Block, vars map[string]struct{}) error {
	c := &context{out: out}

	c.writef("; Target: LLVM IR\n")
	c.writef("declare i32 @printf(i8*, ...)\n")
	c.writef("declare i32 @scanf(i8*, ...)\n")
	c.writef("@.strP = private unnamed_addr constant [4 x i8] c\"%%d\\0A\\00\", align 1\n")
	c.writef("@.strS = private unnamed_addr constant [3 x i8] c\"%%d\\00\", align 1\n")
	c.writef("\n")
	c.writef("define i32 @main() {\n")
	c.writef("entry:\n")

	for _, name := range sortedNames(vars) {
		c.writef("  %%%s = alloca i32\n", name)
		c.writef("  store i32 0, i32* %%%s\n", name)
	}

	emitBlock(c, program)

	c.writef("  ret i32 0\n")
	c.writef("}\n")

	return c.err
}

// sortedNames returns vars in a stable order so repeated compiles of the
// same source produce byte-identical output; the collector's own
// contract only promises membership, not order.
func sortedNames(vars map[string]struct{}) []string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func emitBlock(c *context, block *ast.Block) {
	if block == nil {
		return
	}
	for _, stmt := range block.Statements {
		emitStmt(c, stmt)
	}
}

func emitStmt(c *context, stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		emitBlock(c, s)
	case *ast.Assign:
		operand := emitExpr(c, s.Expr)
		c.writef("  store i32 %s, i32* %%%s\n", operand, s.Name)
	case *ast.Print:
		reg := c.freshRegister()
		c.writef("  %s = load i32, i32* %%%s\n", reg, s.Name)
		c.writef("  call i32 (i8*, ...) @printf(i8* getelementptr inbounds ([4 x i8], [4 x i8]* @.strP, i32 0, i32 0), i32 %s)\n", reg)
	case *ast.Input:
		c.writef("  call i32 (i8*, ...) @scanf(i8* getelementptr inbounds ([3 x i8], [3 x i8]* @.strS, i32 0, i32 0), i32* %%%s)\n", s.Name)
	case *ast.If:
		emitIf(c, s)
	case *ast.While:
		emitWhile(c, s)
	}
}

// emitIf lowers an If per the three-label scheme: Lt for the then-branch,
// Lf for the else-branch (unused when there is no else; the false edge
// of the branch instruction targets Lend directly instead), Lend as the
// join point.
func emitIf(c *context, stmt *ast.If) {
	cond := emitExpr(c, stmt.Cond)
	lt := c.freshLabel()
	lend := c.freshLabel()

	if stmt.Else == nil {
		c.writef("  br i1 %s, label %%%s, label %%%s\n", cond, lt, lend)
		c.writef("%s:\n", lt)
		emitBlock(c, stmt.Then)
		c.writef("  br label %%%s\n", lend)
		c.writef("%s:\n", lend)
		return
	}

	lf := c.freshLabel()
	c.writef("  br i1 %s, label %%%s, label %%%s\n", cond, lt, lf)
	c.writef("%s:\n", lt)
	emitBlock(c, stmt.Then)
	c.writef("  br label %%%s\n", lend)
	c.writef("%s:\n", lf)
	emitBlock(c, stmt.Else)
	c.writef("  br label %%%s\n", lend)
	c.writef("%s:\n", lend)
}

// emitWhile lowers a While per the three-label scheme. The condition is
// re-evaluated inside Lcond (not the predecessor block) on every
// iteration, so the loop's back edge from Lbody to Lcond is a valid SSA
// back edge instead of reusing a register defined in a dominator that
// does not dominate the back edge's source.
func emitWhile(c *context, stmt *ast.While) {
	lcond := c.freshLabel()
	lbody := c.freshLabel()
	lend := c.freshLabel()

	c.writef("  br label %%%s\n", lcond)
	c.writef("%s:\n", lcond)
	cond := emitExpr(c, stmt.Cond)
	c.writef("  br i1 %s, label %%%s, label %%%s\n", cond, lbody, lend)
	c.writef("%s:\n", lbody)
	emitBlock(c, stmt.Body)
	c.writef("  br label %%%s\n", lcond)
	c.writef("%s:\n", lend)
}

var arithOpcode = map[ast.Operator]string{
	ast.Add: "add",
	ast.Sub: "sub",
	ast.Mul: "mul",
	ast.Div: "sdiv",
}

var cmpPredicate = map[ast.Operator]string{
	ast.Eq: "eq",
	ast.Lt: "slt",
	ast.Le: "sle",
}

// emitExpr lowers expr to an operand: a literal text for Number, or a
// fresh register for everything else. Subexpressions are always lowered
// left before right.
func emitExpr(c *context, expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Number:
		return fmt.Sprintf("%d", e.Value)
	case *ast.VarRef:
		reg := c.freshRegister()
		c.writef("  %s = load i32, i32* %%%s\n", reg, e.Name)
		return reg
	case *ast.BinOp:
		return emitBinOp(c, e)
	default:
		return ""
	}
}

func emitBinOp(c *context, e *ast.BinOp) string {
	if opcode, ok := arithOpcode[e.Op]; ok {
		left := emitExpr(c, e.Left)
		right := emitExpr(c, e.Right)
		reg := c.freshRegister()
		c.writef("  %s = %s i32 %s, %s\n", reg, opcode, left, right)
		return reg
	}

	if pred, ok := cmpPredicate[e.Op]; ok {
		left := emitExpr(c, e.Left)
		right := emitExpr(c, e.Right)
		reg := c.freshRegister()
		c.writef("  %s = icmp %s i32 %s, %s\n", reg, pred, left, right)
		return reg
	}

	// ast.Implies: both sides evaluated eagerly, no short-circuit, per
	// the lowering rule: not(left) or right.
	left := emitExpr(c, e.Left)
	negated := c.freshRegister()
	c.writef("  %s = xor i1 %s, 1\n", negated, left)
	right := emitExpr(c, e.Right)
	reg := c.freshRegister()
	c.writef("  %s = or i1 %s, %s\n", reg, negated, right)
	return reg
}
