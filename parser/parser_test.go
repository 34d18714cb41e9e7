/*
File    : vanction/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/vanction/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := NewParser(src, "test.va")
	prog := p.Parse()
	require.False(t, p.Errors.HasErrors(), "unexpected parse errors: %v", p.Errors.Errors())
	return prog
}

func TestParser_FunctionAndReturn(t *testing.T) {
	prog := parseProgram(t, `func add(a, b) { return a + b; }`)
	require.Len(t, prog.Functions, 1)
	fn := prog.Functions[0]
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, []string{"a", "b"}, fn.Params)
	require.Len(t, fn.Body, 1)
	ret, ok := fn.Body[0].(*ast.ReturnStatement)
	require.True(t, ok)
	bin, ok := ret.Value.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op)
}

func TestParser_IfElseIfElse(t *testing.T) {
	prog := parseProgram(t, `
		func main() {
			if x < 2 { return 1; } else-if x < 4 { return 2; } else { return 3; }
		}
	`)
	fn := prog.Functions[0]
	ifStmt := fn.Body[0].(*ast.IfStatement)
	require.Len(t, ifStmt.Else, 1)
	elseIf, ok := ifStmt.Else[0].(*ast.IfStatement)
	require.True(t, ok)
	require.Len(t, elseIf.Else, 1)
}

func TestParser_ForIn(t *testing.T) {
	prog := parseProgram(t, `func main() { for (x in [1,2,3]) { print(x); } }`)
	forStmt := prog.Functions[0].Body[0].(*ast.ForStatement)
	assert.True(t, forStmt.IsForIn)
	assert.Equal(t, "x", forStmt.IterVar)
}

func TestParser_ForCStyle(t *testing.T) {
	prog := parseProgram(t, `func main() { for (define i; i < 10; i = i + 1) { print(i); } }`)
	forStmt := prog.Functions[0].Body[0].(*ast.ForStatement)
	assert.False(t, forStmt.IsForIn)
	assert.NotNil(t, forStmt.Init)
	assert.NotNil(t, forStmt.Cond)
	assert.NotNil(t, forStmt.Update)
}

func TestParser_MultiAssign(t *testing.T) {
	prog := parseProgram(t, `func main() { a, b = [1, 2]; }`)
	stmt := prog.Functions[0].Body[0].(*ast.ExpressionStatement)
	ma, ok := stmt.Expr.(*ast.MultiAssign)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, ma.Targets)
}

func TestParser_ImmutAndDefine(t *testing.T) {
	prog := parseProgram(t, `func main() { immut k = 7; define anything; }`)
	imm, ok := prog.Functions[0].Body[0].(*ast.ImmutStatement)
	require.True(t, ok)
	assert.Equal(t, "k", imm.Name)
	def, ok := prog.Functions[0].Body[1].(*ast.DefineStatement)
	require.True(t, ok)
	assert.Equal(t, "anything", def.Name)
}

func TestParser_TryCatchFinally(t *testing.T) {
	prog := parseProgram(t, `
		func main() {
			try { throw "bad"; }
			catch () as e { print(e["message"]); }
			finally { print("done"); }
		}
	`)
	tryStmt := prog.Functions[0].Body[0].(*ast.TryStatement)
	assert.True(t, tryStmt.HasCatch)
	assert.Equal(t, "e", tryStmt.CatchVar)
	assert.NotNil(t, tryStmt.Finally)
}

func TestParser_SwitchNoFallthrough(t *testing.T) {
	prog := parseProgram(t, `
		func main() {
			switch x {
			case 1: print("one");
			case 2: print("two");
			default: print("other");
			}
		}
	`)
	sw := prog.Functions[0].Body[0].(*ast.SwitchStatement)
	assert.Len(t, sw.Cases, 2)
	assert.NotNil(t, sw.Default)
}

func TestParser_Import(t *testing.T) {
	prog := parseProgram(t, `import util.math using um;`)
	require.Len(t, prog.Statements, 1)
	imp, ok := prog.Statements[0].(*ast.ImportStatement)
	require.True(t, ok)
	assert.Equal(t, []string{"util", "math"}, imp.Path)
	assert.True(t, imp.Using)
	assert.Equal(t, "um", imp.Alias)
}

func TestParser_PowerOperators(t *testing.T) {
	prog := parseProgram(t, `func main() { return x^ + x^3 + x^7; }`)
	ret := prog.Functions[0].Body[0].(*ast.ReturnStatement)
	// x^ + x^3 -> Binary(+, Binary(^, x, 2), Binary(^,x,3)) etc, just assert it parsed to a Binary tree.
	_, ok := ret.Value.(*ast.Binary)
	assert.True(t, ok)
}

func TestParser_PrecedenceArithmeticOverComparison(t *testing.T) {
	prog := parseProgram(t, `func main() { return 1 + 2 < 3 * 4; }`)
	ret := prog.Functions[0].Body[0].(*ast.ReturnStatement)
	cmp := ret.Value.(*ast.Binary)
	assert.Equal(t, "<", cmp.Op)
	left := cmp.Left.(*ast.Binary)
	assert.Equal(t, "+", left.Op)
	right := cmp.Right.(*ast.Binary)
	assert.Equal(t, "*", right.Op)
}

func TestParser_CallNamedArgs(t *testing.T) {
	prog := parseProgram(t, `func main() { print(1, 2, end: ","); }`)
	stmt := prog.Functions[0].Body[0].(*ast.ExpressionStatement)
	call := stmt.Expr.(*ast.Call)
	assert.Len(t, call.Args, 2)
	require.Len(t, call.NamedArgs, 1)
	assert.Equal(t, "end", call.NamedArgs[0].Name)
}

func TestParser_TupleVsParenExpr(t *testing.T) {
	prog := parseProgram(t, `func main() { a = (1); b = (1, 2); }`)
	stmts := prog.Functions[0].Body
	assignA := stmts[0].(*ast.ExpressionStatement).Expr.(*ast.Binary)
	_, isLiteral := assignA.Right.(*ast.Literal)
	assert.True(t, isLiteral, "(1) should be a plain parenthesized literal, not a tuple")

	assignB := stmts[1].(*ast.ExpressionStatement).Expr.(*ast.Binary)
	tup, ok := assignB.Right.(*ast.Tuple)
	require.True(t, ok)
	assert.Len(t, tup.Elements, 2)
}

func TestParser_SyntaxErrorCollected(t *testing.T) {
	p := NewParser(`func main( { }`, "bad.va")
	p.Parse()
	assert.True(t, p.Errors.HasErrors())
}
