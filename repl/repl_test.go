/*
File    : vanction/repl/repl_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package repl

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/vanction/eval"
	"github.com/stretchr/testify/assert"
)

func TestBracesBalanced(t *testing.T) {
	assert.True(t, bracesBalanced(`System.print("hi");`))
	assert.True(t, bracesBalanced(`func main() { System.print(1); }`))
	assert.False(t, bracesBalanced(`func main() {`))
	assert.False(t, bracesBalanced(`System.print([1, 2`))
	assert.True(t, bracesBalanced(`System.print("{not a brace}");`))
}

func TestBracesBalanced_IgnoresEscapedQuoteInString(t *testing.T) {
	assert.True(t, bracesBalanced(`System.print("a \" { b");`))
}

func TestRepl_ExecuteWithRecoveryPrintsExpressionValue(t *testing.T) {
	r := NewRepl("banner", "v0", "author", "---", "MIT", "vanction> ")
	e := eval.NewEvaluator()
	var out bytes.Buffer
	e.SetWriter(&out)

	r.executeWithRecovery(&out, "1 + 2;\n", e)
	assert.Contains(t, out.String(), "3")
}

func TestRepl_ExecuteWithRecoveryReportsRuntimeError(t *testing.T) {
	r := NewRepl("banner", "v0", "author", "---", "MIT", "vanction> ")
	e := eval.NewEvaluator()
	var out bytes.Buffer
	e.SetWriter(&out)

	r.executeWithRecovery(&out, "doesNotExist;\n", e)
	assert.Contains(t, out.String(), "UndefinedError")
}

func TestRepl_PrintScopeListsBoundNames(t *testing.T) {
	r := NewRepl("banner", "v0", "author", "---", "MIT", "vanction> ")
	e := eval.NewEvaluator()
	var out bytes.Buffer
	e.SetWriter(&out)

	_, err, _ := e.EvalSource("define x; x = 42;\n")
	assert.Nil(t, err)

	r.printScope(&out, e)
	assert.Contains(t, out.String(), "x")
	assert.Contains(t, out.String(), "42")
}

func TestRepl_PrintTraceEmitsYAML(t *testing.T) {
	r := NewRepl("banner", "v0", "author", "---", "MIT", "vanction> ")
	e := eval.NewEvaluator()
	var out bytes.Buffer
	e.SetWriter(&out)

	_, err, _ := e.EvalSource("define x; x = 7;\n")
	assert.Nil(t, err)

	r.printTrace(&out, e)
	assert.Contains(t, out.String(), "x:")
}
