/*
File    : vanction/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvaluator() (*Evaluator, *bytes.Buffer) {
	e := NewEvaluator()
	var buf bytes.Buffer
	e.SetWriter(&buf)
	return e, &buf
}

func TestEval_HelloWorld(t *testing.T) {
	e, out := newTestEvaluator()
	err := e.Run("hello.va", `
		func main() {
			System.print("Hello World!");
		}
	`)
	require.Nil(t, err)
	assert.Equal(t, "Hello World!\n", out.String())
}

func TestEval_Fibonacci(t *testing.T) {
	e, out := newTestEvaluator()
	err := e.Run("fib.va", `
		func fib(n) {
			if n < 2 { return n; }
			return fib(n - 1) + fib(n - 2);
		}
		func main() {
			System.print(fib(10));
		}
	`)
	require.Nil(t, err)
	assert.Equal(t, "55\n", out.String())
}

func TestEval_ForInPrinting(t *testing.T) {
	e, out := newTestEvaluator()
	err := e.Run("forin.va", `
		func main() {
			for (x in [1, 2, 3]) {
				System.print(x, end: ",");
			}
		}
	`)
	require.Nil(t, err)
	assert.Equal(t, "1,2,3,", out.String())
}

func TestEval_ImmutabilityErrorsOut(t *testing.T) {
	e, _ := newTestEvaluator()
	err := e.Run("immut.va", `
		func main() {
			immut k = 7;
			k = 8;
		}
	`)
	require.NotNil(t, err)
	assert.Equal(t, "ImmutableError", string(err.ErrKind))
}

func TestEval_TryCatchFinally(t *testing.T) {
	e, out := newTestEvaluator()
	err := e.Run("trycatch.va", `
		func main() {
			try {
				throw "boom";
			}
			catch () as e {
				System.print(e["message"]);
			}
			finally {
				System.print("done");
			}
		}
	`)
	require.Nil(t, err)
	assert.Equal(t, "boom\ndone\n", out.String())
}

func TestEval_ModuleImport(t *testing.T) {
	dir := t.TempDir()
	modPath := filepath.Join(dir, "util.va")
	require.NoError(t, os.WriteFile(modPath, []byte(`
		func square(n) { return n * n; }
	`), 0o644))

	mainPath := filepath.Join(dir, "main.va")
	e, out := newTestEvaluator()
	err := e.Run(mainPath, `
		import util;
		func main() {
			System.print(util.square(5));
		}
	`)
	require.Nil(t, err)
	assert.Equal(t, "25\n", out.String())
}

func TestEval_ModuleImportCycleDetected(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.va")
	bPath := filepath.Join(dir, "b.va")
	require.NoError(t, os.WriteFile(aPath, []byte(`import b;`), 0o644))
	require.NoError(t, os.WriteFile(bPath, []byte(`import a;`), 0o644))

	e, _ := newTestEvaluator()
	err := e.Run(aPath, `import b;`)
	require.NotNil(t, err)
	assert.Equal(t, "ImportError", string(err.ErrKind))
}

func TestEval_WhileLoop(t *testing.T) {
	e, out := newTestEvaluator()
	err := e.Run("while.va", `
		func main() {
			define i;
			i = 0;
			while (i < 3) {
				System.print(i);
				i = i + 1;
			}
		}
	`)
	require.Nil(t, err)
	assert.Equal(t, "0\n1\n2\n", out.String())
}

func TestEval_CStyleForLeaksVariable(t *testing.T) {
	e, out := newTestEvaluator()
	err := e.Run("forc.va", `
		func main() {
			for (i = 0; i < 3; i = i + 1) {
				System.print(i);
			}
			System.print(i);
		}
	`)
	require.Nil(t, err)
	assert.Equal(t, "0\n1\n2\n3\n", out.String())
}

func TestEval_SwitchNoFallthrough(t *testing.T) {
	e, out := newTestEvaluator()
	err := e.Run("switch.va", `
		func main() {
			define x;
			x = 2;
			switch (x) {
			case 1: System.print("one");
			case 2: System.print("two");
			default: System.print("other");
			}
		}
	`)
	require.Nil(t, err)
	assert.Equal(t, "two\n", out.String())
}

func TestEval_AnytionReadIsError(t *testing.T) {
	e, _ := newTestEvaluator()
	err := e.Run("anytion.va", `
		func main() {
			define x;
			System.print(x);
		}
	`)
	require.NotNil(t, err)
	assert.Equal(t, "AnytionError", string(err.ErrKind))
}

func TestEval_MultiAssignUnpacksArray(t *testing.T) {
	e, out := newTestEvaluator()
	err := e.Run("multi.va", `
		func main() {
			define a;
			define b;
			a, b = [1, 2];
			System.print(a + b);
		}
	`)
	require.Nil(t, err)
	assert.Equal(t, "3\n", out.String())
}

func TestEval_FStringInterpolation(t *testing.T) {
	e, out := newTestEvaluator()
	err := e.Run("fstr.va", `
		func main() {
			define name;
			name = "world";
			System.print(f"hello {name}");
		}
	`)
	require.Nil(t, err)
	assert.Equal(t, "hello world\n", out.String())
}

func TestEval_PowerOperatorFamily(t *testing.T) {
	e, out := newTestEvaluator()
	err := e.Run("power.va", `
		func main() {
			define x;
			x = 3;
			System.print(x^);
			System.print(x^3);
		}
	`)
	require.Nil(t, err)
	assert.Equal(t, "9\n27\n", out.String())
}

func TestEval_DivisionByZero(t *testing.T) {
	e, _ := newTestEvaluator()
	err := e.Run("divzero.va", `
		func main() {
			System.print(1 / 0);
		}
	`)
	require.NotNil(t, err)
	assert.Equal(t, "DivisionByZero", string(err.ErrKind))
}

func TestEval_UndefinedNameErrors(t *testing.T) {
	e, _ := newTestEvaluator()
	err := e.Run("undef.va", `
		func main() {
			System.print(doesNotExist);
		}
	`)
	require.NotNil(t, err)
	assert.Equal(t, "UndefinedError", string(err.ErrKind))
}

func TestEval_DivisionIsAlwaysTrueDivision(t *testing.T) {
	e, out := newTestEvaluator()
	err := e.Run("truediv.va", `
		func main() {
			System.print(6 / 4);
			System.print(8 / 4);
		}
	`)
	require.Nil(t, err)
	assert.Equal(t, "1.5\n2\n", out.String())
}

func TestEval_ModuloIsFloored(t *testing.T) {
	e, out := newTestEvaluator()
	err := e.Run("floormod.va", `
		func main() {
			System.print(-7 % 3);
			System.print(7 % -3);
		}
	`)
	require.Nil(t, err)
	assert.Equal(t, "2\n-2\n", out.String())
}

func TestEval_ComparisonOrdersBoolsAndArrays(t *testing.T) {
	e, out := newTestEvaluator()
	err := e.Run("ordercmp.va", `
		func main() {
			System.print(false < true);
			System.print([1, 2] < [1, 3]);
			System.print([1, 2] < [1, 2, 0]);
		}
	`)
	require.Nil(t, err)
	assert.Equal(t, "true\ntrue\ntrue\n", out.String())
}

func TestEval_ComparisonRejectsUnorderedKinds(t *testing.T) {
	e, _ := newTestEvaluator()
	err := e.Run("ordercmp_dict.va", `
		func main() {
			System.print({1: 2} < {1: 2});
		}
	`)
	require.NotNil(t, err)
	assert.Equal(t, "TypeError", string(err.ErrKind))
}

func TestEval_EqualityIsStructuralForComposites(t *testing.T) {
	e, out := newTestEvaluator()
	err := e.Run("structeq.va", `
		func main() {
			System.print([1, 2] == [1, 2]);
			System.print((1, 2) == (1, 2));
			System.print({1: 2} == {1: 2});
			System.print([1, 2] == [1, 3]);
		}
	`)
	require.Nil(t, err)
	assert.Equal(t, "true\ntrue\ntrue\nfalse\n", out.String())
}
