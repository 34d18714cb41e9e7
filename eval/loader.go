/*
File    : vanction/eval/loader.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/akashmaji946/vanction/ast"
	"github.com/akashmaji946/vanction/environment"
	"github.com/akashmaji946/vanction/object"
	"github.com/akashmaji946/vanction/parser"
)

// execImport resolves a dotted import path to a `.va` file relative to
// the importing file's directory, runs it in a fresh child Evaluator
// that shares this Evaluator's builtin registry and cycle tracker, and
// publishes its top-level functions/variables under `PATH.name` (and,
// when `using ALIAS` is present, also under `ALIAS.name` plus an
// `ALIAS` Module value). Re-importing the same path re-runs it: nothing
// is memoized.
func (e *Evaluator) execImport(s *ast.ImportStatement, env *environment.Frame) (object.Flow, *object.RuntimeError) {
	if len(s.Path) == 0 {
		return object.NormalFlow, object.NewError(object.ImportErrorKind, e.File, s.Pos.Line, s.Pos.Column, "empty import path")
	}
	stem := s.Path[len(s.Path)-1]
	dirParts := s.Path[:len(s.Path)-1]

	base := e.BaseDir
	if base == "" {
		base, _ = os.Getwd()
	}
	fullDir := filepath.Join(append([]string{base}, dirParts...)...)
	filePath := filepath.Join(fullDir, stem+".va")

	resolved, absErr := filepath.Abs(filePath)
	if absErr != nil {
		resolved = filePath
	}
	if e.importing[resolved] {
		return object.NormalFlow, object.NewError(object.ImportErrorKind, e.File, s.Pos.Line, s.Pos.Column, "import cycle detected at %s", resolved)
	}

	data, ioErr := os.ReadFile(filePath)
	if ioErr != nil {
		return object.NormalFlow, object.NewError(object.ImportErrorKind, e.File, s.Pos.Line, s.Pos.Column, "module not found: %s", filePath)
	}

	if e.importing == nil {
		e.importing = make(map[string]bool)
	}
	e.importing[resolved] = true
	defer delete(e.importing, resolved)

	sub := &Evaluator{
		Global:    environment.New(nil),
		Out:       e.Out,
		In:        e.In,
		Builtins:  e.Builtins,
		File:      filePath,
		BaseDir:   filepath.Dir(filePath),
		importing: e.importing,
	}

	p := parser.NewParser(string(data), filePath)
	prog := p.Parse()
	if p.Errors.HasErrors() {
		first := p.Errors.First()
		return object.NormalFlow, object.NewError(object.ImportErrorKind, e.File, s.Pos.Line, s.Pos.Column, "module %s failed to parse: %s", filePath, first.Message)
	}

	for _, fn := range prog.Functions {
		sub.Global.DefineFunction(fn.Name, &object.FunctionValue{Name: fn.Name, Params: fn.Params, Body: fn.Body, Env: sub.Global})
	}
	for _, stmt := range prog.Statements {
		if _, err := sub.Exec(stmt, sub.Global); err != nil {
			return object.NormalFlow, object.NewError(object.ImportErrorKind, e.File, s.Pos.Line, s.Pos.Column, "module %s raised while loading: %s", filePath, err.Message)
		}
	}

	moduleName := strings.Join(s.Path, ".")
	members := sub.Global.Names()
	publish(e.Global, moduleName, members)

	if s.Using {
		e.Global.DefineVariable(s.Alias, &object.Module{Name: s.Alias, Members: members})
		publish(e.Global, s.Alias, members)
	}

	return object.NormalFlow, nil
}

// publish binds every member of a loaded module into env's global
// function/variable tables under `prefix.name`.
func publish(env *environment.Frame, prefix string, members map[string]object.Value) {
	for name, val := range members {
		dotted := prefix + "." + name
		if _, isFn := val.(*object.FunctionValue); isFn {
			env.DefineFunction(dotted, val)
		} else {
			env.DefineVariable(dotted, val)
		}
	}
}
