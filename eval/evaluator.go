/*
File    : vanction/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval walks the AST produced by the parser, threading runtime
// values through Eval (expressions) and control flow through Exec
// (statements). It is grounded on akashmaji946-go-mix's eval.Evaluator,
// generalized for this language's scope model (see environment) and
// error taxonomy (see object.ErrorKind).
package eval

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/akashmaji946/vanction/ast"
	"github.com/akashmaji946/vanction/builtin"
	"github.com/akashmaji946/vanction/environment"
	"github.com/akashmaji946/vanction/object"
	"github.com/akashmaji946/vanction/parser"
)

// Evaluator owns the global scope, the builtin registry, and the I/O
// streams builtins read/write through. One Evaluator lives for the
// lifetime of a script run or a REPL session; module imports spawn
// short-lived child Evaluators that share its builtin table and its
// import-cycle tracker (see loader.go).
type Evaluator struct {
	Global  *environment.Frame
	File    string
	BaseDir string

	Out io.Writer
	In  *bufio.Reader

	Builtins map[string]*object.BuiltIn

	importing map[string]bool
}

// NewEvaluator builds an Evaluator wired to stdout/stdin and a fresh
// builtin registry.
func NewEvaluator() *Evaluator {
	e := &Evaluator{
		Global:    environment.New(nil),
		Out:       os.Stdout,
		In:        bufio.NewReader(os.Stdin),
		importing: make(map[string]bool),
	}
	e.Builtins = builtin.NewRegistry(e)
	return e
}

// Writer and InputReader implement builtin.Runtime so the registry's
// System.print/System.input closures can reach this Evaluator's streams
// without builtin importing eval (eval already imports builtin, so that
// would be an import cycle).
func (e *Evaluator) Writer() io.Writer        { return e.Out }
func (e *Evaluator) InputReader() *bufio.Reader { return e.In }

// SetWriter/SetReader let the CLI and tests redirect I/O (e.g. a
// bytes.Buffer in evaluator_test.go, a readline instance in the REPL).
func (e *Evaluator) SetWriter(w io.Writer) { e.Out = w }
func (e *Evaluator) SetReader(r io.Reader) { e.In = bufio.NewReader(r) }

var fstringPlaceholder = regexp.MustCompile(`\{\{([A-Za-z_][A-Za-z0-9_]*)\}\}`)

// Run lexes, parses, and executes source as file, returning the first
// parse error (if any) or the error raised while running.
func (e *Evaluator) Run(file, source string) *object.RuntimeError {
	e.File = file
	e.BaseDir = dirOf(file)

	p := parser.NewParser(source, file)
	prog := p.Parse()
	if p.Errors.HasErrors() {
		return p.Errors.First()
	}
	return e.RunProgram(prog)
}

// RunProgram implements the program-execution contract: register every
// top-level function, run top-level statements for side effects,
// require a zero-argument `main`, then invoke it.
func (e *Evaluator) RunProgram(prog *ast.Program) *object.RuntimeError {
	for _, fn := range prog.Functions {
		e.Global.DefineFunction(fn.Name, &object.FunctionValue{
			Name: fn.Name, Params: fn.Params, Body: fn.Body, Env: e.Global,
		})
	}
	for _, stmt := range prog.Statements {
		if _, err := e.Exec(stmt, e.Global); err != nil {
			return err
		}
	}
	mainVal, ok := e.Global.Get("main")
	if !ok {
		return object.NewError(object.UndefinedErrorKind, e.File, 0, 0, "no main function defined")
	}
	mainFn, ok := mainVal.(*object.FunctionValue)
	if !ok {
		return object.NewError(object.TypeErrorKind, e.File, 0, 0, "main is not a function")
	}
	_, err := e.callFunctionValue(mainFn, nil, nil, ast.Pos{})
	return err
}

// EvalSource runs source as a REPL chunk against the persistent global
// frame: functions are registered, statements executed in order, and
// the value of a trailing bare expression statement (or the argument of
// a `return`) is reported back for the REPL to print.
func (e *Evaluator) EvalSource(source string) (object.Value, *object.RuntimeError, *parser.ParseErrors) {
	p := parser.NewParser(source, e.File)
	prog := p.Parse()
	if p.Errors.HasErrors() {
		return nil, nil, &p.Errors
	}
	for _, fn := range prog.Functions {
		e.Global.DefineFunction(fn.Name, &object.FunctionValue{
			Name: fn.Name, Params: fn.Params, Body: fn.Body, Env: e.Global,
		})
	}
	var last object.Value = &object.Null{}
	for _, stmt := range prog.Statements {
		if exprStmt, ok := stmt.(*ast.ExpressionStatement); ok {
			v, err := e.Eval(exprStmt.Expr, e.Global)
			if err != nil {
				return nil, err, nil
			}
			last = v
			continue
		}
		flow, err := e.Exec(stmt, e.Global)
		if err != nil {
			return nil, err, nil
		}
		if flow.Kind == object.FlowReturning {
			last = flow.Value
		}
	}
	return last, nil, nil
}

// ---- statement execution ----

// Exec runs one statement, returning the control-flow signal it
// produced (normal/return/break/continue) and any error raised.
func (e *Evaluator) Exec(stmt ast.Stmt, env *environment.Frame) (object.Flow, *object.RuntimeError) {
	switch s := stmt.(type) {
	case nil:
		return object.NormalFlow, nil

	case *ast.FunctionDef:
		env.DefineFunction(s.Name, &object.FunctionValue{Name: s.Name, Params: s.Params, Body: s.Body, Env: env})
		return object.NormalFlow, nil

	case *ast.ExpressionStatement:
		_, err := e.Eval(s.Expr, env)
		if err != nil {
			return object.NormalFlow, err
		}
		return object.NormalFlow, nil

	case *ast.ReturnStatement:
		var val object.Value = &object.Null{}
		if s.Value != nil {
			v, err := e.Eval(s.Value, env)
			if err != nil {
				return object.NormalFlow, err
			}
			val = v
		}
		return object.Flow{Kind: object.FlowReturning, Value: val}, nil

	case *ast.BreakStatement:
		return object.Flow{Kind: object.FlowBreaking}, nil

	case *ast.ContinueStatement:
		return object.Flow{Kind: object.FlowContinuing}, nil

	case *ast.IfStatement:
		cond, err := e.Eval(s.Cond, env)
		if err != nil {
			return object.NormalFlow, err
		}
		if object.Truthy(cond) {
			return e.execBlock(s.Then, environment.New(env))
		}
		if s.Else != nil {
			return e.execBlock(s.Else, environment.New(env))
		}
		return object.NormalFlow, nil

	case *ast.WhileStatement:
		return e.execWhile(s, env)

	case *ast.ForStatement:
		if s.IsForIn {
			return e.execForIn(s, env)
		}
		return e.execForC(s, env)

	case *ast.SwitchStatement:
		return e.execSwitch(s, env)

	case *ast.TryStatement:
		return e.execTry(s, env)

	case *ast.ThrowStatement:
		return e.execThrow(s, env)

	case *ast.ImportStatement:
		return e.execImport(s, env)

	case *ast.DefineStatement:
		env.DefineVariable(s.Name, &object.Anytion{})
		return object.NormalFlow, nil

	case *ast.ImmutStatement:
		if env.IsConstant(s.Name) {
			return object.NormalFlow, object.NewError(object.ImmutableErrorKind, e.File, s.Pos.Line, s.Pos.Column, "cannot redeclare constant %s", s.Name)
		}
		val, err := e.Eval(s.Value, env)
		if err != nil {
			return object.NormalFlow, err
		}
		env.DefineConstant(s.Name, val)
		return object.NormalFlow, nil

	case *ast.BlockStatement:
		return e.execBlock(s.Stmts, environment.New(env))

	default:
		return object.NormalFlow, object.NewError(object.TypeErrorKind, e.File, 0, 0, "unhandled statement node %T", stmt)
	}
}

// execBlock runs stmts in env in order, registering each nested function
// definition in env when the loop reaches it (a nested function is not
// visible to statements before its definition), and stops at the first
// non-normal control-flow signal or error.
func (e *Evaluator) execBlock(stmts []ast.Stmt, env *environment.Frame) (object.Flow, *object.RuntimeError) {
	for _, stmt := range stmts {
		if fnDef, ok := stmt.(*ast.FunctionDef); ok {
			env.DefineFunction(fnDef.Name, &object.FunctionValue{Name: fnDef.Name, Params: fnDef.Params, Body: fnDef.Body, Env: env})
			continue
		}
		flow, err := e.Exec(stmt, env)
		if err != nil {
			return object.NormalFlow, err
		}
		if flow.Kind != object.FlowNormal {
			return flow, nil
		}
	}
	return object.NormalFlow, nil
}

func (e *Evaluator) execWhile(s *ast.WhileStatement, env *environment.Frame) (object.Flow, *object.RuntimeError) {
	for {
		cond, err := e.Eval(s.Cond, env)
		if err != nil {
			return object.NormalFlow, err
		}
		if !object.Truthy(cond) {
			break
		}
		flow, err := e.execBlock(s.Body, environment.New(env))
		if err != nil {
			return object.NormalFlow, err
		}
		if flow.Kind == object.FlowBreaking {
			break
		}
		if flow.Kind == object.FlowReturning {
			return flow, nil
		}
	}
	return object.NormalFlow, nil
}

// execForIn introduces a fresh child frame per iteration so the loop
// variable does not leak past the loop, while assignments to names
// already bound in an outer scope still write through via Frame.Assign.
func (e *Evaluator) execForIn(s *ast.ForStatement, env *environment.Frame) (object.Flow, *object.RuntimeError) {
	iterable, err := e.Eval(s.Iterable, env)
	if err != nil {
		return object.NormalFlow, err
	}
	items, err := iterableElements(iterable, e.File, s.Pos)
	if err != nil {
		return object.NormalFlow, err
	}
	for _, item := range items {
		iterEnv := environment.New(env)
		iterEnv.DefineVariable(s.IterVar, item)
		flow, err := e.execBlock(s.Body, iterEnv)
		if err != nil {
			return object.NormalFlow, err
		}
		if flow.Kind == object.FlowBreaking {
			break
		}
		if flow.Kind == object.FlowReturning {
			return flow, nil
		}
	}
	return object.NormalFlow, nil
}

// execForC runs the init clause once in env and reuses env for the
// whole loop (condition, body, update share one frame), so a variable
// assigned inside the body is visible after the loop ends.
func (e *Evaluator) execForC(s *ast.ForStatement, env *environment.Frame) (object.Flow, *object.RuntimeError) {
	if s.Init != nil {
		if _, err := e.Exec(s.Init, env); err != nil {
			return object.NormalFlow, err
		}
	}
	for {
		if s.Cond != nil {
			cond, err := e.Eval(s.Cond, env)
			if err != nil {
				return object.NormalFlow, err
			}
			if !object.Truthy(cond) {
				break
			}
		}
		flow, err := e.execBlock(s.Body, env)
		if err != nil {
			return object.NormalFlow, err
		}
		if flow.Kind == object.FlowBreaking {
			break
		}
		if flow.Kind == object.FlowReturning {
			return flow, nil
		}
		if s.Update != nil {
			if _, err := e.Exec(s.Update, env); err != nil {
				return object.NormalFlow, err
			}
		}
	}
	return object.NormalFlow, nil
}

// execSwitch dispatches to the first matching case, or default, and
// runs it to completion: there is no fall-through to the next case.
func (e *Evaluator) execSwitch(s *ast.SwitchStatement, env *environment.Frame) (object.Flow, *object.RuntimeError) {
	val, err := e.Eval(s.Expr, env)
	if err != nil {
		return object.NormalFlow, err
	}
	for _, c := range s.Cases {
		cv, err := e.Eval(c.Value, env)
		if err != nil {
			return object.NormalFlow, err
		}
		if !comparableKinds(val, cv) || !object.Equal(val, cv) {
			continue
		}
		return e.finishSwitchArm(c.Body, env)
	}
	if s.Default != nil {
		return e.finishSwitchArm(s.Default, env)
	}
	return object.NormalFlow, nil
}

func (e *Evaluator) finishSwitchArm(body []ast.Stmt, env *environment.Frame) (object.Flow, *object.RuntimeError) {
	flow, err := e.execBlock(body, environment.New(env))
	if err != nil {
		return object.NormalFlow, err
	}
	if flow.Kind == object.FlowBreaking {
		return object.NormalFlow, nil
	}
	return flow, nil
}

// execTry runs Try, routes a raised error into Catch when its kind
// matches CatchType (or CatchType is empty), and always runs Finally
// last. Finally's own outcome (error or non-normal flow) supersedes
// whatever Try/Catch produced, matching typical finally semantics.
func (e *Evaluator) execTry(s *ast.TryStatement, env *environment.Frame) (object.Flow, *object.RuntimeError) {
	flow, err := e.execBlock(s.Try, environment.New(env))

	if err != nil && s.HasCatch && (s.CatchType == "" || s.CatchType == string(err.ErrKind)) {
		catchEnv := environment.New(env)
		if s.CatchVar != "" {
			catchEnv.DefineVariable(s.CatchVar, err.AsDict())
		}
		flow, err = e.execBlock(s.Catch, catchEnv)
	}

	if s.Finally != nil {
		fflow, ferr := e.execBlock(s.Finally, environment.New(env))
		if ferr != nil {
			return object.NormalFlow, ferr
		}
		if fflow.Kind != object.FlowNormal {
			return fflow, nil
		}
	}

	return flow, err
}

func (e *Evaluator) execThrow(s *ast.ThrowStatement, env *environment.Frame) (object.Flow, *object.RuntimeError) {
	var payload object.Value = &object.String{Value: "exception"}
	if s.Value != nil {
		v, err := e.Eval(s.Value, env)
		if err != nil {
			return object.NormalFlow, err
		}
		payload = v
	}
	rtErr := object.NewError(object.UserExceptionKind, e.File, s.Pos.Line, s.Pos.Column, "%s", payload.String())
	rtErr.Payload = payload
	return object.NormalFlow, rtErr
}

// ---- expression evaluation ----

// Eval evaluates expr in env, returning its runtime value or the error
// that stopped evaluation.
func (e *Evaluator) Eval(expr ast.Expr, env *environment.Frame) (object.Value, *object.RuntimeError) {
	switch node := expr.(type) {
	case *ast.Literal:
		return e.evalLiteral(node, env)
	case *ast.Identifier:
		return e.evalIdentifier(node, env)
	case *ast.Member:
		return e.evalMember(node, env)
	case *ast.Index:
		return e.evalIndex(node, env)
	case *ast.Binary:
		return e.evalBinary(node, env)
	case *ast.Unary:
		return e.evalUnary(node, env)
	case *ast.Call:
		return e.evalCall(node, env)
	case *ast.Lambda:
		return &object.FunctionValue{Name: "<lambda>", Params: node.Params, Body: node.Body, Env: env}, nil
	case *ast.Array:
		elems := make([]object.Value, len(node.Elements))
		for i, el := range node.Elements {
			v, err := e.Eval(el, env)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return &object.Array{Elements: elems}, nil
	case *ast.Dict:
		d := object.NewDict()
		for _, entry := range node.Entries {
			k, err := e.Eval(entry.Key, env)
			if err != nil {
				return nil, err
			}
			v, err := e.Eval(entry.Value, env)
			if err != nil {
				return nil, err
			}
			if serr := d.Set(k, v); serr != nil {
				return nil, object.NewError(object.TypeErrorKind, e.File, node.Pos.Line, node.Pos.Column, "dict key of kind %s is not hashable", k.Kind())
			}
		}
		return d, nil
	case *ast.Tuple:
		elems := make([]object.Value, len(node.Elements))
		for i, el := range node.Elements {
			v, err := e.Eval(el, env)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return &object.Tuple{Elements: elems}, nil
	case *ast.MultiAssign:
		return e.evalMultiAssign(node, env)
	default:
		return nil, object.NewError(object.TypeErrorKind, e.File, 0, 0, "unhandled expression node %T", expr)
	}
}

func (e *Evaluator) evalLiteral(node *ast.Literal, env *environment.Frame) (object.Value, *object.RuntimeError) {
	switch v := node.Value.(type) {
	case int64:
		return &object.Int{Value: v}, nil
	case float64:
		return &object.Float{Value: v}, nil
	case bool:
		return &object.Bool{Value: v}, nil
	case string:
		if node.StrKind == "f" {
			return e.interpolateFString(v, env, node.Pos)
		}
		return &object.String{Value: v}, nil
	case nil:
		return &object.Null{}, nil
	default:
		return nil, object.NewError(object.TypeErrorKind, e.File, node.Pos.Line, node.Pos.Column, "unrecognized literal value %v", v)
	}
}

// interpolateFString expands every `{{name}}` placeholder the lexer
// rewrote from the source's `{name}` syntax, reading name from env.
func (e *Evaluator) interpolateFString(s string, env *environment.Frame, pos ast.Pos) (object.Value, *object.RuntimeError) {
	var evalErr *object.RuntimeError
	result := fstringPlaceholder.ReplaceAllStringFunc(s, func(m string) string {
		if evalErr != nil {
			return m
		}
		name := fstringPlaceholder.FindStringSubmatch(m)[1]
		val, ok := env.Get(name)
		if !ok {
			evalErr = object.NewError(object.UndefinedErrorKind, e.File, pos.Line, pos.Column, "undefined name in f-string: %s", name)
			return m
		}
		if val.Kind() == object.AnytionKind {
			evalErr = object.NewError(object.AnytionErrorKind, e.File, pos.Line, pos.Column, "f-string references unassigned name: %s", name)
			return m
		}
		return val.String()
	})
	if evalErr != nil {
		return nil, evalErr
	}
	return &object.String{Value: result}, nil
}

// evalIdentifier resolves a bare name. `anytion` and `unassigned` are
// always readable (they are the sentinel constructors, not declared
// variables); any other name whose bound value is Anytion raises
// AnytionError on read, per the `define`-then-read-before-assign rule.
func (e *Evaluator) evalIdentifier(node *ast.Identifier, env *environment.Frame) (object.Value, *object.RuntimeError) {
	switch node.Name {
	case "anytion":
		return &object.Anytion{}, nil
	case "unassigned":
		return &object.Unassigned{}, nil
	case "true":
		return &object.Bool{Value: true}, nil
	case "false":
		return &object.Bool{Value: false}, nil
	}
	val, ok := env.Get(node.Name)
	if !ok {
		if bi, ok2 := e.Builtins[node.Name]; ok2 {
			return bi, nil
		}
		return nil, object.NewError(object.UndefinedErrorKind, e.File, node.Pos.Line, node.Pos.Column, "undefined name: %s", node.Name)
	}
	if val.Kind() == object.AnytionKind {
		return nil, object.NewError(object.AnytionErrorKind, e.File, node.Pos.Line, node.Pos.Column, "read of unassigned variable: %s", node.Name)
	}
	return val, nil
}

// evalMember resolves `object.property`. Per spec order: first try a
// dotted global binding `Object.property` (module function/var
// publishing uses this shape), then a dotted builtin of that name, then
// evaluate Object and look property up as a Module member or a Dict key.
func (e *Evaluator) evalMember(node *ast.Member, env *environment.Frame) (object.Value, *object.RuntimeError) {
	if ident, ok := node.Object.(*ast.Identifier); ok {
		dotted := ident.Name + "." + node.Property
		if v, ok := env.Get(dotted); ok {
			return v, nil
		}
		if bi, ok := e.Builtins[dotted]; ok {
			return bi, nil
		}
	}
	objVal, err := e.Eval(node.Object, env)
	if err != nil {
		return nil, err
	}
	switch ov := objVal.(type) {
	case *object.Module:
		if v, ok := ov.Members[node.Property]; ok {
			return v, nil
		}
		return nil, object.NewError(object.UndefinedErrorKind, e.File, node.Pos.Line, node.Pos.Column, "module %s has no member %s", ov.Name, node.Property)
	case *object.Dict:
		if v, ok := ov.Get(&object.String{Value: node.Property}); ok {
			return v, nil
		}
		return nil, object.NewError(object.KeyNotFoundKind, e.File, node.Pos.Line, node.Pos.Column, "key not found: %s", node.Property)
	default:
		return nil, object.NewError(object.TypeErrorKind, e.File, node.Pos.Line, node.Pos.Column, "value of kind %s has no property %s", objVal.Kind(), node.Property)
	}
}

func (e *Evaluator) evalIndex(node *ast.Index, env *environment.Frame) (object.Value, *object.RuntimeError) {
	objVal, err := e.Eval(node.Object, env)
	if err != nil {
		return nil, err
	}
	idxVal, err := e.Eval(node.Index, env)
	if err != nil {
		return nil, err
	}
	switch ov := objVal.(type) {
	case *object.String:
		idx, ok := idxVal.(*object.Int)
		if !ok {
			return nil, object.NewError(object.TypeErrorKind, e.File, node.Pos.Line, node.Pos.Column, "string index must be int, got %s", idxVal.Kind())
		}
		runes := []rune(ov.Value)
		if idx.Value < 0 || idx.Value >= int64(len(runes)) {
			return nil, object.NewError(object.IndexOutOfRangeKind, e.File, node.Pos.Line, node.Pos.Column, "string index %d out of range for length %d", idx.Value, len(runes))
		}
		return &object.String{Value: string(runes[idx.Value])}, nil
	case *object.Array:
		idx, ok := idxVal.(*object.Int)
		if !ok {
			return nil, object.NewError(object.TypeErrorKind, e.File, node.Pos.Line, node.Pos.Column, "array index must be int, got %s", idxVal.Kind())
		}
		if idx.Value < 0 || idx.Value >= int64(len(ov.Elements)) {
			return nil, object.NewError(object.IndexOutOfRangeKind, e.File, node.Pos.Line, node.Pos.Column, "array index %d out of range for length %d", idx.Value, len(ov.Elements))
		}
		return ov.Elements[idx.Value], nil
	case *object.Tuple:
		idx, ok := idxVal.(*object.Int)
		if !ok {
			return nil, object.NewError(object.TypeErrorKind, e.File, node.Pos.Line, node.Pos.Column, "tuple index must be int, got %s", idxVal.Kind())
		}
		if idx.Value < 0 || idx.Value >= int64(len(ov.Elements)) {
			return nil, object.NewError(object.IndexOutOfRangeKind, e.File, node.Pos.Line, node.Pos.Column, "tuple index %d out of range for length %d", idx.Value, len(ov.Elements))
		}
		return ov.Elements[idx.Value], nil
	case *object.Dict:
		v, ok := ov.Get(idxVal)
		if !ok {
			return nil, object.NewError(object.KeyNotFoundKind, e.File, node.Pos.Line, node.Pos.Column, "key not found: %s", idxVal.String())
		}
		return v, nil
	default:
		return nil, object.NewError(object.TypeErrorKind, e.File, node.Pos.Line, node.Pos.Column, "value of kind %s is not indexable", objVal.Kind())
	}
}

func (e *Evaluator) evalUnary(node *ast.Unary, env *environment.Frame) (object.Value, *object.RuntimeError) {
	val, err := e.Eval(node.Operand, env)
	if err != nil {
		return nil, err
	}
	if opErr := checkOperand(val, e.File, node.Pos); opErr != nil && node.Op != "!" {
		return nil, opErr
	}
	switch node.Op {
	case "-":
		switch v := val.(type) {
		case *object.Int:
			return &object.Int{Value: -v.Value}, nil
		case *object.Float:
			return &object.Float{Value: -v.Value}, nil
		default:
			return nil, object.NewError(object.TypeErrorKind, e.File, node.Pos.Line, node.Pos.Column, "unary - requires a number, got %s", val.Kind())
		}
	case "+":
		switch val.(type) {
		case *object.Int, *object.Float:
			return val, nil
		default:
			return nil, object.NewError(object.TypeErrorKind, e.File, node.Pos.Line, node.Pos.Column, "unary + requires a number, got %s", val.Kind())
		}
	case "!":
		return &object.Bool{Value: !object.Truthy(val)}, nil
	case "~":
		i, ok := val.(*object.Int)
		if !ok {
			return nil, object.NewError(object.TypeErrorKind, e.File, node.Pos.Line, node.Pos.Column, "~ requires an int, got %s", val.Kind())
		}
		return &object.Int{Value: ^i.Value}, nil
	default:
		return nil, object.NewError(object.TypeErrorKind, e.File, node.Pos.Line, node.Pos.Column, "unknown unary operator %s", node.Op)
	}
}

func checkOperand(v object.Value, file string, pos ast.Pos) *object.RuntimeError {
	switch v.Kind() {
	case object.AnytionKind:
		return object.NewError(object.AnytionErrorKind, file, pos.Line, pos.Column, "anytion value used as an operand")
	case object.UnassignedKind:
		return object.NewError(object.UnassignedErrorKind, file, pos.Line, pos.Column, "unassigned value used as an operand")
	}
	return nil
}

func comparableKinds(a, b object.Value) bool {
	if a.Kind() == b.Kind() {
		return true
	}
	an := a.Kind() == object.IntKind || a.Kind() == object.FloatKind
	bn := b.Kind() == object.IntKind || b.Kind() == object.FloatKind
	return an && bn
}

func asNumber(v object.Value) (float64, bool, bool) {
	switch vv := v.(type) {
	case *object.Int:
		return float64(vv.Value), true, true
	case *object.Float:
		return vv.Value, false, true
	default:
		return 0, false, false
	}
}

func iterableElements(v object.Value, file string, pos ast.Pos) ([]object.Value, *object.RuntimeError) {
	switch vv := v.(type) {
	case *object.Array:
		return vv.Elements, nil
	case *object.Tuple:
		return vv.Elements, nil
	case *object.String:
		runes := []rune(vv.Value)
		elems := make([]object.Value, len(runes))
		for i, r := range runes {
			elems[i] = &object.String{Value: string(r)}
		}
		return elems, nil
	case *object.Dict:
		elems := make([]object.Value, len(vv.Pairs))
		for i, p := range vv.Pairs {
			elems[i] = p.Key
		}
		return elems, nil
	default:
		return nil, object.NewError(object.TypeErrorKind, file, pos.Line, pos.Column, "value of kind %s is not iterable", v.Kind())
	}
}

func dirOf(file string) string {
	if file == "" {
		wd, _ := os.Getwd()
		return wd
	}
	idx := strings.LastIndexAny(file, "/\\")
	if idx < 0 {
		return "."
	}
	return file[:idx]
}
