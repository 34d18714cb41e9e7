/*
File    : vanction/eval/call.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/vanction/ast"
	"github.com/akashmaji946/vanction/environment"
	"github.com/akashmaji946/vanction/object"
)

// evalCall evaluates a call's arguments eagerly, left to right, then
// resolves the callee per the dotted/bare distinction: `A.B(...)` tries
// (a) A as a bound module/dict whose member B is callable, (b) the
// dotted name "A.B" in the global function table (how module imports
// publish functions), then (c) "A.B" in the builtin registry. A bare
// name tries the environment, then the builtin registry.
func (e *Evaluator) evalCall(node *ast.Call, env *environment.Frame) (object.Value, *object.RuntimeError) {
	args := make([]object.Value, len(node.Args))
	for i, a := range node.Args {
		v, err := e.Eval(a, env)
		if err != nil {
			return nil, err
		}
		if v.Kind() == object.AnytionKind {
			return nil, object.NewError(object.AnytionErrorKind, e.File, node.Pos.Line, node.Pos.Column, "anytion value passed as an argument")
		}
		args[i] = v
	}
	named := make(map[string]object.Value, len(node.NamedArgs))
	for _, na := range node.NamedArgs {
		v, err := e.Eval(na.Value, env)
		if err != nil {
			return nil, err
		}
		named[na.Name] = v
	}

	switch callee := node.Callee.(type) {
	case *ast.Member:
		if ident, ok := callee.Object.(*ast.Identifier); ok {
			dotted := ident.Name + "." + callee.Property
			if val, ok := env.Get(ident.Name); ok {
				if mod, ok := val.(*object.Module); ok {
					if member, ok := mod.Members[callee.Property]; ok {
						return e.invokeValue(member, args, named, node.Pos)
					}
				}
				if d, ok := val.(*object.Dict); ok {
					if member, ok := d.Get(&object.String{Value: callee.Property}); ok {
						return e.invokeValue(member, args, named, node.Pos)
					}
				}
			}
			if fnVal, ok := e.Global.Get(dotted); ok {
				return e.invokeValue(fnVal, args, named, node.Pos)
			}
			if bi, ok := e.Builtins[dotted]; ok {
				return e.invokeValue(bi, args, named, node.Pos)
			}
			return nil, object.NewError(object.UndefinedErrorKind, e.File, node.Pos.Line, node.Pos.Column, "undefined function: %s", dotted)
		}
		val, err := e.Eval(callee, env)
		if err != nil {
			return nil, err
		}
		return e.invokeValue(val, args, named, node.Pos)

	case *ast.Identifier:
		if fnVal, ok := env.Get(callee.Name); ok {
			return e.invokeValue(fnVal, args, named, node.Pos)
		}
		if bi, ok := e.Builtins[callee.Name]; ok {
			return e.invokeValue(bi, args, named, node.Pos)
		}
		return nil, object.NewError(object.UndefinedErrorKind, e.File, node.Pos.Line, node.Pos.Column, "undefined function: %s", callee.Name)

	default:
		val, err := e.Eval(node.Callee, env)
		if err != nil {
			return nil, err
		}
		return e.invokeValue(val, args, named, node.Pos)
	}
}

func (e *Evaluator) invokeValue(v object.Value, args []object.Value, named map[string]object.Value, pos ast.Pos) (object.Value, *object.RuntimeError) {
	switch fn := v.(type) {
	case *object.FunctionValue:
		return e.callFunctionValue(fn, args, named, pos)
	case *object.BuiltIn:
		result, err := fn.Fn(args, named)
		if err != nil {
			if err.File == "" {
				err.File = e.File
				err.Line = pos.Line
				err.Column = pos.Column
			}
			return nil, err
		}
		return result, nil
	default:
		return nil, object.NewError(object.FunctionCallErrorKind, e.File, pos.Line, pos.Column, "value of kind %s is not callable", v.Kind())
	}
}

// callFunctionValue binds positional parameters into a fresh frame
// chained off the function's closure environment and runs its body.
// Named arguments are a builtin-only convenience (e.g. `end:`); a user
// function call ignores them once arity is checked.
func (e *Evaluator) callFunctionValue(fn *object.FunctionValue, args []object.Value, _ map[string]object.Value, pos ast.Pos) (object.Value, *object.RuntimeError) {
	if len(args) != len(fn.Params) {
		return nil, object.NewError(object.FunctionCallErrorKind, e.File, pos.Line, pos.Column, "%s expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}
	parentEnv, _ := fn.Env.(*environment.Frame)
	callEnv := environment.New(parentEnv)
	for i, p := range fn.Params {
		callEnv.DefineVariable(p, args[i])
	}
	switch body := fn.Body.(type) {
	case []ast.Stmt:
		flow, err := e.execBlock(body, callEnv)
		if err != nil {
			return nil, err
		}
		if flow.Kind == object.FlowReturning {
			return flow.Value, nil
		}
		return &object.Null{}, nil
	case ast.Expr:
		return e.Eval(body, callEnv)
	default:
		return &object.Null{}, nil
	}
}
