/*
File    : vanction/builtin/core.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtin

import (
	"io"
	"strconv"
	"strings"

	"github.com/akashmaji946/vanction/object"
)

// registerCore wires System.print, System.input, and the free
// conversion/introspection functions len, str, int, float, range.
func registerCore(add adder, rt Runtime) {
	add("System.print", func(args []object.Value, named map[string]object.Value) (object.Value, *object.RuntimeError) {
		end := "\n"
		if e, ok := named["end"]; ok {
			if s, ok2 := e.(*object.String); ok2 {
				end = s.Value
			}
		}
		var b strings.Builder
		for _, a := range args {
			b.WriteString(a.String())
		}
		b.WriteString(end)
		io.WriteString(rt.Writer(), b.String())
		return &object.Null{}, nil
	})

	add("System.input", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) > 0 {
			io.WriteString(rt.Writer(), args[0].String())
		}
		line, _ := rt.InputReader().ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		return &object.String{Value: line}, nil
	})

	add("len", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 1 {
			return nil, argCountErr("len", 1, len(args))
		}
		switch v := args[0].(type) {
		case *object.String:
			return &object.Int{Value: int64(len([]rune(v.Value)))}, nil
		case *object.Array:
			return &object.Int{Value: int64(len(v.Elements))}, nil
		case *object.Tuple:
			return &object.Int{Value: int64(len(v.Elements))}, nil
		case *object.Dict:
			return &object.Int{Value: int64(len(v.Pairs))}, nil
		default:
			return nil, typeErr("len", "string, array, tuple, or dict", args[0])
		}
	})

	add("str", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 1 {
			return nil, argCountErr("str", 1, len(args))
		}
		return &object.String{Value: args[0].String()}, nil
	})

	add("int", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 1 {
			return nil, argCountErr("int", 1, len(args))
		}
		switch v := args[0].(type) {
		case *object.Int:
			return v, nil
		case *object.Float:
			return &object.Int{Value: int64(v.Value)}, nil
		case *object.Bool:
			if v.Value {
				return &object.Int{Value: 1}, nil
			}
			return &object.Int{Value: 0}, nil
		case *object.String:
			n, err := strconv.ParseInt(strings.TrimSpace(v.Value), 10, 64)
			if err != nil {
				return nil, object.NewError(object.TypeErrorKind, "", 0, 0, "cannot convert %q to int", v.Value)
			}
			return &object.Int{Value: n}, nil
		default:
			return nil, typeErr("int", "string, int, float, or bool", args[0])
		}
	})

	add("float", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 1 {
			return nil, argCountErr("float", 1, len(args))
		}
		switch v := args[0].(type) {
		case *object.Float:
			return v, nil
		case *object.Int:
			return &object.Float{Value: float64(v.Value)}, nil
		case *object.String:
			f, err := strconv.ParseFloat(strings.TrimSpace(v.Value), 64)
			if err != nil {
				return nil, object.NewError(object.TypeErrorKind, "", 0, 0, "cannot convert %q to float", v.Value)
			}
			return &object.Float{Value: f}, nil
		default:
			return nil, typeErr("float", "string, int, or float", args[0])
		}
	})

	add("range", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 1 {
			return nil, argCountErr("range", 1, len(args))
		}
		n, ok := asInt(args[0])
		if !ok {
			return nil, typeErr("range", "int", args[0])
		}
		elems := make([]object.Value, 0, n)
		for i := int64(1); i <= n; i++ {
			elems = append(elems, &object.Int{Value: i})
		}
		return &object.Array{Elements: elems}, nil
	})
}
