/*
File    : vanction/builtin/str.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtin

import (
	"strings"

	"github.com/akashmaji946/vanction/object"
)

func registerStr(add adder) {
	add("str.contains", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 2 {
			return nil, argCountErr("str.contains", 2, len(args))
		}
		s, ok := asString(args[0])
		if !ok {
			return nil, typeErr("str.contains", "string", args[0])
		}
		sub, ok := asString(args[1])
		if !ok {
			return nil, typeErr("str.contains", "string", args[1])
		}
		return &object.Bool{Value: strings.Contains(s, sub)}, nil
	})

	add("str.replace", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 3 {
			return nil, argCountErr("str.replace", 3, len(args))
		}
		s, ok := asString(args[0])
		if !ok {
			return nil, typeErr("str.replace", "string", args[0])
		}
		old, ok := asString(args[1])
		if !ok {
			return nil, typeErr("str.replace", "string", args[1])
		}
		newer, ok := asString(args[2])
		if !ok {
			return nil, typeErr("str.replace", "string", args[2])
		}
		return &object.String{Value: strings.ReplaceAll(s, old, newer)}, nil
	})

	add("str.split", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 2 {
			return nil, argCountErr("str.split", 2, len(args))
		}
		s, ok := asString(args[0])
		if !ok {
			return nil, typeErr("str.split", "string", args[0])
		}
		sep, ok := asString(args[1])
		if !ok {
			return nil, typeErr("str.split", "string", args[1])
		}
		parts := strings.Split(s, sep)
		out := make([]object.Value, len(parts))
		for i, p := range parts {
			out[i] = &object.String{Value: p}
		}
		return &object.Array{Elements: out}, nil
	})

	add("str.strip", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 1 {
			return nil, argCountErr("str.strip", 1, len(args))
		}
		s, ok := asString(args[0])
		if !ok {
			return nil, typeErr("str.strip", "string", args[0])
		}
		return &object.String{Value: strings.TrimSpace(s)}, nil
	})

	add("str.lower", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 1 {
			return nil, argCountErr("str.lower", 1, len(args))
		}
		s, ok := asString(args[0])
		if !ok {
			return nil, typeErr("str.lower", "string", args[0])
		}
		return &object.String{Value: strings.ToLower(s)}, nil
	})

	add("str.upper", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 1 {
			return nil, argCountErr("str.upper", 1, len(args))
		}
		s, ok := asString(args[0])
		if !ok {
			return nil, typeErr("str.upper", "string", args[0])
		}
		return &object.String{Value: strings.ToUpper(s)}, nil
	})

	add("str.startswith", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 2 {
			return nil, argCountErr("str.startswith", 2, len(args))
		}
		s, ok := asString(args[0])
		if !ok {
			return nil, typeErr("str.startswith", "string", args[0])
		}
		prefix, ok := asString(args[1])
		if !ok {
			return nil, typeErr("str.startswith", "string", args[1])
		}
		return &object.Bool{Value: strings.HasPrefix(s, prefix)}, nil
	})

	add("str.endswith", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 2 {
			return nil, argCountErr("str.endswith", 2, len(args))
		}
		s, ok := asString(args[0])
		if !ok {
			return nil, typeErr("str.endswith", "string", args[0])
		}
		suffix, ok := asString(args[1])
		if !ok {
			return nil, typeErr("str.endswith", "string", args[1])
		}
		return &object.Bool{Value: strings.HasSuffix(s, suffix)}, nil
	})

	add("str.substring", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 3 {
			return nil, argCountErr("str.substring", 3, len(args))
		}
		s, ok := asString(args[0])
		if !ok {
			return nil, typeErr("str.substring", "string", args[0])
		}
		start, ok := asInt(args[1])
		if !ok {
			return nil, typeErr("str.substring", "int start", args[1])
		}
		end, ok := asInt(args[2])
		if !ok {
			return nil, typeErr("str.substring", "int end", args[2])
		}
		runes := []rune(s)
		n := int64(len(runes))
		if start < 0 || end > n || start > end {
			return nil, indexErr("str.substring", int(start), len(runes))
		}
		return &object.String{Value: string(runes[start:end])}, nil
	})

	add("str.find", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 2 {
			return nil, argCountErr("str.find", 2, len(args))
		}
		s, ok := asString(args[0])
		if !ok {
			return nil, typeErr("str.find", "string", args[0])
		}
		sub, ok := asString(args[1])
		if !ok {
			return nil, typeErr("str.find", "string", args[1])
		}
		return &object.Int{Value: int64(strings.Index(s, sub))}, nil
	})
}
