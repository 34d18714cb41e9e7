/*
File    : vanction/builtin/array.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtin

import (
	"sort"
	"strings"

	"github.com/akashmaji946/vanction/object"
)

func registerArray(add adder) {
	add("array.append", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) < 2 {
			return nil, argCountErr("array.append", 2, len(args))
		}
		arr, ok := asArray(args[0])
		if !ok {
			return nil, typeErr("array.append", "array", args[0])
		}
		arr.Elements = append(arr.Elements, args[1:]...)
		return arr, nil
	})

	add("array.insert", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 3 {
			return nil, argCountErr("array.insert", 3, len(args))
		}
		arr, ok := asArray(args[0])
		if !ok {
			return nil, typeErr("array.insert", "array", args[0])
		}
		idx, ok := asInt(args[1])
		if !ok {
			return nil, typeErr("array.insert", "int index", args[1])
		}
		if idx < 0 || idx > int64(len(arr.Elements)) {
			return nil, indexErr("array.insert", int(idx), len(arr.Elements))
		}
		arr.Elements = append(arr.Elements, nil)
		copy(arr.Elements[idx+1:], arr.Elements[idx:])
		arr.Elements[idx] = args[2]
		return arr, nil
	})

	add("array.remove", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 2 {
			return nil, argCountErr("array.remove", 2, len(args))
		}
		arr, ok := asArray(args[0])
		if !ok {
			return nil, typeErr("array.remove", "array", args[0])
		}
		for i, el := range arr.Elements {
			if object.Equal(el, args[1]) {
				arr.Elements = append(arr.Elements[:i], arr.Elements[i+1:]...)
				return arr, nil
			}
		}
		return nil, object.NewError(object.KeyNotFoundKind, "", 0, 0, "array.remove: value not found")
	})

	add("array.pop", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) < 1 || len(args) > 2 {
			return nil, argCountErr("array.pop", 1, len(args))
		}
		arr, ok := asArray(args[0])
		if !ok {
			return nil, typeErr("array.pop", "array", args[0])
		}
		if len(arr.Elements) == 0 {
			return nil, indexErr("array.pop", 0, 0)
		}
		idx := int64(len(arr.Elements) - 1)
		if len(args) == 2 {
			i, ok := asInt(args[1])
			if !ok {
				return nil, typeErr("array.pop", "int index", args[1])
			}
			idx = i
		}
		if idx < 0 || idx >= int64(len(arr.Elements)) {
			return nil, indexErr("array.pop", int(idx), len(arr.Elements))
		}
		v := arr.Elements[idx]
		arr.Elements = append(arr.Elements[:idx], arr.Elements[idx+1:]...)
		return v, nil
	})

	add("array.reverse", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 1 {
			return nil, argCountErr("array.reverse", 1, len(args))
		}
		arr, ok := asArray(args[0])
		if !ok {
			return nil, typeErr("array.reverse", "array", args[0])
		}
		for i, j := 0, len(arr.Elements)-1; i < j; i, j = i+1, j-1 {
			arr.Elements[i], arr.Elements[j] = arr.Elements[j], arr.Elements[i]
		}
		return arr, nil
	})

	add("array.sort", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 1 {
			return nil, argCountErr("array.sort", 1, len(args))
		}
		arr, ok := asArray(args[0])
		if !ok {
			return nil, typeErr("array.sort", "array", args[0])
		}
		var sortErr *object.RuntimeError
		sort.SliceStable(arr.Elements, func(i, j int) bool {
			less, err := numericOrStringLess(arr.Elements[i], arr.Elements[j])
			if err != nil && sortErr == nil {
				sortErr = err
			}
			return less
		})
		if sortErr != nil {
			return nil, sortErr
		}
		return arr, nil
	})

	add("array.join", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 2 {
			return nil, argCountErr("array.join", 2, len(args))
		}
		arr, ok := asArray(args[0])
		if !ok {
			return nil, typeErr("array.join", "array", args[0])
		}
		sep, ok := asString(args[1])
		if !ok {
			return nil, typeErr("array.join", "string separator", args[1])
		}
		parts := make([]string, len(arr.Elements))
		for i, e := range arr.Elements {
			parts[i] = e.String()
		}
		return &object.String{Value: strings.Join(parts, sep)}, nil
	})

	add("array.slice", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 3 {
			return nil, argCountErr("array.slice", 3, len(args))
		}
		arr, ok := asArray(args[0])
		if !ok {
			return nil, typeErr("array.slice", "array", args[0])
		}
		start, ok := asInt(args[1])
		if !ok {
			return nil, typeErr("array.slice", "int start", args[1])
		}
		end, ok := asInt(args[2])
		if !ok {
			return nil, typeErr("array.slice", "int end", args[2])
		}
		n := int64(len(arr.Elements))
		if start < 0 || end > n || start > end {
			return nil, indexErr("array.slice", int(start), len(arr.Elements))
		}
		out := make([]object.Value, end-start)
		copy(out, arr.Elements[start:end])
		return &object.Array{Elements: out}, nil
	})
}

func numericOrStringLess(a, b object.Value) (bool, *object.RuntimeError) {
	switch av := a.(type) {
	case *object.Int:
		switch bv := b.(type) {
		case *object.Int:
			return av.Value < bv.Value, nil
		case *object.Float:
			return float64(av.Value) < bv.Value, nil
		}
	case *object.Float:
		switch bv := b.(type) {
		case *object.Int:
			return av.Value < float64(bv.Value), nil
		case *object.Float:
			return av.Value < bv.Value, nil
		}
	case *object.String:
		if bv, ok := b.(*object.String); ok {
			return av.Value < bv.Value, nil
		}
	}
	return false, object.NewError(object.TypeErrorKind, "", 0, 0, "array.sort: incomparable elements %s and %s", a.Kind(), b.Kind())
}
