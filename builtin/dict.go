/*
File    : vanction/builtin/dict.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtin

import "github.com/akashmaji946/vanction/object"

func registerDict(add adder) {
	add("dict.keys", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 1 {
			return nil, argCountErr("dict.keys", 1, len(args))
		}
		d, ok := asDict(args[0])
		if !ok {
			return nil, typeErr("dict.keys", "dict", args[0])
		}
		out := make([]object.Value, len(d.Pairs))
		for i, p := range d.Pairs {
			out[i] = p.Key
		}
		return &object.Array{Elements: out}, nil
	})

	add("dict.values", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 1 {
			return nil, argCountErr("dict.values", 1, len(args))
		}
		d, ok := asDict(args[0])
		if !ok {
			return nil, typeErr("dict.values", "dict", args[0])
		}
		out := make([]object.Value, len(d.Pairs))
		for i, p := range d.Pairs {
			out[i] = p.Value
		}
		return &object.Array{Elements: out}, nil
	})

	add("dict.items", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 1 {
			return nil, argCountErr("dict.items", 1, len(args))
		}
		d, ok := asDict(args[0])
		if !ok {
			return nil, typeErr("dict.items", "dict", args[0])
		}
		out := make([]object.Value, len(d.Pairs))
		for i, p := range d.Pairs {
			out[i] = &object.Tuple{Elements: []object.Value{p.Key, p.Value}}
		}
		return &object.Array{Elements: out}, nil
	})

	add("dict.get", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) < 2 || len(args) > 3 {
			return nil, argCountErr("dict.get", 2, len(args))
		}
		d, ok := asDict(args[0])
		if !ok {
			return nil, typeErr("dict.get", "dict", args[0])
		}
		if v, found := d.Get(args[1]); found {
			return v, nil
		}
		if len(args) == 3 {
			return args[2], nil
		}
		return &object.Null{}, nil
	})

	add("dict.set", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 3 {
			return nil, argCountErr("dict.set", 3, len(args))
		}
		d, ok := asDict(args[0])
		if !ok {
			return nil, typeErr("dict.set", "dict", args[0])
		}
		if err := d.Set(args[1], args[2]); err != nil {
			return nil, object.NewError(object.TypeErrorKind, "", 0, 0, "dict.set: %s", err.Error())
		}
		return d, nil
	})

	add("dict.update", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 2 {
			return nil, argCountErr("dict.update", 2, len(args))
		}
		d, ok := asDict(args[0])
		if !ok {
			return nil, typeErr("dict.update", "dict", args[0])
		}
		other, ok := asDict(args[1])
		if !ok {
			return nil, typeErr("dict.update", "dict", args[1])
		}
		for _, p := range other.Pairs {
			_ = d.Set(p.Key, p.Value)
		}
		return d, nil
	})

	add("dict.pop", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 2 {
			return nil, argCountErr("dict.pop", 2, len(args))
		}
		d, ok := asDict(args[0])
		if !ok {
			return nil, typeErr("dict.pop", "dict", args[0])
		}
		v, found := d.Get(args[1])
		if !found {
			return nil, keyNotFoundErr("dict.pop", args[1])
		}
		d.Delete(args[1])
		return v, nil
	})

	add("dict.clear", func(args []object.Value, _ map[string]object.Value) (object.Value, *object.RuntimeError) {
		if len(args) != 1 {
			return nil, argCountErr("dict.clear", 1, len(args))
		}
		d, ok := asDict(args[0])
		if !ok {
			return nil, typeErr("dict.clear", "dict", args[0])
		}
		*d = *object.NewDict()
		return d, nil
	})
}
