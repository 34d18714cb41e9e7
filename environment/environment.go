/*
File    : vanction/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements the lexically-scoped frame chain the
// evaluator binds names into: one frame per global program, function
// call, for-in iteration, and catch entry, each with its own parent
// handle per spec §3.
package environment

import "github.com/akashmaji946/vanction/object"

// Frame is one environment record: three maps (variables, constants,
// functions) plus an optional parent. Lookup order inside a single
// frame is constants -> variables -> functions, then the parent frame,
// matching the resolution order spec.md mandates.
type Frame struct {
	variables map[string]object.Value
	constants map[string]object.Value
	functions map[string]object.Value
	parent    *Frame
}

// New creates a fresh frame with the given parent (nil for the global
// frame).
func New(parent *Frame) *Frame {
	return &Frame{
		variables: make(map[string]object.Value),
		constants: make(map[string]object.Value),
		functions: make(map[string]object.Value),
		parent:    parent,
	}
}

// Get resolves name against this frame then its ancestors, in the
// constants -> variables -> functions -> parent order.
func (f *Frame) Get(name string) (object.Value, bool) {
	for frame := f; frame != nil; frame = frame.parent {
		if v, ok := frame.constants[name]; ok {
			return v, true
		}
		if v, ok := frame.variables[name]; ok {
			return v, true
		}
		if v, ok := frame.functions[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// IsConstant reports whether the innermost binding of name on the scope
// chain starting at f is a constant; a variable of the same name in a
// nearer frame shadows a constant further out.
func (f *Frame) IsConstant(name string) bool {
	for frame := f; frame != nil; frame = frame.parent {
		if _, ok := frame.constants[name]; ok {
			return true
		}
		if _, ok := frame.variables[name]; ok {
			return false
		}
	}
	return false
}

// DefineVariable binds name to value as a mutable variable in this
// frame, overwriting any prior variable binding of the same name in
// this frame. Callers must check IsConstant first if they need to
// reject rebinding a constant.
func (f *Frame) DefineVariable(name string, value object.Value) {
	f.variables[name] = value
}

// DefineConstant binds name to value as an immutable constant in this
// frame.
func (f *Frame) DefineConstant(name string, value object.Value) {
	f.constants[name] = value
}

// DefineFunction binds name to a function/builtin value in this frame's
// function table.
func (f *Frame) DefineFunction(name string, value object.Value) {
	f.functions[name] = value
}

// Assign walks the scope chain and writes value into the innermost
// frame that already defines name as a variable. If name is bound
// nowhere, it is defined fresh in f (the current frame). Returns false,
// writing nothing, if a constant binding of name is reached before any
// variable binding on the chain (the caller should raise ImmutableError
// in that case).
func (f *Frame) Assign(name string, value object.Value) bool {
	for frame := f; frame != nil; frame = frame.parent {
		if _, ok := frame.constants[name]; ok {
			return false
		}
		if _, ok := frame.variables[name]; ok {
			frame.variables[name] = value
			return true
		}
	}
	f.variables[name] = value
	return true
}

// Names returns every variable, constant, and function name bound
// directly in this frame (not ancestors) -- used by the REPL's /scope
// and /trace introspection commands.
func (f *Frame) Names() map[string]object.Value {
	out := make(map[string]object.Value, len(f.variables)+len(f.constants)+len(f.functions))
	for k, v := range f.constants {
		out[k] = v
	}
	for k, v := range f.variables {
		out[k] = v
	}
	for k, v := range f.functions {
		out[k] = v
	}
	return out
}

// Parent returns the enclosing frame, or nil for the global frame.
func (f *Frame) Parent() *Frame { return f.parent }
