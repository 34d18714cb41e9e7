/*
File    : vanction/builtin/registry.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package builtin holds the pluggable registry of host-provided
// functions (System.*, array.*, dict.*, str.*, File.*, and the free
// functions len/str/int/float/range). It depends only on object, never
// on eval, so eval can import builtin without a cycle: the Runtime
// interface below is the narrow surface the registry needs back from
// the evaluator (grounded on akashmaji946-go-mix's std.Runtime /
// std.CallbackFunc pattern).
package builtin

import (
	"bufio"
	"io"

	"github.com/akashmaji946/vanction/object"
)

// Runtime is the slice of the evaluator that builtins may call back
// into: where to write output, and where to read input from.
type Runtime interface {
	Writer() io.Writer
	InputReader() *bufio.Reader
}

// adder is the shape NewRegistry's helpers use to populate the map
// without repeating the map-literal boilerplate in every file.
type adder func(name string, fn object.BuiltInFunc)

// NewRegistry builds the full builtin table, with each entry's closure
// capturing rt for the handful of functions (System.print, System.input)
// that need I/O.
func NewRegistry(rt Runtime) map[string]*object.BuiltIn {
	reg := make(map[string]*object.BuiltIn)
	add := func(name string, fn object.BuiltInFunc) {
		reg[name] = &object.BuiltIn{Name: name, Fn: fn}
	}
	registerCore(add, rt)
	registerArray(add)
	registerDict(add)
	registerStr(add)
	registerFile(add)
	return reg
}
