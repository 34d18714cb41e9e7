/*
File    : vanction/builtin/helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtin

import "github.com/akashmaji946/vanction/object"

// argCountErr and typeErr leave File/Line/Column blank; eval's
// invokeValue backfills the call site's position before the error
// reaches user code, the same way akashmaji946-go-mix's evaluator
// stamps position onto std-layer errors at the CallFunction boundary.
func argCountErr(fn string, want, got int) *object.RuntimeError {
	return object.NewError(object.FunctionCallErrorKind, "", 0, 0,
		"%s expects %d argument(s), got %d", fn, want, got)
}

func typeErr(fn, want string, got object.Value) *object.RuntimeError {
	return object.NewError(object.TypeErrorKind, "", 0, 0,
		"%s expects %s, got %s", fn, want, got.Kind())
}

func keyNotFoundErr(fn string, key object.Value) *object.RuntimeError {
	return object.NewError(object.KeyNotFoundKind, "", 0, 0,
		"%s: key %s not found", fn, key.String())
}

func indexErr(fn string, idx, length int) *object.RuntimeError {
	return object.NewError(object.IndexOutOfRangeKind, "", 0, 0,
		"%s: index %d out of range for length %d", fn, idx, length)
}

func asInt(v object.Value) (int64, bool) {
	i, ok := v.(*object.Int)
	if !ok {
		return 0, false
	}
	return i.Value, true
}

func asString(v object.Value) (string, bool) {
	s, ok := v.(*object.String)
	if !ok {
		return "", false
	}
	return s.Value, true
}

func asArray(v object.Value) (*object.Array, bool) {
	a, ok := v.(*object.Array)
	return a, ok
}

func asDict(v object.Value) (*object.Dict, bool) {
	d, ok := v.(*object.Dict)
	return d, ok
}
