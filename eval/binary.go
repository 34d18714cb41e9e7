/*
File    : vanction/eval/binary.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"math"
	"strings"

	"github.com/akashmaji946/vanction/ast"
	"github.com/akashmaji946/vanction/environment"
	"github.com/akashmaji946/vanction/object"
)

// evalBinary dispatches assignment, short-circuit logical operators,
// and every eager two-operand operator. `^`/`^N` arrive here already
// desugared by the parser into Binary{Op:"^", Right:Literal(exponent)}.
func (e *Evaluator) evalBinary(node *ast.Binary, env *environment.Frame) (object.Value, *object.RuntimeError) {
	switch node.Op {
	case "=":
		return e.evalAssign(node, env)
	case "&&":
		left, err := e.Eval(node.Left, env)
		if err != nil {
			return nil, err
		}
		if !object.Truthy(left) {
			return &object.Bool{Value: false}, nil
		}
		right, err := e.Eval(node.Right, env)
		if err != nil {
			return nil, err
		}
		return &object.Bool{Value: object.Truthy(right)}, nil
	case "||":
		left, err := e.Eval(node.Left, env)
		if err != nil {
			return nil, err
		}
		if object.Truthy(left) {
			return &object.Bool{Value: true}, nil
		}
		right, err := e.Eval(node.Right, env)
		if err != nil {
			return nil, err
		}
		return &object.Bool{Value: object.Truthy(right)}, nil
	}

	left, err := e.Eval(node.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(node.Right, env)
	if err != nil {
		return nil, err
	}
	if opErr := checkOperand(left, e.File, node.Pos); opErr != nil {
		return nil, opErr
	}
	if opErr := checkOperand(right, e.File, node.Pos); opErr != nil {
		return nil, opErr
	}

	switch node.Op {
	case "+", "-", "*", "/", "%":
		return e.evalArithmetic(node.Op, left, right, node.Pos)
	case "^":
		return e.evalPower(left, right, node.Pos)
	case "==", "!=":
		return e.evalEquality(node.Op, left, right, node.Pos)
	case "<", ">", "<=", ">=":
		return e.evalComparison(node.Op, left, right, node.Pos)
	case "&", "|", "^^", "<<", ">>":
		return e.evalBitwise(node.Op, left, right, node.Pos)
	default:
		return nil, object.NewError(object.TypeErrorKind, e.File, node.Pos.Line, node.Pos.Column, "unknown binary operator %s", node.Op)
	}
}

func (e *Evaluator) evalArithmetic(op string, left, right object.Value, pos ast.Pos) (object.Value, *object.RuntimeError) {
	if op == "+" {
		if ls, ok := left.(*object.String); ok {
			if rs, ok := right.(*object.String); ok {
				return &object.String{Value: ls.Value + rs.Value}, nil
			}
		}
	}
	lf, lIsInt, lok := asNumber(left)
	rf, rIsInt, rok := asNumber(right)
	if !lok || !rok {
		return nil, object.NewError(object.TypeErrorKind, e.File, pos.Line, pos.Column, "%s requires numbers, got %s and %s", op, left.Kind(), right.Kind())
	}
	bothInt := lIsInt && rIsInt

	switch op {
	case "+":
		if bothInt {
			return &object.Int{Value: int64(lf) + int64(rf)}, nil
		}
		return &object.Float{Value: lf + rf}, nil
	case "-":
		if bothInt {
			return &object.Int{Value: int64(lf) - int64(rf)}, nil
		}
		return &object.Float{Value: lf - rf}, nil
	case "*":
		if bothInt {
			return &object.Int{Value: int64(lf) * int64(rf)}, nil
		}
		return &object.Float{Value: lf * rf}, nil
	case "/":
		if rf == 0 {
			return nil, object.NewError(object.DivisionByZeroKind, e.File, pos.Line, pos.Column, "division by zero")
		}
		// `/` is always true division, int operands included, matching
		// Python's native `/`, which is always float division regardless
		// of operand types.
		return &object.Float{Value: lf / rf}, nil
	case "%":
		if rf == 0 {
			return nil, object.NewError(object.DivisionByZeroKind, e.File, pos.Line, pos.Column, "modulo by zero")
		}
		if bothInt {
			return &object.Int{Value: floorModInt(int64(lf), int64(rf))}, nil
		}
		return &object.Float{Value: floorModFloat(lf, rf)}, nil
	default:
		return nil, object.NewError(object.TypeErrorKind, e.File, pos.Line, pos.Column, "unknown arithmetic operator %s", op)
	}
}

// floorModInt implements Python's floored modulo: the result always
// takes the sign of the divisor, e.g. -7 % 3 == 2 rather than Go's
// truncated-toward-zero -1.
func floorModInt(l, r int64) int64 {
	result := l % r
	if result != 0 && (result < 0) != (r < 0) {
		result += r
	}
	return result
}

// floorModFloat is floorModInt's float counterpart, built on math.Mod
// the same way.
func floorModFloat(l, r float64) float64 {
	result := math.Mod(l, r)
	if result != 0 && (result < 0) != (r < 0) {
		result += r
	}
	return result
}

// evalPower handles `^`/`^3`/`^N`, desugared by the parser into a
// Binary whose Right is always an int Literal naming the exponent.
func (e *Evaluator) evalPower(left, right object.Value, pos ast.Pos) (object.Value, *object.RuntimeError) {
	exp, ok := right.(*object.Int)
	if !ok {
		return nil, object.NewError(object.TypeErrorKind, e.File, pos.Line, pos.Column, "^ exponent must be an int, got %s", right.Kind())
	}
	switch l := left.(type) {
	case *object.Int:
		if exp.Value < 0 {
			return &object.Float{Value: math.Pow(float64(l.Value), float64(exp.Value))}, nil
		}
		result := int64(1)
		for i := int64(0); i < exp.Value; i++ {
			result *= l.Value
		}
		return &object.Int{Value: result}, nil
	case *object.Float:
		return &object.Float{Value: math.Pow(l.Value, float64(exp.Value))}, nil
	default:
		return nil, object.NewError(object.TypeErrorKind, e.File, pos.Line, pos.Column, "^ requires a number base, got %s", left.Kind())
	}
}

func (e *Evaluator) evalBitwise(op string, left, right object.Value, pos ast.Pos) (object.Value, *object.RuntimeError) {
	li, lok := left.(*object.Int)
	ri, rok := right.(*object.Int)
	if !lok || !rok {
		return nil, object.NewError(object.TypeErrorKind, e.File, pos.Line, pos.Column, "%s requires ints, got %s and %s", op, left.Kind(), right.Kind())
	}
	switch op {
	case "&":
		return &object.Int{Value: li.Value & ri.Value}, nil
	case "|":
		return &object.Int{Value: li.Value | ri.Value}, nil
	case "^^":
		return &object.Int{Value: li.Value ^ ri.Value}, nil
	case "<<":
		return &object.Int{Value: li.Value << uint(ri.Value)}, nil
	case ">>":
		return &object.Int{Value: li.Value >> uint(ri.Value)}, nil
	default:
		return nil, object.NewError(object.TypeErrorKind, e.File, pos.Line, pos.Column, "unknown bitwise operator %s", op)
	}
}

func (e *Evaluator) evalEquality(op string, left, right object.Value, pos ast.Pos) (object.Value, *object.RuntimeError) {
	if !comparableKinds(left, right) {
		return nil, object.NewError(object.TypeErrorKind, e.File, pos.Line, pos.Column, "cannot compare %s and %s", left.Kind(), right.Kind())
	}
	eq := object.Equal(left, right)
	if op == "!=" {
		eq = !eq
	}
	return &object.Bool{Value: eq}, nil
}

func (e *Evaluator) evalComparison(op string, left, right object.Value, pos ast.Pos) (object.Value, *object.RuntimeError) {
	if !comparableKinds(left, right) {
		return nil, object.NewError(object.TypeErrorKind, e.File, pos.Line, pos.Column, "cannot compare %s and %s", left.Kind(), right.Kind())
	}
	if ls, ok := left.(*object.String); ok {
		rs := right.(*object.String)
		return boolFromCmp(op, strings.Compare(ls.Value, rs.Value)), nil
	}
	if lb, ok := left.(*object.Bool); ok {
		rb := right.(*object.Bool)
		return boolFromCmp(op, boolToInt(lb.Value)-boolToInt(rb.Value)), nil
	}
	if la, ok := left.(*object.Array); ok {
		ra := right.(*object.Array)
		cmp, cmpErr := lexicographicCompare(la.Elements, ra.Elements, e.File, pos)
		if cmpErr != nil {
			return nil, cmpErr
		}
		return boolFromCmp(op, cmp), nil
	}
	if lt, ok := left.(*object.Tuple); ok {
		rt := right.(*object.Tuple)
		cmp, cmpErr := lexicographicCompare(lt.Elements, rt.Elements, e.File, pos)
		if cmpErr != nil {
			return nil, cmpErr
		}
		return boolFromCmp(op, cmp), nil
	}
	if lf, _, lok := asNumber(left); lok {
		rf, _, _ := asNumber(right)
		return boolFromCmp(op, floatCompare(lf, rf)), nil
	}
	return nil, object.NewError(object.TypeErrorKind, e.File, pos.Line, pos.Column, "%s is not ordered, cannot compare", left.Kind())
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func floatCompare(l, r float64) int {
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

// lexicographicCompare compares two element sequences position by
// position (shorter-is-less when one is a prefix of the other),
// matching Python's native list/tuple ordering.
func lexicographicCompare(left, right []object.Value, file string, pos ast.Pos) (int, *object.RuntimeError) {
	n := len(left)
	if len(right) < n {
		n = len(right)
	}
	for i := 0; i < n; i++ {
		if object.Equal(left[i], right[i]) {
			continue
		}
		if !comparableKinds(left[i], right[i]) {
			return 0, object.NewError(object.TypeErrorKind, file, pos.Line, pos.Column, "cannot compare %s and %s", left[i].Kind(), right[i].Kind())
		}
		if ls, ok := left[i].(*object.String); ok {
			rs := right[i].(*object.String)
			return strings.Compare(ls.Value, rs.Value), nil
		}
		if lb, ok := left[i].(*object.Bool); ok {
			return boolToInt(lb.Value) - boolToInt(right[i].(*object.Bool).Value), nil
		}
		if la, ok := left[i].(*object.Array); ok {
			return lexicographicCompare(la.Elements, right[i].(*object.Array).Elements, file, pos)
		}
		if lt, ok := left[i].(*object.Tuple); ok {
			return lexicographicCompare(lt.Elements, right[i].(*object.Tuple).Elements, file, pos)
		}
		lf, _, lok := asNumber(left[i])
		if !lok {
			return 0, object.NewError(object.TypeErrorKind, file, pos.Line, pos.Column, "%s is not ordered, cannot compare", left[i].Kind())
		}
		rf, _, _ := asNumber(right[i])
		return floatCompare(lf, rf), nil
	}
	return floatCompare(float64(len(left)), float64(len(right))), nil
}

func boolFromCmp(op string, cmp int) *object.Bool {
	switch op {
	case "<":
		return &object.Bool{Value: cmp < 0}
	case ">":
		return &object.Bool{Value: cmp > 0}
	case "<=":
		return &object.Bool{Value: cmp <= 0}
	default:
		return &object.Bool{Value: cmp >= 0}
	}
}

// evalAssign handles `target = value` for the three assignable target
// shapes: a bare identifier, `obj.prop`, and `obj[index]`.
func (e *Evaluator) evalAssign(node *ast.Binary, env *environment.Frame) (object.Value, *object.RuntimeError) {
	switch target := node.Left.(type) {
	case *ast.Identifier:
		val, err := e.Eval(node.Right, env)
		if err != nil {
			return nil, err
		}
		if env.IsConstant(target.Name) {
			return nil, object.NewError(object.ImmutableErrorKind, e.File, node.Pos.Line, node.Pos.Column, "cannot assign to constant %s", target.Name)
		}
		env.Assign(target.Name, val)
		return val, nil

	case *ast.Member:
		objVal, err := e.Eval(target.Object, env)
		if err != nil {
			return nil, err
		}
		val, err := e.Eval(node.Right, env)
		if err != nil {
			return nil, err
		}
		d, ok := objVal.(*object.Dict)
		if !ok {
			return nil, object.NewError(object.TypeErrorKind, e.File, node.Pos.Line, node.Pos.Column, "cannot assign to a property of kind %s", objVal.Kind())
		}
		_ = d.Set(&object.String{Value: target.Property}, val)
		return val, nil

	case *ast.Index:
		objVal, err := e.Eval(target.Object, env)
		if err != nil {
			return nil, err
		}
		idxVal, err := e.Eval(target.Index, env)
		if err != nil {
			return nil, err
		}
		val, err := e.Eval(node.Right, env)
		if err != nil {
			return nil, err
		}
		switch ov := objVal.(type) {
		case *object.Array:
			idx, ok := idxVal.(*object.Int)
			if !ok {
				return nil, object.NewError(object.TypeErrorKind, e.File, node.Pos.Line, node.Pos.Column, "array index must be int, got %s", idxVal.Kind())
			}
			if idx.Value < 0 || idx.Value >= int64(len(ov.Elements)) {
				return nil, object.NewError(object.IndexOutOfRangeKind, e.File, node.Pos.Line, node.Pos.Column, "array index %d out of range for length %d", idx.Value, len(ov.Elements))
			}
			ov.Elements[idx.Value] = val
			return val, nil
		case *object.Dict:
			_ = ov.Set(idxVal, val)
			return val, nil
		case *object.Tuple:
			return nil, object.NewError(object.ImmutableErrorKind, e.File, node.Pos.Line, node.Pos.Column, "tuples are immutable")
		default:
			return nil, object.NewError(object.TypeErrorKind, e.File, node.Pos.Line, node.Pos.Column, "value of kind %s is not assignable by index", objVal.Kind())
		}

	default:
		return nil, object.NewError(object.TypeErrorKind, e.File, node.Pos.Line, node.Pos.Column, "invalid assignment target")
	}
}

// evalMultiAssign distributes Value across two or more Targets: an
// Array/Tuple is unpacked element-wise and must hold exactly one element
// per target (any other length is an error); any other value is
// broadcast to every target.
func (e *Evaluator) evalMultiAssign(node *ast.MultiAssign, env *environment.Frame) (object.Value, *object.RuntimeError) {
	rhs, err := e.Eval(node.Value, env)
	if err != nil {
		return nil, err
	}
	var values []object.Value
	switch rv := rhs.(type) {
	case *object.Array:
		values = rv.Elements
	case *object.Tuple:
		values = rv.Elements
	default:
		values = make([]object.Value, len(node.Targets))
		for i := range values {
			values[i] = rhs
		}
	}
	if len(values) != len(node.Targets) {
		return nil, object.NewError(object.TypeErrorKind, e.File, node.Pos.Line, node.Pos.Column, "multi-assign expects %d values, got %d", len(node.Targets), len(values))
	}
	for i, name := range node.Targets {
		if env.IsConstant(name) {
			return nil, object.NewError(object.ImmutableErrorKind, e.File, node.Pos.Line, node.Pos.Column, "cannot assign to constant %s", name)
		}
		env.Assign(name, values[i])
	}
	return rhs, nil
}
