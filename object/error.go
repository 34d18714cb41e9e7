/*
File    : vanction/object/error.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"fmt"
	"strings"
)

// ErrorKind names one of the taxonomy's error categories.
type ErrorKind string

const (
	SyntaxErrorKind      ErrorKind = "SyntaxError"
	UndefinedErrorKind   ErrorKind = "UndefinedError"
	TypeErrorKind        ErrorKind = "TypeError"
	IndexOutOfRangeKind  ErrorKind = "IndexOutOfRange"
	KeyNotFoundKind      ErrorKind = "KeyNotFound"
	DivisionByZeroKind   ErrorKind = "DivisionByZero"
	ImmutableErrorKind   ErrorKind = "ImmutableError"
	AnytionErrorKind     ErrorKind = "AnytionError"
	UnassignedErrorKind  ErrorKind = "UnassignedError"
	FunctionCallErrorKind ErrorKind = "FunctionCallError"
	UserExceptionKind    ErrorKind = "UserException"
	ImportErrorKind      ErrorKind = "ImportError"

	// IOErrorKind covers File.* host I/O failures. It is not part of the
	// core error taxonomy but is needed for the supplemented File.*
	// surface (see SPEC_FULL.md §4); it follows the same shape as every
	// other RuntimeError so catch() type filters work against it too.
	IOErrorKind ErrorKind = "IOError"
)

// RuntimeError is the uniform error carrier for both the parser
// (SyntaxError) and the evaluator (every other kind). It always carries
// a source position so the CLI/REPL can render the caret diagram.
type RuntimeError struct {
	ErrKind ErrorKind
	Message string
	File    string
	Line    int
	Column  int
	Hint    string

	// Payload carries the UserException's thrown value for `throw EXPR;`,
	// so `catch` can read more than just its string message if needed.
	Payload Value
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrKind, e.Message)
}

// NewError constructs a RuntimeError of the given kind at pos.
func NewError(kind ErrorKind, file string, line, col int, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{
		ErrKind: kind,
		Message: fmt.Sprintf(format, args...),
		File:    file,
		Line:    line,
		Column:  col,
	}
}

// WithHint attaches a remediation hint and returns the same error for
// chaining at the construction site.
func (e *RuntimeError) WithHint(hint string) *RuntimeError {
	e.Hint = hint
	return e
}

// AsDict renders the error as the `{type, message}` record that `catch`
// binds its variable to, per the original interpreter's catch semantics.
func (e *RuntimeError) AsDict() *Dict {
	d := NewDict()
	d.SetString("type", string(e.ErrKind))
	d.SetString("message", e.Message)
	return d
}

// Pretty renders the §6 error-output contract:
//
//	Error: <kind>: <message>
//	  --> <file>:<line>:<column>
//	<line> | <source line verbatim>
//	       | <caret underline at column>
//	Hint: <hint>   (when available)
func (e *RuntimeError) Pretty(source string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s\n", e.Error())
	fmt.Fprintf(&b, "  --> %s:%d:%d\n", e.File, e.Line, e.Column)

	lines := strings.Split(source, "\n")
	if e.Line >= 1 && e.Line <= len(lines) {
		srcLine := lines[e.Line-1]
		lineNoStr := fmt.Sprintf("%d", e.Line)
		fmt.Fprintf(&b, "%s | %s\n", lineNoStr, srcLine)
		pad := strings.Repeat(" ", len(lineNoStr))
		caretPad := e.Column - 1
		if caretPad < 0 {
			caretPad = 0
		}
		fmt.Fprintf(&b, "%s | %s^\n", pad, strings.Repeat(" ", caretPad))
	}
	if e.Hint != "" {
		fmt.Fprintf(&b, "Hint: %s\n", e.Hint)
	}
	return b.String()
}

// FlowKind tags the outcome of executing a statement, replacing the
// host-exception-based Return/Break/Continue of the source this was
// distilled from with an explicit result variant (see DESIGN.md §eval).
type FlowKind int

const (
	FlowNormal FlowKind = iota
	FlowReturning
	FlowBreaking
	FlowContinuing
)

// Flow is the non-local-exit signal threaded up through statement
// execution. Loops inspect it to stop or continue; function invocation
// consumes a FlowReturning to produce its result.
type Flow struct {
	Kind  FlowKind
	Value Value // populated only for FlowReturning
}

// NormalFlow is the steady-state result of executing a statement that
// did not return/break/continue.
var NormalFlow = Flow{Kind: FlowNormal}
