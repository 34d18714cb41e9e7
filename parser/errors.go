/*
File    : vanction/parser/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/vanction/object"

// ParseErrors accumulates syntax errors so the parser can report more
// than one per run instead of aborting at the first. Grounded on
// conneroisu-gix's pkg/parser/errors.go accumulator shape.
type ParseErrors struct {
	errs []*object.RuntimeError
}

// Add appends e to the accumulated errors.
func (p *ParseErrors) Add(e *object.RuntimeError) {
	p.errs = append(p.errs, e)
}

// HasErrors reports whether any error has been recorded.
func (p *ParseErrors) HasErrors() bool {
	return len(p.errs) > 0
}

// Count returns the number of recorded errors.
func (p *ParseErrors) Count() int {
	return len(p.errs)
}

// Errors returns every recorded error, in recording order.
func (p *ParseErrors) Errors() []*object.RuntimeError {
	return p.errs
}

// First returns the first recorded error, or nil if none.
func (p *ParseErrors) First() *object.RuntimeError {
	if len(p.errs) == 0 {
		return nil
	}
	return p.errs[0]
}
