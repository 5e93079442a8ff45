// Package eval implements a single-pass integer expression evaluator.
//
// Evaluate tokenizes, parses, and reduces a C-like expression in one left
// to right scan of the input, using two bounded stacks (one for operands,
// one for pending operators and deferred parser state) to perform
// operator-precedence folding inline. No intermediate syntax tree is ever
// materialized.
//
// Identifier reads, assignments, and function calls are delegated to a
// host-supplied Callback; the package itself knows nothing about variables
// or functions beyond the calling convention described on Callback.
package eval

import "math"

// Sentinel is returned by Evaluate on any failure. It is accompanied by a
// non-empty diagnostic describing the failure; a legitimate computation
// may coincidentally equal Sentinel, so callers must branch on the
// diagnostic, not on the returned value.
const Sentinel int64 = math.MinInt64

// The complete, closed set of diagnostics Evaluate can report.
const (
	diagNullFunction    = "calling a null function"
	diagNegativePower   = "negative powers not supported"
	diagUnrecognizedOp  = "unrecognized operator"
	diagIncomplete      = "incomplete expression"
	diagBadComma        = "unknown state found at comma"
	diagUnexpectedParen = "unexpected parenthesis"
	diagSyntaxError     = "syntax error"
	diagTooDeeplyNested = "expression too deeply nested"
	diagDivideByZero    = "division by zero"
)

// Callback resolves identifier reads, assignments, and calls on behalf of
// Evaluate. name is a slice of the source string passed to Evaluate;
// since Go strings are immutable, a callback is free to retain it (e.g.
// as a map key) past the call.
//
// argc encodes the shape of the reference:
//   - argc == 0: a bare identifier reference (getter, or a zero-arg call
//     — Evaluate does not distinguish the two).
//   - argc > 0: a call with that many positional arguments, held
//     contiguously in args.
//   - argc == -1: an assignment; args holds exactly one element, the
//     value to store. The callback stores it and returns the stored
//     value.
type Callback func(name string, args []int64, argc int) int64

// Evaluate runs source to completion and returns the value of its last
// statement, or Sentinel and a diagnostic on failure. An empty source
// evaluates to 0 with no diagnostic; a trailing ";" (as in "5;") leaves
// the value of the statement before it as the result.
//
// cb may be nil; any identifier reference, call, or assignment then fails
// with "calling a null function".
func Evaluate(source string, cb Callback) (int64, string) {
	m := newMachine(source, cb)
	return m.run()
}
