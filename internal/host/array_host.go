// Package host provides the evaluator's demonstration collaborator: an
// identifier store and a print builtin, kept external to the core
// evaluation loop. It exists so the evaluator has something runnable to
// drive from cmd/evalint; none of its behavior is part of the
// evaluator's contract.
package host

import (
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/go-evalint/internal/eval"
)

// ArrayHost is an array-backed variable store that also answers
// print(...) calls by writing each argument followed by a space, in
// order, with no separator beyond that trailing space and a final
// newline: print(10, 17) writes "10 17 \n". It generalizes the
// reference C host's 26-slot "int vars[26]" array (one slot per
// lowercase letter) from a fixed alphabet to arbitrary identifier
// names, addressed through a name-to-slot map over a growable backing
// slice rather than a hardcoded letter index.
type ArrayHost struct {
	out   io.Writer
	slot  map[string]int
	value []int64
}

// NewArrayHost creates a host that writes print(...) output to out.
func NewArrayHost(out io.Writer) *ArrayHost {
	return &ArrayHost{out: out, slot: make(map[string]int)}
}

// Set seeds a variable before evaluation begins, for CLI --vars support.
func (h *ArrayHost) Set(name string, value int64) {
	h.value[h.slotFor(name)] = value
}

// Get returns a variable's current value, for inspecting results after
// evaluation.
func (h *ArrayHost) Get(name string) int64 {
	idx, ok := h.slot[name]
	if !ok {
		return 0
	}
	return h.value[idx]
}

func (h *ArrayHost) slotFor(name string) int {
	if idx, ok := h.slot[name]; ok {
		return idx
	}
	idx := len(h.value)
	h.slot[name] = idx
	h.value = append(h.value, 0)
	return idx
}

// Callback implements eval.Callback: bare reads and assignments go
// through the array store; print(...) is the one recognized call; any
// other call returns eval.Sentinel rather than 0. Evaluate passes that
// value through as an ordinary integer, so it does not produce a
// diagnostic.
func (h *ArrayHost) Callback(name string, args []int64, argc int) int64 {
	switch argc {
	case -1: // assignment
		v := args[0]
		h.value[h.slotFor(name)] = v
		return v

	case 0: // bare identifier read (or zero-arg call)
		if name == "print" {
			return h.print(nil)
		}
		return h.Get(name)

	default: // positional call
		if name == "print" {
			return h.print(args)
		}
		return eval.Sentinel
	}
}

// print writes each argument followed by a single space, then a
// trailing newline — nothing precedes the newline when there are no
// arguments, matching the reference host's loop-then-newline shape.
func (h *ArrayHost) print(args []int64) int64 {
	var b strings.Builder
	for _, a := range args {
		fmt.Fprintf(&b, "%d ", a)
	}
	b.WriteByte('\n')
	fmt.Fprint(h.out, b.String())
	return 0
}
