package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/go-evalint/internal/clierr"
	"github.com/cwbudde/go-evalint/internal/host"
)

// parseVars parses a "name=value,name=value" flag into seed assignments
// on h, the demo-host analogue of cmd/dwscript/cmd/run.go's unit search
// path configuration — a small piece of CLI-level configuration surface,
// not a general config file format.
func parseVars(h *host.ArrayHost, spec string) error {
	if spec == "" {
		return nil
	}
	for _, pair := range strings.Split(spec, ",") {
		name, valStr, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid --vars entry %q: expected name=value", pair)
		}
		val, err := strconv.ParseInt(strings.TrimSpace(valStr), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid --vars entry %q: %w", pair, err)
		}
		h.Set(strings.TrimSpace(name), val)
	}
	return nil
}

// report renders an evaluation result or bare diagnostic for stdout,
// the shape used by "run" and "eval".
func report(input string, value int64, diag string) string {
	if diag != "" {
		return clierr.Diagnostic{Message: diag, Source: input}.Format()
	}
	return fmt.Sprintf("%d", value)
}

// reportRepl is report's REPL counterpart: on failure it echoes the
// offending line alongside the message, since the REPL has no other
// record of what was typed once the line scrolls past it.
func reportRepl(input string, value int64, diag string) string {
	if diag != "" {
		return clierr.Diagnostic{Message: diag, Source: input}.FormatWithSource()
	}
	return fmt.Sprintf("%d", value)
}

// traceInput writes "input => value" to stderr when --trace is set,
// leaving stdout holding only the evaluation result.
func traceInput(input string, value int64) {
	if trace {
		fmt.Fprintf(os.Stderr, "%s => %d\n", input, value)
	}
}
