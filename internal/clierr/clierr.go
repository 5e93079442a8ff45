// Package clierr formats evaluator diagnostics for terminal output. It
// is a reduced adaptation of go-dws's internal/errors package: a one-line
// "error: message" register with no line/column, since the evaluator's
// diagnostics are single-line static strings with no source coordinates
// to report. FormatWithSource only appends the whole offending input.
package clierr

import "fmt"

// Diagnostic wraps one of the evaluator's static diagnostic strings with
// the input that produced it, for CLI and REPL reporting.
type Diagnostic struct {
	Message string
	Source  string
}

// Format renders the diagnostic the way the CLI prints failures.
func (d Diagnostic) Format() string {
	return fmt.Sprintf("error: %s", d.Message)
}

// FormatWithSource renders the diagnostic alongside the input that
// triggered it, for contexts (like the REPL) where echoing the source
// helps more than a bare message.
func (d Diagnostic) FormatWithSource() string {
	return fmt.Sprintf("error: %s\n  in: %s", d.Message, d.Source)
}
