// Command evalint is a small driver around the internal/eval expression
// evaluator: it is the demonstration harness the spec calls out as
// external to the core, not part of the evaluator's contract.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-evalint/cmd/evalint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
