package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var verbose bool
var trace bool

var rootCmd = &cobra.Command{
	Use:   "evalint",
	Short: "A single-pass integer expression evaluator",
	Long: `evalint evaluates C-like integer expressions in one left-to-right
pass, with no intermediate syntax tree: two bounded stacks drive
operator-precedence folding directly over the input.

Identifiers and calls are resolved against a small array-backed variable
store with one builtin, print(...), used by the "run" and "repl"
subcommands to demonstrate the evaluator end to end.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
`, GitCommit))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "print each evaluated input and its result to stderr")
}
