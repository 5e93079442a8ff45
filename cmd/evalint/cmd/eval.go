package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-evalint/internal/eval"
	"github.com/cwbudde/go-evalint/internal/host"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval EXPR",
	Short: "Evaluate a single inline expression (shorthand for run -e)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		h := host.NewArrayHost(os.Stdout)
		value, diag := eval.Evaluate(args[0], h.Callback)
		if diag == "" {
			traceInput(args[0], value)
		}
		fmt.Println(report(args[0], value, diag))
		if diag != "" {
			return fmt.Errorf("evaluation failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
