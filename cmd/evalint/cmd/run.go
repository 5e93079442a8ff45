package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-evalint/internal/eval"
	"github.com/cwbudde/go-evalint/internal/host"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	varsFlag string
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Evaluate a file or inline expression",
	Long: `Evaluate an expression from a file or from -e, against a fresh
array-backed variable store.

Examples:
  evalint run script.expr
  evalint run -e "16 * 17 + 18"
  evalint run -e "a = 10; b = 17; print(a,b); a + b" --vars a=0,b=0`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading from file")
	runCmd.Flags().StringVar(&varsFlag, "vars", "", "seed variables before evaluating, as name=value,name=value")
}

func runScript(_ *cobra.Command, args []string) error {
	var input string

	switch {
	case evalExpr != "":
		input = evalExpr
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e for inline source")
	}

	h := host.NewArrayHost(os.Stdout)
	if err := parseVars(h, varsFlag); err != nil {
		return err
	}

	value, diag := eval.Evaluate(input, h.Callback)
	if diag == "" {
		traceInput(input, value)
	}
	fmt.Println(report(input, value, diag))
	if diag != "" {
		return fmt.Errorf("evaluation failed")
	}
	return nil
}
