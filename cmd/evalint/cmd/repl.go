package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/go-evalint/internal/eval"
	"github.com/cwbudde/go-evalint/internal/host"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read statements from stdin, evaluating each against one persistent variable store",
	Long: `A minimal line-at-a-time driver: every line read from stdin is
evaluated against the same array-backed variable store, so assignments
made on one line are visible to the next. No prompt is printed; each
line's result is written on its own line — e.g. the input lines

  a = 10;
  a + 5

print

  10
  15`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	h := host.NewArrayHost(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		value, diag := eval.Evaluate(line, h.Callback)
		if diag == "" {
			traceInput(line, value)
		}
		fmt.Println(reportRepl(line, value, diag))
	}
	return scanner.Err()
}
