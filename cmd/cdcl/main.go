// Command cdcl runs a CDCL SAT search engine and an independent proof
// checker over DIMACS CNF input.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cdcl",
		Short: "A CDCL SAT solver and an independent proof checker",
		Long: `cdcl is a conflict-driven clause-learning SAT solver paired with a
proof checker that trusts nothing the solver produces.

  cdcl solve [-v] [input.cnf]    run the search engine
  cdcl check formula.cnf proof   verify a candidate assignment`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCmd())
	root.AddCommand(newCheckCmd())
	return root
}
