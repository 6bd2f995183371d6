package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-sat/cdcl"
)

func newSolveCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "solve [input.cnf]",
		Short: "Run the CDCL search engine over a DIMACS CNF formula",
		Long: `solve reads a single DIMACS CNF problem and reports the verdict in the
conventional form: "s SATISFIABLE" followed by a "v"-line giving the
assignment, or "s UNSATISFIABLE" alone.

If no input file is given, solve reads from standard input. The -v
flag additionally prints conflict/restart/propagation counters to
stderr.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print solver statistics to stderr")
	return cmd
}

func runSolve(cmd *cobra.Command, args []string, verbose bool) error {
	r, closeFn, err := openInput(args)
	if err != nil {
		return err
	}
	defer closeFn()

	clauses, numVars, _, err := cdcl.ParseDIMACS(r)
	if err != nil {
		return fmt.Errorf("reading DIMACS input: %w", err)
	}

	solver := cdcl.NewFromClauses(numVars, clauses)
	result := solver.Solve()

	out := cmd.OutOrStdout()
	switch result {
	case cdcl.Unsat:
		fmt.Fprintln(out, "s UNSATISFIABLE")
	case cdcl.Sat:
		fmt.Fprintln(out, "s SATISFIABLE")
		fmt.Fprint(out, "v")
		for v := 1; v <= numVars; v++ {
			if solver.Value(cdcl.Var(v)) {
				fmt.Fprintf(out, " %d", v)
			} else {
				fmt.Fprintf(out, " %d", -v)
			}
		}
		fmt.Fprintln(out, " 0")
	}

	if verbose {
		stats := solver.Stats()
		errOut := cmd.ErrOrStderr()
		fmt.Fprintf(errOut, "conflicts     %d\n", stats.Conflicts)
		fmt.Fprintf(errOut, "restarts      %d\n", stats.Restarts)
		fmt.Fprintf(errOut, "propagations  %d\n", stats.Propagations)
		fmt.Fprintf(errOut, "clauses       %d\n", stats.Clauses)
	}
	return nil
}

// openInput returns args[0] opened for reading, or stdin if args is
// empty, along with a close function that is always safe to call.
func openInput(args []string) (io.Reader, func() error, error) {
	if len(args) == 0 {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
