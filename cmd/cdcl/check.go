package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-sat/cdcl/checker"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <formula.cnf> <proof>",
		Short: "Independently verify a proof against a DIMACS CNF formula",
		Long: `check reads a DIMACS CNF formula and a proof (a whitespace-separated
list of signed literals) and reports "s VERIFIED" or "s NOT VERIFIED",
with a diagnostic comment line on failure.

check trusts neither input: it makes no assumption that the proof was
produced by this repository's own solve command.`,
		Args: cobra.ExactArgs(2),
		RunE: runCheck,
	}
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	formulaFile, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening formula: %w", err)
	}
	defer formulaFile.Close()

	proofFile, err := os.Open(args[1])
	if err != nil {
		return fmt.Errorf("opening proof: %w", err)
	}
	defer proofFile.Close()

	clauses, err := checker.NewClauseReader(formulaFile)
	if err != nil {
		return fmt.Errorf("reading formula: %w", err)
	}
	proof := checker.NewProofReader(proofFile)

	out := cmd.OutOrStdout()
	if verifyErr := checker.Check(clauses, proof, clauses.MaxVar(), clauses.NumClauses()); verifyErr != nil {
		switch {
		case errors.Is(verifyErr, checker.ErrInconsistent),
			errors.Is(verifyErr, checker.ErrProofVarOutOfRange),
			errors.Is(verifyErr, checker.ErrFormulaVarOutOfRange),
			errors.Is(verifyErr, checker.ErrWrongNumberOfClauses),
			errors.Is(verifyErr, checker.ErrIncorrect):
		default:
			// A read or parse error in either input, not a verdict.
			return fmt.Errorf("reading input: %w", verifyErr)
		}
		fmt.Fprintln(out, "s NOT VERIFIED")
		fmt.Fprintf(out, "c %s\n", verifyErr)
		return nil
	}
	fmt.Fprintln(out, "s VERIFIED")
	return nil
}
