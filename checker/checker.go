package checker

import (
	"errors"
	"fmt"
)

// Lit is a proof-side or formula-side literal using the checker's own
// signed-integer encoding (spec.md §3): the variable is |l|, the
// polarity is l >= 0. This is deliberately distinct from package
// cdcl's packed Lit encoding — the checker trusts nothing produced by
// the solver, including its literal representation.
type Lit int32

// Var returns the variable a literal refers to.
func (l Lit) Var() uint32 {
	if l < 0 {
		return uint32(-l)
	}
	return uint32(l)
}

// Polarity reports whether l asserts its variable true (l >= 0) or
// false (l < 0).
func (l Lit) Polarity() bool { return l >= 0 }

func (l Lit) String() string { return fmt.Sprintf("%d", int32(l)) }

// Clause is a disjunction of literals, as streamed from a formula.
type Clause []Lit

// The five ways a proof can fail to verify (spec.md §4.2–4.3). Each is
// a distinct sentinel so callers can discriminate with errors.Is
// rather than string-matching.
var (
	// ErrInconsistent: the proof assigns both polarities to some variable.
	ErrInconsistent = errors.New("checker: proof assigns a variable both polarities")
	// ErrProofVarOutOfRange: a proof literal names a variable > max_var.
	ErrProofVarOutOfRange = errors.New("checker: proof literal's variable exceeds max_var")
	// ErrFormulaVarOutOfRange: a formula literal names a variable > max_var.
	ErrFormulaVarOutOfRange = errors.New("checker: formula literal's variable exceeds max_var")
	// ErrWrongNumberOfClauses: the formula's actual clause count disagrees
	// with the caller-declared count.
	ErrWrongNumberOfClauses = errors.New("checker: formula clause count disagrees with declared count")
	// ErrIncorrect: some clause is not satisfied by the proof's assignment.
	ErrIncorrect = errors.New("checker: a clause is unsatisfied by the proof")
)

type assignState int8

const (
	stUnassigned assignState = iota
	stTrue
	stFalse
)

// Assignment is the partial function from variable to truth value
// built from a proof stream by BuildAssignment. A variable the proof
// does not mention satisfies neither of its literals.
type Assignment struct {
	state []assignState
}

// satisfies reports whether l is made true by a.
func (a *Assignment) satisfies(l Lit) bool {
	switch a.state[l.Var()] {
	case stTrue:
		return l.Polarity()
	case stFalse:
		return !l.Polarity()
	default:
		return false
	}
}

// LitIter yields the literals of a proof one at a time. Next returns
// ok=false (with err nil) once the stream is exhausted.
type LitIter interface {
	Next() (lit Lit, ok bool, err error)
}

// ClauseIter yields the clauses of a formula one at a time. Next
// returns ok=false (with err nil) once the stream is exhausted.
type ClauseIter interface {
	Next() (clause Clause, ok bool, err error)
}

// BuildAssignment consumes proof to completion, building the
// variable->polarity assignment it asserts. maxVar is the declared
// largest legal variable (spec.md's max_var); every proof literal must
// name a variable no greater than maxVar or BuildAssignment fails with
// ErrProofVarOutOfRange. A variable asserted with both polarities
// (anywhere in the stream, not just consecutively) fails with
// ErrInconsistent.
func BuildAssignment(proof LitIter, maxVar uint32) (*Assignment, error) {
	a := &Assignment{state: make([]assignState, maxVar+1)}
	for {
		lit, ok, err := proof.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return a, nil
		}
		v := lit.Var()
		if v > maxVar {
			return nil, ErrProofVarOutOfRange
		}
		pol := lit.Polarity()
		switch a.state[v] {
		case stUnassigned:
			if pol {
				a.state[v] = stTrue
			} else {
				a.state[v] = stFalse
			}
		case stTrue:
			if !pol {
				return nil, ErrInconsistent
			}
		case stFalse:
			if pol {
				return nil, ErrInconsistent
			}
		}
	}
}

// Check verifies that proof is a valid satisfying assignment for the
// formula streamed by clauses, which is declared to have exactly
// numClauses clauses over variables in [1, maxVar].
//
// It returns nil if every clause is satisfied by the assignment the
// proof asserts and the streamed clause count matches numClauses
// exactly; otherwise it returns one of the package's sentinel errors
// (wrap-checkable with errors.Is), matching whichever failure is
// encountered first while streaming. Both clauses and proof are
// consumed exactly once, in order (spec.md §4.2–4.3).
func Check(clauses ClauseIter, proof LitIter, maxVar uint32, numClauses int) error {
	assignment, err := BuildAssignment(proof, maxVar)
	if err != nil {
		return err
	}

	seen := 0
	for {
		clause, ok, err := clauses.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		satisfied := false
		for _, lit := range clause {
			if lit.Var() > maxVar {
				return ErrFormulaVarOutOfRange
			}
			if !satisfied && assignment.satisfies(lit) {
				satisfied = true
			}
		}
		if !satisfied {
			return ErrIncorrect
		}
		seen++
		if seen > numClauses {
			return ErrWrongNumberOfClauses
		}
	}
	if seen != numClauses {
		return ErrWrongNumberOfClauses
	}
	return nil
}

// LitSlice adapts a []Lit already held in memory into a LitIter, for
// tests and small proofs that don't warrant a streaming reader.
type LitSlice []Lit

// Next implements LitIter.
func (s *LitSlice) Next() (Lit, bool, error) {
	if len(*s) == 0 {
		return 0, false, nil
	}
	l := (*s)[0]
	*s = (*s)[1:]
	return l, true, nil
}

// ClauseSlice adapts a []Clause already held in memory into a
// ClauseIter, for tests and small formulas that don't warrant a
// streaming reader.
type ClauseSlice []Clause

// Next implements ClauseIter.
func (s *ClauseSlice) Next() (Clause, bool, error) {
	if len(*s) == 0 {
		return nil, false, nil
	}
	c := (*s)[0]
	*s = (*s)[1:]
	return c, true, nil
}
