package cdcl

import "sort"

// ClauseID indexes into a Solver's clause database. noAntecedent is the
// sentinel meaning "this variable was a decision, or is unassigned" —
// spec calls this out as an implementation artefact of the "-1" sentinel
// rather than part of the external contract; a systems rewrite should
// use a tagged Decision|Reason(ClauseID) variant instead.
type ClauseID int32

const noAntecedent ClauseID = -1

// Clause is an ordered, duplicate-tolerated disjunction of literals as
// given by a caller. Clauses built internally by clause learning are
// sorted and deduplicated (see resolve in solver.go).
type Clause []Lit

// sortedUnique returns a new clause with the same literals, sorted and
// with duplicates removed. Used only for learnt clauses: input clauses
// are accepted with duplicates intact per spec.
func sortedUnique(lits []Lit) Clause {
	cp := make([]Lit, len(lits))
	copy(cp, lits)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	out := cp[:0]
	for i, l := range cp {
		if i == 0 || l != cp[i-1] {
			out = append(out, l)
		}
	}
	return Clause(out)
}
