// Package checker independently verifies a claimed satisfying
// assignment (a "proof": a stream of literals) against a CNF formula
// (a stream of clauses), without trusting whatever produced either
// stream — in particular, without trusting package cdcl's solver.
//
// Verification happens in two stages: first the proof stream is
// folded into a variable->polarity assignment while checking that
// every proof literal's variable is in range and that no variable is
// assigned both polarities (package-level BuildAssignment); then every
// formula clause is streamed once and checked for satisfaction under
// that assignment, with the total clause count checked against a
// caller-declared value (Check).
//
// Both stages consume their input stream exactly once, left to right,
// with no random access — see ClauseReader and ProofReader for
// streaming DIMACS-shaped readers that never materialize the whole
// input in memory.
package checker
