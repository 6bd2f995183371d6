// Package cdcl implements a CDCL (Conflict-Driven Clause Learning) SAT
// solver: naive per-clause unit propagation, 1-UIP conflict analysis,
// non-chronological backtracking, Luby-scheduled restarts, and a
// frequency-based decision heuristic with phase saving.
//
// The solver consumes a formula in in-memory clause form (produced by
// ParseDIMACS or built by hand with AddClause) and decides whether it
// is satisfiable, returning a total assignment on Sat. It does not
// parse DIMACS itself beyond the ParseDIMACS/WriteDIMACS helpers in
// this package, does not support incremental solving, and does not
// emit a machine-checkable proof; pair it with package checker to
// verify a claimed assignment against the original formula
// independently of how it was produced.
package cdcl
