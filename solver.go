package cdcl

import "github.com/kr/pretty"

// restartScale is the base unit the Luby sequence is multiplied by to
// compute the next restart threshold (spec.md §4.1).
const restartScale = 512

// SatResult is the solver's verdict. The solver never distinguishes
// failure kinds beyond Unsat (spec.md §7) — there is no partial or
// error result, only Sat or Unsat.
type SatResult int

const (
	Unsat SatResult = iota
	Sat
)

func (r SatResult) String() string {
	if r == Sat {
		return "SATISFIABLE"
	}
	return "UNSATISFIABLE"
}

// Stats are informational counters about a single Solve call. Field
// names follow the original meowc-sat stats.rs/solver.rs reporting
// (propagations, conflicts, restarts, final clause count); they carry
// no part of the solver's contract.
type Stats struct {
	Propagations uint64
	Conflicts    uint64
	Restarts     uint64
	Clauses      int
}

// Tracer receives verbose diagnostic output from a Solver when
// Solver.Trace is set. The easiest implementation wraps the standard
// library log package, as in log.New(...).Printf.
type Tracer interface {
	Printf(format string, args ...interface{})
}

type triState int8

const (
	unassigned triState = iota
	assignedTrue
	assignedFalse
)

type litStatus int8

const (
	litUnassigned litStatus = iota
	litSat
	litUnsat
)

// Solver is mutable CDCL search state: clause database, assignment
// trail bookkeeping, and per-variable activity/phase tracking. A
// Solver is created with New, populated with AddClause, then solved
// exactly once with Solve; it is not safe for concurrent or
// interleaved use (spec.md §5).
type Solver struct {
	// Trace, if true, causes verbose decision/conflict/backtrack
	// output via Tracer. Tracer must be non-nil when Trace is true.
	Trace  bool
	Tracer Tracer

	numVars       Var
	decisionLevel uint32
	numAssigned   uint32

	assignment []triState
	declevel   []uint32 // decision_level[v]
	antecedent []ClauseID
	phase      []bool
	frequency  []int32
	freqCache  []int32

	clauses []Clause

	luby        Luby
	nextRestart uint64

	stats Stats

	solving bool
	solved  bool
}

// New creates a Solver for a formula over variables [1, numVars].
func New(numVars int) *Solver {
	n := numVars + 1
	s := &Solver{
		numVars:     Var(numVars),
		assignment:  make([]triState, n),
		declevel:    make([]uint32, n),
		antecedent:  make([]ClauseID, n),
		phase:       make([]bool, n),
		frequency:   make([]int32, n),
		freqCache:   make([]int32, n),
		luby:        newLuby(),
		nextRestart: restartScale,
	}
	for v := range s.antecedent {
		s.antecedent[v] = noAntecedent
	}
	return s
}

// AddClause adds a clause to the solver's database. Legal only before
// Solve is called; calling it afterward panics, since clause addition
// mid-search is outside this solver's contract (no incremental
// solving API per spec.md Non-goals).
func (s *Solver) AddClause(lits []Lit) {
	if s.solving || s.solved {
		panic("cdcl: AddClause called after Solve")
	}
	clause := make(Clause, len(lits))
	copy(clause, lits)
	s.addClauseLocked(clause)
}

// addClauseLocked ingests clause into the database and updates the
// frequency/frequency-cache activity bookkeeping (spec.md §4.1
// "Activity / frequencies"): every literal occurrence bumps
// freqCache[v], and also bumps frequency[v] unless v is currently
// assigned (frozen at -1).
func (s *Solver) addClauseLocked(clause Clause) {
	for _, lit := range clause {
		v := lit.Var()
		if s.frequency[v] != -1 {
			s.frequency[v]++
		}
		s.freqCache[v]++
	}
	s.clauses = append(s.clauses, clause)
}

func (s *Solver) allAssigned() bool {
	return s.numAssigned == uint32(s.numVars)
}

// Solve runs the CDCL search to completion: decide, propagate, analyze
// conflicts with 1-UIP learning, backtrack non-chronologically, and
// restart on a Luby schedule. On Sat the final assignment is total
// over [1, numVars] and satisfies every clause added via AddClause.
func (s *Solver) Solve() SatResult {
	if s.solving || s.solved {
		panic("cdcl: Solve called more than once")
	}
	s.solving = true
	defer func() { s.solving = false; s.solved = true; s.stats.Clauses = len(s.clauses) }()

	s.decisionLevel = 0
	if _, conflict := s.unitPropagate(); conflict {
		return Unsat
	}

	for !s.allAssigned() {
		s.decisionLevel++
		lit := s.chooseAssignment()
		s.assign(lit, noAntecedent)
		s.trace("decide: %s at level %d", lit, s.decisionLevel)

		for {
			conflictID, conflict := s.unitPropagate()
			if !conflict {
				break
			}
			if s.decisionLevel == 0 {
				return Unsat
			}
			s.conflictAnalysis(conflictID)
			s.stats.Conflicts++
			if s.shouldRestart() {
				s.stats.Restarts++
				s.backtrack(0)
				s.trace("restart #%d at conflict #%d", s.stats.Restarts, s.stats.Conflicts)
			}
		}
	}
	return Sat
}

// Stats returns the informational counters accumulated by the most
// recent (or in-progress) Solve call.
func (s *Solver) Stats() Stats { return s.stats }

// Value reports the final assigned polarity of v. Only meaningful
// after Solve has returned Sat.
func (s *Solver) Value(v Var) bool {
	return s.assignment[v] == assignedTrue
}

// unitPropagate performs naive fixpoint unit propagation: repeatedly
// scan every clause in insertion order; the first clause found unit or
// conflicting on a given pass determines the next action, and the
// outer scan restarts from the beginning after every assignment. This
// ordering is part of the solver's observable contract (spec.md §5):
// two solvers given identical clause sequences reach identical
// decisions and learnt clauses.
func (s *Solver) unitPropagate() (ClauseID, bool) {
outer:
	for {
		for cid := 0; cid < len(s.clauses); cid++ {
			clause := s.clauses[cid]
			var unit Lit
			unassignedCount := 0
			satisfied := false
			for _, lit := range clause {
				switch s.statusOf(lit) {
				case litSat:
					satisfied = true
				case litUnassigned:
					unassignedCount++
					unit = lit
				}
				if satisfied {
					break
				}
			}
			switch {
			case satisfied:
				continue
			case unassignedCount > 1:
				continue
			case unassignedCount == 1:
				s.assign(unit, ClauseID(cid))
				s.stats.Propagations++
				s.trace("propagate: %s from clause %d", unit, cid)
				continue outer
			default:
				s.trace("conflict at clause %d", cid)
				return ClauseID(cid), true
			}
		}
		return 0, false
	}
}

func (s *Solver) statusOf(l Lit) litStatus {
	switch s.assignment[l.Var()] {
	case unassigned:
		return litUnassigned
	case assignedTrue:
		if l.Polarity() {
			return litSat
		}
		return litUnsat
	default: // assignedFalse
		if l.Polarity() {
			return litUnsat
		}
		return litSat
	}
}

// assign binds lit at the current decision level, recording antecedent
// as its forcing clause (noAntecedent for a decision literal), and
// freezes its activity score so chooseAssignment never reselects it.
func (s *Solver) assign(lit Lit, antecedent ClauseID) {
	v := lit.Var()
	if lit.Polarity() {
		s.assignment[v] = assignedTrue
	} else {
		s.assignment[v] = assignedFalse
	}
	s.declevel[v] = s.decisionLevel
	s.antecedent[v] = antecedent
	s.frequency[v] = -1
	s.numAssigned++
}

// unassign clears v's binding, saving its last polarity into phase
// (phase saving) and restoring its activity score from the cache.
func (s *Solver) unassign(v Var) {
	switch s.assignment[v] {
	case assignedTrue:
		s.phase[v] = true
	case assignedFalse:
		s.phase[v] = false
	}
	s.assignment[v] = unassigned
	s.declevel[v] = 0
	s.antecedent[v] = noAntecedent
	s.frequency[v] = s.freqCache[v]
	s.numAssigned--
}

// backtrack unassigns every variable bound above level and resets the
// decision level. This is the non-chronological backjump: level need
// not be decisionLevel-1.
func (s *Solver) backtrack(level uint32) {
	for v := Var(1); v <= s.numVars; v++ {
		if s.declevel[v] > level {
			s.unassign(v)
		}
	}
	s.decisionLevel = level
}

// chooseAssignment picks the unassigned variable with maximum
// frequency (first such in index order on ties — spec.md §4.1), with
// its last-saved phase as polarity.
func (s *Solver) chooseAssignment() Lit {
	best := Var(0)
	bestFreq := int32(-2)
	for v := Var(1); v <= s.numVars; v++ {
		if s.frequency[v] > bestFreq {
			bestFreq = s.frequency[v]
			best = v
		}
	}
	return newLit(best, s.phase[best])
}

func (s *Solver) shouldRestart() bool {
	should := s.stats.Conflicts >= s.nextRestart
	if should {
		s.nextRestart = s.stats.Conflicts + s.luby.Next()*restartScale
	}
	return should
}

// conflictAnalysis learns the 1-UIP clause derived from conflictID,
// adds it to the database, and backtracks to the second-highest
// decision level among the learnt clause's literals (0 if the learnt
// clause has only the UIP).
func (s *Solver) conflictAnalysis(conflictID ClauseID) {
	learnt := s.derive1UIP(conflictID)
	s.addClauseLocked(learnt)
	s.trace("learnt clause %v", learnt)

	backtrackLevel := uint32(0)
	for _, lit := range learnt {
		lvl := s.declevel[lit.Var()]
		if lvl < s.decisionLevel && lvl > backtrackLevel {
			backtrackLevel = lvl
		}
	}
	s.backtrack(backtrackLevel)
}

// derive1UIP repeatedly resolves the conflicting clause against
// antecedents until exactly one of its literals is assigned at the
// conflict's decision level (the first UIP).
func (s *Solver) derive1UIP(conflictID ClauseID) Clause {
	learnt := sortedUnique(s.clauses[conflictID])

	for {
		conflictLevelLits := 0
		var resolvent Lit
		for _, lit := range learnt {
			v := lit.Var()
			if s.declevel[v] != s.decisionLevel {
				continue
			}
			conflictLevelLits++
			// Tie-break when multiple literals at the conflict
			// level have an antecedent: take the last one found
			// while scanning in clause order (matches the
			// original source's derive_1uip_clause).
			if s.antecedent[v] != noAntecedent {
				resolvent = lit
			}
		}
		if conflictLevelLits == 1 {
			break
		}
		learnt = s.resolve(learnt, resolvent)
	}
	return learnt
}

// resolve combines clause with resolvent's antecedent clause on
// resolvent's variable, dropping both polarities of that variable, then
// sorts and deduplicates the result (spec.md "Resolution
// canonicalisation").
func (s *Solver) resolve(clause Clause, resolvent Lit) Clause {
	v := resolvent.Var()
	antecedent := s.clauses[s.antecedent[v]]

	merged := make([]Lit, 0, len(clause)+len(antecedent))
	for _, l := range clause {
		if l.Var() != v {
			merged = append(merged, l)
		}
	}
	for _, l := range antecedent {
		if l.Var() != v {
			merged = append(merged, l)
		}
	}
	return sortedUnique(merged)
}

func (s *Solver) trace(format string, args ...interface{}) {
	if !s.Trace {
		return
	}
	if s.Tracer == nil {
		panic("cdcl: Solver.Trace is true but Tracer is nil")
	}
	s.Tracer.Printf("[cdcl] "+format+" | %s", append(args, pretty.Sprint(s.assignment))...)
}
