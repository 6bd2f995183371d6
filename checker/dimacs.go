package checker

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ClauseReader streams the clauses of a DIMACS CNF document one at a
// time, without reading the whole document into memory. Construct one
// with NewClauseReader, which consumes any leading comment lines and
// the "p cnf" problem line up front; MaxVar and NumClauses report the
// values declared there.
//
// Unlike package cdcl's ParseDIMACS (which the solver uses and which
// returns everything at once), ClauseReader exists because the
// checker's contract is defined in terms of a clause stream consumed
// exactly once (spec.md §4.3) — a distinction worth keeping even
// though both readers parse the same text format.
type ClauseReader struct {
	sc         *bufio.Scanner
	maxVar     uint32
	numClauses int
}

// NewClauseReader reads and validates the DIMACS preamble (comment
// lines followed by exactly one "p cnf <vars> <clauses>" line) from r,
// then returns a ClauseReader ready to stream the clauses that follow.
func NewClauseReader(r io.Reader) (*ClauseReader, error) {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "" || trimmed[0] == 'c':
			// blank or comment line; keep scanning for the problem line
		case trimmed[0] == 'p':
			fields := strings.Fields(trimmed)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return nil, fmt.Errorf("checker: malformed DIMACS problem line %q", trimmed)
			}
			maxVar, convErr := strconv.ParseUint(fields[2], 10, 32)
			if convErr != nil {
				return nil, fmt.Errorf("checker: malformed vars in problem line: %w", convErr)
			}
			numClauses, convErr := strconv.Atoi(fields[3])
			if convErr != nil {
				return nil, fmt.Errorf("checker: malformed clause count in problem line: %w", convErr)
			}
			sc := bufio.NewScanner(br)
			sc.Split(bufio.ScanWords)
			return &ClauseReader{sc: sc, maxVar: uint32(maxVar), numClauses: numClauses}, nil
		default:
			return nil, fmt.Errorf("checker: expected DIMACS problem line, got %q", trimmed)
		}
		if err != nil {
			if err == io.EOF {
				return nil, errors.New("checker: DIMACS input has no problem line")
			}
			return nil, err
		}
	}
}

// MaxVar returns the variable count declared by the problem line.
func (c *ClauseReader) MaxVar() uint32 { return c.maxVar }

// NumClauses returns the clause count declared by the problem line.
func (c *ClauseReader) NumClauses() int { return c.numClauses }

// Next implements ClauseIter: it reads literal tokens up to and
// including the next "0" terminator and returns them as a clause. A
// final clause lacking its trailing "0" is still returned whole, on
// the following call Next reports the stream exhausted.
func (c *ClauseReader) Next() (Clause, bool, error) {
	var clause Clause
	for c.sc.Scan() {
		tok := c.sc.Text()
		n, err := strconv.ParseInt(tok, 10, 32)
		if err != nil {
			return nil, false, fmt.Errorf("checker: invalid literal %q: %w", tok, err)
		}
		if n == 0 {
			return clause, true, nil
		}
		clause = append(clause, Lit(n))
	}
	if err := c.sc.Err(); err != nil {
		return nil, false, err
	}
	if len(clause) > 0 {
		return clause, true, nil
	}
	return nil, false, nil
}

// ProofReader streams a proof's literals — a flat whitespace-separated
// sequence of signed non-zero integers with no terminator or header —
// one at a time.
type ProofReader struct {
	sc *bufio.Scanner
}

// NewProofReader returns a ProofReader over r.
func NewProofReader(r io.Reader) *ProofReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &ProofReader{sc: sc}
}

// Next implements LitIter.
func (p *ProofReader) Next() (Lit, bool, error) {
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return 0, false, err
		}
		return 0, false, nil
	}
	tok := p.sc.Text()
	n, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return 0, false, fmt.Errorf("checker: invalid literal %q: %w", tok, err)
	}
	if n == 0 {
		return 0, false, errors.New("checker: proof contains a zero literal")
	}
	return Lit(n), true, nil
}
