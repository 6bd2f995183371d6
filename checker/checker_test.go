package checker

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name       string
		clauses    []Clause
		proof      []Lit
		maxVar     uint32
		numClauses int
		wantErr    error
	}{
		{
			name:       "satisfied",
			clauses:    []Clause{{1, -2}, {2, 3}, {-1, -3}},
			proof:      []Lit{1, 2, -3},
			maxVar:     3,
			numClauses: 3,
		},
		{
			name:       "unit clauses",
			clauses:    []Clause{{1}, {2}, {3}},
			proof:      []Lit{1, 2, 3},
			maxVar:     3,
			numClauses: 3,
		},
		{
			name:       "unsatisfied clause",
			clauses:    []Clause{{1, 2}, {-1, -2}},
			proof:      []Lit{1, 2},
			maxVar:     2,
			numClauses: 2,
			wantErr:    ErrIncorrect,
		},
		{
			name:       "inconsistent proof",
			clauses:    []Clause{{1}},
			proof:      []Lit{1, -1},
			maxVar:     1,
			numClauses: 1,
			wantErr:    ErrInconsistent,
		},
		{
			name:       "proof variable out of range",
			clauses:    []Clause{{1}},
			proof:      []Lit{5},
			maxVar:     1,
			numClauses: 1,
			wantErr:    ErrProofVarOutOfRange,
		},
		{
			name:       "formula variable out of range",
			clauses:    []Clause{{1, 5}},
			proof:      []Lit{1},
			maxVar:     1,
			numClauses: 1,
			wantErr:    ErrFormulaVarOutOfRange,
		},
		{
			name:       "too few clauses",
			clauses:    []Clause{{1}},
			proof:      []Lit{1},
			maxVar:     1,
			numClauses: 2,
			wantErr:    ErrWrongNumberOfClauses,
		},
		{
			name:       "too many clauses",
			clauses:    []Clause{{1}, {1}},
			proof:      []Lit{1},
			maxVar:     1,
			numClauses: 1,
			wantErr:    ErrWrongNumberOfClauses,
		},
		{
			name:       "unassigned variable beside a satisfied literal",
			clauses:    []Clause{{1, 2}},
			proof:      []Lit{1},
			maxVar:     2,
			numClauses: 1,
		},
		{
			name:       "empty formula with empty proof",
			clauses:    nil,
			proof:      nil,
			maxVar:     0,
			numClauses: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clauses := ClauseSlice(tt.clauses)
			proof := LitSlice(tt.proof)
			err := Check(&clauses, &proof, tt.maxVar, tt.numClauses)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

func TestBuildAssignmentConsistency(t *testing.T) {
	proof := LitSlice{1, -2, 3}
	a, err := BuildAssignment(&proof, 3)
	require.NoError(t, err)
	assert.True(t, a.satisfies(1))
	assert.True(t, a.satisfies(-2))
	assert.False(t, a.satisfies(2))
	assert.True(t, a.satisfies(3))
}

func TestClauseReaderRoundTrip(t *testing.T) {
	input := "c a comment\np cnf 3 2\n1 -2 0\n2 3 0\n"
	r, err := NewClauseReader(strings.NewReader(input))
	require.NoError(t, err)
	assert.EqualValues(t, 3, r.MaxVar())
	assert.Equal(t, 2, r.NumClauses())

	var got []Clause
	for {
		c, ok, err := r.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, c)
	}
	assert.Equal(t, []Clause{{1, -2}, {2, 3}}, got)
}

func TestClauseReaderMissingProblemLine(t *testing.T) {
	_, err := NewClauseReader(strings.NewReader("1 2 0\n"))
	assert.Error(t, err)
}

func TestProofReaderSequence(t *testing.T) {
	r := NewProofReader(strings.NewReader("1 -2 3"))
	var got []Lit
	for {
		lit, ok, err := r.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, lit)
	}
	assert.Equal(t, []Lit{1, -2, 3}, got)
}

func TestProofReaderRejectsZero(t *testing.T) {
	r := NewProofReader(strings.NewReader("1 0 2"))
	_, _, err := r.Next()
	require.NoError(t, err)
	_, _, err = r.Next()
	assert.Error(t, err)
}

func TestCheckFromDIMACSReaders(t *testing.T) {
	formula := "p cnf 3 3\n1 -2 0\n2 3 0\n-1 -3 0\n"
	proof := "1 2 -3"

	cr, err := NewClauseReader(strings.NewReader(formula))
	require.NoError(t, err)
	pr := NewProofReader(strings.NewReader(proof))

	err = Check(cr, pr, cr.MaxVar(), cr.NumClauses())
	assert.NoError(t, err)
}
