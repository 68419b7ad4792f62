package bruteforce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/factorsat/cnfx"
)

func TestSolveSatisfiable(t *testing.T) {
	// (x1 OR x2) AND (NOT x1 OR x2) AND (x1 OR NOT x2) is satisfied only
	// by x1 = x2 = true.
	cnf := cnfx.CNF{
		NumberOfVariables: 2,
		Clauses: []cnfx.Clause{
			cnfx.NewClause(1, 2),
			cnfx.NewClause(-1, 2),
			cnfx.NewClause(1, -2),
		},
	}

	sat, assignment := Solve(cnf)
	require.True(t, sat)
	assert.True(t, assignment[1])
	assert.True(t, assignment[2])
}

func TestSolveUnsatisfiable(t *testing.T) {
	cnf := cnfx.CNF{
		NumberOfVariables: 1,
		Clauses: []cnfx.Clause{
			cnfx.NewClause(1),
			cnfx.NewClause(-1),
		},
	}

	sat, assignment := Solve(cnf)
	assert.False(t, sat)
	assert.Nil(t, assignment)
}

func TestSolveEmptyClauseIsUnsat(t *testing.T) {
	cnf := cnfx.CNF{NumberOfVariables: 1, Clauses: []cnfx.Clause{cnfx.NewClause()}}

	sat, _ := Solve(cnf)
	assert.False(t, sat)
}

func TestSolveNoClausesIsTriviallySat(t *testing.T) {
	cnf := cnfx.CNF{NumberOfVariables: 0}

	sat, assignment := Solve(cnf)
	assert.True(t, sat)
	assert.Empty(t, assignment)
}

func TestAssignmentSatisfies(t *testing.T) {
	a := Assignment{1: true, 2: false}
	assert.True(t, a.Satisfies(cnfx.NewClause(1, -2)))
	assert.True(t, a.Satisfies(cnfx.NewClause(-2)))
	assert.False(t, a.Satisfies(cnfx.NewClause(-1, 2)))
}

func TestAssignmentConflictsWith(t *testing.T) {
	a := Assignment{1: true, 2: false}
	assert.True(t, a.ConflictsWith(cnfx.NewClause(-1, 2)))
	assert.False(t, a.ConflictsWith(cnfx.NewClause(1, 2)))
	// Partially assigned clauses (variable 3 unset) are not conflicts.
	assert.False(t, a.ConflictsWith(cnfx.NewClause(-1, 3)))
}
