package dimacs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/factorsat/cnfx"
)

func TestWrite(t *testing.T) {
	var buf strings.Builder
	clauses := []cnfx.Clause{cnfx.NewClause(1, -2), cnfx.NewClause(-1)}

	err := Write(&buf, 2, clauses, []string{"hello"})
	require.NoError(t, err)

	want := "c hello\np cnf 2 2\n-2 1 0\n-1 0\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteNoComments(t *testing.T) {
	var buf strings.Builder
	err := Write(&buf, 0, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "p cnf 0 0\n", buf.String())
}

func TestReadRoundTrip(t *testing.T) {
	doc := "c a comment\np cnf 3 2\n1 -2 0\n-3 0\n"
	got, err := Read(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 3, got.NumberOfVariables)
	assert.Equal(t, 2, got.NumberOfClauses)
	require.Len(t, got.Clauses, 2)
	assert.Equal(t, []int{-2, 1}, got.Clauses[0].Literals())
	assert.Equal(t, []int{-3}, got.Clauses[1].Literals())
}

func TestReadRejectsMissingProblemLine(t *testing.T) {
	_, err := Read(strings.NewReader("1 2 0\n"))
	require.Error(t, err)
}

func TestReadRejectsMalformedProblemLine(t *testing.T) {
	_, err := Read(strings.NewReader("p cnf notanumber 2\n"))
	require.Error(t, err)
}

func TestReadRejectsClauseCountMismatch(t *testing.T) {
	_, err := Read(strings.NewReader("p cnf 2 2\n1 0\n"))
	require.Error(t, err)
}

func TestReadRejectsMissingTrailingZero(t *testing.T) {
	_, err := Read(strings.NewReader("p cnf 2 1\n1 2\n"))
	require.Error(t, err)
}

func TestReadSkipsCommentsAndBlankLines(t *testing.T) {
	doc := "c leading comment\n\np cnf 1 1\nc mid-file comment\n1 0\n"
	got, err := Read(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 1, got.NumberOfVariables)
	require.Len(t, got.Clauses, 1)
}
