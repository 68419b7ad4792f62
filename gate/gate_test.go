package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/factorsat/cnfx"
	"github.com/xDarkicex/factorsat/core"
	"github.com/xDarkicex/factorsat/internal/bruteforce"
	"github.com/xDarkicex/factorsat/symbol"
)

func TestConstantStrategyGates(t *testing.T) {
	s := ConstantStrategy{}

	testCases := []struct {
		name string
		a, b bool
		and  bool
		or   bool
		xor  bool
	}{
		{"00", false, false, false, false, false},
		{"01", false, true, false, true, true},
		{"10", true, false, false, true, true},
		{"11", true, true, true, true, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := fromBool(tc.a), fromBool(tc.b)
			assert.Equal(t, fromBool(tc.and), s.And(a, b))
			assert.Equal(t, fromBool(tc.or), s.Or(a, b))
			assert.Equal(t, fromBool(tc.xor), s.Xor(a, b))
		})
	}

	assert.Equal(t, symbol.One, s.Not(symbol.Zero))
	assert.Equal(t, symbol.Zero, s.Not(symbol.One))
}

func TestConstantStrategyPanicsOnVariable(t *testing.T) {
	s := ConstantStrategy{}
	require.Panics(t, func() {
		s.And(symbol.Variable(1), symbol.One)
	})
}

func TestTseitinStrategyConstantFoldsIdentities(t *testing.T) {
	b := cnfx.NewCNFBuilder()
	s := TseitinStrategy{Builder: b}
	v := b.NextVariable()

	assert.Equal(t, symbol.Zero, s.And(v, symbol.Zero))
	assert.Equal(t, v, s.And(v, symbol.One))
	assert.Equal(t, symbol.One, s.Or(v, symbol.One))
	assert.Equal(t, v, s.Or(v, symbol.Zero))
	assert.Equal(t, v, s.Xor(v, symbol.Zero))
	assert.Equal(t, v.Negate(), s.Xor(v, symbol.One))

	// Folding never allocates a variable or emits a clause.
	cnf := b.Build()
	assert.Equal(t, 1, cnf.NumberOfVariables)
	assert.Empty(t, cnf.Clauses)
}

func TestTseitinStrategyWiresGatesBetweenVariables(t *testing.T) {
	b := cnfx.NewCNFBuilder()
	s := TseitinStrategy{Builder: b}
	x := b.NextVariable()
	y := b.NextVariable()

	out := s.And(x, y)
	require.False(t, out.IsConstant())

	cnf := b.Build()
	for _, xv := range []bool{false, true} {
		for _, yv := range []bool{false, true} {
			sat, assignment := bruteforce.Solve(cnfx.CNF{
				NumberOfVariables: cnf.NumberOfVariables,
				Clauses: append(append([]cnfx.Clause{}, cnf.Clauses...),
					unitFor(x, xv), unitFor(y, yv)),
			})
			require.True(t, sat)
			assert.Equal(t, xv && yv, assignment[out.Var()])
		}
	}
}

func TestNotFlipsVariableSign(t *testing.T) {
	b := cnfx.NewCNFBuilder()
	s := TseitinStrategy{Builder: b}
	v := b.NextVariable()

	negated := s.Not(v)
	assert.Equal(t, -v.Var(), negated.Var())
	assert.Empty(t, b.Build().Clauses)
}

func TestExpectAssertsConstantMismatchIsUnsat(t *testing.T) {
	b := cnfx.NewCNFBuilder()
	s := TseitinStrategy{Builder: b}

	s.Expect(symbol.Zero, symbol.One)

	cnf := b.Build()
	require.Len(t, cnf.Clauses, 1)
	assert.True(t, cnf.Clauses[0].IsEmpty())
}

func TestExpectOnVariablePinsItsValue(t *testing.T) {
	b := cnfx.NewCNFBuilder()
	s := TseitinStrategy{Builder: b}
	v := b.NextVariable()

	s.Expect(v, symbol.One)

	cnf := b.Build()
	require.Len(t, cnf.Clauses, 1)
	assert.Equal(t, []int{v.Var()}, cnf.Clauses[0].Literals())
}

func TestFoldPreconditionViolatedKind(t *testing.T) {
	err := foldPreconditionViolated(symbol.Variable(1), symbol.Variable(2))
	assert.Equal(t, core.KindFoldPreconditionViolated, err.Kind)
}

func unitFor(v symbol.Symbol, value bool) cnfx.Clause {
	if value {
		return cnfx.NewClause(v.Var())
	}
	return cnfx.NewClause(-v.Var())
}
