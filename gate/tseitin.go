package gate

import (
	"github.com/xDarkicex/factorsat/cnfx"
	"github.com/xDarkicex/factorsat/core"
	"github.com/xDarkicex/factorsat/symbol"
	"github.com/xDarkicex/factorsat/tseitin"
)

// TseitinStrategy lowers a circuit whose inputs may be unknown variables
// into CNF clauses, wiring a fresh output variable per gate through the
// given CNFBuilder. Whenever an operand is already constant it folds the
// gate directly instead of emitting clauses, matching the identity laws
// AND/OR obey for ZERO and ONE.
type TseitinStrategy struct {
	Builder *cnfx.CNFBuilder
}

func (TseitinStrategy) Zero() symbol.Symbol { return symbol.Zero }
func (TseitinStrategy) One() symbol.Symbol  { return symbol.One }

func (t TseitinStrategy) And(input1, input2 symbol.Symbol) symbol.Symbol {
	if input1.IsConstant() || input2.IsConstant() {
		return constantAnd(input1, input2)
	}
	return t.Builder.FromTseitin(tseitin.And, input1.Var(), input2.Var())
}

func (t TseitinStrategy) Or(input1, input2 symbol.Symbol) symbol.Symbol {
	if input1.IsConstant() || input2.IsConstant() {
		return constantOr(input1, input2)
	}
	return t.Builder.FromTseitin(tseitin.Or, input1.Var(), input2.Var())
}

func (t TseitinStrategy) Not(input symbol.Symbol) symbol.Symbol {
	if input.IsConstant() {
		return constantNot(input)
	}
	return input.Negate()
}

func (t TseitinStrategy) Xor(input1, input2 symbol.Symbol) symbol.Symbol {
	if input1.IsConstant() || input2.IsConstant() {
		return t.constantXor(input1, input2)
	}
	return t.Builder.FromTseitin(tseitin.Xor, input1.Var(), input2.Var())
}

func (t TseitinStrategy) constantXor(input1, input2 symbol.Symbol) symbol.Symbol {
	switch {
	case input1.IsOne():
		return t.Not(input2)
	case input2.IsOne():
		return t.Not(input1)
	case input1.IsZero():
		return input2
	case input2.IsZero():
		return input1
	default:
		panic(foldPreconditionViolated(input1, input2))
	}
}

// Expect asserts that symbol evaluates to value, appending the empty
// clause (immediate contradiction) if symbol is already the opposite
// constant, or a unit clause pinning symbol's variable otherwise. It is
// the sole mechanism by which a factoring instance's top-level claim
// (product == number) becomes part of the CNF rather than merely a
// value computed from it.
func (t TseitinStrategy) Expect(sym, value symbol.Symbol) symbol.Symbol {
	switch {
	case sym.IsConstant() && sym != value:
		t.Builder.AddClauses(tseitin.EmptyClause())
	case !sym.IsConstant():
		if value.IsOne() {
			t.Builder.AddClauses(tseitin.UnitClause(sym.Var()))
		} else {
			t.Builder.AddClauses(tseitin.UnitClause(-sym.Var()))
		}
	}
	return value
}

func constantAnd(input1, input2 symbol.Symbol) symbol.Symbol {
	switch {
	case input1.IsZero() || input2.IsZero():
		return symbol.Zero
	case input1.IsOne():
		return input2
	case input2.IsOne():
		return input1
	default:
		panic(foldPreconditionViolated(input1, input2))
	}
}

func constantOr(input1, input2 symbol.Symbol) symbol.Symbol {
	switch {
	case input1.IsOne() || input2.IsOne():
		return symbol.One
	case input1.IsZero():
		return input2
	case input2.IsZero():
		return input1
	default:
		panic(foldPreconditionViolated(input1, input2))
	}
}

func constantNot(input symbol.Symbol) symbol.Symbol {
	switch {
	case input.IsZero():
		return symbol.One
	case input.IsOne():
		return symbol.Zero
	default:
		panic(foldPreconditionViolated(input))
	}
}

func foldPreconditionViolated(symbols ...symbol.Symbol) *core.LogicError {
	return core.NewKindError("gate", "TseitinStrategy", "constant fold invoked without a constant operand", core.KindFoldPreconditionViolated)
}
