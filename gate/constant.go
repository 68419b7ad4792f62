package gate

import (
	"github.com/xDarkicex/factorsat/boolalg"
	"github.com/xDarkicex/factorsat/core"
	"github.com/xDarkicex/factorsat/symbol"
)

// ConstantStrategy evaluates a circuit whose inputs are all already
// known, folding each gate straight to Zero or One via boolalg. It never
// allocates a variable or emits a clause, so it doubles as a reference
// oracle for testing the Tseitin backend's output against a concrete
// assignment.
type ConstantStrategy struct{}

func (ConstantStrategy) Zero() symbol.Symbol { return symbol.Zero }
func (ConstantStrategy) One() symbol.Symbol  { return symbol.One }

func (ConstantStrategy) And(input1, input2 symbol.Symbol) symbol.Symbol {
	return fromBool(boolalg.And(toBool(input1), toBool(input2)))
}

func (ConstantStrategy) Or(input1, input2 symbol.Symbol) symbol.Symbol {
	return fromBool(boolalg.Or(toBool(input1), toBool(input2)))
}

func (ConstantStrategy) Not(input symbol.Symbol) symbol.Symbol {
	return fromBool(boolalg.Not(toBool(input)))
}

func (ConstantStrategy) Xor(input1, input2 symbol.Symbol) symbol.Symbol {
	return fromBool(boolalg.Xor(toBool(input1), toBool(input2)))
}

func toBool(s symbol.Symbol) bool {
	if !s.IsConstant() {
		panic(core.NewKindError("gate", "ConstantStrategy", "expected a constant symbol, got a variable", core.KindFoldPreconditionViolated))
	}
	return s.IsOne()
}

func fromBool(b bool) symbol.Symbol {
	if b {
		return symbol.One
	}
	return symbol.Zero
}
