// Package circuit builds bit and bit-vector arithmetic on top of a
// gate.Strategy: half/full adders and equality for single bits, and
// ripple-carry addition, subtraction, equality, and alignment for whole
// bit vectors. Every function here is strategy-agnostic — it runs
// identically whether wired against gate.ConstantStrategy or
// gate.TseitinStrategy.
//
// Bit vectors are big-endian: index 0 is the most significant bit, the
// last index the least significant, matching gen_factor_sat's
// circuit/default/circuit.py where the least significant bit is popped
// from the end of the list.
package circuit

import "github.com/xDarkicex/factorsat/symbol"

// HalfAdder returns (sum, carry) for input1 + input2.
func HalfAdder(s gateStrategy, input1, input2 symbol.Symbol) (sum, carry symbol.Symbol) {
	sum = s.Xor(input1, input2)
	carry = s.And(input1, input2)
	return sum, carry
}

// FullAdder returns (sum, carry) for input1 + input2 + carryIn.
func FullAdder(s gateStrategy, input1, input2, carryIn symbol.Symbol) (sum, carryOut symbol.Symbol) {
	partialSum, carry1 := HalfAdder(s, input1, input2)
	outputSum, carry2 := HalfAdder(s, partialSum, carryIn)
	carryOut = s.Or(carry1, carry2)
	return outputSum, carryOut
}

// Equality returns a symbol that is One iff input1 == input2.
func Equality(s gateStrategy, input1, input2 symbol.Symbol) symbol.Symbol {
	return s.Or(
		s.And(input1, input2),
		s.And(s.Not(input1), s.Not(input2)),
	)
}

// gateStrategy is the subset of gate.Strategy this package depends on.
// It is declared locally (rather than importing gate.Strategy directly)
// so circuit has no import-cycle risk if gate ever needs circuit-level
// helpers; gate.Strategy already satisfies it structurally.
type gateStrategy interface {
	Zero() symbol.Symbol
	One() symbol.Symbol
	And(input1, input2 symbol.Symbol) symbol.Symbol
	Or(input1, input2 symbol.Symbol) symbol.Symbol
	Not(input symbol.Symbol) symbol.Symbol
	Xor(input1, input2 symbol.Symbol) symbol.Symbol
}
