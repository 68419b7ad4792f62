// Package gate supplies the two interchangeable backends a factoring
// circuit is built against: a constant evaluator that folds a fully
// known bit assignment straight to a boolean result, and a Tseitin
// emitter that lowers unknown bits into CNF clauses as it goes. Both
// satisfy Strategy, so the circuit and multiply packages describe a
// factoring circuit exactly once and run it against either backend.
//
// Grounded on gen_factor_sat's circuit/interface/circuit.py (GateStrategy),
// circuit/default/circuit.py (ConstantStrategy), and
// circuit/tseitin/circuit.py (TseitinGateStrategy, TseitinCircuitStrategy).
package gate

import "github.com/xDarkicex/factorsat/symbol"

// Strategy wires the two-input gate primitives a circuit is composed
// from. Zero and One return the distinguished constants; And, Or, Not,
// and Xor each return the symbol representing the gate's output, wiring
// whatever side effects (clause emission) the backend requires.
type Strategy interface {
	Zero() symbol.Symbol
	One() symbol.Symbol
	And(input1, input2 symbol.Symbol) symbol.Symbol
	Or(input1, input2 symbol.Symbol) symbol.Symbol
	Not(input symbol.Symbol) symbol.Symbol
	Xor(input1, input2 symbol.Symbol) symbol.Symbol
}
