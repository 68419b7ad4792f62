// Package factor composes the circuit and multiply packages into the
// single operation factorsat exists to perform: build a CNF instance
// whose satisfying assignments are exactly the factorizations of a
// given number. Grounded on gen_factor_sat's factoring.py
// (GeneralFactoringCircuit.factorize) and factoring_sat.py
// (factorize_number, _factor_lengths).
package factor

import (
	"math/big"

	"github.com/xDarkicex/factorsat/circuit"
	"github.com/xDarkicex/factorsat/cnfx"
	"github.com/xDarkicex/factorsat/gate"
	"github.com/xDarkicex/factorsat/multiply"
	"github.com/xDarkicex/factorsat/symbol"
)

// Instance is a sealed factoring problem: the CNF asserting that the
// variables in Factor1 and Factor2 multiply to Number, together with
// the bookkeeping a DIMACS emitter needs to annotate it.
type Instance struct {
	Number            *big.Int
	Factor1           []symbol.Symbol
	Factor2           []symbol.Symbol
	NumberOfVariables int
	Clauses           []cnfx.Clause

	// MaxValue, Seed and HasSeed are set only by the CLI's random
	// subcommand; they are zero otherwise.
	MaxValue *big.Int
	Seed     int64
	HasSeed  bool
}

// Factorize builds the Instance asserting factor1 * factor2 == number,
// where factor1/factor2 are freshly allocated variables of length
// factorLengths(len(numberBits)) and number is fixed to its known bits.
// It is the Tseitin-backed counterpart of gen_factor_sat's
// GeneralFactoringCircuit.factorize plus the top-level assume call.
func Factorize(number *big.Int) *Instance {
	builder := cnfx.NewCNFBuilder()
	strategy := gate.TseitinStrategy{Builder: builder}

	numberBits := toBits(number)
	length1, length2 := factorLengths(len(numberBits))

	factor1 := builder.NextVariables(length1)
	factor2 := builder.NextVariables(length2)

	product := multiply.Karatsuba(strategy, multiply.DefaultConfig(), factor1, factor2)
	equal := circuit.NBitEquality(strategy, product, numberBits)
	strategy.Expect(equal, strategy.One())

	cnf := builder.Build()

	return &Instance{
		Number:            new(big.Int).Set(number),
		Factor1:           factor1,
		Factor2:           factor2,
		NumberOfVariables: cnf.NumberOfVariables,
		Clauses:           cnf.Clauses,
	}
}

// factorLengths mirrors gen_factor_sat's _factor_lengths: the first
// factor gets ceil(numberLength/2) bits, the second gets numberLength-1
// bits — enough, between them, to express any factorization of an
// numberLength-bit number.
func factorLengths(numberLength int) (length1, length2 int) {
	length1 = (numberLength + 1) / 2
	length2 = numberLength - 1
	return length1, length2
}

// toBits renders n as a big-endian slice of Zero/One constants with no
// leading zero bit, mirroring utils.to_bin_list.
func toBits(n *big.Int) []symbol.Symbol {
	s := n.Text(2)
	bits := make([]symbol.Symbol, len(s))
	for i, c := range s {
		if c == '1' {
			bits[i] = symbol.One
		} else {
			bits[i] = symbol.Zero
		}
	}
	return bits
}
