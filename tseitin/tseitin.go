// Package tseitin supplies the clause-set equivalences used to encode a
// two-input boolean gate into CNF: each function returns the clauses
// asserting output <-> gate(input_1, input_2), grounded on
// gen_factor_sat's circuit/tseitin/encoding.py.
package tseitin

import "github.com/xDarkicex/factorsat/cnfx"

// And returns the clauses encoding output <-> (input1 AND input2).
func And(output int, inputs ...int) []cnfx.Clause {
	input1, input2 := inputs[0], inputs[1]
	return []cnfx.Clause{
		cnfx.NewClause(input1, -output),
		cnfx.NewClause(input2, -output),
		cnfx.NewClause(-input1, -input2, output),
	}
}

// Or returns the clauses encoding output <-> (input1 OR input2).
func Or(output int, inputs ...int) []cnfx.Clause {
	input1, input2 := inputs[0], inputs[1]
	return []cnfx.Clause{
		cnfx.NewClause(-input1, output),
		cnfx.NewClause(-input2, output),
		cnfx.NewClause(input1, input2, -output),
	}
}

// Xor returns the clauses encoding output <-> (input1 XOR input2).
func Xor(output int, inputs ...int) []cnfx.Clause {
	input1, input2 := inputs[0], inputs[1]
	return []cnfx.Clause{
		cnfx.NewClause(-input1, -input2, -output),
		cnfx.NewClause(-input1, input2, output),
		cnfx.NewClause(input1, -input2, output),
		cnfx.NewClause(input1, input2, -output),
	}
}

// Equal returns the clauses encoding output <-> (input1 == input2).
func Equal(output int, inputs ...int) []cnfx.Clause {
	input1, input2 := inputs[0], inputs[1]
	return []cnfx.Clause{
		cnfx.NewClause(input1, input2, output),
		cnfx.NewClause(input1, -input2, -output),
		cnfx.NewClause(-input1, input2, -output),
		cnfx.NewClause(-input1, -input2, output),
	}
}

// UnitClause returns the single-literal clause asserting literal.
func UnitClause(literal int) cnfx.Clause {
	return cnfx.NewClause(literal)
}

// EmptyClause returns the clause with no literals, which makes any CNF
// containing it unsatisfiable.
func EmptyClause() cnfx.Clause {
	return cnfx.NewClause()
}
