package cnfx

import "github.com/xDarkicex/factorsat/symbol"

// GateClauses is the shape of a Tseitin clause-set generator: given the
// input literals and the freshly allocated output variable, it returns
// the clauses enforcing output <-> gate(inputs). The tseitin package
// supplies the AND/OR/XOR/EQ instances.
type GateClauses func(output int, inputs ...int) []Clause

// CNFBuilder accumulates variables and clauses while a circuit is wired,
// then seals into an immutable CNF. It is a single-use, stateful
// allocator: once Build is called the counter and clause set it returned
// must not be mutated further (mirrors spec §4.8's Open -> Sealed
// lifecycle).
type CNFBuilder struct {
	counter int
	clauses map[string]Clause
	order   []string
}

// NewCNFBuilder returns an empty builder with no variables allocated yet.
func NewCNFBuilder() *CNFBuilder {
	return &CNFBuilder{clauses: make(map[string]Clause)}
}

// NextVariable allocates and returns a fresh, previously unused variable.
func (b *CNFBuilder) NextVariable() symbol.Symbol {
	b.counter++
	return symbol.Variable(b.counter)
}

// NextVariables allocates n fresh variables in ascending order.
func (b *CNFBuilder) NextVariables(n int) []symbol.Symbol {
	out := make([]symbol.Symbol, n)
	for i := range out {
		out[i] = b.NextVariable()
	}
	return out
}

// AddClauses merges clauses into the builder's clause set, deduplicating
// against clauses already present.
func (b *CNFBuilder) AddClauses(clauses ...Clause) {
	for _, c := range clauses {
		k := c.key()
		if _, ok := b.clauses[k]; ok {
			continue
		}
		b.clauses[k] = c
		b.order = append(b.order, k)
	}
}

// FromTseitin allocates a fresh output variable, applies gen to the
// supplied input literals and that output variable, and merges the
// resulting clauses into the builder. It returns the output symbol, the
// builder's sole mechanism for introducing a Tseitin-encoded
// intermediate (spec §4.2).
func (b *CNFBuilder) FromTseitin(gen GateClauses, inputs ...int) symbol.Symbol {
	out := b.NextVariable()
	b.AddClauses(gen(out.Var(), inputs...)...)
	return out
}

// Build seals the builder into an immutable CNF, dropping any
// accumulated tautologies (spec §4.2). The builder remains usable
// afterward, but clauses recorded before Build are reflected in the
// returned snapshot; callers should treat the CNF as authoritative once
// sealed.
func (b *CNFBuilder) Build() CNF {
	out := make([]Clause, 0, len(b.order))
	for _, k := range b.order {
		c := b.clauses[k]
		if c.IsTautology() {
			continue
		}
		out = append(out, c)
	}
	return CNF{NumberOfVariables: b.counter, Clauses: out}
}
