package cnfx

// CNF is the immutable result of sealing a CNFBuilder: the pair
// (number of variables, clause set) from spec §3. A CNF produced by
// Build never contains a tautology or a duplicate clause.
type CNF struct {
	NumberOfVariables int
	Clauses           []Clause
}
