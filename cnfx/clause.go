// Package cnfx implements the Clause/CNF/CNFBuilder layer from spec §3:
// clauses are canonicalized, duplicate-free disjunctions of literals, and
// a CNF is the (variable count, clause set) pair a DIMACS emitter renders.
//
// The package is named cnfx, not cnf, only to avoid shadowing the common
// local variable name `cnf` used throughout the factor package and the
// tests.
package cnfx

import (
	"sort"
	"strconv"
	"strings"
)

// Clause is an unordered, duplicate-free set of literals interpreted
// disjunctively. The zero value is the empty clause (always false).
type Clause struct {
	lits []int
}

// NewClause canonicalizes lits into a Clause: duplicates are removed and
// the literals are sorted for a stable String/key representation. The
// empty clause (no literals) is a valid Clause denoting unsatisfiability.
func NewClause(lits ...int) Clause {
	if len(lits) == 0 {
		return Clause{}
	}
	seen := make(map[int]struct{}, len(lits))
	deduped := make([]int, 0, len(lits))
	for _, l := range lits {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		deduped = append(deduped, l)
	}
	sort.Ints(deduped)
	return Clause{lits: deduped}
}

// Literals returns a copy of the clause's literals in ascending order.
func (c Clause) Literals() []int {
	out := make([]int, len(c.lits))
	copy(out, c.lits)
	return out
}

// Len returns the number of distinct literals in the clause.
func (c Clause) Len() int { return len(c.lits) }

// IsEmpty reports whether the clause has no literals, i.e. is the
// unsatisfiable empty clause.
func (c Clause) IsEmpty() bool { return len(c.lits) == 0 }

// IsUnit reports whether the clause has exactly one literal.
func (c Clause) IsUnit() bool { return len(c.lits) == 1 }

// Contains reports whether lit appears in the clause.
func (c Clause) Contains(lit int) bool {
	i := sort.SearchInts(c.lits, lit)
	return i < len(c.lits) && c.lits[i] == lit
}

// IsTautology holds iff some literal and its negation both appear in the
// clause (spec §4.2). Such clauses are always satisfied and are dropped
// by CNFBuilder.Build.
func (c Clause) IsTautology() bool {
	for _, l := range c.lits {
		if c.Contains(-l) {
			return true
		}
	}
	return false
}

// key returns a canonical string used to deduplicate clauses within a
// clause set; two Clauses with the same literals produce the same key
// regardless of construction order.
func (c Clause) key() string {
	parts := make([]string, len(c.lits))
	for i, l := range c.lits {
		parts[i] = strconv.Itoa(l)
	}
	return strings.Join(parts, ",")
}

// String renders the clause in DIMACS clause-body form: space-separated
// literals followed by a trailing " 0", or the single token "0" for the
// empty clause.
func (c Clause) String() string {
	if c.IsEmpty() {
		return "0"
	}
	parts := make([]string, len(c.lits)+1)
	for i, l := range c.lits {
		parts[i] = strconv.Itoa(l)
	}
	parts[len(c.lits)] = "0"
	return strings.Join(parts, " ")
}
