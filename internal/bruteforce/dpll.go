// Package bruteforce is a small DPLL solver used only by tests: it
// checks a generated CNF's satisfiability (or unsatisfiability) directly
// against a factoring instance's expected witness, without depending on
// anything the production factorsat packages build a formula with. It
// is adapted from the teacher library's sat/dpll.go, reworked for the
// int-literal Clause representation cnfx uses instead of the teacher's
// string-keyed Literal/Variable types.
//
// This package is intentionally not a production SAT solver: factorsat
// emits CNF for an external solver to consume, and this oracle exists
// only to let tests confirm small instances by brute reasoning.
package bruteforce

import "github.com/xDarkicex/factorsat/cnfx"

// Assignment maps a variable id (always positive) to its assigned
// truth value.
type Assignment map[int]bool

// IsAssigned reports whether variable has a value in a.
func (a Assignment) IsAssigned(variable int) bool {
	_, ok := a[variable]
	return ok
}

// Satisfies reports whether clause has at least one literal already
// satisfied under a.
func (a Assignment) Satisfies(clause cnfx.Clause) bool {
	for _, lit := range clause.Literals() {
		variable := variableOf(lit)
		value, ok := a[variable]
		if !ok {
			continue
		}
		if satisfiesLiteral(lit, value) {
			return true
		}
	}
	return false
}

// ConflictsWith reports whether every literal in clause is assigned and
// none of them is satisfied — the clause is false under a.
func (a Assignment) ConflictsWith(clause cnfx.Clause) bool {
	if clause.IsEmpty() {
		return true
	}
	for _, lit := range clause.Literals() {
		variable := variableOf(lit)
		value, ok := a[variable]
		if !ok {
			return false
		}
		if satisfiesLiteral(lit, value) {
			return false
		}
	}
	return true
}

func (a Assignment) clone() Assignment {
	out := make(Assignment, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

func variableOf(lit int) int {
	if lit < 0 {
		return -lit
	}
	return lit
}

func satisfiesLiteral(lit int, value bool) bool {
	if lit > 0 {
		return value
	}
	return !value
}

// solver holds the mutable search state for one Solve call.
type solver struct {
	cnf        cnfx.CNF
	assignment Assignment
}

// Solve determines whether cnf is satisfiable, returning a satisfying
// Assignment when it is.
func Solve(cnf cnfx.CNF) (sat bool, assignment Assignment) {
	s := &solver{cnf: cnf, assignment: make(Assignment)}
	if s.dpll() {
		return true, s.assignment.clone()
	}
	return false, nil
}

func (s *solver) dpll() bool {
	if s.unitPropagation() {
		return false // conflict
	}
	s.pureLiteralElimination()

	if s.allClausesSatisfied() {
		return true
	}

	decisionVar, ok := s.chooseDecisionVariable()
	if !ok {
		return false
	}

	for _, value := range [2]bool{true, false} {
		saved := s.assignment.clone()
		s.assignment[decisionVar] = value

		if s.dpll() {
			return true
		}
		s.assignment = saved
	}

	return false
}

// unitPropagation repeatedly assigns the forced literal of any clause
// with exactly one unassigned literal, returning true if a conflict was
// found along the way.
func (s *solver) unitPropagation() bool {
	changed := true
	for changed {
		changed = false
		for _, clause := range s.cnf.Clauses {
			if s.assignment.Satisfies(clause) {
				continue
			}
			if s.assignment.ConflictsWith(clause) {
				return true
			}
			unassigned := s.unassignedLiterals(clause)
			if len(unassigned) == 1 {
				lit := unassigned[0]
				s.assignment[variableOf(lit)] = lit > 0
				changed = true
			}
		}
	}
	return false
}

// pureLiteralElimination assigns every variable that occurs with only
// one polarity across all unsatisfied clauses.
func (s *solver) pureLiteralElimination() {
	positive := make(map[int]bool)
	negative := make(map[int]bool)
	seen := make(map[int]bool)

	for _, clause := range s.cnf.Clauses {
		if s.assignment.Satisfies(clause) {
			continue
		}
		for _, lit := range clause.Literals() {
			variable := variableOf(lit)
			if s.assignment.IsAssigned(variable) {
				continue
			}
			seen[variable] = true
			if lit > 0 {
				positive[variable] = true
			} else {
				negative[variable] = true
			}
		}
	}

	for variable := range seen {
		if s.assignment.IsAssigned(variable) {
			continue
		}
		switch {
		case positive[variable] && !negative[variable]:
			s.assignment[variable] = true
		case negative[variable] && !positive[variable]:
			s.assignment[variable] = false
		}
	}
}

func (s *solver) allClausesSatisfied() bool {
	for _, clause := range s.cnf.Clauses {
		if !s.assignment.Satisfies(clause) {
			return false
		}
	}
	return true
}

func (s *solver) chooseDecisionVariable() (int, bool) {
	for v := 1; v <= s.cnf.NumberOfVariables; v++ {
		if !s.assignment.IsAssigned(v) {
			return v, true
		}
	}
	return 0, false
}

func (s *solver) unassignedLiterals(clause cnfx.Clause) []int {
	var out []int
	for _, lit := range clause.Literals() {
		if !s.assignment.IsAssigned(variableOf(lit)) {
			out = append(out, lit)
		}
	}
	return out
}
