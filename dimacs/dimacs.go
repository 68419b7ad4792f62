// Package dimacs emits and parses the DIMACS CNF text format. The
// writer side is grounded on gophersat's bf.Dimacs (streaming io.Writer
// output, a comment prelude in the order given, one clause per line terminated by
// " 0"); the reader side is grounded on rhartert's dimacs.Read (a
// line-by-line parser validating the problem line and clause counts).
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xDarkicex/factorsat/cnfx"
	"github.com/xDarkicex/factorsat/core"
)

// Write streams cnf to w in DIMACS CNF format: an optional "c " comment
// line per entry in comments, the "p cnf <vars> <clauses>" problem line,
// then one line per clause.
func Write(w io.Writer, numberOfVariables int, clauses []cnfx.Clause, comments []string) error {
	for _, c := range comments {
		if _, err := fmt.Fprintf(w, "c %s\n", c); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", numberOfVariables, len(clauses)); err != nil {
		return err
	}
	for _, c := range clauses {
		if _, err := io.WriteString(w, c.String()); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// CNF is the parsed result of Read: the declared variable count and the
// clauses encountered, in file order.
type CNF struct {
	NumberOfVariables int
	NumberOfClauses   int
	Clauses           []cnfx.Clause
}

// Read parses a DIMACS CNF document from r. It accepts comment lines
// beginning with "c", requires exactly one problem line of the form
// "p cnf <vars> <clauses>", and expects every clause line to be a
// space-separated list of nonzero integers terminated by a trailing 0.
func Read(r io.Reader) (CNF, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var result CNF
	sawProblem := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "c"):
			continue
		case strings.HasPrefix(line, "p"):
			if sawProblem {
				return CNF{}, core.NewLogicError("dimacs", "Read", "duplicate problem line")
			}
			vars, numClauses, err := parseProblemLine(line)
			if err != nil {
				return CNF{}, err
			}
			result.NumberOfVariables = vars
			result.NumberOfClauses = numClauses
			sawProblem = true
		default:
			if !sawProblem {
				return CNF{}, core.NewLogicError("dimacs", "Read", "clause line before problem line")
			}
			clause, err := parseClauseLine(line)
			if err != nil {
				return CNF{}, err
			}
			result.Clauses = append(result.Clauses, clause)
		}
	}
	if err := scanner.Err(); err != nil {
		return CNF{}, err
	}
	if !sawProblem {
		return CNF{}, core.NewLogicError("dimacs", "Read", "missing problem line")
	}
	if len(result.Clauses) != result.NumberOfClauses {
		return CNF{}, core.NewLogicError("dimacs", "Read",
			fmt.Sprintf("problem line declared %d clauses, found %d", result.NumberOfClauses, len(result.Clauses)))
	}
	return result, nil
}

func parseProblemLine(line string) (numVars, numClauses int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
		return 0, 0, core.NewLogicError("dimacs", "Read", fmt.Sprintf("malformed problem line: %q", line))
	}
	numVars, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, core.NewLogicError("dimacs", "Read", fmt.Sprintf("malformed variable count: %q", fields[2]))
	}
	numClauses, err = strconv.Atoi(fields[3])
	if err != nil {
		return 0, 0, core.NewLogicError("dimacs", "Read", fmt.Sprintf("malformed clause count: %q", fields[3]))
	}
	return numVars, numClauses, nil
}

func parseClauseLine(line string) (cnfx.Clause, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[len(fields)-1] != "0" {
		return cnfx.Clause{}, core.NewLogicError("dimacs", "Read", fmt.Sprintf("clause line missing trailing 0: %q", line))
	}
	lits := make([]int, 0, len(fields)-1)
	for _, f := range fields[:len(fields)-1] {
		lit, err := strconv.Atoi(f)
		if err != nil {
			return cnfx.Clause{}, core.NewLogicError("dimacs", "Read", fmt.Sprintf("malformed literal: %q", f))
		}
		if lit == 0 {
			return cnfx.Clause{}, core.NewLogicError("dimacs", "Read", "literal 0 only allowed as clause terminator")
		}
		lits = append(lits, lit)
	}
	return cnfx.NewClause(lits...), nil
}
