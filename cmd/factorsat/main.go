// Command factorsat renders a number's factorization as a CNF formula:
// "number N" encodes a specific number, "random MAX" draws one in
// [MIN, MAX] first. Grounded on gen_factor_sat's main.py, including its
// --prime/--no-prime/--error/--tries flags for the random subcommand.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"strings"

	"github.com/xDarkicex/factorsat/dimacs"
	"github.com/xDarkicex/factorsat/factor"
	"github.com/xDarkicex/factorsat/numgen"
	"github.com/xDarkicex/factorsat/symbol"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("factorsat: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "number":
		err = runNumber(os.Args[2:])
	case "random":
		err = runRandom(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: factorsat number <N> [-o outfile]")
	fmt.Fprintln(os.Stderr, "       factorsat random <max> [--min-value V] [--seed S] [--prime|--no-prime] [--error E] [--tries N] [-o outfile]")
}

func runNumber(args []string) error {
	fs := flag.NewFlagSet("number", flag.ExitOnError)
	outfile := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("number: expected exactly one argument, the number to factor")
	}

	number, ok := new(big.Int).SetString(fs.Arg(0), 10)
	if !ok {
		return fmt.Errorf("number: %q is not a valid integer", fs.Arg(0))
	}

	instance := factor.Factorize(number)
	return writeInstance(*outfile, instance)
}

func runRandom(args []string) error {
	fs := flag.NewFlagSet("random", flag.ExitOnError)
	minValue := fs.Int64("min-value", 2, "smallest candidate number (inclusive)")
	seed := fs.Int64("seed", 0, "seed for the random number generator (default: derived from OS entropy)")
	prime := fs.Bool("prime", false, "require the generated number to be prime")
	noPrime := fs.Bool("no-prime", false, "require the generated number to be composite")
	errorBound := fs.Float64("error", 0, "false-positive bound for a probabilistic primality check (0 selects exact trial division)")
	tries := fs.Int("tries", 100, "maximum attempts before giving up")
	outfile := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("random: expected exactly one argument, the maximum value")
	}
	if *prime && *noPrime {
		return fmt.Errorf("random: --prime and --no-prime are mutually exclusive")
	}

	maxValue, ok := new(big.Int).SetString(fs.Arg(0), 10)
	if !ok {
		return fmt.Errorf("random: %q is not a valid integer", fs.Arg(0))
	}

	hasSeed := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			hasSeed = true
		}
	})
	if !hasSeed {
		*seed = deriveSeed()
	}

	wanted := numgen.Wanted{Base: numgen.Unknown}
	switch {
	case *prime:
		wanted.Base = numgen.Prime
	case *noPrime:
		wanted.Base = numgen.Composite
	}
	if *errorBound > 0 {
		wanted.Check = numgen.CheckProbable
		wanted.Error = *errorBound
	} else if wanted.Base != numgen.Unknown {
		wanted.Check = numgen.CheckDeterministic
	}

	generated, err := numgen.Generate(big.NewInt(*minValue), maxValue, *seed, wanted, *tries)
	if err != nil {
		return err
	}

	instance := factor.Factorize(generated.Value)
	instance.MaxValue = maxValue
	instance.Seed = *seed
	instance.HasSeed = true

	return writeInstance(*outfile, instance)
}

// deriveSeed produces a seed when the caller didn't supply one. It
// reads from the OS entropy source rather than wall-clock time so two
// factorsat invocations in the same process tick don't collide.
func deriveSeed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 1
	}
	var n int64
	for _, b := range buf {
		n = n<<8 | int64(b)
	}
	if n < 0 {
		n = -n
	}
	return n
}

func writeInstance(outfile string, instance *factor.Instance) error {
	w := os.Stdout
	if outfile != "" {
		f, err := os.Create(outfile)
		if err != nil {
			return err
		}
		defer f.Close()
		return dimacs.Write(f, instance.NumberOfVariables, instance.Clauses, comments(instance))
	}
	return dimacs.Write(w, instance.NumberOfVariables, instance.Clauses, comments(instance))
}

func comments(instance *factor.Instance) []string {
	var lines []string
	if instance.MaxValue != nil {
		lines = append(lines, fmt.Sprintf("Random number in range: 2 - %s", instance.MaxValue.String()))
	}
	if instance.HasSeed {
		lines = append(lines, fmt.Sprintf("Seed: %d", instance.Seed))
	}
	if len(lines) > 0 {
		lines = append(lines, "")
	}
	lines = append(lines,
		fmt.Sprintf("Factorization of the number: %s", instance.Number.String()),
		fmt.Sprintf("Factor 1 is encoded in the variables: %s", symbolsToString(instance.Factor1)),
		fmt.Sprintf("Factor 2 is encoded in the variables: %s", symbolsToString(instance.Factor2)),
	)
	return lines
}

func symbolsToString(symbols []symbol.Symbol) string {
	parts := make([]string, len(symbols))
	for i, s := range symbols {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
