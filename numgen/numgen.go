// Package numgen generates candidate numbers for the random-factoring
// CLI path and classifies them as prime or composite, either
// deterministically or with a bounded error probability. Grounded on
// gen_factor_sat's number_generator.py.
package numgen

import (
	"fmt"
	"math/big"
	"math/rand"
)

// BaseType is the outcome of classifying a number.
type BaseType int

const (
	// Unknown means the number was never classified (no check was
	// requested).
	Unknown BaseType = iota
	Prime
	Composite
)

func (b BaseType) String() string {
	switch b {
	case Prime:
		return "prime"
	case Composite:
		return "composite"
	default:
		return "unknown"
	}
}

// CheckKind selects how a number's primality is established.
type CheckKind int

const (
	// CheckNone leaves the number unclassified.
	CheckNone CheckKind = iota
	// CheckDeterministic classifies via exhaustive trial division.
	CheckDeterministic
	// CheckProbable classifies via a Miller-Rabin-backed probabilistic
	// test bounded by Error.
	CheckProbable
)

// NumberType records how a number was (or wasn't) classified, mirroring
// gen_factor_sat's NumberType/ProbableCheck/DeterministicCheck.
type NumberType struct {
	Base  BaseType
	Check CheckKind
	// Error bounds the false-positive probability of a CheckProbable
	// classification; meaningless otherwise.
	Error float64
}

// Number pairs a generated value with how it classifies under the
// requested check.
type Number struct {
	Value *big.Int
	Type  NumberType
}

// Wanted describes the candidate a caller is prepared to accept:
// Base == Unknown accepts anything, Check selects which primality test
// decides Base for Prime/Composite requests.
type Wanted struct {
	Base  BaseType
	Check CheckKind
	Error float64
}

// Classify determines value's NumberType under check/error.
func Classify(value *big.Int, check CheckKind, errorBound float64) NumberType {
	switch check {
	case CheckDeterministic:
		base := Composite
		if IsPrimeExact(value) {
			base = Prime
		}
		return NumberType{Base: base, Check: check}
	case CheckProbable:
		base := Composite
		if IsPrimeProbable(value, errorBound) {
			base = Prime
		}
		return NumberType{Base: base, Check: check, Error: errorBound}
	default:
		return NumberType{Base: Unknown, Check: CheckNone}
	}
}

// Generate draws candidates in [minValue, maxValue] from a seeded
// generator until one classifies as wanted.Base (or wanted.Base is
// Unknown, which accepts the first draw), giving up after maxTries
// attempts. It mirrors gen_factor_sat's generate_number /
// number_generator pairing, collapsed into a single bounded loop since
// Go has no lazy itertools.dropwhile to lean on.
func Generate(minValue, maxValue *big.Int, seed int64, wanted Wanted, maxTries int) (Number, error) {
	rnd := rand.New(rand.NewSource(seed))
	span := new(big.Int).Sub(maxValue, minValue)
	span.Add(span, big.NewInt(1))

	for try := 0; try < maxTries; try++ {
		candidate := new(big.Int).Rand(rnd, span)
		candidate.Add(candidate, minValue)

		numberType := Classify(candidate, wanted.Check, wanted.Error)
		if wanted.Base == Unknown || numberType.Base == wanted.Base {
			return Number{Value: candidate, Type: numberType}, nil
		}
	}

	return Number{}, fmt.Errorf("numgen: failed to generate a %s number within %d tries", wanted.Base, maxTries)
}
