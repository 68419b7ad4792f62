package numgen

import (
	"math"
	"math/big"
)

// IsPrimeExact reports whether value is prime via exhaustive trial
// division up to its square root, mirroring gen_factor_sat's
// is_det_prime. It is exact but, like the original, its cost grows with
// sqrt(value); callers after a quick probabilistic check should prefer
// IsPrimeProbable.
func IsPrimeExact(value *big.Int) bool {
	if value.Cmp(big.NewInt(2)) == 0 {
		return true
	}
	if value.Cmp(big.NewInt(2)) < 0 {
		return false
	}

	limit := new(big.Int).Sqrt(value)
	limit.Add(limit, big.NewInt(1))

	divisor := big.NewInt(2)
	rem := new(big.Int)
	for divisor.Cmp(limit) <= 0 {
		rem.Mod(value, divisor)
		if rem.Sign() == 0 {
			return false
		}
		divisor.Add(divisor, big.NewInt(1))
	}
	return true
}

// IsPrimeProbable reports whether value is prime with false-positive
// probability bounded by errorBound, via math/big's Miller-Rabin-backed
// ProbablyPrime. gen_factor_sat hand-rolls the Miller-Rabin loop itself
// (number_generator.miller_rabin); factorsat instead uses the standard
// library's implementation of the same test, run for
// ceil(-log(errorBound)/log(4)) rounds as the original derives.
func IsPrimeProbable(value *big.Int, errorBound float64) bool {
	if errorBound <= 0 {
		return IsPrimeExact(value)
	}
	rounds := int(math.Ceil(-math.Log(errorBound) / math.Log(4)))
	if rounds < 1 {
		rounds = 1
	}
	return value.ProbablyPrime(rounds)
}
