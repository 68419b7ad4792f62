// Package multiply implements the two bit-vector multipliers a
// factoring circuit composes: a Wallace-tree reduction used directly
// for small operands, and a recursive Karatsuba multiplier that falls
// back to Wallace once the operands shrink below a configurable
// threshold. Grounded on gen_factor_sat's multiplication.py
// (KaratsubaMultiplication, WallaceTreeMultiplier) and utils.py
// (group, split_at).
package multiply

import (
	"sort"

	"github.com/xDarkicex/factorsat/circuit"
	"github.com/xDarkicex/factorsat/symbol"
)

type gateStrategy interface {
	Zero() symbol.Symbol
	One() symbol.Symbol
	And(input1, input2 symbol.Symbol) symbol.Symbol
	Or(input1, input2 symbol.Symbol) symbol.Symbol
	Not(input symbol.Symbol) symbol.Symbol
	Xor(input1, input2 symbol.Symbol) symbol.Symbol
}

// Config tunes the Karatsuba/Wallace crossover.
type Config struct {
	// MinLen is the largest operand length still multiplied directly
	// with the Wallace-tree base case; above it Karatsuba splits the
	// operands in half and recurses. gen_factor_sat defaults this to 20.
	MinLen int
}

// DefaultConfig returns the threshold gen_factor_sat ships with.
func DefaultConfig() Config {
	return Config{MinLen: 20}
}

// Karatsuba multiplies two big-endian bit vectors, recursing on
// half-length splits until neither operand is longer than cfg.MinLen,
// at which point it defers to Wallace. Leading Zero constants are
// dropped first; an operand with no bits left yields the product [Zero].
func Karatsuba(s gateStrategy, cfg Config, factor1, factor2 []symbol.Symbol) []symbol.Symbol {
	factor1 = circuit.Normalize(s, factor1)
	factor2 = circuit.Normalize(s, factor2)
	if len(factor1) == 0 || len(factor2) == 0 {
		return []symbol.Symbol{s.Zero()}
	}

	maxLen := len(factor1)
	if len(factor2) > maxLen {
		maxLen = len(factor2)
	}

	if maxLen <= cfg.MinLen {
		return Wallace(s, factor1, factor2)
	}

	halfLen := (maxLen + 1) / 2

	f1High, f1Low := splitAt(factor1, halfLen)
	f2High, f2Low := splitAt(factor2, halfLen)

	resultLow := Karatsuba(s, cfg, f1Low, f2Low)
	resultHigh := Karatsuba(s, cfg, f1High, f2High)

	factor1Sum := circuit.NBitAdder(s, f1High, f1Low, s.Zero())
	factor2Sum := circuit.NBitAdder(s, f2High, f2Low, s.Zero())

	resultMid := Karatsuba(s, cfg, factor1Sum, factor2Sum)
	resultMid = circuit.Subtract(s, resultMid, resultHigh)
	resultMid = circuit.Subtract(s, resultMid, resultLow)

	shiftedHigh := circuit.Shift(s, resultHigh, halfLen)
	result := circuit.NBitAdder(s, shiftedHigh, resultMid, s.Zero())

	shiftedResult := circuit.Shift(s, result, halfLen)
	result = circuit.NBitAdder(s, shiftedResult, resultLow, s.Zero())

	return result
}

// splitAt splits a big-endian bit vector so that low holds its last
// amount bits (the least significant part) and high holds the rest,
// clamping amount to the vector's length as Python's negative slicing
// does implicitly.
func splitAt(bits []symbol.Symbol, amount int) (high, low []symbol.Symbol) {
	if amount >= len(bits) {
		return nil, bits
	}
	if amount <= 0 {
		return bits, nil
	}
	cut := len(bits) - amount
	return bits[:cut], bits[cut:]
}

// Wallace multiplies two big-endian bit vectors via Wallace-tree
// reduction: every partial product is weighted by its bit position,
// weight buckets holding more than two partial products are reduced with
// half/full adders until each bucket holds at most two, then a single
// ripple-carry pass over the buckets (ascending weight) produces the
// final big-endian product.
func Wallace(s gateStrategy, factor1, factor2 []symbol.Symbol) []symbol.Symbol {
	buckets := weightedProducts(s, factor1, factor2)

	for maxBucketLen(buckets) > 2 {
		next := make(map[int][]symbol.Symbol)
		for _, weight := range sortedKeys(buckets) {
			for _, p := range addLayer(s, weight, buckets[weight]) {
				next[p.weight] = append(next[p.weight], p.value)
			}
		}
		buckets = next
	}

	var result []symbol.Symbol
	lastCarry := s.Zero()
	for _, weight := range sortedKeys(buckets) {
		products := buckets[weight]
		var sum symbol.Symbol
		switch len(products) {
		case 1:
			sum, lastCarry = circuit.HalfAdder(s, products[0], lastCarry)
		case 2:
			sum, lastCarry = circuit.FullAdder(s, products[0], products[1], lastCarry)
		default:
			panic("multiply: wallace reduction left a bucket with more than two partial products")
		}
		result = append(result, sum)
	}
	result = append(result, lastCarry)

	reverse(result)
	return result
}

// weightedProducts returns, for every pair (x, y) of bits from factor1
// and factor2, the AND(x, y) partial product bucketed by the sum of
// its operands' bit weights (1 for the least significant bit, up to the
// vector's length for the most significant).
func weightedProducts(s gateStrategy, factor1, factor2 []symbol.Symbol) map[int][]symbol.Symbol {
	buckets := make(map[int][]symbol.Symbol)
	for i, x := range factor1 {
		wx := len(factor1) - i
		for j, y := range factor2 {
			wy := len(factor2) - j
			weight := wx + wy
			buckets[weight] = append(buckets[weight], s.And(x, y))
		}
	}
	return buckets
}

// weightedValue pairs a partial-product value with the bit weight it
// contributes to.
type weightedValue struct {
	weight int
	value  symbol.Symbol
}

// addLayer reduces one weight bucket by at most one half/full-adder
// pass, returning the (weight, value) pairs it produces: a bucket of
// one is passed through unchanged, a bucket of two is reduced with a
// half adder, and a bucket of three or more has its first three reduced
// with a full adder while the rest carry over untouched at the
// original weight.
func addLayer(s gateStrategy, weight int, products []symbol.Symbol) []weightedValue {
	switch {
	case len(products) == 1:
		return []weightedValue{{weight, products[0]}}
	case len(products) == 2:
		sum, carry := circuit.HalfAdder(s, products[0], products[1])
		return []weightedValue{{weight, sum}, {weight + 1, carry}}
	case len(products) >= 3:
		sum, carry := circuit.FullAdder(s, products[0], products[1], products[2])
		out := []weightedValue{{weight, sum}, {weight + 1, carry}}
		for _, extra := range products[3:] {
			out = append(out, weightedValue{weight, extra})
		}
		return out
	default:
		panic("multiply: cannot add a layer for an empty product bucket")
	}
}

func maxBucketLen(buckets map[int][]symbol.Symbol) int {
	max := 0
	for _, v := range buckets {
		if len(v) > max {
			max = len(v)
		}
	}
	return max
}

func sortedKeys(buckets map[int][]symbol.Symbol) []int {
	keys := make([]int, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func reverse(bits []symbol.Symbol) {
	for i, j := 0, len(bits)-1; i < j; i, j = i+1, j-1 {
		bits[i], bits[j] = bits[j], bits[i]
	}
}
