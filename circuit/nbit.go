package circuit

import "github.com/xDarkicex/factorsat/symbol"

// NBitAdder adds two big-endian bit vectors plus an incoming carry,
// returning a result one bit wider than the longer input. It recurses
// from the least significant bit (the last slice element) toward the
// most significant, mirroring gen_factor_sat's recursive n_bit_adder.
func NBitAdder(s gateStrategy, number1, number2 []symbol.Symbol, carry symbol.Symbol) []symbol.Symbol {
	if len(number1) == 0 {
		return propagate(s, number2, carry)
	}
	if len(number2) == 0 {
		return propagate(s, number1, carry)
	}

	lsb1 := number1[len(number1)-1]
	lsb2 := number2[len(number2)-1]

	lsbSum, lsbCarry := FullAdder(s, lsb1, lsb2, carry)
	initSum := NBitAdder(s, number1[:len(number1)-1], number2[:len(number2)-1], lsbCarry)

	return append(initSum, lsbSum)
}

// propagate ripples carry through a single bit vector, as happens once
// one operand of an addition runs out of bits.
func propagate(s gateStrategy, number []symbol.Symbol, carry symbol.Symbol) []symbol.Symbol {
	if len(number) == 0 {
		return []symbol.Symbol{carry}
	}
	lsb := number[len(number)-1]
	lsbSum, lsbCarry := HalfAdder(s, lsb, carry)
	initSum := propagate(s, number[:len(number)-1], lsbCarry)
	return append(initSum, lsbSum)
}

// Subtract computes number1 - number2 via two's-complement addition,
// dropping the carry-out bit. If number2 is all zero the subtraction is
// skipped entirely and number1 is returned unchanged.
func Subtract(s gateStrategy, number1, number2 []symbol.Symbol) []symbol.Symbol {
	if AllZero(s, number2) {
		return number1
	}

	aligned1, aligned2 := Align(s, number1, number2)

	complement := make([]symbol.Symbol, len(aligned2))
	for i, bit := range aligned2 {
		complement[i] = s.Not(bit)
	}

	sum := NBitAdder(s, aligned1, complement, s.One())
	return sum[1:]
}

// NBitEquality returns a symbol that is One iff number1 == number2 once
// both are zero-padded to the same width.
func NBitEquality(s gateStrategy, number1, number2 []symbol.Symbol) symbol.Symbol {
	aligned1, aligned2 := Align(s, number1, number2)

	allEqual := s.One()
	for i := range aligned1 {
		allEqual = s.And(allEqual, Equality(s, aligned1[i], aligned2[i]))
	}
	return allEqual
}

// Shift appends shifts zero bits to the low end of number, multiplying
// its value by 2^shifts.
func Shift(s gateStrategy, number []symbol.Symbol, shifts int) []symbol.Symbol {
	out := make([]symbol.Symbol, len(number), len(number)+shifts)
	copy(out, number)
	for i := 0; i < shifts; i++ {
		out = append(out, s.Zero())
	}
	return out
}

// Align zero-pads the shorter of number1/number2 at its most significant
// end so both vectors have the same length.
func Align(s gateStrategy, number1, number2 []symbol.Symbol) (aligned1, aligned2 []symbol.Symbol) {
	aligned1 = padLeft(s, number1, len(number2)-len(number1))
	aligned2 = padLeft(s, number2, len(number1)-len(number2))
	return aligned1, aligned2
}

func padLeft(s gateStrategy, number []symbol.Symbol, amount int) []symbol.Symbol {
	if amount <= 0 {
		return number
	}
	out := make([]symbol.Symbol, amount, amount+len(number))
	for i := range out {
		out[i] = s.Zero()
	}
	return append(out, number...)
}

// AllZero reports whether every bit of number is the Zero constant.
func AllZero(s gateStrategy, number []symbol.Symbol) bool {
	return len(Normalize(s, number)) == 0
}

// Normalize drops leading zero bits, the bit-vector analogue of
// stripping a number's leading zeros.
func Normalize(s gateStrategy, number []symbol.Symbol) []symbol.Symbol {
	i := 0
	for i < len(number) && number[i] == s.Zero() {
		i++
	}
	return number[i:]
}
