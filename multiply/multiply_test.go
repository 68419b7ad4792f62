package multiply

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/factorsat/gate"
	"github.com/xDarkicex/factorsat/symbol"
)

func bits(s string) []symbol.Symbol {
	out := make([]symbol.Symbol, len(s))
	for i, c := range s {
		if c == '1' {
			out[i] = symbol.One
		} else {
			out[i] = symbol.Zero
		}
	}
	return out
}

func bitsToInt(t *testing.T, bs []symbol.Symbol) int64 {
	t.Helper()
	sb := make([]byte, len(bs))
	for i, b := range bs {
		require.True(t, b.IsConstant())
		if b.IsOne() {
			sb[i] = '1'
		} else {
			sb[i] = '0'
		}
	}
	if len(sb) == 0 {
		return 0
	}
	n := new(big.Int)
	_, ok := n.SetString(string(sb), 2)
	require.True(t, ok)
	return n.Int64()
}

func TestWallaceMultiplication(t *testing.T) {
	s := gate.ConstantStrategy{}

	testCases := []struct{ a, b string }{
		{"0", "0"},
		{"1", "1"},
		{"101", "011"},
		{"1111", "1111"},
		{"10110", "00111"},
	}

	for _, tc := range testCases {
		result := Wallace(s, bits(tc.a), bits(tc.b))
		a := bitsToInt(t, bits(tc.a))
		b := bitsToInt(t, bits(tc.b))
		assert.Equal(t, a*b, bitsToInt(t, result), "%s * %s", tc.a, tc.b)
	}
}

func TestKaratsubaMatchesWallace(t *testing.T) {
	s := gate.ConstantStrategy{}
	cfg := Config{MinLen: 2} // force recursion on small inputs for the test

	testCases := []struct{ a, b string }{
		{"10110", "00111"},
		{"111111", "101010"},
		{"1", "1111111"},
	}

	for _, tc := range testCases {
		got := Karatsuba(s, cfg, bits(tc.a), bits(tc.b))
		want := bitsToInt(t, bits(tc.a)) * bitsToInt(t, bits(tc.b))
		assert.Equal(t, want, bitsToInt(t, got), "%s * %s", tc.a, tc.b)
	}
}

func TestKaratsubaDefaultConfigMatchesWallaceBelowThreshold(t *testing.T) {
	s := gate.ConstantStrategy{}
	cfg := DefaultConfig()

	got := Karatsuba(s, cfg, bits("1011"), bits("0110"))
	want := bitsToInt(t, bits("1011")) * bitsToInt(t, bits("0110"))
	assert.Equal(t, want, bitsToInt(t, got))
}
