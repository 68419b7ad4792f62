package boolalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnd(t *testing.T) {
	assert.True(t, And(true, true))
	assert.False(t, And(true, false))
	assert.False(t, And())
}

func TestOr(t *testing.T) {
	assert.True(t, Or(false, true))
	assert.False(t, Or(false, false))
	assert.False(t, Or())
}

func TestXor(t *testing.T) {
	assert.True(t, Xor(true, false))
	assert.False(t, Xor(true, true))
	assert.True(t, Xor(true, true, true))
}

func TestNotNandNorXnor(t *testing.T) {
	assert.False(t, Not(true))
	assert.True(t, Nand(true, false))
	assert.False(t, Nor(true, false))
	assert.True(t, Xnor(false, false))
}

func TestImpliesIff(t *testing.T) {
	assert.False(t, Implies(true, false))
	assert.True(t, Implies(false, false))
	assert.True(t, Iff(true, true))
	assert.False(t, Iff(true, false))
}
