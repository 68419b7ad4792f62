// Package symbol defines the literal representation shared by the gate,
// circuit, and Tseitin layers: a Symbol is either one of the two
// distinguished Constant tokens or a signed, nonzero Variable id.
package symbol

import (
	"strconv"

	"github.com/xDarkicex/factorsat/core"
)

// Kind tags which alternative of the Symbol sum type is populated.
type Kind uint8

const (
	// KindVariable marks a Symbol holding a signed nonzero variable id.
	KindVariable Kind = iota
	// KindConstant marks a Symbol holding one of Zero or One.
	KindConstant
)

// Symbol is the tagged union of {Constant, Variable} from spec §3. It is
// a plain value type: two Symbols compare equal with ==.
type Symbol struct {
	kind Kind
	// id holds the variable id when kind == KindVariable; for
	// KindConstant it holds 0 (Zero) or 1 (One) and nothing else.
	id int
}

// Zero is the distinguished constant token denoting the compile-time
// known bit 0.
var Zero = Symbol{kind: KindConstant, id: 0}

// One is the distinguished constant token denoting the compile-time known
// bit 1.
var One = Symbol{kind: KindConstant, id: 1}

// Variable constructs a Symbol wrapping a nonzero signed variable id. The
// sign encodes polarity: positive is the variable itself, negative is its
// negation. Passing 0 is a programming error (spec §7 InvalidSymbol) and
// panics with a *core.LogicError payload.
func Variable(id int) Symbol {
	if id == 0 {
		panic(core.NewKindError("symbol", "Variable", "0 cannot be used as a variable id", core.KindInvalidSymbol))
	}
	return Symbol{kind: KindVariable, id: id}
}

// IsConstant reports whether s is Zero or One.
func (s Symbol) IsConstant() bool { return s.kind == KindConstant }

// IsZero reports whether s is the Zero constant.
func (s Symbol) IsZero() bool { return s == Zero }

// IsOne reports whether s is the One constant.
func (s Symbol) IsOne() bool { return s == One }

// Var returns the underlying variable id. It panics if s is a Constant;
// callers must check IsConstant first, mirroring the original's reliance
// on the tagged variant rather than a sentinel comparison.
func (s Symbol) Var() int {
	if s.kind != KindVariable {
		panic(core.NewKindError("symbol", "Var", "symbol is a constant, not a variable", core.KindInvalidSymbol))
	}
	return s.id
}

// Negate returns the negation of a variable Symbol as a sign-flipped
// literal — never a fresh variable. Negating a Constant is undefined here;
// that branch belongs to the gate layer's wire_not, which intercepts
// constants before reaching Negate.
func (s Symbol) Negate() Symbol {
	return Variable(-s.Var())
}

func (s Symbol) String() string {
	if s.IsZero() {
		return "0"
	}
	if s.IsOne() {
		return "1"
	}
	return strconv.Itoa(s.id)
}
