package num

import (
	"fmt"
	"math/big"
)

// Num is an exact rational scalar. The zero value is the number 0.
// Operations return new values; a Num is never mutated in place, so
// copies of slices of Num may be shared freely.
type Num struct {
	rat *big.Rat
}

var zero = new(big.Rat)

func (n Num) val() *big.Rat {
	if n.rat == nil {
		return zero
	}
	return n.rat
}

// FromInt returns the rational v/1.
func FromInt(v int64) Num {
	return Num{rat: new(big.Rat).SetInt64(v)}
}

// FromFrac returns the rational p/q in lowest terms. It panics if q is zero.
func FromFrac(p, q int64) Num {
	if q == 0 {
		panic("num: zero denominator")
	}
	return Num{rat: big.NewRat(p, q)}
}

func Zero() Num { return Num{} }

func One() Num { return FromInt(1) }

// Parse accepts integer ("3"), fraction ("-5/2") and decimal ("0.5") text.
func Parse(s string) (Num, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Num{}, fmt.Errorf("num: cannot parse %q as a rational", s)
	}
	return Num{rat: r}, nil
}

func (n Num) Add(o Num) Num { return Num{rat: new(big.Rat).Add(n.val(), o.val())} }

func (n Num) Sub(o Num) Num { return Num{rat: new(big.Rat).Sub(n.val(), o.val())} }

func (n Num) Mul(o Num) Num { return Num{rat: new(big.Rat).Mul(n.val(), o.val())} }

// Div panics if o is zero. A zero divisor on the pivot path is a
// contract violation, never a recoverable condition.
func (n Num) Div(o Num) Num {
	if o.IsZero() {
		panic("num: division by zero")
	}
	return Num{rat: new(big.Rat).Quo(n.val(), o.val())}
}

func (n Num) Neg() Num { return Num{rat: new(big.Rat).Neg(n.val())} }

func (n Num) Cmp(o Num) int { return n.val().Cmp(o.val()) }

func (n Num) Sign() int { return n.val().Sign() }

func (n Num) IsZero() bool { return n.Sign() == 0 }

func (n Num) Equal(o Num) bool { return n.Cmp(o) == 0 }

// String renders integers without a denominator and everything else as p/q.
func (n Num) String() string { return n.val().RatString() }

// Float64 is a lossy conversion, used only for diagnostics and the
// floating-point cross-checks in the tests.
func (n Num) Float64() float64 {
	f, _ := n.val().Float64()
	return f
}
