package rational

import (
	"math"
	"math/big"
	"strconv"
)

// Integer bounds of the numerator and denominator.
const (
	MaxInt = math.MaxInt64
	MinInt = math.MinInt64
)

// Rational is an exact fraction in canonical form. See the package
// documentation for the invariants.
//
// Rational has value semantics and can be copied freely. Two rationals can be
// compared with == because every value is stored canonically.
type Rational struct {
	num int64

	// den is the denominator minus one, so that Rational{} is 0/1 rather
	// than 0/0. Non-finite values store -1 here.
	den int64
}

//nolint:gochecknoglobals
var (
	Zero             = Rational{}
	One              = Rational{num: 1}
	Infinity         = Rational{num: 1, den: -1}
	NegativeInfinity = Rational{num: -1, den: -1}
	NaN              = Rational{num: 0, den: -1}
)

// New returns num/den in canonical form. Every pair is accepted, including a
// zero denominator, which yields Infinity, NegativeInfinity or NaN.
// New panics only if the canonical value is not representable, which can
// only happen when num or den is MinInt.
func New(num, den int64) Rational {
	return must(Try(num, den))
}

// Try is like New but returns an *OverflowError instead of panicking.
func Try(num, den int64) (Rational, error) {
	r, err := canonical(num, den)

	return r, wrap("new", err)
}

// FromInt returns n/1.
func FromInt(n int64) Rational {
	return Rational{num: n}
}

// pair builds a Rational from an already canonical numerator and denominator.
func pair(num, den int64) Rational {
	return Rational{num: num, den: den - 1}
}

// Num returns the numerator. Its sign is the sign of the value.
func (x Rational) Num() int64 {
	return x.num
}

// Den returns the denominator, which is never negative.
func (x Rational) Den() int64 {
	return x.den + 1
}

// Signum returns -1, 0 or 1. NaN has signum 0.
func (x Rational) Signum() int {
	switch {
	case x.num > 0:
		return 1
	case x.num < 0:
		return -1
	default:
		return 0
	}
}

// IsFinite reports whether x is neither infinite nor NaN.
func (x Rational) IsFinite() bool {
	return x.Den() != 0
}

// IsInfinite reports whether x is Infinity or NegativeInfinity.
func (x Rational) IsInfinite() bool {
	return x.Den() == 0 && x.num != 0
}

// IsNaN reports whether x is 0/0.
func (x Rational) IsNaN() bool {
	return x.Den() == 0 && x.num == 0
}

// IsZero reports whether x is the finite value zero.
func (x Rational) IsZero() bool {
	return x == Zero
}

// IsWholeNumber reports whether x is a finite integer.
func (x Rational) IsWholeNumber() bool {
	return x.IsFinite() && (x.Den() == 1 || x.num == 0)
}

// Float64 returns num/den evaluated in float64. Non-finite values map to the
// matching IEEE infinity or NaN.
func (x Rational) Float64() float64 {
	return float64(x.num) / float64(x.Den())
}

// Float32 is like Float64 but evaluates in float32.
func (x Rational) Float32() float32 {
	return float32(x.num) / float32(x.Den())
}

// Int64 returns the quotient truncated toward zero. It returns false for
// non-finite values.
func (x Rational) Int64() (int64, bool) {
	if !x.IsFinite() {
		return 0, false
	}

	return x.num / x.Den(), true
}

// String formats x as "num" for whole numbers and "num/den" otherwise,
// including the sentinels ("1/0", "-1/0", "0/0").
func (x Rational) String() string {
	if x.IsWholeNumber() {
		return strconv.FormatInt(x.num, 10)
	}

	return strconv.FormatInt(x.num, 10) + "/" + strconv.FormatInt(x.Den(), 10)
}

// toBig returns x as a *big.Rat. x must be finite.
func (x Rational) toBig() *big.Rat {
	return big.NewRat(x.num, x.Den())
}
