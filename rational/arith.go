package rational

import (
	"math"
	"math/big"
)

// Add returns x + y. It panics with an *OverflowError if the result does not fit.
func (x Rational) Add(y Rational) Rational {
	return must(x.TryAdd(y))
}

// TryAdd returns x + y.
//
// NaN propagates, infinities of opposite sign give NaN, and an infinity plus
// a finite value keeps the infinity.
func (x Rational) TryAdd(y Rational) (Rational, error) {
	r, err := sum(x, y, false)

	return r, wrap("add", err)
}

// Sub returns x - y. It panics with an *OverflowError if the result does not fit.
func (x Rational) Sub(y Rational) Rational {
	return must(x.TrySub(y))
}

// TrySub returns x - y.
//
// NaN - y and x - NaN are NaN, Infinity - Infinity is NaN, Infinity minus a
// finite value is Infinity, and a finite value minus Infinity is
// NegativeInfinity.
func (x Rational) TrySub(y Rational) (Rational, error) {
	r, err := sum(x, y, true)

	return r, wrap("sub", err)
}

// sum computes x + y, or x - y when subtract is set. Finite operands are
// brought over the least common denominator; if that overflows the sum is
// recomputed exactly and only fails if the reduced result does not fit.
func sum(x, y Rational, subtract bool) (Rational, error) {
	if !x.IsFinite() || !y.IsFinite() {
		if subtract {
			// y may be finite with a MinInt numerator; the negation then
			// wraps, which is harmless because sumNonFinite ignores a
			// finite operand when the other one is not finite.
			y.num = -y.num
		}

		return sumNonFinite(x, y), nil
	}

	if xn, yn, den, ok := commonDenominator(x, y); ok {
		combine := add64
		if subtract {
			combine = sub64
		}

		if n, ok := combine(xn, yn); ok {
			return canonical(n, den)
		}
	}

	if subtract {
		return fromBig(new(big.Rat).Sub(x.toBig(), y.toBig()))
	}

	return fromBig(new(big.Rat).Add(x.toBig(), y.toBig()))
}

// sumNonFinite adds x and y when at least one of them is not finite.
func sumNonFinite(x, y Rational) Rational {
	switch {
	case x.IsNaN(), y.IsNaN():
		return NaN
	case x.IsInfinite() && y.IsInfinite():
		if x == y {
			return x
		}

		return NaN
	case x.IsInfinite():
		return x
	default:
		return y
	}
}

// Mul returns x * y. It panics with an *OverflowError if the result does not fit.
func (x Rational) Mul(y Rational) Rational {
	return must(x.TryMul(y))
}

// TryMul returns x * y. Infinity times zero is NaN.
func (x Rational) TryMul(y Rational) (Rational, error) {
	r, err := product(x, y)

	return r, wrap("mul", err)
}

func product(x, y Rational) (Rational, error) {
	if x.IsNaN() || y.IsNaN() {
		return NaN, nil
	}

	if !x.IsFinite() || !y.IsFinite() {
		return infinityWithSign(x.Signum() * y.Signum()), nil
	}

	n, okN := mul64(x.num, y.num)
	d, okD := mul64(x.Den(), y.Den())

	if okN && okD {
		return canonical(n, d)
	}

	return fromBig(new(big.Rat).Mul(x.toBig(), y.toBig()))
}

// Div returns x / y. It panics with an *OverflowError if the result does not fit.
//
// Division by zero is not an error: x/0 is Infinity or NegativeInfinity for
// x != 0, and 0/0 is NaN.
func (x Rational) Div(y Rational) Rational {
	return must(x.TryDiv(y))
}

// TryDiv returns x / y.
func (x Rational) TryDiv(y Rational) (Rational, error) {
	r, err := quotient(x, y)

	return r, wrap("div", err)
}

func quotient(x, y Rational) (Rational, error) {
	switch {
	case x.IsNaN(), y.IsNaN():
		return NaN, nil
	case y.IsZero():
		return infinityWithSign(x.Signum()), nil
	case y.IsInfinite():
		if x.IsInfinite() {
			return NaN, nil
		}

		return Zero, nil
	case x.IsInfinite():
		return infinityWithSign(x.Signum() * y.Signum()), nil
	}

	n, okN := mul64(x.num, y.Den())
	d, okD := mul64(x.Den(), y.num)

	if okN && okD {
		return canonical(n, d)
	}

	return fromBig(new(big.Rat).Quo(x.toBig(), y.toBig()))
}

// infinityWithSign maps a signum to the matching infinity, or NaN for zero.
func infinityWithSign(sign int) Rational {
	switch {
	case sign > 0:
		return Infinity
	case sign < 0:
		return NegativeInfinity
	default:
		return NaN
	}
}

// Neg returns -x. It panics if x has numerator MinInt.
func (x Rational) Neg() Rational {
	return must(x.TryNeg())
}

// TryNeg returns -x.
func (x Rational) TryNeg() (Rational, error) {
	if x.num == MinInt {
		return Rational{}, wrap("neg", ErrNumeratorOverflow)
	}

	return Rational{num: -x.num, den: x.den}, nil
}

// Negate flips the sign of x in place. It is the only mutating operation on
// a Rational.
func (x *Rational) Negate() {
	*x = x.Neg()
}

// Reciprocal returns den/num. The reciprocal of zero is Infinity, the
// reciprocal of an infinity is zero, and the reciprocal of NaN is NaN.
func (x Rational) Reciprocal() Rational {
	return must(x.TryReciprocal())
}

// TryReciprocal returns den/num.
func (x Rational) TryReciprocal() (Rational, error) {
	r, err := canonical(x.Den(), x.num)

	return r, wrap("reciprocal", err)
}

// Magnitude returns x * signum(x), the absolute value. The magnitude of NaN
// is NaN.
func (x Rational) Magnitude() Rational {
	return x.Mul(FromInt(int64(x.Signum())))
}

// Distance returns other - x.
func (x Rational) Distance(other Rational) Rational {
	return other.Sub(x)
}

// Advanced returns x + n.
func (x Rational) Advanced(n Rational) Rational {
	return x.Add(n)
}

// PowInt returns x raised to the integer power n. Negative powers go through
// the reciprocal, and x^0 is One for every x.
func (x Rational) PowInt(n int) Rational {
	return must(x.TryPowInt(n))
}

// TryPowInt returns x raised to the integer power n.
func (x Rational) TryPowInt(n int) (Rational, error) {
	base := x

	if n == math.MinInt {
		return Rational{}, wrap("pow", ErrDenominatorOverflow)
	}

	if n < 0 {
		r, err := x.TryReciprocal()
		if err != nil {
			return Rational{}, wrap("pow", err)
		}

		base, n = r, -n
	}

	result := One

	for n > 0 {
		var err error

		if n&1 == 1 {
			if result, err = product(result, base); err != nil {
				return Rational{}, wrap("pow", err)
			}
		}

		n >>= 1
		if n == 0 {
			break
		}

		if base, err = product(base, base); err != nil {
			return Rational{}, wrap("pow", err)
		}
	}

	return result, nil
}

// Midpoint returns (a + b) / 2.
func Midpoint(a, b Rational) Rational {
	return must(TryMidpoint(a, b))
}

// TryMidpoint returns (a + b) / 2.
func TryMidpoint(a, b Rational) (Rational, error) {
	s, err := sum(a, b, false)
	if err != nil {
		return Rational{}, wrap("midpoint", err)
	}

	m, err := quotient(s, FromInt(2))

	return m, wrap("midpoint", err)
}
