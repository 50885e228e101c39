package rational

import (
	"math"
	"math/big"
	"math/bits"
)

// canonical reduces num/den and returns it as a Rational.
func canonical(num, den int64) (Rational, error) {
	n, d, err := reduce(num, den)
	if err != nil {
		return Rational{}, err
	}

	return pair(n, d), nil
}

// reduce divides num and den by their greatest common divisor and moves the
// sign to the numerator. A zero denominator collapses to 1/0, -1/0 or 0/0.
func reduce(num, den int64) (int64, int64, error) {
	if den == 0 {
		switch {
		case num > 0:
			return 1, 0, nil
		case num < 0:
			return -1, 0, nil
		default:
			return 0, 0, nil
		}
	}

	if num == 0 {
		return 0, 1, nil
	}

	negative := (num < 0) != (den < 0)
	n, d := abs64(num), abs64(den)

	g := gcd(n, d)
	n, d = n/g, d/g

	if d > math.MaxInt64 {
		return 0, 0, ErrDenominatorOverflow
	}

	if negative {
		if n > 1<<63 {
			return 0, 0, ErrNumeratorOverflow
		}

		return -int64(n), int64(d), nil //nolint:gosec
	}

	if n > math.MaxInt64 {
		return 0, 0, ErrNumeratorOverflow
	}

	return int64(n), int64(d), nil //nolint:gosec
}

// gcd returns the greatest common divisor of a and b. gcd(0, 0) is 0.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// lcm returns the least common multiple of a and b, or false if it does not
// fit in an int64.
func lcm(a, b uint64) (uint64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}

	hi, lo := bits.Mul64(a/gcd(a, b), b)
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}

	return lo, true
}

// commonDenominator rewrites two finite rationals over their least common
// denominator, returning the scaled numerators and that denominator.
// The boolean is false if any of the results overflows.
func commonDenominator(x, y Rational) (int64, int64, int64, bool) {
	xd, yd := x.Den(), y.Den()

	den, ok := lcm(uint64(xd), uint64(yd)) //nolint:gosec
	if !ok {
		return 0, 0, 0, false
	}

	xn, okX := mul64(x.num, int64(den/uint64(xd))) //nolint:gosec
	yn, okY := mul64(y.num, int64(den/uint64(yd))) //nolint:gosec

	if !okX || !okY {
		return 0, 0, 0, false
	}

	return xn, yn, int64(den), true //nolint:gosec
}

// fromBig converts a big.Rat, which is always normalized, back to a Rational.
func fromBig(r *big.Rat) (Rational, error) {
	if !r.Num().IsInt64() {
		return Rational{}, ErrNumeratorOverflow
	}

	if !r.Denom().IsInt64() {
		return Rational{}, ErrDenominatorOverflow
	}

	return pair(r.Num().Int64(), r.Denom().Int64()), nil
}

func abs64(v int64) uint64 {
	if v < 0 {
		return uint64(-v) //nolint:gosec
	}

	return uint64(v)
}

// mul64 multiplies a and b, reporting false on overflow.
func mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}

	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}

	c := a * b
	if (c < 0) != ((a < 0) != (b < 0)) || c/b != a {
		return 0, false
	}

	return c, true
}

// add64 adds a and b, reporting false on overflow.
func add64(a, b int64) (int64, bool) {
	c := a + b
	if (a > 0 && b > 0 && c < 0) || (a < 0 && b < 0 && c >= 0) {
		return 0, false
	}

	return c, true
}

// sub64 subtracts b from a, reporting false on overflow.
func sub64(a, b int64) (int64, bool) {
	c := a - b
	if (a >= 0 && b < 0 && c < 0) || (a < 0 && b > 0 && c >= 0) {
		return 0, false
	}

	return c, true
}

// cmp128 compares the unsigned 128-bit values ah:al and bh:bl.
func cmp128(ah, al, bh, bl uint64) int {
	switch {
	case ah < bh, ah == bh && al < bl:
		return -1
	case ah > bh, ah == bh && al > bl:
		return 1
	default:
		return 0
	}
}
