package rational

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
)

// Number is every native type that can be promoted to a Rational with Of.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Of promotes a native integer or float to a Rational. It is the only path
// by which mixed-type arithmetic is done, e.g. x.Add(rational.Of(2)).
// Of panics if v cannot be represented: with an *OverflowError for unsigned
// values above MaxInt, or an error wrapping ErrPrecision for floats; see TryOf.
func Of[N Number](v N) Rational {
	return must(TryOf(v))
}

// TryOf promotes v to a Rational. Integers are exact. Floats go through
// TryFromFloat64 or TryFromFloat32 and may fail with ErrPrecision. Unsigned
// values above MaxInt fail with ErrNumeratorOverflow.
func TryOf[N Number](v N) (Rational, error) {
	rv := reflect.ValueOf(v)

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Rational{}, wrap("of", ErrNumeratorOverflow)
		}

		return FromInt(int64(u)), nil //nolint:gosec
	case reflect.Float32:
		return TryFromFloat32(float32(rv.Float()))
	default:
		return TryFromFloat64(rv.Float())
	}
}

// FromFloat64 returns the exact value of the shortest decimal text of v.
// ±Inf map to Infinity and NegativeInfinity, and NaN maps to NaN.
// It panics with an error wrapping ErrPrecision if the value does not fit;
// see TryFromFloat64.
func FromFloat64(v float64) Rational {
	return must(TryFromFloat64(v))
}

// TryFromFloat64 returns the exact value of the shortest decimal text of v.
//
// The text is split into its integer part and its fractional digits. The
// denominator is 10^digits and the numerator is frac + |int|*10^digits,
// signed like v. So 0.1 is 1/10 and 1.0/3.0 is 3333333333333333/10^16.
// Values needing more than 64 bits after reduction, such as 1e-30, fail with
// ErrPrecision.
func TryFromFloat64(v float64) (Rational, error) {
	return fromFloat(v, 64)
}

// FromFloat32 is like FromFloat64 but uses the shortest float32 text, so
// float32(0.1) is 1/10.
func FromFloat32(v float32) Rational {
	return must(TryFromFloat32(v))
}

// TryFromFloat32 is like TryFromFloat64 for float32 values.
func TryFromFloat32(v float32) (Rational, error) {
	return fromFloat(float64(v), 32)
}

func fromFloat(v float64, bitSize int) (Rational, error) {
	switch {
	case math.IsNaN(v):
		return NaN, nil
	case math.IsInf(v, 1):
		return Infinity, nil
	case math.IsInf(v, -1):
		return NegativeInfinity, nil
	}

	text := strconv.FormatFloat(v, 'f', -1, bitSize)
	whole, frac, _ := strings.Cut(strings.TrimPrefix(text, "-"), ".")

	// Concatenating the digits is |int|*10^len(frac) + frac.
	num, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return Rational{}, fmt.Errorf("%w: %q", ErrPrecision, text)
	}

	if v < 0 {
		num.Neg(num)
	}

	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(frac))), nil)

	r, err := fromBig(new(big.Rat).SetFrac(num, den))
	if err != nil {
		return Rational{}, fmt.Errorf("%w: %s: %w", ErrPrecision, text, err)
	}

	return r, nil
}
