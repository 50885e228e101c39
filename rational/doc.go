// Package rational provides an exact, fixed-width rational number type.
//
// # Overview
//
// A [Rational] is a fraction with an int64 numerator and denominator that is
// always kept in canonical form:
//
//   - finite values are fully reduced (gcd(|num|, den) == 1)
//   - the sign lives in the numerator and the denominator is never negative
//   - a zero denominator encodes the non-finite values: 0/0 is [NaN], and
//     1/0 and -1/0 are [Infinity] and [NegativeInfinity]
//
// The zero value of Rational is the number zero (0/1), so a Rational can be
// declared and used without a constructor.
//
// # Division by zero
//
// Dividing by zero is not an error for this type. It is how the sentinel
// values are produced, mirroring IEEE floating point:
//
//	rational.FromInt(3).Div(rational.Zero)  // 1/0 (Infinity)
//	rational.Zero.Div(rational.Zero)        // 0/0 (NaN)
//	rational.Infinity.Sub(rational.Infinity) // 0/0 (NaN)
//
// Unlike IEEE floats, NaN compares equal to NaN because equality is defined on
// the canonical numerator and denominator, and NaN is always stored as 0/0.
//
// # Overflow
//
// Numerators and denominators are 64-bit. Arithmetic is checked: when an
// intermediate product overflows, the operation is recomputed exactly with
// math/big and only fails if the reduced result itself does not fit. The
// plain operators (Add, Mul, ...) panic with an [*OverflowError] in that case;
// the Try variants (TryAdd, TryMul, ...) return it instead.
//
// Float conversions ([Of], [FromFloat64], [FromFloat32]) fail differently: a
// float whose decimal value does not fit panics with an error wrapping
// [ErrPrecision], which TryOf and TryFromFloat64 return instead.
//
// # Mixed numeric types
//
// Go has no operator overloading, so native integers and floats are promoted
// explicitly with [Of] and then combined with the ordinary methods:
//
//	half := rational.New(1, 2)
//	half.Add(rational.Of(3))    // 7/2
//	half.Mul(rational.Of(0.25)) // 1/8
//
// Floats are converted through their shortest decimal text, so 0.1 becomes
// exactly 1/10 rather than the nearest binary fraction.
//
// # Ordering
//
// [Rational.Cmp] is an exact total order computed with 128-bit
// cross-multiplication. [CompareMode] selects between that exact comparison
// and a faster float64 evaluation for callers that accept the precision loss
// on very large numerators or denominators.
package rational
