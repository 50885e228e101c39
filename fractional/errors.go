package fractional

import "errors"

var (
	// ErrKeyOutOfRange is returned by Insert for a key that is NaN or not
	// greater than LowerBound.
	ErrKeyOutOfRange = errors.New("key out of range")

	// ErrKeySpaceExhausted means a new key would need a denominator that does
	// not fit in an int64. The sequence is left unchanged.
	ErrKeySpaceExhausted = errors.New("fractional key space exhausted")

	// ErrInvariantViolation is wrapped by every problem Validate reports.
	ErrInvariantViolation = errors.New("sequence invariant violated")
)
