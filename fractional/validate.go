package fractional

import (
	"fmt"

	"github.com/amp-labs/amp-fraction/compare"
	"github.com/amp-labs/amp-fraction/errors"
	"github.com/amp-labs/amp-fraction/hashing"
	"github.com/amp-labs/amp-fraction/rational"
)

// Validate checks that every key is finite, lies strictly inside
// (LowerBound, UpperBound) and is greater than the key before it. All
// problems are reported together; each wraps ErrInvariantViolation.
// Comparisons are exact whatever the sequence's compare mode.
func (s *Sequence[T]) Validate() error {
	var errs errors.Collection

	keys := s.Keys()

	for i, key := range keys {
		switch {
		case !key.IsFinite():
			errs.Add(fmt.Errorf("%w: key %d is %v, not finite", ErrInvariantViolation, i, key))
		case !compare.Between(key, LowerBound, UpperBound):
			errs.Add(fmt.Errorf("%w: key %d is %v, outside (%v, %v)",
				ErrInvariantViolation, i, key, LowerBound, UpperBound))
		}
	}

	for start := 0; start < len(keys); {
		i := compare.FirstOutOfOrder(keys[start:])
		if i < 0 {
			break
		}

		at := start + i
		errs.Add(fmt.Errorf("%w: key %d (%v) does not follow key %d (%v)",
			ErrInvariantViolation, at, keys[at], at-1, keys[at-1]))

		start = at
	}

	return errs.GetError()
}

// KeysDigest returns an XXH3 digest of the keys in order. Two sequences
// with the same digest almost certainly assign the same keys, whatever their
// values.
func (s *Sequence[T]) KeysDigest() (string, error) {
	return hashing.XXH3(hashing.Slice[rational.Rational](s.Keys()))
}
