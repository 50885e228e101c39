package rational

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow is matched by every overflow failure.
	ErrOverflow = errors.New("rational overflow")

	// ErrNumeratorOverflow means the reduced numerator does not fit in an int64.
	ErrNumeratorOverflow = fmt.Errorf("numerator: %w", ErrOverflow)

	// ErrDenominatorOverflow means the reduced denominator does not fit in an int64.
	ErrDenominatorOverflow = fmt.Errorf("denominator: %w", ErrOverflow)

	// ErrPrecision is returned when a float cannot be represented exactly.
	ErrPrecision = errors.New("value cannot be represented exactly")

	// ErrUnknownCompareMode is returned by ParseCompareMode.
	ErrUnknownCompareMode = errors.New("unknown compare mode")
)

// OverflowError reports which operation overflowed. It unwraps to one of
// ErrNumeratorOverflow or ErrDenominatorOverflow (and therefore ErrOverflow).
type OverflowError struct {
	Op  string
	Err error
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("rational %s: %v", e.Op, e.Err)
}

func (e *OverflowError) Unwrap() error {
	return e.Err
}

// wrap attaches the operation name to an overflow from the internal helpers.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	return &OverflowError{Op: op, Err: err}
}

// must panics with err, which is how the non-Try operators surface overflow.
func must(r Rational, err error) Rational {
	if err != nil {
		panic(err)
	}

	return r
}
