// Package fractional implements an ordered sequence whose elements are keyed
// by exact rationals strictly between 0 and 1.
//
// A new element can always be placed between two neighbours by giving it the
// midpoint of their keys, so inserting never renumbers existing elements.
// Each midpoint doubles the key's denominator in the worst case, so a run of
// inserts at the same place exhausts the int64 key space after roughly 62
// steps; that surfaces as ErrKeySpaceExhausted and is never handled by
// silently renumbering.
//
// A Sequence is not safe for concurrent use.
package fractional

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"math/bits"
	"slices"

	"github.com/amp-labs/amp-fraction/compare"
	"github.com/amp-labs/amp-fraction/logger"
	"github.com/amp-labs/amp-fraction/rational"
	"github.com/google/uuid"
)

//nolint:gochecknoglobals
var (
	// LowerBound is the exclusive lower bound of every key.
	LowerBound = rational.Zero

	// UpperBound is the exclusive upper bound of every key.
	UpperBound = rational.One
)

// Entry is a value together with its key.
type Entry[T any] struct {
	Key   rational.Rational
	Value T
}

// Sequence holds values ordered by strictly increasing keys in
// (LowerBound, UpperBound).
type Sequence[T any] struct {
	entries []Entry[T]
	opts    options
	id      uuid.UUID
	log     *slog.Logger
}

// New returns an empty Sequence.
func New[T any](opts ...Option) *Sequence[T] {
	o := defaultOptions()

	for _, opt := range opts {
		opt(&o)
	}

	return newWithOptions[T](o)
}

func newWithOptions[T any](o options) *Sequence[T] {
	id := uuid.New()

	log := o.logger
	if log == nil {
		log = logger.Get(logger.WithSubsystem(context.Background(), "fractional"))
	}

	return &Sequence[T]{
		opts: o,
		id:   id,
		log:  log.With("sequence", o.name, "sequence_id", id.String()),
	}
}

// From returns a Sequence holding values in order, each appended in turn.
func From[T any](values []T, opts ...Option) (*Sequence[T], error) {
	s := New[T](opts...)

	if err := s.AppendAll(values...); err != nil {
		return nil, err
	}

	return s, nil
}

// ID identifies this sequence instance in logs.
func (s *Sequence[T]) ID() uuid.UUID {
	return s.id
}

// Name returns the name given with WithName.
func (s *Sequence[T]) Name() string {
	return s.opts.name
}

// Len returns the number of elements.
func (s *Sequence[T]) Len() int {
	return len(s.entries)
}

// Append adds v after the last element and returns its key, which is the
// midpoint of the last key (or LowerBound) and UpperBound.
func (s *Sequence[T]) Append(v T) (rational.Rational, error) {
	lower := LowerBound
	if n := len(s.entries); n > 0 {
		lower = s.entries[n-1].Key
	}

	key, err := s.midpoint(lower, UpperBound)
	if err != nil {
		return rational.Rational{}, err
	}

	s.entries = append(s.entries, Entry[T]{Key: key, Value: v})

	if s.opts.metrics {
		appendsTotal.WithLabelValues(s.opts.name).Inc()
	}

	s.observeKey(key)

	return key, nil
}

// AppendAll appends every value in order. It stops at the first failure;
// values appended before it stay in the sequence.
func (s *Sequence[T]) AppendAll(values ...T) error {
	for i, v := range values {
		if _, err := s.Append(v); err != nil {
			return fmt.Errorf("appending value %d: %w", i, err)
		}
	}

	return nil
}

// Insert places v relative to the key at and returns the key it was given.
//
// The first element whose key is >= at is located. If there is none, v is
// appended. If its key equals at, v gets the midpoint of the preceding key
// (or LowerBound) and that key, and goes before it. Otherwise v gets at itself and
// goes before that element.
//
// at must be greater than LowerBound; keys at or above UpperBound append.
func (s *Sequence[T]) Insert(v T, at rational.Rational) (rational.Rational, error) {
	if at.IsNaN() || s.opts.mode.LessOrEqual(at, LowerBound) {
		return rational.Rational{}, fmt.Errorf("%w: %v", ErrKeyOutOfRange, at)
	}

	idx := s.search(at)
	if idx == len(s.entries) {
		key, err := s.Append(v)
		if err == nil {
			s.countInsert(outcomeAppend)
		}

		return key, err
	}

	key, outcome := at, outcomeDirect

	if found := s.entries[idx].Key; s.opts.mode.Compare(found, at) == 0 {
		lower := LowerBound
		if idx > 0 {
			lower = s.entries[idx-1].Key
		}

		// found rather than at: under FastCompare they may differ exactly.
		mid, err := s.midpoint(lower, found)
		if err != nil {
			return rational.Rational{}, err
		}

		s.log.Debug("key collision, using midpoint",
			"at", at.String(), "lower", lower.String(), "key", mid.String())

		key, outcome = mid, outcomeCollision
	}

	s.entries = slices.Insert(s.entries, idx, Entry[T]{Key: key, Value: v})

	s.countInsert(outcome)
	s.observeKey(key)

	return key, nil
}

// RemoveAt removes the first element whose key is >= at and returns its
// value. When at is not itself a key, this is the next element after it.
func (s *Sequence[T]) RemoveAt(at rational.Rational) (T, bool) {
	idx := s.search(at)
	if idx == len(s.entries) {
		var zero T

		return zero, false
	}

	removed := s.entries[idx].Value
	s.entries = slices.Delete(s.entries, idx, idx+1)

	s.countRemovals(1)

	return removed, true
}

// RemoveFunc removes every element whose value satisfies pred and returns
// how many were removed. The remaining keys are unchanged.
func (s *Sequence[T]) RemoveFunc(pred func(T) bool) int {
	before := len(s.entries)

	s.entries = slices.DeleteFunc(s.entries, func(e Entry[T]) bool {
		return pred(e.Value)
	})

	removed := before - len(s.entries)
	s.countRemovals(removed)

	return removed
}

// Remove removes every element equal to v and returns how many were removed.
func Remove[T comparable](s *Sequence[T], v T) int {
	return s.RemoveFunc(func(item T) bool {
		return item == v
	})
}

// RemoveValue is Remove for values that define their own equality.
func RemoveValue[T compare.Comparable[T]](s *Sequence[T], v T) int {
	return s.RemoveFunc(func(item T) bool {
		return compare.Equals[T](item, v)
	})
}

// Get returns the value stored under exactly key.
func (s *Sequence[T]) Get(key rational.Rational) (T, bool) {
	idx, found := slices.BinarySearchFunc(s.entries, key, func(e Entry[T], k rational.Rational) int {
		return e.Key.Cmp(k)
	})
	if !found {
		var zero T

		return zero, false
	}

	return s.entries[idx].Value, true
}

// Keys returns the keys in order.
func (s *Sequence[T]) Keys() []rational.Rational {
	keys := make([]rational.Rational, len(s.entries))
	for i, e := range s.entries {
		keys[i] = e.Key
	}

	return keys
}

// Values returns the values in key order.
func (s *Sequence[T]) Values() []T {
	values := make([]T, len(s.entries))
	for i, e := range s.entries {
		values[i] = e.Value
	}

	return values
}

// Entries returns a copy of the key-value pairs in order.
func (s *Sequence[T]) Entries() []Entry[T] {
	return slices.Clone(s.entries)
}

// All iterates over keys and values in order.
func (s *Sequence[T]) All() iter.Seq2[rational.Rational, T] {
	return func(yield func(rational.Rational, T) bool) {
		for _, e := range s.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Clone returns an independent copy with the same keys and options. Values
// are copied shallowly.
func (s *Sequence[T]) Clone() *Sequence[T] {
	c := newWithOptions[T](s.opts)
	c.entries = slices.Clone(s.entries)

	return c
}

// search returns the index of the first element whose key is >= at under
// the sequence's compare mode, or Len() if there is none. Under FastCompare
// a key that only rounds to the same float64 counts as equal.
func (s *Sequence[T]) search(at rational.Rational) int {
	if at.IsNaN() {
		return len(s.entries)
	}

	for i, e := range s.entries {
		if s.opts.mode.Compare(at, e.Key) <= 0 {
			return i
		}
	}

	return len(s.entries)
}

func (s *Sequence[T]) midpoint(lower, upper rational.Rational) (rational.Rational, error) {
	key, err := rational.TryMidpoint(lower, upper)
	if err != nil {
		s.log.Warn("no representable key left",
			"lower", lower.String(), "upper", upper.String(), "error", err)

		if s.opts.metrics {
			keySpaceExhausted.WithLabelValues(s.opts.name).Inc()
		}

		return rational.Rational{}, fmt.Errorf("%w between %v and %v: %w", ErrKeySpaceExhausted, lower, upper, err)
	}

	return key, nil
}

func (s *Sequence[T]) countInsert(outcome string) {
	if s.opts.metrics {
		insertsTotal.WithLabelValues(s.opts.name, outcome).Inc()
	}
}

func (s *Sequence[T]) countRemovals(n int) {
	if s.opts.metrics && n > 0 {
		removalsTotal.WithLabelValues(s.opts.name).Add(float64(n))
	}
}

func (s *Sequence[T]) observeKey(key rational.Rational) {
	if s.opts.metrics {
		keyDenominatorBits.WithLabelValues(s.opts.name).Observe(float64(bits.Len64(uint64(key.Den())))) //nolint:gosec
	}
}
