// Package compare provides equality and ordering interfaces for values that
// define their own semantics, and helpers that work over them.
package compare

// Comparable is implemented by types that decide their own equality.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Sortable extends Comparable with a strict ordering. LessThan must be
// irreflexive and transitive; values that are unordered (such as NaN) should
// report false in both directions.
type Sortable[T any] interface {
	Comparable[T]

	LessThan(other T) bool
}

// Equals compares two values using the Comparable interface.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// FirstOutOfOrder returns the index of the first element that is not
// strictly greater than its predecessor, or -1 if items is strictly
// increasing. Empty and single-element slices are strictly increasing.
func FirstOutOfOrder[T Sortable[T]](items []T) int {
	for i := 1; i < len(items); i++ {
		if !items[i-1].LessThan(items[i]) {
			return i
		}
	}

	return -1
}

// Between reports whether lower < value < upper.
func Between[T Sortable[T]](value, lower, upper T) bool {
	return lower.LessThan(value) && value.LessThan(upper)
}
