// Package compare provides equality and ordering primitives shared by the sort
// and grouping helpers.
package compare

import "cmp"

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Func is a three-way comparison: negative when a sorts before b, zero when they
// are equivalent, positive when a sorts after b.
type Func[T any] func(a, b T) int

// Natural is the three-way comparison of an ordered type. NaN is treated as
// equivalent to every value so that a single NaN never decides an ordering.
func Natural[T cmp.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Reverse inverts an ordering.
func Reverse[T any](f Func[T]) Func[T] {
	return func(a, b T) int {
		return f(b, a)
	}
}

// Sign normalizes a three-way result to -1, 0 or 1.
func Sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	default:
		return 0
	}
}

// Multi returns the first non-zero result, or zero when all results are zero.
func Multi(results ...int) int {
	for _, c := range results {
		if c != 0 {
			return c
		}
	}

	return 0
}

// Chain compares by each ordering in turn, stopping at the first that
// distinguishes a from b.
func Chain[T any](fs ...Func[T]) Func[T] {
	return func(a, b T) int {
		for _, f := range fs {
			if c := f(a, b); c != 0 {
				return c
			}
		}

		return 0
	}
}
