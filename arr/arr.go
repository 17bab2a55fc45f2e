// Package arr holds the sequence helpers: projections, reductions, sorting,
// grouping, zipping and Cartesian products over plain Go slices.
//
// Every function takes its subject slice first and never modifies it. Functions
// that take parameters besides the subject also have a data-last form in package
// pipe, for use in fn.Pipe pipelines:
//
//	arr.Filter(orders, isPaid)             // direct
//	pipe.Filter(isPaid)(orders)            // curried
//	fn.Pipe2(orders, pipe.Filter(isPaid), pipe.SumBy(Order.Total))
package arr

import (
	"iter"
	"slices"

	"github.com/amp-labs/amp-fp/numeric"
	"github.com/amp-labs/amp-fp/optional"
)

// Map projects every element of xs through f.
func Map[I, O any](xs []I, f func(I) O) []O {
	out := make([]O, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}

	return out
}

// Filter returns the elements of xs for which pred is true, in order.
func Filter[T any](xs []T, pred func(T) bool) []T {
	out := make([]T, 0, len(xs))

	for _, x := range xs {
		if pred(x) {
			out = append(out, x)
		}
	}

	return out
}

// FilterMap projects every element of xs through f, keeping only the results
// for which f reported true.
func FilterMap[I, O any](xs []I, f func(I) (O, bool)) []O {
	out := make([]O, 0, len(xs))

	for _, x := range xs {
		if o, ok := f(x); ok {
			out = append(out, o)
		}
	}

	return out
}

// FlatMap projects every element of xs into a slice and concatenates the results.
func FlatMap[I, O any](xs []I, f func(I) []O) []O {
	var out []O

	for _, x := range xs {
		out = append(out, f(x)...)
	}

	if out == nil {
		return []O{}
	}

	return out
}

// Reduce folds xs from the left, starting with init.
func Reduce[T, A any](xs []T, init A, f func(acc A, x T) A) A { //nolint:ireturn
	acc := init
	for _, x := range xs {
		acc = f(acc, x)
	}

	return acc
}

// Find returns the first element of xs for which pred is true.
func Find[T any](xs []T, pred func(T) bool) optional.Value[T] {
	for _, x := range xs {
		if pred(x) {
			return optional.Some(x)
		}
	}

	return optional.None[T]()
}

// KeyBy indexes xs by keyFn. When two elements share a key the later one wins.
func KeyBy[T any, K comparable](xs []T, keyFn func(T) K) map[K]T {
	out := make(map[K]T, len(xs))
	for _, x := range xs {
		out[keyFn(x)] = x
	}

	return out
}

// FromSeq collects an iterator into a slice. A nil seq yields an empty slice.
func FromSeq[T any](seq iter.Seq[T]) []T {
	if seq == nil {
		return []T{}
	}

	out := slices.Collect(seq)
	if out == nil {
		return []T{}
	}

	return out
}

// Range returns [0, 1, ..., n-1]. It is empty when n <= 0.
func Range[N numeric.Integer](n N) []N {
	return Range2(0, n)
}

// Range2 returns [start, start+1, ..., stop-1]. It is empty when stop <= start.
func Range2[N numeric.Integer](start, stop N) []N {
	if stop <= start {
		return []N{}
	}

	// Modular uint64 arithmetic gives the exact width even when stop-start
	// overflows N.
	out := make([]N, 0, uint64(stop)-uint64(start))
	for v := start; v < stop; v++ {
		out = append(out, v)
	}

	return out
}
