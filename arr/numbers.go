package arr

import (
	"fmt"

	amperrors "github.com/amp-labs/amp-fp/errors"
	"github.com/amp-labs/amp-fp/numeric"
)

// Sum adds up xs. The sum of an empty slice is zero.
func Sum[N numeric.Number](xs []N) N {
	var total N
	for _, x := range xs {
		total += x
	}

	return total
}

// Min returns the smallest element of xs.
func Min[N numeric.Number](xs []N) (N, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("%w: Min", amperrors.ErrEmptyInput)
	}

	return minOf(xs), nil
}

// Max returns the largest element of xs.
func Max[N numeric.Number](xs []N) (N, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("%w: Max", amperrors.ErrEmptyInput)
	}

	return maxOf(xs), nil
}

func minOf[N numeric.Number](xs []N) N {
	best := xs[0]
	for _, x := range xs[1:] {
		if x < best {
			best = x
		}
	}

	return best
}

func maxOf[N numeric.Number](xs []N) N {
	best := xs[0]
	for _, x := range xs[1:] {
		if x > best {
			best = x
		}
	}

	return best
}

// MaxBy returns the element of xs whose projection through f is largest.
// Ties keep the earliest element.
func MaxBy[T any, N numeric.Number](xs []T, f func(T) N) (T, error) { //nolint:ireturn
	return pickBy(xs, f, "MaxBy", func(candidate, best N) bool { return candidate > best })
}

// MinBy returns the element of xs whose projection through f is smallest.
// Ties keep the earliest element.
func MinBy[T any, N numeric.Number](xs []T, f func(T) N) (T, error) { //nolint:ireturn
	return pickBy(xs, f, "MinBy", func(candidate, best N) bool { return candidate < best })
}

func pickBy[T any, N numeric.Number](
	xs []T, f func(T) N, name string, better func(candidate, best N) bool,
) (T, error) {
	if len(xs) == 0 {
		var zero T

		return zero, fmt.Errorf("%w: %s", amperrors.ErrEmptyInput, name)
	}

	best, bestKey := xs[0], f(xs[0])

	for _, x := range xs[1:] {
		if key := f(x); better(key, bestKey) {
			best, bestKey = x, key
		}
	}

	return best, nil
}

// SumBy adds up the projection of every element of xs through f.
func SumBy[T any, N numeric.Number](xs []T, f func(T) N) N {
	var total N
	for _, x := range xs {
		total += f(x)
	}

	return total
}

// AvgBy is the arithmetic mean of the projection of xs through f. The average
// of an empty slice is zero.
func AvgBy[T any, N numeric.Number](xs []T, f func(T) N) float64 {
	if len(xs) == 0 {
		return 0
	}

	var total float64
	for _, x := range xs {
		total += float64(f(x))
	}

	return total / float64(len(xs))
}

// CountBy returns how many elements of xs satisfy pred.
func CountBy[T any](xs []T, pred func(T) bool) int {
	count := 0

	for _, x := range xs {
		if pred(x) {
			count++
		}
	}

	return count
}
