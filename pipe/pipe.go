// Package pipe exposes the data-last, curried form of every operation in arr,
// match, record and numeric that takes parameters besides its subject. Each
// function binds the parameters and returns a function of the subject, so that
// operations chain left to right with fn.Pipe:
//
//	names := fn.Pipe3(users,
//		pipe.FilterMatch[User](active),
//		pipe.Map(User.Name),
//		pipe.Filter(isNonEmpty),
//	)
//
// Both forms share one implementation through package dual, which guarantees
//
//	arr.Map(xs, f) == pipe.Map(f)(xs)
package pipe

import (
	"github.com/amp-labs/amp-fp/arr"
	"github.com/amp-labs/amp-fp/collectable"
	"github.com/amp-labs/amp-fp/dual"
	"github.com/amp-labs/amp-fp/hashing"
	"github.com/amp-labs/amp-fp/nonempty"
	"github.com/amp-labs/amp-fp/numeric"
	"github.com/amp-labs/amp-fp/optional"
	"github.com/amp-labs/amp-fp/sortkey"
	"github.com/amp-labs/amp-fp/tuple"
)

func Map[I, O any](f func(I) O) func([]I) []O {
	return dual.Of2(arr.Map[I, O]).Curry(f)
}

func Filter[T any](pred func(T) bool) func([]T) []T {
	return dual.Of2(arr.Filter[T]).Curry(pred)
}

func FilterMap[I, O any](f func(I) (O, bool)) func([]I) []O {
	return dual.Of2(arr.FilterMap[I, O]).Curry(f)
}

func FlatMap[I, O any](f func(I) []O) func([]I) []O {
	return dual.Of2(arr.FlatMap[I, O]).Curry(f)
}

func Reduce[T, A any](init A, f func(acc A, x T) A) func([]T) A {
	return dual.Of3(arr.Reduce[T, A]).Curry(init, f)
}

func Find[T any](pred func(T) bool) func([]T) optional.Value[T] {
	return dual.Of2(arr.Find[T]).Curry(pred)
}

func KeyBy[T any, K comparable](keyFn func(T) K) func([]T) map[K]T {
	return dual.Of2(arr.KeyBy[T, K]).Curry(keyFn)
}

func SumBy[T any, N numeric.Number](f func(T) N) func([]T) N {
	return dual.Of2(arr.SumBy[T, N]).Curry(f)
}

func AvgBy[T any, N numeric.Number](f func(T) N) func([]T) float64 {
	return dual.Of2(arr.AvgBy[T, N]).Curry(f)
}

func CountBy[T any](pred func(T) bool) func([]T) int {
	return dual.Of2(arr.CountBy[T]).Curry(pred)
}

func MaxBy[T any, N numeric.Number](f func(T) N) func([]T) (T, error) {
	return dual.Of2E(arr.MaxBy[T, N]).Curry(f)
}

func MinBy[T any, N numeric.Number](f func(T) N) func([]T) (T, error) {
	return dual.Of2E(arr.MinBy[T, N]).Curry(f)
}

func SortBy[T any](keyFn func(T) []sortkey.Key) func([]T) ([]T, error) {
	return dual.Of2E(arr.SortBy[T]).Curry(keyFn)
}

func GroupBy[T any, K comparable](keyFn func(T) K) func([]T) []arr.Group[K, T] {
	return dual.Of2(arr.GroupBy[T, K]).Curry(keyFn)
}

func GroupByWith[T any, K comparable, S any](
	keyFn func(T) K, summarize func(nonempty.Slice[T]) S,
) func([]T) []tuple.Tuple2[K, S] {
	return dual.Of3(arr.GroupByWith[T, K, S]).Curry(keyFn, summarize)
}

func GroupByHashed[T any, K collectable.Collectable[K]](
	keyFn func(T) K, hashFn hashing.HashFunc,
) func([]T) ([]arr.Group[K, T], error) {
	return dual.Of3E(arr.GroupByHashed[T, K]).Curry(keyFn, hashFn)
}

// Zip binds the second sequence; the subject becomes the first.
func Zip[A, B any](bs []B) func([]A) []tuple.Tuple2[A, B] {
	return dual.Of2(arr.Zip[A, B]).Curry(bs)
}

func ZipWith[A, B, R any](bs []B, f func(A, B) R) func([]A) []R {
	return dual.Of3(arr.ZipWith[A, B, R]).Curry(bs, f)
}

func Zip3[A, B, C any](bs []B, cs []C) func([]A) []tuple.Tuple3[A, B, C] {
	return dual.Of3(arr.Zip3[A, B, C]).Curry(bs, cs)
}

func ZipWith3[A, B, C, R any](bs []B, cs []C, f func(A, B, C) R) func([]A) []R {
	return dual.Of4(arr.ZipWith3[A, B, C, R]).Curry(bs, cs, f)
}

// Cross binds the inner sequence; the subject drives the outer loop.
func Cross[A, B any](bs []B) func([]A) []tuple.Tuple2[A, B] {
	return dual.Of2(arr.Cross[A, B]).Curry(bs)
}

func CrossWith[A, B, R any](bs []B, f func(A, B) R) func([]A) []R {
	return dual.Of3(arr.CrossWith[A, B, R]).Curry(bs, f)
}

func Cross3[A, B, C any](bs []B, cs []C) func([]A) []tuple.Tuple3[A, B, C] {
	return dual.Of3(arr.Cross3[A, B, C]).Curry(bs, cs)
}

func Clamp[N numeric.Number](lo, hi N) func(N) (N, error) {
	return dual.Of3E(numeric.Clamp[N]).Curry(lo, hi)
}

// DivMod binds the divisor and packs the quotient and remainder into a pair.
func DivMod[N numeric.Number](b N) func(N) (tuple.Tuple2[N, N], error) {
	return dual.Of2E(divMod[N]).Curry(b)
}

func divMod[N numeric.Number](a, b N) (tuple.Tuple2[N, N], error) {
	q, r, err := numeric.DivMod(a, b)
	if err != nil {
		return tuple.Tuple2[N, N]{}, err
	}

	return tuple.NewTuple2(q, r), nil
}
