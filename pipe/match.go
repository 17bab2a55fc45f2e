package pipe

import (
	"github.com/amp-labs/amp-fp/dual"
	"github.com/amp-labs/amp-fp/match"
	"github.com/amp-labs/amp-fp/optional"
	"github.com/amp-labs/amp-fp/record"
)

func IsMatch[T any](p match.Pattern) func(T) bool {
	return dual.Of2(match.IsMatch[T]).Curry(p)
}

func FindMatch[T any](p match.Pattern) func([]T) optional.Value[T] {
	return dual.Of2(match.FindMatch[T]).Curry(p)
}

func FilterMatch[T any](p match.Pattern) func([]T) []T {
	return dual.Of2(match.FilterMatch[T]).Curry(p)
}

func Pick[V any](keys ...string) func(*record.Record[V]) *record.Record[V] {
	return dual.Of2(pick[V]).Curry(keys)
}

func Omit[V any](keys ...string) func(*record.Record[V]) *record.Record[V] {
	return dual.Of2(omit[V]).Curry(keys)
}

func MapValues[V, W any](f func(V) W) func(*record.Record[V]) *record.Record[W] {
	return dual.Of2(record.MapValues[V, W]).Curry(f)
}

func FilterRecord[V any](pred func(key string, value V) bool) func(*record.Record[V]) *record.Record[V] {
	return dual.Of2(record.Filter[V]).Curry(pred)
}

func pick[V any](r *record.Record[V], keys []string) *record.Record[V] {
	return record.Pick(r, keys...)
}

func omit[V any](r *record.Record[V], keys []string) *record.Record[V] {
	return record.Omit(r, keys...)
}
