package arr

import (
	"github.com/amp-labs/amp-fp/collectable"
	"github.com/amp-labs/amp-fp/hashing"
	"github.com/amp-labs/amp-fp/maps"
	"github.com/amp-labs/amp-fp/nonempty"
	"github.com/amp-labs/amp-fp/tuple"
)

// Group is one key of a grouping together with its members.
type Group[K, T any] = tuple.Tuple2[K, nonempty.Slice[T]]

// GroupBy partitions xs by keyFn. Groups appear in the order their key was
// first seen, members keep their relative order, and every group has at least
// one member.
//
// Keys are compared with ==. Pointer keys (and structs holding pointers)
// therefore group by identity, not by the value pointed to. For keys that are
// not comparable, or need deep equality, use GroupByHashed.
func GroupBy[T any, K comparable](xs []T, keyFn func(T) K) []Group[K, T] {
	index := make(map[K]int)

	var (
		keys     []K
		builders []*nonempty.Builder[T]
	)

	for _, x := range xs {
		key := keyFn(x)

		if i, ok := index[key]; ok {
			builders[i].Add(x)

			continue
		}

		index[key] = len(keys)
		keys = append(keys, key)
		builders = append(builders, nonempty.NewBuilder(x))
	}

	out := make([]Group[K, T], len(keys))
	for i, key := range keys {
		out[i] = tuple.NewTuple2(key, builders[i].Build())
	}

	return out
}

// GroupByWith groups xs like GroupBy, then replaces every group by
// summarize(group).
func GroupByWith[T any, K comparable, S any](
	xs []T, keyFn func(T) K, summarize func(nonempty.Slice[T]) S,
) []tuple.Tuple2[K, S] {
	groups := GroupBy(xs, keyFn)

	out := make([]tuple.Tuple2[K, S], len(groups))
	for i, g := range groups {
		out[i] = tuple.NewTuple2(g.First(), summarize(g.Second()))
	}

	return out
}

// GroupByHashed groups xs by keys that cannot be compared with ==. Keys are
// bucketed by hashFn and confirmed with Equals, so unequal keys that share a
// hash still form separate groups. A hashFn error stops the grouping.
//
// Ordering guarantees are the same as GroupBy.
func GroupByHashed[T any, K collectable.Collectable[K]](
	xs []T, keyFn func(T) K, hashFn hashing.HashFunc,
) ([]Group[K, T], error) {
	groups := maps.NewOrderedHashMap[K, *nonempty.Builder[T]](hashFn)

	for _, x := range xs {
		key := keyFn(x)

		found, err := groups.Get(key)
		if err != nil {
			return nil, err
		}

		if builder, ok := found.Get(); ok {
			builder.Add(x)

			continue
		}

		if err := groups.Add(key, nonempty.NewBuilder(x)); err != nil {
			return nil, err
		}
	}

	out := make([]Group[K, T], 0, groups.Size())
	for _, entry := range groups.Seq() {
		out = append(out, tuple.NewTuple2(entry.Key, entry.Value.Build()))
	}

	return out, nil
}
